// Package utils provides general-purpose helpers shared by the client and the
// development feature server: HTTP client construction, JSON response
// writing, bearer token inspection and identity generation.
package utils
