// Package config provides configuration loading, merging, and validation for
// the toolkit's client and development feature server.
//
// Configuration is assembled from environment variables, command-line flags
// and an optional JSON config file. The main entry points are
// [GetClientConfig] and [GetServerConfig].
package config
