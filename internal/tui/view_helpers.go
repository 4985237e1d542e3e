package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("  ctrl+c: quit"))

	return b.String()
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}

func tableRow(cursor bool, n int, table models.FeatureTable) string {
	mark := " "
	if cursor {
		mark = ">"
	}
	backing := "-"
	if table.Geodatabase != nil {
		backing = table.Geodatabase.ServiceURL
	}
	return fmt.Sprintf("%s %-3d│ %-24s │ %s", mark, n, fitText(table.Name, 24), fitText(backing, 40))
}

// parsePoint reads a map point typed as "x y" or "x,y".
func parsePoint(s string) (models.ScreenPoint, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(parts) != 2 {
		return models.ScreenPoint{}, fmt.Errorf("enter the point as \"x y\"")
	}

	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return models.ScreenPoint{}, fmt.Errorf("x is not a number: %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.ScreenPoint{}, fmt.Errorf("y is not a number: %q", parts[1])
	}
	return models.ScreenPoint{X: x, Y: y}, nil
}
