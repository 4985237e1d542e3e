package tui

import "strings"

type errorOverlayModel struct {
	message string
	status  string
}

func (m errorOverlayModel) View() string {
	var b strings.Builder
	b.WriteString(errorStyle.Render("Submission failed"))
	b.WriteString("\n\n")
	b.WriteString(m.message)
	b.WriteString("\n\n")
	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("enter / esc: dismiss │ c: copy details"))
	return overlayBoxStyle.Render(b.String())
}
