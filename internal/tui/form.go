package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-geo-toolkit/models"
)

// formModel edits the attributes of one feature form. Each field gets an
// input; only editable fields take focus.
type formModel struct {
	form     *models.FeatureForm
	inputs   []textinput.Model
	editable []int
	focus    int
	saving   bool
	errMsg   string
}

func newFormModel(form *models.FeatureForm) formModel {
	m := formModel{form: form, inputs: make([]textinput.Model, len(form.Fields))}
	for i, field := range form.Fields {
		in := textinput.New()
		in.Width = 40
		in.Placeholder = strings.ToLower(fieldTypeLabel(field.Type))
		in.SetValue(field.Value)
		m.inputs[i] = in
		if field.Editable {
			m.editable = append(m.editable, i)
		}
	}
	if len(m.editable) > 0 {
		m.inputs[m.editable[0]].Focus()
	}
	return m
}

// apply copies the typed values into the form.
func (m formModel) apply() {
	for _, i := range m.editable {
		m.form.SetValue(m.form.Fields[i].Name, m.inputs[i].Value())
	}
}

func (m formModel) move(delta int) formModel {
	if len(m.editable) == 0 {
		return m
	}
	m.inputs[m.editable[m.focus]].Blur()
	m.focus = (m.focus + delta + len(m.editable)) % len(m.editable)
	m.inputs[m.editable[m.focus]].Focus()
	return m
}

func (m formModel) Update(msg tea.Msg) (formModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.tab), key.Matches(keyMsg, keys.down):
			return m.move(1), nil
		case key.Matches(keyMsg, keys.backtab), key.Matches(keyMsg, keys.up):
			return m.move(-1), nil
		}
	}
	if len(m.editable) == 0 {
		return m, nil
	}

	var cmd tea.Cmd
	i := m.editable[m.focus]
	m.inputs[i], cmd = m.inputs[i].Update(msg)
	return m, cmd
}

func (m formModel) title() string {
	name := m.form.Table.Name
	if m.form.Feature.ObjectID == 0 {
		return "NEW FEATURE: " + name
	}
	return fmt.Sprintf("FEATURE %d: %s", m.form.Feature.ObjectID, name)
}

func (m formModel) View() string {
	var b strings.Builder
	b.WriteString("Field                │ Value\n")
	b.WriteString("─────────────────────┼──────────────────────────────────────────\n")
	for i, field := range m.form.Fields {
		label := fmt.Sprintf("%-20s │ ", fitText(field.Label, 20))
		if field.Editable {
			b.WriteString(label + "[" + m.inputs[i].View() + "]\n")
			continue
		}
		b.WriteString(readOnlyStyle.Render(label+valueOrNA(field.Value)) + "\n")
	}
	if m.saving {
		b.WriteString("\nSaving...\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n" + errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func fieldTypeLabel(t models.FieldType) string {
	switch t {
	case models.FieldTypeInteger:
		return "Integer"
	case models.FieldTypeDouble:
		return "Number"
	case models.FieldTypeDate:
		return "YYYY-MM-DD"
	default:
		return "Text"
	}
}
