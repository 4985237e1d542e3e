package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-geo-toolkit/internal/service"
	"github.com/MKhiriev/go-geo-toolkit/models"
)

const stateRefreshInterval = 500 * time.Millisecond

type stage int

const (
	stageList stage = iota
	stageIdentify
	stageAddTable
	stageAddPoint
	stageForm
	stageInfo
)

// copyToClipboard is replaced in tests.
var copyToClipboard = clipboard.WriteAll

type mainLoopModel struct {
	ctx       context.Context
	session   editSession
	tables    func() []models.FeatureTable
	buildInfo models.AppBuildInfo

	stage stage
	state service.SessionState
	dirty []models.FeatureTable

	point    textinput.Model
	opening  bool
	tableIdx int
	addTable models.FeatureTable
	form     formModel

	spinner  spinner.Model
	status   string
	errMsg   string
	copyNote string
}

func newMainLoopModel(ctx context.Context, session editSession, tables func() []models.FeatureTable, buildInfo models.AppBuildInfo) mainLoopModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	point := textinput.New()
	point.Placeholder = "x y"
	point.Width = 30

	m := mainLoopModel{
		ctx:       ctx,
		session:   session,
		tables:    tables,
		buildInfo: buildInfo,
		spinner:   s,
		point:     point,
	}
	m.refresh()
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, tickState())
}

func tickState() tea.Cmd {
	return tea.Tick(stateRefreshInterval, func(time.Time) tea.Msg { return stateTickMsg{} })
}

func (m *mainLoopModel) refresh() {
	m.state = m.session.State()
	m.dirty = m.session.DirtyTables()
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case stateTickMsg:
		m.refresh()
		return m, tickState()
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case submitDoneMsg:
		m.refresh()
		switch {
		case msg.err == nil:
			m.status = "All edits submitted"
			m.errMsg = ""
		case errors.Is(msg.err, service.ErrSubmissionInProgress), errors.Is(msg.err, service.ErrFormOpen):
			m.errMsg = errorMessage(msg.err)
		default:
			m.status = ""
		}
		return m, nil
	case formOpenedMsg:
		m.opening = false
		m.refresh()
		if msg.err != nil {
			m.errMsg = errorMessage(msg.err)
			m.stage = stageList
			return m, nil
		}
		m.errMsg = ""
		m.form = newFormModel(msg.form)
		m.stage = stageForm
		return m, textinput.Blink
	case formSavedMsg:
		m.form.saving = false
		m.refresh()
		if msg.err != nil {
			m.form.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.status = "Saved locally"
		m.stage = stageList
		return m, nil
	case featureDeletedMsg:
		m.form.saving = false
		m.refresh()
		if msg.err != nil {
			m.form.errMsg = errorMessage(msg.err)
			return m, nil
		}
		m.status = "Delete saved locally"
		m.stage = stageList
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateStage(msg)
	}

	if key.Matches(keyMsg, keys.forceQ) {
		return m, tea.Quit
	}

	if m.state.ShowError {
		return m.updateErrorOverlay(keyMsg)
	}

	if m.stage == stageList {
		return m.updateList(keyMsg)
	}
	return m.updateStage(msg)
}

func (m mainLoopModel) updateStage(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.stage {
	case stageIdentify, stageAddPoint:
		return m.updatePoint(msg)
	case stageAddTable:
		return m.updateAddTable(msg)
	case stageForm:
		return m.updateForm(msg)
	case stageInfo:
		if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.esc) {
			m.stage = stageList
		}
	}
	return m, nil
}

func (m mainLoopModel) updateErrorOverlay(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.esc):
		m.session.DismissError()
		m.copyNote = ""
		m.refresh()
	case key.Matches(msg, keys.copy):
		if err := copyToClipboard(m.state.Err.Error()); err != nil {
			m.copyNote = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		m.copyNote = "Copied"
	}
	return m, nil
}

func (m mainLoopModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.info):
		m.stage = stageInfo
	case key.Matches(msg, keys.identify):
		if m.state.Busy {
			m.errMsg = errorMessage(service.ErrSubmissionInProgress)
			return m, nil
		}
		m.errMsg = ""
		m.stage = stageIdentify
		return m, m.resetPoint()
	case key.Matches(msg, keys.add):
		if m.state.Busy {
			m.errMsg = errorMessage(service.ErrSubmissionInProgress)
			return m, nil
		}
		if len(m.tables()) == 0 {
			m.errMsg = "no feature tables loaded"
			return m, nil
		}
		m.errMsg = ""
		m.tableIdx = 0
		m.stage = stageAddTable
	case key.Matches(msg, keys.submit):
		if !m.state.CanSubmit {
			m.status = submitUnavailableReason(m.state)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Submitting..."
		m.state.Busy = true
		m.state.CanSubmit = false
		return m, m.cmdSubmit()
	}
	return m, nil
}

func submitUnavailableReason(state service.SessionState) string {
	switch {
	case state.Busy:
		return "Submission already running"
	case state.FormOpen:
		return "Close the form to submit"
	default:
		return "Nothing to submit"
	}
}

func (m *mainLoopModel) resetPoint() tea.Cmd {
	m.point.SetValue("")
	return m.point.Focus()
}

func (m mainLoopModel) updatePoint(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.opening {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.point.Blur()
			m.errMsg = ""
			m.stage = stageList
			return m, nil
		case key.Matches(keyMsg, keys.enter):
			point, err := parsePoint(m.point.Value())
			if err != nil {
				m.errMsg = err.Error()
				return m, nil
			}
			m.point.Blur()
			m.errMsg = ""
			m.opening = true
			if m.stage == stageIdentify {
				return m, m.cmdOpenForm(point)
			}
			return m, m.cmdOpenNewFeatureForm(m.addTable, point)
		}
	}

	var cmd tea.Cmd
	m.point, cmd = m.point.Update(msg)
	return m, cmd
}

func (m mainLoopModel) updateAddTable(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	tables := m.tables()
	switch {
	case key.Matches(keyMsg, keys.esc):
		m.stage = stageList
	case key.Matches(keyMsg, keys.up):
		if m.tableIdx > 0 {
			m.tableIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.tableIdx < len(tables)-1 {
			m.tableIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if m.tableIdx >= len(tables) {
			return m, nil
		}
		m.addTable = tables[m.tableIdx]
		m.stage = stageAddPoint
		return m, m.resetPoint()
	}
	return m, nil
}

func (m mainLoopModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.form.saving {
		return m, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.esc):
			m.session.CloseForm()
			m.refresh()
			m.status = "Form closed without saving"
			m.stage = stageList
			return m, nil
		case key.Matches(keyMsg, keys.save):
			m.form.apply()
			m.form.saving = true
			m.form.errMsg = ""
			return m, m.cmdSaveForm()
		case key.Matches(keyMsg, keys.delete):
			m.form.saving = true
			m.form.errMsg = ""
			return m, m.cmdDeleteFeature()
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

func (m mainLoopModel) View() string {
	if m.state.ShowError {
		return errorOverlayModel{message: errorMessage(m.state.Err), status: m.copyNote}.View()
	}

	switch m.stage {
	case stageInfo:
		return renderBuildInfoWindow(m.buildInfo)
	case stageIdentify:
		return renderPage("IDENTIFY FEATURE", m.viewPoint("Point"), "enter: identify │ esc: back")
	case stageAddTable:
		return renderPage("NEW FEATURE: CHOOSE TABLE", m.viewAddTable(), "↑/↓: navigate │ enter: choose │ esc: back")
	case stageAddPoint:
		return renderPage("NEW FEATURE: "+m.addTable.Name, m.viewPoint("Location"), "enter: open form │ esc: back")
	case stageForm:
		return renderPage(m.form.title(), m.form.View(), "tab: next field │ ctrl+s: save │ ctrl+d: delete │ esc: close")
	}

	return renderPage("EDIT QUEUE", m.viewList(), "i: identify │ a: add │ s: submit │ v: about │ q: quit")
}

func (m mainLoopModel) viewPoint(label string) string {
	out := fmt.Sprintf("%-9s: [ %s ]\n", label, m.point.View())
	if m.opening {
		out += "\n" + m.spinner.View() + " Loading...\n"
	}
	if m.errMsg != "" {
		out += "\n" + errorStyle.Render("Error: "+m.errMsg) + "\n"
	}
	return strings.TrimRight(out, "\n")
}

func (m mainLoopModel) viewAddTable() string {
	var b strings.Builder
	for i, table := range m.tables() {
		b.WriteString(tableRow(i == m.tableIdx, i+1, table))
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) viewList() string {
	var b strings.Builder

	if m.state.Busy {
		b.WriteString(m.spinner.View() + " Submitting edits...\n")
	}
	if m.errMsg != "" {
		b.WriteString(errorStyle.Render("Error: "+m.errMsg) + "\n")
	}
	if m.status != "" {
		b.WriteString(statusStyle.Render("Status: "+m.status) + "\n")
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	if len(m.dirty) == 0 {
		b.WriteString("No unsubmitted edits\n")
		return strings.TrimRight(b.String(), "\n")
	}

	fmt.Fprintf(&b, "Tables with unsubmitted edits: %d\n\n", len(m.dirty))
	b.WriteString("#    │ Table                    │ Feature service\n")
	b.WriteString("─────┼──────────────────────────┼────────────────────────────────────────\n")
	for i, table := range m.dirty {
		b.WriteString(tableRow(false, i+1, table))
		b.WriteString("\n")
	}
	if m.state.CanSubmit {
		b.WriteString("\nPress s to submit\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m mainLoopModel) cmdSubmit() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return submitDoneMsg{err: session.Submit(ctx)}
	}
}

func (m mainLoopModel) cmdOpenForm(point models.ScreenPoint) tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		form, err := session.OpenForm(ctx, point)
		return formOpenedMsg{form: form, err: err}
	}
}

func (m mainLoopModel) cmdOpenNewFeatureForm(table models.FeatureTable, point models.ScreenPoint) tea.Cmd {
	session := m.session
	return func() tea.Msg {
		form, err := session.OpenNewFeatureForm(table, point)
		return formOpenedMsg{form: form, err: err}
	}
}

func (m mainLoopModel) cmdSaveForm() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return formSavedMsg{err: session.SaveForm(ctx)}
	}
}

func (m mainLoopModel) cmdDeleteFeature() tea.Cmd {
	ctx, session := m.ctx, m.session
	return func() tea.Msg {
		return featureDeletedMsg{err: session.DeleteFeature(ctx)}
	}
}
