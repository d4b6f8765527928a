package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
)

// detailModel fetches and renders one saved report by id. Fetching by
// id means two visits to the same report render identical content.
type detailModel struct {
	id      string
	vp      viewport.Model
	loading bool
	report  model.SavedReport
	spin    spinner.Model
}

type reportLoadedMsg struct {
	seq       int
	needLogin bool
	report    model.SavedReport
	err       error
}

func (m reportLoadedMsg) sequence() int { return m.seq }

func newDetailModel() detailModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = warnStyle
	return detailModel{vp: viewport.New(80, 20), spin: spin}
}

func (m *detailModel) enter(a *App) tea.Cmd {
	m.loading = true
	m.resize(a)
	seq := a.seq
	sess := a.sess
	client := a.apiC
	id := m.id
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		ctx := context.Background()
		token, ok, err := sess.Token(ctx)
		if err != nil {
			return reportLoadedMsg{seq: seq, err: err}
		}
		if !ok {
			return reportLoadedMsg{seq: seq, needLogin: true}
		}
		report, err := client.GetReport(ctx, token, id)
		return reportLoadedMsg{seq: seq, report: report, err: err}
	})
}

func (m *detailModel) resize(a *App) {
	w := a.contentWidth()
	h := a.height - 6
	if h < 4 {
		h = 4
	}
	m.vp.Width = w
	m.vp.Height = h
}

func (m *detailModel) update(msg tea.Msg, a *App) tea.Cmd {
	switch msg := msg.(type) {
	case reportLoadedMsg:
		m.loading = false
		if msg.needLogin {
			return a.goTo(screenLogin)
		}
		if msg.err != nil {
			// Failure routes back to the list with the reason.
			cmd := a.goBack()
			a.setAlert(a.errText(msg.err, i18n.KeyReportFallback), true)
			return cmd
		}
		m.report = msg.report
		m.vp.SetContent(m.renderContent(a))
		m.vp.GotoTop()
		return nil
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if msg.String() == "esc" {
			return a.goTo(screenReports)
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

func (m *detailModel) renderContent(a *App) string {
	width := m.vp.Width
	result := m.report.Result

	health := warnStyle.Render(result.Health)
	if result.Health == model.HealthHealthy {
		health = healthyStyle.Render(result.Health)
	}
	parts := []string{
		labelStyle.Render(a.t(i18n.KeyCropType)) + ": " + m.report.Crop,
		mutedStyle.Render(m.report.CreatedDate()),
		labelStyle.Render(a.t(i18n.KeyConfidence)) + ": " + formatConfidence(result.Confidence),
		health,
	}
	if result.Health != model.HealthHealthy {
		parts = append(parts,
			"",
			renderDiagnosis(a, result.Diagnosis, width),
			"",
			sectionStyle.Render(a.t(i18n.KeyTreatmentPlan)),
			renderTreatmentPlan(a, result.TreatmentPlan, width),
		)
	}
	return strings.Join(parts, "\n")
}

func (m *detailModel) view(a *App) string {
	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render(a.t(i18n.KeySavedReports)),
			"",
			m.spin.View()+" "+mutedStyle.Render("..."),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(m.report.Name),
		"",
		m.vp.View(),
		"",
		footerStyle.Render("[esc] back"),
	)
}
