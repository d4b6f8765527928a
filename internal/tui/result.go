package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
)

// resultModel renders whatever the shared result slot holds. Reaching
// this screen with an empty slot is a dead end rendered as an error;
// there is no re-fetch path.
type resultModel struct {
	vp        viewport.Model
	imagePath string

	saveOpen    bool
	nameInput   textinput.Model
	saveErr     string
	saving      bool
	loginPrompt bool
	spin        spinner.Model
}

type saveDoneMsg struct {
	seq         int
	notLoggedIn bool
	noData      bool
	err         error
}

func (m saveDoneMsg) sequence() int { return m.seq }

func newResultModel() resultModel {
	name := textinput.New()
	name.CharLimit = 80

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = warnStyle

	return resultModel{
		vp:        viewport.New(80, 20),
		nameInput: name,
		spin:      spin,
	}
}

func (m *resultModel) enter(a *App) tea.Cmd {
	m.saveOpen = false
	m.loginPrompt = false
	m.saving = false
	m.saveErr = ""
	m.nameInput.SetValue("")
	m.nameInput.Blur()
	m.resize(a)
	m.vp.SetContent(m.renderContent(a))
	m.vp.GotoTop()
	return nil
}

func (m *resultModel) resize(a *App) {
	w := a.contentWidth()
	h := a.height - 6
	if h < 4 {
		h = 4
	}
	m.vp.Width = w
	m.vp.Height = h
	if a.active == screenResult {
		m.vp.SetContent(m.renderContent(a))
	}
}

func (m *resultModel) renderContent(a *App) string {
	result, ok := a.cache.Current()
	if !ok {
		return errorStyle.Render(a.t(i18n.KeyNoAnalysisData))
	}
	if result.Rejected() {
		return warnStyle.Render(wrapText(a.t(i18n.KeyImageRejected), m.vp.Width))
	}

	width := m.vp.Width
	var parts []string

	health := warnStyle.Render(result.HealthAssessment)
	if result.Healthy() {
		health = healthyStyle.Render(result.HealthAssessment)
	}
	parts = append(parts,
		labelStyle.Render(a.t(i18n.KeyCropType))+": "+result.CropIdentified,
		labelStyle.Render(a.t(i18n.KeyConfidence))+": "+formatConfidence(result.ConfidenceScore),
		health,
	)
	if !result.Healthy() {
		parts = append(parts,
			"",
			renderDiagnosis(a, result.PrimaryDiagnosis, width),
			"",
			sectionStyle.Render(a.t(i18n.KeyActionPlan)),
			renderTreatmentPlan(a, result.TreatmentPlan, width),
		)
	}
	return strings.Join(parts, "\n")
}

func (m *resultModel) update(msg tea.Msg, a *App) tea.Cmd {
	switch msg := msg.(type) {
	case saveDoneMsg:
		m.saving = false
		switch {
		case msg.notLoggedIn:
			m.saveOpen = false
			m.loginPrompt = true
		case msg.noData:
			m.saveErr = a.t(i18n.KeyNoAnalysisData)
		case msg.err != nil:
			// The dialog stays open so the name survives a retry.
			m.saveErr = a.errText(msg.err, i18n.KeySaveFallback)
		default:
			m.saveOpen = false
			m.nameInput.SetValue("")
			a.setAlert(a.t(i18n.KeyReportSaved), false)
		}
		return nil
	case spinner.TickMsg:
		if !m.saving {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if m.loginPrompt {
			switch msg.String() {
			case "l":
				m.loginPrompt = false
				return a.goTo(screenLogin)
			case "esc":
				m.loginPrompt = false
			}
			return nil
		}
		if m.saveOpen {
			if m.saving {
				return nil
			}
			switch msg.String() {
			case "esc":
				m.saveOpen = false
				m.saveErr = ""
				return nil
			case "enter":
				return m.submitSave(a)
			}
			var cmd tea.Cmd
			m.nameInput, cmd = m.nameInput.Update(msg)
			return cmd
		}
		switch msg.String() {
		case "n":
			return a.goTo(screenSelect)
		case "s":
			return m.openSave(a)
		case "esc":
			return a.goTo(screenSelect)
		}
	}
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return cmd
}

// openSave reads the token fresh at the moment the gated action is
// taken; an earlier read may be stale after a logout elsewhere.
func (m *resultModel) openSave(a *App) tea.Cmd {
	if _, ok := a.cache.Current(); !ok {
		a.setAlert(a.t(i18n.KeyNoAnalysisData), true)
		return nil
	}
	_, ok, err := a.sess.Token(context.Background())
	if err != nil {
		a.setAlert(err.Error(), true)
		return nil
	}
	if !ok {
		m.loginPrompt = true
		return nil
	}
	m.saveOpen = true
	m.saveErr = ""
	m.nameInput.Focus()
	return textinput.Blink
}

func (m *resultModel) submitSave(a *App) tea.Cmd {
	name := strings.TrimSpace(m.nameInput.Value())
	if name == "" {
		m.saveErr = a.t(i18n.KeyReportNameEmpty)
		return nil
	}
	m.saveErr = ""
	m.saving = true
	return tea.Batch(m.spin.Tick, saveReportCmd(a, name, m.imagePath))
}

// saveReportCmd re-reads the token and the result slot inside the
// command: both may have changed between opening the dialog and
// pressing save.
func saveReportCmd(a *App, name, imagePath string) tea.Cmd {
	seq := a.seq
	sess := a.sess
	client := a.apiC
	cache := a.cache
	return func() tea.Msg {
		ctx := context.Background()
		token, ok, err := sess.Token(ctx)
		if err != nil {
			return saveDoneMsg{seq: seq, err: err}
		}
		if !ok {
			return saveDoneMsg{seq: seq, notLoggedIn: true}
		}
		result, ok := cache.Current()
		if !ok {
			return saveDoneMsg{seq: seq, noData: true}
		}
		imageURL, err := api.EncodeImageDataURL(imagePath)
		if err != nil {
			return saveDoneMsg{seq: seq, err: err}
		}
		err = client.SaveReport(ctx, token, api.SaveReportRequest{
			Name:     name,
			Crop:     result.CropIdentified,
			ImageURL: imageURL,
			Result: model.ReportResult{
				Health:        result.HealthAssessment,
				Confidence:    result.ConfidenceScore,
				Diagnosis:     result.PrimaryDiagnosis,
				TreatmentPlan: result.TreatmentPlan,
			},
		})
		return saveDoneMsg{seq: seq, err: err}
	}
}

func (m *resultModel) view(a *App) string {
	if m.loginPrompt {
		content := titleStyle.Render(a.t(i18n.KeyNotLoggedIn)) + "\n\n" +
			wrapText(a.t(i18n.KeyLoginToSave), 40) + "\n\n" +
			footerStyle.Render("[l] "+a.t(i18n.KeyLogin)+"  [esc] "+a.t(i18n.KeyCancel))
		return a.centered(modalStyle.Render(content))
	}
	if m.saveOpen {
		var b strings.Builder
		b.WriteString(titleStyle.Render(a.t(i18n.KeySaveReportTitle)))
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render(a.t(i18n.KeyEnterReportName)))
		b.WriteString("\n")
		b.WriteString(m.nameInput.View())
		b.WriteString("\n")
		if m.saveErr != "" {
			b.WriteString(errorStyle.Render(wrapText(m.saveErr, 40)))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		if m.saving {
			b.WriteString(m.spin.View())
			b.WriteString(" ")
			b.WriteString(mutedStyle.Render(a.t(i18n.KeySaving)))
		} else {
			b.WriteString(footerStyle.Render("[enter] " + a.t(i18n.KeySaveReportBtn) + "  [esc] " + a.t(i18n.KeyCancel)))
		}
		return a.centered(modalStyle.Render(b.String()))
	}

	footer := footerStyle.Render("[s] " + a.t(i18n.KeySaveReportBtn) + "  [n] " + a.t(i18n.KeyNewScan) + "  [esc] back")
	title := a.t(i18n.KeyErrorTitle)
	if result, ok := a.cache.Current(); ok {
		title = result.CropIdentified
	} else {
		footer = footerStyle.Render("[n] " + a.t(i18n.KeyNewScan))
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(title),
		"",
		m.vp.View(),
		"",
		footer,
	)
}
