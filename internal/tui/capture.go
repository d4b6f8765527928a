package tui

import (
	"context"
	"os"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/catalog"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
)

type captureState int

const (
	captureIdle captureState = iota
	captureCaptured
	captureSubmitting
)

// captureModel walks the pick-confirm-submit flow for one image. The
// picked file is held by path only; the bytes are read at submission.
type captureModel struct {
	fp        filepicker.Model
	state     captureState
	crop      catalog.Crop
	imagePath string
	spin      spinner.Model
}

type analyzeDoneMsg struct {
	seq    int
	result model.AnalysisResult
	err    error
}

func (m analyzeDoneMsg) sequence() int { return m.seq }

func newCaptureModel() captureModel {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = warnStyle
	return captureModel{spin: spin}
}

func (m *captureModel) setCrop(crop catalog.Crop) {
	m.crop = crop
}

func (m *captureModel) enter(a *App) tea.Cmd {
	m.state = captureIdle
	m.imagePath = ""
	m.fp = filepicker.New()
	m.fp.AllowedTypes = []string{".jpg", ".jpeg", ".png"}
	if home, err := os.UserHomeDir(); err == nil {
		m.fp.CurrentDirectory = home
	}
	m.resize(a)
	return m.fp.Init()
}

func (m *captureModel) resize(a *App) {
	h := a.height - 8
	if h < 4 {
		h = 4
	}
	m.fp.Height = h
}

func (m *captureModel) update(msg tea.Msg, a *App) tea.Cmd {
	if done, ok := msg.(analyzeDoneMsg); ok {
		if done.err != nil {
			m.state = captureCaptured
			a.setAlert(a.errText(done.err, i18n.KeyAnalysisFailed), true)
			return nil
		}
		a.cache.Set(done.result)
		a.result.imagePath = m.imagePath
		return a.goTo(screenResult)
	}

	switch m.state {
	case captureIdle:
		if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
			return a.goTo(screenSelect)
		}
		var cmd tea.Cmd
		m.fp, cmd = m.fp.Update(msg)
		if didSelect, path := m.fp.DidSelectFile(msg); didSelect {
			m.state = captureCaptured
			m.imagePath = path
		}
		return cmd
	case captureCaptured:
		if key, ok := msg.(tea.KeyMsg); ok {
			switch key.String() {
			case "enter", "a":
				return m.submit(a)
			case "esc":
				// Discard the picked image and return to the picker.
				m.imagePath = ""
				m.state = captureIdle
				return m.fp.Init()
			}
		}
	case captureSubmitting:
		if tick, ok := msg.(spinner.TickMsg); ok {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(tick)
			return cmd
		}
	}
	return nil
}

func (m *captureModel) submit(a *App) tea.Cmd {
	m.state = captureSubmitting
	a.setAlert("", false)
	seq := a.seq
	client := a.apiC
	req := api.AnalyzeRequest{
		ImagePath: m.imagePath,
		CropID:    m.crop.ID,
		CropName:  m.crop.Title.English,
		Language:  string(a.lang),
	}
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		result, err := client.Analyze(context.Background(), req)
		return analyzeDoneMsg{seq: seq, result: result, err: err}
	})
}

func (m *captureModel) view(a *App) string {
	header := titleStyle.Render(m.crop.DisplayTitle(a.lang)) + "\n" +
		subtitleStyle.Render(a.t(i18n.KeyCapture)+" / "+a.t(i18n.KeyGallery))

	switch m.state {
	case captureIdle:
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.fp.View(),
			footerStyle.Render("[enter] select image  [esc] back"),
		)
	case captureCaptured:
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			sectionStyle.Render(a.t(i18n.KeyConfirmAnalyze)),
			labelStyle.Render(m.imagePath),
			mutedStyle.Render(wrapText(a.t(i18n.KeyEnsureClear), a.contentWidth())),
			"",
			footerStyle.Render("[enter] "+a.t(i18n.KeyAnalyze)+"  [esc] retake"),
		)
	default:
		return lipgloss.JoinVertical(lipgloss.Left,
			header,
			"",
			m.spin.View()+" "+warnStyle.Render(a.t(i18n.KeyAnalyzing)),
		)
	}
}
