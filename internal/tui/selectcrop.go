package tui

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmlook/farmlook/internal/catalog"
	"github.com/farmlook/farmlook/internal/i18n"
)

type selectModel struct {
	search     textinput.Model
	tbl        table.Model
	searchMode bool
	visible    []catalog.Crop
	errMsg     string
}

func newSelectModel() selectModel {
	search := textinput.New()
	search.CharLimit = 40

	columns := []table.Column{
		{Title: "Crop", Width: 18},
		{Title: "", Width: 28},
	}
	tbl := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Foreground(lipgloss.Color("#8C8C8C")).Bold(true)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#2E4B2E")).
		Bold(true)
	tbl.SetStyles(styles)

	return selectModel{search: search, tbl: tbl}
}

func (m *selectModel) enter(a *App) tea.Cmd {
	m.errMsg = ""
	m.searchMode = false
	m.search.Blur()
	m.refresh(a)
	return nil
}

func (m *selectModel) resize(a *App) {
	h := a.height - 10
	if h < 4 {
		h = 4
	}
	if h > len(catalog.Crops)+1 {
		h = len(catalog.Crops) + 1
	}
	m.tbl.SetHeight(h)
}

// refresh rebuilds the table rows from the current search query.
func (m *selectModel) refresh(a *App) {
	m.visible = catalog.Filter(m.search.Value())
	rows := make([]table.Row, 0, len(m.visible))
	for _, c := range m.visible {
		rows = append(rows, table.Row{c.DisplayTitle(a.lang), c.Subtitle})
	}
	m.tbl.SetRows(rows)
	if m.tbl.Cursor() >= len(rows) {
		m.tbl.SetCursor(0)
	}
}

func (m *selectModel) highlighted() (catalog.Crop, bool) {
	i := m.tbl.Cursor()
	if i < 0 || i >= len(m.visible) {
		return catalog.Crop{}, false
	}
	return m.visible[i], true
}

func (m *selectModel) update(msg tea.Msg, a *App) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if m.searchMode {
			switch key.String() {
			case "esc":
				m.searchMode = false
				m.search.Blur()
				return nil
			case "enter":
				m.searchMode = false
				m.search.Blur()
				return nil
			}
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refresh(a)
			return cmd
		}
		switch key.String() {
		case "/":
			m.searchMode = true
			m.search.Focus()
			return textinput.Blink
		case "enter":
			crop, ok := m.highlighted()
			if !ok {
				m.errMsg = a.t(i18n.KeySelectCropCont)
				return nil
			}
			m.errMsg = ""
			a.capture.setCrop(crop)
			return a.goTo(screenCapture)
		case "r":
			return a.goTo(screenReports)
		case "s":
			return a.goTo(screenSettings)
		case "q", "esc":
			return tea.Quit
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return cmd
}

func (m *selectModel) view(a *App) string {
	header := titleStyle.Render(a.t(i18n.KeyHelloFarmer)) + "\n" +
		subtitleStyle.Render(a.t(i18n.KeyWhatGrowing))

	searchLine := mutedStyle.Render("/ " + a.t(i18n.KeySearchCrops))
	if m.searchMode || m.search.Value() != "" {
		searchLine = m.search.View()
	}

	parts := []string{header, "", searchLine, "", m.tbl.View()}
	if crop, ok := m.highlighted(); ok {
		parts = append(parts, "", accentStyle.Render(a.t(i18n.KeyContinueWith)+" "+crop.DisplayTitle(a.lang)))
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	parts = append(parts, "", footerStyle.Render("[enter] select  [/] search  [r] "+a.t(i18n.KeySavedReports)+"  [s] settings  [q] quit"))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
