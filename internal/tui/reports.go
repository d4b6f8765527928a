package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
)

// reportsModel lists saved reports. The list is refetched on every
// entry; nothing is cached between visits.
type reportsModel struct {
	tbl      table.Model
	loading  bool
	loggedIn bool
	reports  []model.SavedReport
	spin     spinner.Model
}

type reportsLoadedMsg struct {
	seq      int
	loggedIn bool
	reports  []model.SavedReport
	err      error
}

func (m reportsLoadedMsg) sequence() int { return m.seq }

func newReportsModel() reportsModel {
	columns := []table.Column{
		{Title: "Name", Width: 24},
		{Title: "Date", Width: 12},
		{Title: "Health", Width: 20},
		{Title: "Crop", Width: 14},
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

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = warnStyle

	return reportsModel{tbl: tbl, loggedIn: true, spin: spin}
}

func (m *reportsModel) enter(a *App) tea.Cmd {
	m.loading = true
	m.loggedIn = true
	m.reports = nil
	m.tbl.SetRows(nil)
	seq := a.seq
	sess := a.sess
	client := a.apiC
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		ctx := context.Background()
		token, ok, err := sess.Token(ctx)
		if err != nil {
			return reportsLoadedMsg{seq: seq, loggedIn: true, err: err}
		}
		if !ok {
			return reportsLoadedMsg{seq: seq, loggedIn: false}
		}
		reports, err := client.ListReports(ctx, token)
		return reportsLoadedMsg{seq: seq, loggedIn: true, reports: reports, err: err}
	})
}

func (m *reportsModel) resize(a *App) {
	h := a.height - 8
	if h < 4 {
		h = 4
	}
	m.tbl.SetHeight(h)
}

func (m *reportsModel) update(msg tea.Msg, a *App) tea.Cmd {
	switch msg := msg.(type) {
	case reportsLoadedMsg:
		m.loading = false
		m.loggedIn = msg.loggedIn
		if msg.err != nil {
			a.setAlert(a.errText(msg.err, i18n.KeyReportsFallback), true)
			return nil
		}
		m.reports = msg.reports
		rows := make([]table.Row, 0, len(msg.reports))
		for _, r := range msg.reports {
			rows = append(rows, table.Row{r.Name, r.CreatedDate(), r.Result.Health, r.Crop})
		}
		m.tbl.SetRows(rows)
		m.tbl.SetCursor(0)
		return nil
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if !m.loggedIn {
			switch msg.String() {
			case "l":
				return a.goTo(screenLogin)
			case "esc":
				return a.goTo(screenSelect)
			}
			return nil
		}
		switch msg.String() {
		case "esc":
			return a.goTo(screenSelect)
		case "enter":
			i := m.tbl.Cursor()
			if i < 0 || i >= len(m.reports) {
				return nil
			}
			a.detail.id = m.reports[i].ID
			return a.goTo(screenReportDetail)
		}
	}
	var cmd tea.Cmd
	m.tbl, cmd = m.tbl.Update(msg)
	return cmd
}

func (m *reportsModel) view(a *App) string {
	title := titleStyle.Render(a.t(i18n.KeySavedReports))
	if !m.loggedIn {
		content := title + "\n\n" +
			wrapText(a.t(i18n.KeyCreateAccountFull), 44) + "\n\n" +
			accentStyle.Render(a.t(i18n.KeyLoginOrCreate)) + "\n\n" +
			footerStyle.Render("[l] "+a.t(i18n.KeyLogin)+"  [esc] back")
		return a.centered(modalStyle.Render(content))
	}
	if m.loading {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			m.spin.View()+" "+mutedStyle.Render("..."),
		)
	}
	if len(m.reports) == 0 {
		return lipgloss.JoinVertical(lipgloss.Left,
			title,
			"",
			mutedStyle.Render(a.t(i18n.KeyNoSavedReports)),
			"",
			footerStyle.Render("[esc] back"),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.tbl.View(),
		"",
		footerStyle.Render("[enter] open  [esc] back"),
	)
}
