package tui

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
	"github.com/farmlook/farmlook/internal/store"
)

// settingsModel shows the profile snapshot, the language switcher and
// logout. Storage reads are local, so entry is synchronous.
type settingsModel struct {
	loggedIn bool
	user     model.User
	langOpen bool
	langIdx  int
}

func newSettingsModel() settingsModel {
	return settingsModel{}
}

func (m *settingsModel) enter(a *App) tea.Cmd {
	ctx := context.Background()
	_, ok, err := a.sess.Token(ctx)
	if err != nil {
		a.setAlert(err.Error(), true)
	}
	m.loggedIn = ok
	m.user = model.User{}
	if ok {
		if user, found, err := a.sess.User(ctx); err == nil && found {
			m.user = user
		}
	}
	m.langOpen = false
	m.langIdx = langIndex(a.lang)
	return nil
}

func langIndex(lang i18n.Lang) int {
	for i, l := range i18n.All() {
		if l == lang {
			return i
		}
	}
	return 0
}

func (m *settingsModel) update(msg tea.Msg, a *App) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if m.langOpen {
		langs := i18n.All()
		switch key.String() {
		case "up", "k":
			m.langIdx = (m.langIdx + len(langs) - 1) % len(langs)
		case "down", "j":
			m.langIdx = (m.langIdx + 1) % len(langs)
		case "enter":
			return m.applyLanguage(a, langs[m.langIdx])
		case "esc":
			m.langOpen = false
			m.langIdx = langIndex(a.lang)
		}
		return nil
	}
	if !m.loggedIn {
		switch key.String() {
		case "l":
			return a.goTo(screenLogin)
		case "esc":
			return a.goTo(screenSelect)
		}
		return nil
	}
	switch key.String() {
	case "l":
		m.langOpen = true
		return nil
	case "o":
		if err := a.sess.Logout(context.Background()); err != nil {
			a.setAlert(err.Error(), true)
			return nil
		}
		return a.goTo(screenLogin)
	case "esc":
		return a.goTo(screenSelect)
	}
	return nil
}

// applyLanguage persists the choice and marks first-run selection done,
// then reskins the whole app immediately.
func (m *settingsModel) applyLanguage(a *App, lang i18n.Lang) tea.Cmd {
	ctx := context.Background()
	if err := i18n.Save(ctx, a.store, lang); err != nil {
		a.setAlert(err.Error(), true)
		return nil
	}
	if err := a.store.Set(ctx, store.KeyHasSelectedLanguage, "true"); err != nil {
		a.setAlert(err.Error(), true)
		return nil
	}
	a.lang = lang
	a.pick.refresh(a)
	m.langOpen = false
	return nil
}

func (m *settingsModel) view(a *App) string {
	if m.langOpen {
		return a.centered(modalStyle.Render(languagePicker(a, m.langIdx)))
	}
	if !m.loggedIn {
		content := titleStyle.Render(a.t(i18n.KeyNotLoggedIn)) + "\n\n" +
			wrapText(a.t(i18n.KeyCreateAccountFull), 44) + "\n\n" +
			footerStyle.Render("[l] "+a.t(i18n.KeyLogin)+"  [esc] back")
		return a.centered(modalStyle.Render(content))
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.user.Name))
	b.WriteString("\n")
	b.WriteString(accentStyle.Render(a.t(i18n.KeyVerifiedFarmer)))
	if m.user.State != "" {
		b.WriteString(mutedStyle.Render(" · " + m.user.State))
	}
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(a.t(i18n.KeyAppLanguage)))
	b.WriteString(": ")
	b.WriteString(languageLabel(a.lang))
	b.WriteString("\n\n")
	b.WriteString(footerStyle.Render("[l] " + a.t(i18n.KeyAppLanguage) + "  [o] " + a.t(i18n.KeyLogout) + "  [esc] back"))
	return lipgloss.JoinVertical(lipgloss.Left, cardStyle.Width(a.contentWidth()).Render(b.String()))
}

// languagePicker renders the shared language list with a cursor.
func languagePicker(a *App, idx int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.t(i18n.KeyAppLanguage)))
	b.WriteString("\n\n")
	for i, lang := range i18n.All() {
		line := "  " + languageLabel(lang)
		if i == idx {
			line = selectedRowStyle.Render("› " + languageLabel(lang))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(footerStyle.Render("[enter] select  [esc] " + a.t(i18n.KeyCancel)))
	return b.String()
}

func languageLabel(lang i18n.Lang) string {
	switch lang {
	case i18n.English:
		return "English"
	case i18n.Hausa:
		return "Hausa"
	case i18n.Yoruba:
		return "Yorùbá"
	case i18n.Igbo:
		return "Igbo"
	case i18n.Nupe:
		return "Nupe"
	}
	return string(lang)
}
