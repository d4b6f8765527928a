package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
)

type loginModel struct {
	phone    textinput.Model
	password textinput.Model
	focus    int
	loading  bool
	spin     spinner.Model
}

type loginDoneMsg struct {
	seq  int
	user model.User
	err  error
}

func (m loginDoneMsg) sequence() int { return m.seq }

func newLoginModel() loginModel {
	phone := textinput.New()
	phone.Placeholder = "e.g 08012345678"
	phone.CharLimit = 20
	phone.Focus()

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = warnStyle

	return loginModel{phone: phone, password: password, spin: spin}
}

func (m *loginModel) enter(a *App) tea.Cmd {
	m.loading = false
	m.password.SetValue("")
	m.setFocus(0)
	return textinput.Blink
}

func (m *loginModel) setFocus(i int) {
	m.focus = i
	m.phone.Blur()
	m.password.Blur()
	if i == 0 {
		m.phone.Focus()
	} else {
		m.password.Focus()
	}
}

func (m *loginModel) update(msg tea.Msg, a *App) tea.Cmd {
	switch msg := msg.(type) {
	case loginDoneMsg:
		m.loading = false
		if msg.err != nil {
			a.setAlert(a.errText(msg.err, i18n.KeyInvalidCreds), true)
			return nil
		}
		cmd := a.goTo(screenSelect)
		a.setAlert(a.t(i18n.KeyLoginSuccessful), false)
		return cmd
	case spinner.TickMsg:
		if !m.loading {
			return nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return cmd
	case tea.KeyMsg:
		if m.loading {
			return nil
		}
		switch msg.String() {
		case "tab", "down":
			m.setFocus((m.focus + 1) % 2)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + 1) % 2)
			return nil
		case "enter":
			return m.submit(a)
		case "ctrl+g":
			return a.goTo(screenSelect)
		case "ctrl+s":
			return a.goTo(screenSignup)
		}
	}
	var cmd tea.Cmd
	if m.focus == 0 {
		m.phone, cmd = m.phone.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return cmd
}

func (m *loginModel) submit(a *App) tea.Cmd {
	m.loading = true
	a.setAlert("", false)
	seq := a.seq
	sess := a.sess
	phone := strings.TrimSpace(m.phone.Value())
	password := m.password.Value()
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		user, err := sess.Login(context.Background(), phone, password)
		return loginDoneMsg{seq: seq, user: user, err: err}
	})
}

func (m *loginModel) view(a *App) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.t(i18n.KeyWelcomeBack)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(a.t(i18n.KeyCheckCropsToday)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(a.t(i18n.KeyPhoneNumber)))
	b.WriteString("\n")
	b.WriteString(m.phone.View())
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render(a.t(i18n.KeyPassword)))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(a.t(i18n.KeyLoggingIn)))
	} else {
		b.WriteString(footerStyle.Render(strings.Join([]string{
			"[enter] " + a.t(i18n.KeyLogin),
			"[ctrl+g] " + a.t(i18n.KeyContinueAsGuest),
			"[ctrl+s] " + a.t(i18n.KeySignUp),
		}, "  ")))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(a.t(i18n.KeyNoAccount) + " " + a.t(i18n.KeySignUp)))
	}
	return cardStyle.Width(a.contentWidth()).Render(b.String())
}
