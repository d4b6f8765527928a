package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/session"
)

const (
	signupFieldName = iota
	signupFieldPhone
	signupFieldState
	signupFieldPassword
	signupFieldConfirm
	signupFieldAgree
	signupFieldCount
)

type signupModel struct {
	name     textinput.Model
	phone    textinput.Model
	password textinput.Model
	confirm  textinput.Model
	stateIdx int
	agree    bool
	focus    int
	loading  bool
	spin     spinner.Model
}

type signupDoneMsg struct {
	seq int
	err error
}

func (m signupDoneMsg) sequence() int { return m.seq }

func newSignupModel() signupModel {
	name := textinput.New()
	name.Placeholder = "Adaeze Obi"
	name.CharLimit = 64
	name.Focus()

	phone := textinput.New()
	phone.Placeholder = "e.g 08012345678"
	phone.CharLimit = 20

	password := textinput.New()
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 64

	confirm := textinput.New()
	confirm.EchoMode = textinput.EchoPassword
	confirm.EchoCharacter = '•'
	confirm.CharLimit = 64

	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = warnStyle

	return signupModel{
		name:     name,
		phone:    phone,
		password: password,
		confirm:  confirm,
		stateIdx: -1,
		spin:     spin,
	}
}

func (m *signupModel) enter(a *App) tea.Cmd {
	m.loading = false
	m.setFocus(signupFieldName)
	return textinput.Blink
}

func (m *signupModel) inputs() []*textinput.Model {
	return []*textinput.Model{&m.name, &m.phone, &m.password, &m.confirm}
}

func (m *signupModel) setFocus(i int) {
	m.focus = i
	for _, in := range m.inputs() {
		in.Blur()
	}
	switch i {
	case signupFieldName:
		m.name.Focus()
	case signupFieldPhone:
		m.phone.Focus()
	case signupFieldPassword:
		m.password.Focus()
	case signupFieldConfirm:
		m.confirm.Focus()
	}
}

func (m *signupModel) focusedInput() *textinput.Model {
	switch m.focus {
	case signupFieldName:
		return &m.name
	case signupFieldPhone:
		return &m.phone
	case signupFieldPassword:
		return &m.password
	case signupFieldConfirm:
		return &m.confirm
	}
	return nil
}

func (m *signupModel) update(msg tea.Msg, a *App) tea.Cmd {
	switch msg := msg.(type) {
	case signupDoneMsg:
		m.loading = false
		if msg.err != nil {
			a.setAlert(a.errText(msg.err, i18n.KeySignupFallback), true)
			return nil
		}
		cmd := a.goTo(screenLogin)
		a.setAlert(a.t(i18n.KeyAccountCreated), false)
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
		case "esc":
			return a.goTo(screenLogin)
		case "tab", "down":
			m.setFocus((m.focus + 1) % signupFieldCount)
			return nil
		case "shift+tab", "up":
			m.setFocus((m.focus + signupFieldCount - 1) % signupFieldCount)
			return nil
		case "enter":
			return m.submit(a)
		case "left":
			if m.focus == signupFieldState {
				m.cycleState(-1)
				return nil
			}
		case "right":
			if m.focus == signupFieldState {
				m.cycleState(1)
				return nil
			}
		case " ":
			if m.focus == signupFieldAgree {
				m.agree = !m.agree
				return nil
			}
		}
	}
	if in := m.focusedInput(); in != nil {
		var cmd tea.Cmd
		*in, cmd = in.Update(msg)
		return cmd
	}
	return nil
}

func (m *signupModel) cycleState(delta int) {
	n := len(session.States)
	if m.stateIdx < 0 {
		if delta > 0 {
			m.stateIdx = 0
		} else {
			m.stateIdx = n - 1
		}
		return
	}
	m.stateIdx = (m.stateIdx + delta + n) % n
}

func (m *signupModel) stateValue() string {
	if m.stateIdx < 0 || m.stateIdx >= len(session.States) {
		return ""
	}
	return session.States[m.stateIdx]
}

func (m *signupModel) submit(a *App) tea.Cmd {
	in := session.SignupInput{
		Name:            m.name.Value(),
		Phone:           m.phone.Value(),
		State:           m.stateValue(),
		Password:        m.password.Value(),
		ConfirmPassword: m.confirm.Value(),
		AgreeToTerms:    m.agree,
	}
	m.loading = true
	a.setAlert("", false)
	seq := a.seq
	sess := a.sess
	return tea.Batch(m.spin.Tick, func() tea.Msg {
		return signupDoneMsg{seq: seq, err: sess.Signup(context.Background(), in)}
	})
}

func (m *signupModel) view(a *App) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(a.t(i18n.KeyJoinFarmLook)))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(wrapText(a.t(i18n.KeyCreateAccountSub), a.contentWidth()-4)))
	b.WriteString("\n\n")

	b.WriteString(labelStyle.Render(a.t(i18n.KeyFullName)))
	b.WriteString("\n")
	b.WriteString(m.name.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(a.t(i18n.KeyPhoneNumber)))
	b.WriteString("\n")
	b.WriteString(m.phone.View())
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(a.t(i18n.KeySelectYourState)))
	b.WriteString("\n")
	stateLine := "‹ " + a.t(i18n.KeySelectYourState) + " ›"
	if s := m.stateValue(); s != "" {
		stateLine = "‹ " + s + " ›"
	}
	if m.focus == signupFieldState {
		b.WriteString(selectedRowStyle.Render(stateLine))
	} else {
		b.WriteString(mutedStyle.Render(stateLine))
	}
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(a.t(i18n.KeyPassword)))
	b.WriteString("\n")
	b.WriteString(m.password.View())
	b.WriteString("\n")
	b.WriteString(labelStyle.Render(a.t(i18n.KeyConfirmPassword)))
	b.WriteString("\n")
	b.WriteString(m.confirm.View())
	b.WriteString("\n\n")

	check := "[ ] "
	if m.agree {
		check = "[x] "
	}
	agreeLine := check + a.t(i18n.KeyAgreeToTerms)
	if m.focus == signupFieldAgree {
		b.WriteString(selectedRowStyle.Render(agreeLine))
	} else {
		b.WriteString(mutedStyle.Render(agreeLine))
	}
	b.WriteString("\n\n")

	if m.loading {
		b.WriteString(m.spin.View())
		b.WriteString(" ")
		b.WriteString(mutedStyle.Render(a.t(i18n.KeyCreating)))
	} else {
		b.WriteString(footerStyle.Render("[enter] " + a.t(i18n.KeySignUp) + "  [esc] " + a.t(i18n.KeyLogin)))
		b.WriteString("\n")
		b.WriteString(mutedStyle.Render(a.t(i18n.KeyHaveAccount) + " " + a.t(i18n.KeyLogin)))
	}
	return cardStyle.Width(a.contentWidth()).Render(b.String())
}
