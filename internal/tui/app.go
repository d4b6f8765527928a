// Package tui provides the Bubble Tea interface: login, signup, crop
// selection, image capture and analysis, saved reports and settings.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/farmlook/farmlook/internal/analysis"
	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/session"
	"github.com/farmlook/farmlook/internal/store"
)

type screen int

const (
	screenLogin screen = iota
	screenSignup
	screenSelect
	screenCapture
	screenResult
	screenReports
	screenReportDetail
	screenSettings
)

// asyncMsg tags messages produced by background commands with the
// navigation sequence they were issued under. A message whose sequence
// no longer matches is stale and gets dropped, so a slow response can
// never mutate a screen the user has already left.
type asyncMsg interface {
	sequence() int
}

// Deps bundles everything the TUI needs.
type Deps struct {
	Store   *store.Store
	Session *session.Manager
	API     *api.Client
	Cache   *analysis.Cache
	Logger  *zap.Logger
}

// App is the root Bubble Tea model. One screen is active at a time;
// submodels keep their own state across navigation.
type App struct {
	store *store.Store
	sess  *session.Manager
	apiC  *api.Client
	cache *analysis.Cache
	log   *zap.Logger

	lang i18n.Lang

	active screen
	prev   screen
	seq    int

	width  int
	height int

	// alert is a one-line notice at the bottom of the active screen,
	// cleared on navigation.
	alert    string
	alertErr bool

	langModal *langModalModel

	login    loginModel
	signup   signupModel
	pick     selectModel
	capture  captureModel
	result   resultModel
	reports  reportsModel
	detail   detailModel
	settings settingsModel
}

// NewApp builds the root model. Startup reads are synchronous: the
// language preference, the first-run flag and the persisted token
// decide the initial screen. A present token logs the user straight in.
func NewApp(deps Deps) (*App, error) {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	ctx := context.Background()

	lang, err := i18n.Load(ctx, deps.Store)
	if err != nil {
		return nil, err
	}

	a := &App{
		store: deps.Store,
		sess:  deps.Session,
		apiC:  deps.API,
		cache: deps.Cache,
		log:   deps.Logger,
		lang:  lang,
	}
	a.login = newLoginModel()
	a.signup = newSignupModel()
	a.pick = newSelectModel()
	a.capture = newCaptureModel()
	a.result = newResultModel()
	a.reports = newReportsModel()
	a.detail = newDetailModel()
	a.settings = newSettingsModel()

	if _, chosen, err := deps.Store.Get(ctx, store.KeyHasSelectedLanguage); err != nil {
		return nil, err
	} else if !chosen {
		a.langModal = newLangModal(lang)
	}

	a.active = screenLogin
	if _, ok, err := deps.Session.Token(ctx); err != nil {
		return nil, err
	} else if ok {
		a.active = screenSelect
	}
	return a, nil
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return a.enterCmd(a.active)
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.pick.resize(a)
		a.capture.resize(a)
		a.result.resize(a)
		a.reports.resize(a)
		a.detail.resize(a)
		return a, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
	}

	if am, ok := msg.(asyncMsg); ok && am.sequence() != a.seq {
		return a, nil
	}

	if a.langModal != nil {
		return a, a.langModal.update(msg, a)
	}

	switch a.active {
	case screenLogin:
		return a, a.login.update(msg, a)
	case screenSignup:
		return a, a.signup.update(msg, a)
	case screenSelect:
		return a, a.pick.update(msg, a)
	case screenCapture:
		return a, a.capture.update(msg, a)
	case screenResult:
		return a, a.result.update(msg, a)
	case screenReports:
		return a, a.reports.update(msg, a)
	case screenReportDetail:
		return a, a.detail.update(msg, a)
	case screenSettings:
		return a, a.settings.update(msg, a)
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return ""
	}
	if a.langModal != nil {
		return a.centered(a.langModal.view(a))
	}

	var body string
	switch a.active {
	case screenLogin:
		body = a.login.view(a)
	case screenSignup:
		body = a.signup.view(a)
	case screenSelect:
		body = a.pick.view(a)
	case screenCapture:
		body = a.capture.view(a)
	case screenResult:
		body = a.result.view(a)
	case screenReports:
		body = a.reports.view(a)
	case screenReportDetail:
		body = a.detail.view(a)
	case screenSettings:
		body = a.settings.view(a)
	}

	if a.alert == "" {
		return lipgloss.Place(a.width, a.height, lipgloss.Left, lipgloss.Top, body)
	}
	style := accentStyle
	if a.alertErr {
		style = errorStyle
	}
	alertLine := style.Render(wrapText(a.alert, a.width-2))
	main := lipgloss.Place(a.width, a.height-lipgloss.Height(alertLine), lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + alertLine
}

// goTo switches the active screen. The sequence bump invalidates every
// in-flight background command; the returned command runs the target
// screen's entry work.
func (a *App) goTo(s screen) tea.Cmd {
	a.prev = a.active
	a.active = s
	a.seq++
	a.alert = ""
	a.alertErr = false
	return a.enterCmd(s)
}

func (a *App) goBack() tea.Cmd {
	return a.goTo(a.prev)
}

func (a *App) enterCmd(s screen) tea.Cmd {
	switch s {
	case screenLogin:
		return a.login.enter(a)
	case screenSignup:
		return a.signup.enter(a)
	case screenSelect:
		return a.pick.enter(a)
	case screenCapture:
		return a.capture.enter(a)
	case screenResult:
		return a.result.enter(a)
	case screenReports:
		return a.reports.enter(a)
	case screenReportDetail:
		return a.detail.enter(a)
	case screenSettings:
		return a.settings.enter(a)
	}
	return nil
}

// t localizes a string key in the active language.
func (a *App) t(key i18n.Key) string {
	return i18n.T(a.lang, key)
}

// errText renders an error for display. Local validation failures are
// localized; server-provided messages pass through verbatim; transport
// failures read as a connectivity problem; everything else falls back
// to the given key.
func (a *App) errText(err error, fallback i18n.Key) string {
	var verr *session.ValidationError
	if errors.As(err, &verr) {
		return a.t(verr.Key)
	}
	if msg := api.ServerMessage(err); msg != "" {
		return msg
	}
	if kind, ok := api.KindOf(err); ok && kind == api.KindTransport {
		return a.t(i18n.KeyCannotConnect)
	}
	return a.t(fallback)
}

func (a *App) setAlert(text string, isErr bool) {
	a.alert = text
	a.alertErr = isErr
}

func (a *App) centered(content string) string {
	return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, content)
}

// contentWidth is the wrap width used by text-heavy screens.
func (a *App) contentWidth() int {
	w := a.width - 4
	if w < 20 {
		w = 20
	}
	if w > 96 {
		w = 96
	}
	return w
}
