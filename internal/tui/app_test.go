package tui

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/farmlook/farmlook/internal/analysis"
	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
	"github.com/farmlook/farmlook/internal/session"
	"github.com/farmlook/farmlook/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "farmlook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

// newTestApp builds an app with the first-run prompt already dismissed
// and the window sized.
func newTestApp(t *testing.T, handler http.Handler) (*App, *store.Store) {
	t.Helper()
	base := "http://127.0.0.1:0"
	if handler != nil {
		server := httptest.NewServer(handler)
		t.Cleanup(server.Close)
		base = server.URL
	}
	st := newTestStore(t)
	ctx := context.Background()
	if err := st.Set(ctx, store.KeyHasSelectedLanguage, "true"); err != nil {
		t.Fatalf("set first-run flag: %v", err)
	}
	client := api.NewClient(base, nil)
	app, err := NewApp(Deps{
		Store:   st,
		Session: session.NewManager(st, client),
		API:     client,
		Cache:   analysis.NewCache(),
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return app, st
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestStartScreenDependsOnToken(t *testing.T) {
	app, st := newTestApp(t, nil)
	if app.active != screenLogin {
		t.Fatalf("active = %d, want login without a token", app.active)
	}

	ctx := context.Background()
	if err := st.Set(ctx, store.KeyToken, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	client := api.NewClient("http://127.0.0.1:0", nil)
	app2, err := NewApp(Deps{
		Store:   st,
		Session: session.NewManager(st, client),
		API:     client,
		Cache:   analysis.NewCache(),
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if app2.active != screenSelect {
		t.Fatalf("active = %d, want crop select with a stored token", app2.active)
	}
}

func TestFirstRunLanguagePrompt(t *testing.T) {
	st := newTestStore(t)
	client := api.NewClient("http://127.0.0.1:0", nil)
	app, err := NewApp(Deps{
		Store:   st,
		Session: session.NewManager(st, client),
		API:     client,
		Cache:   analysis.NewCache(),
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if app.langModal == nil {
		t.Fatal("expected language prompt on first run")
	}
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	// Pick the second entry (hausa) and confirm.
	app.Update(tea.KeyMsg{Type: tea.KeyDown})
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if app.langModal != nil {
		t.Fatal("prompt should close after choosing")
	}
	if app.lang != i18n.Hausa {
		t.Fatalf("lang = %s, want hausa", app.lang)
	}
	ctx := context.Background()
	if raw, ok, _ := st.Get(ctx, store.KeyLanguage); !ok || raw != `"hausa"` {
		t.Fatalf("persisted language = %q, %v", raw, ok)
	}
	if _, ok, _ := st.Get(ctx, store.KeyHasSelectedLanguage); !ok {
		t.Fatal("first-run flag should be set after choosing")
	}

	// A second start must not prompt again.
	app2, err := NewApp(Deps{
		Store:   st,
		Session: session.NewManager(st, client),
		API:     client,
		Cache:   analysis.NewCache(),
	})
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if app2.langModal != nil {
		t.Fatal("prompt must not show once a language was chosen")
	}
	if app2.lang != i18n.Hausa {
		t.Fatalf("lang = %s, want persisted hausa", app2.lang)
	}
}

func TestStaleAnalysisResponseDropped(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.active = screenCapture
	app.capture.state = captureSubmitting
	app.capture.imagePath = "leaf.jpg"

	stale := analyzeDoneMsg{
		seq:    app.seq + 1,
		result: model.AnalysisResult{AnalysisStatus: model.StatusOK, CropIdentified: "Maize"},
	}
	app.Update(stale)

	if _, ok := app.cache.Current(); ok {
		t.Fatal("stale response must not populate the result slot")
	}
	if app.active != screenCapture || app.capture.state != captureSubmitting {
		t.Fatal("stale response must not move the screen")
	}

	fresh := stale
	fresh.seq = app.seq
	app.Update(fresh)

	if result, ok := app.cache.Current(); !ok || result.CropIdentified != "Maize" {
		t.Fatalf("result slot = %+v, %v", result, ok)
	}
	if app.active != screenResult {
		t.Fatalf("active = %d, want result screen", app.active)
	}
}

func TestAnalysisFailureReturnsToConfirm(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.active = screenCapture
	app.capture.state = captureSubmitting
	app.capture.imagePath = "leaf.jpg"

	app.Update(analyzeDoneMsg{seq: app.seq, err: &api.Error{Kind: api.KindTransport}})

	if app.active != screenCapture {
		t.Fatalf("active = %d, want capture screen", app.active)
	}
	if app.capture.state != captureCaptured {
		t.Fatalf("state = %d, want captured so the image can be resubmitted", app.capture.state)
	}
	if app.capture.imagePath != "leaf.jpg" {
		t.Fatal("picked image must survive a failed submission")
	}
	if app.alert == "" || !app.alertErr {
		t.Fatal("failure must surface an error notice")
	}
	if _, ok := app.cache.Current(); ok {
		t.Fatal("failed analysis must not touch the result slot")
	}
}

func TestNewAnalysisOverwritesPrevious(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.cache.Set(model.AnalysisResult{AnalysisStatus: model.StatusOK, CropIdentified: "Maize"})

	app.active = screenCapture
	app.capture.state = captureSubmitting
	app.Update(analyzeDoneMsg{
		seq:    app.seq,
		result: model.AnalysisResult{AnalysisStatus: model.StatusOK, CropIdentified: "Tomato"},
	})

	result, ok := app.cache.Current()
	if !ok || result.CropIdentified != "Tomato" {
		t.Fatalf("result slot = %+v, want latest analysis", result)
	}
}

func TestReportsLoginPrompt(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.active = screenReports
	app.reports.loading = true

	app.Update(reportsLoadedMsg{seq: app.seq, loggedIn: false})

	view := app.reports.view(app)
	if !strings.Contains(view, app.t(i18n.KeyLoginOrCreate)) {
		t.Fatal("logged-out reports view should invite login")
	}
	app.Update(keyRune('l'))
	if app.active != screenLogin {
		t.Fatalf("active = %d, want login screen", app.active)
	}
}

func TestReportRowsRendered(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.active = screenReports
	app.reports.loading = true

	app.Update(reportsLoadedMsg{seq: app.seq, loggedIn: true, reports: []model.SavedReport{
		{ID: "r1", Name: "North field", Crop: "Maize", CreatedAt: "2025-03-01T10:00:00Z", Result: model.ReportResult{Health: "Leaf Blight"}},
	}})

	view := app.reports.view(app)
	for _, want := range []string{"North field", "2025-03-01", "Leaf Blight"} {
		if !strings.Contains(view, want) {
			t.Fatalf("reports view missing %q:\n%s", want, view)
		}
	}

	app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if app.active != screenReportDetail || app.detail.id != "r1" {
		t.Fatalf("active = %d id = %q, want detail of r1", app.active, app.detail.id)
	}
}
