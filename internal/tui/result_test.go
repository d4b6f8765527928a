package tui

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
	"github.com/farmlook/farmlook/internal/store"
)

func diseasedResult() model.AnalysisResult {
	return model.AnalysisResult{
		AnalysisStatus:   model.StatusOK,
		CropIdentified:   "Maize",
		HealthAssessment: "Leaf Blight",
		ConfidenceScore:  87,
		PrimaryDiagnosis: model.Diagnosis{
			ProblemName: "Northern Leaf Blight",
			Description: "Fungal infection spreading from the lower leaves.",
			Symptoms:    []string{"Long grey lesions"},
		},
		TreatmentPlan: model.TreatmentPlan{
			ImmediateActions: []string{"Remove affected leaves"},
			OrganicRemedies:  []model.Remedy{{Product: "Neem oil", Application: "Spray weekly"}},
		},
	}
}

func TestResultViewDiseased(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.cache.Set(diseasedResult())
	app.active = screenResult
	app.result.enter(app)

	content := app.result.renderContent(app)
	for _, want := range []string{"Maize", "87%", "Northern Leaf Blight", "Long grey lesions", "Neem oil", "Remove affected leaves"} {
		if !strings.Contains(content, want) {
			t.Fatalf("result content missing %q:\n%s", want, content)
		}
	}
}

func TestResultViewHealthySkipsPlan(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.cache.Set(model.AnalysisResult{
		AnalysisStatus:   model.StatusOK,
		CropIdentified:   "Tomato",
		HealthAssessment: model.HealthHealthy,
		ConfidenceScore:  95,
	})
	app.active = screenResult
	app.result.enter(app)

	content := app.result.renderContent(app)
	if !strings.Contains(content, model.HealthHealthy) {
		t.Fatalf("healthy label missing:\n%s", content)
	}
	if strings.Contains(content, app.t(i18n.KeyActionPlan)) {
		t.Fatalf("healthy result must not show an action plan:\n%s", content)
	}
}

func TestResultViewRejectedImage(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.cache.Set(model.AnalysisResult{AnalysisStatus: model.StatusImageRejected})
	app.active = screenResult
	app.result.enter(app)

	content := app.result.renderContent(app)
	if !strings.Contains(content, app.t(i18n.KeyImageRejected)) {
		t.Fatalf("rejected image message missing:\n%s", content)
	}
}

func TestResultViewEmptySlot(t *testing.T) {
	app, _ := newTestApp(t, nil)
	app.active = screenResult
	app.result.enter(app)

	content := app.result.renderContent(app)
	if !strings.Contains(content, app.t(i18n.KeyNoAnalysisData)) {
		t.Fatalf("empty slot must render an error state:\n%s", content)
	}
}

func TestSaveRequiresName(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	app, st := newTestApp(t, handler)
	ctx := context.Background()
	if err := st.Set(ctx, store.KeyToken, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	app.cache.Set(diseasedResult())
	app.active = screenResult
	app.result.enter(app)

	app.Update(keyRune('s'))
	if !app.result.saveOpen {
		t.Fatal("save dialog should open for a logged-in user")
	}
	app.result.nameInput.SetValue("   ")
	app.Update(tea.KeyMsg{Type: tea.KeyEnter})

	if app.result.saveErr != app.t(i18n.KeyReportNameEmpty) {
		t.Fatalf("saveErr = %q", app.result.saveErr)
	}
	if !app.result.saveOpen {
		t.Fatal("dialog must stay open on an empty name")
	}
	if calls.Load() != 0 {
		t.Fatalf("empty name must not reach the network, got %d calls", calls.Load())
	}
}

func TestSaveGateReadsTokenFresh(t *testing.T) {
	app, st := newTestApp(t, nil)
	app.cache.Set(diseasedResult())
	app.active = screenResult
	app.result.enter(app)

	// No token: the gate fires at the moment of the action.
	app.Update(keyRune('s'))
	if app.result.saveOpen {
		t.Fatal("save dialog must not open without a token")
	}
	if !app.result.loginPrompt {
		t.Fatal("expected a login prompt instead of the dialog")
	}
	app.Update(tea.KeyMsg{Type: tea.KeyEsc})

	// With a token the dialog opens.
	ctx := context.Background()
	if err := st.Set(ctx, store.KeyToken, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	app.Update(keyRune('s'))
	if !app.result.saveOpen {
		t.Fatal("save dialog should open once a token exists")
	}
}

func TestSaveRechecksTokenAtSubmit(t *testing.T) {
	app, st := newTestApp(t, nil)
	ctx := context.Background()
	if err := st.Set(ctx, store.KeyToken, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	app.cache.Set(diseasedResult())

	imagePath := filepath.Join(t.TempDir(), "leaf.jpg")
	if err := os.WriteFile(imagePath, []byte("jpeg-bytes"), 0o644); err != nil {
		t.Fatalf("write image: %v", err)
	}
	app.active = screenResult
	app.result.enter(app)
	app.result.imagePath = imagePath

	// The token disappears between opening the dialog and submitting.
	if err := st.Delete(ctx, store.KeyToken); err != nil {
		t.Fatalf("delete token: %v", err)
	}
	msg := saveReportCmd(app, "North field", imagePath)()
	done, ok := msg.(saveDoneMsg)
	if !ok {
		t.Fatalf("msg = %T", msg)
	}
	if !done.notLoggedIn {
		t.Fatalf("done = %+v, want notLoggedIn", done)
	}

	app.Update(done)
	if app.result.saveOpen {
		t.Fatal("dialog should close when the session is gone")
	}
	if !app.result.loginPrompt {
		t.Fatal("expected the login prompt after the session vanished")
	}
}
