package session

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"

	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/store"
)

func newTestManager(t *testing.T, handler http.Handler) (*Manager, *store.Store) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	st, err := store.Open(filepath.Join(t.TempDir(), "farmlook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return NewManager(st, api.NewClient(server.URL, nil)), st
}

func TestLoginPersistsSession(t *testing.T) {
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)
		_ = json.Unmarshal(data, &gotBody)
		_, _ = w.Write([]byte(`{"success":true,"session":{"access_token":"abc"},"user":{"id":"1","user_metadata":{"name":"Ade","state":"Lagos"}}}`))
	})
	m, st := newTestManager(t, handler)
	ctx := context.Background()

	user, err := m.Login(ctx, "08012345678", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.Name != "Ade" {
		t.Fatalf("user = %+v", user)
	}
	if gotBody["phone"] != "+2348012345678" {
		t.Fatalf("submitted phone = %q, want normalized form", gotBody["phone"])
	}

	token, ok, err := st.Get(ctx, store.KeyToken)
	if err != nil || !ok || token != "abc" {
		t.Fatalf("stored token = %q, %v, %v", token, ok, err)
	}
	raw, ok, err := st.Get(ctx, store.KeyUser)
	if err != nil || !ok {
		t.Fatalf("stored user missing: %v", err)
	}
	if raw != `{"id":"1","name":"Ade","state":"Lagos"}` {
		t.Fatalf("stored user = %s", raw)
	}
}

func TestLoginValidationBeforeNetwork(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	m, _ := newTestManager(t, handler)
	ctx := context.Background()

	_, err := m.Login(ctx, "not-a-number", "secret1")
	assertValidation(t, err, i18n.KeyInvalidPhone)

	_, err = m.Login(ctx, "08012345678", "short")
	assertValidation(t, err, i18n.KeyPasswordTooShort)

	if calls.Load() != 0 {
		t.Fatalf("expected no network calls, got %d", calls.Load())
	}
}

func TestSignupValidationOrder(t *testing.T) {
	var calls atomic.Int32
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	m, _ := newTestManager(t, handler)
	ctx := context.Background()

	// All fields invalid at once: the name error surfaces first.
	allBad := SignupInput{Name: "  ", Phone: "x", State: "Atlantis", Password: "a", ConfirmPassword: "b"}
	assertValidation(t, m.Signup(ctx, allBad), i18n.KeyNameRequired)

	steps := []struct {
		in   SignupInput
		want i18n.Key
	}{
		{SignupInput{Name: "Ade", Phone: "x"}, i18n.KeyInvalidPhone},
		{SignupInput{Name: "Ade", Phone: "08012345678", State: "Atlantis"}, i18n.KeyStateRequired},
		{SignupInput{Name: "Ade", Phone: "08012345678", State: "Lagos", Password: "abc"}, i18n.KeyPasswordTooShort},
		{SignupInput{Name: "Ade", Phone: "08012345678", State: "Lagos", Password: "secret1", ConfirmPassword: "secret2"}, i18n.KeyPasswordsMismatch},
		{SignupInput{Name: "Ade", Phone: "08012345678", State: "Lagos", Password: "secret1", ConfirmPassword: "secret1"}, i18n.KeyMustAgree},
	}
	for _, step := range steps {
		assertValidation(t, m.Signup(ctx, step.in), step.want)
	}

	if calls.Load() != 0 {
		t.Fatalf("validation failures must not reach the network, got %d calls", calls.Load())
	}

	ok := SignupInput{Name: "Ade", Phone: "08012345678", State: "Lagos", Password: "secret1", ConfirmPassword: "secret1", AgreeToTerms: true}
	if err := m.Signup(ctx, ok); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if calls.Load() != 1 {
		t.Fatalf("expected exactly one signup request, got %d", calls.Load())
	}
}

func TestSignupDoesNotPersistCredentials(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true}`))
	})
	m, st := newTestManager(t, handler)
	ctx := context.Background()

	in := SignupInput{Name: "Ade", Phone: "08012345678", State: "Lagos", Password: "secret1", ConfirmPassword: "secret1", AgreeToTerms: true}
	if err := m.Signup(ctx, in); err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, ok, _ := st.Get(ctx, store.KeyToken); ok {
		t.Fatalf("signup must not store a token")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":true,"session":{"access_token":"abc"},"user":{"id":"1","user_metadata":{"name":"Ade","state":"Lagos"}}}`))
	})
	m, st := newTestManager(t, handler)
	ctx := context.Background()

	if _, err := m.Login(ctx, "08012345678", "secret1"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := m.Logout(ctx); err != nil {
		t.Fatalf("logout: %v", err)
	}
	for _, key := range []string{store.KeyToken, store.KeyUser} {
		if _, ok, _ := st.Get(ctx, key); ok {
			t.Fatalf("expected %s cleared after logout", key)
		}
	}
	if _, ok, err := m.Token(ctx); ok || err != nil {
		t.Fatalf("token after logout: ok=%v err=%v", ok, err)
	}
}

func assertValidation(t *testing.T, err error, want i18n.Key) {
	t.Helper()
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if verr.Key != want {
		t.Fatalf("validation key = %s, want %s", verr.Key, want)
	}
}
