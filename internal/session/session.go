// Package session manages the credential session: login and signup
// validation, the persisted token and user snapshot, and logout.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/farmlook/farmlook/internal/api"
	"github.com/farmlook/farmlook/internal/i18n"
	"github.com/farmlook/farmlook/internal/model"
	"github.com/farmlook/farmlook/internal/phone"
	"github.com/farmlook/farmlook/internal/store"
)

const minPasswordLen = 6

// ValidationError is a local pre-flight failure. It carries the string
// key so screens can render it in the active language; Error() reads
// english for non-UI callers.
type ValidationError struct {
	Key i18n.Key
}

func (e *ValidationError) Error() string {
	return i18n.T(i18n.English, e.Key)
}

// Manager layers credential operations over the kv store and the API
// client.
type Manager struct {
	store *store.Store
	api   *api.Client
}

// NewManager builds a session manager.
func NewManager(st *store.Store, client *api.Client) *Manager {
	return &Manager{store: st, api: client}
}

// Login validates and normalizes credentials, exchanges them with the
// backend and persists the token plus a user snapshot. Validation
// failures return before any network call.
func (m *Manager) Login(ctx context.Context, rawPhone, password string) (model.User, error) {
	normalized, ok := phone.Normalize(rawPhone)
	if !ok {
		return model.User{}, &ValidationError{Key: i18n.KeyInvalidPhone}
	}
	if len(password) < minPasswordLen {
		return model.User{}, &ValidationError{Key: i18n.KeyPasswordTooShort}
	}

	token, user, err := m.api.Login(ctx, normalized, password)
	if err != nil {
		return model.User{}, err
	}

	if err := m.store.Set(ctx, store.KeyToken, token); err != nil {
		return model.User{}, fmt.Errorf("persist token: %w", err)
	}
	snapshot, err := json.Marshal(user)
	if err != nil {
		return model.User{}, fmt.Errorf("encode user snapshot: %w", err)
	}
	if err := m.store.Set(ctx, store.KeyUser, string(snapshot)); err != nil {
		return model.User{}, fmt.Errorf("persist user snapshot: %w", err)
	}
	return user, nil
}

// SignupInput carries the signup form fields as entered.
type SignupInput struct {
	Name            string
	Phone           string
	State           string
	Password        string
	ConfirmPassword string
	AgreeToTerms    bool
}

// Signup validates the form in fixed order (name, phone, state,
// password length, password match, agreement), stopping at the first
// failure, then registers the account. Nothing is persisted on
// success; the caller redirects to login.
func (m *Manager) Signup(ctx context.Context, in SignupInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return &ValidationError{Key: i18n.KeyNameRequired}
	}
	normalized, ok := phone.Normalize(in.Phone)
	if !ok {
		return &ValidationError{Key: i18n.KeyInvalidPhone}
	}
	if !ValidState(in.State) {
		return &ValidationError{Key: i18n.KeyStateRequired}
	}
	if len(in.Password) < minPasswordLen {
		return &ValidationError{Key: i18n.KeyPasswordTooShort}
	}
	if in.Password != in.ConfirmPassword {
		return &ValidationError{Key: i18n.KeyPasswordsMismatch}
	}
	if !in.AgreeToTerms {
		return &ValidationError{Key: i18n.KeyMustAgree}
	}

	return m.api.Signup(ctx, api.SignupRequest{
		Name:     name,
		Phone:    normalized,
		Password: in.Password,
		State:    in.State,
	})
}

// Logout removes the token and the user snapshot.
func (m *Manager) Logout(ctx context.Context) error {
	return m.store.Delete(ctx, store.KeyToken, store.KeyUser)
}

// Token reads the bearer token fresh from storage. Gated actions call
// this at the moment of use rather than trusting an earlier read.
func (m *Manager) Token(ctx context.Context) (string, bool, error) {
	return m.store.Get(ctx, store.KeyToken)
}

// User reads the persisted user snapshot.
func (m *Manager) User(ctx context.Context) (model.User, bool, error) {
	raw, ok, err := m.store.Get(ctx, store.KeyUser)
	if err != nil || !ok {
		return model.User{}, false, err
	}
	var user model.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return model.User{}, false, fmt.Errorf("decode user snapshot: %w", err)
	}
	return user, true, nil
}
