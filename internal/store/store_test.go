package store

import (
	"context"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	st, err := Open(filepath.Join(t.TempDir(), "farmlook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	return st
}

func TestSetGet(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if _, ok, err := st.Get(ctx, KeyToken); err != nil || ok {
		t.Fatalf("expected missing key, got ok=%v err=%v", ok, err)
	}
	if err := st.Set(ctx, KeyToken, "abc"); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, ok, err := st.Get(ctx, KeyToken)
	if err != nil || !ok || got != "abc" {
		t.Fatalf("get = %q, %v, %v; want abc", got, ok, err)
	}

	if err := st.Set(ctx, KeyToken, "def"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, _, _ = st.Get(ctx, KeyToken)
	if got != "def" {
		t.Fatalf("expected overwritten value, got %q", got)
	}
}

func TestDeleteMultiple(t *testing.T) {
	st := openTestStore(t)
	ctx := context.Background()

	if err := st.Set(ctx, KeyToken, "abc"); err != nil {
		t.Fatalf("set token: %v", err)
	}
	if err := st.Set(ctx, KeyUser, `{"id":"1"}`); err != nil {
		t.Fatalf("set user: %v", err)
	}
	if err := st.Delete(ctx, KeyToken, KeyUser); err != nil {
		t.Fatalf("delete: %v", err)
	}
	for _, key := range []string{KeyToken, KeyUser} {
		if _, ok, _ := st.Get(ctx, key); ok {
			t.Fatalf("expected %s removed", key)
		}
	}

	// Deleting absent keys is a no-op.
	if err := st.Delete(ctx, KeyToken); err != nil {
		t.Fatalf("delete absent: %v", err)
	}
}
