package i18n

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/farmlook/farmlook/internal/store"
)

func TestTranslationFallback(t *testing.T) {
	if got := T(Hausa, KeyErrorTitle); got != "Kuskure" {
		t.Fatalf("hausa error title = %q", got)
	}
	// Yoruba, igbo and nupe have no entries; they must surface the
	// english text, never a blank string.
	for _, lang := range []Lang{Yoruba, Igbo, Nupe} {
		if got := T(lang, KeyErrorTitle); got != "Error" {
			t.Fatalf("%s error title = %q, want english fallback", lang, got)
		}
	}
	// Hausa entries that were never translated fall back too.
	if got := T(Hausa, KeyNameRequired); got != "Full name is required" {
		t.Fatalf("untranslated hausa key = %q", got)
	}
}

func TestUnknownKeyVisible(t *testing.T) {
	if got := T(English, Key("bogus_key")); got != "bogus_key" {
		t.Fatalf("unknown key = %q", got)
	}
}

func TestLoadSaveRoundtrip(t *testing.T) {
	st, err := store.Open(filepath.Join(t.TempDir(), "farmlook.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	ctx := context.Background()

	lang, err := Load(ctx, st)
	if err != nil || lang != English {
		t.Fatalf("default language = %q, %v; want english", lang, err)
	}

	if err := Save(ctx, st, Hausa); err != nil {
		t.Fatalf("save: %v", err)
	}
	lang, err = Load(ctx, st)
	if err != nil || lang != Hausa {
		t.Fatalf("loaded language = %q, %v; want hausa", lang, err)
	}

	// The persisted value is JSON-encoded.
	raw, ok, err := st.Get(ctx, store.KeyLanguage)
	if err != nil || !ok || raw != `"hausa"` {
		t.Fatalf("persisted value = %q, %v, %v", raw, ok, err)
	}
}
