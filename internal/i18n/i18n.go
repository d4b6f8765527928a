// Package i18n holds the UI language preference and the bilingual
// string table consulted by every screen.
package i18n

import (
	"context"
	"encoding/json"

	"github.com/farmlook/farmlook/internal/store"
)

// Lang identifies a selectable UI language.
type Lang string

// Selectable languages. Only english and hausa carry full string
// tables; the others fall back to english.
const (
	English Lang = "english"
	Hausa   Lang = "hausa"
	Yoruba  Lang = "yoruba"
	Igbo    Lang = "igbo"
	Nupe    Lang = "nupe"
)

// All lists the selectable languages in display order.
func All() []Lang {
	return []Lang{English, Hausa, Yoruba, Igbo, Nupe}
}

// Valid reports whether l is a selectable language.
func Valid(l Lang) bool {
	switch l {
	case English, Hausa, Yoruba, Igbo, Nupe:
		return true
	}
	return false
}

// T returns the string for key in the given language, falling back to
// english when no translation exists. Unknown keys return the key
// itself so a missing entry is visible rather than blank.
func T(lang Lang, key Key) string {
	entry, ok := table[key]
	if !ok {
		return string(key)
	}
	if s, ok := entry[lang]; ok && s != "" {
		return s
	}
	return entry[English]
}

// Load reads the persisted language preference, defaulting to english.
func Load(ctx context.Context, st *store.Store) (Lang, error) {
	raw, ok, err := st.Get(ctx, store.KeyLanguage)
	if err != nil {
		return English, err
	}
	if !ok {
		return English, nil
	}
	var value string
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return English, err
	}
	if l := Lang(value); Valid(l) {
		return l, nil
	}
	return English, nil
}

// Save persists the language preference as a JSON-encoded value.
func Save(ctx context.Context, st *store.Store, lang Lang) error {
	raw, err := json.Marshal(string(lang))
	if err != nil {
		return err
	}
	return st.Set(ctx, store.KeyLanguage, string(raw))
}
