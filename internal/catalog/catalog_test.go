package catalog

import (
	"testing"

	"github.com/farmlook/farmlook/internal/i18n"
)

func TestByID(t *testing.T) {
	crop, ok := ByID("maize")
	if !ok || crop.Title.English != "Maize" {
		t.Fatalf("ByID(maize) = %+v, %v", crop, ok)
	}
	if _, ok := ByID("oak"); ok {
		t.Fatalf("expected miss for unknown id")
	}
}

func TestFilter(t *testing.T) {
	if got := Filter(""); len(got) != len(Crops) {
		t.Fatalf("empty query returned %d crops", len(got))
	}
	got := Filter("  ToMa ")
	if len(got) != 1 || got[0].ID != "tomato" {
		t.Fatalf("Filter(ToMa) = %+v", got)
	}
	if got := Filter("zzz"); len(got) != 0 {
		t.Fatalf("expected no match, got %+v", got)
	}
}

func TestDisplayTitle(t *testing.T) {
	crop, _ := ByID("rice")
	if got := crop.DisplayTitle(i18n.Hausa); got != "Shinkafa" {
		t.Fatalf("hausa title = %q", got)
	}
	for _, lang := range []i18n.Lang{i18n.English, i18n.Yoruba, i18n.Igbo, i18n.Nupe} {
		if got := crop.DisplayTitle(lang); got != "Rice" {
			t.Fatalf("%s title = %q, want english", lang, got)
		}
	}
}
