package analysis

import (
	"testing"

	"github.com/farmlook/farmlook/internal/model"
)

func TestCacheSingleSlot(t *testing.T) {
	cache := NewCache()

	if _, ok := cache.Current(); ok {
		t.Fatalf("fresh cache must be empty")
	}

	a := model.AnalysisResult{AnalysisStatus: model.StatusOK, CropIdentified: "Maize"}
	b := model.AnalysisResult{AnalysisStatus: model.StatusOK, CropIdentified: "Rice"}

	cache.Set(a)
	cache.Set(b)

	got, ok := cache.Current()
	if !ok || got.CropIdentified != "Rice" {
		t.Fatalf("cache holds %+v, %v; want the second result only", got, ok)
	}
}

func TestCacheClear(t *testing.T) {
	cache := NewCache()
	cache.Set(model.AnalysisResult{AnalysisStatus: model.StatusOK})
	cache.Clear()
	if _, ok := cache.Current(); ok {
		t.Fatalf("expected empty cache after clear")
	}
}
