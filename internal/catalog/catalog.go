// Package catalog bundles the static crop reference list.
package catalog

import (
	"strings"

	"github.com/farmlook/farmlook/internal/i18n"
)

// Title carries the bilingual display name of a crop.
type Title struct {
	English string
	Hausa   string
}

// Crop is one selectable catalog entry. The ID is forwarded as request
// metadata on analysis submissions.
type Crop struct {
	ID       string
	Title    Title
	Subtitle string
	Image    string
}

// Crops is the immutable catalog shipped with the client.
var Crops = []Crop{
	{ID: "maize", Title: Title{English: "Maize", Hausa: "Masara"}, Subtitle: "Corn, field or sweet", Image: "maize.jpg"},
	{ID: "tomato", Title: Title{English: "Tomato", Hausa: "Tumatir"}, Subtitle: "Fresh market tomato", Image: "tomato.jpg"},
	{ID: "groundnut", Title: Title{English: "Groundnut", Hausa: "Gyada"}, Subtitle: "Peanut", Image: "groundnut.jpg"},
	{ID: "rice", Title: Title{English: "Rice", Hausa: "Shinkafa"}, Subtitle: "Paddy or upland rice", Image: "rice.jpg"},
	{ID: "beans", Title: Title{English: "Beans", Hausa: "Wake"}, Subtitle: "Cowpea", Image: "beans.jpg"},
	{ID: "soybeans", Title: Title{English: "Soybeans", Hausa: "Waken soya"}, Subtitle: "Soya bean", Image: "soybeans.jpg"},
	{ID: "watermelon", Title: Title{English: "Watermelon", Hausa: "Kankana"}, Subtitle: "Melon fruit", Image: "watermelon.jpg"},
	{ID: "pepper", Title: Title{English: "Pepper", Hausa: "Barkono"}, Subtitle: "Chili or bell pepper", Image: "pepper.jpg"},
	{ID: "guneacorn", Title: Title{English: "Guinea Corn", Hausa: "Dawa"}, Subtitle: "Sorghum", Image: "guneacorn.jpg"},
	{ID: "onion", Title: Title{English: "Onion", Hausa: "Albasa"}, Subtitle: "Bulb onion", Image: "onion.jpg"},
	{ID: "millet", Title: Title{English: "Millet", Hausa: "Gero"}, Subtitle: "Pearl millet", Image: "millet.jpeg"},
	{ID: "cassava", Title: Title{English: "Cassava", Hausa: "Rogo"}, Subtitle: "Root tuber", Image: "cassava.jpg"},
}

// ByID looks up a catalog entry.
func ByID(id string) (Crop, bool) {
	for _, c := range Crops {
		if c.ID == id {
			return c, true
		}
	}
	return Crop{}, false
}

// Filter returns the crops whose english title contains query,
// case-insensitively. An empty query returns the full catalog.
func Filter(query string) []Crop {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return Crops
	}
	out := make([]Crop, 0, len(Crops))
	for _, c := range Crops {
		if strings.Contains(strings.ToLower(c.Title.English), query) {
			out = append(out, c)
		}
	}
	return out
}

// DisplayTitle returns the title in the given language. Only hausa has
// translated titles; everything else reads the english name.
func (c Crop) DisplayTitle(lang i18n.Lang) string {
	if lang == i18n.Hausa && c.Title.Hausa != "" {
		return c.Title.Hausa
	}
	return c.Title.English
}
