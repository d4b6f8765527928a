package tui

import "testing"

func TestWrapText(t *testing.T) {
	cases := []struct {
		name  string
		in    string
		width int
		want  string
	}{
		{"fits", "remove affected leaves", 30, "remove affected leaves"},
		{"wraps on spaces", "remove affected leaves early", 15, "remove affected\nleaves early"},
		{"preserves newlines", "line one\nline two", 20, "line one\nline two"},
		{"long word hard break", "abcdefghij", 4, "abcd\nefgh\nij"},
		{"zero width passthrough", "anything", 0, "anything"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := wrapText(tc.in, tc.width); got != tc.want {
				t.Fatalf("wrapText(%q, %d) = %q, want %q", tc.in, tc.width, got, tc.want)
			}
		})
	}
}

func TestWrapTextWideRunes(t *testing.T) {
	// Double-width runes count two cells each.
	got := wrapText("日本 語語", 4)
	if got != "日本\n語語" {
		t.Fatalf("got %q", got)
	}
}
