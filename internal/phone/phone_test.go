package phone

import "testing"

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
		ok    bool
	}{
		{"ten digits", "8012345678", "+2348012345678", true},
		{"trunk prefix", "08012345678", "+2348012345678", true},
		{"already canonical", "+2348012345678", "+2348012345678", true},
		{"spaces stripped", " 080 1234 5678 ", "+2348012345678", true},
		{"letters", "80123abcde", "", false},
		{"too short", "801234", "", false},
		{"eleven digits no prefix", "18012345678", "", false},
		{"empty", "", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Normalize(tc.input)
			if ok != tc.ok || got != tc.want {
				t.Fatalf("Normalize(%q) = %q, %v; want %q, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	first, ok := Normalize("08012345678")
	if !ok {
		t.Fatalf("expected valid number")
	}
	second, ok := Normalize(first)
	if !ok || second != first {
		t.Fatalf("Normalize not idempotent: %q -> %q", first, second)
	}
}
