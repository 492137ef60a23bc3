// ABOUTME: Tests for cell-width truncation and padding helpers
// ABOUTME: Covers wide runes, combining sequences, and the ellipsis cut

package tui

import "testing"

func TestTruncate(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 8, "hello w…"},
		{"zero", "hello", 0, ""},
		{"wide runes", "日本語のテキスト", 7, "日本語…"},
		{"empty", "", 4, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := truncate(tc.in, tc.max); got != tc.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tc.in, tc.max, got, tc.want)
			}
		})
	}
}

func TestPad(t *testing.T) {
	t.Parallel()

	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "ab…" {
		t.Errorf("pad should truncate overlong input: %q", got)
	}
}
