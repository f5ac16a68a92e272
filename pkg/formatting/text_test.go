package formatting_test

import (
	"strings"
	"testing"

	"github.com/reviewpulse/pulse/pkg/formatting"
)

func TestPreview(t *testing.T) {
	tests := []struct {
		name  string
		input string
		limit int
		want  string
	}{
		{"short string unchanged", "great coffee", 100, "great coffee"},
		{"exact length unchanged", "abcde", 5, "abcde"},
		{"truncated with ellipsis", "abcdef", 5, "abcde..."},
		{"long text", strings.Repeat("x", 150), 100, strings.Repeat("x", 100) + "..."},
		{"zero limit", "anything", 0, ""},
		{"negative limit", "anything", -1, ""},
		{"empty string", "", 10, ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := formatting.Preview(tc.input, tc.limit); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPreviewMultibyte(t *testing.T) {
	// Truncation must count runes, not bytes.
	input := strings.Repeat("é", 10)
	got := formatting.Preview(input, 4)
	want := strings.Repeat("é", 4) + "..."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
