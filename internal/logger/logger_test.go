package logger

import "testing"

func TestTruncateForLog(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		input    string
		limit    int
		expected string
	}{
		{name: "short string untouched", input: "hello", limit: 10, expected: "hello"},
		{name: "whitespace trimmed", input: "  hello  ", limit: 10, expected: "hello"},
		{name: "long string truncated", input: "hello world", limit: 5, expected: "hello..."},
		{name: "zero limit", input: "hello", limit: 0, expected: ""},
		{name: "multibyte runes", input: "compétences", limit: 6, expected: "compét..."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TruncateForLog(tc.input, tc.limit); got != tc.expected {
				t.Fatalf("expected %q, got %q", tc.expected, got)
			}
		})
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	for _, json := range []bool{true, false} {
		for _, debug := range []bool{true, false} {
			if _, err := New(json, debug); err != nil {
				t.Fatalf("creating logger (json=%v debug=%v): %v", json, debug, err)
			}
		}
	}
}
