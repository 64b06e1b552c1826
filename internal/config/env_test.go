package config

import "testing"

func TestBoolEnvOrDefault(t *testing.T) {
	t.Setenv("BOOL_TEST", "")
	if got := boolEnvOrDefault("BOOL_TEST", true); !got {
		t.Fatalf("expected default true when unset")
	}

	cases := []struct {
		val      string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"1", true},
		{"yes", true},
		{"false", false},
		{"FALSE", false},
		{"0", false},
		{"no", false},
		{"maybe", true}, // falls back to default on unknown
	}

	for _, tc := range cases {
		t.Setenv("BOOL_TEST", tc.val)
		if got := boolEnvOrDefault("BOOL_TEST", true); got != tc.expected {
			t.Fatalf("expected %v for %s, got %v", tc.expected, tc.val, got)
		}
	}
}

func TestFirstNonEmptyAndBoolOr(t *testing.T) {
	if got := firstNonEmpty("", "", "c"); got != "c" {
		t.Fatalf("expected c, got %q", got)
	}
	if got := firstNonEmpty(); got != "" {
		t.Fatalf("expected empty, got %q", got)
	}
	no := false
	if boolOr(&no, true) {
		t.Fatal("expected explicit false to win")
	}
	if !boolOr(nil, true) {
		t.Fatal("expected fallback when unset")
	}
}
