package handlers

import "testing"

func TestIsDateYYYYMMDD(t *testing.T) {
	valid := []string{"2025-06-03", "2024-02-29"}
	for _, s := range valid {
		if !isDateYYYYMMDD(s) {
			t.Errorf("isDateYYYYMMDD(%q) = false", s)
		}
	}
	invalid := []string{"", "  ", "2025-13-01", "2025-02-30", "03/06/2025", "June 3rd"}
	for _, s := range invalid {
		if isDateYYYYMMDD(s) {
			t.Errorf("isDateYYYYMMDD(%q) = true", s)
		}
	}
}

func TestNormalizeText(t *testing.T) {
	cases := map[string]string{
		"  Robotics   Club ": "robotics club",
		"CHESS\tCLUB":        "chess club",
		"one\n two":          "one two",
		"":                   "",
		"   ":                "",
	}
	for in, want := range cases {
		if got := normalizeText(in); got != want {
			t.Errorf("normalizeText(%q) = %q, want %q", in, got, want)
		}
	}
}
