package renderer

import "testing"

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"You picked up ITEM{a key}.", "You picked up a key."},
		{"Day: ACTION{1} Hour: ACTION{2}", "Day: 1 Hour: 2"},
		{"There is no door!", "There is no door!"},
		{"", ""},
		{"ITEM{a key} and ITEM{an orb}", "a key and an orb"},
	}
	for _, tt := range tests {
		if got := StripMarkup(tt.in); got != tt.want {
			t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPackageFuncsWithoutRenderer(t *testing.T) {
	SetRenderer(nil)

	// Nil-guarded package functions must not panic without a backend.
	Init()
	Clear()
	ShowMessage("hello")

	if got := FormatText("hello"); got != "hello" {
		t.Errorf("FormatText without renderer = %q, want %q", got, "hello")
	}
	if got := StyleText("hello", StyleItem); got != "hello" {
		t.Errorf("StyleText without renderer = %q, want %q", got, "hello")
	}
	if got := GetInput(); got != "" {
		t.Errorf("GetInput without renderer = %q, want empty", got)
	}
}
