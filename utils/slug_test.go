package utils

import "testing"

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Carlos y Maria", "carlos-y-maria"},
		{"  Boda 2024!  ", "boda-2024"},
		{"Nuestra---Boda", "nuestra-boda"},
		{"", ""},
		{"¡Fiesta!", "fiesta"},
	}

	for _, tt := range tests {
		if got := Slugify(tt.title); got != tt.want {
			t.Errorf("Slugify(%q) = %q, want %q", tt.title, got, tt.want)
		}
	}
}
