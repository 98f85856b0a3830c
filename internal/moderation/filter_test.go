package moderation

import "testing"

func TestIsAcceptable(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{"clean text", "Excellent service, highly recommend", true},
		{"empty text", "", true},
		{"exact blocked term", "groseria1", false},
		{"blocked term embedded", "groseria1 great service", false},
		{"blocked term uppercase", "GROSERIA2", false},
		{"blocked term mixed case", "this is InSuLtO1 indeed", false},
		{"blocked term inside word", "xxgroseria1xx", false},
		{"similar but not blocked", "groseria", true},
		{"unicode around blocked term", "qué groseria1 más fea", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsAcceptable(tt.text); got != tt.want {
				t.Errorf("IsAcceptable(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
