package arena

import (
	"reflect"
	"testing"
)

func TestIsArenaLine(t *testing.T) {
	tests := []struct {
		line string
		want bool
	}{
		{"Deck", true},
		{"Sideboard", true},
		{"Commander", true},
		{"Companion", true},
		{"4 Shock", true},
		{"4 Commit /// Memory (AKR) 54", true},
		{"", false},
		{"Best deck ever, 5-0 at FNM", false},
		{"deck", false},
	}

	for _, tt := range tests {
		if got := IsArenaLine(tt.line); got != tt.want {
			t.Errorf("IsArenaLine(%q) = %v, want %v", tt.line, got, tt.want)
		}
	}
}

func TestArenaLines(t *testing.T) {
	tests := []struct {
		name  string
		lines []string
		want  []string
	}{
		{
			name:  "noise stripped",
			lines: []string{"My Deck", "", "Deck", "4 Shock", "// comment"},
			want:  []string{"Deck", "4 Shock"},
		},
		{
			name:  "blank line between card lines becomes sideboard",
			lines: []string{"60 Island", "", "2 Negate"},
			want:  []string{"60 Island", "Sideboard", "2 Negate"},
		},
		{
			name:  "blank line before explicit sideboard not doubled",
			lines: []string{"60 Island", "", "Sideboard", "2 Negate"},
			want:  []string{"60 Island", "Sideboard", "2 Negate"},
		},
		{
			name:  "leading and trailing blanks ignored",
			lines: []string{"", "Deck", "60 Island", ""},
			want:  []string{"Deck", "60 Island"},
		},
		{
			name:  "blank line next to noise ignored",
			lines: []string{"exported from Arena", "", "60 Island"},
			want:  []string{"60 Island"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ArenaLines(tt.lines); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ArenaLines() = %v, want %v", got, tt.want)
			}
		})
	}
}
