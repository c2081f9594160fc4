package webflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"spaces", "Red Gum Study", "red-gum-study"},
		{"punctuation collapsed", "Red Gum (Study No. 3)", "red-gum-study-no-3"},
		{"leading and trailing trimmed", "  Dusk!  ", "dusk"},
		{"runs collapse to one hyphen", "a --- b", "a-b"},
		{"digits kept", "Edition 12/50", "edition-12-50"},
		{"already clean", "coastal-light", "coastal-light"},
		{"empty", "", ""},
		{"only punctuation", "()!,", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
