package sam

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{"strips parens", "Red Gum (Study No. 3)", "Red Gum Study No. 3"},
		{"strips commas", "Still Life, 2021", "Still Life 2021"},
		{"strips every occurrence", "(a), (b), (c)", "a b c"},
		{"keeps other punctuation", "Dusk # 4 - River's Edge!", "Dusk # 4 - River's Edge!"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cleanTitle(tt.title))
		})
	}
}

func TestStripTags(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"paragraph and breaks",
			"<p>First line<br>second line<br/>third<br />end</p>",
			"First linesecond linethirdend",
		},
		{
			"emphasis tags",
			"<b>bold</b> <strong>strong</strong> <i>italic</i> <em>em</em>",
			"bold strong italic em",
		},
		{
			"every occurrence removed",
			"<p>one</p><p>two</p><p>three</p>",
			"onetwothree",
		},
		{
			"non-breaking space",
			"oil&nbsp;on&nbsp;canvas",
			"oil on canvas",
		},
		{
			"unknown tags untouched",
			"<div>kept</div>",
			"<div>kept</div>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, stripTags(tt.in))
		})
	}
}

func TestPriceMinorUnits(t *testing.T) {
	assert.Equal(t, int64(12550), priceMinorUnits(125.5))
	assert.Equal(t, int64(0), priceMinorUnits(0))
	assert.Equal(t, int64(20000), priceMinorUnits(200))
	// Round, not truncate.
	assert.Equal(t, int64(13), priceMinorUnits(0.125))
}

func TestJoinName(t *testing.T) {
	assert.Equal(t, "Jane Doe", joinName("Jane", "Doe"))
	assert.Equal(t, "Jane", joinName("Jane", ""))
	assert.Equal(t, "Doe", joinName("", "Doe"))
	assert.Equal(t, "", joinName("", ""))
}
