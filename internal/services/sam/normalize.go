package sam

import (
	"math"
	"strings"
)

// cleanTitle removes parenthesis and comma characters from a display
// title. Other punctuation is left untouched.
var titleReplacer = strings.NewReplacer("(", "", ")", "", ",", "")

func cleanTitle(title string) string {
	return titleReplacer.Replace(title)
}

// tagReplacer strips the fixed set of inline HTML tags the SAM
// narratives are known to contain, and turns non-breaking spaces into
// plain spaces. Every occurrence is removed, not just the first.
var tagReplacer = strings.NewReplacer(
	"<p>", "", "</p>", "",
	"<br>", "", "<br/>", "", "<br />", "",
	"<b>", "", "</b>", "",
	"<strong>", "", "</strong>", "",
	"<i>", "", "</i>", "",
	"<em>", "", "</em>", "",
	"&nbsp;", " ",
)

func stripTags(text string) string {
	return tagReplacer.Replace(text)
}

// priceMinorUnits converts a retail price into minor currency units.
func priceMinorUnits(price float64) int64 {
	return int64(math.Round(price * 100))
}

// joinName joins name parts with a single space, skipping empty parts.
func joinName(first, last string) string {
	switch {
	case first == "":
		return last
	case last == "":
		return first
	default:
		return first + " " + last
	}
}
