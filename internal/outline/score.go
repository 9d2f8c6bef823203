package outline

import (
	"regexp"
	"strings"

	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/profile"
)

var listItemRe = regexp.MustCompile(`^\d+\.\s`)

// boldMarkers are the font-name fragments that indicate a heavy weight.
var boldMarkers = []string{"bold", "black", "heavy"}

// ScoreLine rates how likely a line is to be a heading relative to the
// document's body text size. Bold fonts, larger sizes and all-caps text
// gain points; sentence-like and label-like endings lose them. Numbered
// list items are never headings.
func ScoreLine(line models.Line, bodySize float64, prof profile.Profile) int {
	score := 0
	fontName := strings.ToLower(line.FontName)

	for _, marker := range boldMarkers {
		if strings.Contains(fontName, marker) {
			score += prof.BoldWeight
			break
		}
	}

	if line.FontSize > bodySize*prof.SizeRatio {
		score += prof.SizeWeight
	}
	if line.FontSize > bodySize*prof.LargeSizeRatio {
		score += prof.LargeSizeWeight
	}

	if line.IsAllCaps() {
		score += prof.CapsWeight
	}

	trimmed := strings.TrimSpace(line.Text)
	if strings.HasSuffix(trimmed, ".") || strings.HasSuffix(trimmed, ":") {
		score -= prof.SentencePenalty
	}

	if listItemRe.MatchString(line.Text) {
		score = 0
	}

	return score
}
