package outline

import (
	"testing"

	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/profile"

	"github.com/stretchr/testify/assert"
)

func TestScoreLine(t *testing.T) {
	prof := profile.Default()
	bodySize := 10.0

	tests := []struct {
		name     string
		line     models.Line
		expected int
	}{
		{
			name:     "body text scores zero",
			line:     models.Line{Text: "Just a normal paragraph line", FontSize: 10, FontName: "Times-Roman"},
			expected: 0,
		},
		{
			name:     "bold font gains points",
			line:     models.Line{Text: "Overview", FontSize: 10, FontName: "Helvetica-Bold"},
			expected: 2,
		},
		{
			name:     "black and heavy weights count as bold",
			line:     models.Line{Text: "Overview", FontSize: 10, FontName: "Arial-Black"},
			expected: 2,
		},
		{
			name:     "larger font gains points",
			line:     models.Line{Text: "Overview", FontSize: 12, FontName: "Times-Roman"},
			expected: 2,
		},
		{
			name:     "much larger font gains an extra point",
			line:     models.Line{Text: "Overview", FontSize: 16, FontName: "Times-Roman"},
			expected: 3,
		},
		{
			name:     "bold large all-caps stacks bonuses",
			line:     models.Line{Text: "CHAPTER ONE", FontSize: 16, FontName: "Helvetica-Bold"},
			expected: 6,
		},
		{
			name:     "sentence ending is penalized",
			line:     models.Line{Text: "This line ends with a period.", FontSize: 12, FontName: "Times-Roman"},
			expected: 0,
		},
		{
			name:     "label ending is penalized",
			line:     models.Line{Text: "Date:", FontSize: 12, FontName: "Times-Roman"},
			expected: 0,
		},
		{
			name:     "numbered list item is never a heading",
			line:     models.Line{Text: "1. First item in the list", FontSize: 16, FontName: "Helvetica-Bold"},
			expected: 0,
		},
		{
			name:     "all-caps requires a letter",
			line:     models.Line{Text: "123 456", FontSize: 10, FontName: "Times-Roman"},
			expected: 0,
		},
		{
			name:     "subset-prefixed bold font is detected",
			line:     models.Line{Text: "Overview", FontSize: 10, FontName: "ABCDEF+Arial-BoldMT"},
			expected: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ScoreLine(tt.line, bodySize, prof))
		})
	}
}

func TestScoreLine_CustomProfile(t *testing.T) {
	prof := profile.Default()
	prof.BoldWeight = 5

	line := models.Line{Text: "Overview", FontSize: 10, FontName: "Helvetica-Bold"}
	assert.Equal(t, 5, ScoreLine(line, 10.0, prof))
}
