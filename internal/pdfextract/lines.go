package pdfextract

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/profile"

	"github.com/ledongthuc/pdf"
)

var whitespaceRe = regexp.MustCompile(`\s+`)

// CleanText collapses runs of whitespace into single spaces and trims the
// result.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// AssembleLines reconstructs coherent text lines from positioned text
// chunks of one page. Chunks whose baselines differ by at most the Y
// tolerance belong to the same row; within a row, a horizontal gap of at
// least the X gap tolerance starts a new line (separate columns), while a
// smaller visible gap becomes a single space.
//
// pageNum is 0-based. Lines with empty cleaned text are dropped.
func AssembleLines(texts []pdf.Text, pageHeight float64, pageNum int, prof profile.Profile) []models.Line {
	if len(texts) == 0 {
		return nil
	}

	chunks := make([]pdf.Text, len(texts))
	copy(chunks, texts)

	// Top of the page first, then left to right. PDF user space has its
	// origin at the bottom-left, so a larger Y is higher on the page.
	sort.SliceStable(chunks, func(i, j int) bool {
		if chunks[i].Y != chunks[j].Y {
			return chunks[i].Y > chunks[j].Y
		}
		return chunks[i].X < chunks[j].X
	})

	var lines []models.Line
	var current []pdf.Text

	flush := func() {
		if line, ok := buildLine(current, pageHeight, pageNum); ok {
			lines = append(lines, line)
		}
		current = nil
	}

	for _, c := range chunks {
		if len(current) == 0 {
			current = append(current, c)
			continue
		}

		last := current[len(current)-1]
		sameRow := math.Abs(c.Y-last.Y) <= prof.YTolerance

		if sameRow {
			gap := c.X - (last.X + last.W)
			if gap >= prof.XGapTolerance {
				flush()
			}
		} else {
			flush()
		}
		current = append(current, c)
	}
	flush()

	return lines
}

// buildLine merges one run of chunks into a Line, computing the mean font
// size, the dominant font name and the bounding box.
func buildLine(chunks []pdf.Text, pageHeight float64, pageNum int) (models.Line, bool) {
	if len(chunks) == 0 {
		return models.Line{}, false
	}

	sort.SliceStable(chunks, func(i, j int) bool { return chunks[i].X < chunks[j].X })

	var sb strings.Builder
	var sizeSum float64
	fontCounts := make(map[string]int)
	x0, x1 := chunks[0].X, chunks[0].X+chunks[0].W
	top := chunks[0].Y

	for i, c := range chunks {
		if i > 0 {
			prev := chunks[i-1]
			gap := c.X - (prev.X + prev.W)
			if gap > spaceThreshold(prev.FontSize) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString(c.S)

		sizeSum += c.FontSize
		fontCounts[c.Font]++
		if c.X < x0 {
			x0 = c.X
		}
		if end := c.X + c.W; end > x1 {
			x1 = end
		}
		if c.Y > top {
			top = c.Y
		}
	}

	text := CleanText(sb.String())
	if text == "" {
		return models.Line{}, false
	}

	return models.Line{
		Text:       text,
		FontSize:   sizeSum / float64(len(chunks)),
		FontName:   dominantFont(fontCounts),
		Page:       pageNum,
		X0:         x0,
		X1:         x1,
		Y0:         pageHeight - top,
		PageHeight: pageHeight,
	}, true
}

// spaceThreshold is the horizontal gap beyond which two chunks on the same
// baseline are separated by a space. Text operators often place each word
// (or glyph) as its own chunk without explicit spaces.
func spaceThreshold(fontSize float64) float64 {
	t := 0.25 * fontSize
	if t < 1.0 {
		t = 1.0
	}
	return t
}

func dominantFont(counts map[string]int) string {
	best := ""
	bestCount := 0
	for font, count := range counts {
		if count > bestCount || (count == bestCount && font < best) {
			best = font
			bestCount = count
		}
	}
	return best
}
