// Package outline turns styled text lines into a document title and a
// hierarchical heading outline.
package outline

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"

	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/profile"
)

// Builder runs the heading-detection pipeline with a fixed profile.
type Builder struct {
	prof   profile.Profile
	logger logging.Logger
}

// NewBuilder creates a Builder. A nil logger yields a default one.
func NewBuilder(prof profile.Profile, logger logging.Logger) *Builder {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &Builder{prof: prof, logger: logger}
}

// Scored pairs a line with its heading score.
type Scored struct {
	models.Line
	Score int
}

// ScoreAll returns the header/footer-filtered lines with their scores.
// It is used by the inspect command to show the pipeline's view of a
// document without building the final outline.
func (b *Builder) ScoreAll(lines []models.Line) []Scored {
	kept := b.filterHeadersFooters(lines)
	bodySize, _, ok := bodyStyle(kept)
	if !ok {
		bodySize = 0
	}

	scored := make([]Scored, len(kept))
	for i, line := range kept {
		scored[i] = Scored{Line: line, Score: ScoreLine(line, bodySize, b.prof)}
	}
	return scored
}

// Build derives the title and outline from the document's lines.
//
// The pipeline: drop header/footer lines, elect the body text style, score
// every line against it, pick the best-scoring first-page heading as the
// title, then map the remaining headings to levels by descending font size.
func (b *Builder) Build(lines []models.Line) models.Document {
	doc := models.NewDocument()

	kept := b.filterHeadersFooters(lines)
	if len(kept) == 0 {
		return doc
	}

	bodySize, bodyFont, ok := bodyStyle(kept)
	if !ok {
		// Nothing alphabetic to calibrate against; best effort title.
		doc.Title = kept[0].Text
		return doc
	}

	b.logger.Debug("Elected body text style",
		logging.Field{Key: "font_size", Value: bodySize},
		logging.Field{Key: "font_name", Value: bodyFont})

	scored := make([]Scored, len(kept))
	for i, line := range kept {
		scored[i] = Scored{Line: line, Score: ScoreLine(line, bodySize, b.prof)}
	}

	var candidates []Scored
	for _, sl := range scored {
		if sl.Score >= b.prof.ScoreThreshold && utf8.RuneCountInString(sl.Text) < b.prof.MaxHeadingLength {
			candidates = append(candidates, sl)
		}
	}

	if len(candidates) == 0 {
		doc.Title = largestFirstPageText(kept)
		return doc
	}

	titleText, titlePage, headings := b.selectTitle(kept, candidates)

	levelBySize := levelMap(headings, b.prof.MaxLevels)

	type placed struct {
		entry models.OutlineEntry
		y0    float64
	}
	var entries []placed
	for _, h := range headings {
		level, ok := levelBySize[roundSize(h.FontSize)]
		if !ok {
			continue
		}
		entries = append(entries, placed{
			entry: models.OutlineEntry{Level: level, Text: h.Text, Page: h.Page},
			y0:    h.Y0,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].entry.Page != entries[j].entry.Page {
			return entries[i].entry.Page < entries[j].entry.Page
		}
		return entries[i].y0 < entries[j].y0
	})

	for _, p := range entries {
		doc.Outline = append(doc.Outline, p.entry)
	}

	// Documents with a single prominent line (posters, invitations) get
	// that line as their only H1 rather than as a title.
	if titleText != "" && len(doc.Outline) == 0 {
		doc.Outline = append(doc.Outline, models.OutlineEntry{
			Level: "H1",
			Text:  titleText,
			Page:  titlePage,
		})
		titleText = ""
	}

	doc.Title = titleText

	b.logger.Debug("Built outline",
		logging.Field{Key: logging.FieldTitle, Value: doc.Title},
		logging.Field{Key: logging.FieldHeadings, Value: len(doc.Outline)})

	return doc
}

// filterHeadersFooters keeps lines inside the configured vertical band.
func (b *Builder) filterHeadersFooters(lines []models.Line) []models.Line {
	kept := make([]models.Line, 0, len(lines))
	for _, line := range lines {
		h := line.PageHeight
		if h <= 0 {
			kept = append(kept, line)
			continue
		}
		if line.Y0 > h*b.prof.HeaderMargin && line.Y0 < h*b.prof.FooterMargin {
			kept = append(kept, line)
		}
	}
	return kept
}

// selectTitle picks the highest-scoring first-page candidate as the title
// and returns the remaining headings. When the first page has no candidate
// the largest first-page line becomes the title and all candidates stay.
func (b *Builder) selectTitle(kept []models.Line, candidates []Scored) (string, int, []Scored) {
	titleIdx := -1
	for i, c := range candidates {
		if c.Page != 0 {
			continue
		}
		if titleIdx == -1 || c.Score > candidates[titleIdx].Score {
			titleIdx = i
		}
	}

	if titleIdx >= 0 {
		title := candidates[titleIdx]
		headings := make([]Scored, 0, len(candidates)-1)
		headings = append(headings, candidates[:titleIdx]...)
		headings = append(headings, candidates[titleIdx+1:]...)
		return title.Text, title.Page, headings
	}

	return largestFirstPageText(kept), 0, candidates
}

// bodyStyle elects the most common (rounded size, font) pair among lines
// containing at least one letter.
func bodyStyle(lines []models.Line) (float64, string, bool) {
	type style struct {
		size int
		font string
	}
	counts := make(map[style]int)
	var order []style

	for _, line := range lines {
		if !line.HasLetter() {
			continue
		}
		s := style{size: roundSize(line.FontSize), font: line.FontName}
		if counts[s] == 0 {
			order = append(order, s)
		}
		counts[s]++
	}

	if len(order) == 0 {
		return 0, "", false
	}

	best := order[0]
	for _, s := range order[1:] {
		if counts[s] > counts[best] {
			best = s
		}
	}
	return float64(best.size), best.font, true
}

// largestFirstPageText returns the text of the largest-font line on the
// first page, or "" when the first page has no lines.
func largestFirstPageText(lines []models.Line) string {
	best := -1
	for i, line := range lines {
		if line.Page != 0 {
			continue
		}
		if best == -1 || line.FontSize > lines[best].FontSize {
			best = i
		}
	}
	if best == -1 {
		return ""
	}
	return lines[best].Text
}

// levelMap assigns H1..Hn to the distinct rounded heading sizes in
// descending order, capped at maxLevels.
func levelMap(headings []Scored, maxLevels int) map[int]string {
	seen := make(map[int]bool)
	var sizes []int
	for _, h := range headings {
		size := roundSize(h.FontSize)
		if !seen[size] {
			seen[size] = true
			sizes = append(sizes, size)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sizes)))

	levels := make(map[int]string, len(sizes))
	for i, size := range sizes {
		if i >= maxLevels {
			break
		}
		levels[size] = fmt.Sprintf("H%d", i+1)
	}
	return levels
}

func roundSize(size float64) int {
	return int(math.Round(size))
}
