package pdfextract

import (
	"testing"

	"fjacquet/pdf-outline/internal/profile"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chunk(s string, x, y, w, size float64, font string) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w, FontSize: size, Font: font}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Hello World", "Hello World"},
		{"collapses runs", "Hello   \t World", "Hello World"},
		{"trims", "  Hello World \n", "Hello World"},
		{"newlines inside", "Hello\nWorld", "Hello World"},
		{"only whitespace", " \t\n ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.in))
		})
	}
}

func TestAssembleLines_MergesSameBaseline(t *testing.T) {
	texts := []pdf.Text{
		chunk("Hello", 72, 700, 30, 12, "Times-Roman"),
		chunk("World", 110, 700, 30, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 1)
	assert.Equal(t, "Hello World", lines[0].Text)
	assert.Equal(t, 12.0, lines[0].FontSize)
	assert.Equal(t, "Times-Roman", lines[0].FontName)
	assert.Equal(t, 0, lines[0].Page)
	assert.InDelta(t, 72.0, lines[0].X0, 1e-9)
	assert.InDelta(t, 140.0, lines[0].X1, 1e-9)
	assert.InDelta(t, 92.0, lines[0].Y0, 1e-9)
}

func TestAssembleLines_NoSpaceForTightGap(t *testing.T) {
	// Kerned glyph runs sit almost flush against each other and must not
	// get a space injected between them.
	texts := []pdf.Text{
		chunk("Hel", 72, 700, 20, 12, "Times-Roman"),
		chunk("lo", 92.5, 700, 14, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 1)
	assert.Equal(t, "Hello", lines[0].Text)
}

func TestAssembleLines_SplitsRowsOutsideYTolerance(t *testing.T) {
	texts := []pdf.Text{
		chunk("First line", 72, 700, 60, 12, "Times-Roman"),
		chunk("Second line", 72, 685, 70, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 3, profile.Default())

	require.Len(t, lines, 2)
	assert.Equal(t, "First line", lines[0].Text)
	assert.Equal(t, "Second line", lines[1].Text)
	assert.Equal(t, 3, lines[0].Page)
	assert.Less(t, lines[0].Y0, lines[1].Y0)
}

func TestAssembleLines_SmallBaselineJitterStaysOneRow(t *testing.T) {
	texts := []pdf.Text{
		chunk("Slightly", 72, 700, 40, 12, "Times-Roman"),
		chunk("uneven", 116, 701.5, 35, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 1)
	assert.Equal(t, "Slightly uneven", lines[0].Text)
}

func TestAssembleLines_SplitsColumnsAtWideGap(t *testing.T) {
	// Two-column layout: a gap of 20pt or more on the same baseline is a
	// column boundary, not a word space.
	texts := []pdf.Text{
		chunk("Left column", 72, 700, 60, 10, "Times-Roman"),
		chunk("Right column", 300, 700, 65, 10, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 2)
	assert.Equal(t, "Left column", lines[0].Text)
	assert.Equal(t, "Right column", lines[1].Text)
}

func TestAssembleLines_UnorderedInputSortedTopDown(t *testing.T) {
	texts := []pdf.Text{
		chunk("bottom", 72, 100, 40, 12, "Times-Roman"),
		chunk("top", 72, 700, 20, 12, "Times-Roman"),
		chunk("middle", 72, 400, 35, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 3)
	assert.Equal(t, "top", lines[0].Text)
	assert.Equal(t, "middle", lines[1].Text)
	assert.Equal(t, "bottom", lines[2].Text)
}

func TestAssembleLines_MixedStyles(t *testing.T) {
	texts := []pdf.Text{
		chunk("Bold", 72, 700, 30, 14, "Helvetica-Bold"),
		chunk("then", 110, 700, 25, 12, "Times-Roman"),
		chunk("roman", 140, 700, 35, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 1)
	// Mean of 14, 12, 12.
	assert.InDelta(t, 12.666, lines[0].FontSize, 0.001)
	assert.Equal(t, "Times-Roman", lines[0].FontName)
}

func TestAssembleLines_DropsWhitespaceOnlyLines(t *testing.T) {
	texts := []pdf.Text{
		chunk("   ", 72, 700, 10, 12, "Times-Roman"),
		chunk("Real text", 72, 650, 55, 12, "Times-Roman"),
	}

	lines := AssembleLines(texts, 792, 0, profile.Default())

	require.Len(t, lines, 1)
	assert.Equal(t, "Real text", lines[0].Text)
}

func TestAssembleLines_Empty(t *testing.T) {
	assert.Nil(t, AssembleLines(nil, 792, 0, profile.Default()))
}
