// Package models defines the document model shared by the extraction and
// output layers.
package models

import "unicode"

// OutlineEntry is a single heading in the document outline. Page numbers
// are 0-based, matching the page indices reported by the extractor.
type OutlineEntry struct {
	Level string `json:"level" csv:"level"`
	Text  string `json:"text" csv:"text"`
	Page  int    `json:"page" csv:"page"`
}

// Metadata carries optional enrichment about the source document. It is
// only attached when metadata output is enabled, so that the default
// output keeps the canonical {title, outline} shape.
type Metadata struct {
	SourceFile string `json:"source_file,omitempty"`
	PageCount  int    `json:"page_count,omitempty"`
	Language   string `json:"language,omitempty"`
}

// Document is the structured result of processing one PDF file.
type Document struct {
	Title    string         `json:"title"`
	Outline  []OutlineEntry `json:"outline"`
	Metadata *Metadata      `json:"metadata,omitempty"`
}

// NewDocument returns an empty document with a non-nil outline so that
// serialization always emits "outline": [] rather than null.
func NewDocument() Document {
	return Document{Outline: []OutlineEntry{}}
}

// Line is a reconstructed text line with the style information needed for
// heading detection. It is the intermediate representation between the PDF
// extractor and the outline builder.
type Line struct {
	Text     string
	FontSize float64
	FontName string
	Page     int

	// Bounding box in PDF user space (origin bottom-left).
	X0, X1 float64

	// Y0 is the distance from the top of the page to the line, which is
	// what the header/footer filter and outline ordering use.
	Y0         float64
	PageHeight float64
}

// HasLetter reports whether the line text contains at least one letter.
func (l Line) HasLetter() bool {
	for _, r := range l.Text {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

// IsAllCaps reports whether the line text contains at least one letter and
// no lowercase letters, mirroring the upper-case heading signal.
func (l Line) IsAllCaps() bool {
	hasLetter := false
	for _, r := range l.Text {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if unicode.IsLower(r) {
			return false
		}
	}
	return hasLetter
}
