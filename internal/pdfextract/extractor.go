// Package pdfextract reads positioned, styled text out of PDF files. It is
// the only package that touches the PDF library directly.
package pdfextract

import (
	"fmt"
	"strings"

	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/parsererror"
	"fjacquet/pdf-outline/internal/profile"

	"github.com/ledongthuc/pdf"
)

// Letter-size fallback when a page carries no resolvable MediaBox.
const defaultPageHeight = 792.0

// Extractor extracts content from a PDF file on disk. The interface exists
// so the parser can be tested with canned lines instead of real PDFs.
type Extractor interface {
	// ExtractLines returns the assembled text lines of the whole document
	// together with the page count.
	ExtractLines(pdfPath string) ([]models.Line, int, error)

	// ExtractText returns the plain text of the whole document. It is used
	// for format probing and language detection.
	ExtractText(pdfPath string) (string, error)
}

// StyledExtractor is the production Extractor built on ledongthuc/pdf
// (pure Go, which keeps the container image free of C dependencies).
type StyledExtractor struct {
	profile profile.Profile
	logger  logging.Logger
}

// NewStyledExtractor creates an extractor using the given assembly profile.
func NewStyledExtractor(prof profile.Profile, logger logging.Logger) *StyledExtractor {
	if logger == nil {
		logger = logging.NewLogrusAdapter("info", "text")
	}
	return &StyledExtractor{profile: prof, logger: logger}
}

// ExtractLines implements Extractor.
func (e *StyledExtractor) ExtractLines(pdfPath string) ([]models.Line, int, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	totalPages := r.NumPage()
	var lines []models.Line

	for pageIndex := 1; pageIndex <= totalPages; pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		texts, err := pageTexts(page)
		if err != nil {
			// A single undecodable page should not sink the document.
			e.warnUnreadablePage(pdfPath, pageIndex-1, err)
			continue
		}

		height := pageHeight(page)
		lines = append(lines, AssembleLines(texts, height, pageIndex-1, e.profile)...)
	}

	e.logger.Debug("Extracted lines from PDF",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldPages, Value: totalPages},
		logging.Field{Key: logging.FieldCount, Value: len(lines)})

	return lines, totalPages, nil
}

// ExtractText implements Extractor.
func (e *StyledExtractor) ExtractText(pdfPath string) (string, error) {
	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return "", fmt.Errorf("failed to open PDF: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var sb strings.Builder
	for pageIndex := 1; pageIndex <= r.NumPage(); pageIndex++ {
		page := r.Page(pageIndex)
		if page.V.IsNull() {
			continue
		}

		pageText, err := pagePlainText(page)
		if err != nil || pageText == "" {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteString("\n\n")
		}
		sb.WriteString(pageText)
	}

	return strings.TrimSpace(sb.String()), nil
}

// warnUnreadablePage logs a page that failed to decode, wrapping the cause
// so log consumers can tell page-level failures from whole-document ones.
func (e *StyledExtractor) warnUnreadablePage(pdfPath string, pageNum int, err error) {
	e.logger.WithError(&parsererror.ExtractionError{
		FilePath: pdfPath,
		Page:     pageNum,
		Reason:   "content stream decode",
		Err:      err,
	}).Warn("Skipping unreadable page",
		logging.Field{Key: logging.FieldFile, Value: pdfPath},
		logging.Field{Key: logging.FieldPage, Value: pageNum})
}

// pageTexts collects the positioned text chunks of one page. The underlying
// library panics on some malformed content streams, so the call is fenced.
func pageTexts(page pdf.Page) (texts []pdf.Text, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts = nil
			err = fmt.Errorf("content stream decode error: %v", r)
		}
	}()
	return page.Content().Text, nil
}

func pagePlainText(page pdf.Page) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			text = ""
			err = fmt.Errorf("content stream decode error: %v", r)
		}
	}()
	return page.GetPlainText(nil)
}

// pageHeight resolves the page's MediaBox height, following the Parent
// chain for inherited attributes.
func pageHeight(page pdf.Page) float64 {
	v := page.V
	for depth := 0; !v.IsNull() && depth < 32; depth++ {
		mediaBox := v.Key("MediaBox")
		if mediaBox.Kind() == pdf.Array && mediaBox.Len() == 4 {
			height := mediaBox.Index(3).Float64() - mediaBox.Index(1).Float64()
			if height > 0 {
				return height
			}
		}
		v = v.Key("Parent")
	}
	return defaultPageHeight
}

// MockExtractor is a canned Extractor for tests.
type MockExtractor struct {
	Lines []models.Line
	Pages int
	Text  string
	Err   error
}

// ExtractLines returns the canned lines or error.
func (m *MockExtractor) ExtractLines(pdfPath string) ([]models.Line, int, error) {
	if m.Err != nil {
		return nil, 0, m.Err
	}
	return m.Lines, m.Pages, nil
}

// ExtractText returns the canned text or error.
func (m *MockExtractor) ExtractText(pdfPath string) (string, error) {
	if m.Err != nil {
		return "", m.Err
	}
	return m.Text, nil
}
