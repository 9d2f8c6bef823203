// Package docparser parses PDF documents into structured outlines. It ties
// the extraction, outline-building and enrichment stages together behind
// the parser interfaces the commands use.
package docparser

import (
	"fmt"
	"io"
	"os"
	"strings"

	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/outline"
	"fjacquet/pdf-outline/internal/parsererror"
	"fjacquet/pdf-outline/internal/pdfextract"
)

// pdfMagic is the header every PDF file starts with.
const pdfMagic = "%PDF-"

// hasPDFHeader checks the file's magic bytes without parsing it.
func hasPDFHeader(file string) (bool, error) {
	f, err := os.Open(file) // #nosec G304 -- CLI tool operates on user-provided paths
	if err != nil {
		return false, err
	}
	defer func() {
		_ = f.Close()
	}()

	header := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(f, header); err != nil {
		// Too short to be a PDF.
		return false, nil
	}
	return strings.HasPrefix(string(header), pdfMagic), nil
}

// parseFile runs the extraction and outline pipeline on a PDF file,
// returning the document and the page count.
func parseFile(file string, extractor pdfextract.Extractor, builder *outline.Builder, log logging.Logger) (models.Document, int, error) {
	lines, pageCount, err := extractor.ExtractLines(file)
	if err != nil {
		return models.Document{}, 0, &parsererror.ParseError{
			Parser: "pdf",
			Stage:  "text extraction",
			File:   file,
			Err:    err,
		}
	}

	log.Debug("Extracted document lines",
		logging.Field{Key: logging.FieldFile, Value: file},
		logging.Field{Key: logging.FieldPages, Value: pageCount},
		logging.Field{Key: logging.FieldCount, Value: len(lines)})

	doc := builder.Build(lines)
	if doc.Outline == nil {
		doc.Outline = []models.OutlineEntry{}
	}

	return doc, pageCount, nil
}

// spoolToTempFile writes the reader's content to a temporary PDF file. The
// PDF library needs random access and the file size, so streaming input is
// spooled to disk first. The caller must remove the returned path.
func spoolToTempFile(r io.Reader) (string, error) {
	tempFile, err := os.CreateTemp("", "*.pdf")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary PDF file: %w", err)
	}

	if _, err := io.Copy(tempFile, r); err != nil {
		_ = tempFile.Close()
		_ = os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to write temporary PDF file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		_ = os.Remove(tempFile.Name())
		return "", fmt.Errorf("failed to close temporary PDF file: %w", err)
	}

	return tempFile.Name(), nil
}
