// Package converter provides a minimal public API for converting PDF
// documents to outlines without going through the CLI.
package converter

import (
	"io"

	"fjacquet/pdf-outline/internal/docparser"
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/profile"
)

// Document is the public alias for the outline document model.
type Document = models.Document

// OutlineEntry is the public alias for one outline heading.
type OutlineEntry = models.OutlineEntry

// Converter converts PDF documents to structured outlines with the default
// scoring profile.
type Converter struct {
	adapter *docparser.Adapter
}

// New creates a Converter with default settings (JSON output, default
// profile, warnings-only logging).
func New() *Converter {
	logger := logging.NewLogrusAdapter("warn", "text")
	return &Converter{
		adapter: docparser.NewAdapter(logger, nil, profile.Default()),
	}
}

// ConvertFile parses the PDF at inputFile and writes the JSON outline to
// outputFile.
func (c *Converter) ConvertFile(inputFile, outputFile string) error {
	return c.adapter.Convert(inputFile, outputFile)
}

// Parse parses a PDF from r and returns the outline document.
func (c *Converter) Parse(r io.Reader) (Document, error) {
	return c.adapter.Parse(r)
}

// ParseFile parses the PDF at the given path.
func (c *Converter) ParseFile(file string) (Document, error) {
	return c.adapter.ParseFile(file)
}
