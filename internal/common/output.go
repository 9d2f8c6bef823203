// Package common provides the output serialization shared by all commands.
package common

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"fjacquet/pdf-outline/internal/models"

	"github.com/gocarina/gocsv"
)

// Delimiter is the rune used between CSV fields. It can be changed through
// configuration before any output is written.
var Delimiter rune = ','

// SetDelimiter sets the delimiter for CSV output.
func SetDelimiter(delim rune) {
	Delimiter = delim
	gocsv.TagSeparator = fmt.Sprintf("%c", delim)
}

// WriteDocumentJSON writes a document as indented JSON. HTML escaping is
// disabled so multilingual text survives verbatim, and the outline field
// is always present even when empty.
func WriteDocumentJSON(doc models.Document, outputFile string) error {
	if doc.Outline == nil {
		doc.Outline = []models.OutlineEntry{}
	}

	if err := ensureParentDir(outputFile); err != nil {
		return err
	}

	file, err := os.Create(outputFile) // #nosec G304 -- CLI tool writes to user-provided paths
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	enc := json.NewEncoder(file)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to write JSON document: %w", err)
	}

	return nil
}

// MarshalDocumentJSON renders the document the same way WriteDocumentJSON
// does, for callers that need the bytes (schema validation, tests).
func MarshalDocumentJSON(doc models.Document) ([]byte, error) {
	if doc.Outline == nil {
		doc.Outline = []models.OutlineEntry{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// WriteOutlineCSV writes the outline entries to a CSV file using the
// configured delimiter. The title is not representable in the flat CSV
// layout and is intentionally omitted.
func WriteOutlineCSV(doc models.Document, outputFile string) error {
	if err := ensureParentDir(outputFile); err != nil {
		return err
	}

	file, err := os.Create(outputFile) // #nosec G304 -- CLI tool writes to user-provided paths
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries := doc.Outline
	if entries == nil {
		entries = []models.OutlineEntry{}
	}

	gocsv.SetCSVWriter(func(out io.Writer) *gocsv.SafeCSVWriter {
		writer := gocsv.DefaultCSVWriter(out)
		writer.Comma = Delimiter
		return writer
	})

	if err := gocsv.MarshalFile(&entries, file); err != nil {
		return fmt.Errorf("failed to write CSV outline: %w", err)
	}

	return nil
}

func ensureParentDir(outputFile string) error {
	dir := filepath.Dir(outputFile)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	return nil
}
