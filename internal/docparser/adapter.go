package docparser

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"fjacquet/pdf-outline/internal/common"
	"fjacquet/pdf-outline/internal/language"
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"
	"fjacquet/pdf-outline/internal/outline"
	"fjacquet/pdf-outline/internal/parser"
	"fjacquet/pdf-outline/internal/parsererror"
	"fjacquet/pdf-outline/internal/pdfextract"
	"fjacquet/pdf-outline/internal/profile"
	"fjacquet/pdf-outline/internal/schema"
)

// Adapter implements parser.FullParser for PDF documents.
type Adapter struct {
	parser.BaseParser
	extractor pdfextract.Extractor
	builder   *outline.Builder

	// Optional enrichment, injected by the container.
	detector        *language.Detector
	validator       *schema.Validator
	outputFormat    string
	includeMetadata bool
}

// NewAdapter creates a PDF parser adapter. A nil extractor selects the
// production styled extractor.
func NewAdapter(logger logging.Logger, extractor pdfextract.Extractor, prof profile.Profile) *Adapter {
	base := parser.NewBaseParser(logger)
	if extractor == nil {
		extractor = pdfextract.NewStyledExtractor(prof, base.GetLogger())
	}
	return &Adapter{
		BaseParser:   base,
		extractor:    extractor,
		builder:      outline.NewBuilder(prof, base.GetLogger()),
		outputFormat: "json",
	}
}

// SetLanguageDetector enables language detection in document metadata.
func (a *Adapter) SetLanguageDetector(d *language.Detector) {
	a.detector = d
}

// SetSchemaValidator enables validation of documents before writing.
func (a *Adapter) SetSchemaValidator(v *schema.Validator) {
	a.validator = v
}

// SetOutputFormat selects "json" or "csv" output for Convert.
func (a *Adapter) SetOutputFormat(format string) {
	a.outputFormat = format
}

// SetIncludeMetadata toggles the optional metadata block in the output.
func (a *Adapter) SetIncludeMetadata(include bool) {
	a.includeMetadata = include
}

// Parse reads a PDF from r and returns its structured outline. The stream
// is spooled to a temporary file because PDF parsing needs random access.
func (a *Adapter) Parse(r io.Reader) (models.Document, error) {
	tempPath, err := spoolToTempFile(r)
	if err != nil {
		return models.Document{}, err
	}
	defer func() {
		if err := os.Remove(tempPath); err != nil {
			a.GetLogger().WithError(err).Warn("Failed to remove temporary file",
				logging.Field{Key: logging.FieldFile, Value: tempPath})
		}
	}()

	return a.ParseFile(tempPath)
}

// ParseFile parses a PDF file on disk.
func (a *Adapter) ParseFile(file string) (models.Document, error) {
	ok, err := hasPDFHeader(file)
	if err != nil {
		return models.Document{}, fmt.Errorf("error reading input file: %w", err)
	}
	if !ok {
		return models.Document{}, &parsererror.InvalidFormatError{
			FilePath:       file,
			ExpectedFormat: "PDF",
			Msg:            "file does not start with a PDF header",
		}
	}

	doc, pageCount, err := parseFile(file, a.extractor, a.builder, a.GetLogger())
	if err != nil {
		return models.Document{}, err
	}

	if a.includeMetadata {
		a.attachMetadata(&doc, file, pageCount)
	}

	return doc, nil
}

// Convert parses inputFile and writes the result to outputFile in the
// configured output format.
func (a *Adapter) Convert(inputFile, outputFile string) error {
	start := time.Now()
	log := a.GetLogger().WithFields(
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: outputFile},
	)

	doc, err := a.ParseFile(inputFile)
	if err != nil {
		return err
	}

	if a.validator != nil {
		if err := a.validator.ValidateDocument(doc); err != nil {
			return &parsererror.ValidationError{
				Subject: filepath.Base(inputFile),
				Reason:  err.Error(),
			}
		}
	}

	switch a.outputFormat {
	case "csv":
		err = common.WriteOutlineCSV(doc, outputFile)
	default:
		err = common.WriteDocumentJSON(doc, outputFile)
	}
	if err != nil {
		return err
	}

	log.Info("Conversion completed",
		logging.Field{Key: logging.FieldHeadings, Value: len(doc.Outline)},
		logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})

	return nil
}

// ValidateFormat checks whether the file is a readable PDF. A negative
// result is not an error unless the file cannot be read at all.
func (a *Adapter) ValidateFormat(file string) (bool, error) {
	a.GetLogger().Debug("Validating PDF format",
		logging.Field{Key: logging.FieldFile, Value: file})

	if _, err := os.Stat(file); err != nil {
		return false, fmt.Errorf("error accessing file: %w", err)
	}

	ok, err := hasPDFHeader(file)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, nil
	}

	// Header looks right; make sure the document actually decodes.
	if _, err := a.extractor.ExtractText(file); err != nil {
		a.GetLogger().WithError(err).Debug("PDF validation probe failed",
			logging.Field{Key: logging.FieldFile, Value: file})
		return false, nil
	}

	return true, nil
}

// InspectLines returns the scored lines of a document, for the inspect
// command.
func (a *Adapter) InspectLines(file string) ([]outline.Scored, error) {
	lines, _, err := a.extractor.ExtractLines(file)
	if err != nil {
		return nil, &parsererror.ParseError{
			Parser: "pdf",
			Stage:  "text extraction",
			File:   file,
			Err:    err,
		}
	}
	return a.builder.ScoreAll(lines), nil
}

func (a *Adapter) attachMetadata(doc *models.Document, file string, pageCount int) {
	meta := &models.Metadata{
		SourceFile: filepath.Base(file),
		PageCount:  pageCount,
	}

	if a.detector != nil {
		text, err := a.extractor.ExtractText(file)
		if err == nil {
			meta.Language = a.detector.Detect(text)
		}
	}

	doc.Metadata = meta
}
