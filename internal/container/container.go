// Package container provides dependency injection for the pdf-outline
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/pdf-outline/internal/common"
	"fjacquet/pdf-outline/internal/config"
	"fjacquet/pdf-outline/internal/docparser"
	"fjacquet/pdf-outline/internal/journal"
	"fjacquet/pdf-outline/internal/language"
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/parser"
	"fjacquet/pdf-outline/internal/profile"
	"fjacquet/pdf-outline/internal/schema"
)

// ParserType defines the types of parsers available. PDF is the only
// format today; the registry keeps the commands format-agnostic.
type ParserType string

// PDF selects the PDF document parser.
const PDF ParserType = "pdf"

// Container holds all application dependencies. It is immutable after
// creation - dependencies are only reachable through getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	profile   profile.Profile
	validator *schema.Validator
	detector  *language.Detector

	parsers map[ParserType]parser.FullParser
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first; everything else needs it.
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)

	profileStore := profile.NewStore(cfg.Profile.File, logger)
	prof, err := profileStore.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load scoring profile: %w", err)
	}

	common.SetDelimiter([]rune(cfg.Output.CSVDelimiter)[0])

	var validator *schema.Validator
	if cfg.Output.ValidateSchema {
		validator, err = schema.NewValidator()
		if err != nil {
			return nil, fmt.Errorf("failed to compile output schema: %w", err)
		}
	}

	var detector *language.Detector
	if cfg.Language.Enabled {
		detector = language.NewDetector()
		logger.Debug("Language detection enabled")
	}

	pdfParser := docparser.NewAdapter(logger, nil, prof)
	pdfParser.SetOutputFormat(cfg.Output.Format)
	pdfParser.SetIncludeMetadata(cfg.Output.IncludeMetadata)
	if validator != nil {
		pdfParser.SetSchemaValidator(validator)
	}
	if detector != nil {
		pdfParser.SetLanguageDetector(detector)
	}

	parsers := map[ParserType]parser.FullParser{
		PDF: pdfParser,
	}

	return &Container{
		logger:    logger,
		config:    cfg,
		profile:   prof,
		validator: validator,
		detector:  detector,
		parsers:   parsers,
	}, nil
}

// GetLogger returns the application logger.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the loaded configuration.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetProfile returns the active scoring profile.
func (c *Container) GetProfile() profile.Profile {
	return c.profile
}

// GetParser returns the parser registered for the given type.
func (c *Container) GetParser(parserType ParserType) (parser.FullParser, error) {
	p, ok := c.parsers[parserType]
	if !ok {
		return nil, fmt.Errorf("unknown parser type: %s", parserType)
	}
	return p, nil
}

// GetPDFAdapter returns the concrete PDF adapter for commands that need
// capabilities beyond the FullParser interface (inspect).
func (c *Container) GetPDFAdapter() (*docparser.Adapter, error) {
	p, err := c.GetParser(PDF)
	if err != nil {
		return nil, err
	}
	adapter, ok := p.(*docparser.Adapter)
	if !ok {
		return nil, fmt.Errorf("PDF parser is not a document adapter")
	}
	return adapter, nil
}

// OpenJournal opens the conversion journal if it is enabled; callers get
// (nil, nil) when journaling is off.
func (c *Container) OpenJournal() (*journal.Journal, error) {
	if !c.config.Batch.JournalEnabled {
		return nil, nil
	}
	return journal.Open(c.config.Batch.JournalFile)
}
