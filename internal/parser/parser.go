// Package parser defines the parser interfaces and the base implementation
// shared by concrete document parsers.
package parser

import (
	"io"

	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"
)

// Parser reads a document from r and returns its structured outline.
// Implementations understand one specific input format and should return
// the parsererror types for format and extraction failures.
type Parser interface {
	Parse(r io.Reader) (models.Document, error)
}

// Validator checks whether a file looks like the format the parser expects
// before a full parse is attempted.
type Validator interface {
	ValidateFormat(file string) (bool, error)
}

// Converter parses an input file and writes the serialized result.
type Converter interface {
	Convert(inputFile, outputFile string) error
}

// LoggerConfigurable allows injecting a logger after construction.
type LoggerConfigurable interface {
	SetLogger(logger logging.Logger)
}

// FullParser is the complete capability set the commands work with.
type FullParser interface {
	Parser
	Validator
	Converter
	LoggerConfigurable
}
