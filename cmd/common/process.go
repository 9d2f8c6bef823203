// Package common contains shared functionality for command handlers.
package common

import (
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/parser"
)

// ProcessFile converts a single file using the given parser, optionally
// validating the input format first.
func ProcessFile(p parser.FullParser, inputFile, outputFile string, validate bool, log logging.Logger) {
	p.SetLogger(log)

	if validate {
		log.Info("Validating format...")
		valid, err := p.ValidateFormat(inputFile)
		if err != nil {
			log.Fatalf("Error validating file: %v", err)
		}
		if !valid {
			log.Fatal("The file is not in a valid format")
		}
		log.Info("Validation successful.")
	}

	if err := p.Convert(inputFile, outputFile); err != nil {
		log.Fatalf("Error converting file: %v", err)
	}
}
