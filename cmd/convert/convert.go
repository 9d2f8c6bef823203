// Package convert handles single-file PDF conversion.
package convert

import (
	"path/filepath"

	"fjacquet/pdf-outline/cmd/common"
	"fjacquet/pdf-outline/cmd/root"
	"fjacquet/pdf-outline/internal/container"
	"fjacquet/pdf-outline/internal/fileutils"
	"fjacquet/pdf-outline/internal/logging"

	"github.com/spf13/cobra"
)

// Cmd represents the convert command.
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a PDF file to a JSON outline",
	Long: `Convert a single PDF document to a structured outline.

Example:
  pdf-outline convert -i report.pdf -o report.json`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	inputFile := root.SharedFlags.Input
	outputFile := root.SharedFlags.Output

	if inputFile == "" {
		logger.Fatal("Input file must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	if outputFile == "" {
		// Derive out.json (or out.csv) next to the input.
		ext := ".json"
		if appContainer.GetConfig().Output.Format == "csv" {
			ext = ".csv"
		}
		outputFile = fileutils.ReplaceExtension(inputFile, ext)
	}

	logger.Info("Converting PDF document",
		logging.Field{Key: logging.FieldInputFile, Value: inputFile},
		logging.Field{Key: logging.FieldOutputFile, Value: filepath.Clean(outputFile)})

	p, err := appContainer.GetParser(container.PDF)
	if err != nil {
		logger.Fatalf("Error getting PDF parser: %v", err)
	}

	common.ProcessFile(p, inputFile, outputFile, root.SharedFlags.Validate, logger)
}
