// Package batch handles batch processing of PDF directories.
package batch

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"fjacquet/pdf-outline/cmd/root"
	"fjacquet/pdf-outline/internal/batch"
	"fjacquet/pdf-outline/internal/container"
	"fjacquet/pdf-outline/internal/fileutils"
	"fjacquet/pdf-outline/internal/journal"
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/parser"

	"github.com/spf13/cobra"
)

var incremental bool

// Cmd represents the batch command.
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process PDF files from a directory",
	Long: `Batch process all PDF files in an input directory and write one
outline per document to the output directory. Each file is converted
independently; a failing document does not abort the run.

Example:
  pdf-outline batch -i input/ -o output/`,
	Run: batchFunc,
}

func init() {
	Cmd.Flags().BoolVar(&incremental, "incremental", false,
		"Skip inputs already converted with identical content (requires the journal)")
}

func batchFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogger()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output

	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	appContainer := root.GetContainer()
	if appContainer == nil {
		logger.Fatal("Container not initialized")
	}

	count, err := run(appContainer, inputDir, outputDir, logger)
	if err != nil {
		logger.Fatalf("Error during batch conversion: %v", err)
	}

	logger.Info(fmt.Sprintf("Batch processing completed. %d documents converted.", count))
}

// run converts every PDF in inputDir and returns the number of successful
// conversions.
func run(appContainer *container.Container, inputDir, outputDir string, logger logging.Logger) (int, error) {
	cfg := appContainer.GetConfig()

	if !fileutils.DirectoryExists(inputDir) {
		return 0, fmt.Errorf("input directory '%s' not found", inputDir)
	}
	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		return 0, fmt.Errorf("failed to create output directory: %w", err)
	}

	files, err := fileutils.ListFilesWithExtension(inputDir, ".pdf")
	if err != nil {
		return 0, fmt.Errorf("failed to read input directory: %w", err)
	}
	if len(files) == 0 {
		logger.Warn("No PDF files found in input directory",
			logging.Field{Key: logging.FieldFile, Value: inputDir})
		return 0, nil
	}

	logger.Info("Starting document processing",
		logging.Field{Key: logging.FieldFile, Value: inputDir},
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	p, err := appContainer.GetParser(container.PDF)
	if err != nil {
		return 0, fmt.Errorf("failed to get PDF parser: %w", err)
	}

	jnl, err := appContainer.OpenJournal()
	if err != nil {
		// The journal is a convenience; a broken journal must not block
		// the conversion itself.
		logger.WithError(err).Warn("Journal unavailable, continuing without it")
		jnl = nil
	}
	if jnl != nil {
		defer func() {
			_ = jnl.Close()
		}()
	}

	useIncremental := incremental || cfg.Batch.Incremental

	ext := ".json"
	if cfg.Output.Format == "csv" {
		ext = ".csv"
	}

	processor := batch.NewProcessor(logger, cfg.Batch.Workers)
	summary := processor.Run(context.Background(), files, func(ctx context.Context, inputFile string) batch.Result {
		return convertOne(p, jnl, inputFile, outputDir, ext, useIncremental, logger)
	})

	logger.Info("Batch summary",
		logging.Field{Key: "processed", Value: summary.Processed},
		logging.Field{Key: "succeeded", Value: summary.Succeeded},
		logging.Field{Key: "failed", Value: summary.Failed},
		logging.Field{Key: "skipped", Value: summary.Skipped})

	return summary.Succeeded, nil
}

// convertOne processes a single file, recording the outcome in the journal
// when one is available.
func convertOne(p parser.FullParser, jnl *journal.Journal, inputFile, outputDir, ext string, useIncremental bool, logger logging.Logger) batch.Result {
	start := time.Now()
	outputFile := filepath.Join(outputDir, fileutils.ReplaceExtension(filepath.Base(inputFile), ext))

	result := batch.Result{InputFile: inputFile, OutputFile: outputFile}

	hash, size, err := fileutils.HashFile(inputFile)
	if err != nil {
		logger.WithError(err).Error("Failed to read input file",
			logging.Field{Key: logging.FieldFile, Value: inputFile})
		result.Status = batch.StatusFailed
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if useIncremental && jnl != nil && fileutils.FileExists(outputFile) {
		seen, err := jnl.Seen(inputFile, hash)
		if err == nil && seen {
			logger.Debug("Skipping unchanged document",
				logging.Field{Key: logging.FieldFile, Value: filepath.Base(inputFile)})
			result.Status = batch.StatusSkipped
			result.Duration = time.Since(start)
			return result
		}
	}

	logger.Info("Processing document",
		logging.Field{Key: logging.FieldFile, Value: filepath.Base(inputFile)})

	if err := p.Convert(inputFile, outputFile); err != nil {
		logger.WithError(err).Error("Failed to convert document",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(inputFile)},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
		result.Status = batch.StatusFailed
		result.Err = err
	} else {
		logger.Info("Successfully converted document",
			logging.Field{Key: logging.FieldFile, Value: filepath.Base(outputFile)},
			logging.Field{Key: logging.FieldDuration, Value: time.Since(start).Milliseconds()})
		result.Status = batch.StatusOK
	}
	result.Duration = time.Since(start)

	if jnl != nil {
		status := journal.StatusOK
		message := ""
		if result.Err != nil {
			status = journal.StatusFailed
			message = result.Err.Error()
		}
		if err := jnl.Record(journal.Entry{
			InputFile:  inputFile,
			OutputFile: outputFile,
			SHA256:     hash,
			SizeBytes:  size,
			Status:     status,
			Message:    message,
			Duration:   result.Duration,
		}); err != nil {
			logger.WithError(err).Warn("Failed to record journal entry")
		}
	}

	return result
}
