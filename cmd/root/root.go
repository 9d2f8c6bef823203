// Package root contains the root command for the application.
package root

import (
	"fjacquet/pdf-outline/internal/config"
	"fjacquet/pdf-outline/internal/container"
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/validation"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// CommonFlags represents the flags shared by multiple commands.
type CommonFlags struct {
	Input    string
	Output   string
	Validate bool
	Format   string
}

var (
	// Log is the shared logrus instance used before the container exists.
	Log = logrus.New()

	// SharedFlags holds the persistent flag values.
	SharedFlags = CommonFlags{}

	appContainer *container.Container

	// Cmd is the root command.
	Cmd = &cobra.Command{
		Use:   "pdf-outline",
		Short: "A CLI tool to extract titles and heading outlines from PDF files as JSON.",
		Long: `pdf-outline converts PDF documents into structured JSON outlines.
It detects the document title and heading hierarchy (H1-H6) from font
styling and emits {"title": ..., "outline": [...]} per document.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to pdf-outline!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			config.LoadEnv()
			Log = config.ConfigureLogging()

			cfg, err := config.InitializeConfig()
			if err != nil {
				Log.Fatalf("Failed to load configuration: %v", err)
			}

			// Command-line format beats the configured default.
			if err := applyFormatOverride(cfg, SharedFlags.Format); err != nil {
				Log.Fatalf("Invalid output format: %v", err)
			}

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				Log.Fatalf("Failed to initialize application: %v", err)
			}
		},
	}
)

// applyFormatOverride replaces the configured output format with the value
// of the -f flag. The configuration was validated when it was loaded, so a
// flag value must pass the same check before it may override it.
func applyFormatOverride(cfg *config.Config, format string) error {
	if format == "" {
		return nil
	}
	if err := validation.IsValidOutputFormat(format); err != nil {
		return err
	}
	cfg.Output.Format = format
	return nil
}

// Init registers the persistent flags on the root command.
func Init() {
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Input, "input", "i", "", "Input file or directory")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Output, "output", "o", "", "Output file or directory")
	Cmd.PersistentFlags().BoolVarP(&SharedFlags.Validate, "validate", "v", false, "Validate file format before conversion")
	Cmd.PersistentFlags().StringVarP(&SharedFlags.Format, "format", "f", "", "Output format: json or csv (default from config)")
}

// GetContainer returns the dependency container built in PersistentPreRun.
func GetContainer() *container.Container {
	return appContainer
}

// GetLogger returns the container's structured logger, falling back to a
// logrus adapter when the container is not initialized yet.
func GetLogger() logging.Logger {
	if appContainer != nil {
		return appContainer.GetLogger()
	}
	return logging.NewLogrusAdapterFromLogger(Log)
}
