package batch

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pdf-outline/internal/batch"
	"fjacquet/pdf-outline/internal/journal"
	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingParser converts by writing a canned output file, counting how
// often a real conversion happens.
type countingParser struct {
	conversions int
	failWith    error
}

func (c *countingParser) Parse(io.Reader) (models.Document, error) {
	return models.NewDocument(), nil
}

func (c *countingParser) ValidateFormat(string) (bool, error) {
	return true, nil
}

func (c *countingParser) Convert(inputFile, outputFile string) error {
	if c.failWith != nil {
		return c.failWith
	}
	c.conversions++
	return os.WriteFile(outputFile, []byte(`{"title":"","outline":[]}`), 0600)
}

func (c *countingParser) SetLogger(logging.Logger) {}

func TestConvertOne_IncrementalSkipsUnchangedInput(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	inputFile := filepath.Join(inputDir, "report.pdf")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.7 first version"), 0600))

	jnl, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer func() {
		_ = jnl.Close()
	}()

	p := &countingParser{}
	logger := logging.NewMockLogger()

	// First run converts and records the content hash.
	result := convertOne(p, jnl, inputFile, outputDir, ".json", true, logger)
	assert.Equal(t, batch.StatusOK, result.Status)
	assert.Equal(t, 1, p.conversions)
	assert.FileExists(t, result.OutputFile)

	// Unchanged input with an existing output is skipped, not reconverted.
	result = convertOne(p, jnl, inputFile, outputDir, ".json", true, logger)
	assert.Equal(t, batch.StatusSkipped, result.Status)
	assert.Equal(t, 1, p.conversions)

	// Changed content invalidates the journal hit and converts again.
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.7 second version"), 0600))
	result = convertOne(p, jnl, inputFile, outputDir, ".json", true, logger)
	assert.Equal(t, batch.StatusOK, result.Status)
	assert.Equal(t, 2, p.conversions)
}

func TestConvertOne_MissingOutputDefeatsTheSkip(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	inputFile := filepath.Join(inputDir, "report.pdf")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.7 content"), 0600))

	jnl, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer func() {
		_ = jnl.Close()
	}()

	p := &countingParser{}
	logger := logging.NewMockLogger()

	result := convertOne(p, jnl, inputFile, outputDir, ".json", true, logger)
	require.Equal(t, batch.StatusOK, result.Status)

	// A journal hit alone is not enough: deleting the output forces a
	// reconversion even though the content is unchanged.
	require.NoError(t, os.Remove(result.OutputFile))
	result = convertOne(p, jnl, inputFile, outputDir, ".json", true, logger)
	assert.Equal(t, batch.StatusOK, result.Status)
	assert.Equal(t, 2, p.conversions)
}

func TestConvertOne_NonIncrementalAlwaysConverts(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	inputFile := filepath.Join(inputDir, "report.pdf")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.7 content"), 0600))

	jnl, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer func() {
		_ = jnl.Close()
	}()

	p := &countingParser{}
	logger := logging.NewMockLogger()

	convertOne(p, jnl, inputFile, outputDir, ".json", false, logger)
	result := convertOne(p, jnl, inputFile, outputDir, ".json", false, logger)

	assert.Equal(t, batch.StatusOK, result.Status)
	assert.Equal(t, 2, p.conversions)
}

func TestConvertOne_FailedRunsAreNeverSkipped(t *testing.T) {
	inputDir := t.TempDir()
	outputDir := t.TempDir()
	inputFile := filepath.Join(inputDir, "report.pdf")
	require.NoError(t, os.WriteFile(inputFile, []byte("%PDF-1.7 content"), 0600))

	jnl, err := journal.Open(filepath.Join(t.TempDir(), "journal.db"))
	require.NoError(t, err)
	defer func() {
		_ = jnl.Close()
	}()

	logger := logging.NewMockLogger()

	failing := &countingParser{failWith: assert.AnError}
	result := convertOne(failing, jnl, inputFile, outputDir, ".json", true, logger)
	require.Equal(t, batch.StatusFailed, result.Status)
	require.Error(t, result.Err)

	// The failed attempt is journaled but must not satisfy the skip gate.
	working := &countingParser{}
	result = convertOne(working, jnl, inputFile, outputDir, ".json", true, logger)
	assert.Equal(t, batch.StatusOK, result.Status)
	assert.Equal(t, 1, working.conversions)
}
