package common

import (
	"errors"
	"io"
	"testing"

	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParser records the calls ProcessFile makes.
type fakeParser struct {
	logger logging.Logger

	validateCalled bool
	validateResult bool
	validateErr    error

	convertCalled bool
	convertInput  string
	convertOutput string
	convertErr    error
}

func (f *fakeParser) Parse(io.Reader) (models.Document, error) {
	return models.NewDocument(), nil
}

func (f *fakeParser) ValidateFormat(string) (bool, error) {
	f.validateCalled = true
	return f.validateResult, f.validateErr
}

func (f *fakeParser) Convert(inputFile, outputFile string) error {
	f.convertCalled = true
	f.convertInput = inputFile
	f.convertOutput = outputFile
	return f.convertErr
}

func (f *fakeParser) SetLogger(logger logging.Logger) {
	f.logger = logger
}

func TestProcessFile_ConvertsWithoutValidation(t *testing.T) {
	p := &fakeParser{}
	log := logging.NewMockLogger()

	ProcessFile(p, "in.pdf", "out.json", false, log)

	assert.False(t, p.validateCalled)
	assert.True(t, p.convertCalled)
	assert.Equal(t, "in.pdf", p.convertInput)
	assert.Equal(t, "out.json", p.convertOutput)
	assert.Same(t, log, p.logger)
}

func TestProcessFile_ValidatesFirstWhenRequested(t *testing.T) {
	p := &fakeParser{validateResult: true}
	log := logging.NewMockLogger()

	ProcessFile(p, "in.pdf", "out.json", true, log)

	assert.True(t, p.validateCalled)
	assert.True(t, p.convertCalled)
	assert.True(t, log.HasMessage("Validation successful."))
}

func TestProcessFile_InvalidFormatIsFatal(t *testing.T) {
	p := &fakeParser{validateResult: false}
	log := logging.NewMockLogger()

	ProcessFile(p, "in.pdf", "out.json", true, log)

	require.NotEmpty(t, log.Entries)
	assert.True(t, log.HasMessage("The file is not in a valid format"))
}

func TestProcessFile_ConvertErrorIsFatal(t *testing.T) {
	p := &fakeParser{convertErr: errors.New("write failed")}
	log := logging.NewMockLogger()

	ProcessFile(p, "in.pdf", "out.json", false, log)

	found := false
	for _, e := range log.Entries {
		if e.Level == "FATAL" {
			found = true
		}
	}
	assert.True(t, found)
}
