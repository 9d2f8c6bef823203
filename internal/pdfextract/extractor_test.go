package pdfextract

import (
	"errors"
	"testing"

	"fjacquet/pdf-outline/internal/logging"
	"fjacquet/pdf-outline/internal/parsererror"
	"fjacquet/pdf-outline/internal/profile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWarnUnreadablePage_WrapsCauseInExtractionError(t *testing.T) {
	mock := logging.NewMockLogger()
	e := NewStyledExtractor(profile.Default(), mock)

	cause := errors.New("content stream decode error: bad filter")
	e.warnUnreadablePage("broken.pdf", 4, cause)

	require.Len(t, mock.Entries, 1)
	entry := mock.Entries[0]
	assert.Equal(t, "WARN", entry.Level)
	assert.Equal(t, "Skipping unreadable page", entry.Message)

	var extractionErr *parsererror.ExtractionError
	require.ErrorAs(t, entry.Error, &extractionErr)
	assert.Equal(t, "broken.pdf", extractionErr.FilePath)
	assert.Equal(t, 4, extractionErr.Page)
	assert.ErrorIs(t, entry.Error, cause)
}

func TestExtractLines_MissingFile(t *testing.T) {
	e := NewStyledExtractor(profile.Default(), logging.NewMockLogger())

	_, _, err := e.ExtractLines("does-not-exist.pdf")
	assert.Error(t, err)
}
