package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocument(t *testing.T) {
	doc := NewDocument()

	assert.Equal(t, "", doc.Title)
	assert.NotNil(t, doc.Outline)
	assert.Empty(t, doc.Outline)
	assert.Nil(t, doc.Metadata)
}

func TestLineHasLetter(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"Introduction", true},
		{"1. Überblick", true},
		{"123 456", false},
		{"--- § ---", false},
		{"", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Line{Text: tt.text}.HasLetter(), "text: %q", tt.text)
	}
}

func TestLineIsAllCaps(t *testing.T) {
	tests := []struct {
		text string
		want bool
	}{
		{"CHAPTER ONE", true},
		{"SECTION 2.1", true},
		{"Chapter One", false},
		{"ALL CAPS except one", false},
		{"1234", false}, // digits alone are not "caps"
		{"", false},
		{"ÉCOLE NATIONALE", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Line{Text: tt.text}.IsAllCaps(), "text: %q", tt.text)
	}
}
