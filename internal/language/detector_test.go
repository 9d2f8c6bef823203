package language

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetect(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "This document describes the quarterly results of the company in detail.",
			want: "en",
		},
		{
			name: "french",
			text: "Ce document décrit en détail les résultats trimestriels de la société.",
			want: "fr",
		},
		{
			name: "german",
			text: "Dieses Dokument beschreibt die Quartalsergebnisse des Unternehmens ausführlich.",
			want: "de",
		},
		{
			name: "japanese",
			text: "この文書は会社の四半期の業績を詳しく説明しています。",
			want: "ja",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, d.Detect(tt.text))
		})
	}
}

func TestDetect_EmptyText(t *testing.T) {
	d := NewDetector()

	assert.Equal(t, "", d.Detect(""))
	assert.Equal(t, "", d.Detect("   \n\t "))
}
