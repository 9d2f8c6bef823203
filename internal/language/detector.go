// Package language provides offline document language detection used for
// optional output metadata.
package language

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector identifies the dominant language of extracted document text.
// Detection is fully statistical and needs no network access.
type Detector struct {
	detector lingua.LanguageDetector
}

// NewDetector builds a detector over the languages the tool commonly sees.
// Restricting the set keeps model loading time and memory reasonable.
func NewDetector() *Detector {
	languages := []lingua.Language{
		lingua.English,
		lingua.French,
		lingua.German,
		lingua.Italian,
		lingua.Spanish,
		lingua.Portuguese,
		lingua.Dutch,
		lingua.Russian,
		lingua.Arabic,
		lingua.Hindi,
		lingua.Chinese,
		lingua.Japanese,
		lingua.Korean,
	}

	return &Detector{
		detector: lingua.NewLanguageDetectorBuilder().
			FromLanguages(languages...).
			Build(),
	}
}

// Detect returns the ISO 639-1 code of the most likely language, or ""
// when the text is empty or no language is confident enough.
func (d *Detector) Detect(text string) string {
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}

	lang, ok := d.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}
