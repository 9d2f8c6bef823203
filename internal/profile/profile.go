// Package profile holds the tunable heading-detection heuristics and their
// YAML persistence.
package profile

import (
	"fmt"
	"os"
	"path/filepath"

	"fjacquet/pdf-outline/internal/logging"

	"gopkg.in/yaml.v3"
)

// Profile collects every tunable constant of the extraction and scoring
// pipeline. The defaults reproduce the reference behavior; a YAML file can
// override individual values for unusual document sets.
type Profile struct {
	// Line assembly.
	YTolerance    float64 `yaml:"y_tolerance"`
	XGapTolerance float64 `yaml:"x_gap_tolerance"`

	// Header/footer filter: keep lines whose top offset is within
	// (HeaderMargin*pageHeight, FooterMargin*pageHeight).
	HeaderMargin float64 `yaml:"header_margin"`
	FooterMargin float64 `yaml:"footer_margin"`

	// Heading scoring.
	BoldWeight      int     `yaml:"bold_weight"`
	SizeRatio       float64 `yaml:"size_ratio"`
	SizeWeight      int     `yaml:"size_weight"`
	LargeSizeRatio  float64 `yaml:"large_size_ratio"`
	LargeSizeWeight int     `yaml:"large_size_weight"`
	CapsWeight      int     `yaml:"caps_weight"`
	SentencePenalty int     `yaml:"sentence_penalty"`
	ScoreThreshold  int     `yaml:"score_threshold"`

	// Headings longer than this many runes are never considered.
	MaxHeadingLength int `yaml:"max_heading_length"`

	// Maximum number of distinct heading sizes mapped to levels (H1..Hn).
	MaxLevels int `yaml:"max_levels"`
}

// Default returns the profile matching the reference heuristics.
func Default() Profile {
	return Profile{
		YTolerance:       2.0,
		XGapTolerance:    20.0,
		HeaderMargin:     0.08,
		FooterMargin:     0.92,
		BoldWeight:       2,
		SizeRatio:        1.15,
		SizeWeight:       2,
		LargeSizeRatio:   1.4,
		LargeSizeWeight:  1,
		CapsWeight:       1,
		SentencePenalty:  2,
		ScoreThreshold:   2,
		MaxHeadingLength: 200,
		MaxLevels:        6,
	}
}

// Validate checks the profile for values that would break the pipeline.
func (p Profile) Validate() error {
	if p.YTolerance < 0 || p.XGapTolerance <= 0 {
		return fmt.Errorf("line assembly tolerances must be positive")
	}
	if p.HeaderMargin < 0 || p.FooterMargin > 1 || p.HeaderMargin >= p.FooterMargin {
		return fmt.Errorf("header/footer margins must satisfy 0 <= header < footer <= 1")
	}
	if p.SizeRatio <= 0 || p.LargeSizeRatio < p.SizeRatio {
		return fmt.Errorf("size ratios must be positive and non-decreasing")
	}
	if p.MaxHeadingLength <= 0 {
		return fmt.Errorf("max_heading_length must be positive")
	}
	if p.MaxLevels < 1 || p.MaxLevels > 6 {
		return fmt.Errorf("max_levels must be between 1 and 6")
	}
	return nil
}

// Store loads and saves profiles.
type Store struct {
	file   string
	logger logging.Logger
}

// NewStore creates a profile store reading from the given YAML file.
func NewStore(file string, logger logging.Logger) *Store {
	return &Store{file: file, logger: logger}
}

// Load reads the profile from disk. A missing file yields the default
// profile; a present but invalid file is an error.
func (s *Store) Load() (Profile, error) {
	p := Default()

	path, err := s.resolve()
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Debug("Profile file not found, using defaults",
				logging.Field{Key: logging.FieldFile, Value: s.file})
			return p, nil
		}
		return p, fmt.Errorf("error resolving profile file: %w", err)
	}

	data, err := os.ReadFile(path) // #nosec G304 -- profile path comes from configuration
	if err != nil {
		return p, fmt.Errorf("error reading profile file: %w", err)
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return p, fmt.Errorf("error parsing profile file %s: %w", path, err)
	}

	if err := p.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid profile in %s: %w", path, err)
	}

	s.logger.Info("Loaded scoring profile",
		logging.Field{Key: logging.FieldFile, Value: path})
	return p, nil
}

// Save writes the profile to the store's file, creating parent directories
// as needed.
func (s *Store) Save(p Profile) error {
	if err := p.Validate(); err != nil {
		return err
	}

	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("error serializing profile: %w", err)
	}

	dir := filepath.Dir(s.file)
	if dir != "." {
		if err := os.MkdirAll(dir, 0750); err != nil {
			return fmt.Errorf("failed to create profile directory: %w", err)
		}
	}

	if err := os.WriteFile(s.file, data, 0600); err != nil {
		return fmt.Errorf("error writing profile file: %w", err)
	}

	return nil
}

// resolve finds the profile file in the standard locations: the configured
// path itself, then ./config/, then ~/.config/pdf-outline/.
func (s *Store) resolve() (string, error) {
	if filepath.IsAbs(s.file) {
		if _, err := os.Stat(s.file); err == nil {
			return s.file, nil
		}
		return "", os.ErrNotExist
	}

	locations := []string{
		s.file,
		filepath.Join("config", s.file),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations, filepath.Join(homeDir, ".config", "pdf-outline", s.file))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}

	return "", os.ErrNotExist
}
