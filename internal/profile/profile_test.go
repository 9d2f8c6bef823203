package profile

import (
	"os"
	"path/filepath"
	"testing"

	"fjacquet/pdf-outline/internal/logging"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	assert.NoError(t, Default().Validate())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Profile)
	}{
		{"negative y tolerance", func(p *Profile) { p.YTolerance = -1 }},
		{"zero x gap tolerance", func(p *Profile) { p.XGapTolerance = 0 }},
		{"header above footer", func(p *Profile) { p.HeaderMargin = 0.95 }},
		{"footer above one", func(p *Profile) { p.FooterMargin = 1.2 }},
		{"large ratio below size ratio", func(p *Profile) { p.LargeSizeRatio = 1.0 }},
		{"zero heading length", func(p *Profile) { p.MaxHeadingLength = 0 }},
		{"too many levels", func(p *Profile) { p.MaxLevels = 7 }},
		{"zero levels", func(p *Profile) { p.MaxLevels = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Default()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestStoreLoad_MissingFileYieldsDefaults(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.yaml"), logging.NewMockLogger())

	p, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, Default(), p)
}

func TestStoreLoad_PartialOverride(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.yaml")
	content := "score_threshold: 3\nmax_heading_length: 120\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0600))

	store := NewStore(file, logging.NewMockLogger())
	p, err := store.Load()

	require.NoError(t, err)
	assert.Equal(t, 3, p.ScoreThreshold)
	assert.Equal(t, 120, p.MaxHeadingLength)
	// Untouched fields keep their defaults.
	assert.Equal(t, Default().YTolerance, p.YTolerance)
	assert.Equal(t, Default().BoldWeight, p.BoldWeight)
}

func TestStoreLoad_InvalidValuesRejected(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(file, []byte("max_levels: 12\n"), 0600))

	store := NewStore(file, logging.NewMockLogger())
	p, err := store.Load()

	assert.Error(t, err)
	assert.Equal(t, Default(), p)
}

func TestStoreLoad_MalformedYAML(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.yaml")
	require.NoError(t, os.WriteFile(file, []byte("{not yaml: ["), 0600))

	store := NewStore(file, logging.NewMockLogger())
	_, err := store.Load()

	assert.Error(t, err)
}

func TestStoreSaveAndLoadRoundTrip(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "profile.yaml")
	store := NewStore(file, logging.NewMockLogger())

	p := Default()
	p.ScoreThreshold = 4
	p.XGapTolerance = 32.5
	require.NoError(t, store.Save(p))

	loaded, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestStoreSave_RejectsInvalidProfile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "profile.yaml")
	store := NewStore(file, logging.NewMockLogger())

	p := Default()
	p.MaxLevels = 0
	assert.Error(t, store.Save(p))

	_, err := os.Stat(file)
	assert.True(t, os.IsNotExist(err))
}
