package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crimson-sun/braid/internal/model"
)

func TestDefaultValidates(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())

	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 6*time.Hour, c.Jitter())
	assert.Len(t, c.Sources.NonCrisis, 8)

	ts, err := c.FallbackTime()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2018, 6, 30, 23, 53, 8, 0, time.UTC), ts)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "braid.yaml")
	data := `
seed: 7
sample_size: 250
category_caps:
  sports: 100
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), c.Seed)
	assert.Equal(t, 250, c.SampleSize)
	assert.Equal(t, 100, c.Cap("sports"))
	// Untouched keys keep their defaults.
	assert.Equal(t, 6, c.JitterHours)
	assert.Equal(t, 20000, c.Cap("entertainment"))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestValidateRejectsBadValues(t *testing.T) {
	c := Default()
	c.JitterHours = -1
	assert.True(t, errors.Is(c.Validate(), model.ErrConfiguration))

	c = Default()
	c.SampleSize = 0
	assert.True(t, errors.Is(c.Validate(), model.ErrConfiguration))

	c = Default()
	c.CategoryCaps = map[string]int{"sports": -5}
	assert.True(t, errors.Is(c.Validate(), model.ErrConfiguration))

	c = Default()
	c.Fallback = "June 30th 2018"
	assert.True(t, errors.Is(c.Validate(), model.ErrConfiguration))

	c = Default()
	c.Sources.NonCrisis = append(c.Sources.NonCrisis, c.Sources.NonCrisis[0])
	assert.True(t, errors.Is(c.Validate(), model.ErrConfiguration))

	c = Default()
	c.Sources.NonCrisis[0].TimeColumn = ""
	assert.True(t, errors.Is(c.Validate(), model.ErrConfiguration))
}

func TestCapFallsBackToDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, 50000, c.Cap("sports"))
	assert.Equal(t, 20000, c.Cap("politics"))
}
