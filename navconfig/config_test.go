package navconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadOverlaysDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	contents := `
map:
  widthMeters: 20
  depthMeters: 20
  cellSideMeters: 0.2
path:
  robotRadiusMeters: 0.3
`
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 20.0, cfg.Map.WidthMeters)
	assert.Equal(t, 0.2, cfg.Map.CellSideMeters)
	assert.Equal(t, 0.3, cfg.Path.RobotRadiusMeters)

	// Fields absent from the file retain their defaults.
	assert.Equal(t, Default().CellCountUpdate, cfg.CellCountUpdate)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := Load("/nonexistent/config.yaml")
	assert.Error(t, err)
}
