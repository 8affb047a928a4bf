package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/chronochess/board"
	"github.com/plus3/chronochess/config"
	"github.com/plus3/chronochess/scrubber"
	"github.com/plus3/chronochess/timeline"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := config.Load(config.New(), "")
	require.NoError(t, err)

	assert.Equal(t, 600, cfg.Window.Width)
	assert.Equal(t, 60, cfg.Window.TPS)
	assert.True(t, cfg.Scrubber.Animate)
	assert.Equal(t, scrubber.DefaultDuration, cfg.Scrubber.DurationTicks)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.False(t, cfg.DebugUI)

	opts := cfg.AppOptions()
	assert.Equal(t, scrubber.ScrubSnap, opts.ScrubMode)
	assert.Equal(t, timeline.StackSiblings, opts.Layout.Stacking)
	assert.Equal(t, float64(timeline.DefaultMinThumbnailSize), opts.Layout.MinThumbnailSize)
	assert.Equal(t, 600.0, opts.Geometry.BoardSize)

	b, err := cfg.InitialBoard()
	require.NoError(t, err)
	assert.Equal(t, board.Standard(), b)
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, "chronochess.yaml", `
window:
  width: 480
timeline:
  stacking: branches
scrubber:
  animate: false
  mode: animate
  duration_ticks: 25
start_fen: 8/8/8/4k3/8/8/8/4K3
log:
  level: debug
  development: true
`)

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)

	opts := cfg.AppOptions()
	assert.Equal(t, 480.0, opts.Geometry.BoardSize)
	assert.Equal(t, timeline.StackBranches, opts.Layout.Stacking)
	assert.False(t, opts.Animate)
	assert.Equal(t, scrubber.ScrubAnimate, opts.ScrubMode)
	assert.Equal(t, 25, opts.DurationTicks)

	b, err := cfg.InitialBoard()
	require.NoError(t, err)
	assert.Equal(t, 2, b.Count())

	logger, err := cfg.Logger()
	require.NoError(t, err)
	assert.NotNil(t, logger)
}

func TestEnvOverridesFile(t *testing.T) {
	path := writeFile(t, "chronochess.toml", "[scrubber]\nduration_ticks = 25\n")
	t.Setenv("CHRONOCHESS_SCRUBBER_DURATION_TICKS", "12")
	t.Setenv("CHRONOCHESS_DEBUG_UI", "true")

	cfg, err := config.Load(config.New(), path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Scrubber.DurationTicks)
	assert.True(t, cfg.DebugUI)
}

func TestLoadErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := config.Load(config.New(), filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		for name, content := range map[string]string{
			"width":    "window:\n  width: 4\n",
			"tps":      "window:\n  tps: 0\n",
			"duration": "scrubber:\n  duration_ticks: -1\n",
			"level":    "log:\n  level: loud\n",
		} {
			t.Run(name, func(t *testing.T) {
				_, err := config.Load(config.New(), writeFile(t, "c.yaml", content))
				assert.Error(t, err)
			})
		}
	})

	t.Run("bad fen", func(t *testing.T) {
		cfg, err := config.Load(config.New(), writeFile(t, "c.yaml", "start_fen: not-a-position\n"))
		require.NoError(t, err)
		_, err = cfg.InitialBoard()
		assert.ErrorIs(t, err, board.ErrInvalidFEN)
	})
}
