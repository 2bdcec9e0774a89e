package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mstour/config"
)

func TestDefault(t *testing.T) {
	cfg := config.Default()
	assert.Equal(t, config.OutputText, cfg.Output)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1000.0, cfg.Width)
	assert.Equal(t, 1000.0, cfg.Height)
	assert.False(t, cfg.TwoOpt)

	assert.ErrorIs(t, cfg.Validate(), config.ErrNoInput)
}

func TestLoad_OverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mstour.yaml")
	body := "random: 200\nseed: 9\ntwo_opt: true\noutput: yaml\nprogress: true\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 200, cfg.Random)
	assert.Equal(t, int64(9), cfg.Seed)
	assert.True(t, cfg.TwoOpt)
	assert.True(t, cfg.Progress)
	assert.Equal(t, config.OutputYAML, cfg.Output)
	// untouched keys keep defaults
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 1000.0, cfg.Width)
	require.NoError(t, cfg.Validate())
}

func TestLoad_Errors(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("random: [oops\n"), 0o600))
	_, err = config.Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := config.Default()
	valid.Input = "points.txt"
	require.NoError(t, valid.Validate())

	cases := map[string]struct {
		mutate func(*config.Config)
		want   error
	}{
		"negative random": {func(c *config.Config) { c.Random = -1 }, config.ErrBadRandom},
		"zero width":      {func(c *config.Config) { c.Random = 5; c.Width = 0 }, config.ErrBadRandom},
		"blank input":     {func(c *config.Config) { c.Input = "  " }, config.ErrNoInput},
		"negative iters":  {func(c *config.Config) { c.TwoOptMaxIters = -4 }, config.ErrBadTwoOpt},
		"bad output":      {func(c *config.Config) { c.Output = "json" }, config.ErrBadOutput},
		"bad log level":   {func(c *config.Config) { c.LogLevel = "chatty" }, config.ErrBadLogLevel},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := valid
			tc.mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), tc.want)
		})
	}

	random := config.Default()
	random.Random = 10
	assert.NoError(t, random.Validate(), "random points need no input file")
}
