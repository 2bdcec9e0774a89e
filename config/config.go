// Package config holds the run configuration of the mstour command:
// defaults, an optional YAML file, and validation.
package config

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	OutputText = "text"
	OutputYAML = "yaml"
)

// ErrNoInput is returned when neither an input file nor a random point count is configured.
var ErrNoInput = errors.New("config: no input file and no random point count")

// ErrBadOutput is returned for an unknown output format.
var ErrBadOutput = errors.New("config: unknown output format")

// ErrBadLogLevel is returned for a log level logrus cannot parse.
var ErrBadLogLevel = errors.New("config: unknown log level")

// ErrBadRandom is returned for negative random settings or a non-positive area.
var ErrBadRandom = errors.New("config: invalid random point settings")

// ErrBadTwoOpt is returned for a negative 2-opt move limit.
var ErrBadTwoOpt = errors.New("config: negative 2-opt move limit")

// Config is the full run configuration.
type Config struct {
	// Input is the point file to load; ignored when Random > 0.
	Input string `yaml:"input"`

	// Random, when positive, generates that many points instead of loading Input.
	Random int `yaml:"random"`
	// Seed drives the random generator; 0 selects a fixed default.
	Seed int64 `yaml:"seed"`
	// Width and Height bound the random points.
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// SavePoints, if set, writes the point set that was used to this path.
	SavePoints string `yaml:"save_points"`

	// TwoOpt enables the 2-opt post-pass.
	TwoOpt bool `yaml:"two_opt"`
	// TwoOptMaxIters bounds accepted 2-opt moves; 0 means unlimited.
	TwoOptMaxIters int `yaml:"two_opt_max_iters"`

	// Output is OutputText or OutputYAML.
	Output string `yaml:"output"`
	// LogLevel is any level name accepted by logrus.ParseLevel.
	LogLevel string `yaml:"log_level"`
	// Progress logs every tour-construction iteration at debug level.
	Progress bool `yaml:"progress"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Width:    1000,
		Height:   1000,
		Output:   OutputText,
		LogLevel: "info",
	}
}

// Load reads a YAML file on top of Default. Keys absent from the file keep
// their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "parse config %s", path)
	}

	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c Config) Validate() error {
	if c.Random < 0 || (c.Random > 0 && (c.Width <= 0 || c.Height <= 0)) {
		return ErrBadRandom
	}
	if c.Random == 0 && strings.TrimSpace(c.Input) == "" {
		return ErrNoInput
	}
	if c.TwoOptMaxIters < 0 {
		return ErrBadTwoOpt
	}
	switch c.Output {
	case OutputText, OutputYAML:
	default:
		return errors.Wrapf(ErrBadOutput, "%q", c.Output)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return errors.Wrapf(ErrBadLogLevel, "%q", c.LogLevel)
	}

	return nil
}
