package report

import (
	"errors"
	"os"
	"time"

	"github.com/katalvlaran/erdos888/numtheory"
	pkgerrors "github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultEdgeSample is the number of leading edges probed for a fix.
const DefaultEdgeSample = 100

var (
	// ErrNoBounds indicates an empty bound list.
	ErrNoBounds = errors.New("report: no bounds configured")

	// ErrBadBound indicates a bound outside [1, numtheory.MaxBound].
	ErrBadBound = errors.New("report: bound out of range")

	// ErrBadSample indicates a negative edge sample.
	ErrBadSample = errors.New("report: edge_sample must be non-negative")

	// ErrBadTimeLimit indicates a negative time limit.
	ErrBadTimeLimit = errors.New("report: time_limit must be non-negative")
)

// Config drives a survey run.
type Config struct {
	Bounds     []int64       `yaml:"bounds"`
	EdgeSample int           `yaml:"edge_sample"`
	TimeLimit  time.Duration `yaml:"time_limit"` // per bound; 0 = unlimited
}

// DefaultConfig returns the survey bounds of the reference run.
func DefaultConfig() Config {
	return Config{
		Bounds:     []int64{65, 100, 150, 200, 210, 300, 500, 750, 1000},
		EdgeSample: DefaultEdgeSample,
	}
}

// Validate checks bounds and knobs.
func (c Config) Validate() error {
	if len(c.Bounds) == 0 {
		return ErrNoBounds
	}
	for _, n := range c.Bounds {
		if n < 1 || n > numtheory.MaxBound {
			return pkgerrors.Wrapf(ErrBadBound, "bound %d", n)
		}
	}
	if c.EdgeSample < 0 {
		return pkgerrors.Wrapf(ErrBadSample, "edge_sample %d", c.EdgeSample)
	}
	if c.TimeLimit < 0 {
		return pkgerrors.Wrapf(ErrBadTimeLimit, "time_limit %s", c.TimeLimit)
	}

	return nil
}

// ParseConfig decodes YAML over DefaultConfig and validates the result.
// Keys absent from the document keep their defaults.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, pkgerrors.Wrap(err, "report: decode config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// LoadConfig reads and parses a YAML config file.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, pkgerrors.Wrapf(err, "report: read config %s", path)
	}

	return ParseConfig(data)
}
