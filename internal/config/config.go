// Package config loads lens model configurations from YAML.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-lens/grid"
	"github.com/ajroetker/go-lens/lensmodel"
	"github.com/ajroetker/go-lens/profiles"
	"github.com/ajroetker/go-lens/quad"
)

// Defaults applied to fields left unset.
const (
	DefaultNumPix     = 100
	DefaultPixelScale = 0.05
	maxFileSize       = 1 * 1024 * 1024 // 1MB
)

// MaxNumPix bounds the grid side. A grid holds MaxNumPix² points and every
// quantity keeps a few maps of that size in memory.
const MaxNumPix = 4096

var (
	// ErrExtension is returned by Load for paths not ending in .yaml or .yml.
	ErrExtension = errors.New("config: file must have .yaml or .yml extension")
	// ErrTooLarge is returned by Load for files over 1MB.
	ErrTooLarge = errors.New("config: file too large")
	// ErrNoLenses is returned when the configuration names no lens.
	ErrNoLenses = errors.New("config: no lenses")
	// ErrInvalid wraps every out-of-range or non-finite field value.
	ErrInvalid = errors.New("config: invalid value")
)

// Config describes a lens model and the grid it is evaluated on.
type Config struct {
	Lenses      []Lens     `yaml:"lenses"`
	Grid        Grid       `yaml:"grid"`
	Quadrature  Quadrature `yaml:"quadrature"`
	Concurrency int        `yaml:"concurrency"`
}

// Lens is one component. Amp and Sigma apply to GAUSSIAN, ThetaE to SIS.
type Lens struct {
	Profile string  `yaml:"profile"`
	Amp     float64 `yaml:"amp"`
	Sigma   float64 `yaml:"sigma"`
	ThetaE  float64 `yaml:"theta_e"`
	CenterX float64 `yaml:"center_x"`
	CenterY float64 `yaml:"center_y"`
}

// Grid is the square pixel grid: NumPix × NumPix pixels of side PixelScale,
// centred on the origin.
type Grid struct {
	NumPix     int     `yaml:"num_pix"`
	PixelScale float64 `yaml:"pixel_scale"`
}

// Quadrature tunes the trapezoid behind the Gaussian potential. Steps is the
// number of subintervals; EndCorrection subtracts the leading error term.
type Quadrature struct {
	Steps         int  `yaml:"steps"`
	EndCorrection bool `yaml:"end_correction"`
}

// Load reads and validates the configuration at path.
func Load(path string) (*Config, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%q: %w", ext, ErrExtension)
	}

	fileInfo, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	if fileInfo.Size() > maxFileSize {
		return nil, fmt.Errorf("%d bytes (max %d): %w", fileInfo.Size(), maxFileSize, ErrTooLarge)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML, applies defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config YAML: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Grid.NumPix == 0 {
		c.Grid.NumPix = DefaultNumPix
	}
	if c.Grid.PixelScale == 0 {
		c.Grid.PixelScale = DefaultPixelScale
	}
	if c.Quadrature.Steps == 0 {
		c.Quadrature.Steps = quad.DefaultSteps
	}
}

// Validate checks every field and returns the first problem found.
func (c *Config) Validate() error {
	if len(c.Lenses) == 0 {
		return ErrNoLenses
	}
	for i, l := range c.Lenses {
		if err := l.validate(); err != nil {
			return fmt.Errorf("lenses[%d]: %w", i, err)
		}
	}
	if c.Grid.NumPix < 1 {
		return fmt.Errorf("num_pix must be positive, got %d: %w", c.Grid.NumPix, ErrInvalid)
	}
	if c.Grid.NumPix > MaxNumPix {
		return fmt.Errorf("num_pix must be at most %d, got %d: %w", MaxNumPix, c.Grid.NumPix, ErrInvalid)
	}
	if !(c.Grid.PixelScale > 0) || math.IsInf(c.Grid.PixelScale, 0) {
		return fmt.Errorf("pixel_scale must be positive, got %v: %w", c.Grid.PixelScale, ErrInvalid)
	}
	if c.Quadrature.Steps < 1 {
		return fmt.Errorf("steps must be positive, got %d: %w", c.Quadrature.Steps, ErrInvalid)
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("concurrency must be non-negative, got %d: %w", c.Concurrency, ErrInvalid)
	}
	return nil
}

func (l Lens) validate() error {
	if err := profiles.Check(l.Profile); err != nil {
		return err
	}
	if !finite(l.CenterX) || !finite(l.CenterY) {
		return fmt.Errorf("center must be finite: %w", ErrInvalid)
	}
	switch l.Profile {
	case profiles.GaussianName:
		if !finite(l.Amp) {
			return fmt.Errorf("amp must be finite, got %v: %w", l.Amp, ErrInvalid)
		}
		if !(l.Sigma > 0) || !finite(l.Sigma) {
			return fmt.Errorf("sigma must be positive, got %v: %w", l.Sigma, ErrInvalid)
		}
	case profiles.SISName:
		if !(l.ThetaE >= 0) || !finite(l.ThetaE) {
			return fmt.Errorf("theta_e must be non-negative, got %v: %w", l.ThetaE, ErrInvalid)
		}
	}
	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Components binds each configured lens to its profile.
func (c *Config) Components() []lensmodel.Component {
	g := profiles.Gaussian{Steps: c.Quadrature.Steps, EndCorrection: c.Quadrature.EndCorrection}
	out := make([]lensmodel.Component, 0, len(c.Lenses))
	for _, l := range c.Lenses {
		switch l.Profile {
		case profiles.GaussianName:
			out = append(out, lensmodel.NewGaussian(g, profiles.GaussianParams{
				Amp: l.Amp, Sigma: l.Sigma, CenterX: l.CenterX, CenterY: l.CenterY,
			}))
		case profiles.SISName:
			out = append(out, lensmodel.NewSIS(profiles.SISParams{
				ThetaE: l.ThetaE, CenterX: l.CenterX, CenterY: l.CenterY,
			}))
		}
	}
	return out
}

// Build returns the configured model.
func (c *Config) Build(logger *zap.Logger) (*lensmodel.Model, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	m, err := lensmodel.New(c.Components(),
		lensmodel.WithLogger(logger),
		lensmodel.WithConcurrency(c.Concurrency),
	)
	if err != nil {
		return nil, err
	}
	logger.Info("lens model built",
		zap.Strings("components", m.Components()),
		zap.Int("steps", c.Quadrature.Steps),
		zap.Bool("end_correction", c.Quadrature.EndCorrection),
	)
	return m, nil
}

// Coordinates returns the configured pixel grid.
func (c *Config) Coordinates() (x, y []float64) {
	return grid.MakeGrid(c.Grid.NumPix, c.Grid.PixelScale)
}
