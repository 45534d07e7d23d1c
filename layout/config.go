package layout

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gravitas-015/hexgrid/hex"
)

const defaultSize = 1.0

// ErrInvalidSize is returned for a non-positive or non-finite hex size.
var ErrInvalidSize = errors.New("layout: size must be positive and finite")

// Config holds the layout settings of a rendering consumer
type Config struct {
	Size   float64      `yaml:"size"` // pixels, center to corner
	Origin OriginConfig `yaml:"origin"`
}

// OriginConfig is the pixel position of axial (0, 0)
type OriginConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Load reads a layout from a YAML file
func Load(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("failed to read layout file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML layout document, applying defaults
func Parse(data []byte) (Layout, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Layout{}, fmt.Errorf("failed to parse layout: %w", err)
	}

	// Set defaults if not provided
	if cfg.Size == 0 {
		log.Printf("layout: size not set, using %g", defaultSize)
		cfg.Size = defaultSize
	}

	return cfg.Layout()
}

// Layout validates cfg and converts it.
func (cfg Config) Layout() (Layout, error) {
	if cfg.Size <= 0 || math.IsInf(cfg.Size, 0) || math.IsNaN(cfg.Size) {
		return Layout{}, fmt.Errorf("size %g: %w", cfg.Size, ErrInvalidSize)
	}
	return New(cfg.Size, hex.Point{X: cfg.Origin.X, Y: cfg.Origin.Y}), nil
}
