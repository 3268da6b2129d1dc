// Package scenario provides loading and parsing of scenario YAML files.
// A scenario defines a ground-truth map layout and the simulation settings
// (energy budget, turn limit, sensing radius) for a run.
package scenario

import (
	"fmt"
	"os"

	"github.com/gridrover/sdk/grid"
	"gopkg.in/yaml.v3"
)

// Config represents a scenario YAML file.
//
// The layout is a list of equal-length rows of map symbols:
// '.' empty, '#' obstacle, 'L' lava, 'C' charger, 'S' start, 'T' target.
// Exactly one start and one target cell are required.
type Config struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Layout is the ground-truth map, one string per row.
	Layout []string `yaml:"layout"`

	// InitialEnergy is the energy each rover spawns with. Defaults to 100.
	InitialEnergy int `yaml:"initial_energy,omitempty"`

	// MaxTurns ends the simulation when reached. Zero means no limit.
	MaxTurns int `yaml:"max_turns,omitempty"`

	// SensorRadius is the rovers' sensing radius. Defaults to 3.
	SensorRadius int `yaml:"sensor_radius,omitempty"`

	// FullEnergy is the charging cap. Defaults to 100.
	FullEnergy int `yaml:"full_energy,omitempty"`

	// LowEnergy is the threshold below which rovers divert to a known
	// charger. Defaults to 40.
	LowEnergy int `yaml:"low_energy,omitempty"`
}

// Load parses a scenario from YAML bytes and applies defaults.
func Load(data []byte) (*Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFile reads and parses a scenario YAML file.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario file: %w", err)
	}
	cfg, err := Load(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.InitialEnergy == 0 {
		c.InitialEnergy = 100
	}
	if c.SensorRadius == 0 {
		c.SensorRadius = 3
	}
	if c.FullEnergy == 0 {
		c.FullEnergy = 100
	}
	if c.LowEnergy == 0 {
		c.LowEnergy = 40
	}
}

// Validate checks the scenario for structural problems: a missing name,
// an empty or ragged layout, unknown symbols, or a start/target count other
// than one each.
func (c *Config) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("scenario: name is required")
	}
	if len(c.Layout) == 0 {
		return fmt.Errorf("scenario: layout is required")
	}

	width := len(c.Layout[0])
	starts, targets := 0, 0
	for y, row := range c.Layout {
		if len(row) != width {
			return fmt.Errorf("scenario: layout row %d has length %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			t, ok := grid.TerrainFromSymbol(r)
			if !ok {
				return fmt.Errorf("scenario: unknown symbol %q at (%d,%d)", r, x, y)
			}
			switch t {
			case grid.TerrainStart:
				starts++
			case grid.TerrainTarget:
				targets++
			}
		}
	}
	if starts != 1 {
		return fmt.Errorf("scenario: layout must contain exactly one start cell, found %d", starts)
	}
	if targets != 1 {
		return fmt.Errorf("scenario: layout must contain exactly one target cell, found %d", targets)
	}

	if c.InitialEnergy < 0 || c.MaxTurns < 0 || c.SensorRadius < 0 {
		return fmt.Errorf("scenario: negative settings are not allowed")
	}
	return nil
}

// Grid builds the ground-truth terrain grid from the layout and returns it
// together with the start and target coordinates.
func (c *Config) Grid() ([][]grid.Terrain, grid.Coordinate, grid.Coordinate, error) {
	if err := c.Validate(); err != nil {
		return nil, grid.Coordinate{}, grid.Coordinate{}, err
	}

	var start, target grid.Coordinate
	cells := make([][]grid.Terrain, len(c.Layout))
	for y, row := range c.Layout {
		cells[y] = make([]grid.Terrain, len(row))
		for x, r := range row {
			t, _ := grid.TerrainFromSymbol(r)
			cells[y][x] = t
			switch t {
			case grid.TerrainStart:
				start = grid.Coordinate{X: x, Y: y}
			case grid.TerrainTarget:
				target = grid.Coordinate{X: x, Y: y}
			}
		}
	}
	return cells, start, target, nil
}
