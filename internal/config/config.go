// Package config provides YAML-based configuration loading for the raycaster.
// Values are read once at startup and never change while a loop runs.
package config

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config contains every tunable of the raycaster.
type Config struct {
	Screen ScreenConfig `yaml:"screen"`
	Camera CameraConfig `yaml:"camera"`
	Player PlayerConfig `yaml:"player"`
	Colors ColorConfig  `yaml:"colors"`
	Map    MapConfig    `yaml:"map"`
}

// ScreenConfig defines the frame size and loop rate.
type ScreenConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	TickRate int `yaml:"tick_rate"` // Ticks per second
}

// CameraConfig defines the projection.
type CameraConfig struct {
	FOVDegrees float64 `yaml:"fov_degrees"`
	Depth      float64 `yaml:"depth"`    // Max ray length in cells
	RayStep    float64 `yaml:"ray_step"` // March increment in cells
}

// PlayerConfig defines the spawn point and controller tuning.
type PlayerConfig struct {
	StartX          float64 `yaml:"start_x"`
	StartY          float64 `yaml:"start_y"`
	StartAngle      float64 `yaml:"start_angle"`      // Radians, clockwise from north
	MoveSpeed       float64 `yaml:"move_speed"`       // Cells per tick
	TurnSensitivity float64 `yaml:"turn_sensitivity"` // Radians per pixel of cursor offset
}

// Color is an [r, g, b] triple.
type Color [3]uint8

// ColorConfig defines the flat palette.
type ColorConfig struct {
	SkyTop    Color `yaml:"sky_top"`
	SkyBottom Color `yaml:"sky_bottom"`
	Ground    Color `yaml:"ground"`
}

// MapConfig holds the tile layout, one string per row ('#' wall, '.' empty).
type MapConfig struct {
	Rows []string `yaml:"rows"`
}

// FOV returns the field of view in radians.
func (c CameraConfig) FOV() float64 {
	return c.FOVDegrees * math.Pi / 180
}

// Validate checks value ranges and the map alphabet. The closed border is
// checked when the grid is built.
func (c Config) Validate() error {
	switch {
	case c.Screen.Width <= 0 || c.Screen.Height <= 0:
		return fmt.Errorf("%w: screen %dx%d", ErrInvalid, c.Screen.Width, c.Screen.Height)
	case c.Screen.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Screen.TickRate)
	case c.Camera.FOVDegrees <= 0 || c.Camera.FOVDegrees >= 180:
		return fmt.Errorf("%w: fov_degrees %v", ErrInvalid, c.Camera.FOVDegrees)
	case c.Camera.Depth <= 0:
		return fmt.Errorf("%w: depth %v", ErrInvalid, c.Camera.Depth)
	case c.Camera.RayStep <= 0 || c.Camera.RayStep > c.Camera.Depth:
		return fmt.Errorf("%w: ray_step %v", ErrInvalid, c.Camera.RayStep)
	case c.Player.MoveSpeed < 0:
		return fmt.Errorf("%w: move_speed %v", ErrInvalid, c.Player.MoveSpeed)
	case len(c.Map.Rows) == 0:
		return fmt.Errorf("%w: map has no rows", ErrInvalid)
	}
	width := len(c.Map.Rows[0])
	for i, row := range c.Map.Rows {
		if len(row) != width {
			return fmt.Errorf("%w: map row %d has width %d, want %d", ErrInvalid, i, len(row), width)
		}
		for j, ch := range row {
			if ch != '#' && ch != '.' {
				return fmt.Errorf("%w: map row %d col %d: unexpected %q", ErrInvalid, i, j, ch)
			}
		}
	}
	return nil
}
