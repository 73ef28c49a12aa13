package engine

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/core"
	"github.com/vovakirdan/tui-raycast/internal/movement"
	"github.com/vovakirdan/tui-raycast/internal/raycast"
	"github.com/vovakirdan/tui-raycast/internal/world"
)

// ErrStartBlocked is returned when the configured start lies inside a wall.
var ErrStartBlocked = errors.New("engine: start position is inside a wall")

// Options configures a Loop.
type Options struct {
	Grid   *world.Grid
	Start  world.Player
	Dims   core.Dims
	Move   movement.Params // ScreenW is taken from Dims
	Render raycast.Params
	Logger *log.Logger // nil discards
}

// DefaultOptions returns the classic demo on the built-in map.
func DefaultOptions() Options {
	dims := core.DefaultConfig().Dims()
	return Options{
		Grid:   world.DefaultGrid(),
		Start:  world.DefaultStart,
		Dims:   dims,
		Move:   movement.DefaultParams(dims.W),
		Render: raycast.DefaultParams(),
	}
}

// OptionsFromConfig builds loop options from a loaded configuration.
func OptionsFromConfig(cfg config.Config) (Options, error) {
	grid, err := world.ParseGrid(cfg.Map.Rows)
	if err != nil {
		return Options{}, fmt.Errorf("engine: map: %w", err)
	}

	start := world.Player{
		X:     cfg.Player.StartX,
		Y:     cfg.Player.StartY,
		Angle: cfg.Player.StartAngle,
	}
	if grid.SolidAt(start.X, start.Y) {
		return Options{}, fmt.Errorf("%w: (%.2f, %.2f)", ErrStartBlocked, start.X, start.Y)
	}

	dims := core.Dims{W: cfg.Screen.Width, H: cfg.Screen.Height}
	return Options{
		Grid:  grid,
		Start: start,
		Dims:  dims,
		Move: movement.Params{
			Speed:       cfg.Player.MoveSpeed,
			Sensitivity: cfg.Player.TurnSensitivity,
			ScreenW:     dims.W,
		},
		Render: raycast.Params{
			FOV:       cfg.Camera.FOV(),
			Depth:     cfg.Camera.Depth,
			Step:      cfg.Camera.RayStep,
			SkyTop:    rgb(cfg.Colors.SkyTop),
			SkyBottom: rgb(cfg.Colors.SkyBottom),
			Ground:    rgb(cfg.Colors.Ground),
		},
	}, nil
}

func rgb(c config.Color) core.RGB {
	return core.RGB{R: c[0], G: c[1], B: c[2]}
}
