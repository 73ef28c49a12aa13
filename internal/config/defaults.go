package config

import (
	_ "embed"

	"github.com/vovakirdan/tui-raycast/internal/world"
)

//go:embed defaults/raycast.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Screen: ScreenConfig{
			Width:    800,
			Height:   600,
			TickRate: 30,
		},
		Camera: CameraConfig{
			FOVDegrees: 60,
			Depth:      16,
			RayStep:    0.1,
		},
		Player: PlayerConfig{
			StartX:          8.0,
			StartY:          8.0,
			StartAngle:      0,
			MoveSpeed:       0.1,
			TurnSensitivity: 0.05 * 0.01,
		},
		Colors: ColorConfig{
			SkyTop:    Color{135, 206, 235},
			SkyBottom: Color{110, 150, 200},
			Ground:    Color{50, 50, 50},
		},
		Map: MapConfig{
			Rows: world.DefaultGrid().Rows(),
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
