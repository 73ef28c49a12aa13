package registry

import "github.com/vovakirdan/tui-raycast/internal/core"

// DefaultPreset keeps the configuration unchanged.
const DefaultPreset = "classic"

func init() {
	Register(Preset{
		ID:          DefaultPreset,
		Title:       "Classic",
		Description: "configured view",
	})

	Register(Preset{
		ID:          "wide",
		Title:       "Wide Angle",
		Description: "90° field of view",
		FOVDegrees:  90,
	})

	Register(Preset{
		ID:          "tunnel",
		Title:       "Tunnel Vision",
		Description: "45° field of view, long sight",
		FOVDegrees:  45,
		Depth:       24,
	})

	Register(Preset{
		ID:          "fog",
		Title:       "Fog",
		Description: "walls fade out within 6 cells",
		Depth:       6,
		MoveSpeed:   0.05,
		Palette: &Palette{
			SkyTop:    core.RGB{R: 170, G: 170, B: 175},
			SkyBottom: core.RGB{R: 130, G: 130, B: 140},
			Ground:    core.RGB{R: 40, G: 40, B: 45},
		},
	})

	Register(Preset{
		ID:          "dusk",
		Title:       "Dusk",
		Description: "evening sky",
		Palette: &Palette{
			SkyTop:    core.RGB{R: 60, G: 40, B: 110},
			SkyBottom: core.RGB{R: 240, G: 130, B: 80},
			Ground:    core.RGB{R: 35, G: 30, B: 40},
		},
	})
}
