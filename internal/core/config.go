package core

// RuntimeConfig contains settings chosen by the platform at startup.
type RuntimeConfig struct {
	ScreenW  int // Frame width in pixels (terminal: columns)
	ScreenH  int // Frame height in pixels (terminal: rows * 2)
	TickRate int // Frame loop ticks per second
}

// DefaultConfig returns a RuntimeConfig matching the classic 800x600 window.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  800,
		ScreenH:  600,
		TickRate: 30,
	}
}

// Dims returns the frame dimensions.
func (c RuntimeConfig) Dims() Dims {
	return Dims{W: c.ScreenW, H: c.ScreenH}
}
