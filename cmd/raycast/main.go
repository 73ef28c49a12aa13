// raycast is a first-person raycasting demo that renders a tile map in the
// terminal, in a desktop window, over SSH, or to a PNG file.
//
// Usage:
//
//	raycast play             - Walk the map in the terminal
//	raycast window           - Walk the map in a desktop window
//	raycast serve            - Start SSH server for remote play
//	raycast snapshot         - Render one frame to a PNG file
//	raycast stats            - Show recorded runs
//	raycast map              - Print the map as text
//	raycast list             - List view presets
//	raycast config           - Print the effective configuration
//
// Global flags:
//
//	--config <path>  - Config YAML (default: search ~/.raycast, ./configs, built-in)
//	--fps <rate>     - Override tick rate
//	--preset <id>    - Apply a view preset (FOV, depth, palette)
//	--db <path>      - Run journal path (default: ~/.raycast/runs.db, "" disables)
//	--log <path>     - Write debug logs to a file
package main

import (
	"fmt"
	"io"
	"os"
	"os/user"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-raycast/internal/config"
	"github.com/vovakirdan/tui-raycast/internal/engine"
	"github.com/vovakirdan/tui-raycast/internal/registry"
	"github.com/vovakirdan/tui-raycast/internal/storage"
)

var (
	// Global flags
	flagConfig  string
	flagFPS     int
	flagPreset  string
	flagDBPath  string
	flagLogPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "raycast",
	Short: "Raycast - a first-person tile map walker",
	Long: `Raycast renders a pseudo-3D view of a tile map by marching one ray per
screen column. Walk with W/S and look around with the mouse.

Available commands:
  play      - Play in the terminal (truecolor half-blocks)
  window    - Play in a desktop window
  serve     - Start SSH server for remote play
  snapshot  - Render a frame to PNG
  stats     - View recorded runs
  map       - Print the map
  list      - List view presets
  config    - Print the effective configuration

Examples:
  raycast play
  raycast play --menu
  raycast window --scale 2 --preset wide
  raycast serve --ssh :2222
  raycast snapshot --forward 10 -o view.png
  raycast stats --plain`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = from config)")
	rootCmd.PersistentFlags().StringVar(&flagPreset, "preset", "", "View preset ID (see 'raycast list')")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to run journal (empty disables)")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")

	rootCmd.PersistentPreRunE = checkPreset

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(snapshotCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(mapCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(listCmd)
}

// checkPreset rejects an unknown --preset before any command runs.
func checkPreset(_ *cobra.Command, _ []string) error {
	if flagPreset != "" && !registry.Exists(flagPreset) {
		return fmt.Errorf("unknown preset %q (see 'raycast list')", flagPreset)
	}
	return nil
}

// loadConfig loads the configuration and applies flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return config.Config{}, err
	}
	if flagFPS > 0 {
		cfg.Screen.TickRate = flagFPS
	}
	return cfg, cfg.Validate()
}

// loadOptions loads the configuration and builds loop options from it.
func loadOptions() (config.Config, engine.Options, error) {
	cfg, err := loadConfig()
	if err != nil {
		return config.Config{}, engine.Options{}, err
	}
	opts, err := engine.OptionsFromConfig(cfg)
	if err != nil {
		return config.Config{}, engine.Options{}, err
	}
	if flagPreset != "" {
		preset, err := registry.Get(flagPreset)
		if err != nil {
			return config.Config{}, engine.Options{}, err
		}
		preset.Apply(&opts)
	}
	return cfg, opts, nil
}

// newLogger returns a logger writing to --log, or to fallback when the flag
// is unset. The returned func closes the log file.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func(), error) {
	out := fallback
	closeLog := func() {}

	if flagLogPath != "" {
		f, err := os.OpenFile(flagLogPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		out = f
		closeLog = func() { f.Close() }
	}

	logger := log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagLogPath != "" {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closeLog, nil
}

// saveRun records a finished local run. Failures are logged, not fatal.
func saveRun(platform string, stats engine.Stats, logger *log.Logger) {
	if flagDBPath == "" || stats.Ticks == 0 {
		return
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open run journal", "error", err)
		return
	}
	defer store.Close()

	run := storage.Run{
		Platform: platform,
		User:     currentUser(),
		Ticks:    stats.Ticks,
		Duration: int(stats.Duration().Seconds()),
		Distance: stats.Distance,
	}
	if _, err := store.SaveRun(run); err != nil {
		logger.Warn("could not save run", "error", err)
	}
}

func currentUser() string {
	if u, err := user.Current(); err == nil {
		return u.Username
	}
	return ""
}

// printSummary reports a finished run on stdout.
func printSummary(stats engine.Stats) {
	fmt.Printf("%d frames in %.1fs, walked %.1f cells\n",
		stats.Ticks, stats.Duration().Seconds(), stats.Distance)
}
