package config

import "flag"

var (
	flagConfig       = flag.String("config", "", "Path to config file")
	flagDebug        = flag.Bool("debug", false, "Enable debug logging")
	flagWindowed     = flag.Bool("windowed", false, "Run in windowed mode")
	flagFullscreen   = flag.Bool("fullscreen", false, "Run in fullscreen mode")
	flagWidth        = flag.Int("width", 0, "Window width")
	flagHeight       = flag.Int("height", 0, "Window height")
	flagNoVSync      = flag.Bool("novsync", false, "Disable vertical sync")
	flagResolution   = flag.Int("resolution", 0, "Fan mesh rim vertex count")
	flagUpdateCount  = flag.Int("update-count", 0, "Vertices animated per cycle")
	flagSeed         = flag.Uint64("seed", 0, "Random seed for vertex selection")
	flagShaderDir    = flag.String("shaders", "", "Load shader sources from this directory")
	flagWatchShaders = flag.Bool("watch-shaders", false, "Reload shaders when their files change")
)

// ParseFlags parses command-line flags. Call this early in main().
func ParseFlags() {
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
		cfg.Debug.Overlay = true
	}
	if *flagWindowed {
		cfg.Graphics.Fullscreen = false
	}
	if *flagFullscreen {
		cfg.Graphics.Fullscreen = true
	}
	if *flagWidth > 0 {
		cfg.Graphics.Width = *flagWidth
	}
	if *flagHeight > 0 {
		cfg.Graphics.Height = *flagHeight
	}
	if *flagNoVSync {
		cfg.Graphics.VSync = false
	}
	if *flagResolution > 0 {
		cfg.Animator.Resolution = *flagResolution
	}
	if *flagUpdateCount > 0 {
		cfg.Animator.UpdateCount = *flagUpdateCount
	}
	if *flagSeed != 0 {
		cfg.Animator.Seed = *flagSeed
	}
	if *flagShaderDir != "" {
		cfg.Shaders.Dir = *flagShaderDir
	}
	if *flagWatchShaders {
		cfg.Shaders.Watch = true
	}
}
