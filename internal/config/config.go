// Package config handles demo configuration loading and management.
package config

// Config holds all demo settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Animator AnimatorConfig `yaml:"animator"`
	Shaders  ShaderConfig   `yaml:"shaders"`
	Debug    DebugConfig    `yaml:"debug"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	ClearColor uint32 `yaml:"clear_color"` // RGBA, 0xRRGGBBAA
}

// AnimatorConfig holds the partial buffer update settings.
type AnimatorConfig struct {
	Resolution  int     `yaml:"resolution"`   // Rim vertices of the fan mesh
	UpdateCount int     `yaml:"update_count"` // Vertices per cycle, 0 = resolution/8
	Duration    float32 `yaml:"duration"`     // Cycle length in seconds
	Seed        uint64  `yaml:"seed"`         // 0 = random
}

// ShaderConfig controls where shader sources come from.
type ShaderConfig struct {
	Dir   string `yaml:"dir"`   // Load from disk instead of embedded sources
	Watch bool   `yaml:"watch"` // Reload programs when files in Dir change
}

// DebugConfig holds the debug overlay settings.
type DebugConfig struct {
	Overlay bool `yaml:"overlay"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			ClearColor: 0x303030ff,
		},
		Animator: AnimatorConfig{
			Resolution:  128,
			UpdateCount: 0,
			Duration:    1.0,
			Seed:        0,
		},
		Shaders: ShaderConfig{
			Dir:   "",
			Watch: false,
		},
		Debug: DebugConfig{
			Overlay: true,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// EffectiveUpdateCount returns the effective number of vertices animated per cycle.
func (c AnimatorConfig) EffectiveUpdateCount() int {
	if c.UpdateCount > 0 {
		return c.UpdateCount
	}
	if k := c.Resolution / 8; k > 0 {
		return k
	}
	return 1
}
