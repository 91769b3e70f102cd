// Package config handles renderer configuration loading and management.
package config

// Config holds all renderer settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Camera   CameraConfig   `yaml:"camera"`
	Assets   AssetsConfig   `yaml:"assets"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	VSync      bool   `yaml:"vsync"`
	Projection string `yaml:"projection"` // "perspective" or "orthographic"
}

// CameraConfig holds free-look camera settings.
type CameraConfig struct {
	MovementSpeed    float32 `yaml:"movement_speed"`
	MouseSensitivity float32 `yaml:"mouse_sensitivity"`
	Zoom             float32 `yaml:"zoom"` // vertical field of view, degrees
}

// AssetsConfig holds asset file paths.
type AssetsConfig struct {
	TextureDir string `yaml:"texture_dir"`
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
			Width:      1000,
			Height:     800,
			Fullscreen: false,
			VSync:      true,
			Projection: "perspective",
		},
		Camera: CameraConfig{
			MovementSpeed:    20,
			MouseSensitivity: 0.1,
			Zoom:             80,
		},
		Assets: AssetsConfig{
			TextureDir: "textures",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
