package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the application. Defaults reproduce
// the fixed relative paths the catalog and splash image have always used.
type Config struct {
	DataFile     string        `env:"BOOKSY_DATA_FILE" envDefault:"data.json"`
	Background   string        `env:"BOOKSY_BACKGROUND" envDefault:"images/bg.jpg"`
	SplashDelay  time.Duration `env:"BOOKSY_SPLASH_DELAY" envDefault:"5s"`
	WindowWidth  float32       `env:"BOOKSY_WINDOW_WIDTH" envDefault:"700"`
	WindowHeight float32       `env:"BOOKSY_WINDOW_HEIGHT" envDefault:"600"`
	LogLevel     string        `env:"BOOKSY_LOG_LEVEL" envDefault:"info"`
	JSONLogs     bool          `env:"BOOKSY_JSON_LOGS" envDefault:"false"`
}

// Load reads .env files from the working directory (never overriding the
// real environment) and parses the result into a Config.
func Load() (Config, error) {
	_ = godotenv.Load(".env")
	_ = godotenv.Load(".env.local")

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DataFile == "" {
		return fmt.Errorf("config: data file path is empty")
	}
	if c.SplashDelay < 0 {
		return fmt.Errorf("config: splash delay must not be negative, got %s", c.SplashDelay)
	}
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("config: invalid window size %.0fx%.0f", c.WindowWidth, c.WindowHeight)
	}
	return nil
}
