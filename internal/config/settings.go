// internal/config/settings.go
package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Settings are the runtime knobs a host may override. Gameplay tuning stays in
// the constants above.
type Settings struct {
	Width     int    // initial canvas width in pixels
	Height    int    // initial canvas height in pixels
	TPS       int    // host frame rate
	Seed      int64  // 0 picks a time-based seed
	DebugAddr string // empty disables the debug server
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	return Settings{
		Width:  ScreenWidth,
		Height: ScreenHeight,
		TPS:    TicksPerSec,
	}
}

// LoadSettings reads the given .env files (missing files are not an error),
// then applies SURVIVAL_* environment overrides on top of the defaults.
func LoadSettings(envFiles ...string) Settings {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err == nil {
			log.Printf("Loaded environment from %s", f)
		}
	}
	return SettingsFromEnv()
}

// SettingsFromEnv applies environment overrides to DefaultSettings.
func SettingsFromEnv() Settings {
	s := DefaultSettings()
	if w := getEnvInt("SURVIVAL_WIDTH", 0); w > 0 {
		s.Width = w
	}
	if h := getEnvInt("SURVIVAL_HEIGHT", 0); h > 0 {
		s.Height = h
	}
	if tps := getEnvInt("SURVIVAL_TPS", 0); tps > 0 {
		s.TPS = tps
	}
	if v := os.Getenv("SURVIVAL_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			s.Seed = seed
		}
	}
	s.DebugAddr = os.Getenv("SURVIVAL_DEBUG_ADDR")
	return s
}

func getEnvInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultVal
}
