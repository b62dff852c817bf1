package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"glowgrid/internal/heatmap"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// AppConfig holds the complete application configuration.
type AppConfig struct {
	SnapshotPath string
	DataPath     string
	LogDir       string
	Prefs        heatmap.Prefs
	LimHist      int
	LimFcst      int
	Whole        bool
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try the executable's directory first (hosts launch the binary with an adjacent .env)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to the current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	// 3. Resolve data paths
	dataPath := os.Getenv("GG_DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}
	logDir := filepath.Join(dataPath, "logs")

	// 4. Render preferences, validated at load time
	theme, err := heatmap.ParseTheme(getEnv("GG_THEME", string(heatmap.ThemeLime)))
	if err != nil {
		return nil, fmt.Errorf("GG_THEME: %w", err)
	}
	mode, err := heatmap.ParseMode(getEnv("GG_MODE", string(heatmap.ModeYear)))
	if err != nil {
		return nil, fmt.Errorf("GG_MODE: %w", err)
	}

	display := map[heatmap.View]bool{
		heatmap.ViewDeckBrowser: getEnvBool("GG_DISPLAY_DECKBROWSER", true),
		heatmap.ViewOverview:    getEnvBool("GG_DISPLAY_OVERVIEW", true),
		heatmap.ViewStats:       getEnvBool("GG_DISPLAY_STATS", true),
	}

	limHist, err := parseIntEnv("GG_LIMHIST", 0)
	if err != nil {
		return nil, err
	}
	limFcst, err := parseIntEnv("GG_LIMFCST", 0)
	if err != nil {
		return nil, err
	}

	cfg := &AppConfig{
		SnapshotPath: getEnv("GG_SNAPSHOT", filepath.Join(dataPath, "snapshot.json")),
		DataPath:     dataPath,
		LogDir:       logDir,
		Prefs: heatmap.Prefs{
			Theme:    theme,
			Mode:     mode,
			Display:  display,
			StatsVis: getEnvBool("GG_STATSVIS", true),
		},
		LimHist: limHist,
		LimFcst: limFcst,
		Whole:   getEnvBool("GG_WHOLE", true),
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

func parseIntEnv(key string, fallback int) (int, error) {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: expected an integer, got %q", key, value)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", key, n)
	}
	return n, nil
}
