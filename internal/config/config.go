package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"manifest-ops/internal/manifest"
	"manifest-ops/internal/stats"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

var ErrInvalidTimezone = errors.New("invalid MANIFEST_TIMEZONE")

// AppConfig holds the complete application configuration.
type AppConfig struct {
	DataPath string
	LogDir   string

	// Location is the authoritative calendar for naive timestamps, shifts and the hourly histogram.
	Location        *time.Location
	DeliveredStatus manifest.Status
	RankingLimit    int

	EnableMermaidCharts bool
	// MetricsFile, when set, receives a Prometheus textfile after every analysis.
	MetricsFile string
}

// Load loads the configuration from .env files and environment variables.
func Load() (*AppConfig, error) {
	// 1. Try to load from the executable's directory (highest priority for installed binaries)
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Fallback to current working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return FromEnv(exeDir)
}

// FromEnv builds the configuration from the process environment only.
func FromEnv(exeDir string) (*AppConfig, error) {
	dataPath := os.Getenv("DATA_PATH")
	if dataPath == "" {
		if exeDir != "" {
			dataPath = exeDir
		} else {
			dataPath = "."
		}
	}

	logDir := getEnv("LOGS_FOLDER", filepath.Join(dataPath, "logs"))

	loc, err := loadLocation(getEnv("MANIFEST_TIMEZONE", "Local"))
	if err != nil {
		return nil, err
	}

	limit, err := strconv.Atoi(getEnv("RANKING_LIMIT", strconv.Itoa(stats.DefaultRankingLimit)))
	if err != nil || limit <= 0 {
		log.Warn().Str("value", os.Getenv("RANKING_LIMIT")).Msg("Ignoring invalid RANKING_LIMIT")
		limit = stats.DefaultRankingLimit
	}

	cfg := &AppConfig{
		DataPath:            dataPath,
		LogDir:              logDir,
		Location:            loc,
		DeliveredStatus:     manifest.Status(getEnv("DELIVERED_STATUS", string(manifest.StatusDelivered))),
		RankingLimit:        limit,
		EnableMermaidCharts: getEnvBool("ENABLE_MERMAID_CHARTS", false),
		MetricsFile:         os.Getenv("METRICS_TEXTFILE"),
	}

	return cfg, nil
}

// EngineOptions maps the configuration onto the statistics engine.
func (c *AppConfig) EngineOptions() stats.Options {
	return stats.Options{
		Location:        c.Location,
		DeliveredStatus: c.DeliveredStatus,
		RankingLimit:    c.RankingLimit,
	}
}

func loadLocation(name string) (*time.Location, error) {
	if name == "" || name == "Local" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", ErrInvalidTimezone, name, err)
	}
	return loc, nil
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
