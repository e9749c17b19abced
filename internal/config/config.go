// Package config reads runtime settings from the environment.
package config

import (
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/chessboard/internal/domain"
)

// DefaultExchangeRate seeds the USD to IDR rate of new chessboards when
// CHESSBOARD_DEFAULT_RATE is unset.
const DefaultExchangeRate = 16000.0

// Config holds everything main needs to wire the application.
type Config struct {
	DBPath              string
	DefaultExchangeRate float64
	PublicBaseURL       string
	LogUseCases         bool
	NoColor             bool
	Actor               domain.Actor
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	dbPath := "chessboard.db"
	if home, err := os.UserHomeDir(); err == nil {
		dbPath = filepath.Join(home, ".chessboard", "chessboard.db")
	}
	return Config{
		DBPath:              dbPath,
		DefaultExchangeRate: DefaultExchangeRate,
		PublicBaseURL:       "https://example.com/chessboard",
		Actor: domain.Actor{
			ID:    "local",
			Label: "Local admin",
			Role:  domain.RoleAdmin,
		},
	}
}

// LoadConfig reads configuration from environment variables, falling back
// to defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("CHESSBOARD_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("CHESSBOARD_DEFAULT_RATE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && !math.IsInf(f, 0) {
			cfg.DefaultExchangeRate = f
		}
	}
	if v := os.Getenv("CHESSBOARD_PUBLIC_BASE_URL"); v != "" {
		cfg.PublicBaseURL = strings.TrimRight(v, "/")
	}
	if v := os.Getenv("CHESSBOARD_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("NO_COLOR"); v != "" {
		cfg.NoColor = true
	}
	if v := os.Getenv("CHESSBOARD_ACTOR_ID"); v != "" {
		cfg.Actor.ID = v
	}
	if v := os.Getenv("CHESSBOARD_ACTOR_LABEL"); v != "" {
		cfg.Actor.Label = v
	}
	if v := os.Getenv("CHESSBOARD_ACTOR_ROLE"); v != "" {
		switch r := domain.Role(strings.ToLower(v)); r {
		case domain.RoleAdmin, domain.RoleModerator, domain.RoleDeveloper, domain.RoleAgent:
			cfg.Actor.Role = r
		}
	}
	if v := os.Getenv("CHESSBOARD_DEVELOPER_ID"); v != "" {
		cfg.Actor.DeveloperID = v
	}

	return cfg
}
