package config

import (
	"os"
	"strconv"
	"strings"
)

// ApplyEnv overlays environment variables on a loaded config.
// Unset or malformed values leave the config untouched.
func ApplyEnv(cfg *Config) {
	if v := strings.TrimSpace(os.Getenv("TODO_ADDR")); v != "" {
		cfg.Server.Addr = v
	}
	if v := getEnvBool("TODO_DEV_STATIC"); v != nil {
		cfg.Server.DevStatic = *v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_STORAGE_BACKEND")); v != "" {
		cfg.Storage.Backend = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_DATA_DIR")); v != "" {
		cfg.Storage.DataDir = v
	}
	if v := strings.TrimSpace(os.Getenv("TODO_SQLITE_PATH")); v != "" {
		cfg.Storage.SQLitePath = v
	}
	if v := getEnvInt("TODO_URGENT_WINDOW_HOURS"); v > 0 {
		cfg.Tasks.UrgentWindowHours = v
	}
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}

func getEnvBool(key string) *bool {
	switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
	case "1", "true", "yes":
		b := true
		return &b
	case "0", "false", "no":
		b := false
		return &b
	default:
		return nil
	}
}
