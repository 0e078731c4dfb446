package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server  Server  `yaml:"server" json:"server"`
	Storage Storage `yaml:"storage" json:"storage"`
	Tasks   Tasks   `yaml:"tasks" json:"tasks"`
}

type Server struct {
	Addr string `yaml:"addr" json:"addr"`
	// DevStatic serves static assets from disk instead of the embedded
	// copy, for frontend iteration without rebuilding.
	DevStatic bool `yaml:"dev_static" json:"dev_static"`
}

type Storage struct {
	// Backend is "file" or "sqlite".
	Backend    string `yaml:"backend" json:"backend"`
	DataDir    string `yaml:"data_dir" json:"data_dir"`
	SQLitePath string `yaml:"sqlite_path" json:"sqlite_path"`
}

type Tasks struct {
	// UrgentWindowHours is how close a due date must be for a task to
	// classify as urgent.
	UrgentWindowHours int `yaml:"urgent_window_hours" json:"urgent_window_hours"`
}

const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
)

func Default() *Config {
	return &Config{
		Server: Server{
			Addr: ":8484",
		},
		Storage: Storage{
			Backend:    BackendFile,
			DataDir:    "data",
			SQLitePath: "data/tasks.db",
		},
		Tasks: Tasks{
			UrgentWindowHours: 24,
		},
	}
}

// Load reads a YAML config file, falling back to defaults when the file
// does not exist. Unset fields keep their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(b, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendSQLite:
	default:
		return fmt.Errorf("unknown storage backend %q", c.Storage.Backend)
	}
	if c.Tasks.UrgentWindowHours <= 0 {
		return fmt.Errorf("urgent_window_hours must be positive")
	}
	return nil
}
