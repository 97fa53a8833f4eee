package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"dailyeat/internal/calendar"
)

func validConfig() Config {
	return Config{
		Port:           "8081",
		WriteRateLimit: 120,
		DataBackend:    "sqlite",
		SQLiteDBPath:   "./test.db",
		TargetCalories: 2000,
		CacheSize:      24,
		CacheTTL:       10 * time.Minute,
		LogLevel:       "info",
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*Config)
		wantErr     bool
		errorString string
	}{
		{
			name:    "valid sqlite backend config",
			mutate:  func(*Config) {},
			wantErr: false,
		},
		{
			name: "valid memory backend without db path",
			mutate: func(c *Config) {
				c.DataBackend = "memory"
				c.SQLiteDBPath = ""
			},
			wantErr: false,
		},
		{
			name:        "invalid port - non-numeric",
			mutate:      func(c *Config) { c.Port = "abc" },
			wantErr:     true,
			errorString: "invalid port 'abc': must be a number",
		},
		{
			name:        "invalid port - out of range low",
			mutate:      func(c *Config) { c.Port = "0" },
			wantErr:     true,
			errorString: "invalid port 0: must be between 1 and 65535",
		},
		{
			name:    "rate limit disabled",
			mutate:  func(c *Config) { c.WriteRateLimit = 0 },
			wantErr: false,
		},
		{
			name:        "negative rate limit",
			mutate:      func(c *Config) { c.WriteRateLimit = -1 },
			wantErr:     true,
			errorString: "invalid write rate limit -1: must be zero or positive",
		},
		{
			name:        "invalid port - out of range high",
			mutate:      func(c *Config) { c.Port = "70000" },
			wantErr:     true,
			errorString: "invalid port 70000: must be between 1 and 65535",
		},
		{
			name:        "invalid backend",
			mutate:      func(c *Config) { c.DataBackend = "sheets" },
			wantErr:     true,
			errorString: "invalid data backend 'sheets'",
		},
		{
			name:        "sqlite without path",
			mutate:      func(c *Config) { c.SQLiteDBPath = "" },
			wantErr:     true,
			errorString: "SQLite database path cannot be empty when using sqlite backend",
		},
		{
			name:        "zero target",
			mutate:      func(c *Config) { c.TargetCalories = 0 },
			wantErr:     true,
			errorString: "invalid target calories 0: must be positive",
		},
		{
			name:    "target outside stepper range is accepted",
			mutate:  func(c *Config) { c.TargetCalories = 5000 },
			wantErr: false,
		},
		{
			name:        "cache size too small",
			mutate:      func(c *Config) { c.CacheSize = 0 },
			wantErr:     true,
			errorString: "invalid cache size 0: must be at least 1",
		},
		{
			name:        "cache size too large",
			mutate:      func(c *Config) { c.CacheSize = 2000 },
			wantErr:     true,
			errorString: "invalid cache size 2000: must be at most 1000",
		},
		{
			name:        "cache TTL too short",
			mutate:      func(c *Config) { c.CacheTTL = 500 * time.Millisecond },
			wantErr:     true,
			errorString: "invalid cache TTL 500ms: must be at least 1 second",
		},
		{
			name:        "unknown log level",
			mutate:      func(c *Config) { c.LogLevel = "verbose" },
			wantErr:     true,
			errorString: "invalid log level 'verbose'",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Config.Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !strings.Contains(err.Error(), tt.errorString) {
				t.Errorf("Config.Validate() error = %v, want it to contain %q", err, tt.errorString)
			}
		})
	}
}

func TestConfig_ValidateCollectsAllErrors(t *testing.T) {
	cfg := validConfig()
	cfg.Port = "x"
	cfg.TargetCalories = -1
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error")
	}
	if got := strings.Count(err.Error(), "\n- "); got != 2 {
		t.Fatalf("expected 2 messages, got %d: %v", got, err)
	}
}

func TestConfig_ValidateDBPathUnderFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg := validConfig()
	cfg.SQLiteDBPath = filepath.Join(file, "dailyeat.db")
	if err := cfg.Validate(); err == nil || !strings.Contains(err.Error(), "is not a directory") {
		t.Fatalf("Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	keys := []string{"PORT", "WRITE_RATE_LIMIT", "DATA_BACKEND", "SQLITE_DB_PATH", "TARGET_CALORIES", "CACHE_SIZE", "CACHE_TTL", "LOG_LEVEL"}

	t.Run("default values", func(t *testing.T) {
		for _, k := range keys {
			t.Setenv(k, "")
		}
		cfg := Load()

		if cfg.Port != "8081" {
			t.Errorf("Load() Port = %v, want 8081", cfg.Port)
		}
		if cfg.WriteRateLimit != 120 {
			t.Errorf("Load() WriteRateLimit = %v, want 120", cfg.WriteRateLimit)
		}
		if cfg.DataBackend != "sqlite" {
			t.Errorf("Load() DataBackend = %v, want sqlite", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "./data/dailyeat.db" {
			t.Errorf("Load() SQLiteDBPath = %v, want ./data/dailyeat.db", cfg.SQLiteDBPath)
		}
		if cfg.TargetCalories != calendar.DefaultTarget {
			t.Errorf("Load() TargetCalories = %v, want %v", cfg.TargetCalories, calendar.DefaultTarget)
		}
		if cfg.CacheSize != 24 || cfg.CacheTTL != 10*time.Minute {
			t.Errorf("Load() cache = %d/%v, want 24/10m", cfg.CacheSize, cfg.CacheTTL)
		}
		if cfg.LogLevel != "info" {
			t.Errorf("Load() LogLevel = %v, want info", cfg.LogLevel)
		}
		if err := cfg.Validate(); err != nil {
			t.Errorf("defaults do not validate: %v", err)
		}
	})

	t.Run("environment variables", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("DATA_BACKEND", "memory")
		t.Setenv("SQLITE_DB_PATH", "/tmp/test.db")
		t.Setenv("TARGET_CALORIES", "1800")
		t.Setenv("CACHE_SIZE", "6")
		t.Setenv("CACHE_TTL", "45s")
		t.Setenv("LOG_LEVEL", "DEBUG")

		cfg := Load()

		if cfg.Port != "9090" || cfg.Addr() != ":9090" {
			t.Errorf("Load() Port = %v", cfg.Port)
		}
		if cfg.DataBackend != "memory" {
			t.Errorf("Load() DataBackend = %v, want memory", cfg.DataBackend)
		}
		if cfg.SQLiteDBPath != "/tmp/test.db" {
			t.Errorf("Load() SQLiteDBPath = %v", cfg.SQLiteDBPath)
		}
		if cfg.TargetCalories != 1800 {
			t.Errorf("Load() TargetCalories = %v, want 1800", cfg.TargetCalories)
		}
		if cfg.CacheSize != 6 || cfg.CacheTTL != 45*time.Second {
			t.Errorf("Load() cache = %d/%v", cfg.CacheSize, cfg.CacheTTL)
		}
		if cfg.LogLevel != "debug" {
			t.Errorf("Load() LogLevel = %v, want debug", cfg.LogLevel)
		}
	})

	t.Run("invalid numbers fall back to defaults", func(t *testing.T) {
		t.Setenv("TARGET_CALORIES", "lots")
		t.Setenv("CACHE_TTL", "soon")
		cfg := Load()
		if cfg.TargetCalories != 2000 || cfg.CacheTTL != 10*time.Minute {
			t.Errorf("Load() = %d/%v", cfg.TargetCalories, cfg.CacheTTL)
		}
	})
}
