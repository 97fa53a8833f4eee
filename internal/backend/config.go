package backend

import (
	"fmt"
	"strings"

	"dailyeat/internal/config"
)

// Types lists the supported backends in order of preference.
var Types = []BackendType{SQLiteBackend, MemoryBackend}

// ParseType maps a DATA_BACKEND value to a BackendType.
func ParseType(s string) (BackendType, error) {
	bt := BackendType(strings.ToLower(strings.TrimSpace(s)))
	if !bt.IsValid() {
		return "", fmt.Errorf("unknown backend %q: must be one of %s", s, TypeNames())
	}
	return bt, nil
}

// TypeNames joins the supported backend names for help and error text.
func TypeNames() string {
	names := make([]string, len(Types))
	for i, t := range Types {
		names[i] = string(t)
	}
	return strings.Join(names, ", ")
}

// FromAppConfig picks the backend settings out of the application config.
func FromAppConfig(cfg *config.Config) (Config, error) {
	if cfg == nil {
		return Config{}, fmt.Errorf("app config is nil")
	}
	bt, err := ParseType(cfg.DataBackend)
	if err != nil {
		return Config{}, err
	}
	return Config{Type: bt, SQLiteDBPath: cfg.SQLiteDBPath}, nil
}

func (c Config) Validate() error {
	if !c.Type.IsValid() {
		return fmt.Errorf("unknown backend %q: must be one of %s", c.Type, TypeNames())
	}
	if c.Type == SQLiteBackend && c.SQLiteDBPath == "" {
		return fmt.Errorf("sqlite backend needs a database path")
	}
	return nil
}
