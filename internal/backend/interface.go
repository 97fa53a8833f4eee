// Package backend builds the key/value storage behind the daily log.
package backend

import (
	"context"

	"dailyeat/internal/dailylog"
)

type BackendType string

const (
	SQLiteBackend BackendType = "sqlite"
	MemoryBackend BackendType = "memory"
)

func (bt BackendType) String() string { return string(bt) }

func (bt BackendType) IsValid() bool {
	return bt == SQLiteBackend || bt == MemoryBackend
}

// Config selects and parameterizes a backend.
type Config struct {
	Type         BackendType
	SQLiteDBPath string
	// Seed holds initial values for the memory backend. It is copied.
	Seed map[string]string
}

// BackendResult is an opened backend and the function that releases it.
type BackendResult struct {
	Backend dailylog.Backend
	Cleanup func() error
}

// Close runs Cleanup when set.
func (r *BackendResult) Close() error {
	if r == nil || r.Cleanup == nil {
		return nil
	}
	return r.Cleanup()
}

// Factory opens backends.
type Factory interface {
	CreateBackend(ctx context.Context, cfg Config) (*BackendResult, error)
}
