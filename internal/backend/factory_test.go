package backend

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"dailyeat/internal/config"
	"dailyeat/internal/dailylog"
)

func TestFromAppConfig(t *testing.T) {
	if _, err := FromAppConfig(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := FromAppConfig(&config.Config{DataBackend: "sheets"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
	cfg, err := FromAppConfig(&config.Config{DataBackend: "sqlite", SQLiteDBPath: "x.db"})
	if err != nil || cfg.Type != SQLiteBackend || cfg.SQLiteDBPath != "x.db" {
		t.Fatalf("cfg=%+v err=%v", cfg, err)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"memory", Config{Type: MemoryBackend}, false},
		{"sqlite", Config{Type: SQLiteBackend, SQLiteDBPath: "a.db"}, false},
		{"sqlite without path", Config{Type: SQLiteBackend}, true},
		{"unknown", Config{Type: "sheets"}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.cfg.Validate(); (err != nil) != tt.wantErr {
				t.Fatalf("Validate() = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestCreateBackends(t *testing.T) {
	ctx := context.Background()
	f := NewFactory(nil)

	for _, cfg := range []Config{
		{Type: MemoryBackend, Seed: map[string]string{dailylog.StorageKey: ""}},
		{Type: SQLiteBackend, SQLiteDBPath: filepath.Join(t.TempDir(), "dailyeat.db")},
	} {
		t.Run(cfg.Type.String(), func(t *testing.T) {
			res, err := f.CreateBackend(ctx, cfg)
			if err != nil {
				t.Fatalf("create: %v", err)
			}
			defer res.Close()

			if err := res.Backend.Set(ctx, dailylog.StorageKey, "blob"); err != nil {
				t.Fatalf("set: %v", err)
			}
			if v, err := res.Backend.Get(ctx, dailylog.StorageKey); err != nil || v != "blob" {
				t.Fatalf("get = %q err=%v", v, err)
			}
		})
	}

	if _, err := f.CreateBackend(ctx, Config{Type: "nope"}); err == nil {
		t.Fatal("expected error for unknown backend")
	}
}

func TestParseType(t *testing.T) {
	for in, want := range map[string]BackendType{"sqlite": SQLiteBackend, " Memory ": MemoryBackend} {
		got, err := ParseType(in)
		if err != nil || got != want {
			t.Fatalf("ParseType(%q) = %q, %v", in, got, err)
		}
	}
	_, err := ParseType("sheets")
	if err == nil || !strings.Contains(err.Error(), "sqlite, memory") {
		t.Fatalf("ParseType(sheets) error = %v", err)
	}
}
