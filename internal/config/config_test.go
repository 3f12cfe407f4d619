package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Plan.SafetyStock != 550000 {
		t.Errorf("safety stock default: expected 550000, got %v", cfg.Plan.SafetyStock)
	}
	if cfg.Plan.BulkSize != 160000 {
		t.Errorf("bulk size default: expected 160000, got %v", cfg.Plan.BulkSize)
	}
	if cfg.Plan.Phase1GCV != 4700 || cfg.Plan.OtherGCV != 4200 {
		t.Errorf("GCV defaults: got %v / %v", cfg.Plan.Phase1GCV, cfg.Plan.OtherGCV)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "plan:\n  safety_stock: 600000\ndatabase:\n  sqlite_path: out.db\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BULK_SIZE", "80000")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Plan.SafetyStock != 600000 {
		t.Errorf("expected file override 600000, got %v", cfg.Plan.SafetyStock)
	}
	if cfg.Plan.BulkSize != 80000 {
		t.Errorf("expected env override 80000, got %v", cfg.Plan.BulkSize)
	}
	if cfg.Database.SQLitePath != "out.db" {
		t.Errorf("expected sqlite path out.db, got %q", cfg.Database.SQLitePath)
	}
}

func TestValidate_Rejects(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	cfg.Plan.BulkSize = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected validation error for negative bulk size")
	}
}
