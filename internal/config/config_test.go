package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope", "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.DryRun || cfg.Verbose {
		t.Error("defaults should not enable dry-run or verbose")
	}
	if cfg.Log.MaxSizeMB != 10 || cfg.Log.MaxBackups != 3 || cfg.Log.MaxAgeDays != 14 {
		t.Errorf("unexpected default log settings: %+v", cfg.Log)
	}
}

func TestSaveLoadRoundtrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")

	original := Default()
	original.Categories = map[string]bool{"prefetch": false}
	original.ExtraProtectedPaths = []string{"/srv/important"}
	original.ExtraProtectedExtensions = []string{".kdbx"}
	original.DryRun = true

	if err := Save(original, path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.CategoryEnabled("prefetch") {
		t.Error("prefetch should stay disabled after roundtrip")
	}
	if !loaded.DryRun {
		t.Error("dry_run should survive roundtrip")
	}
	if len(loaded.ExtraProtectedPaths) != 1 || loaded.ExtraProtectedPaths[0] != "/srv/important" {
		t.Errorf("extra paths = %v", loaded.ExtraProtectedPaths)
	}
}

func TestLoadRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"relative protected path", "extra_protected_paths: [relative/path]\n"},
		{"empty extension", "extra_protected_extensions: [\".\"]\n"},
		{"negative log size", "log:\n  max_size_mb: -1\n"},
		{"malformed yaml", "categories: [not: a: map\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("Load should fail")
			}
		})
	}
}

func TestCategoryEnabledDefaultsToTrue(t *testing.T) {
	cfg := Default()

	if !cfg.CategoryEnabled("user_temp") {
		t.Error("absent category should be enabled")
	}

	cfg.Categories["user_temp"] = false
	if cfg.CategoryEnabled("user_temp") {
		t.Error("explicitly disabled category should be disabled")
	}

	cfg.Categories["log_files"] = true
	if !cfg.CategoryEnabled("log_files") {
		t.Error("explicitly enabled category should be enabled")
	}
}
