package config

import (
	"os"
	"path/filepath"
	"testing"

	"dimensional/core/numeric"
	"dimensional/internal/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Arithmetic != numeric.DefaultPrecision() || cfg.Output.Format != "text" {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadJSON(t *testing.T) {
	path := writeFile(t, "cfg.json", `{
		"arithmetic": {"division_places": 50},
		"output": {"format": "json"},
		"logging": {"level": "debug"}
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Arithmetic.DivisionPlaces != 50 {
		t.Errorf("division_places = %d", cfg.Arithmetic.DivisionPlaces)
	}
	if cfg.Arithmetic.RootDigits != numeric.DefaultPrecision().RootDigits {
		t.Errorf("root_digits should keep its default, got %d", cfg.Arithmetic.RootDigits)
	}
	if cfg.Output.Format != "json" || cfg.Logging.Level != "debug" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoadHCL(t *testing.T) {
	path := writeFile(t, "cfg.hcl", `
version = "2"

arithmetic {
  division_places = 40
}

output {
  format     = "json"
  show_notes = true
}

logging {
  level = "error"
}
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Version != "2" {
		t.Errorf("version = %q", cfg.Version)
	}
	if cfg.Arithmetic.DivisionPlaces != 40 || cfg.Arithmetic.RootDigits != numeric.DefaultPrecision().RootDigits {
		t.Errorf("arithmetic = %+v", cfg.Arithmetic)
	}
	if cfg.Output.Format != "json" || !cfg.Output.ShowNotes {
		t.Errorf("output = %+v", cfg.Output)
	}
	if cfg.Logging.Level != "error" || cfg.Logging.Output != "stderr" {
		t.Errorf("logging = %+v", cfg.Logging)
	}
}

func TestLoadHCLSyntaxError(t *testing.T) {
	path := writeFile(t, "bad.hcl", `arithmetic {`)
	_, err := Load(path)
	if !errors.IsType(err, errors.TypeConfig) {
		t.Errorf("expected config error, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad format", func(c *Config) { c.Output.Format = "xml" }},
		{"negative places", func(c *Config) { c.Arithmetic.DivisionPlaces = -1 }},
		{"too many root digits", func(c *Config) { c.Arithmetic.RootDigits = 30 }},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }},
	}

	if err := Default().Validate(); err != nil {
		t.Fatalf("defaults must validate: %v", err)
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); !errors.IsType(err, errors.TypeConfig) {
				t.Errorf("expected config error, got %v", err)
			}
		})
	}
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cfg.json")
	cfg := Default()
	cfg.Arithmetic.DivisionPlaces = 20

	if err := cfg.Save(path); err != nil {
		t.Fatal(err)
	}
	loaded, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.Arithmetic.DivisionPlaces != 20 {
		t.Errorf("division_places = %d after reload", loaded.Arithmetic.DivisionPlaces)
	}
}

func TestApply(t *testing.T) {
	defer numeric.Configure(numeric.DefaultPrecision())

	cfg := Default()
	cfg.Arithmetic.DivisionPlaces = 8
	cfg.Apply()
	if numeric.Current().DivisionPlaces != 8 {
		t.Errorf("Apply did not configure numeric precision")
	}
}
