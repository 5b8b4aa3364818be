package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apis.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoad_SortedAPIs(t *testing.T) {
	path := writeConfig(t, `{
		"zebra": "https://example.com/zebra?wsdl",
		"alpha": "https://example.com/alpha?wsdl"
	}`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(cfg.APIs) != 2 {
		t.Fatalf("expected 2 APIs, got %d", len(cfg.APIs))
	}
	if cfg.APIs[0].Name != "alpha" || cfg.APIs[1].Name != "zebra" {
		t.Errorf("expected APIs sorted by name, got %q, %q", cfg.APIs[0].Name, cfg.APIs[1].Name)
	}
	if cfg.APIs[0].WSDL != "https://example.com/alpha?wsdl" {
		t.Errorf("unexpected WSDL for alpha: %q", cfg.APIs[0].WSDL)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.json")); err == nil {
			t.Fatal("expected error for missing file")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "{not json")); err == nil {
			t.Fatal("expected error for invalid JSON")
		}
	})

	t.Run("empty object", func(t *testing.T) {
		if _, err := Load(writeConfig(t, "{}")); err == nil {
			t.Fatal("expected error for empty config")
		}
	})

	t.Run("empty wsdl url", func(t *testing.T) {
		if _, err := Load(writeConfig(t, `{"api": ""}`)); err == nil {
			t.Fatal("expected error for empty WSDL URL")
		}
	})
}

func TestAPI_DirSanitizesSeparators(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"plain", "plain"},
		{"team/billing", "team_billing"},
		{"a/b/c", "a_b_c"},
		{`win\path`, "win_path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := API{Name: tt.name}.Dir()
			if got != tt.want {
				t.Errorf("Dir(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}
