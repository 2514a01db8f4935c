package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/lightspeed-go/respkit/net/resp"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config file: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfigFile(t, `
app_name: demo
run_mode: debug
server:
  host: 127.0.0.1
  port: 9090
response:
  debug: true
  no_cache: false
logger:
  level: 5
  format: json
i18n:
  catalog: translations.yaml
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.AppName != "demo" {
		t.Errorf("expected app name demo, got %q", cfg.AppName)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Port)
	}
	if !cfg.Response.Debug {
		t.Error("expected response debug enabled")
	}
	if cfg.Response.NoCache {
		t.Error("expected no_cache disabled")
	}
	if cfg.Response.ContentType != resp.DefaultContentType {
		t.Errorf("expected default content type, got %q", cfg.Response.ContentType)
	}
	if cfg.Logger.Level != 5 {
		t.Errorf("expected logger level 5, got %d", cfg.Logger.Level)
	}
	if cfg.Catalog != "translations.yaml" {
		t.Errorf("expected catalog path, got %q", cfg.Catalog)
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfigFile(t, "app_name: demo\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Port)
	}
	if !cfg.Response.NoCache {
		t.Error("expected no_cache enabled by default")
	}
	if !cfg.Response.Abort {
		t.Error("expected abort enabled by default")
	}
	if cfg.Logger.Output != "stdout" {
		t.Errorf("expected default output stdout, got %q", cfg.Logger.Output)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing config file")
	}
}

func TestResponseSendOptions(t *testing.T) {
	r := &Response{Debug: true, ContentType: resp.DefaultContentType, NoCache: true, Abort: true}
	if got := len(r.SendOptions()); got != 2 {
		t.Errorf("expected 2 send options, got %d", got)
	}

	r = &Response{ContentType: resp.DefaultContentType, Abort: true}
	if got := len(r.SendOptions()); got != 0 {
		t.Errorf("expected no send options, got %d", got)
	}
}
