package core

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigFromValidFile(t *testing.T) {
	tmp := t.TempDir()

	configYAML := `
host: 0.0.0.0
port: 9090
templatesDir: pages
outputDir: ./out
cache: true
minify: true
logLevel: debug
session:
  name: my_session
  path: /
  maxAge: 120
identity:
  name: boss
  path: /boss
  maxAge: 120
  secure: true
`
	configPath := filepath.Join(tmp, "postpage.config.yml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := LoadConfig(configPath)

	if cfg.Host != "0.0.0.0" {
		t.Errorf("expected Host '0.0.0.0', got %q", cfg.Host)
	}
	if cfg.Port != 9090 {
		t.Errorf("expected Port 9090, got %d", cfg.Port)
	}
	if cfg.TemplatesDir != "pages" {
		t.Errorf("expected TemplatesDir 'pages', got %q", cfg.TemplatesDir)
	}
	if cfg.OutputDir != "./out" {
		t.Errorf("expected OutputDir './out', got %q", cfg.OutputDir)
	}
	if !cfg.CacheEnabled || !cfg.MinifyHTML {
		t.Error("expected cache and minify to be true")
	}
	if cfg.LogLevel != "debug" {
		t.Errorf("expected LogLevel 'debug', got %q", cfg.LogLevel)
	}
	if cfg.Session.Name != "my_session" || cfg.Session.MaxAge != 120 {
		t.Errorf("unexpected session config: %+v", cfg.Session)
	}
	if cfg.Identity.Name != "boss" || !cfg.Identity.Secure {
		t.Errorf("unexpected identity config: %+v", cfg.Identity)
	}
}

func TestLoadConfigDefaultsWhenFileMissing(t *testing.T) {
	cfg := LoadConfig("nonexistent.yml")

	if cfg.Host != "127.0.0.1" {
		t.Errorf("expected default Host '127.0.0.1', got %q", cfg.Host)
	}
	if cfg.Port != 8080 {
		t.Errorf("expected default Port 8080, got %d", cfg.Port)
	}
	if cfg.TemplatesDir != "templates" {
		t.Errorf("expected default TemplatesDir 'templates', got %q", cfg.TemplatesDir)
	}
	if cfg.OutputDir != "./cache" {
		t.Errorf("expected default OutputDir './cache', got %q", cfg.OutputDir)
	}
	if cfg.CacheEnabled || cfg.MinifyHTML {
		t.Error("expected cache and minify to default to false")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default LogLevel 'info', got %q", cfg.LogLevel)
	}
}

func TestLoadConfigDefaultCookies(t *testing.T) {
	cfg := LoadConfig("nonexistent.yml")

	if cfg.Session.Name != "post_session" || cfg.Session.Path != "/" {
		t.Errorf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Session.MaxAge != 3600 || cfg.Session.Secure {
		t.Errorf("unexpected session defaults: %+v", cfg.Session)
	}
	if cfg.Identity.Name != "admin" || cfg.Identity.Path != "/admin" {
		t.Errorf("unexpected identity defaults: %+v", cfg.Identity)
	}
	if cfg.Identity.MaxAge != 3600 || cfg.Identity.Secure {
		t.Errorf("unexpected identity defaults: %+v", cfg.Identity)
	}
}

func TestLoadConfigFillsMissingFields(t *testing.T) {
	tmp := t.TempDir()

	configYAML := `
cache: true
`
	configPath := filepath.Join(tmp, "postpage.config.yml")
	if err := os.WriteFile(configPath, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg := LoadConfig(configPath)

	if cfg.Port != 8080 || cfg.TemplatesDir != "templates" {
		t.Errorf("expected fallback defaults, got %+v", cfg)
	}
	if !cfg.CacheEnabled {
		t.Error("expected CacheEnabled to be true")
	}
	if cfg.Session.Name != "post_session" {
		t.Errorf("expected session defaults to fill in, got %+v", cfg.Session)
	}
}
