package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

type CookieConfig struct {
	Name   string `yaml:"name"`
	Path   string `yaml:"path"`
	MaxAge int    `yaml:"maxAge"`
	Secure bool   `yaml:"secure"`
}

type Config struct {
	Host         string       `yaml:"host"`
	Port         int          `yaml:"port"`
	TemplatesDir string       `yaml:"templatesDir"`
	OutputDir    string       `yaml:"outputDir"`
	CacheEnabled bool         `yaml:"cache"`
	MinifyHTML   bool         `yaml:"minify"`
	LogLevel     string       `yaml:"logLevel"`
	Session      CookieConfig `yaml:"session"`
	Identity     CookieConfig `yaml:"identity"`
}

func defaultConfig() Config {
	return Config{
		Host:         "127.0.0.1",
		Port:         8080,
		TemplatesDir: "templates",
		OutputDir:    "./cache",
		CacheEnabled: false,
		MinifyHTML:   false,
		LogLevel:     "info",
		Session: CookieConfig{
			Name:   "post_session",
			Path:   "/",
			MaxAge: 3600,
			Secure: false,
		},
		Identity: CookieConfig{
			Name:   "admin",
			Path:   "/admin",
			MaxAge: 3600,
			Secure: false,
		},
	}
}

func LoadConfig(path string) Config {
	data, err := os.ReadFile(path)
	if err != nil {
		return defaultConfig()
	}

	var cfg Config
	yaml.Unmarshal(data, &cfg)

	def := defaultConfig()
	if cfg.Host == "" {
		cfg.Host = def.Host
	}
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if cfg.TemplatesDir == "" {
		cfg.TemplatesDir = def.TemplatesDir
	}
	if cfg.OutputDir == "" {
		cfg.OutputDir = def.OutputDir
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Session.Name == "" {
		cfg.Session = def.Session
	}
	if cfg.Identity.Name == "" {
		cfg.Identity = def.Identity
	}

	return cfg
}
