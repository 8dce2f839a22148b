package postpage

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/postpage/postpage/core"
)

const (
	sessionKeyEnv  = "POSTPAGE_SESSION_KEY"
	identityKeyEnv = "POSTPAGE_IDENTITY_KEY"
)

type RuntimeConfig struct {
	Env        string
	ConfigPath string
	Port       int
}

// Start loads configuration, builds the template set and serves the
// page route until the listener dies. A template-set load failure is
// returned before the socket is ever opened; the CLI turns that into a
// non-zero exit.
func Start(cfg RuntimeConfig) error {
	config := core.LoadConfig(cfg.ConfigPath)
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}

	logger := core.NewLogger(config.LogLevel)
	logger.Info().Str("env", cfg.Env).Msg("starting postpage")

	templates, err := core.LoadTemplateSet(config.TemplatesDir)
	if err != nil {
		return fmt.Errorf("loading templates: %w", err)
	}

	mux := http.NewServeMux()

	if cfg.Env == "dev" {
		hub := core.NewReloadHub()
		mux.HandleFunc("/__postpage_reload", hub.ServeWS)

		stop, err := core.WatchTemplates(config.TemplatesDir, logger, hub.Notify)
		if err != nil {
			logger.Warn().Err(err).Msg("template watch disabled")
		} else {
			defer stop()
		}
	}

	mux.Handle("/", buildHandler(cfg.Env, config, templates, logger))

	addr := fmt.Sprintf("%s:%d", config.Host, config.Port)
	logger.Info().Str("addr", addr).Int("templates", templates.Count()).Msg("listening")

	return http.ListenAndServe(addr, mux)
}

// buildHandler wires the middleware chain around the page route:
// access log outermost, then the session cookie, then the
// path-scoped identity cookie.
func buildHandler(env string, config core.Config, templates *core.TemplateSet, logger zerolog.Logger) http.Handler {
	var handler http.Handler = core.NewPageHandler(env, config, templates)
	handler = core.IdentityMiddleware(config.Identity, core.SigningKey(identityKeyEnv), handler)
	handler = core.SessionMiddleware(config.Session, core.SigningKey(sessionKeyEnv), handler)
	return core.AccessLog(logger, handler)
}
