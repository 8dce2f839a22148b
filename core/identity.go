package core

import (
	"net/http"
	"strings"

	"github.com/gorilla/sessions"
)

// IdentityMiddleware carries the signed identity cookie for the admin
// path prefix. No route lives under that prefix yet, so in practice
// the cookie is configured but never issued.
func IdentityMiddleware(cfg CookieConfig, key []byte, next http.Handler) http.Handler {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     cfg.Path,
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
	}

	prefix := strings.TrimSuffix(cfg.Path, "/")

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		if prefix == "" || strings.HasPrefix(req.URL.Path, prefix) {
			sess, _ := store.Get(req, cfg.Name)
			_ = sess.Save(req, w)
		}

		next.ServeHTTP(w, req)
	})
}
