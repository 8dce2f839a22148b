package core

import (
	"crypto/rand"
	"net/http"
	"os"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SigningKey returns the cookie signing key from the named environment
// variable, or a random per-process key when it is unset. With a random
// key, cookies do not verify across restarts.
func SigningKey(envVar string) []byte {
	if v := os.Getenv(envVar); v != "" {
		return []byte(v)
	}
	key := make([]byte, 32)
	rand.Read(key)
	return key
}

// SessionMiddleware issues the signed session cookie on every response.
// No handler reads it; the scaffold only establishes the session on the
// wire.
func SessionMiddleware(cfg CookieConfig, key []byte, next http.Handler) http.Handler {
	store := sessions.NewCookieStore(key)
	store.Options = &sessions.Options{
		Path:     cfg.Path,
		MaxAge:   cfg.MaxAge,
		Secure:   cfg.Secure,
		HttpOnly: true,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		sess, _ := store.Get(req, cfg.Name)
		if sess.IsNew {
			sess.Values["sid"] = uuid.NewString()
		}
		// Save before the handler writes: Set-Cookie is a header.
		_ = sess.Save(req, w)

		next.ServeHTTP(w, req)
	})
}
