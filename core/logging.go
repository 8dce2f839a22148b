package core

import (
	"io"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process logger writing structured lines to
// stdout at the configured level. Unknown levels fall back to info.
func NewLogger(level string) zerolog.Logger {
	return NewLoggerWithOutput(level, os.Stdout)
}

func NewLoggerWithOutput(level string, out io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	n, err := r.ResponseWriter.Write(b)
	r.bytes += n
	return n, err
}

// AccessLog wraps next and emits one info-level line per request.
func AccessLog(logger zerolog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, req)

		logger.Info().
			Str("method", req.Method).
			Str("path", req.URL.Path).
			Int("status", rec.status).
			Int("bytes", rec.bytes).
			Dur("duration", time.Since(start)).
			Str("remote", req.RemoteAddr).
			Msg("request")
	})
}
