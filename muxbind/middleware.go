package muxbind

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rohanthewiz/rctl"
	"github.com/rohanthewiz/rctl/consts"
)

// statusRecorder remembers the status code written through it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (s *statusRecorder) WriteHeader(code int) {
	s.status = code
	s.ResponseWriter.WriteHeader(code)
}

func (s *statusRecorder) Write(b []byte) (int, error) {
	if s.status == 0 {
		s.status = http.StatusOK
	}
	return s.ResponseWriter.Write(b)
}

// RequestInfo is a middleware giving basic request / response stats.
// A nil log means an info level rohanthewiz/logger.
func RequestInfo(log rctl.Logger) mux.MiddlewareFunc {
	if log == nil {
		log = rctl.NewLogger(consts.LevelInfo)
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w}

			defer func() {
				status := rec.status
				if status == 0 {
					status = http.StatusOK
				}
				log.Info("request",
					"method", r.Method,
					"path", r.URL.Path,
					"status", strconv.Itoa(status),
					"latency", time.Since(start).String())
			}()

			next.ServeHTTP(rec, r)
		})
	}
}
