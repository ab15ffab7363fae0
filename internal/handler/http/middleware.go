package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
)

var (
	corsAllowedHeaders = []string{"authorization", "x-client-info", "apikey", "content-type"}
	corsAllowedMethods = []string{http.MethodGet, http.MethodPost, http.MethodOptions}
)

// CORS adds permissive cross-origin headers to every response and answers
// preflight requests with an empty 200.
func CORS(next http.Handler) http.Handler {
	headers := strings.Join(corsAllowedHeaders, ", ")
	methods := strings.Join(corsAllowedMethods, ", ")

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", headers)
		w.Header().Set("Access-Control-Allow-Methods", methods)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Recoverer turns a panic into the JSON 500 response shape.
func Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			log.Error().
				Interface("panic_value", rec).
				Str("request_id", middleware.GetReqID(r.Context())).
				Str("path", r.URL.Path).
				Msg("Panic recovered in HTTP handler")
			respondWithError(w, http.StatusInternalServerError, panicMessage(rec))
		}()

		next.ServeHTTP(w, r)
	})
}

// RequestLogger writes one zerolog line per request. Wire it after middleware.RequestID.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}

		log.Info().
			Str("request_id", middleware.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", status).
			Int("bytes", ww.BytesWritten()).
			Dur("duration", time.Since(start)).
			Str("ip", r.RemoteAddr).
			Msg("request")
	})
}
