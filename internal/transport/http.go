package transport

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	lookupHttp "github.com/vasiliy-maslov/retail-ops/internal/handler/http"
	"github.com/vasiliy-maslov/retail-ops/internal/metrics"
)

func NewRouter(lookupHandler *lookupHttp.LookupHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(lookupHttp.RequestLogger)
	r.Use(metrics.Middleware)
	r.Use(lookupHttp.Recoverer)
	r.Use(lookupHttp.CORS)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Handle("/metrics", metrics.Handler())

	lookupHandler.RegisterRoutes(r)

	return r
}
