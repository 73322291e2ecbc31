package metrics

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewRouter serves /metrics, /health and the pprof handlers under /debug.
func NewRouter(m *Metrics) *chi.Mux {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Mount("/debug", middleware.Profiler())
	return r
}

// StartDebugServer serves NewRouter on addr in the background. An empty addr
// disables it. The returned server may be nil.
func StartDebugServer(addr string, m *Metrics) *http.Server {
	if addr == "" {
		log.Println("Debug server disabled")
		return nil
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           NewRouter(m),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Printf("Debug server starting on %s", addr)
		log.Printf("   - pprof:   http://%s/debug/pprof/", addr)
		log.Printf("   - metrics: http://%s/metrics", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Printf("Debug server error: %v", err)
		}
	}()
	return srv
}
