package httptransport

import (
	"expvar"
	"fmt"
	"net/http"
	"sort"
	"strings"

	"dilemma-arena/internal/app/arena"
	"dilemma-arena/internal/config"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog/log"
)

func NewRouter(svc *arena.Service, cfg config.ServerConfig) *chi.Mux {
	return newRouter(svc, cfg, APILogMiddleware())
}

func newRouter(svc *arena.Service, cfg config.ServerConfig, logMW func(http.Handler) http.Handler) *chi.Mux {
	h := NewArenaHandlers(svc, int64(cfg.MaxBodyBytes))

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)
	r.Use(cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}).Handler)

	r.With(logMW).Get("/healthz", h.Health())

	r.Route("/api", func(r chi.Router) {
		r.Use(logMW)
		r.Use(MaxBodyMiddleware(int64(cfg.MaxBodyBytes)))
		r.Get("/rules", h.Rules())
		r.With(BodyCaptureMiddleware(cfg.CaptureBodies)).Post("/tournaments", h.RunTournament())
		r.Post("/tournaments/stream", h.StreamTournament())
		r.Post("/tournaments/batch", h.RunBatch())
		r.Get("/debug/vars", expvar.Handler().ServeHTTP)
	})
	return r
}

func LogRoutes(r chi.Router) {
	type routeDef struct {
		Method string
		Path   string
	}
	routes := make([]routeDef, 0, 8)
	err := chi.Walk(r, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		routes = append(routes, routeDef{Method: method, Path: route})
		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("walk routes failed")
		return
	}
	sort.Slice(routes, func(i, j int) bool {
		if routes[i].Path == routes[j].Path {
			return routes[i].Method < routes[j].Method
		}
		return routes[i].Path < routes[j].Path
	})
	var b strings.Builder
	b.WriteString(fmt.Sprintf("Registered routes (%d):\n", len(routes)))
	for _, rt := range routes {
		b.WriteString(fmt.Sprintf("  %-6s %s\n", rt.Method, rt.Path))
	}
	fmt.Print(b.String())
}
