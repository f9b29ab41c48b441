package httpapi

import (
	"context"
	"net/http"

	"github.com/diillson/aws-dashboard-go/internal/application/usecase"
	"github.com/diillson/aws-dashboard-go/internal/observability/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"
)

// NewRouter monta o roteador com CORS liberado, instrumentação de métricas e
// os endpoints do dashboard.
func NewRouter(logger logrus.FieldLogger, dashboard *usecase.DashboardUseCase, registry *metrics.Registry) chi.Router {
	handler := NewHandler(logger, dashboard)

	router := chi.NewRouter()

	// Qualquer origem pode chamar a API. Política explícita, não acidente.
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}))
	router.Use(instrument(registry))

	router.Get("/health", handler.Health)
	router.Method(http.MethodGet, "/metrics", registry.Handler())
	router.Post("/resources", handler.Resources)
	router.Post("/cost", handler.Cost)
	router.Post("/trend", handler.Trend)
	router.Post("/budgets", handler.Budgets)

	return router
}

// Server representa o servidor HTTP do dashboard.
type Server struct {
	httpServer *http.Server
}

// NewServer creates the HTTP server for the given address.
func NewServer(addr string, logger logrus.FieldLogger, dashboard *usecase.DashboardUseCase, registry *metrics.Registry) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:    addr,
			Handler: NewRouter(logger, dashboard, registry),
		},
	}
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
