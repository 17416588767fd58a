package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/auth"
	"github.com/MAnojSHA5799/Candebrilla-web-1/internal/service"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/health"
	"github.com/MAnojSHA5799/Candebrilla-web-1/pkg/middleware"
)

// NewRouter creates a chi router with all storefront routes registered.
func NewRouter(
	catalogService *service.CatalogService,
	adminService *service.AdminService,
	gate *auth.Gate,
	healthHandler *health.Handler,
	logger *slog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.CORS(middleware.DefaultCORSConfig()))
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestLogging(logger))
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.PrometheusMetrics("catalog-service"))
	r.Use(middleware.Tracing("catalog-service"))

	// Health and metrics endpoints
	r.Get("/health/live", healthHandler.LivenessHandler())
	r.Get("/health/ready", healthHandler.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	productHandler := NewProductHandler(catalogService, adminService, logger)
	authHandler := NewAuthHandler(gate, logger)
	uploadHandler := NewUploadHandler(adminService, logger)

	// Public storefront endpoints
	r.Route("/api/v1/products", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", productHandler.ListProducts)
		r.Get("/{id}", productHandler.GetProduct)

		// Admin mutations behind the session gate
		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(gate.Validate))

			r.Post("/", productHandler.CreateProduct)
			r.Put("/{id}", productHandler.UpdateProduct)
			r.Delete("/{id}", productHandler.DeleteProduct)
		})
	})

	r.Route("/api/v1/categories", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Get("/", productHandler.ListCategories)
	})

	r.Route("/api/v1/auth", func(r chi.Router) {
		r.Use(ContentTypeJSON)

		r.Post("/login", authHandler.Login)
	})

	r.Route("/api/v1/uploads", func(r chi.Router) {
		r.Use(middleware.Auth(gate.Validate))

		r.Post("/", uploadHandler.Upload)
	})

	return r
}
