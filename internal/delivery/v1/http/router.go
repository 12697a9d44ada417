package http

import (
	"context"
	"net/http"
	"time"

	_ "github.com/DRSN-tech/catalog-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/catalog-backend/internal/usecase"
	"github.com/DRSN-tech/catalog-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck проверяет зависимости сервиса, например ping базы.
type HealthCheck func(ctx context.Context) error

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catUC usecase.CategoryUC, prUC usecase.ProductUC, maxImageBytes int64, health HealthCheck) {
	r.router.Use(middleware.RequestID)
	r.router.Use(middleware.RealIP)
	r.router.Use(LoggingMiddleware(r.logger))
	r.router.Use(middleware.Recoverer)

	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"), // ссылка на JSON
	))
	r.router.Get("/healthz", healthHandler(health))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		catHandler := NewCategoryHandler(catUC, r.logger)
		registerCategoryRoutes(v1, catHandler)

		prHandler := NewProductHandler(prUC, r.logger, maxImageBytes)
		registerProductRoutes(v1, prHandler)
	})
}

func registerCategoryRoutes(router chi.Router, catHandler *CategoryHandler) {
	router.Route("/categories", func(cat chi.Router) {
		cat.Post("/", catHandler.createCategory)
		cat.Get("/", catHandler.listCategories)
		cat.Get("/{id}", catHandler.getCategory)
		cat.Put("/{id}", catHandler.updateCategory)
		cat.Delete("/{id}", catHandler.deleteCategory)
	})
}

func registerProductRoutes(router chi.Router, prHandler *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Post("/", prHandler.createProduct)
		pr.Get("/", prHandler.listProducts)
		pr.Get("/search", prHandler.searchProducts)
		pr.Get("/{id}", prHandler.getProduct)
		pr.Put("/{id}", prHandler.updateProduct)
		pr.Delete("/{id}", prHandler.deleteProduct)
	})
}

// healthHandler отвечает 503, если проверка зависимостей не прошла.
func healthHandler(check HealthCheck) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
			defer cancel()

			if err := check(ctx); err != nil {
				WriteSuccess(w, http.StatusServiceUnavailable, NewErrorResponse(http.StatusServiceUnavailable, "unavailable"))
				return
			}
		}

		WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
	}
}
