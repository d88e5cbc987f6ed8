package wire

import (
	"net/http"

	"shop-loyalty/internal/adaptor"
	"shop-loyalty/internal/data/repository"
	"shop-loyalty/internal/usecase"
	"shop-loyalty/pkg/middleware"
	"shop-loyalty/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired dependencies
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and the router
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, service, logger)

	return &App{
		Router: router,
	}
}

func setupRouter(handler *adaptor.Handler, service *usecase.Service, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// Feature routes
	wireAuth(r, handler.Auth, service.Session, logger)
	wireLoyalty(r, handler.Loyalty, service.Session, logger)
	wireOrder(r, handler.Order, service.Session, logger)
	wireProduct(r, handler.Product, service.Session, logger)
	wireUser(r, handler.User, service.Session, logger)

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return r
}
