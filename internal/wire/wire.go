package wire

import (
	"net/http"
	"time"

	"campus-market/internal/adaptor"
	"campus-market/internal/data/repository"
	"campus-market/internal/usecase"
	"campus-market/pkg/jwtauth"
	"campus-market/pkg/middleware"
	"campus-market/pkg/upload"
	"campus-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

var startTime = time.Now()

// App holds the wired router
type App struct {
	Router *chi.Mux
}

// Wiring initializes all dependencies
func Wiring(repo *repository.Repository, config *utils.Config, logger *zap.Logger) *App {
	tokens := jwtauth.NewTokenService(config.JWT)
	storage := upload.NewStorage(config.Upload, logger)

	service := usecase.NewService(repo, tokens, storage, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, repo, tokens, config, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	repo *repository.Repository,
	tokens *jwtauth.TokenService,
	config *utils.Config,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewHTTPMetrics(config.App.Name)

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())
	r.Use(metrics.Middleware())

	// Apply routes
	wireAuth(r, handler.Auth)
	wireUser(r, handler.User, tokens, logger)
	wireProduct(r, handler.Product, repo, tokens, logger)

	// Stored upload files are served as-is under the public URL prefix
	files := http.StripPrefix(config.Upload.URLPrefix, http.FileServer(http.Dir(config.Upload.Dir)))
	r.Get(config.Upload.URLPrefix+"*", files.ServeHTTP)

	// Diagnostics
	r.Get("/_health", func(w http.ResponseWriter, r *http.Request) {
		utils.ResponseOK(w, map[string]any{
			"success": true,
			"uptime":  time.Since(startTime).Seconds(),
		})
	})
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	return r
}
