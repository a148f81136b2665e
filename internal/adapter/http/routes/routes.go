package routes

import (
	"context"
	"errors"
	"net/http"
	"time"

	_ "loja_merch/docs"
	"loja_merch/internal/adapter/http/middleware"
	"loja_merch/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 10 * time.Second

// Run serves the API until ctx is cancelled, then drains in-flight requests
// and releases the dependencies.
func Run(ctx context.Context, cfg *config.Config, logger *zap.Logger) error {
	deps, err := BuildDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := deps.Close(); err != nil {
			logger.Warn("failed releasing dependencies", zap.Error(err))
		}
	}()

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           NewRouter(cfg, deps, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("HTTP server started", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// NewRouter builds the gin engine with middlewares and every route.
func NewRouter(cfg *config.Config, deps *Dependencies, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, logger)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", middleware.PrometheusHandler())

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addOrderRoutes(v1, deps.OrderHandler)
	addAdminRoutes(v1, deps.AdminHandler)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, logger *zap.Logger) {
	// otelgin first so the access log sees the request span.
	router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	router.Use(middleware.RecoveryMiddleware(logger))
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.MetricsMiddleware())
}
