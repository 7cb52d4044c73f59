package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/firstoffice/officebooking/api"
	"github.com/firstoffice/officebooking/config"
	"github.com/firstoffice/officebooking/internal/metrics"
	"github.com/firstoffice/officebooking/internal/service/booking"
	"github.com/firstoffice/officebooking/internal/service/offices"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Run starts the HTTP server and blocks until context cancellation or a
// server failure. Shutdown is graceful with a short deadline.
func Run(ctx context.Context, cfg *config.Config, officeSvc offices.OfficeUseCase, bookingSvc booking.BookingUseCase) error {
	httpServer := &http.Server{
		Addr:    cfg.HTTP.Address,
		Handler: newRouter(cfg, officeSvc, bookingSvc),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- httpServer.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		return nil
	}
}

func newRouter(cfg *config.Config, officeSvc offices.OfficeUseCase, bookingSvc booking.BookingUseCase) *gin.Engine {
	metrics.Register()

	router := gin.New()
	router.Use(gin.Recovery(), api.CountRequests())

	public := router.Group("/api")
	api.NewOfficeHandler(officeSvc).Register(public)
	api.NewBookingHandler(bookingSvc).Register(public)

	admin := router.Group("/api/admin", api.APIKeyAuth(cfg.Admin.APIKey))
	api.NewAdminHandler(bookingSvc).Register(admin)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	if cfg.HTTP.SwaggerDir != "" {
		router.StaticFS("/swagger", http.Dir(cfg.HTTP.SwaggerDir))
		router.GET("/docs/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/officebooking.swagger.json"),
		)))
	}

	return router
}
