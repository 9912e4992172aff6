// Package webserver exposes the storefront state over a JSON HTTP API.
package webserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/nikolayk812/storefront-demo/internal/browse"
	"github.com/nikolayk812/storefront-demo/internal/cartview"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/form"
	"github.com/nikolayk812/storefront-demo/internal/staging"
	"github.com/nikolayk812/storefront-demo/internal/store"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.ServerConfig
	echo   *echo.Echo
	logger *zap.Logger

	store    *store.Store
	board    *staging.Board
	controls *cartview.Controls
	form     *form.Form

	// mu guards the single-session page state below.
	mu      sync.Mutex
	browser *browse.Browser
	draft   *form.Draft
}

func New(cfg config.ServerConfig, st *store.Store, board *staging.Board, f *form.Form, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}

	s := &Server{
		cfg:      cfg,
		echo:     e,
		logger:   logger,
		store:    st,
		board:    board,
		controls: cartview.NewControls(st),
		form:     f,
		browser:  browse.NewBrowser(len(st.Catalog()), st.Currency()),
		draft:    f.NewDraft(),
	}

	e.Use(middleware.Recover())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency))
			return nil
		},
	}))

	s.registerRoutes()

	return s
}

func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is canceled, then shuts down within the configured timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	s.logger.Info("storefront server starting", zap.String("addr", s.cfg.Addr))

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("echo.Start: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := s.echo.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("echo.Shutdown: %w", err)
	}

	if err := <-errCh; err != nil {
		return fmt.Errorf("echo.Start: %w", err)
	}

	s.logger.Info("storefront server stopped")

	return nil
}

func (s *Server) registerRoutes() {
	api := s.echo.Group("/api")

	api.GET("/categories", s.listCategories)
	api.GET("/products", s.listProducts)
	api.GET("/products/:id", s.getProduct)
	api.POST("/products", s.createProduct)

	api.GET("/modal", s.getModal)
	api.POST("/modal/:id", s.openModal)
	api.DELETE("/modal", s.closeModal)

	api.GET("/draft", s.getDraft)
	api.PUT("/draft/:field", s.setDraftField)
	api.POST("/draft/submit", s.submitDraft)

	api.GET("/cart", s.getCart)
	api.PUT("/cart/:id", s.updateCart)
	api.DELETE("/cart/:id", s.removeCartLine)
	api.POST("/cart/:id/increment", s.changeCartLine(1))
	api.POST("/cart/:id/decrement", s.changeCartLine(-1))

	api.GET("/cards/:id", s.getCard)
	api.POST("/cards/:id/increment", s.incrementCard)
	api.POST("/cards/:id/decrement", s.decrementCard)
	api.POST("/cards/:id/commit", s.commitCard)
	api.POST("/cards/:id/remove", s.removeCard)

	api.GET("/summary", s.getSummary)
}
