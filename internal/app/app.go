// Package app assembles the storefront from configuration.
package app

import (
	"context"
	"fmt"

	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/nikolayk812/storefront-demo/internal/form"
	"github.com/nikolayk812/storefront-demo/internal/idgen"
	"github.com/nikolayk812/storefront-demo/internal/repository"
	"github.com/nikolayk812/storefront-demo/internal/seed"
	"github.com/nikolayk812/storefront-demo/internal/staging"
	"github.com/nikolayk812/storefront-demo/internal/store"
	"github.com/nikolayk812/storefront-demo/internal/webserver"
	"go.uber.org/zap"
)

type Application struct {
	cfg    *config.Config
	logger *zap.Logger

	store  *store.Store
	board  *staging.Board
	form   *form.Form
	server *webserver.Server
}

func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Application, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return nil, fmt.Errorf("cfg.CurrencyUnit: %w", err)
	}

	products, err := Catalog(cfg.Store)
	if err != nil {
		return nil, fmt.Errorf("Catalog: %w", err)
	}

	ids, err := idgen.New(cfg.Store.IDStrategy, cfg.Store.SnowflakeNode)
	if err != nil {
		return nil, fmt.Errorf("idgen.New: %w", err)
	}

	st, err := store.New(ctx, repository.NewCatalog(products), repository.NewCart(),
		store.WithCurrency(unit),
		store.WithLogger(logger.Named("store")))
	if err != nil {
		return nil, fmt.Errorf("store.New: %w", err)
	}

	board, err := staging.NewBoard(st, st.Bus(), logger.Named("staging"))
	if err != nil {
		return nil, fmt.Errorf("staging.NewBoard: %w", err)
	}

	opts := []form.Option{
		form.WithRedirectDelay(cfg.AddProduct.RedirectDelay),
		form.WithLogger(logger.Named("form")),
	}
	if cfg.AddProduct.DefaultImage != "" {
		opts = append(opts, form.WithDefaultImage(cfg.AddProduct.DefaultImage))
	}
	f := form.New(st, ids, opts...)

	logger.Info("storefront assembled",
		zap.Int("products", len(products)),
		zap.String("currency", unit.String()),
		zap.String("id_strategy", cfg.Store.IDStrategy))

	return &Application{
		cfg:    cfg,
		logger: logger,
		store:  st,
		board:  board,
		form:   f,
		server: webserver.New(cfg.Server, st, board, f, logger.Named("http")),
	}, nil
}

// Catalog loads the initial catalog: the seed file or the built-in one, followed by generated products.
func Catalog(cfg config.StoreConfig) ([]domain.Product, error) {
	var (
		products []domain.Product
		err      error
	)

	if cfg.SeedFile != "" {
		products, err = seed.LoadFile(cfg.SeedFile)
	} else {
		products, err = seed.Default()
	}
	if err != nil {
		return nil, err
	}

	if cfg.FakeProducts > 0 {
		products = append(products, seed.Fake(cfg.FakeProducts, cfg.FakeSeed)...)
	}

	return products, nil
}

func (a *Application) Store() *store.Store {
	return a.store
}

func (a *Application) Server() *webserver.Server {
	return a.server
}

// Run serves HTTP until ctx is canceled.
func (a *Application) Run(ctx context.Context) error {
	return a.server.Run(ctx)
}

func (a *Application) Close() error {
	if err := a.board.Close(); err != nil {
		return fmt.Errorf("board.Close: %w", err)
	}
	return nil
}
