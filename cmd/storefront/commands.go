package main

import (
	"fmt"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"github.com/nikolayk812/storefront-demo/internal/app"
	"github.com/nikolayk812/storefront-demo/internal/browse"
	"github.com/nikolayk812/storefront-demo/internal/config"
	"github.com/nikolayk812/storefront-demo/internal/domain"
	applog "github.com/nikolayk812/storefront-demo/internal/logger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveAddr       string
	catalogCategory string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the storefront JSON API",
	RunE:  runServe,
}

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the initial catalog",
	RunE:  runCatalog,
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}

func initLogger(cfg config.LoggerConfig) error {
	l, err := applog.New(cfg, verbose)
	if err != nil {
		return fmt.Errorf("logger.New: %w", err)
	}
	logger = l
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.Server.Addr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, logger)
	if err != nil {
		return fmt.Errorf("app.New: %w", err)
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("close application", zap.Error(err))
		}
	}()

	return a.Run(ctx)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if catalogCategory != browse.All {
		if _, err := domain.ParseCategory(catalogCategory); err != nil {
			return err
		}
	}

	products, err := app.Catalog(cfg.Store)
	if err != nil {
		return fmt.Errorf("app.Catalog: %w", err)
	}

	unit, err := cfg.CurrencyUnit()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tCATEGORY\tPRICE\tSTOCK")
	for _, p := range browse.Filter(products, catalogCategory) {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\n", p.ID, p.Name, p.Category, domain.NewMoney(p.Price, unit), p.Quantity)
	}
	return w.Flush()
}
