package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/go-chi/chi/v5"
	"github.com/spf13/cobra"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	"github.com/dmehra2102/Retail-POS-System/internal/catalog/infrastructure/yamlstore"
	checkoutapp "github.com/dmehra2102/Retail-POS-System/internal/checkout/application"
	checkouthttp "github.com/dmehra2102/Retail-POS-System/internal/checkout/infrastructure/http"
	"github.com/dmehra2102/Retail-POS-System/internal/config"
	pricingapp "github.com/dmehra2102/Retail-POS-System/internal/pricing/application"
	"github.com/dmehra2102/Retail-POS-System/internal/terminal"
	"github.com/dmehra2102/Retail-POS-System/pkg/journal"
	"github.com/dmehra2102/Retail-POS-System/pkg/logging"
	"github.com/dmehra2102/Retail-POS-System/pkg/metrics"
	"github.com/dmehra2102/Retail-POS-System/pkg/shutdown"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "pos-terminal",
	Short: "Single-register point-of-sale terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run()
	},
}

func main() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "path to the configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(catalogCmd, versionCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	log := logging.New(verbose)

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	rates, err := cfg.PricingRates()
	if err != nil {
		return err
	}

	products, err := yamlstore.Load(cfg.CatalogPath)
	if err != nil {
		return err
	}
	catalog, err := catalogapp.NewService(log, products, cfg.RestockThreshold)
	if err != nil {
		return err
	}

	events := journal.NewStore(log, cfg.JournalSize)
	stats := metrics.NewTerminalMetrics()
	pricing := pricingapp.NewService(rates)
	receipts := checkoutapp.NewReceiptIssuer()
	coord := checkoutapp.NewCoordinator(log, catalog, pricing, receipts, events, stats)

	// Ops server: read-only status plus prometheus scrape target.
	handler := checkouthttp.NewHandler(log, catalog, events)
	r := chi.NewRouter()
	r.Mount("/", handler.Routes())
	r.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:         cfg.OpsAddr,
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	go func() {
		log.Info("ops server listening", "addr", cfg.OpsAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("ops server error", "err", err)
		}
	}()

	p := tea.NewProgram(terminal.NewModel(cfg.StoreName, coord, catalog))
	go func() {
		<-ctx.Done()
		p.Quit()
	}()

	_, runErr := p.Run()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	_ = srv.Shutdown(shutdownCtx)

	log.Info("pos-terminal shutdown complete")
	return runErr
}
