package main

import (
	"fmt"

	"github.com/spf13/cobra"

	catalogapp "github.com/dmehra2102/Retail-POS-System/internal/catalog/application"
	"github.com/dmehra2102/Retail-POS-System/internal/catalog/infrastructure/yamlstore"
	"github.com/dmehra2102/Retail-POS-System/internal/config"
	"github.com/dmehra2102/Retail-POS-System/pkg/logging"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the catalog seed and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logging.New(verbose)

		cfg, err := config.Load(cfgFile)
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

		for _, p := range catalog.List() {
			flag := ""
			if catalog.IsLow(p) {
				flag = "  [LOW]"
			}
			fmt.Printf("%-14s%-22s%10s%8d%s\n", string(p.ID), p.Name, p.UnitPrice.StringFixed(2), p.Stock, flag)
		}
		return nil
	},
}
