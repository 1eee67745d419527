package main

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/spf13/cobra"
)

// @title Storefront API
// @version 1.0
// @description REST API for the eco storefront: catalog, session cart and wishlist, checkout, tracking and the admin back office.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := config.New()
	var configPath string

	root := &cobra.Command{
		Use:           "storefront",
		Short:         "Eco storefront server and catalog tools",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to a config file (default ./storefront.yaml)")
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	cobra.CheckErr(v.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level")))

	load := func() (config.Config, error) {
		return config.Load(v, configPath)
	}
	root.AddCommand(newServeCmd(v, load), newSearchCmd(load))
	return root
}
