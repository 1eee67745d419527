package main

import (
	"fmt"
	"net/url"

	"github.com/rogerio-castellano/storefront/internal/catalog"
	"github.com/rogerio-castellano/storefront/internal/config"
	"github.com/rogerio-castellano/storefront/internal/seed"
	"github.com/spf13/cobra"
)

func newSearchCmd(load func() (config.Config, error)) *cobra.Command {
	var (
		search, category, sort string
		minPrice, maxPrice     string
	)

	cmd := &cobra.Command{
		Use:   "search",
		Short: "Filter and sort the seeded catalog",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			data, err := seed.LoadFile(cfg.SeedFile)
			if err != nil {
				return err
			}
			c := catalog.New(data.Products, data.Categories)

			q := url.Values{}
			for key, val := range map[string]string{
				"search":   search,
				"category": category,
				"minPrice": minPrice,
				"maxPrice": maxPrice,
				"sort":     sort,
			} {
				if val != "" {
					q.Set(key, val)
				}
			}
			fs := catalog.FilterFromQuery(q, c.DefaultFilter())

			out := cmd.OutOrStdout()
			results := c.Search(fs)
			for _, p := range results {
				fmt.Fprintf(out, "%-4s %-32s %-16s %8.2f\n", p.ID, p.Name, p.Category, p.Price)
			}
			fmt.Fprintf(out, "%d of %d products\n", len(results), len(c.Products()))
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&search, "search", "", "case-insensitive name search")
	f.StringVar(&category, "category", "", "category name or slug")
	f.StringVar(&minPrice, "min-price", "", "lower price bound")
	f.StringVar(&maxPrice, "max-price", "", "upper price bound")
	f.StringVar(&sort, "sort", "", "featured, price-low, price-high or name")
	return cmd
}
