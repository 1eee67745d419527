// Package seed loads the fixtures the storefront starts from: the catalog,
// the new arrivals, and the back-office users, orders and deals.
package seed

import (
	_ "embed"
	"fmt"
	"os"
	"slices"

	"github.com/rogerio-castellano/storefront/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

type Data struct {
	Categories []string         `yaml:"categories"`
	Products   []models.Product `yaml:"products"`
	Users      []models.User    `yaml:"users"`
	Orders     []models.Order   `yaml:"orders"`
	Deals      []models.Deal    `yaml:"deals"`

	NewArrivals []models.NewArrival `yaml:"new_arrivals"`
}

// Default returns the embedded fixtures.
func Default() (Data, error) {
	return Parse(defaultSeed)
}

// LoadFile reads fixtures from path. An empty path yields the embedded fixtures.
func LoadFile(path string) (Data, error) {
	if path == "" {
		return Default()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Data{}, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

func Parse(raw []byte) (Data, error) {
	var d Data
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return Data{}, fmt.Errorf("failed to parse seed: %w", err)
	}
	if err := d.validate(); err != nil {
		return Data{}, err
	}
	return d, nil
}

func (d Data) validate() error {
	categories := make(map[string]bool, len(d.Categories))
	for _, c := range d.Categories {
		categories[c] = true
	}

	seen := make(map[string]bool, len(d.Products))
	for _, p := range d.Products {
		if p.ID == "" {
			return fmt.Errorf("seed product %q has no id", p.Name)
		}
		if seen[p.ID] {
			return fmt.Errorf("seed product id %q is duplicated", p.ID)
		}
		seen[p.ID] = true

		if !categories[p.Category] {
			return fmt.Errorf("seed product %q has unknown category %q", p.ID, p.Category)
		}
		if p.Price < 0 || p.Stock < 0 {
			return fmt.Errorf("seed product %q has negative price or stock", p.ID)
		}
		if p.Rating < 0 || p.Rating > 5 {
			return fmt.Errorf("seed product %q has rating out of range", p.ID)
		}
		if p.Discount < 0 || p.Discount > 100 {
			return fmt.Errorf("seed product %q has discount out of range", p.ID)
		}
	}

	for _, n := range d.NewArrivals {
		if n.ID == "" {
			return fmt.Errorf("seed new arrival %q has no id", n.Name)
		}
		if seen[n.ID] {
			return fmt.Errorf("seed new arrival id %q is duplicated", n.ID)
		}
		seen[n.ID] = true

		if !slices.Contains(models.NewArrivalCategories, n.Category) {
			return fmt.Errorf("seed new arrival %q has unknown category %q", n.ID, n.Category)
		}
	}
	return nil
}
