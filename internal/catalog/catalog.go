// Package catalog holds the read-only product catalog and the filter pipeline
// the shop page runs over it.
package catalog

import (
	"errors"
	"slices"

	"github.com/rogerio-castellano/storefront/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

type Category struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Catalog is built once at start-up and never mutated.
type Catalog struct {
	products   []models.Product
	categories []string
}

func New(products []models.Product, categories []string) *Catalog {
	return &Catalog{
		products:   slices.Clone(products),
		categories: slices.Clone(categories),
	}
}

// Products returns a copy of every product in catalog order.
func (c *Catalog) Products() []models.Product {
	return slices.Clone(c.products)
}

func (c *Catalog) Get(id string) (models.Product, error) {
	for _, p := range c.products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrProductNotFound
}

func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, name := range c.categories {
		out[i] = Category{Name: name, Slug: Slug(name)}
	}
	return out
}

// MaxPrice is the highest price in the catalog, the default upper price bound.
func (c *Catalog) MaxPrice() float64 {
	hi := 0.0
	for _, p := range c.products {
		if p.Price > hi {
			hi = p.Price
		}
	}
	return hi
}

func (c *Catalog) DefaultFilter() FilterState {
	return DefaultFilter(c.MaxPrice())
}

func (c *Catalog) Search(fs FilterState) []models.Product {
	return Apply(c.products, fs)
}

func (c *Catalog) Featured() []models.Product {
	out := []models.Product{}
	for _, p := range c.products {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// Similar returns up to limit products sharing id's category, excluding id itself.
func (c *Catalog) Similar(id string, limit int) []models.Product {
	p, err := c.Get(id)
	if err != nil {
		return []models.Product{}
	}
	out := []models.Product{}
	for _, other := range c.products {
		if len(out) == limit {
			break
		}
		if other.Category == p.Category && other.ID != p.ID {
			out = append(out, other)
		}
	}
	return out
}
