package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rogerio-castellano/storefront/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	d, err := Default()
	require.NoError(t, err)

	assert.Len(t, d.Categories, 6)
	assert.Len(t, d.Products, 8)
	assert.Len(t, d.Users, 5)
	assert.Len(t, d.Orders, 4)
	assert.Len(t, d.Deals, 3)

	assert.Equal(t, "Bamboo Toothbrush Set", d.Products[0].Name)
	assert.True(t, d.Products[0].Featured)
	assert.Equal(t, 10, d.Products[1].Discount)
	assert.Equal(t, models.OrderDelivered, d.Orders[0].Status)
	assert.Equal(t, "90001", d.Orders[0].ShippingAddress.ZipCode)
	assert.Equal(t, 2023, d.Users[0].Joined.Year())
	assert.Equal(t, "EARTH20", d.Deals[0].Code)

	require.Len(t, d.NewArrivals, 8)
	assert.Equal(t, "na1", d.NewArrivals[0].ID)
	assert.Equal(t, 18, d.NewArrivals[0].DateAdded.Day())
	assert.True(t, d.NewArrivals[0].Visible)
}

func TestParse_RejectsNewArrivalClashingWithProduct(t *testing.T) {
	raw := []byte(`
categories: [Clothing]
products:
  - {id: "1", name: A, category: Clothing, price: 1}
new_arrivals:
  - {id: "1", name: B, category: Fashion, price: 2}
`)
	_, err := Parse(raw)
	assert.ErrorContains(t, err, "duplicated")
}

func TestParse_RejectsUnknownNewArrivalCategory(t *testing.T) {
	_, err := Parse([]byte("new_arrivals:\n  - {id: na1, name: A, category: Toys, price: 1}\n"))
	assert.ErrorContains(t, err, "unknown category")
}

func TestParse_RejectsDuplicateIDs(t *testing.T) {
	raw := []byte(`
categories: [Clothing]
products:
  - {id: "1", name: A, category: Clothing, price: 1}
  - {id: "1", name: B, category: Clothing, price: 2}
`)
	_, err := Parse(raw)
	assert.ErrorContains(t, err, "duplicated")
}

func TestParse_RejectsUnknownCategory(t *testing.T) {
	raw := []byte(`
categories: [Clothing]
products:
  - {id: "1", name: A, category: Toys, price: 1}
`)
	_, err := Parse(raw)
	assert.ErrorContains(t, err, "unknown category")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte("categories: [Clothing]\nproducts:\n  - {id: x, name: Shirt, category: Clothing, price: 5}\n"), 0o600))

	d, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, d.Products, 1)
	assert.Equal(t, "x", d.Products[0].ID)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
