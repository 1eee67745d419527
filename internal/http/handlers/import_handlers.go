package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/storefront/internal/repo"
)

// csv columns: name, category, price, stock; description, image and featured are optional.
type csvRow struct {
	Name        string
	Category    string
	Price       float64
	Stock       int
	Description string
	Image       string
	Featured    bool
}

func parseCSV(r io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(r)
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range []string{"name", "category", "price", "stock"} {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("missing column %q", col)
		}
	}

	field := func(record []string, col string) string {
		i, ok := index[col]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		rows = append(rows, csvRow{
			Name:        field(record, "name"),
			Category:    field(record, "category"),
			Price:       parseFloat(field(record, "price")),
			Stock:       parseInt(field(record, "stock")),
			Description: field(record, "description"),
			Image:       field(record, "image"),
			Featured:    parseBool(field(record, "featured")),
		})
	}
	return rows, nil
}

func validateRow(r csvRow) error {
	if r.Name == "" {
		return errors.New("missing name")
	}
	if r.Category == "" {
		return errors.New("missing category")
	}
	if r.Price <= 0 {
		return errors.New("invalid price")
	}
	if r.Stock < 0 {
		return errors.New("invalid stock")
	}
	return nil
}

func parseFloat(s string) float64 {
	v, _ := strconv.ParseFloat(s, 64)
	return v
}

func parseInt(s string) int {
	v, err := strconv.Atoi(s)
	if err != nil {
		return -1
	}
	return v
}

func parseBool(s string) bool {
	v, _ := strconv.ParseBool(s)
	return v
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Tags admin-products
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /admin/products/import [post]
// @Security BearerAuth
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	imported := 0
	errorsList := []ValidationError{}
	rowError := func(rowNum int, format string, args ...any) {
		errorsList = append(errorsList, ValidationError{
			Field:       fmt.Sprintf("row %d", rowNum),
			Description: fmt.Sprintf(format, args...),
		})
	}

	for i, rec := range records {
		rowNum := i + 2 // header is row 1

		if err := validateRow(rec); err != nil {
			rowError(rowNum, "%v", err)
			continue
		}

		existing, err := s.Products.GetByName(rec.Name)
		if err == nil {
			if mode == "skip" {
				rowError(rowNum, "product '%s' already exists", rec.Name)
				continue
			}
			existing.Category = rec.Category
			existing.Price = rec.Price
			existing.Stock = rec.Stock
			if rec.Description != "" {
				existing.Description = rec.Description
			}
			if rec.Image != "" {
				existing.Image = rec.Image
			}
			existing.Featured = rec.Featured
			if _, err := s.Products.Update(existing); err != nil {
				rowError(rowNum, "failed to update '%s'", rec.Name)
				continue
			}
			imported++
			continue
		}
		if !errors.Is(err, repo.ErrProductNotFound) {
			rowError(rowNum, "failed to look up '%s'", rec.Name)
			continue
		}

		newProduct := productFromRequest("", ProductRequest{
			Name:        rec.Name,
			Category:    rec.Category,
			Price:       rec.Price,
			Stock:       rec.Stock,
			Description: rec.Description,
			Image:       rec.Image,
			Featured:    rec.Featured,
		})
		if _, err := s.Products.Create(newProduct); err != nil {
			rowError(rowNum, "%v", err)
			continue
		}
		imported++
	}

	s.respond(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
}
