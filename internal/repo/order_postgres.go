package repo

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/rogerio-castellano/storefront/internal/models"
)

const orderColumns = `id, customer_id, customer_name, customer_email, created_at, status, items, totals,
	shipping_address, payment_method, coupon_code, tracking_number`

type PostgresOrderRepository struct {
	db *sql.DB
}

func NewPostgresOrderRepository(db *sql.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{db: db}
}

func scanOrder(row rowScanner) (models.Order, error) {
	var (
		o                      models.Order
		status                 string
		items, totals, address []byte
	)
	err := row.Scan(&o.ID, &o.CustomerID, &o.CustomerName, &o.CustomerEmail, &o.CreatedAt, &status,
		&items, &totals, &address, &o.PaymentMethod, &o.CouponCode, &o.TrackingNumber)
	if err != nil {
		return models.Order{}, err
	}
	o.Status = models.OrderStatus(status)
	if err := json.Unmarshal(items, &o.Lines); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode order items: %w", err)
	}
	if err := json.Unmarshal(totals, &o.Totals); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode order totals: %w", err)
	}
	if err := json.Unmarshal(address, &o.ShippingAddress); err != nil {
		return models.Order{}, fmt.Errorf("failed to decode shipping address: %w", err)
	}
	return o, nil
}

func (r *PostgresOrderRepository) Create(o models.Order) (models.Order, error) {
	items, err := json.Marshal(o.Lines)
	if err != nil {
		return models.Order{}, err
	}
	totals, err := json.Marshal(o.Totals)
	if err != nil {
		return models.Order{}, err
	}
	address, err := json.Marshal(o.ShippingAddress)
	if err != nil {
		return models.Order{}, err
	}

	query := `INSERT INTO orders (` + orderColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	_, err = r.db.ExecContext(ctx, query, o.ID, o.CustomerID, o.CustomerName, o.CustomerEmail, o.CreatedAt,
		string(o.Status), items, totals, address, o.PaymentMethod, o.CouponCode, o.TrackingNumber)
	if isUniqueViolation(err) {
		return models.Order{}, ErrDuplicatedValueUnique
	}
	if err != nil {
		return models.Order{}, err
	}
	return o, nil
}

func (r *PostgresOrderRepository) GetAll() ([]models.Order, error) {
	orders, _, err := r.Filter(OrderFilter{})
	return orders, err
}

func (r *PostgresOrderRepository) GetByID(id string) (models.Order, error) {
	query := `SELECT ` + orderColumns + ` FROM orders WHERE id = $1`
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}

func (r *PostgresOrderRepository) Filter(of OrderFilter) ([]models.Order, int, error) {
	conditions := ""
	args := []any{}
	argIdx := 1
	if of.Search != "" {
		conditions += fmt.Sprintf(" AND (id ILIKE $%[1]d OR customer_name ILIKE $%[1]d OR customer_email ILIKE $%[1]d)", argIdx)
		args = append(args, "%"+of.Search+"%")
		argIdx++
	}
	if of.Status != "" {
		conditions += fmt.Sprintf(" AND status = $%d", argIdx)
		args = append(args, string(of.Status))
		argIdx++
	}
	if of.CustomerID != "" {
		conditions += fmt.Sprintf(" AND customer_id = $%d", argIdx)
		args = append(args, of.CustomerID)
		argIdx++
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	var totalCount int
	if err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM orders WHERE 1=1"+conditions, args...).Scan(&totalCount); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + orderColumns + ` FROM orders WHERE 1=1` + conditions + " ORDER BY created_at, id"
	if of.Limit != nil && *of.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIdx)
		args = append(args, *of.Limit)
		argIdx++
	}
	if of.Offset != nil && *of.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIdx)
		args = append(args, *of.Offset)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, totalCount, rows.Err()
}

func (r *PostgresOrderRepository) UpdateStatus(id string, status models.OrderStatus) (models.Order, error) {
	query := `UPDATE orders SET status = $1 WHERE id = $2 RETURNING ` + orderColumns
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRowContext(ctx, query, string(status), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Order{}, ErrOrderNotFound
	}
	return o, err
}
