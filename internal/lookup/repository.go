package lookup

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

var ErrCustomerNotFound = errors.New("customer not found")

// EmailMatch selects how FindCustomerByEmail compares the stored email with the search key.
type EmailMatch string

const (
	// MatchPattern runs `email ILIKE $1`, so '_' and '%' in the key act as wildcards.
	MatchPattern EmailMatch = "pattern"
	// MatchExact runs `lower(email) = $1`.
	MatchExact EmailMatch = "exact"
)

// Repository is the read-only view of the customers and orders tables.
type Repository interface {
	FindCustomerByEmail(ctx context.Context, email string) (*Customer, error)
	ListOrdersByCustomer(ctx context.Context, customerID string) ([]Order, error)
}

type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const (
	selectCustomer = `
		SELECT id, COALESCE(name, '') AS name, email, COALESCE(phone, '') AS phone, created_at
		FROM customers
	`
	customerByPattern = selectCustomer + `WHERE email ILIKE $1 LIMIT 1`
	customerByExact   = selectCustomer + `WHERE lower(email) = $1 LIMIT 1`

	ordersByCustomer = `
		SELECT id, customer_id, COALESCE(name, '') AS name, total_price, opt_in,
			COALESCE(payment_status, '') AS payment_status, created_at,
			COALESCE(shipping_city, '') AS shipping_city,
			COALESCE(shipping_province, '') AS shipping_province,
			COALESCE(shipping_country, '') AS shipping_country,
			store_id
		FROM orders
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`
)

func customerQuery(match EmailMatch) string {
	if match == MatchExact {
		return customerByExact
	}
	return customerByPattern
}

type postgresRepository struct {
	db    DB
	match EmailMatch
}

func NewRepository(db DB, match EmailMatch) Repository {
	return &postgresRepository{db: db, match: match}
}

func (r *postgresRepository) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var c Customer
	err := r.db.QueryRow(ctx, customerQuery(r.match), email).Scan(
		&c.ID,
		&c.Name,
		&c.Email,
		&c.Phone,
		&c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}

		log.Error().Err(err).Str("pg_class", classifyPgError(err)).Msg("repository: failed to select customer by email")
		return nil, fmt.Errorf("repository: failed to select customer by email: %w", err)
	}

	return &c, nil
}

func (r *postgresRepository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	rows, err := r.db.Query(ctx, ordersByCustomer, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Str("pg_class", classifyPgError(err)).Msg("repository: failed to query orders")
		return nil, fmt.Errorf("repository: failed to query orders for customer %s: %w", customerID, err)
	}
	defer rows.Close()

	orders := make([]Order, 0)
	for rows.Next() {
		var o Order
		err := rows.Scan(
			&o.ID,
			&o.CustomerID,
			&o.Name,
			&o.TotalPrice,
			&o.OptIn,
			&o.PaymentStatus,
			&o.CreatedAt,
			&o.ShippingCity,
			&o.ShippingProvince,
			&o.ShippingCountry,
			&o.StoreID,
		)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan order for customer %s: %w", customerID, err)
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Str("pg_class", classifyPgError(err)).Msg("repository: failed iterating orders")
		return nil, fmt.Errorf("repository: failed iterating orders for customer %s: %w", customerID, err)
	}

	return orders, nil
}

// classifyPgError buckets a PostgreSQL error for logs. Both pgx and lib/pq errors carry a SQLSTATE code.
func classifyPgError(err error) string {
	var code string

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code = pgErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "context"
	default:
		return "transport"
	}

	switch {
	case pgerrcode.IsConnectionException(code):
		return "connection"
	case code == pgerrcode.QueryCanceled:
		return "query_canceled"
	case code == pgerrcode.UndefinedTable, code == pgerrcode.UndefinedColumn:
		return "schema"
	case pgerrcode.IsInsufficientResources(code):
		return "resources"
	default:
		return "query"
	}
}
