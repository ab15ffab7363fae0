package lookup

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// SQLXRepository serves the same queries through database/sql and lib/pq.
type SQLXRepository struct {
	db    *sqlx.DB
	match EmailMatch
}

func NewSQLXRepository(db *sqlx.DB, match EmailMatch) *SQLXRepository {
	return &SQLXRepository{db: db, match: match}
}

func (r *SQLXRepository) FindCustomerByEmail(ctx context.Context, email string) (*Customer, error) {
	var c Customer
	err := r.db.GetContext(ctx, &c, customerQuery(r.match), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCustomerNotFound
		}

		log.Error().Err(err).Str("pg_class", classifyPgError(err)).Msg("repository: failed to get customer by email")
		return nil, fmt.Errorf("repository: failed to get customer by email: %w", err)
	}

	return &c, nil
}

func (r *SQLXRepository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]Order, error) {
	orders := make([]Order, 0)
	err := r.db.SelectContext(ctx, &orders, ordersByCustomer, customerID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customerID).Str("pg_class", classifyPgError(err)).Msg("repository: failed to select orders")
		return nil, fmt.Errorf("repository: failed to select orders for customer %s: %w", customerID, err)
	}

	return orders, nil
}
