package lookup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"
)

const NotFoundMessage = "No customer found with this email"

var ErrEmailRequired = errors.New("email is required")

type Service interface {
	Lookup(ctx context.Context, email string) (*Result, error)
}

type service struct {
	repo   Repository
	stores StoreRegistry
}

func NewService(repo Repository, stores StoreRegistry) Service {
	return &service{
		repo:   repo,
		stores: stores,
	}
}

// NormalizeEmail trims surrounding whitespace and lowercases the key.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *service) Lookup(ctx context.Context, email string) (*Result, error) {
	key := NormalizeEmail(email)
	if key == "" {
		return nil, ErrEmailRequired
	}

	log.Info().Str("email", key).Msg("service: looking up customer")

	customer, err := s.repo.FindCustomerByEmail(ctx, key)
	if err != nil {
		// Ошибка поиска клиента не считается сбоем: отвечаем "не найден".
		if !errors.Is(err, ErrCustomerNotFound) {
			log.Warn().Err(err).Str("email", key).Msg("service: customer lookup failed, reporting not found")
		} else {
			log.Info().Str("email", key).Msg("service: no customer matched")
		}

		return &Result{
			Orders:  []Order{},
			Message: NotFoundMessage,
		}, nil
	}

	log.Info().Str("email", key).Str("customer_id", customer.ID).Msg("service: customer matched")

	orders, err := s.repo.ListOrdersByCustomer(ctx, customer.ID)
	if err != nil {
		log.Error().Err(err).Str("customer_id", customer.ID).Msg("service: failed to fetch customer orders")
		return nil, fmt.Errorf("service: failed to fetch orders: %w", err)
	}
	if orders == nil {
		orders = []Order{}
	}

	log.Info().Str("customer_id", customer.ID).Int("order_count", len(orders)).Msg("service: orders fetched")

	summary := Summarize(orders)

	for i := range orders {
		orders[i].StoreName = s.stores.Name(orders[i].StoreID)
	}

	return &Result{
		Customer: customer,
		Orders:   orders,
		Summary:  &summary,
	}, nil
}
