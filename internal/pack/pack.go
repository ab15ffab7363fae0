// Package pack defines the reusable-pack workflow operations: generating a batch,
// assigning a pack group to a retailer, and returning a pack. Callers supply the
// store-backed implementation; this package validates input and shapes results.
package pack

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofrs/uuid"
	"github.com/rs/zerolog/log"
)

const MaxGenerateCount = 10000

var ErrInvalidInput = errors.New("invalid input")

// Operation is a single round trip that either yields Out or fails.
type Operation[In, Out any] interface {
	Execute(ctx context.Context, in In) (Out, error)
}

type OperationFunc[In, Out any] func(ctx context.Context, in In) (Out, error)

func (f OperationFunc[In, Out]) Execute(ctx context.Context, in In) (Out, error) {
	return f(ctx, in)
}

type GenerateInput struct {
	Count int `json:"count" validate:"min=1,max=10000"`
}

type AssignInput struct {
	GroupID    string `json:"group_id" validate:"required"`
	MerchantID string `json:"merchant_id" validate:"required"`
}

type ReturnInput struct {
	PackID string `json:"pack_id" validate:"required"`
}

type Batch struct {
	ID        uuid.UUID `json:"id"`
	Count     int       `json:"count"`
	CreatedAt time.Time `json:"created_at"`
}

type (
	GenerateOperation = Operation[GenerateInput, Batch]
	AssignOperation   = Operation[AssignInput, bool]
	ReturnOperation   = Operation[ReturnInput, bool]
)

var validate = validator.New()

// NewBatch allocates a batch id for count packs.
func NewBatch(count int, now time.Time) (Batch, error) {
	if err := validate.Struct(GenerateInput{Count: count}); err != nil {
		return Batch{}, invalidInput(err)
	}
	id, err := uuid.NewV4()
	if err != nil {
		return Batch{}, fmt.Errorf("failed to generate batch id: %w", err)
	}
	return Batch{ID: id, Count: count, CreatedAt: now.UTC()}, nil
}

// Validated wraps op so that input failing its struct tags is rejected with
// ErrInvalidInput before op runs. String fields are trimmed first.
func Validated[In, Out any](op Operation[In, Out]) Operation[In, Out] {
	return OperationFunc[In, Out](func(ctx context.Context, in In) (Out, error) {
		var zero Out
		in = trimInput(in)
		if err := validate.Struct(in); err != nil {
			log.Warn().Err(err).Type("input", in).Msg("pack: rejected operation input")
			return zero, invalidInput(err)
		}
		return op.Execute(ctx, in)
	})
}

func invalidInput(err error) error {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(fields, ", "))
}

func trimInput[In any](in In) In {
	switch v := any(in).(type) {
	case AssignInput:
		v.GroupID = strings.TrimSpace(v.GroupID)
		v.MerchantID = strings.TrimSpace(v.MerchantID)
		return any(v).(In)
	case ReturnInput:
		v.PackID = strings.TrimSpace(v.PackID)
		return any(v).(In)
	default:
		return in
	}
}
