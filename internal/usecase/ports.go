package usecase

import (
	"context"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
)

type CatalogRepo interface {
	// FindByCode returns (nil, nil) when no product matches.
	FindByCode(ctx context.Context, code string) (*domain.Product, error)
	FindByCodes(ctx context.Context, codes []string) ([]domain.Product, error)
	ListAll(ctx context.Context) ([]domain.Product, error)
}

// OrderRecord is the persistence shape (kept out of domain).
type OrderRecord struct {
	ID          string
	ClientID    string
	Status      string
	Total       float64
	SummaryJSON string
}

type OrderRepo interface {
	Insert(ctx context.Context, o *OrderRecord) error
}

type SubscriberRepo interface {
	Upsert(ctx context.Context, email string) error
}

// IdempotencyStore remembers which digests a client has already confirmed so
// a replayed confirm returns the original order id instead of inserting twice.
type IdempotencyStore interface {
	Remember(ctx context.Context, scope, key, value string) error
	Recall(ctx context.Context, scope, key string) (string, bool, error)
}
