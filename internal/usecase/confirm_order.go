package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/amanmaurya001/backend-test/internal/security"
	"github.com/google/uuid"
)

type ConfirmOrderInput struct {
	ClientID string
	Order    domain.OrderSummary
	Digest   string
}

type ConfirmOrderOutput struct {
	OrderID string
}

// ConfirmOrder accepts a client-echoed order summary plus its digest,
// re-verifies the digest and persists the summary verbatim. OrderDate and
// status are outside the digest and stored as the client echoed them: a
// narrow, deliberate trust boundary for low-stakes metadata.
type ConfirmOrder struct {
	digests *security.DigestService
	orders  OrderRepo
	idem    IdempotencyStore
}

func NewConfirmOrder(digests *security.DigestService, orders OrderRepo, idem IdempotencyStore) *ConfirmOrder {
	return &ConfirmOrder{digests: digests, orders: orders, idem: idem}
}

func (uc *ConfirmOrder) Execute(ctx context.Context, in ConfirmOrderInput) (ConfirmOrderOutput, error) {
	if in.Digest == "" || len(in.Order.Cart) == 0 {
		return ConfirmOrderOutput{}, fmt.Errorf("%w: order and digest are required", ErrInvalidInput)
	}

	// nothing is persisted unless the digest verifies
	if !uc.digests.Verify(in.Order, in.Digest) {
		return ConfirmOrderOutput{}, fmt.Errorf("%w: digest mismatch", ErrIntegrityViolation)
	}

	// replay fast path: a re-sent confirm returns the original order id
	if id, ok, _ := uc.idem.Recall(ctx, in.ClientID, in.Digest); ok {
		return ConfirmOrderOutput{OrderID: id}, nil
	}

	summary, err := json.Marshal(in.Order)
	if err != nil {
		return ConfirmOrderOutput{}, fmt.Errorf("encode summary: %w", err)
	}

	orderID := uuid.NewString()
	rec := &OrderRecord{
		ID:          orderID,
		ClientID:    in.ClientID,
		Status:      string(in.Order.Status),
		Total:       in.Order.Pricing.Total,
		SummaryJSON: string(summary),
	}
	if err := uc.orders.Insert(ctx, rec); err != nil {
		return ConfirmOrderOutput{}, fmt.Errorf("insert order: %w", err)
	}

	_ = uc.idem.Remember(ctx, in.ClientID, in.Digest, orderID)
	return ConfirmOrderOutput{OrderID: orderID}, nil
}
