package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/amanmaurya001/backend-test/internal/sanitize"
	"github.com/amanmaurya001/backend-test/internal/security"
)

const (
	discountRate          = 0.10
	deliveryFee           = 150
	freeDeliveryThreshold = 700
)

type PriceCartInput struct {
	Items   []domain.SubmittedItem
	Address domain.Address
}

type PriceCartOutput struct {
	Order  domain.OrderSummary
	Digest string
}

// PriceCart turns a client-submitted cart into a priced, digest-bound order
// summary. Prices come exclusively from the catalog; nothing the client sends
// influences a line's price.
type PriceCart struct {
	catalog CatalogRepo
	digests *security.DigestService
	now     func() time.Time
}

func NewPriceCart(catalog CatalogRepo, digests *security.DigestService) *PriceCart {
	return &PriceCart{catalog: catalog, digests: digests, now: time.Now}
}

func (uc *PriceCart) Execute(ctx context.Context, in PriceCartInput) (PriceCartOutput, error) {
	if len(in.Items) == 0 {
		return PriceCartOutput{}, fmt.Errorf("%w: cart is empty", ErrInvalidInput)
	}
	if in.Address == nil {
		return PriceCartOutput{}, fmt.Errorf("%w: address is required", ErrInvalidInput)
	}

	codes := make([]string, 0, len(in.Items))
	seen := map[string]bool{}
	for _, it := range in.Items {
		code := strings.TrimSpace(it.ProductCode)
		if code == "" {
			return PriceCartOutput{}, fmt.Errorf("%w: product code must be a non-empty string", ErrInvalidInput)
		}
		if !seen[code] {
			seen[code] = true
			codes = append(codes, code)
		}
	}

	// one batched lookup: one round trip, one injection surface
	products, err := uc.catalog.FindByCodes(ctx, codes)
	if err != nil {
		return PriceCartOutput{}, fmt.Errorf("catalog lookup: %w", err)
	}
	if len(products) == 0 {
		return PriceCartOutput{}, fmt.Errorf("%w: no matching products", ErrNotFound)
	}
	byCode := make(map[string]domain.Product, len(products))
	for _, p := range products {
		byCode[p.Code] = p
	}

	// best-effort filtering: lines with an unknown code or a missing size are
	// dropped, never priced at zero
	cart := make([]domain.CartItem, 0, len(in.Items))
	for _, it := range in.Items {
		p, ok := byCode[strings.TrimSpace(it.ProductCode)]
		size := strings.TrimSpace(it.Size)
		if !ok || size == "" {
			continue
		}
		// catalog strings go through the same neutralization as client
		// input: the summary is echoed back through the sanitizing
		// transport on confirm, and the digested form must survive that
		// round trip unchanged (sanitization is idempotent)
		cart = append(cart, domain.CartItem{
			ID:          p.ID,
			ProductCode: sanitize.String(p.Code),
			ProductName: sanitize.String(p.Name),
			Price:       safePrice(p.Price),
			ImageURL:    sanitize.String(p.ImageURL),
			Size:        size,
		})
	}
	if len(cart) == 0 {
		return PriceCartOutput{}, fmt.Errorf("%w: no valid items", ErrInvalidInput)
	}

	var subtotal float64
	for _, it := range cart {
		subtotal += it.Price
	}
	subtotal = round2(subtotal)

	discount := round2(subtotal * discountRate)
	delivery := float64(deliveryFee)
	if subtotal > freeDeliveryThreshold {
		delivery = 0
	}

	order := domain.OrderSummary{
		Cart:    cart,
		Address: in.Address,
		Pricing: domain.Pricing{
			Subtotal: subtotal,
			Discount: discount,
			Delivery: delivery,
			Total:    round2(subtotal + delivery - discount),
		},
		OrderDate: uc.now(),
		Status:    domain.StatusPending,
	}

	return PriceCartOutput{Order: order, Digest: uc.digests.Hash(order)}, nil
}

// safePrice coerces a corrupted stored price to 0 instead of propagating NaN
// through the totals.
func safePrice(p float64) float64 {
	if math.IsNaN(p) || math.IsInf(p, 0) || p < 0 {
		return 0
	}
	return p
}

// round2 rounds to 2 decimal places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}
