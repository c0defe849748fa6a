package usecase

import (
	"context"
	"errors"
	"math"
	"testing"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/amanmaurya001/backend-test/internal/sanitize"
	"github.com/amanmaurya001/backend-test/internal/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockCatalog struct {
	products []domain.Product
	err      error
}

func (m *mockCatalog) FindByCode(_ context.Context, code string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	for _, p := range m.products {
		if p.Code == code {
			return &p, nil
		}
	}
	return nil, nil
}

func (m *mockCatalog) FindByCodes(_ context.Context, codes []string) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}
	want := map[string]bool{}
	for _, c := range codes {
		want[c] = true
	}
	var out []domain.Product
	for _, p := range m.products {
		if want[p.Code] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockCatalog) ListAll(context.Context) ([]domain.Product, error) {
	return m.products, m.err
}

var testDigests = security.NewDigestService([]byte("usecase-test-digest-secret-abcdef012345"))

func newPriceCart(catalog CatalogRepo) *PriceCart {
	return NewPriceCart(catalog, testDigests)
}

func addr() domain.Address {
	return domain.Address{"street": "1 Main St", "city": "Springfield"}
}

func TestPriceCart_FreeDeliveryAboveThreshold(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 800, ImageURL: "a1.png"},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "A1", Size: "M"}},
		Address: addr(),
	})
	require.NoError(t, err)

	p := out.Order.Pricing
	assert.Equal(t, 800.0, p.Subtotal)
	assert.Equal(t, 0.0, p.Delivery)
	assert.Equal(t, 80.0, p.Discount)
	assert.Equal(t, 720.0, p.Total)
	assert.Equal(t, domain.StatusPending, out.Order.Status)
	assert.False(t, out.Order.OrderDate.IsZero())
}

func TestPriceCart_DeliveryChargedAtOrBelowThreshold(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 500},
		{ID: 2, Code: "B2", Name: "Cap", Price: 200},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "A1", Size: "M"}},
		Address: addr(),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.Pricing{Subtotal: 500, Discount: 50, Delivery: 150, Total: 600}, out.Order.Pricing)

	// subtotal of exactly 700 still pays delivery
	out, err = uc.Execute(context.Background(), PriceCartInput{
		Items: []domain.SubmittedItem{
			{ProductCode: "A1", Size: "M"},
			{ProductCode: "B2", Size: "L"},
		},
		Address: addr(),
	})
	require.NoError(t, err)
	assert.Equal(t, 700.0, out.Order.Pricing.Subtotal)
	assert.Equal(t, 150.0, out.Order.Pricing.Delivery)
}

func TestPriceCart_PricingInvariants(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 333.33},
		{ID: 2, Code: "B2", Name: "Cap", Price: 99.99},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items: []domain.SubmittedItem{
			{ProductCode: "A1", Size: "M"},
			{ProductCode: "B2", Size: "S"},
		},
		Address: addr(),
	})
	require.NoError(t, err)

	p := out.Order.Pricing
	assert.InDelta(t, math.Round(p.Subtotal*0.10*100)/100, p.Discount, 1e-9)
	assert.InDelta(t, math.Round((p.Subtotal+p.Delivery-p.Discount)*100)/100, p.Total, 1e-9)
}

func TestPriceCart_DropsUnknownAndSizelessLines(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 800},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items: []domain.SubmittedItem{
			{ProductCode: "A1", Size: "M"},
			{ProductCode: "NOPE", Size: "M"}, // unknown code: dropped
			{ProductCode: "A1", Size: "  "},  // blank size: dropped
		},
		Address: addr(),
	})
	require.NoError(t, err)
	require.Len(t, out.Order.Cart, 1)
	assert.Equal(t, "A1", out.Order.Cart[0].ProductCode)
	assert.Equal(t, 800.0, out.Order.Pricing.Subtotal)
}

func TestPriceCart_AllUnknownCodes(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 800},
	}})

	_, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "X", Size: "M"}, {ProductCode: "Y", Size: "S"}},
		Address: addr(),
	})
	// zero catalog matches from the batched lookup
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPriceCart_MatchedButAllLinesDropped(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 800},
	}})

	_, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "A1", Size: ""}},
		Address: addr(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestPriceCart_InputValidation(t *testing.T) {
	uc := newPriceCart(&mockCatalog{})

	_, err := uc.Execute(context.Background(), PriceCartInput{Address: addr()})
	assert.ErrorIs(t, err, ErrInvalidInput, "empty cart")

	_, err = uc.Execute(context.Background(), PriceCartInput{
		Items: []domain.SubmittedItem{{ProductCode: "A1", Size: "M"}},
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "missing address")

	_, err = uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "   ", Size: "M"}},
		Address: addr(),
	})
	assert.ErrorIs(t, err, ErrInvalidInput, "blank product code")
}

func TestPriceCart_CorruptStoredPriceCoercedToZero(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Broken", Price: math.NaN()},
		{ID: 2, Code: "B2", Name: "Cap", Price: 200},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items: []domain.SubmittedItem{
			{ProductCode: "A1", Size: "M"},
			{ProductCode: "B2", Size: "S"},
		},
		Address: addr(),
	})
	require.NoError(t, err)
	assert.Equal(t, 200.0, out.Order.Pricing.Subtotal)
	assert.False(t, math.IsNaN(out.Order.Pricing.Total))
}

func TestPriceCart_ClientPricesNeverUsed(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 800},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: " A1 ", Size: "M"}},
		Address: addr(),
	})
	require.NoError(t, err)
	assert.Equal(t, 800.0, out.Order.Cart[0].Price)
	assert.Equal(t, "Hoodie", out.Order.Cart[0].ProductName)
}

func TestPriceCart_CatalogFailureSurfacesAsInternal(t *testing.T) {
	uc := newPriceCart(&mockCatalog{err: errors.New("connection refused")})

	_, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "A1", Size: "M"}},
		Address: addr(),
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestPriceCart_CatalogStringsNeutralized(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "TJ", Name: "<b>Tom & Jerry</b> Tee", Price: 450, ImageURL: "https://img/tj.png?a=1&b=2"},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "TJ", Size: "M"}},
		Address: addr(),
	})
	require.NoError(t, err)
	require.Len(t, out.Order.Cart, 1)

	item := out.Order.Cart[0]
	assert.Equal(t, "Tom &amp; Jerry Tee", item.ProductName)
	assert.NotContains(t, item.ImageURL, "&b", "bare ampersands must not survive enrichment")

	// an echo through the sanitizing transport must not change the digested
	// form, so re-sanitizing the enriched strings is a no-op
	echoed := out.Order
	echoed.Cart[0].ProductName = sanitize.String(echoed.Cart[0].ProductName)
	echoed.Cart[0].ProductCode = sanitize.String(echoed.Cart[0].ProductCode)
	assert.True(t, testDigests.Verify(echoed, out.Digest))
}

func TestPriceCart_DigestVerifiable(t *testing.T) {
	uc := newPriceCart(&mockCatalog{products: []domain.Product{
		{ID: 1, Code: "A1", Name: "Hoodie", Price: 800},
	}})

	out, err := uc.Execute(context.Background(), PriceCartInput{
		Items:   []domain.SubmittedItem{{ProductCode: "A1", Size: "M"}},
		Address: addr(),
	})
	require.NoError(t, err)
	assert.True(t, testDigests.Verify(out.Order, out.Digest))
}
