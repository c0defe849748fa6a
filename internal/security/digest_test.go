package security

import (
	"testing"
	"time"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var digestSecret = []byte("unit-test-digest-secret-0123456789abcd")

func sampleSummary() domain.OrderSummary {
	return domain.OrderSummary{
		Cart: []domain.CartItem{
			{ID: 1, ProductCode: "A1", ProductName: "Hoodie", Price: 800, ImageURL: "https://img/a1.png", Size: "M"},
		},
		Address: domain.Address{
			"street": "1 Main St",
			"city":   "Springfield",
			"zip":    "10001",
		},
		Pricing:   domain.Pricing{Subtotal: 800, Discount: 80, Delivery: 0, Total: 720},
		OrderDate: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Status:    domain.StatusPending,
	}
}

func TestDigest_RoundTrip(t *testing.T) {
	d := NewDigestService(digestSecret)
	s := sampleSummary()

	digest := d.Hash(s)
	assert.Len(t, digest, 64) // hmac-sha256 hex
	assert.True(t, d.Verify(s, digest))
}

func TestDigest_Deterministic(t *testing.T) {
	d := NewDigestService(digestSecret)
	// two independently built summaries with the same content must agree,
	// regardless of map construction order
	a := sampleSummary()
	b := sampleSummary()
	b.Address = domain.Address{"zip": "10001", "street": "1 Main St", "city": "Springfield"}

	assert.Equal(t, d.Hash(a), d.Hash(b))
}

func TestDigest_MutationsInsideProjectionFlipVerification(t *testing.T) {
	d := NewDigestService(digestSecret)
	base := sampleSummary()
	digest := d.Hash(base)

	mutations := map[string]func(*domain.OrderSummary){
		"price":       func(s *domain.OrderSummary) { s.Cart[0].Price = 1 },
		"productCode": func(s *domain.OrderSummary) { s.Cart[0].ProductCode = "B2" },
		"productName": func(s *domain.OrderSummary) { s.Cart[0].ProductName = "Cheap Hoodie" },
		"size":        func(s *domain.OrderSummary) { s.Cart[0].Size = "XL" },
		"address":     func(s *domain.OrderSummary) { s.Address["street"] = "evil lane" },
		"subtotal":    func(s *domain.OrderSummary) { s.Pricing.Subtotal = 1 },
		"discount":    func(s *domain.OrderSummary) { s.Pricing.Discount = 800 },
		"delivery":    func(s *domain.OrderSummary) { s.Pricing.Delivery = -150 },
		"total":       func(s *domain.OrderSummary) { s.Pricing.Total = 0.01 },
		"dropLine":    func(s *domain.OrderSummary) { s.Cart = nil },
	}
	for name, mutate := range mutations {
		s := sampleSummary()
		mutate(&s)
		assert.False(t, d.Verify(s, digest), "mutation %q should break verification", name)
	}
}

func TestDigest_ExcludedFieldsDoNotFlipVerification(t *testing.T) {
	d := NewDigestService(digestSecret)
	s := sampleSummary()
	digest := d.Hash(s)

	s.OrderDate = s.OrderDate.Add(48 * time.Hour)
	s.Status = domain.StatusConfirmed
	// enrichment extras are outside the projection too
	s.Cart[0].ID = 999
	s.Cart[0].ImageURL = "https://elsewhere/x.png"

	assert.True(t, d.Verify(s, digest))
}

func TestDigest_WrongSecretFailsVerification(t *testing.T) {
	s := sampleSummary()
	digest := NewDigestService(digestSecret).Hash(s)
	other := NewDigestService([]byte("another-digest-secret-entirely-012345"))
	assert.False(t, other.Verify(s, digest))
}

func TestDigest_RejectsNonHexDigest(t *testing.T) {
	d := NewDigestService(digestSecret)
	assert.False(t, d.Verify(sampleSummary(), "zz-not-hex"))
}

func TestCanonicalJSON_SortsKeys(t *testing.T) {
	got := canonicalJSON(map[string]any{
		"b": []any{1.0, "x"},
		"a": map[string]any{"z": nil, "y": true},
	})
	require.JSONEq(t, `{"a":{"y":true,"z":null},"b":[1,"x"]}`, string(got))
	assert.Equal(t, `{"a":{"y":true,"z":null},"b":[1,"x"]}`, string(got))
}
