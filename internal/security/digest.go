package security

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"sort"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
)

// DigestService binds a priced order summary to a keyed digest so the client
// can hold the pending order between quote and confirm while the server can
// still detect tampering. The digest covers a canonical projection of the
// summary: the cart reduced to {productCode, productName, price, size} per
// line, plus address and pricing. OrderDate and status are excluded: the
// digest must not depend on wall-clock capture, and status carries no
// integrity-sensitive value.
type DigestService struct {
	secret []byte
}

func NewDigestService(secret []byte) *DigestService {
	return &DigestService{secret: secret}
}

func (d *DigestService) Hash(s domain.OrderSummary) string {
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(canonicalJSON(projection(s)))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify recomputes the digest and compares in constant time. The secret, not
// the comparison, is the security boundary; hmac.Equal is cheap anyway.
func (d *DigestService) Verify(s domain.OrderSummary, digest string) bool {
	want, err := hex.DecodeString(digest)
	if err != nil {
		return false
	}
	mac := hmac.New(sha256.New, d.secret)
	mac.Write(canonicalJSON(projection(s)))
	return hmac.Equal(mac.Sum(nil), want)
}

func projection(s domain.OrderSummary) any {
	items := make([]any, 0, len(s.Cart))
	for _, it := range s.Cart {
		items = append(items, map[string]any{
			"productCode": it.ProductCode,
			"productName": it.ProductName,
			"price":       it.Price,
			"size":        it.Size,
		})
	}
	return map[string]any{
		"cart":    items,
		"address": map[string]any(s.Address),
		"pricing": map[string]any{
			"subtotal": s.Pricing.Subtotal,
			"discount": s.Pricing.Discount,
			"delivery": s.Pricing.Delivery,
			"total":    s.Pricing.Total,
		},
	}
}

// canonicalJSON serializes with explicitly sorted object keys so that two
// semantically identical summaries always produce identical bytes. Relying on
// an encoder's default iteration order would make digests unstable across
// implementations.
func canonicalJSON(v any) []byte {
	var buf []byte
	return canonicalAppend(buf, v)
}

func canonicalAppend(buf []byte, v any) []byte {
	switch x := v.(type) {
	case nil:
		return append(buf, "null"...)
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf = append(buf, '{')
		for i, k := range keys {
			if i > 0 {
				buf = append(buf, ',')
			}
			kb, _ := json.Marshal(k)
			buf = append(buf, kb...)
			buf = append(buf, ':')
			buf = canonicalAppend(buf, x[k])
		}
		return append(buf, '}')
	case []any:
		buf = append(buf, '[')
		for i, e := range x {
			if i > 0 {
				buf = append(buf, ',')
			}
			buf = canonicalAppend(buf, e)
		}
		return append(buf, ']')
	default:
		// scalar leaves (string, float64, bool, json.Number)
		b, err := json.Marshal(x)
		if err != nil {
			// unmarshalable leaf inside an address; encode as null rather
			// than silently diverging between hash and verify
			return append(buf, "null"...)
		}
		return append(buf, b...)
	}
}
