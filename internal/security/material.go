package security

import (
	"errors"
	"fmt"

	"github.com/amanmaurya001/backend-test/configs"
)

const minSecretLen = 32

// Material holds the process-wide signing and keyed-hash secrets. Loaded once
// at startup and read-only afterwards.
type Material struct {
	TokenSecret  []byte
	DigestSecret []byte
}

func LoadMaterial(c configs.Config) (*Material, error) {
	if c.Security.TokenSecret == "" || c.Security.DigestSecret == "" {
		return nil, errors.New("missing token_secret or digest_secret")
	}
	if len(c.Security.TokenSecret) < minSecretLen {
		return nil, fmt.Errorf("token_secret must be at least %d bytes, got %d", minSecretLen, len(c.Security.TokenSecret))
	}
	if len(c.Security.DigestSecret) < minSecretLen {
		return nil, fmt.Errorf("digest_secret must be at least %d bytes, got %d", minSecretLen, len(c.Security.DigestSecret))
	}
	// token signing and order digests must not share a key
	if c.Security.TokenSecret == c.Security.DigestSecret {
		return nil, errors.New("token_secret and digest_secret must differ")
	}
	return &Material{
		TokenSecret:  []byte(c.Security.TokenSecret),
		DigestSecret: []byte(c.Security.DigestSecret),
	}, nil
}
