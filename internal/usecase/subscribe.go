package usecase

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Subscribe records a newsletter signup. The email arrives already sanitized
// at the transport boundary.
type Subscribe struct {
	subs SubscriberRepo
}

func NewSubscribe(subs SubscriberRepo) *Subscribe {
	return &Subscribe{subs: subs}
}

func (uc *Subscribe) Execute(ctx context.Context, email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if !emailRe.MatchString(email) {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if err := uc.subs.Upsert(ctx, email); err != nil {
		return fmt.Errorf("store subscriber: %w", err)
	}
	return nil
}
