package repo

import (
	"context"
	"database/sql"

	"github.com/amanmaurya001/backend-test/internal/usecase"
	"github.com/google/uuid"
)

type MySQLSubscriberRepo struct{ db *sql.DB }

func NewMySQLSubscriberRepo(db *sql.DB) *MySQLSubscriberRepo { return &MySQLSubscriberRepo{db: db} }

// Upsert is idempotent: re-subscribing the same address is a no-op.
func (r *MySQLSubscriberRepo) Upsert(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO subscribers (id,email,created_at)
VALUES (?,?,NOW())
ON DUPLICATE KEY UPDATE email=email
`, uuid.NewString(), email)
	return err
}

var _ usecase.SubscriberRepo = (*MySQLSubscriberRepo)(nil)
