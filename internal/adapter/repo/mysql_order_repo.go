package repo

import (
	"context"
	"database/sql"

	"github.com/amanmaurya001/backend-test/internal/usecase"
)

type MySQLOrderRepo struct{ db *sql.DB }

func NewMySQLOrderRepo(db *sql.DB) *MySQLOrderRepo { return &MySQLOrderRepo{db: db} }

// Insert stores one verified order as a single row. Atomic at the storage
// boundary: there is no partial-persist path.
func (r *MySQLOrderRepo) Insert(ctx context.Context, o *usecase.OrderRecord) error {
	_, err := r.db.ExecContext(ctx, `
INSERT INTO orders (id,client_id,status,total,summary_json,created_at)
VALUES (?,?,?,?,?,NOW())
`, o.ID, o.ClientID, o.Status, o.Total, o.SummaryJSON)
	return err
}

var _ usecase.OrderRepo = (*MySQLOrderRepo)(nil)
