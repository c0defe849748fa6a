package repo

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	domain "github.com/amanmaurya001/backend-test/internal/entity"
	"github.com/amanmaurya001/backend-test/internal/usecase"
)

type MySQLCatalogRepo struct{ db *sql.DB }

func NewMySQLCatalogRepo(db *sql.DB) *MySQLCatalogRepo { return &MySQLCatalogRepo{db: db} }

func (r *MySQLCatalogRepo) FindByCode(ctx context.Context, code string) (*domain.Product, error) {
	row := r.db.QueryRowContext(ctx, `
SELECT id,code,name,price,image_url
FROM products WHERE code=?`, code)
	var p domain.Product
	if err := row.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.ImageURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *MySQLCatalogRepo) FindByCodes(ctx context.Context, codes []string) ([]domain.Product, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(codes)), ",")
	args := make([]any, len(codes))
	for i, c := range codes {
		args[i] = c
	}

	rows, err := r.db.QueryContext(ctx, `
SELECT id,code,name,price,image_url
FROM products WHERE code IN (`+placeholders+`)`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *MySQLCatalogRepo) ListAll(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.db.QueryContext(ctx, `
SELECT id,code,name,price,image_url
FROM products ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Code, &p.Name, &p.Price, &p.ImageURL); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

var _ usecase.CatalogRepo = (*MySQLCatalogRepo)(nil)
