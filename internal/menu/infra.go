package menu

import (
	"context"
	"database/sql"
)

type repo struct {
	db *sql.DB
}

func NewRepo(db *sql.DB) Repo {
	return &repo{db: db}
}

func (r *repo) ListAvailable(ctx context.Context) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, category, available
		FROM menu_items
		WHERE available = true
		ORDER BY category ASC, name ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func (r *repo) ListByCategory(ctx context.Context, category Category) ([]Item, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, name, description, price, category, available
		FROM menu_items
		WHERE category = $1 AND available = true
		ORDER BY name ASC
	`, string(category))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanItems(rows)
}

func scanItems(rows *sql.Rows) ([]Item, error) {
	var out []Item
	for rows.Next() {
		var item Item
		var category string
		if err := rows.Scan(
			&item.ID,
			&item.Name,
			&item.Description,
			&item.Price,
			&category,
			&item.Available,
		); err != nil {
			return nil, err
		}
		item.Category = Category(category)
		out = append(out, item)
	}
	return out, rows.Err()
}
