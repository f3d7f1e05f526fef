package menu

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type SeedItem struct {
	Name        string
	Description string
	Price       float64
	Category    Category
}

// SeedItems is the house catalog. Seeding is idempotent: items already
// present by name are left untouched.
var SeedItems = []SeedItem{
	{"Margherita", "Molho de tomate, mussarela, manjericão fresco e azeite", 35.90, CategoryPizza},
	{"Calabresa", "Molho de tomate, mussarela, calabresa fatiada e cebola", 38.90, CategoryPizza},
	{"Portuguesa", "Molho de tomate, mussarela, presunto, ovos, cebola, azeitona e orégano", 42.90, CategoryPizza},
	{"Quatro Queijos", "Molho de tomate, mussarela, provolone, catupiry e parmesão", 45.90, CategoryPizza},
	{"Frango com Catupiry", "Molho de tomate, mussarela, frango desfiado e catupiry", 41.90, CategoryPizza},
	{"Pepperoni", "Molho de tomate, mussarela e pepperoni", 44.90, CategoryPizza},

	{"Coca-Cola 350ml", "Refrigerante de cola gelado", 5.50, CategoryDrink},
	{"Coca-Cola 2L", "Refrigerante de cola 2 litros", 12.90, CategoryDrink},
	{"Guaraná Antarctica 350ml", "Refrigerante de guaraná gelado", 5.50, CategoryDrink},
	{"Suco de Laranja 300ml", "Suco natural de laranja", 8.90, CategoryDrink},
	{"Suco de Uva 300ml", "Suco natural de uva", 8.90, CategoryDrink},
	{"Água Mineral 500ml", "Água mineral sem gás", 3.50, CategoryDrink},

	{"Brownie com Calda de Chocolate", "Brownie quente com calda de chocolate e sorvete de baunilha", 15.90, CategoryDessert},
	{"Pudim de Leite Condensado", "Pudim cremoso feito com leite condensado", 12.90, CategoryDessert},
	{"Tiramisù", "Sobremesa italiana com café, mascarpone e cacau", 18.90, CategoryDessert},
	{"Petit Gateau", "Bolinho de chocolate quente com sorvete de baunilha", 16.90, CategoryDessert},
	{"Mousse de Maracujá", "Mousse cremoso de maracujá", 11.90, CategoryDessert},
}

const schema = `
CREATE TABLE IF NOT EXISTS menu_items (
	id TEXT PRIMARY KEY,
	name TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	price NUMERIC(10,2) NOT NULL,
	category TEXT NOT NULL,
	available BOOLEAN NOT NULL DEFAULT true,
	created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// Seed creates the menu_items table and inserts the house catalog.
func Seed(ctx context.Context, db *sql.DB) (int, error) {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return 0, fmt.Errorf("failed to create menu_items: %w", err)
	}

	inserted := 0
	for _, item := range SeedItems {
		res, err := db.ExecContext(ctx, `
			INSERT INTO menu_items (id, name, description, price, category)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (name) DO NOTHING
		`,
			uuid.NewString(),
			item.Name,
			item.Description,
			item.Price,
			string(item.Category),
		)
		if err != nil {
			return inserted, fmt.Errorf("failed to insert %q: %w", item.Name, err)
		}
		if n, _ := res.RowsAffected(); n > 0 {
			inserted++
		}
	}

	return inserted, nil
}
