package menu

import "context"

type Category string

const (
	CategoryPizza   Category = "PIZZA"
	CategoryDrink   Category = "BEBIDA"
	CategoryDessert Category = "SOBREMESA"
)

type Item struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    Category `json:"category"`
	Available   bool     `json:"available"`
}

// Repo — catalog persistence
type Repo interface {
	ListAvailable(ctx context.Context) ([]Item, error)
	ListByCategory(ctx context.Context, category Category) ([]Item, error)
}

// Catalog holds the available items split by category, preserving the
// repository ordering within each list.
type Catalog struct {
	Pizzas   []Item
	Drinks   []Item
	Desserts []Item
}

func BuildCatalog(items []Item) Catalog {
	var c Catalog
	for _, item := range items {
		switch item.Category {
		case CategoryPizza:
			c.Pizzas = append(c.Pizzas, item)
		case CategoryDrink:
			c.Drinks = append(c.Drinks, item)
		case CategoryDessert:
			c.Desserts = append(c.Desserts, item)
		}
	}
	return c
}
