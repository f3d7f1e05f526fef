package chat

import "github.com/pizzaria-ai/chat-backend/internal/menu"

// testItems mirrors the seeded catalog in repository order (category, name).
func testItems() []menu.Item {
	return []menu.Item{
		{Name: "Coca-Cola 2L", Price: 12.90, Category: menu.CategoryDrink, Available: true},
		{Name: "Coca-Cola 350ml", Price: 5.50, Category: menu.CategoryDrink, Available: true},
		{Name: "Guaraná Antarctica 350ml", Price: 5.50, Category: menu.CategoryDrink, Available: true},
		{Name: "Suco de Laranja 300ml", Price: 8.90, Category: menu.CategoryDrink, Available: true},
		{Name: "Suco de Uva 300ml", Price: 8.90, Category: menu.CategoryDrink, Available: true},
		{Name: "Água Mineral 500ml", Price: 3.50, Category: menu.CategoryDrink, Available: true},

		{Name: "Calabresa", Price: 38.90, Category: menu.CategoryPizza, Available: true},
		{Name: "Frango com Catupiry", Price: 41.90, Category: menu.CategoryPizza, Available: true},
		{Name: "Margherita", Price: 35.90, Category: menu.CategoryPizza, Available: true},
		{Name: "Pepperoni", Price: 44.90, Category: menu.CategoryPizza, Available: true},
		{Name: "Portuguesa", Price: 42.90, Category: menu.CategoryPizza, Available: true},
		{Name: "Quatro Queijos", Price: 45.90, Category: menu.CategoryPizza, Available: true},

		{Name: "Brownie com Calda de Chocolate", Price: 15.90, Category: menu.CategoryDessert, Available: true},
		{Name: "Mousse de Maracujá", Price: 11.90, Category: menu.CategoryDessert, Available: true},
		{Name: "Petit Gateau", Price: 16.90, Category: menu.CategoryDessert, Available: true},
		{Name: "Pudim de Leite Condensado", Price: 12.90, Category: menu.CategoryDessert, Available: true},
		{Name: "Tiramisù", Price: 18.90, Category: menu.CategoryDessert, Available: true},
	}
}

func testCatalog() menu.Catalog {
	return menu.BuildCatalog(testItems())
}
