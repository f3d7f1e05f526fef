package chat

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	catalog := testCatalog()

	tests := []struct {
		name    string
		message string
		items   []string
		want    string
	}{
		{"full name", "quero a pizza portuguesa", nil, "Portuguesa"},
		{"numeric alias", "quero a de 4 queijos", nil, "Quatro Queijos"},
		{"ingredient alias", "quero a de catupiry", nil, "Frango com Catupiry"},
		{"default is first of category", "quero pizza", nil, "Calabresa"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item, ok := Resolve(tt.message, catalog.Pizzas)
			require.True(t, ok)
			require.Equal(t, tt.want, item.Name)
		})
	}
}

func TestResolve_DrinkAliases(t *testing.T) {
	catalog := testCatalog()

	// "coca" resolves to the first Coca-Cola in catalog order.
	item, ok := Resolve("uma coca gelada", catalog.Drinks)
	require.True(t, ok)
	require.Equal(t, "Coca-Cola 2L", item.Name)

	item, ok = Resolve("suco de laranja por favor", catalog.Drinks)
	require.True(t, ok)
	require.Equal(t, "Suco de Laranja 300ml", item.Name)
}

func TestResolve_EmptyList(t *testing.T) {
	_, ok := Resolve("quero qualquer coisa", nil)
	require.False(t, ok)
}
