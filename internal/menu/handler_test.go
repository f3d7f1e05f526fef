package menu

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubRepo struct {
	items []Item
	err   error

	gotCategory Category
}

func (s *stubRepo) ListAvailable(ctx context.Context) ([]Item, error) {
	return s.items, s.err
}

func (s *stubRepo) ListByCategory(ctx context.Context, category Category) ([]Item, error) {
	s.gotCategory = category
	return s.items, s.err
}

func TestGetFullMenu(t *testing.T) {
	repo := &stubRepo{items: []Item{
		{ID: "1", Name: "Calabresa", Price: 38.90, Category: CategoryPizza, Available: true},
	}}
	h := NewHandler(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	h.GetFullMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var items []Item
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	require.Len(t, items, 1)
	require.Equal(t, "Calabresa", items[0].Name)
	require.Equal(t, CategoryPizza, items[0].Category)
}

func TestGetFullMenu_EmptyIsArray(t *testing.T) {
	h := NewHandler(&stubRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	h.GetFullMenu(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, "[]", rec.Body.String())
}

func TestGetFullMenu_RepoError(t *testing.T) {
	h := NewHandler(&stubRepo{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/api/menu", nil)
	rec := httptest.NewRecorder()
	h.GetFullMenu(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestCategoryHandlers(t *testing.T) {
	tests := []struct {
		name string
		call func(h *Handler, w http.ResponseWriter, r *http.Request)
		want Category
	}{
		{"pizzas", (*Handler).GetPizzas, CategoryPizza},
		{"drinks", (*Handler).GetDrinks, CategoryDrink},
		{"desserts", (*Handler).GetDesserts, CategoryDessert},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubRepo{}
			h := NewHandler(repo)

			req := httptest.NewRequest(http.MethodGet, "/api/menu/"+tt.name, nil)
			rec := httptest.NewRecorder()
			tt.call(h, rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			require.Equal(t, tt.want, repo.gotCategory)
		})
	}
}
