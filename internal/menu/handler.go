package menu

import (
	"encoding/json"
	"log"
	"net/http"
)

type Handler struct {
	repo Repo
}

func NewHandler(repo Repo) *Handler {
	return &Handler{repo: repo}
}

func (h *Handler) GetFullMenu(w http.ResponseWriter, r *http.Request) {
	items, err := h.repo.ListAvailable(r.Context())
	if err != nil {
		log.Printf("[menu] list error: %v", err)
		http.Error(w, "failed to load menu", http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func (h *Handler) GetPizzas(w http.ResponseWriter, r *http.Request) {
	h.byCategory(w, r, CategoryPizza)
}

func (h *Handler) GetDrinks(w http.ResponseWriter, r *http.Request) {
	h.byCategory(w, r, CategoryDrink)
}

func (h *Handler) GetDesserts(w http.ResponseWriter, r *http.Request) {
	h.byCategory(w, r, CategoryDessert)
}

func (h *Handler) byCategory(w http.ResponseWriter, r *http.Request, category Category) {
	items, err := h.repo.ListByCategory(r.Context(), category)
	if err != nil {
		log.Printf("[menu] list %s error: %v", category, err)
		http.Error(w, "failed to load menu", http.StatusInternalServerError)
		return
	}
	writeJSON(w, items)
}

func writeJSON(w http.ResponseWriter, items []Item) {
	if items == nil {
		items = []Item{}
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(items)
}
