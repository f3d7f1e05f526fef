package menu

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Route("/api/menu", func(r chi.Router) {
		r.Get("/", h.GetFullMenu)
		r.Get("/pizzas", h.GetPizzas)
		r.Get("/drinks", h.GetDrinks)
		r.Get("/desserts", h.GetDesserts)
	})
}
