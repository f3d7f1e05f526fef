package chat

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/messages", h.SendMessage)
	r.Get("/api/messages", h.GetMessages)
}
