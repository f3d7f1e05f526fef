package orders

import (
	"context"
	"time"
)

// OrderPlaced is emitted once per session when the ordering funnel reaches
// finalization, so the kitchen can start before the address round-trip.
type OrderPlaced struct {
	SessionID string    `json:"session_id"`
	Pizza     string    `json:"pizza,omitempty"`
	Drink     string    `json:"drink,omitempty"`
	Dessert   string    `json:"dessert,omitempty"`
	Total     float64   `json:"total"`
	PlacedAt  time.Time `json:"placed_at"`
}

type Publisher interface {
	PublishOrder(ctx context.Context, order OrderPlaced) error
}

// NopPublisher is wired when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrder(context.Context, OrderPlaced) error { return nil }
