package chat

import "context"

type Intent string

const (
	IntentOrdering     Intent = "ordering"
	IntentAsking       Intent = "asking"
	IntentRejecting    Intent = "rejecting"
	IntentGreeting     Intent = "greeting"
	IntentMenuQuestion Intent = "menu_question"
	IntentUnknown      Intent = "unknown"
)

type Phase string

const (
	PhasePizza      Phase = "pizza"
	PhaseDrink      Phase = "drink"
	PhaseDessert    Phase = "dessert"
	PhaseFinalizing Phase = "finalizing"
	PhaseCompleted  Phase = "completed"
)

// StrategyHint tells the prompt composer what the reply should prioritize.
type StrategyHint string

const (
	HintSellPizza        StrategyHint = "sell_pizza"
	HintOfferDrink       StrategyHint = "offer_drink"
	HintOfferDessert     StrategyHint = "offer_dessert"
	HintFinalizeOrder    StrategyHint = "finalize_order"
	HintPostCompletion   StrategyHint = "post_completion"
	HintRespectRejection StrategyHint = "respect_rejection"
)

// Reply is the result of one conversation turn.
type Reply struct {
	Message           string
	SuggestedProducts []string
	Context           *Context
}

// Store — conversation persistence, keyed by session id. Get reports a nil
// context for unknown or expired sessions.
type Store interface {
	Get(ctx context.Context, sessionID string) (*Context, error)
	Save(ctx context.Context, sessionID string, cc *Context) error
}

// Service — one turn of the ordering conversation
type Service interface {
	ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error)
	GetContext(ctx context.Context, sessionID string) (*Context, error)
}
