package chat

import (
	"context"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/pizzaria-ai/chat-backend/internal/ai"
	"github.com/pizzaria-ai/chat-backend/internal/menu"
	"github.com/pizzaria-ai/chat-backend/internal/orders"
)

const fallbackMessage = "Desculpe, tive um problema técnico. Mas posso te ajudar! Que tal experimentar nossa pizza Calabresa? É uma das mais pedidas! 🍕"

func fallbackSuggestions() []string {
	return []string{"Calabresa", "Margherita", "Coca-Cola"}
}

type service struct {
	menu   menu.Repo
	ai     ai.AI
	store  Store
	orders orders.Publisher
	locks  sessionLocks
}

func NewService(menuRepo menu.Repo, aiClient ai.AI, store Store, publisher orders.Publisher) Service {
	return &service{
		menu:   menuRepo,
		ai:     aiClient,
		store:  store,
		orders: publisher,
		locks:  sessionLocks{locks: make(map[string]*sync.Mutex)},
	}
}

func (s *service) ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	unlock := s.locks.lock(sessionID)
	defer unlock()

	log.Printf("[chat] sessionId=%s text=%q", sessionID, message)

	items, err := s.menu.ListAvailable(ctx)
	if err != nil {
		// An unavailable catalog degrades detection quality, never the turn.
		log.Printf("[chat] menu unavailable: %v", err)
		items = nil
	}
	catalog := menu.BuildCatalog(items)

	base, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if base == nil {
		base = NewContext()
	}

	cc := base.Clone()
	cc.PushMessage(message)

	lower := strings.ToLower(message)
	cc.CustomerIntent = ClassifyIntent(lower)
	topic := DetectMenuTopic(lower)

	prevPhase := cc.OrderPhase
	hint := Advance(cc, lower, catalog)

	prompt := ComposePrompt(cc, catalog, hint, topic, message)

	aiMessage, err := s.ai.GetReply(ctx, prompt)
	if err != nil {
		// The turn's tracker mutations are discarded: only the raw message
		// survives a failed model call.
		log.Printf("[chat] ai error, falling back: %v", err)
		fb := base.Clone()
		fb.PushMessage(message)
		if err := s.store.Save(ctx, sessionID, fb); err != nil {
			return nil, err
		}
		return &Reply{
			Message:           fallbackMessage,
			SuggestedProducts: fallbackSuggestions(),
			Context:           fb,
		}, nil
	}

	if prevPhase != PhaseFinalizing && cc.OrderPhase == PhaseFinalizing {
		s.publishOrder(ctx, sessionID, cc)
	}

	if err := s.store.Save(ctx, sessionID, cc); err != nil {
		return nil, err
	}

	return &Reply{
		Message:           aiMessage,
		SuggestedProducts: Suggest(cc),
		Context:           cc,
	}, nil
}

func (s *service) GetContext(ctx context.Context, sessionID string) (*Context, error) {
	cc, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if cc == nil {
		cc = NewContext()
	}
	return cc, nil
}

// publishOrder hands the funnel result to the kitchen. Best effort: a broker
// failure must not fail the customer's turn.
func (s *service) publishOrder(ctx context.Context, sessionID string, cc *Context) {
	event := orders.OrderPlaced{
		SessionID: sessionID,
		Pizza:     cc.SelectedItems.Pizza,
		Drink:     cc.SelectedItems.Drink,
		Dessert:   cc.SelectedItems.Dessert,
		Total:     cc.OrderTotal,
		PlacedAt:  time.Now().UTC(),
	}
	if err := s.orders.PublishOrder(ctx, event); err != nil {
		log.Printf("[chat] order publish error: %v", err)
	}
}

// sessionLocks serializes turns for the same session id so concurrent
// requests cannot race on the context's read-modify-write.
type sessionLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (l *sessionLocks) lock(sessionID string) (unlock func()) {
	l.mu.Lock()
	m, ok := l.locks[sessionID]
	if !ok {
		m = &sync.Mutex{}
		l.locks[sessionID] = m
	}
	l.mu.Unlock()

	m.Lock()
	return m.Unlock
}
