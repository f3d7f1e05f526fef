package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type Handler struct {
	svc Service
}

func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

type chatMessage struct {
	ID                string   `json:"id"`
	Message           string   `json:"message"`
	Timestamp         string   `json:"timestamp"`
	Sender            string   `json:"sender"`
	SuggestedProducts []string `json:"suggestedProducts,omitempty"`
}

type orderFlags struct {
	OrderedPizza   bool `json:"orderedPizza"`
	OrderedDrink   bool `json:"orderedDrink"`
	OrderedDessert bool `json:"orderedDessert"`
}

type sendMessageResponse struct {
	UserMessage         chatMessage `json:"userMessage"`
	AIResponse          chatMessage `json:"aiResponse"`
	ConversationContext orderFlags  `json:"conversationContext"`
}

// SendMessage — one conversation turn
func (h *Handler) SendMessage(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}

	if payload.Message == "" || payload.SessionID == "" {
		writeError(w, http.StatusBadRequest, "Message and sessionId are required")
		return
	}

	reply, err := h.svc.ProcessMessage(r.Context(), payload.SessionID, payload.Message)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "processing error")
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	resp := sendMessageResponse{
		UserMessage: chatMessage{
			ID:        uuid.NewString(),
			Message:   payload.Message,
			Timestamp: now,
			Sender:    "USER",
		},
		AIResponse: chatMessage{
			ID:                uuid.NewString(),
			Message:           reply.Message,
			Timestamp:         now,
			Sender:            "AI",
			SuggestedProducts: reply.SuggestedProducts,
		},
		ConversationContext: orderFlags{
			OrderedPizza:   reply.Context.OrderedPizza,
			OrderedDrink:   reply.Context.OrderedDrink,
			OrderedDessert: reply.Context.OrderedDessert,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// GetMessages — context snapshot for a session
func (h *Handler) GetMessages(w http.ResponseWriter, r *http.Request) {
	sessionID := r.URL.Query().Get("sessionId")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "SessionId is required")
		return
	}

	cc, err := h.svc.GetContext(r.Context(), sessionID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "processing error")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"messages": []any{},
		"context":  cc,
	})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
