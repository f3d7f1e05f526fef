package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type stubService struct {
	reply *Reply
	cc    *Context
	err   error

	gotSessionID string
	gotMessage   string
}

func (s *stubService) ProcessMessage(ctx context.Context, sessionID, message string) (*Reply, error) {
	s.gotSessionID = sessionID
	s.gotMessage = message
	if s.err != nil {
		return nil, s.err
	}
	return s.reply, nil
}

func (s *stubService) GetContext(ctx context.Context, sessionID string) (*Context, error) {
	s.gotSessionID = sessionID
	if s.err != nil {
		return nil, s.err
	}
	return s.cc, nil
}

func TestSendMessage(t *testing.T) {
	cc := NewContext()
	cc.OrderedPizza = true
	stub := &stubService{reply: &Reply{
		Message:           "Que tal uma bebida?",
		SuggestedProducts: []string{"Coca-Cola", "Guaraná", "Suco de Laranja"},
		Context:           cc,
	}}
	h := NewHandler(stub)

	body := `{"message":"quero pizza","sessionId":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.SendMessage(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	require.Equal(t, "s1", stub.gotSessionID)
	require.Equal(t, "quero pizza", stub.gotMessage)

	var resp sendMessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	require.Equal(t, "USER", resp.UserMessage.Sender)
	require.Equal(t, "quero pizza", resp.UserMessage.Message)
	require.NotEmpty(t, resp.UserMessage.ID)
	require.NotEmpty(t, resp.UserMessage.Timestamp)

	require.Equal(t, "AI", resp.AIResponse.Sender)
	require.Equal(t, "Que tal uma bebida?", resp.AIResponse.Message)
	require.Equal(t, []string{"Coca-Cola", "Guaraná", "Suco de Laranja"}, resp.AIResponse.SuggestedProducts)
	require.NotEqual(t, resp.UserMessage.ID, resp.AIResponse.ID)

	require.True(t, resp.ConversationContext.OrderedPizza)
	require.False(t, resp.ConversationContext.OrderedDrink)
}

func TestSendMessage_Validation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{"sessionId":"s1"}`},
		{"missing sessionId", `{"message":"oi"}`},
		{"empty payload", `{}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{})
			req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()

			h.SendMessage(rec, req)

			require.Equal(t, http.StatusBadRequest, rec.Code)
			var resp map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			require.Equal(t, "Message and sessionId are required", resp["error"])
		})
	}
}

func TestSendMessage_InvalidJSON(t *testing.T) {
	h := NewHandler(&stubService{})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader("{nope"))
	rec := httptest.NewRecorder()

	h.SendMessage(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSendMessage_ServiceError(t *testing.T) {
	h := NewHandler(&stubService{err: errors.New("store broken")})
	req := httptest.NewRequest(http.MethodPost, "/api/messages", strings.NewReader(`{"message":"oi","sessionId":"s1"}`))
	rec := httptest.NewRecorder()

	h.SendMessage(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "processing error", resp["error"])
}

func TestGetMessages(t *testing.T) {
	cc := NewContext()
	cc.OrderedPizza = true
	cc.OrderPhase = PhaseDrink
	h := NewHandler(&stubService{cc: cc})

	req := httptest.NewRequest(http.MethodGet, "/api/messages?sessionId=s1", nil)
	rec := httptest.NewRecorder()

	h.GetMessages(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Messages []any   `json:"messages"`
		Context  Context `json:"context"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Empty(t, resp.Messages)
	require.True(t, resp.Context.OrderedPizza)
	require.Equal(t, PhaseDrink, resp.Context.OrderPhase)
}

func TestGetMessages_MissingSessionID(t *testing.T) {
	h := NewHandler(&stubService{})
	req := httptest.NewRequest(http.MethodGet, "/api/messages", nil)
	rec := httptest.NewRecorder()

	h.GetMessages(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "SessionId is required", resp["error"])
}
