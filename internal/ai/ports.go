package ai

import "context"

// AI — the external model; knows nothing about sessions or the menu.
// It receives one composed prompt and returns one text reply.
type AI interface {
	GetReply(ctx context.Context, prompt string) (string, error)
}
