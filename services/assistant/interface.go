// File: services/assistant/interface.go
package assistant

import (
	"context"

	"habi/models"
)

// AssistantService is the rule-based chat assistant: it routes free text to
// a service category and surfaces matching providers.
type AssistantService interface {
	// ProcessMessage runs one chat turn for the user and returns the
	// assistant's reply with the updated conversation.
	ProcessMessage(ctx context.Context, userID, text string) (*models.ChatResponse, error)
	// GetConversation returns the user's current session, seeded with the
	// greeting when empty.
	GetConversation(ctx context.Context, userID string) (*models.Conversation, error)
	// ClearConversation discards the user's session state.
	ClearConversation(ctx context.Context, userID string) error
}
