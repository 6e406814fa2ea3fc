// File: services/assistant/service.go
package assistant

import (
	"context"
	"fmt"
	"strings"
	"time"

	providerRepo "habi/database/repository/provider"
	"habi/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxChatProviders caps how many providers a chat reply attaches.
const maxChatProviders = 3

// greetingText opens every new conversation.
const greetingText = "Hello! I'm Habi, your personal service assistant. I can help you find and book local professionals. What home service do you need today?"

// DefaultAssistantService is the production implementation.
type DefaultAssistantService struct {
	Providers providerRepo.ProviderRepository
	Store     ConversationStore
	Logger    *zap.Logger
}

func NewDefaultAssistantService(providers providerRepo.ProviderRepository, store ConversationStore, logger *zap.Logger) *DefaultAssistantService {
	return &DefaultAssistantService{Providers: providers, Store: store, Logger: logger}
}

// ProcessMessage runs one chat turn: record the user's utterance, classify
// it, fetch providers on a match, and append the assistant's reply.
func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, userID, text string) (*models.ChatResponse, error) {
	conv, err := s.loadConversation(ctx, userID)
	if err != nil {
		return nil, err
	}

	conv.Messages = append(conv.Messages, models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.ChatSenderUser,
		Text:      text,
		Timestamp: time.Now().UTC(),
	})

	reply := s.composeReply(ctx, text)
	conv.Messages = append(conv.Messages, reply)

	if err := s.Store.Set(ctx, userID, conv); err != nil {
		// Session state is best effort; the reply still stands.
		s.Logger.Warn("assistant: failed to save conversation",
			zap.String("userID", userID), zap.Error(err))
	}

	return &models.ChatResponse{Reply: reply, Conversation: *conv}, nil
}

// composeReply classifies the utterance and builds the assistant message.
func (s *DefaultAssistantService) composeReply(ctx context.Context, text string) models.ChatMessage {
	reply := models.ChatMessage{
		ID:        uuid.New().String(),
		Sender:    models.ChatSenderAssistant,
		Timestamp: time.Now().UTC(),
	}

	category, matched := ClassifyService(text)
	if !matched {
		reply.Text = noMatchPrompt
		return reply
	}

	providers, err := s.Providers.ListByCategory(ctx, category, maxChatProviders)
	if err != nil {
		s.Logger.Error("assistant: provider lookup failed",
			zap.String("category", category), zap.Error(err))
		reply.Text = fmt.Sprintf(
			"I can help you find %s professionals! However, I'm having trouble accessing our provider database right now. Please try again in a moment.",
			strings.ToLower(category),
		)
		return reply
	}

	if len(providers) == 0 {
		reply.Text = fmt.Sprintf(
			"I understand you need %s services. Unfortunately, I couldn't find any available providers in your area right now. Please try again later or contact us directly for assistance.",
			strings.ToLower(category),
		)
		return reply
	}

	reply.Text = fmt.Sprintf(
		"Perfect! I found %d %s professionals in your area. These providers handle %s. Here are some top-rated options for you:",
		len(providers), strings.ToLower(category), describeCategory(category),
	)
	reply.Providers = providers
	reply.ServiceType = category
	return reply
}

// GetConversation returns the user's current session, seeded with the
// greeting message when empty.
func (s *DefaultAssistantService) GetConversation(ctx context.Context, userID string) (*models.Conversation, error) {
	return s.loadConversation(ctx, userID)
}

// ClearConversation discards the user's session state.
func (s *DefaultAssistantService) ClearConversation(ctx context.Context, userID string) error {
	return s.Store.Clear(ctx, userID)
}

func (s *DefaultAssistantService) loadConversation(ctx context.Context, userID string) (*models.Conversation, error) {
	conv, err := s.Store.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if len(conv.Messages) == 0 {
		conv.Messages = append(conv.Messages, models.ChatMessage{
			ID:        uuid.New().String(),
			Sender:    models.ChatSenderAssistant,
			Text:      greetingText,
			Timestamp: time.Now().UTC(),
		})
	}
	return conv, nil
}
