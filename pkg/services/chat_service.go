package services

import (
	"context"
	"fmt"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/wanderplan/wanderplan/ent"
	"github.com/wanderplan/wanderplan/ent/chatmessage"
	"github.com/wanderplan/wanderplan/pkg/models"
)

// ChatService persists the per-itinerary chat transcript
type ChatService struct {
	client *ent.Client
}

// NewChatService creates a new ChatService
func NewChatService(client *ent.Client) *ChatService {
	return &ChatService{client: client}
}

// AppendUserMessage records one user turn
func (s *ChatService) AppendUserMessage(httpCtx context.Context, itineraryID, content string) (*ent.ChatMessage, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg, err := s.client.ChatMessage.Create().
		SetID(ulid.Make().String()).
		SetItineraryID(itineraryID).
		SetRole(chatmessage.RoleUser).
		SetContent(content).
		SetCreatedAt(time.Now().UTC()).
		Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to append user message: %w", err)
	}
	return msg, nil
}

// AppendAssistantMessage records one assistant turn. Turns that led to an
// apply carry the changeset and the version it produced, for auditability.
func (s *ChatService) AppendAssistantMessage(httpCtx context.Context, itineraryID, content, intent string, cs *models.ChangeSet, appliedVersion *int) (*ent.ChatMessage, error) {
	if content == "" {
		return nil, NewValidationError("content", "required")
	}

	// Use background context with timeout for critical write
	writeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.ChatMessage.Create().
		SetID(ulid.Make().String()).
		SetItineraryID(itineraryID).
		SetRole(chatmessage.RoleAssistant).
		SetContent(content).
		SetNillableAppliedVersion(appliedVersion).
		SetCreatedAt(time.Now().UTC())

	if intent != "" {
		builder.SetIntent(intent)
	}
	if cs != nil {
		builder.SetChangeSet(*cs)
	}

	msg, err := builder.Save(writeCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to append assistant message: %w", err)
	}
	return msg, nil
}

// GetTranscript returns the latest limit turns in chronological order
func (s *ChatService) GetTranscript(ctx context.Context, itineraryID string, limit int) ([]*ent.ChatMessage, error) {
	if limit <= 0 {
		limit = 50
	}

	// Fetch newest-first to honour the limit, then reverse for display order.
	rows, err := s.client.ChatMessage.Query().
		Where(chatmessage.ItineraryIDEQ(itineraryID)).
		Order(ent.Desc(chatmessage.FieldCreatedAt), ent.Desc(chatmessage.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get transcript: %w", err)
	}

	for i, j := 0, len(rows)-1; i < j; i, j = i+1, j-1 {
		rows[i], rows[j] = rows[j], rows[i]
	}
	return rows, nil
}
