package assistant

import (
	"context"

	"tripwise/models"
)

// ContextStore persists per-user conversation context between turns.
type ContextStore interface {
	Get(ctx context.Context, userID string) (*models.AssistantContext, error)
	Set(ctx context.Context, userID string, aCtx *models.AssistantContext) error
	Clear(ctx context.Context, userID string) error
}

// Service is the conversational front to the planner: it remembers the
// recent conversation, runs travel requests through the planning workflow
// and answers add-on questions (baggage, insurance, car rental) from the
// ancillary provider.
type Service interface {
	ProcessMessage(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error)
}
