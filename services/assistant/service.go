package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/planner"
	"tripwise/services/providers"
)

// DefaultAssistantService is the conversational supervisor. Travel requests
// go through the planning workflow; ancillary follow-ups (baggage,
// insurance, car rental) are answered directly from the ancillary provider
// using remembered context.
type DefaultAssistantService struct {
	Planner   planner.Service
	Ancillary *providers.MockAncillaryProvider
	CtxStore  ContextStore
	Logger    *zap.Logger
}

func NewDefaultAssistantService(
	plannerSvc planner.Service,
	ancillary *providers.MockAncillaryProvider,
	ctxStore ContextStore,
	logger *zap.Logger,
) *DefaultAssistantService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultAssistantService{
		Planner:   plannerSvc,
		Ancillary: ancillary,
		CtxStore:  ctxStore,
		Logger:    logger,
	}
}

const historyLimit = 10

func (s *DefaultAssistantService) ProcessMessage(ctx context.Context, req models.AssistantRequest) (*models.AssistantResponse, error) {
	aCtx, err := s.CtxStore.Get(ctx, req.UserID)
	if err != nil {
		return nil, fmt.Errorf("load context: %w", err)
	}

	// Ancillary follow-ups only make sense once there is trip context.
	lower := strings.ToLower(req.Text)
	switch {
	case aCtx.LastFlightID != "" && (strings.Contains(lower, "baggage") || strings.Contains(lower, "luggage")):
		return s.handleBaggage(ctx, req, aCtx)
	case aCtx.LastDestination != "" && strings.Contains(lower, "insurance"):
		return s.handleInsurance(ctx, req, aCtx)
	case aCtx.LastDestination != "" && (strings.Contains(lower, "car rental") || strings.Contains(lower, "rent a car")):
		return s.handleCarRental(ctx, req, aCtx)
	}

	plan, err := s.Planner.PlanTrip(ctx, models.TripPlanRequest{Query: req.Text})
	if err != nil {
		return nil, fmt.Errorf("run planner: %w", err)
	}

	s.remember(ctx, req, aCtx, plan)

	resp := &models.AssistantResponse{
		Intent:       plan.Intent,
		ResponseText: plan.Response,
		Plan:         plan,
	}
	if len(plan.FlightOptions) > 0 {
		resp.Actions = append(resp.Actions, models.AssistantAction{
			Label: "Baggage options",
			Type:  "ancillary_baggage",
		})
	}
	if aCtx.LastDestination != "" {
		resp.Actions = append(resp.Actions,
			models.AssistantAction{Label: "Travel insurance", Type: "ancillary_insurance"},
			models.AssistantAction{Label: "Rent a car", Type: "ancillary_car"},
		)
	}
	return resp, nil
}

// remember updates conversation context from a completed workflow run.
// Context-store failures are logged and swallowed; losing memory must not
// lose the reply.
func (s *DefaultAssistantService) remember(ctx context.Context, req models.AssistantRequest, aCtx *models.AssistantContext, plan *models.TripPlanResult) {
	aCtx.LastIntent = plan.Intent
	if len(plan.FlightOptions) > 0 {
		aCtx.LastDestination = plan.FlightOptions[0].Destination
		aCtx.LastFlightID = plan.FlightOptions[0].ID
	} else if len(plan.HotelOptions) > 0 {
		aCtx.LastDestination = plan.HotelOptions[0].Location
	}
	aCtx.History = append(aCtx.History, req.Text)
	if len(aCtx.History) > historyLimit {
		aCtx.History = aCtx.History[len(aCtx.History)-historyLimit:]
	}
	if err := s.CtxStore.Set(ctx, req.UserID, aCtx); err != nil {
		s.Logger.Warn("failed to save assistant context", zap.Error(err), zap.String("user", req.UserID))
	}
}

func (s *DefaultAssistantService) handleBaggage(ctx context.Context, req models.AssistantRequest, aCtx *models.AssistantContext) (*models.AssistantResponse, error) {
	options, err := s.Ancillary.BaggageOptions(ctx, aCtx.LastFlightID, 1)
	if err != nil {
		return nil, fmt.Errorf("baggage options: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Baggage options for flight %s (%v included):\n", aCtx.LastFlightID, options["included"]))
	if tiers, ok := options["options"].([]map[string]any); ok {
		for _, tier := range tiers {
			sb.WriteString(fmt.Sprintf("- %v: $%.2f\n", tier["description"], tier["total_price"]))
		}
	}

	return &models.AssistantResponse{
		Intent:       models.IntentBook,
		ResponseText: sb.String(),
	}, nil
}

func (s *DefaultAssistantService) handleInsurance(ctx context.Context, req models.AssistantRequest, aCtx *models.AssistantContext) (*models.AssistantResponse, error) {
	quote, err := s.Ancillary.InsurancePlans(ctx, aCtx.LastDestination, 7, 1)
	if err != nil {
		return nil, fmt.Errorf("insurance plans: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Travel insurance for %s:\n", aCtx.LastDestination))
	if plans, ok := quote["plans"].([]map[string]any); ok {
		for _, plan := range plans {
			sb.WriteString(fmt.Sprintf("- %v: $%.2f (%v)\n", plan["plan"], plan["price"], plan["coverage"]))
		}
	}

	return &models.AssistantResponse{
		Intent:       models.IntentBook,
		ResponseText: sb.String(),
	}, nil
}

func (s *DefaultAssistantService) handleCarRental(ctx context.Context, req models.AssistantRequest, aCtx *models.AssistantContext) (*models.AssistantResponse, error) {
	rentals, err := s.Ancillary.CarRentals(ctx, aCtx.LastDestination, 7)
	if err != nil {
		return nil, fmt.Errorf("car rentals: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Car rentals in %s:\n", aCtx.LastDestination))
	if cars, ok := rentals["options"].([]map[string]any); ok {
		for _, car := range cars {
			sb.WriteString(fmt.Sprintf("- %v: $%.2f/day\n", car["class"], car["price_daily"]))
		}
	}

	return &models.AssistantResponse{
		Intent:       models.IntentBook,
		ResponseText: sb.String(),
	}, nil
}
