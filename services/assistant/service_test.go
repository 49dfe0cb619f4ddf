package assistant

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/services/providers"
)

type fakePlanner struct {
	result  *models.TripPlanResult
	err     error
	queries []string
}

func (f *fakePlanner) PlanTrip(_ context.Context, req models.TripPlanRequest) (*models.TripPlanResult, error) {
	f.queries = append(f.queries, req.Query)
	return f.result, f.err
}

func (f *fakePlanner) SearchFlights(context.Context, models.FlightSearchRequest) (*models.TripPlanResult, error) {
	return f.result, f.err
}

func (f *fakePlanner) SearchHotels(context.Context, models.HotelSearchRequest) (*models.TripPlanResult, error) {
	return f.result, f.err
}

func (f *fakePlanner) SearchActivities(context.Context, models.ActivitySearchRequest) (*models.TripPlanResult, error) {
	return f.result, f.err
}

func (f *fakePlanner) CheckWeather(context.Context, models.WeatherRequest) (*models.TripPlanResult, error) {
	return f.result, f.err
}

type memoryStore struct {
	data   map[string]*models.AssistantContext
	setErr error
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: map[string]*models.AssistantContext{}}
}

func (m *memoryStore) Get(_ context.Context, userID string) (*models.AssistantContext, error) {
	if aCtx, ok := m.data[userID]; ok {
		return aCtx, nil
	}
	return &models.AssistantContext{}, nil
}

func (m *memoryStore) Set(_ context.Context, userID string, aCtx *models.AssistantContext) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.data[userID] = aCtx
	return nil
}

func (m *memoryStore) Clear(_ context.Context, userID string) error {
	delete(m.data, userID)
	return nil
}

func planResult() *models.TripPlanResult {
	return &models.TripPlanResult{
		Success:  true,
		Intent:   models.IntentPlanTrip,
		Response: "Here is your trip!",
		FlightOptions: []models.FlightOption{
			{ID: "FL-1", Airline: "SkyHigh Airlines", Destination: "Paris"},
		},
	}
}

func newService(p *fakePlanner, store ContextStore) *DefaultAssistantService {
	return NewDefaultAssistantService(p, providers.NewMockAncillaryProvider(), store, zap.NewNop())
}

func TestProcessMessageRunsPlannerAndRemembers(t *testing.T) {
	p := &fakePlanner{result: planResult()}
	store := newMemoryStore()
	svc := newService(p, store)

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "Plan a trip to Paris",
	})

	require.NoError(t, err)
	assert.Equal(t, models.IntentPlanTrip, resp.Intent)
	assert.Equal(t, "Here is your trip!", resp.ResponseText)
	require.NotNil(t, resp.Plan)

	saved := store.data["u1"]
	require.NotNil(t, saved)
	assert.Equal(t, "Paris", saved.LastDestination)
	assert.Equal(t, "FL-1", saved.LastFlightID)
	assert.Equal(t, []string{"Plan a trip to Paris"}, saved.History)
}

func TestProcessMessageOffersFollowUpActions(t *testing.T) {
	p := &fakePlanner{result: planResult()}
	svc := newService(p, newMemoryStore())

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "Plan a trip to Paris",
	})

	require.NoError(t, err)
	require.NotEmpty(t, resp.Actions)
	assert.Equal(t, "ancillary_baggage", resp.Actions[0].Type)
}

func TestProcessMessageBaggageFollowUpUsesContext(t *testing.T) {
	p := &fakePlanner{result: planResult()}
	store := newMemoryStore()
	store.data["u1"] = &models.AssistantContext{
		LastDestination: "Paris",
		LastFlightID:    "FL-1",
	}
	svc := newService(p, store)

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "What are the baggage options?",
	})

	require.NoError(t, err)
	assert.Equal(t, models.IntentBook, resp.Intent)
	assert.Contains(t, resp.ResponseText, "Baggage options for flight FL-1")
	assert.Empty(t, p.queries, "ancillary follow-ups skip the planner")
}

func TestProcessMessageBaggageWithoutContextFallsThrough(t *testing.T) {
	p := &fakePlanner{result: &models.TripPlanResult{
		Intent:   models.IntentGeneral,
		Response: "I can help with baggage once we pick a flight.",
	}}
	svc := newService(p, newMemoryStore())

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u2",
		Text:   "Tell me about baggage",
	})

	require.NoError(t, err)
	assert.Len(t, p.queries, 1, "no remembered flight, so the planner handles it")
	assert.Equal(t, models.IntentGeneral, resp.Intent)
}

func TestProcessMessageInsuranceFollowUp(t *testing.T) {
	store := newMemoryStore()
	store.data["u1"] = &models.AssistantContext{LastDestination: "Paris"}
	svc := newService(&fakePlanner{}, store)

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "Do I need travel insurance?",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "Travel insurance for Paris")
}

func TestProcessMessageCarRentalFollowUp(t *testing.T) {
	store := newMemoryStore()
	store.data["u1"] = &models.AssistantContext{LastDestination: "Rome"}
	svc := newService(&fakePlanner{}, store)

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "Can I rent a car there?",
	})

	require.NoError(t, err)
	assert.Contains(t, resp.ResponseText, "Car rentals in Rome")
}

func TestProcessMessagePlannerFailure(t *testing.T) {
	p := &fakePlanner{err: errors.New("workflow unavailable")}
	svc := newService(p, newMemoryStore())

	_, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "Plan something",
	})
	assert.Error(t, err)
}

func TestProcessMessageStoreFailureDoesNotLoseReply(t *testing.T) {
	p := &fakePlanner{result: planResult()}
	store := newMemoryStore()
	store.setErr = errors.New("redis down")
	svc := newService(p, store)

	resp, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
		UserID: "u1",
		Text:   "Plan a trip to Paris",
	})

	require.NoError(t, err)
	assert.Equal(t, "Here is your trip!", resp.ResponseText)
}

func TestHistoryTrimmedToLimit(t *testing.T) {
	p := &fakePlanner{result: planResult()}
	store := newMemoryStore()
	svc := newService(p, store)

	for i := 0; i < historyLimit+5; i++ {
		_, err := svc.ProcessMessage(context.Background(), models.AssistantRequest{
			UserID: "u1",
			Text:   "Plan a trip to Paris",
		})
		require.NoError(t, err)
	}

	assert.Len(t, store.data["u1"].History, historyLimit)
}
