package planner

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"tripwise/models"
)

const resultCacheTTL = 5 * time.Minute

// DefaultPlannerService runs the travel planning graph. When a cache client
// is set, successful results are memoized per request for a short TTL so
// repeated identical requests skip the workflow.
type DefaultPlannerService struct {
	Graph  *Graph
	Cache  *redis.Client
	Logger *zap.Logger
}

// NewService creates the planner service around a compiled graph. Cache may
// be nil to disable result memoization.
func NewService(graph *Graph, cache *redis.Client, logger *zap.Logger) *DefaultPlannerService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultPlannerService{Graph: graph, Cache: cache, Logger: logger}
}

func planCacheKey(req models.TripPlanRequest) string {
	b, err := json.Marshal(req)
	if err != nil {
		return ""
	}
	sum := sha1.Sum(b)
	return "planner:result:" + hex.EncodeToString(sum[:])
}

// PlanTrip runs the full workflow for a natural-language request.
// Explicitly provided fields pre-seed the planning record; intent
// extraction fills in the rest from the query text.
func (s *DefaultPlannerService) PlanTrip(ctx context.Context, req models.TripPlanRequest) (*models.TripPlanResult, error) {
	key := planCacheKey(req)
	if s.Cache != nil && key != "" {
		if data, err := s.Cache.Get(ctx, key).Result(); err == nil {
			var cachedResult models.TripPlanResult
			if json.Unmarshal([]byte(data), &cachedResult) == nil {
				s.Logger.Debug("serving cached plan", zap.String("key", key))
				return &cachedResult, nil
			}
		}
	}

	state := models.NewPlanningState(req.Query)
	state.Origin = req.Origin
	state.Destination = req.Destination
	state.DepartureDate = req.DepartureDate
	state.ReturnDate = req.ReturnDate
	if req.Passengers > 0 {
		state.Passengers = req.Passengers
	}
	state.Budget = req.Budget
	for k, v := range req.Preferences {
		state.Preferences[k] = v
	}

	start := time.Now()
	s.Graph.Run(ctx, state)
	elapsed := time.Since(start)

	s.Logger.Info("workflow completed",
		zap.String("intent", string(state.Intent)),
		zap.Strings("completed_steps", state.CompletedSteps),
		zap.Int("errors", len(state.Errors)),
		zap.Duration("took", elapsed))

	response := ""
	if state.Response != nil {
		response = *state.Response
	}

	result := &models.TripPlanResult{
		Success:           len(state.Errors) == 0,
		Intent:            state.Intent,
		Response:          response,
		Itinerary:         state.Itinerary,
		FlightOptions:     state.FlightOptions,
		HotelOptions:      state.HotelOptions,
		ActivityOptions:   state.ActivityOptions,
		WeatherForecast:   state.WeatherForecast,
		TotalCost:         state.TotalCost,
		Recommendations:   state.Recommendations,
		Errors:            state.Errors,
		CompletedSteps:    state.CompletedSteps,
		ProcessingSeconds: elapsed.Seconds(),
	}

	// Degraded runs are not memoized; a retry should get a fresh attempt.
	if s.Cache != nil && key != "" && result.Success {
		if b, err := json.Marshal(result); err == nil {
			if err := s.Cache.Set(ctx, key, b, resultCacheTTL).Err(); err != nil {
				s.Logger.Warn("failed to cache plan result", zap.Error(err))
			}
		}
	}

	return result, nil
}

// SearchFlights runs a flights-only search through the same workflow.
func (s *DefaultPlannerService) SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.TripPlanResult, error) {
	query := fmt.Sprintf("Find flights from %s to %s on %s", req.Origin, req.Destination, req.DepartureDate)
	if req.ReturnDate != nil {
		query += fmt.Sprintf(" returning %s", *req.ReturnDate)
	}
	passengers := req.Passengers
	if passengers < 1 {
		passengers = 1
	}
	query += fmt.Sprintf(" for %d passenger(s)", passengers)

	return s.PlanTrip(ctx, models.TripPlanRequest{
		Query:         query,
		Origin:        &req.Origin,
		Destination:   &req.Destination,
		DepartureDate: &req.DepartureDate,
		ReturnDate:    req.ReturnDate,
		Passengers:    passengers,
		Budget:        req.Budget,
	})
}

// SearchHotels runs a hotels-only search through the same workflow.
func (s *DefaultPlannerService) SearchHotels(ctx context.Context, req models.HotelSearchRequest) (*models.TripPlanResult, error) {
	query := fmt.Sprintf("Find hotels in %s from %s to %s", req.Destination, req.CheckIn, req.CheckOut)
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}
	query += fmt.Sprintf(" for %d guest(s)", guests)

	prefs := map[string]any{}
	if req.MinRating > 0 {
		prefs["hotel_rating"] = req.MinRating
	}

	return s.PlanTrip(ctx, models.TripPlanRequest{
		Query:         query,
		Destination:   &req.Destination,
		DepartureDate: &req.CheckIn,
		ReturnDate:    &req.CheckOut,
		Passengers:    guests,
		Budget:        req.Budget,
		Preferences:   prefs,
	})
}

// SearchActivities runs an activities-only search through the same workflow.
func (s *DefaultPlannerService) SearchActivities(ctx context.Context, req models.ActivitySearchRequest) (*models.TripPlanResult, error) {
	query := fmt.Sprintf("Find things to do in %s", req.Destination)

	prefs := map[string]any{}
	if len(req.Categories) > 0 {
		prefs["activities"] = req.Categories
	}

	return s.PlanTrip(ctx, models.TripPlanRequest{
		Query:       query,
		Destination: &req.Destination,
		Budget:      req.Budget,
		Preferences: prefs,
	})
}

// CheckWeather runs a weather-only lookup through the same workflow.
func (s *DefaultPlannerService) CheckWeather(ctx context.Context, req models.WeatherRequest) (*models.TripPlanResult, error) {
	query := fmt.Sprintf("What's the weather in %s starting %s", req.Destination, req.StartDate)

	return s.PlanTrip(ctx, models.TripPlanRequest{
		Query:         query,
		Destination:   &req.Destination,
		DepartureDate: &req.StartDate,
		ReturnDate:    req.EndDate,
	})
}
