package planner

import (
	"go.uber.org/zap"

	"tripwise/models"
	"tripwise/monitoring"
	"tripwise/services/intelligence"
	"tripwise/services/providers"
)

// Step names recorded in the planning record's completed-steps list. A
// flag-gated node that does not run still appends its "_skipped" marker so
// downstream aggregation can tell "not needed" from "failed".
const (
	StepIntentClassification = "intent_classification"
	StepFlightSearch         = "flight_search"
	StepHotelSearch          = "hotel_search"
	StepWeatherCheck         = "weather_check"
	StepActivitySearch       = "activity_search"
	StepItineraryGeneration  = "itinerary_generation"
	StepResponseGeneration   = "response_generation"

	skippedSuffix = "_skipped"
)

// NodeConfig carries the tunables the nodes need. It is populated from the
// application config at startup and passed in explicitly; nodes never read
// ambient configuration.
type NodeConfig struct {
	HotelBudgetShare    float64 // share of total budget reserved for hotel nights
	ActivityBudgetShare float64 // share of total budget reserved for activities
	MaxFlightOptions    int
	MaxHotelOptions     int
	MaxActivityOptions  int
	MaxForecastDays     int
}

// DefaultNodeConfig returns the stock tuning.
func DefaultNodeConfig() NodeConfig {
	return NodeConfig{
		HotelBudgetShare:    0.4,
		ActivityBudgetShare: 0.2,
		MaxFlightOptions:    5,
		MaxHotelOptions:     5,
		MaxActivityOptions:  10,
		MaxForecastDays:     14,
	}
}

// Nodes bundles the node implementations with their external dependencies.
type Nodes struct {
	LLM        intelligence.Client
	Flights    providers.FlightSearcher
	Hotels     providers.HotelSearcher
	Weather    providers.WeatherSearcher
	Activities providers.ActivitySearcher
	Cfg        NodeConfig
	Metrics    *monitoring.Metrics
	Logger     *zap.Logger
}

// NewNodes wires the node set. Metrics may be nil.
func NewNodes(
	llm intelligence.Client,
	flights providers.FlightSearcher,
	hotels providers.HotelSearcher,
	weather providers.WeatherSearcher,
	activities providers.ActivitySearcher,
	cfg NodeConfig,
	metrics *monitoring.Metrics,
	logger *zap.Logger,
) *Nodes {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Nodes{
		LLM:        llm,
		Flights:    flights,
		Hotels:     hotels,
		Weather:    weather,
		Activities: activities,
		Cfg:        cfg,
		Metrics:    metrics,
		Logger:     logger,
	}
}

func boolPtr(b bool) *bool                     { return &b }
func strPtr(s string) *string                  { return &s }
func intPtr(i int) *int                        { return &i }
func floatPtr(f float64) *float64              { return &f }
func intentPtr(i models.Intent) *models.Intent { return &i }
