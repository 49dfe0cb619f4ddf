package models

// Intent is the classified category of a user request. It is assigned
// exactly once by intent extraction and read-only afterwards.
type Intent string

const (
	IntentPlanTrip         Intent = "plan_trip"
	IntentSearchFlights    Intent = "search_flights"
	IntentSearchHotels     Intent = "search_hotels"
	IntentSearchActivities Intent = "search_activities"
	IntentCheckWeather     Intent = "check_weather"
	IntentBook             Intent = "book"
	IntentGeneral          Intent = "general"
)

// ParseIntent validates a raw intent string coming out of the completion
// service. Anything unrecognized collapses to IntentGeneral so that no
// free-text-derived string ever drives routing directly.
func ParseIntent(raw string) Intent {
	switch Intent(raw) {
	case IntentPlanTrip, IntentSearchFlights, IntentSearchHotels,
		IntentSearchActivities, IntentCheckWeather, IntentBook:
		return Intent(raw)
	default:
		return IntentGeneral
	}
}

// IsSingleSearch reports whether the intent is a single-category search
// rather than a full trip plan.
func (i Intent) IsSingleSearch() bool {
	switch i {
	case IntentSearchFlights, IntentSearchHotels, IntentSearchActivities, IntentCheckWeather:
		return true
	}
	return false
}

// PlanningState is the single shared record threaded through the whole
// workflow. Nodes read the fields they need and return a patch; the engine
// owns the merge. The record lives for exactly one run.
type PlanningState struct {
	// Request fields, set once from user input or intent extraction.
	Query         string         `json:"user_query"`
	Origin        *string        `json:"origin,omitempty"`
	Destination   *string        `json:"destination,omitempty"`
	DepartureDate *string        `json:"departure_date,omitempty"`
	ReturnDate    *string        `json:"return_date,omitempty"`
	Passengers    int            `json:"num_passengers"`
	Budget        *float64       `json:"budget,omitempty"`
	Preferences   map[string]any `json:"preferences,omitempty"`

	// Routing flags, immutable after intent extraction.
	Intent             Intent `json:"intent"`
	RequiresFlights    bool   `json:"requires_flights"`
	RequiresHotels     bool   `json:"requires_hotels"`
	RequiresActivities bool   `json:"requires_activities"`
	RequiresWeather    bool   `json:"requires_weather"`

	// Search results, each append-only within its node's execution.
	FlightOptions   []FlightOption   `json:"flight_options"`
	HotelOptions    []HotelOption    `json:"hotel_options"`
	ActivityOptions []ActivityOption `json:"activity_options"`
	WeatherForecast []WeatherDay     `json:"weather_forecast"`

	// Explicit selections. Unset unless a selection step assigns them.
	SelectedFlight *FlightOption `json:"selected_flight,omitempty"`
	SelectedHotel  *HotelOption  `json:"selected_hotel,omitempty"`

	// Workflow bookkeeping. CompletedSteps and Errors are append-only.
	CurrentStep    string   `json:"current_step"`
	CompletedSteps []string `json:"completed_steps"`
	Errors         []string `json:"errors"`

	// Final output.
	Itinerary       *string  `json:"itinerary,omitempty"`
	TotalCost       float64  `json:"total_cost"`
	Recommendations []string `json:"recommendations"`
	Response        *string  `json:"response,omitempty"`
}

// NewPlanningState builds a fresh record for one workflow run.
func NewPlanningState(query string) *PlanningState {
	return &PlanningState{
		Query:           query,
		Passengers:      1,
		Preferences:     map[string]any{},
		Intent:          IntentGeneral,
		FlightOptions:   []FlightOption{},
		HotelOptions:    []HotelOption{},
		ActivityOptions: []ActivityOption{},
		WeatherForecast: []WeatherDay{},
		CompletedSteps:  []string{},
		Errors:          []string{},
		Recommendations: []string{},
	}
}

// HasStep reports whether a completed-step marker was recorded.
func (s *PlanningState) HasStep(name string) bool {
	for _, step := range s.CompletedSteps {
		if step == name {
			return true
		}
	}
	return false
}
