package models

// TripPlanRequest is the payload for the plan-trip endpoint. Query is the
// only required field; the rest pre-seed the planning record and otherwise
// get extracted from the query text.
type TripPlanRequest struct {
	Query         string         `json:"query" binding:"required"`
	Origin        *string        `json:"origin,omitempty"`
	Destination   *string        `json:"destination,omitempty"`
	DepartureDate *string        `json:"departure_date,omitempty"`
	ReturnDate    *string        `json:"return_date,omitempty"`
	Passengers    int            `json:"num_passengers,omitempty"`
	Budget        *float64       `json:"budget,omitempty"`
	Preferences   map[string]any `json:"preferences,omitempty"`
}

// FlightSearchRequest is the payload for the flights-only endpoint.
type FlightSearchRequest struct {
	Origin        string   `json:"origin" binding:"required"`
	Destination   string   `json:"destination" binding:"required"`
	DepartureDate string   `json:"departure_date" binding:"required"`
	ReturnDate    *string  `json:"return_date,omitempty"`
	Passengers    int      `json:"num_passengers,omitempty"`
	Budget        *float64 `json:"budget,omitempty"`
}

// HotelSearchRequest is the payload for the hotels-only endpoint.
type HotelSearchRequest struct {
	Destination string   `json:"destination" binding:"required"`
	CheckIn     string   `json:"check_in" binding:"required"`
	CheckOut    string   `json:"check_out" binding:"required"`
	Guests      int      `json:"num_guests,omitempty"`
	MinRating   float64  `json:"min_rating,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
}

// ActivitySearchRequest is the payload for the activities-only endpoint.
type ActivitySearchRequest struct {
	Destination string   `json:"destination" binding:"required"`
	Categories  []string `json:"categories,omitempty"`
	Budget      *float64 `json:"budget,omitempty"`
}

// WeatherRequest is the payload for the weather-only endpoint.
type WeatherRequest struct {
	Destination string  `json:"destination" binding:"required"`
	StartDate   string  `json:"start_date" binding:"required"`
	EndDate     *string `json:"end_date,omitempty"`
}

// TripPlanResult is the structured outcome of one workflow run, exposed to
// all callers. Success is derived: true iff the error list is empty.
type TripPlanResult struct {
	Success           bool             `json:"success"`
	Intent            Intent           `json:"intent"`
	Response          string           `json:"response"`
	Itinerary         *string          `json:"itinerary,omitempty"`
	FlightOptions     []FlightOption   `json:"flight_options"`
	HotelOptions      []HotelOption    `json:"hotel_options"`
	ActivityOptions   []ActivityOption `json:"activity_options"`
	WeatherForecast   []WeatherDay     `json:"weather_forecast"`
	TotalCost         float64          `json:"total_cost"`
	Recommendations   []string         `json:"recommendations"`
	Errors            []string         `json:"errors"`
	CompletedSteps    []string         `json:"completed_steps"`
	ProcessingSeconds float64          `json:"processing_time_seconds"`
}
