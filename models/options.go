package models

// FlightOption is a normalized flight search result.
type FlightOption struct {
	ID              string  `json:"flight_id"`
	Airline         string  `json:"airline"`
	Origin          string  `json:"origin"`
	Destination     string  `json:"destination"`
	DepartureTime   string  `json:"departure_time"`
	ArrivalTime     string  `json:"arrival_time"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Stops           int     `json:"stops"`
	CabinClass      string  `json:"cabin_class"`
}

// HotelOption is a normalized hotel search result.
type HotelOption struct {
	ID               string   `json:"hotel_id"`
	Name             string   `json:"name"`
	Location         string   `json:"location"`
	Rating           float64  `json:"rating"`
	PricePerNight    float64  `json:"price_per_night"`
	TotalPrice       float64  `json:"total_price"`
	Amenities        []string `json:"amenities"`
	DistanceToCenter float64  `json:"distance_to_center"`
}

// ActivityOption is a normalized activity or attraction result.
type ActivityOption struct {
	ID            string  `json:"activity_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   string  `json:"description"`
	Price         float64 `json:"price"`
	DurationHours float64 `json:"duration_hours"`
	Rating        float64 `json:"rating"`
}

// WeatherDay is one day of normalized forecast data. Temperatures are in
// display-unit degrees Fahrenheit.
type WeatherDay struct {
	Date                string   `json:"date"`
	TempHigh            float64  `json:"temperature_high"`
	TempLow             float64  `json:"temperature_low"`
	Condition           string   `json:"condition"`
	PrecipitationChance float64  `json:"precipitation_chance"`
	Recommendations     []string `json:"recommendations,omitempty"`
}
