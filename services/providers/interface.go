package providers

import "context"

// The search-provider boundary is deliberately loose: every provider takes
// a flat parameter bag and returns either a bare list of records or a map
// wrapping the list under a provider-chosen key. Callers must normalize.

// FlightParams is the parameter bag for a flight search.
type FlightParams struct {
	Origin        string
	Destination   string
	DepartureDate string
	ReturnDate    string
	Passengers    int
	CabinClass    string
	MaxPrice      float64
}

// HotelParams is the parameter bag for a hotel search.
type HotelParams struct {
	City             string
	CheckIn          string
	CheckOut         string
	Guests           int
	MinRating        float64
	MaxPricePerNight float64
	Amenities        []string
}

// WeatherParams is the parameter bag for a forecast request.
type WeatherParams struct {
	Location  string
	StartDate string
	Days      int
}

// ActivityParams is the parameter bag for an activity search.
type ActivityParams struct {
	Location   string
	Categories []string
	MaxPrice   float64
}

// FlightSearcher searches for flights.
type FlightSearcher interface {
	SearchFlights(ctx context.Context, params FlightParams) (any, error)
}

// HotelSearcher searches for hotels.
type HotelSearcher interface {
	SearchHotels(ctx context.Context, params HotelParams) (any, error)
}

// WeatherSearcher fetches a daily forecast.
type WeatherSearcher interface {
	GetForecast(ctx context.Context, params WeatherParams) (any, error)
}

// ActivitySearcher searches for activities and attractions.
type ActivitySearcher interface {
	SearchActivities(ctx context.Context, params ActivityParams) (any, error)
}
