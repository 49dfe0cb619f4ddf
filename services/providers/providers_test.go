package providers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unwrap coerces either result shape into the record list.
func unwrap(t *testing.T, result any, key string) []map[string]any {
	t.Helper()
	switch v := result.(type) {
	case []map[string]any:
		return v
	case map[string]any:
		records, ok := v[key].([]map[string]any)
		require.True(t, ok, "wrapped result missing %q list", key)
		return records
	default:
		t.Fatalf("unexpected result shape %T", result)
		return nil
	}
}

func TestFlightProviderGeneratesOptions(t *testing.T) {
	p := NewMockFlightProvider()

	result, err := p.SearchFlights(context.Background(), FlightParams{
		Origin:        "Istanbul",
		Destination:   "Berlin",
		DepartureDate: "2026-09-10",
		Passengers:    2,
		CabinClass:    "economy",
	})
	require.NoError(t, err)

	records := unwrap(t, result, "flights")
	require.NotEmpty(t, records)
	for _, rec := range records {
		assert.NotEmpty(t, rec["flight_id"])
		assert.NotEmpty(t, rec["airline"])
		assert.Equal(t, "ISTANBUL", rec["origin"])
		assert.Greater(t, rec["price"].(float64), 0.0)
		assert.Equal(t, "USD", rec["currency"])
	}
}

func TestFlightProviderRequiresRoute(t *testing.T) {
	p := NewMockFlightProvider()
	_, err := p.SearchFlights(context.Background(), FlightParams{Origin: "Istanbul"})
	assert.Error(t, err)
}

func TestFlightProviderHonorsMaxPrice(t *testing.T) {
	p := NewMockFlightProvider()
	result, err := p.SearchFlights(context.Background(), FlightParams{
		Origin:        "Istanbul",
		Destination:   "Ankara",
		DepartureDate: "2026-09-11",
		CabinClass:    "first",
		MaxPrice:      200,
	})
	require.NoError(t, err)
	for _, rec := range unwrap(t, result, "flights") {
		assert.LessOrEqual(t, rec["price"].(float64), 200.0)
	}
}

func TestFlightProviderResultsStableAcrossCalls(t *testing.T) {
	p := NewMockFlightProvider()
	params := FlightParams{
		Origin:        "Madrid",
		Destination:   "Lisbon",
		DepartureDate: "2026-11-02",
		Passengers:    1,
	}

	first, err := p.SearchFlights(context.Background(), params)
	require.NoError(t, err)
	second, err := p.SearchFlights(context.Background(), params)
	require.NoError(t, err)

	a := unwrap(t, first, "flights")
	b := unwrap(t, second, "flights")
	require.Equal(t, len(a), len(b))
	assert.Equal(t, a[0]["flight_id"], b[0]["flight_id"], "repeat searches hit the memoized result")
}

func TestFlightProviderCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewMockFlightProvider().SearchFlights(ctx, FlightParams{
		Origin: "A", Destination: "B", DepartureDate: "2026-01-01",
	})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestHotelProviderRespectsMinRatingAndPriceCap(t *testing.T) {
	p := NewMockHotelProvider()
	result, err := p.SearchHotels(context.Background(), HotelParams{
		City:             "Vienna",
		CheckIn:          "2026-06-01",
		CheckOut:         "2026-06-05",
		Guests:           2,
		MinRating:        4,
		MaxPricePerNight: 150,
	})
	require.NoError(t, err)

	records := unwrap(t, result, "hotels")
	require.NotEmpty(t, records)
	for _, rec := range records {
		assert.GreaterOrEqual(t, rec["rating"].(float64), 4.0)
		assert.LessOrEqual(t, rec["price_per_night"].(float64), 150.0)
		assert.NotEmpty(t, rec["amenities"])
	}
}

func TestHotelProviderRequiresCity(t *testing.T) {
	_, err := NewMockHotelProvider().SearchHotels(context.Background(), HotelParams{})
	assert.Error(t, err)
}

func TestWeatherProviderForecastLength(t *testing.T) {
	p := NewMockWeatherProvider()
	result, err := p.GetForecast(context.Background(), WeatherParams{
		Location:  "Oslo",
		StartDate: "2026-03-01",
		Days:      5,
	})
	require.NoError(t, err)

	records := unwrap(t, result, "forecast")
	require.Len(t, records, 5)
	assert.Equal(t, "2026-03-01", records[0]["date"])
	assert.Equal(t, "2026-03-05", records[4]["date"])
	for _, rec := range records {
		high := rec["temp_high"].(float64)
		low := rec["temp_low"].(float64)
		assert.Greater(t, high, low)
		assert.Equal(t, "fahrenheit", rec["unit"])
	}
}

func TestWeatherProviderCapsDays(t *testing.T) {
	p := NewMockWeatherProvider()
	result, err := p.GetForecast(context.Background(), WeatherParams{
		Location:  "Reykjavik",
		StartDate: "2026-03-01",
		Days:      30,
	})
	require.NoError(t, err)
	assert.Len(t, unwrap(t, result, "forecast"), 14)
}

func TestWeatherProviderRequiresLocation(t *testing.T) {
	_, err := NewMockWeatherProvider().GetForecast(context.Background(), WeatherParams{})
	assert.Error(t, err)
}

func TestActivityProviderFiltersByCategory(t *testing.T) {
	p := NewMockActivityProvider()
	result, err := p.SearchActivities(context.Background(), ActivityParams{
		Location:   "Barcelona",
		Categories: []string{"museums"},
	})
	require.NoError(t, err)

	records := unwrap(t, result, "activities")
	require.NotEmpty(t, records)
	for _, rec := range records {
		assert.Equal(t, "museums", rec["type"])
		assert.Equal(t, "Barcelona", rec["location"])
	}
}

func TestActivityProviderRequiresLocation(t *testing.T) {
	_, err := NewMockActivityProvider().SearchActivities(context.Background(), ActivityParams{})
	assert.Error(t, err)
}

func TestAncillaryBaggageOptions(t *testing.T) {
	p := NewMockAncillaryProvider()
	result, err := p.BaggageOptions(context.Background(), "FL-123", 2)
	require.NoError(t, err)

	assert.Equal(t, "FL-123", result["flight_id"])
	options, ok := result["options"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, options, 3)
	for _, opt := range options {
		price := opt["price"].(float64)
		assert.Equal(t, price*2, opt["total_price"].(float64))
	}
}

func TestAncillaryInsurancePlansScaleWithTrip(t *testing.T) {
	p := NewMockAncillaryProvider()
	result, err := p.InsurancePlans(context.Background(), "Paris", 7, 2)
	require.NoError(t, err)

	plans, ok := result["plans"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, plans, 3)
	assert.Equal(t, 3.5*7*2, plans[0]["price"].(float64))
}

func TestAncillaryCarRentals(t *testing.T) {
	p := NewMockAncillaryProvider()
	result, err := p.CarRentals(context.Background(), "Rome", 3)
	require.NoError(t, err)

	cars, ok := result["options"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, cars, 4)
	for _, car := range cars {
		assert.Equal(t, car["price_daily"].(float64)*3, car["price_total"].(float64))
	}
}

func TestAddMinutesWrapsMidnight(t *testing.T) {
	assert.Equal(t, "01:30", addMinutes("23:00", 150))
	assert.Equal(t, "10:45", addMinutes("09:15", 90))
	assert.Equal(t, "garbage", addMinutes("garbage", 60))
}
