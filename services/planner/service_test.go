package planner

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"tripwise/models"
)

func TestPlanTripPreSeedsStateAndReturnsResult(t *testing.T) {
	llm := routedLLM(sampleIntentJSON)
	fl := &fakeFlights{result: []map[string]any{flightRecord("FL-1", 450)}}
	ho := &fakeHotels{result: []map[string]any{{
		"hotel_id": "HT-1", "name": "Grand Palace Hotel",
		"rating": 4.5, "price_per_night": 180.0,
	}}}
	svc := NewService(testGraph(testNodes(llm, fl, ho, nil, nil)), nil, zap.NewNop())

	result, err := svc.PlanTrip(context.Background(), models.TripPlanRequest{
		Query:      "Plan a week in Paris for two",
		Passengers: 2,
	})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, models.IntentPlanTrip, result.Intent)
	assert.NotEmpty(t, result.Response)
	assert.Len(t, result.FlightOptions, 1)
	assert.Len(t, result.HotelOptions, 1)
	assert.NotNil(t, result.Itinerary)
	assert.Greater(t, result.TotalCost, 0.0)
	assert.GreaterOrEqual(t, result.ProcessingSeconds, 0.0)
}

func TestPlanTripSuccessFalseWhenErrorsRecorded(t *testing.T) {
	llm := routedLLM(sampleIntentJSON)
	fl := &fakeFlights{err: errTest("down")}
	svc := NewService(testGraph(testNodes(llm, fl, nil, nil, nil)), nil, zap.NewNop())

	result, err := svc.PlanTrip(context.Background(), models.TripPlanRequest{Query: "Plan a trip"})

	require.NoError(t, err, "workflow failures degrade, they do not surface as Go errors")
	assert.False(t, result.Success)
	assert.NotEmpty(t, result.Errors)
	assert.NotEmpty(t, result.Response)
}

func TestSearchFlightsSynthesizesQuery(t *testing.T) {
	var seenQuery string
	llm := &fakeLLM{fn: func(prompt string) (string, error) {
		if strings.Contains(prompt, "intent classifier") {
			seenQuery = prompt
			return `{"intent": "search_flights", "origin": "Boston", "destination": "Denver",
				"departure_date": "2026-10-01", "requires_flights": true}`, nil
		}
		return "done", nil
	}}
	fl := &fakeFlights{result: []map[string]any{flightRecord("FL-1", 220)}}
	svc := NewService(testGraph(testNodes(llm, fl, nil, nil, nil)), nil, zap.NewNop())

	ret := "2026-10-08"
	result, err := svc.SearchFlights(context.Background(), models.FlightSearchRequest{
		Origin:        "Boston",
		Destination:   "Denver",
		DepartureDate: "2026-10-01",
		ReturnDate:    &ret,
		Passengers:    2,
	})

	require.NoError(t, err)
	assert.Contains(t, seenQuery, "Find flights from Boston to Denver on 2026-10-01 returning 2026-10-08 for 2 passenger(s)")
	assert.Len(t, result.FlightOptions, 1)
	assert.Equal(t, models.IntentSearchFlights, result.Intent)
}

func TestSearchHotelsDefaultsToOneGuest(t *testing.T) {
	llm := routedLLM(`{"intent": "search_hotels", "destination": "Rome",
		"departure_date": "2026-05-01", "return_date": "2026-05-04",
		"requires_hotels": true}`)
	ho := &fakeHotels{result: []map[string]any{{
		"hotel_id": "HT-1", "name": "City Inn", "rating": 4.0, "price_per_night": 95.0,
	}}}
	svc := NewService(testGraph(testNodes(llm, nil, ho, nil, nil)), nil, zap.NewNop())

	result, err := svc.SearchHotels(context.Background(), models.HotelSearchRequest{
		Destination: "Rome",
		CheckIn:     "2026-05-01",
		CheckOut:    "2026-05-04",
	})

	require.NoError(t, err)
	assert.Equal(t, 1, ho.params.Guests)
	require.Len(t, result.HotelOptions, 1)
	assert.Equal(t, 95.0*3, result.HotelOptions[0].TotalPrice)
}

func TestCheckWeatherRunsWeatherOnly(t *testing.T) {
	llm := routedLLM(`{"intent": "check_weather", "destination": "Tokyo",
		"departure_date": "2026-04-10", "requires_weather": true}`)
	we := &fakeWeather{result: []map[string]any{{
		"date": "2026-04-10", "temp_high": 65.0, "temp_low": 52.0, "condition": "Sunny",
	}}}
	fl := &fakeFlights{}
	svc := NewService(testGraph(testNodes(llm, fl, nil, we, nil)), nil, zap.NewNop())

	result, err := svc.CheckWeather(context.Background(), models.WeatherRequest{
		Destination: "Tokyo",
		StartDate:   "2026-04-10",
	})

	require.NoError(t, err)
	assert.Len(t, result.WeatherForecast, 1)
	assert.Zero(t, fl.calls)
	assert.Nil(t, result.Itinerary)
}

func TestPlanCacheKeyDeterministic(t *testing.T) {
	a := models.TripPlanRequest{Query: "Plan a trip to Paris", Passengers: 2}
	b := models.TripPlanRequest{Query: "Plan a trip to Paris", Passengers: 2}
	c := models.TripPlanRequest{Query: "Plan a trip to Rome", Passengers: 2}

	assert.Equal(t, planCacheKey(a), planCacheKey(b))
	assert.NotEqual(t, planCacheKey(a), planCacheKey(c))
	assert.Contains(t, planCacheKey(a), "planner:result:")
}
