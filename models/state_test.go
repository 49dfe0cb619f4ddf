package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseIntent(t *testing.T) {
	cases := map[string]Intent{
		"plan_trip":         IntentPlanTrip,
		"search_flights":    IntentSearchFlights,
		"search_hotels":     IntentSearchHotels,
		"search_activities": IntentSearchActivities,
		"check_weather":     IntentCheckWeather,
		"book":              IntentBook,
		"general":           IntentGeneral,
		"":                  IntentGeneral,
		"teleport":          IntentGeneral,
		"PLAN_TRIP":         IntentGeneral,
	}
	for raw, want := range cases {
		assert.Equal(t, want, ParseIntent(raw), "raw=%q", raw)
	}
}

func TestIsSingleSearch(t *testing.T) {
	assert.True(t, IntentSearchFlights.IsSingleSearch())
	assert.True(t, IntentSearchHotels.IsSingleSearch())
	assert.True(t, IntentSearchActivities.IsSingleSearch())
	assert.True(t, IntentCheckWeather.IsSingleSearch())
	assert.False(t, IntentPlanTrip.IsSingleSearch())
	assert.False(t, IntentBook.IsSingleSearch())
	assert.False(t, IntentGeneral.IsSingleSearch())
}

func TestNewPlanningStateDefaults(t *testing.T) {
	state := NewPlanningState("hello")
	assert.Equal(t, "hello", state.Query)
	assert.Equal(t, 1, state.Passengers)
	assert.Equal(t, IntentGeneral, state.Intent)
	assert.NotNil(t, state.Errors)
	assert.NotNil(t, state.CompletedSteps)
	assert.Empty(t, state.FlightOptions)
}

func TestHasStep(t *testing.T) {
	state := NewPlanningState("q")
	state.CompletedSteps = append(state.CompletedSteps, "flight_search")
	assert.True(t, state.HasStep("flight_search"))
	assert.False(t, state.HasStep("hotel_search"))
}
