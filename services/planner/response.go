package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"
	"go.uber.org/zap"

	"tripwise/models"
)

const fallbackResponse = "I apologize, but I encountered an error while generating a response. Please try again."

// GenerateResponse is the terminal node. It always produces a user-facing
// reply, whatever happened upstream; a completion failure substitutes a
// fixed apology rather than propagating.
func (n *Nodes) GenerateResponse(ctx context.Context, state *models.PlanningState) Update {
	summary := searchSummary(state)

	itineraryText := "No itinerary generated yet."
	if state.Itinerary != nil {
		itineraryText = *state.Itinerary
	}
	errorsText := "No errors."
	if len(state.Errors) > 0 {
		errorsText = strings.Join(state.Errors, "\n")
	}

	prompt := fmt.Sprintf(responsePrompt,
		state.Query, state.Intent, summary, itineraryText, errorsText)

	reply, err := n.LLM.Complete(ctx, prompt)
	if err != nil {
		n.Logger.Warn("response generation call failed", zap.Error(err))
		return Update{
			Response:       strPtr(fallbackResponse),
			Errors:         []string{fmt.Sprintf("response generation error: %v", err)},
			CurrentStep:    StepResponseGeneration,
			CompletedSteps: []string{StepResponseGeneration},
		}
	}

	return Update{
		Response:       &reply,
		CurrentStep:    StepResponseGeneration,
		CompletedSteps: []string{StepResponseGeneration},
	}
}

// searchSummary renders short bullet lines for the first few entries of
// each non-empty result list.
func searchSummary(state *models.PlanningState) string {
	var parts []string

	if len(state.FlightOptions) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d flight options.", len(state.FlightOptions)))
		for i, f := range lo.Slice(state.FlightOptions, 0, 3) {
			parts = append(parts, fmt.Sprintf("- Flight %d: %s to %s, $%.2f, %s",
				i+1, f.Airline, f.Destination, f.Price, f.DepartureTime))
		}
	}

	if len(state.HotelOptions) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d hotel options.", len(state.HotelOptions)))
		for i, h := range lo.Slice(state.HotelOptions, 0, 3) {
			parts = append(parts, fmt.Sprintf("- Hotel %d: %s, %.1f stars, $%.2f/night",
				i+1, h.Name, h.Rating, h.PricePerNight))
		}
	}

	if len(state.ActivityOptions) > 0 {
		parts = append(parts, fmt.Sprintf("Found %d activity options.", len(state.ActivityOptions)))
		for i, a := range lo.Slice(state.ActivityOptions, 0, 3) {
			parts = append(parts, fmt.Sprintf("- Activity %d: %s, $%.2f", i+1, a.Name, a.Price))
		}
	}

	if len(state.WeatherForecast) > 0 {
		parts = append(parts, fmt.Sprintf("Weather forecast available for %d days.", len(state.WeatherForecast)))
		day := state.WeatherForecast[0]
		parts = append(parts, fmt.Sprintf("- %s: %s, %.0f°F - %.0f°F",
			day.Date, day.Condition, day.TempLow, day.TempHigh))
	}

	if len(parts) == 0 {
		return "No specific search results."
	}
	return strings.Join(parts, "\n")
}
