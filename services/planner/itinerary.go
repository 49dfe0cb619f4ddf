package planner

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"tripwise/models"
)

// GenerateItinerary aggregates all gathered results into a narrative plan.
// It only runs for full trip planning with at least one flight or hotel
// result; the routing layer enforces that.
func (n *Nodes) GenerateItinerary(ctx context.Context, state *models.PlanningState) Update {
	flightInfo, costFlight := n.flightSummary(state)
	hotelInfo := n.hotelSummary(state)
	weatherInfo := weatherSummary(state.WeatherForecast)
	activitiesInfo := activitiesSummary(state.ActivityOptions)

	budgetText := "Not specified"
	if state.Budget != nil {
		budgetText = fmt.Sprintf("$%.2f", *state.Budget)
	}

	prompt := fmt.Sprintf(itineraryPrompt,
		orNA(state.Origin),
		orNA(state.Destination),
		orNA(state.DepartureDate),
		orNA(state.ReturnDate),
		state.Passengers,
		budgetText,
		flightInfo,
		hotelInfo,
		weatherInfo,
		activitiesInfo,
	)

	itinerary, err := n.LLM.Complete(ctx, prompt)
	if err != nil {
		return Update{
			Errors:         []string{fmt.Sprintf("itinerary generation error: %v", err)},
			CurrentStep:    StepItineraryGeneration,
			CompletedSteps: []string{StepItineraryGeneration},
		}
	}

	// Approximate total: flight fare per passenger times headcount, plus
	// the hotel's precomputed stay total. A heuristic, not a quote.
	totalCost := 0.0
	if costFlight != nil {
		totalCost += costFlight.Price * float64(state.Passengers)
	}
	if state.SelectedHotel != nil {
		totalCost += state.SelectedHotel.TotalPrice
	} else if len(state.HotelOptions) > 0 {
		totalCost += state.HotelOptions[0].TotalPrice
	}

	recommendations := []string{}
	if state.Budget != nil && totalCost > 0 {
		remaining := *state.Budget - totalCost
		if remaining > 0 {
			recommendations = append(recommendations,
				fmt.Sprintf("You have $%.2f remaining for activities and dining", remaining))
		} else {
			recommendations = append(recommendations,
				fmt.Sprintf("Current selections exceed budget by $%.2f", -remaining))
		}
	}
	if len(state.WeatherForecast) > 0 {
		var sum float64
		for _, day := range state.WeatherForecast {
			sum += day.TempHigh
		}
		avg := sum / float64(len(state.WeatherForecast))
		if avg < 50 {
			recommendations = append(recommendations, "Pack warm clothing - temperatures will be cool")
		} else if avg > 80 {
			recommendations = append(recommendations, "Pack light, breathable clothing - warm weather expected")
		}
	}

	return Update{
		Itinerary:       &itinerary,
		TotalCost:       floatPtr(totalCost),
		Recommendations: recommendations,
		CurrentStep:     StepItineraryGeneration,
		CompletedSteps:  []string{StepItineraryGeneration},
	}
}

// flightSummary renders the chosen flight for the prompt and returns the
// flight used for cost computation. Without an explicit selection the
// cheapest option stands in as the best available one.
func (n *Nodes) flightSummary(state *models.PlanningState) (string, *models.FlightOption) {
	flight := state.SelectedFlight
	label := ""
	if flight == nil && len(state.FlightOptions) > 0 {
		best := lo.MinBy(state.FlightOptions, func(a, b models.FlightOption) bool {
			return a.Price < b.Price
		})
		flight = &best
		label = " (Best available option)"
	}
	if flight == nil {
		return "No flight options available", nil
	}

	summary := fmt.Sprintf(`- Airline: %s
- Departure: %s
- Arrival: %s
- Price: $%.2f%s
- Duration: %d minutes
- Stops: %d`,
		flight.Airline, flight.DepartureTime, flight.ArrivalTime,
		flight.Price, label, flight.DurationMinutes, flight.Stops)
	return summary, flight
}

// hotelSummary renders the chosen hotel for the prompt. Without an explicit
// selection the highest-rated option stands in as the best available one.
func (n *Nodes) hotelSummary(state *models.PlanningState) string {
	hotel := state.SelectedHotel
	label := ""
	if hotel == nil && len(state.HotelOptions) > 0 {
		best := lo.MaxBy(state.HotelOptions, func(a, b models.HotelOption) bool {
			return a.Rating > b.Rating
		})
		hotel = &best
		label = " (Best rated option)"
	}
	if hotel == nil {
		return "No hotel options available"
	}

	return fmt.Sprintf(`- Hotel: %s
- Rating: %.1f★%s
- Price per night: $%.2f
- Total: $%.2f
- Amenities: %s`,
		hotel.Name, hotel.Rating, label, hotel.PricePerNight,
		hotel.TotalPrice, strings.Join(hotel.Amenities, ", "))
}

func weatherSummary(forecast []models.WeatherDay) string {
	if len(forecast) == 0 {
		return "Weather forecast not available"
	}
	lines := make([]string, 0, len(forecast))
	for _, day := range forecast {
		lines = append(lines, fmt.Sprintf("- %s: %s, %.0f°F - %.0f°F, Precipitation: %.0f%%",
			day.Date, day.Condition, day.TempLow, day.TempHigh, day.PrecipitationChance))
	}
	return strings.Join(lines, "\n")
}

func activitiesSummary(options []models.ActivityOption) string {
	if len(options) == 0 {
		return "No activity recommendations available"
	}
	limit := len(options)
	if limit > 5 {
		limit = 5
	}
	lines := make([]string, 0, limit)
	for _, a := range options[:limit] {
		lines = append(lines, fmt.Sprintf("- %s (%s): $%.2f, %.1f hours, Rating: %.1f★",
			a.Name, a.Category, a.Price, a.DurationHours, a.Rating))
	}
	return strings.Join(lines, "\n")
}

func orNA(s *string) string {
	if s == nil || *s == "" {
		return "N/A"
	}
	return *s
}
