package planner

import (
	"context"
	"fmt"
	"time"

	"tripwise/models"
	"tripwise/services/providers"
)

// The four service nodes share one contract: gate on the routing flag,
// validate required fields, call the provider, normalize, truncate.
// A missing field or a provider failure appends one error and yields zero
// results; it never blocks sibling nodes or the final response.

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func prefString(prefs map[string]any, key, fallback string) string {
	if v, ok := prefs[key].(string); ok && v != "" {
		return v
	}
	return fallback
}

func prefFloat(prefs map[string]any, key string, fallback float64) float64 {
	switch v := prefs[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

func prefStrings(prefs map[string]any, keys ...string) []string {
	for _, key := range keys {
		switch v := prefs[key].(type) {
		case []string:
			if len(v) > 0 {
				return v
			}
		case []any:
			out := make([]string, 0, len(v))
			for _, item := range v {
				if s, ok := item.(string); ok {
					out = append(out, s)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
	}
	return nil
}

func nightsBetween(checkIn, checkOut string) (int, error) {
	in, err := time.Parse("2006-01-02", checkIn)
	if err != nil {
		return 0, err
	}
	out, err := time.Parse("2006-01-02", checkOut)
	if err != nil {
		return 0, err
	}
	return int(out.Sub(in).Hours() / 24), nil
}

// SearchFlights finds flight options when the routing flag asks for them.
func (n *Nodes) SearchFlights(ctx context.Context, state *models.PlanningState) Update {
	if !state.RequiresFlights {
		return Update{CompletedSteps: []string{StepFlightSearch + skippedSuffix}}
	}

	origin := deref(state.Origin)
	destination := deref(state.Destination)
	departure := deref(state.DepartureDate)
	if origin == "" || destination == "" || departure == "" {
		return Update{
			Errors:         []string{"missing required flight parameters: origin, destination, or departure_date"},
			CurrentStep:    StepFlightSearch,
			CompletedSteps: []string{StepFlightSearch},
		}
	}

	cabin := prefString(state.Preferences, "cabin_class", "economy")
	params := providers.FlightParams{
		Origin:        origin,
		Destination:   destination,
		DepartureDate: departure,
		ReturnDate:    deref(state.ReturnDate),
		Passengers:    state.Passengers,
		CabinClass:    cabin,
	}
	if state.Budget != nil {
		params.MaxPrice = *state.Budget
	}

	n.Metrics.ObserveProviderCall("flights")
	result, err := n.Flights.SearchFlights(ctx, params)
	if err != nil {
		return Update{
			Errors:         []string{fmt.Sprintf("flight search error: %v", err)},
			CurrentStep:    StepFlightSearch,
			CompletedSteps: []string{StepFlightSearch},
		}
	}

	records := capRecords(recordList(result, "flights"), n.Cfg.MaxFlightOptions)
	options := make([]models.FlightOption, 0, len(records))
	for _, rec := range records {
		options = append(options, models.FlightOption{
			ID:              fieldString(rec, "flight_id", "id"),
			Airline:         fieldString(rec, "airline"),
			Origin:          origin,
			Destination:     destination,
			DepartureTime:   fieldString(rec, "departure_time"),
			ArrivalTime:     fieldString(rec, "arrival_time"),
			DurationMinutes: int(fieldNumber(rec, "duration", "duration_minutes")),
			Price:           fieldNumber(rec, "price", "price_per_person"),
			Stops:           int(fieldNumber(rec, "stops")),
			CabinClass:      cabin,
		})
	}

	return Update{
		FlightOptions:  options,
		CurrentStep:    StepFlightSearch,
		CompletedSteps: []string{StepFlightSearch},
	}
}

// SearchHotels finds hotel options when the routing flag asks for them.
func (n *Nodes) SearchHotels(ctx context.Context, state *models.PlanningState) Update {
	if !state.RequiresHotels {
		return Update{CompletedSteps: []string{StepHotelSearch + skippedSuffix}}
	}

	destination := deref(state.Destination)
	checkIn := deref(state.DepartureDate)
	checkOut := deref(state.ReturnDate)
	if destination == "" || checkIn == "" || checkOut == "" {
		return Update{
			Errors:         []string{"missing required hotel parameters: destination or dates"},
			CurrentStep:    StepHotelSearch,
			CompletedSteps: []string{StepHotelSearch},
		}
	}

	nights, err := nightsBetween(checkIn, checkOut)
	if err != nil || nights <= 0 {
		return Update{
			Errors:         []string{"invalid date range for hotel stay"},
			CurrentStep:    StepHotelSearch,
			CompletedSteps: []string{StepHotelSearch},
		}
	}

	params := providers.HotelParams{
		City:      destination,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    state.Passengers,
		MinRating: prefFloat(state.Preferences, "hotel_rating", 3),
		Amenities: prefStrings(state.Preferences, "hotel_amenities"),
	}
	if state.Budget != nil {
		// Reserve a share of the total budget for accommodation.
		params.MaxPricePerNight = *state.Budget * n.Cfg.HotelBudgetShare / float64(nights)
	}

	n.Metrics.ObserveProviderCall("hotels")
	result, err := n.Hotels.SearchHotels(ctx, params)
	if err != nil {
		return Update{
			Errors:         []string{fmt.Sprintf("hotel search error: %v", err)},
			CurrentStep:    StepHotelSearch,
			CompletedSteps: []string{StepHotelSearch},
		}
	}

	records := capRecords(recordList(result, "hotels"), n.Cfg.MaxHotelOptions)
	options := make([]models.HotelOption, 0, len(records))
	for _, rec := range records {
		perNight := fieldNumber(rec, "price_per_night")
		options = append(options, models.HotelOption{
			ID:               fieldString(rec, "hotel_id", "id"),
			Name:             fieldString(rec, "name"),
			Location:         destination,
			Rating:           fieldNumber(rec, "rating"),
			PricePerNight:    perNight,
			TotalPrice:       perNight * float64(nights),
			Amenities:        fieldStrings(rec, "amenities"),
			DistanceToCenter: fieldNumber(rec, "distance_to_center"),
		})
	}

	return Update{
		HotelOptions:   options,
		CurrentStep:    StepHotelSearch,
		CompletedSteps: []string{StepHotelSearch},
	}
}

// CheckWeather fetches the destination forecast when the routing flag asks
// for it.
func (n *Nodes) CheckWeather(ctx context.Context, state *models.PlanningState) Update {
	if !state.RequiresWeather {
		return Update{CompletedSteps: []string{StepWeatherCheck + skippedSuffix}}
	}

	destination := deref(state.Destination)
	departure := deref(state.DepartureDate)
	if destination == "" || departure == "" {
		return Update{
			Errors:         []string{"missing required weather parameters: destination or departure_date"},
			CurrentStep:    StepWeatherCheck,
			CompletedSteps: []string{StepWeatherCheck},
		}
	}

	days := 7
	if ret := deref(state.ReturnDate); ret != "" {
		if nights, err := nightsBetween(departure, ret); err == nil && nights >= 0 {
			days = nights + 1
		}
	}
	if days > n.Cfg.MaxForecastDays && n.Cfg.MaxForecastDays > 0 {
		days = n.Cfg.MaxForecastDays
	}

	n.Metrics.ObserveProviderCall("weather")
	result, err := n.Weather.GetForecast(ctx, providers.WeatherParams{
		Location:  destination,
		StartDate: departure,
		Days:      days,
	})
	if err != nil {
		return Update{
			Errors:         []string{fmt.Sprintf("weather check error: %v", err)},
			CurrentStep:    StepWeatherCheck,
			CompletedSteps: []string{StepWeatherCheck},
		}
	}

	records := capRecords(recordList(result, "forecast", "daily"), n.Cfg.MaxForecastDays)
	forecast := make([]models.WeatherDay, 0, len(records))
	for _, rec := range records {
		forecast = append(forecast, models.WeatherDay{
			Date:                fieldString(rec, "date"),
			TempHigh:            fieldNumber(rec, "temp_high", "temperature_high"),
			TempLow:             fieldNumber(rec, "temp_low", "temperature_low"),
			Condition:           fieldString(rec, "condition"),
			PrecipitationChance: fieldNumber(rec, "precipitation", "precipitation_chance"),
			Recommendations:     fieldStrings(rec, "recommendations"),
		})
	}

	return Update{
		WeatherForecast: forecast,
		CurrentStep:     StepWeatherCheck,
		CompletedSteps:  []string{StepWeatherCheck},
	}
}

// SearchActivities finds activities at the destination when the routing
// flag asks for them.
func (n *Nodes) SearchActivities(ctx context.Context, state *models.PlanningState) Update {
	if !state.RequiresActivities {
		return Update{CompletedSteps: []string{StepActivitySearch + skippedSuffix}}
	}

	destination := deref(state.Destination)
	if destination == "" {
		return Update{
			Errors:         []string{"missing destination for activity search"},
			CurrentStep:    StepActivitySearch,
			CompletedSteps: []string{StepActivitySearch},
		}
	}

	params := providers.ActivityParams{
		Location:   destination,
		Categories: prefStrings(state.Preferences, "activities", "activity_types"),
	}
	if state.Budget != nil {
		// Reserve a share of the total budget for activities.
		params.MaxPrice = *state.Budget * n.Cfg.ActivityBudgetShare
	}

	n.Metrics.ObserveProviderCall("activities")
	result, err := n.Activities.SearchActivities(ctx, params)
	if err != nil {
		return Update{
			Errors:         []string{fmt.Sprintf("activity search error: %v", err)},
			CurrentStep:    StepActivitySearch,
			CompletedSteps: []string{StepActivitySearch},
		}
	}

	records := capRecords(recordList(result, "activities"), n.Cfg.MaxActivityOptions)
	options := make([]models.ActivityOption, 0, len(records))
	for _, rec := range records {
		options = append(options, models.ActivityOption{
			ID:            fieldString(rec, "id", "activity_id"),
			Name:          fieldString(rec, "name"),
			Category:      fieldString(rec, "type", "category"),
			Description:   fieldString(rec, "description"),
			Price:         fieldNumber(rec, "price"),
			DurationHours: fieldNumber(rec, "duration", "duration_hours"),
			Rating:        fieldNumber(rec, "rating"),
		})
	}

	return Update{
		ActivityOptions: options,
		CurrentStep:     StepActivitySearch,
		CompletedSteps:  []string{StepActivitySearch},
	}
}
