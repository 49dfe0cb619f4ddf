package planner

import (
	"context"

	"tripwise/models"
)

// Service is the planning workflow's public surface. Every operation runs
// the same graph end to end and always yields a result with a user-facing
// response, regardless of upstream failures.
type Service interface {
	PlanTrip(ctx context.Context, req models.TripPlanRequest) (*models.TripPlanResult, error)
	SearchFlights(ctx context.Context, req models.FlightSearchRequest) (*models.TripPlanResult, error)
	SearchHotels(ctx context.Context, req models.HotelSearchRequest) (*models.TripPlanResult, error)
	SearchActivities(ctx context.Context, req models.ActivitySearchRequest) (*models.TripPlanResult, error)
	CheckWeather(ctx context.Context, req models.WeatherRequest) (*models.TripPlanResult, error)
}
