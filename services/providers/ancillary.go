package providers

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// MockAncillaryProvider synthesizes add-on options: baggage, travel
// insurance and car rentals. Consumed by the conversational assistant, not
// by the planning workflow.
type MockAncillaryProvider struct{}

func NewMockAncillaryProvider() *MockAncillaryProvider {
	return &MockAncillaryProvider{}
}

// BaggageOptions returns baggage tiers for a flight.
func (p *MockAncillaryProvider) BaggageOptions(ctx context.Context, flightID string, passengers int) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if passengers < 1 {
		passengers = 1
	}

	tiers := []map[string]any{
		{
			"id":          "BAG-" + uuid.New().String()[:6],
			"type":        "extra_checked",
			"description": "Additional checked baggage (23kg)",
			"price":       50.0,
			"total_price": 50.0 * float64(passengers),
		},
		{
			"id":          "BAG-" + uuid.New().String()[:6],
			"type":        "heavy_bag",
			"description": "Heavy baggage (23-32kg)",
			"price":       75.0,
			"total_price": 75.0 * float64(passengers),
		},
		{
			"id":          "BAG-" + uuid.New().String()[:6],
			"type":        "sports_equipment",
			"description": "Sports equipment (ski, golf, bicycle)",
			"price":       100.0,
			"total_price": 100.0 * float64(passengers),
		},
	}

	return map[string]any{
		"flight_id":  flightID,
		"passengers": passengers,
		"included":   "1 x 23kg checked, 1 x 8kg cabin",
		"options":    tiers,
		"currency":   "USD",
	}, nil
}

// InsurancePlans returns travel insurance quotes for a trip.
func (p *MockAncillaryProvider) InsurancePlans(ctx context.Context, destination string, days, travelers int) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}
	if travelers < 1 {
		travelers = 1
	}

	perDay := []struct {
		name string
		rate float64
	}{
		{"Basic", 3.5},
		{"Standard", 6.0},
		{"Premium", 11.0},
	}

	plans := make([]map[string]any, 0, len(perDay))
	for _, tier := range perDay {
		plans = append(plans, map[string]any{
			"id":          "INS-" + uuid.New().String()[:6],
			"plan":        tier.name,
			"price":       tier.rate * float64(days) * float64(travelers),
			"coverage":    fmt.Sprintf("%s coverage for %d day(s), %d traveler(s)", tier.name, days, travelers),
			"currency":    "USD",
			"cancellable": tier.name != "Basic",
		})
	}

	return map[string]any{
		"destination": destination,
		"plans":       plans,
	}, nil
}

// CarRentals returns rental car classes available at the destination.
func (p *MockAncillaryProvider) CarRentals(ctx context.Context, city string, days int) (map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if days < 1 {
		days = 1
	}

	classes := []struct {
		class string
		daily float64
	}{
		{"Economy", 35},
		{"Compact", 42},
		{"SUV", 68},
		{"Luxury", 120},
	}

	cars := make([]map[string]any, 0, len(classes))
	for _, c := range classes {
		daily := c.daily + float64(rand.Intn(15))
		cars = append(cars, map[string]any{
			"id":                "CAR-" + uuid.New().String()[:6],
			"class":             c.class,
			"price_daily":       daily,
			"price_total":       daily * float64(days),
			"currency":          "USD",
			"unlimited_mileage": c.class != "Luxury",
		})
	}

	return map[string]any{
		"city":    city,
		"days":    days,
		"options": cars,
	}, nil
}
