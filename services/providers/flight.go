package providers

import (
	"context"
	"fmt"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// MockFlightProvider synthesizes randomized flight results. No real airline
// API is involved; prices and schedules are plausible but fictional.
type MockFlightProvider struct{}

func NewMockFlightProvider() *MockFlightProvider {
	return &MockFlightProvider{}
}

var airlines = []string{
	"Turkish Airlines",
	"Lufthansa",
	"British Airways",
	"Air France",
	"Pegasus",
}

var basePricesByCabin = map[string]float64{
	"economy":  150,
	"business": 450,
	"first":    900,
}

func (p *MockFlightProvider) SearchFlights(ctx context.Context, params FlightParams) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.Origin == "" || params.Destination == "" {
		return nil, fmt.Errorf("flight provider: origin and destination are required")
	}

	key := fmt.Sprintf("flights|%s|%s|%s|%s|%d|%s",
		params.Origin, params.Destination, params.DepartureDate,
		params.ReturnDate, params.Passengers, params.CabinClass)

	records, ok := cached(key)
	if !ok {
		records = p.generate(params)
		store(key, records)
	}

	// The boundary is untyped on purpose: sometimes the list comes back
	// bare, sometimes wrapped. Callers normalize either shape.
	if rand.Intn(2) == 0 {
		return records, nil
	}
	return map[string]any{"flights": records}, nil
}

func (p *MockFlightProvider) generate(params FlightParams) []map[string]any {
	cabin := params.CabinClass
	if cabin == "" {
		cabin = "economy"
	}
	passengers := params.Passengers
	if passengers < 1 {
		passengers = 1
	}

	base, ok := basePricesByCabin[cabin]
	if !ok {
		base = basePricesByCabin["economy"]
	}

	count := 3 + rand.Intn(3)
	records := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		price := base + float64(rand.Intn(151)-50)
		if params.MaxPrice > 0 && price > params.MaxPrice {
			price = params.MaxPrice * (0.7 + rand.Float64()*0.3)
		}
		durationMinutes := 120 + rand.Intn(361)
		departure := fmt.Sprintf("%02d:%s", 6+rand.Intn(17), []string{"00", "15", "30", "45"}[rand.Intn(4)])

		records = append(records, map[string]any{
			"flight_id":       "FL-" + uuid.New().String()[:8],
			"airline":         airlines[rand.Intn(len(airlines))],
			"origin":          strings.ToUpper(params.Origin),
			"destination":     strings.ToUpper(params.Destination),
			"departure_date":  params.DepartureDate,
			"departure_time":  departure,
			"arrival_time":    addMinutes(departure, durationMinutes),
			"duration":        durationMinutes,
			"stops":           []int{0, 0, 0, 1}[rand.Intn(4)], // mostly direct
			"cabin_class":     cabin,
			"price":           price,
			"total_price":     price * float64(passengers),
			"currency":        "USD",
			"seats_available": 5 + rand.Intn(46),
		})
	}
	return records
}

// addMinutes shifts an HH:MM clock string forward, wrapping past midnight.
func addMinutes(clock string, minutes int) string {
	var h, m int
	if _, err := fmt.Sscanf(clock, "%d:%d", &h, &m); err != nil {
		return clock
	}
	total := (h*60 + m + minutes) % (24 * 60)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
