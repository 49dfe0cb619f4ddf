package providers

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// MockWeatherProvider synthesizes a randomized daily forecast. Temperatures
// are in degrees Fahrenheit.
type MockWeatherProvider struct{}

func NewMockWeatherProvider() *MockWeatherProvider {
	return &MockWeatherProvider{}
}

var conditions = []string{
	"Clear sky",
	"Partly cloudy",
	"Cloudy",
	"Light rain",
	"Rain",
	"Thunderstorm",
	"Sunny",
}

func (p *MockWeatherProvider) GetForecast(ctx context.Context, params WeatherParams) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.Location == "" {
		return nil, fmt.Errorf("weather provider: location is required")
	}

	days := params.Days
	if days < 1 {
		days = 7
	}
	if days > 14 {
		days = 14
	}

	start := time.Now()
	if params.StartDate != "" {
		if parsed, err := time.Parse("2006-01-02", params.StartDate); err == nil {
			start = parsed
		}
	}

	key := fmt.Sprintf("weather|%s|%s|%d", params.Location, start.Format("2006-01-02"), days)
	records, ok := cached(key)
	if !ok {
		records = p.generate(start, days)
		store(key, records)
	}

	if rand.Intn(2) == 0 {
		return records, nil
	}
	return map[string]any{"forecast": records}, nil
}

func (p *MockWeatherProvider) generate(start time.Time, days int) []map[string]any {
	records := make([]map[string]any, 0, days)
	for i := 0; i < days; i++ {
		date := start.AddDate(0, 0, i)

		base := 45 + rand.Intn(41) // 45..85
		high := base + 3 + rand.Intn(6)
		low := base - 2 - rand.Intn(4)

		condition := conditions[rand.Intn(len(conditions))]
		precipitation := rand.Intn(30)
		if condition == "Light rain" || condition == "Rain" || condition == "Thunderstorm" {
			precipitation = 50 + rand.Intn(50)
		}

		records = append(records, map[string]any{
			"date":          date.Format("2006-01-02"),
			"day_name":      date.Weekday().String(),
			"condition":     condition,
			"temp_high":     float64(high),
			"temp_low":      float64(low),
			"unit":          "fahrenheit",
			"humidity":      40 + rand.Intn(46),
			"precipitation": float64(precipitation),
		})
	}
	return records
}
