package providers

import (
	"context"
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/google/uuid"
)

// MockActivityProvider synthesizes randomized activity and attraction results.
type MockActivityProvider struct{}

func NewMockActivityProvider() *MockActivityProvider {
	return &MockActivityProvider{}
}

type activityTemplate struct {
	name        string
	category    string
	description string
	hours       float64
}

var activityCatalog = []activityTemplate{
	{"Sunset Harbor Cruise", "tours", "Scenic cruise with skyline views and complimentary drinks", 2},
	{"Old Town Walking Tour", "tours", "Guided walk through the historic quarter", 3},
	{"National Museum Visit", "museums", "Skip-the-line access with an expert guide", 2},
	{"Modern Art Gallery", "museums", "Contemporary collections and rotating exhibits", 1.5},
	{"Street Food Tasting", "food", "Sample local specialties across five stops", 2.5},
	{"Cooking Class", "food", "Hands-on class with a local chef, meal included", 3},
	{"Hot Air Balloon Ride", "adventure", "Sunrise flight over the countryside", 4},
	{"Kayak Excursion", "adventure", "Paddle along the coast with a guide", 3},
	{"Historic Palace Tour", "culture", "Explore royal halls and gardens", 2},
	{"Traditional Music Night", "entertainment", "Live folk performance with dinner", 3},
	{"Rooftop Jazz Bar", "entertainment", "Evening set with city views", 2},
	{"Botanical Gardens", "culture", "Self-guided stroll through themed gardens", 1.5},
}

func (p *MockActivityProvider) SearchActivities(ctx context.Context, params ActivityParams) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.Location == "" {
		return nil, fmt.Errorf("activity provider: location is required")
	}

	key := fmt.Sprintf("activities|%s|%s|%.0f",
		params.Location, strings.Join(params.Categories, ","), params.MaxPrice)

	records, ok := cached(key)
	if !ok {
		records = p.generate(params)
		store(key, records)
	}

	if rand.Intn(2) == 0 {
		return records, nil
	}
	return map[string]any{"activities": records}, nil
}

func (p *MockActivityProvider) generate(params ActivityParams) []map[string]any {
	wanted := map[string]bool{}
	for _, c := range params.Categories {
		wanted[strings.ToLower(c)] = true
	}

	records := make([]map[string]any, 0, len(activityCatalog))
	for _, tpl := range activityCatalog {
		if len(wanted) > 0 && !wanted[tpl.category] {
			continue
		}

		price := 15 + rand.Float64()*85
		if params.MaxPrice > 0 && price > params.MaxPrice {
			continue
		}
		price = math.Round(price*100) / 100

		records = append(records, map[string]any{
			"id":          "AC-" + uuid.New().String()[:8],
			"name":        tpl.name,
			"type":        tpl.category,
			"description": tpl.description,
			"location":    params.Location,
			"price":       price,
			"duration":    tpl.hours,
			"rating":      math.Round((3.5+rand.Float64()*1.5)*10) / 10,
			"reviews":     100 + rand.Intn(5000),
		})
	}
	return records
}
