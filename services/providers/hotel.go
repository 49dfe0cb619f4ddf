package providers

import (
	"context"
	"fmt"
	"math"
	"math/rand"

	"github.com/google/uuid"
)

// MockHotelProvider synthesizes randomized hotel results.
type MockHotelProvider struct{}

func NewMockHotelProvider() *MockHotelProvider {
	return &MockHotelProvider{}
}

var hotelNames = []string{
	"Grand Palace Hotel",
	"Seaside Resort & Spa",
	"City Center Inn",
	"Historic Boutique Hotel",
	"Modern Plaza Hotel",
	"Luxury Towers",
	"Cozy Garden Hotel",
}

var neighborhoods = []string{
	"City Center",
	"Old Town",
	"Business District",
	"Waterfront",
	"Historic Quarter",
}

var amenitiesPool = []string{
	"Free WiFi",
	"Swimming Pool",
	"Fitness Center",
	"Spa",
	"Restaurant",
	"Bar",
	"Room Service",
	"Airport Shuttle",
	"Parking",
}

func (p *MockHotelProvider) SearchHotels(ctx context.Context, params HotelParams) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if params.City == "" {
		return nil, fmt.Errorf("hotel provider: city is required")
	}

	key := fmt.Sprintf("hotels|%s|%s|%s|%d|%.1f|%.0f",
		params.City, params.CheckIn, params.CheckOut,
		params.Guests, params.MinRating, params.MaxPricePerNight)

	records, ok := cached(key)
	if !ok {
		records = p.generate(params)
		store(key, records)
	}

	if rand.Intn(2) == 0 {
		return records, nil
	}
	return map[string]any{"hotels": records}, nil
}

func (p *MockHotelProvider) generate(params HotelParams) []map[string]any {
	minRating := params.MinRating
	if minRating <= 0 {
		minRating = 3
	}

	count := 4 + rand.Intn(3)
	records := make([]map[string]any, 0, count)
	for i := 0; i < count; i++ {
		rating := minRating + rand.Float64()*(5-minRating)
		rating = math.Round(rating*10) / 10

		price := 60 + rand.Float64()*240
		if params.MaxPricePerNight > 0 && price > params.MaxPricePerNight {
			price = params.MaxPricePerNight * (0.6 + rand.Float64()*0.4)
		}
		price = math.Round(price*100) / 100

		nAmenities := 3 + rand.Intn(4)
		amenities := make([]string, 0, nAmenities)
		for _, idx := range rand.Perm(len(amenitiesPool))[:nAmenities] {
			amenities = append(amenities, amenitiesPool[idx])
		}

		records = append(records, map[string]any{
			"hotel_id":           "HT-" + uuid.New().String()[:8],
			"name":               hotelNames[rand.Intn(len(hotelNames))],
			"neighborhood":       neighborhoods[rand.Intn(len(neighborhoods))],
			"city":               params.City,
			"rating":             rating,
			"price_per_night":    price,
			"currency":           "USD",
			"amenities":          amenities,
			"distance_to_center": math.Round(rand.Float64()*80) / 10,
			"rooms_available":    1 + rand.Intn(10),
		})
	}
	return records
}
