package trip

import (
	"testing"

	"tabiplan.jp/internal/geo"
	"tabiplan.jp/internal/models"
	"tabiplan.jp/internal/utils"
)

func testDate(t *testing.T, s string) utils.Date {
	t.Helper()
	d, err := utils.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse test date %q: %v", s, err)
	}
	return d
}

func testAttraction(id string, price int) models.Attraction {
	return models.Attraction{
		ID:          id,
		Name:        "Senso-ji",
		NameJP:      "浅草寺",
		City:        "tokyo",
		Category:    "temple",
		Coord:       geo.Point{Lat: 35.7148, Lon: 139.7967},
		Price:       price,
		DurationMin: 90,
	}
}

func testHotel(id string, price int) models.Hotel {
	return models.Hotel{
		ID:            id,
		Name:          "Shinjuku Granbell",
		NameJP:        "新宿グランベルホテル",
		City:          "tokyo",
		Coord:         geo.Point{Lat: 35.6938, Lon: 139.7034},
		PricePerNight: price,
	}
}

func testRestaurant(id string, price int) models.Restaurant {
	return models.Restaurant{
		ID:     id,
		Name:   "Ichiran Shibuya",
		NameJP: "一蘭 渋谷店",
		City:   "tokyo",
		Coord:  geo.Point{Lat: 35.6613, Lon: 139.7007},
		Price:  price,
	}
}

// checkDenseOrder fails the test unless entry order values are exactly
// 0..n-1 in slice order.
func checkDenseOrder(t *testing.T, entries []Entry) {
	t.Helper()
	for i, e := range entries {
		if e.Order != i {
			t.Errorf("Expected entry at index %d to have order %d, got %d", i, i, e.Order)
		}
	}
}

// checkBudgetTotal fails the test unless Total equals the sum of the six
// category buckets.
func checkBudgetTotal(t *testing.T, b Budget) {
	t.Helper()
	sum := b.Accommodation + b.Transport + b.Food + b.Attractions + b.Shopping + b.Other
	if b.Total != sum {
		t.Errorf("Expected budget total %d to equal category sum %d", b.Total, sum)
	}
}
