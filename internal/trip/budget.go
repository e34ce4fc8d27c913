package trip

import "tabiplan.jp/internal/models"

// Category names one of the six fixed budget buckets.
type Category string

const (
	CategoryAccommodation Category = "accommodation"
	CategoryTransport     Category = "transport"
	CategoryFood          Category = "food"
	CategoryAttractions   Category = "attractions"
	CategoryShopping      Category = "shopping"
	CategoryOther         Category = "other"
)

// Budget tracks planned spending in yen across the six fixed categories.
//
// Total is derived: every mutation recomputes it in the same call, so a
// Budget read at any point satisfies Total == sum of the six categories.
type Budget struct {
	Accommodation int `json:"accommodation"`
	Transport     int `json:"transport"`
	Food          int `json:"food"`
	Attractions   int `json:"attractions"`
	Shopping      int `json:"shopping"`
	Other         int `json:"other"`
	Total         int `json:"total"`
}

// Set assigns an absolute amount to a category. Unknown categories are
// ignored. Negative amounts are clamped to zero.
func (b *Budget) Set(cat Category, amount int) {
	if amount < 0 {
		amount = 0
	}
	if p := b.field(cat); p != nil {
		*p = amount
	}
	b.recompute()
}

// Add applies a delta to a category, flooring the result at zero so a
// removal can never drive a bucket negative.
func (b *Budget) Add(cat Category, delta int) {
	p := b.field(cat)
	if p == nil {
		return
	}
	*p += delta
	if *p < 0 {
		*p = 0
	}
	b.recompute()
}

// Get returns the current amount of a category.
func (b *Budget) Get(cat Category) int {
	if p := b.field(cat); p != nil {
		return *p
	}
	return 0
}

func (b *Budget) field(cat Category) *int {
	switch cat {
	case CategoryAccommodation:
		return &b.Accommodation
	case CategoryTransport:
		return &b.Transport
	case CategoryFood:
		return &b.Food
	case CategoryAttractions:
		return &b.Attractions
	case CategoryShopping:
		return &b.Shopping
	case CategoryOther:
		return &b.Other
	}
	return nil
}

func (b *Budget) recompute() {
	b.Total = b.Accommodation + b.Transport + b.Food + b.Attractions + b.Shopping + b.Other
}

// normalize re-derives Total from the categories, e.g. after decoding a
// payload whose stored total cannot be trusted.
func (b *Budget) normalize() {
	b.recompute()
}

// categoryFor maps a POI kind to the budget bucket its price lands in.
func categoryFor(kind models.Kind) Category {
	switch kind {
	case models.KindAttraction:
		return CategoryAttractions
	case models.KindHotel:
		return CategoryAccommodation
	case models.KindRestaurant:
		return CategoryFood
	case models.KindTransport:
		return CategoryTransport
	}
	return CategoryOther
}
