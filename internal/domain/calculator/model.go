package calculator

import "github.com/Spok95/churrasco-bot/internal/domain/catalog"

type Category string

const (
	Man   Category = "man"
	Woman Category = "woman"
	Kid   Category = "kid"
)

// Categories фиксированный порядок обхода: от него зависит порядок сложения float64.
var Categories = []Category{Man, Woman, Kid}

type GuestCounts struct {
	Man   int `json:"man"`
	Woman int `json:"woman"`
	Kid   int `json:"kid"`
}

func (g GuestCounts) Count(c Category) int {
	switch c {
	case Man:
		return g.Man
	case Woman:
		return g.Woman
	case Kid:
		return g.Kid
	}
	return 0
}

func (g GuestCounts) Total() int { return g.Man + g.Woman + g.Kid }

func (g GuestCounts) Adults() int { return g.Man + g.Woman }

// Present категории, в которых есть хотя бы один гость.
func (g GuestCounts) Present() []Category {
	out := make([]Category, 0, len(Categories))
	for _, c := range Categories {
		if g.Count(c) > 0 {
			out = append(out, c)
		}
	}
	return out
}

func (g GuestCounts) normalized() GuestCounts {
	return GuestCounts{Man: max(g.Man, 0), Woman: max(g.Woman, 0), Kid: max(g.Kid, 0)}
}

type Selection struct {
	Meats       []catalog.Meat       `json:"meats"`
	Drinks      []catalog.Drink      `json:"drinks"`
	Consumables []catalog.Consumable `json:"consumables"`
	SideDishes  []catalog.SideDish   `json:"side_dishes"`
}

type ConsumableLine struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
}

type SideDishLine struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// Results снимок расчёта. Полностью пересчитывается из GuestCounts и Selection.
type Results struct {
	TotalMeatKg float64 `json:"total_meat_kg"`
	KgPerMeat   float64 `json:"kg_per_meat"`

	VolumePerDrink   map[string]float64 `json:"volume_per_drink"`
	TotalDrinkVolume float64            `json:"total_drink_volume"`

	Consumables []ConsumableLine `json:"consumables"`
	SideDishes  []SideDishLine   `json:"side_dishes"`

	IndividualMeatPrice       map[Category]float64 `json:"individual_meat_price"`
	IndividualDrinkPrice      map[Category]float64 `json:"individual_drink_price"`
	IndividualConsumablePrice map[Category]float64 `json:"individual_consumable_price"`
	IndividualPrice           map[Category]float64 `json:"individual_price"`

	TotalMeatPrice        float64 `json:"total_meat_price"`
	TotalDrinkPrice       float64 `json:"total_drink_price"`
	TotalConsumablesPrice float64 `json:"total_consumables_price"`
	TotalSideDishesPrice  float64 `json:"total_side_dishes_price"`
	TotalPrice            float64 `json:"total_price"`
}
