package calculator

import (
	"math"

	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
)

// SideDishQuantity число упаковок: ceil(гостей × порция / упаковка).
func SideDishQuantity(g GuestCounts, s catalog.SideDish) int {
	if s.PackageG <= 0 {
		return 0
	}
	return int(math.Ceil(float64(g.Total()) * s.PortionG / s.PackageG))
}

// SideDishQuantities количества для всего списка гарниров (например, всего каталога).
func SideDishQuantities(g GuestCounts, sides []catalog.SideDish) map[string]int {
	out := make(map[string]int, len(sides))
	for _, s := range sides {
		out[s.Name] = SideDishQuantity(g, s)
	}
	return out
}

func sideDishLines(g GuestCounts, sides []catalog.SideDish) []SideDishLine {
	out := make([]SideDishLine, 0, len(sides))
	for _, s := range sides {
		qty := SideDishQuantity(g, s)
		out = append(out, SideDishLine{Name: s.Name, Quantity: qty, Price: float64(qty) * s.Price})
	}
	return out
}

func totalSideDishesPrice(lines []SideDishLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price
	}
	return total
}
