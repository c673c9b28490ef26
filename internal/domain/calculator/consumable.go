package calculator

import "github.com/Spok95/churrasco-bot/internal/domain/catalog"

// Доли стоимости расходников по категориям гостей.
var consumableShare = map[Category]float64{
	Man:   0.48,
	Woman: 0.32,
	Kid:   0.2,
}

// ConsumableQuantity пока единственный расходник: уголь, 1 кг на 1 кг мяса.
// Флаг Proportional из каталога на расчёт не влияет.
func ConsumableQuantity(g GuestCounts, _ catalog.Consumable) float64 {
	return TotalMeatKg(g)
}

func consumableLines(g GuestCounts, consumables []catalog.Consumable) []ConsumableLine {
	out := make([]ConsumableLine, 0, len(consumables))
	for _, c := range consumables {
		qty := ConsumableQuantity(g, c)
		out = append(out, ConsumableLine{Name: c.Name, Quantity: qty, Price: qty * c.Price})
	}
	return out
}

func totalConsumablesPrice(lines []ConsumableLine) float64 {
	var total float64
	for _, l := range lines {
		total += l.Price
	}
	return total
}

func consumableWeight(g GuestCounts) float64 {
	return consumableShare[Man]*float64(g.Man) +
		consumableShare[Woman]*float64(g.Woman) +
		consumableShare[Kid]*float64(g.Kid)
}

// individualConsumablePrice при нулевом весе (гостей нет) доля равна 0.
func individualConsumablePrice(g GuestCounts, total float64) map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	w := consumableWeight(g)
	for _, c := range g.Present() {
		out[c] = safeDiv(total*consumableShare[c], w)
	}
	return out
}
