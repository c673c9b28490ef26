package calculator

import "github.com/Spok95/churrasco-bot/internal/domain/catalog"

// Кг мяса на одного гостя. Те же коэффициенты делят стоимость мяса между категориями.
var meatKgPerGuest = map[Category]float64{
	Man:   0.6,
	Woman: 0.4,
	Kid:   0.25,
}

func TotalMeatKg(g GuestCounts) float64 {
	return meatKgPerGuest[Man]*float64(g.Man) +
		meatKgPerGuest[Woman]*float64(g.Woman) +
		meatKgPerGuest[Kid]*float64(g.Kid)
}

// KgPerMeat делит общую массу поровну между выбранными видами мяса; 0, если ничего не выбрано.
func KgPerMeat(g GuestCounts, meats []catalog.Meat) float64 {
	return safeDiv(TotalMeatKg(g), float64(len(meats)))
}

func sumMeatPrices(meats []catalog.Meat) float64 {
	var sum float64
	for _, m := range meats {
		sum += m.Price
	}
	return sum
}

func totalMeatPrice(g GuestCounts, meats []catalog.Meat) float64 {
	return KgPerMeat(g, meats) * sumMeatPrices(meats)
}

func individualMeatPrice(g GuestCounts, meats []catalog.Meat) map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	sum := sumMeatPrices(meats)
	for _, c := range g.Present() {
		out[c] = safeDiv(sum*meatKgPerGuest[c], float64(len(meats)))
	}
	return out
}
