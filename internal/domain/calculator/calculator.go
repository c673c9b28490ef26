// Package calculator распределяет количество и стоимость мяса, напитков и
// расходников между категориями гостей по фиксированным коэффициентам.
//
// Все функции чистые: одинаковые входные данные дают побитно одинаковый результат.
// Деление на ноль (нет выбранного мяса, нет гостей) даёт 0, а не NaN/Inf.
package calculator

// Calculate полный пересчёт без кэширования промежуточных значений.
// Стоимость гарниров считается отдельно и в TotalPrice и IndividualPrice не входит.
func Calculate(g GuestCounts, sel Selection) Results {
	g = g.normalized()

	consumables := consumableLines(g, sel.Consumables)
	sides := sideDishLines(g, sel.SideDishes)

	res := Results{
		TotalMeatKg:      TotalMeatKg(g),
		KgPerMeat:        KgPerMeat(g, sel.Meats),
		VolumePerDrink:   VolumePerDrink(g, sel.Drinks),
		TotalDrinkVolume: totalDrinkVolume(g, sel.Drinks),
		Consumables:      consumables,
		SideDishes:       sides,

		IndividualMeatPrice:  individualMeatPrice(g, sel.Meats),
		IndividualDrinkPrice: individualDrinkPrice(g, sel.Drinks),

		TotalMeatPrice:        totalMeatPrice(g, sel.Meats),
		TotalConsumablesPrice: totalConsumablesPrice(consumables),
		TotalSideDishesPrice:  totalSideDishesPrice(sides),
	}
	res.TotalDrinkPrice = totalDrinkPrice(g, res.IndividualDrinkPrice)
	res.IndividualConsumablePrice = individualConsumablePrice(g, res.TotalConsumablesPrice)

	res.IndividualPrice = make(map[Category]float64, len(Categories))
	for _, c := range g.Present() {
		res.IndividualPrice[c] = res.IndividualDrinkPrice[c] + res.IndividualMeatPrice[c] + res.IndividualConsumablePrice[c]
	}

	res.TotalPrice = res.TotalDrinkPrice + res.TotalMeatPrice + res.TotalConsumablesPrice
	return res
}

func safeDiv(a, b float64) float64 {
	if b == 0 {
		return 0
	}
	return a / b
}
