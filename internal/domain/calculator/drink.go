package calculator

import "github.com/Spok95/churrasco-bot/internal/domain/catalog"

// drinkers алкоголь пьют только взрослые.
func drinkers(g GuestCounts, d catalog.Drink) int {
	if d.Alcoholic {
		return g.Adults()
	}
	return g.Total()
}

func drinkAllowed(c Category, d catalog.Drink) bool {
	return !(d.Alcoholic && c == Kid)
}

// VolumePerDrink объём в мл по каждому выбранному напитку.
func VolumePerDrink(g GuestCounts, drinks []catalog.Drink) map[string]float64 {
	out := make(map[string]float64, len(drinks))
	for _, d := range drinks {
		out[d.Name] = float64(drinkers(g, d)) * d.VolumeML * float64(d.Servings)
	}
	return out
}

func totalDrinkVolume(g GuestCounts, drinks []catalog.Drink) float64 {
	var total float64
	for _, d := range drinks {
		total += float64(drinkers(g, d)) * d.VolumeML * float64(d.Servings)
	}
	return total
}

func individualDrinkPrice(g GuestCounts, drinks []catalog.Drink) map[Category]float64 {
	out := make(map[Category]float64, len(Categories))
	for _, c := range g.Present() {
		var sum float64
		for _, d := range drinks {
			if drinkAllowed(c, d) {
				sum += float64(d.Servings) * d.Price
			}
		}
		out[c] = sum
	}
	return out
}

func totalDrinkPrice(g GuestCounts, individual map[Category]float64) float64 {
	var total float64
	for _, c := range g.Present() {
		total += individual[c] * float64(g.Count(c))
	}
	return total
}
