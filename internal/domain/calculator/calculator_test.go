package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
)

const eps = 1e-9

func mustMeats(t *testing.T, names ...string) []catalog.Meat {
	t.Helper()
	m := catalog.Default().ResolveMeats(names)
	require.Len(t, m, len(names))
	return m
}

func mustDrinks(t *testing.T, names ...string) []catalog.Drink {
	t.Helper()
	d := catalog.Default().ResolveDrinks(names)
	require.Len(t, d, len(names))
	return d
}

func fullSelection(t *testing.T) Selection {
	t.Helper()
	c := catalog.Default()
	return Selection{
		Meats:       mustMeats(t, "Picanha", "Lombinho", "Coxa"),
		Drinks:      mustDrinks(t, "Água", "Refrigerante", "Cerveja"),
		Consumables: c.Consumables,
		SideDishes:  c.SideDishes,
	}
}

func TestMeatAllocation(t *testing.T) {
	g := GuestCounts{Man: 2, Woman: 1}
	meats := mustMeats(t, "Picanha", "Costela")

	res := Calculate(g, Selection{Meats: meats})

	assert.InDelta(t, 1.6, res.TotalMeatKg, eps)
	assert.InDelta(t, 0.8, res.KgPerMeat, eps)
	assert.InDelta(t, 0.8*85, res.TotalMeatPrice, eps)

	assert.InDelta(t, 85*0.6/2, res.IndividualMeatPrice[Man], eps)
	assert.InDelta(t, 85*0.4/2, res.IndividualMeatPrice[Woman], eps)
	_, ok := res.IndividualMeatPrice[Kid]
	assert.False(t, ok, "category without guests must be absent")
}

func TestMeatWithoutSelectionIsZero(t *testing.T) {
	res := Calculate(GuestCounts{Man: 3, Kid: 2}, Selection{})

	assert.InDelta(t, 2.3, res.TotalMeatKg, eps)
	assert.Zero(t, res.KgPerMeat)
	assert.Zero(t, res.TotalMeatPrice)
	assert.Zero(t, res.IndividualMeatPrice[Man])
	assert.False(t, math.IsNaN(res.IndividualPrice[Kid]))
}

func TestDrinkAllocation(t *testing.T) {
	g := GuestCounts{Man: 2, Woman: 2, Kid: 1}

	t.Run("alcoholic drink excludes kids from volume", func(t *testing.T) {
		res := Calculate(g, Selection{Drinks: mustDrinks(t, "Cerveja")})
		assert.InDelta(t, 5600, res.VolumePerDrink["Cerveja"], eps)
		assert.InDelta(t, 5600, res.TotalDrinkVolume, eps)
	})

	t.Run("mixed drinks", func(t *testing.T) {
		res := Calculate(g, Selection{Drinks: mustDrinks(t, "Cerveja", "Refrigerante")})

		assert.InDelta(t, 7000, res.VolumePerDrink["Refrigerante"], eps)
		assert.InDelta(t, 12600, res.TotalDrinkVolume, eps)
		assert.NotContains(t, res.VolumePerDrink, "Água")

		assert.InDelta(t, 34, res.IndividualDrinkPrice[Man], eps)
		assert.InDelta(t, 34, res.IndividualDrinkPrice[Woman], eps)
		assert.InDelta(t, 16, res.IndividualDrinkPrice[Kid], eps)
		assert.InDelta(t, 152, res.TotalDrinkPrice, eps)
	})

	t.Run("absent category has no key", func(t *testing.T) {
		res := Calculate(GuestCounts{Woman: 1}, Selection{Drinks: mustDrinks(t, "Água")})
		assert.Len(t, res.IndividualDrinkPrice, 1)
		assert.InDelta(t, 6, res.TotalDrinkPrice, eps)
	})
}

func TestConsumableAllocation(t *testing.T) {
	g := GuestCounts{Man: 2, Woman: 1}
	coal := catalog.Default().Consumables

	res := Calculate(g, Selection{Consumables: coal})

	require.Len(t, res.Consumables, 1)
	assert.Equal(t, "Carvão", res.Consumables[0].Name)
	assert.InDelta(t, 1.6, res.Consumables[0].Quantity, eps)
	assert.InDelta(t, 14.4, res.TotalConsumablesPrice, eps)
	assert.InDelta(t, 5.4, res.IndividualConsumablePrice[Man], eps)
	assert.InDelta(t, 3.6, res.IndividualConsumablePrice[Woman], eps)
	assert.NotContains(t, res.IndividualConsumablePrice, Kid)

	notSelected := Calculate(g, Selection{})
	assert.Empty(t, notSelected.Consumables)
	assert.Zero(t, notSelected.TotalConsumablesPrice)
}

func TestSideDishQuantities(t *testing.T) {
	sides := catalog.Default().SideDishes

	q := SideDishQuantities(GuestCounts{Man: 4, Woman: 4, Kid: 2}, sides)
	assert.Equal(t, map[string]int{"Pão de Alho": 2, "Farofa": 1, "Arroz": 1}, q)

	q = SideDishQuantities(GuestCounts{}, sides)
	assert.Equal(t, map[string]int{"Pão de Alho": 0, "Farofa": 0, "Arroz": 0}, q)

	assert.Zero(t, SideDishQuantity(GuestCounts{Man: 5}, catalog.SideDish{PortionG: 50}))
}

func TestSideDishQuantityIsMonotonic(t *testing.T) {
	for _, s := range catalog.Default().SideDishes {
		prev := 0
		for n := 0; n <= 300; n++ {
			q := SideDishQuantity(GuestCounts{Man: n}, s)
			assert.GreaterOrEqual(t, q, prev, "%s at %d guests", s.Name, n)
			prev = q
		}
	}
}

func TestSideDishCostIsNotInTotals(t *testing.T) {
	g := GuestCounts{Man: 8}
	sides := catalog.Default().ResolveSideDishes([]string{"Pão de Alho"})

	res := Calculate(g, Selection{SideDishes: sides})

	require.Len(t, res.SideDishes, 1)
	assert.Equal(t, 1, res.SideDishes[0].Quantity)
	assert.InDelta(t, 12, res.TotalSideDishesPrice, eps)
	assert.Zero(t, res.TotalPrice)
	assert.Zero(t, res.IndividualPrice[Man])
}

func TestTotalPriceIsSumOfParts(t *testing.T) {
	res := Calculate(GuestCounts{Man: 3, Woman: 2, Kid: 4}, fullSelection(t))

	assert.Equal(t, res.TotalDrinkPrice+res.TotalMeatPrice+res.TotalConsumablesPrice, res.TotalPrice)
}

func TestIndividualPricesSumToTotals(t *testing.T) {
	sel := fullSelection(t)
	for man := 0; man <= 4; man++ {
		for woman := 0; woman <= 4; woman++ {
			for kid := 0; kid <= 4; kid++ {
				g := GuestCounts{Man: man, Woman: woman, Kid: kid}
				res := Calculate(g, sel)

				var meat, drink, cons, all float64
				for _, c := range g.Present() {
					n := float64(g.Count(c))
					meat += res.IndividualMeatPrice[c] * n
					drink += res.IndividualDrinkPrice[c] * n
					cons += res.IndividualConsumablePrice[c] * n
					all += res.IndividualPrice[c] * n
				}
				assert.InDelta(t, res.TotalMeatPrice, meat, 1e-6, "%+v", g)
				assert.InDelta(t, res.TotalDrinkPrice, drink, 1e-6, "%+v", g)
				assert.InDelta(t, res.TotalConsumablesPrice, cons, 1e-6, "%+v", g)
				assert.InDelta(t, res.TotalPrice, all, 1e-6, "%+v", g)

				for _, c := range Categories {
					_, ok := res.IndividualPrice[c]
					assert.Equal(t, g.Count(c) > 0, ok, "%s in %+v", c, g)
				}
			}
		}
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	g := GuestCounts{Man: 7, Woman: 3, Kid: 5}
	sel := fullSelection(t)

	assert.Equal(t, Calculate(g, sel), Calculate(g, sel))
}

func TestNoGuestsNoSelection(t *testing.T) {
	res := Calculate(GuestCounts{}, Selection{})

	for _, v := range []float64{
		res.TotalMeatKg, res.KgPerMeat, res.TotalDrinkVolume,
		res.TotalMeatPrice, res.TotalDrinkPrice, res.TotalConsumablesPrice,
		res.TotalSideDishesPrice, res.TotalPrice,
	} {
		assert.Zero(t, v)
	}
	assert.Empty(t, res.IndividualPrice)
	assert.Empty(t, res.IndividualMeatPrice)
	assert.Empty(t, res.IndividualConsumablePrice)
}

func TestNoGuestsWithSelection(t *testing.T) {
	res := Calculate(GuestCounts{}, fullSelection(t))

	assert.Zero(t, res.TotalPrice)
	assert.Zero(t, res.TotalConsumablesPrice)
	assert.Empty(t, res.IndividualConsumablePrice)
	for _, l := range res.SideDishes {
		assert.Zero(t, l.Quantity)
	}
}

func TestNegativeCountsAreClamped(t *testing.T) {
	res := Calculate(GuestCounts{Man: -3, Woman: 1}, Selection{Meats: mustMeats(t, "Asa")})

	assert.InDelta(t, 0.4, res.TotalMeatKg, eps)
	assert.NotContains(t, res.IndividualPrice, Man)
}

func TestGuestCounts(t *testing.T) {
	g := GuestCounts{Man: 2, Kid: 3}

	assert.Equal(t, 5, g.Total())
	assert.Equal(t, 2, g.Adults())
	assert.Equal(t, []Category{Man, Kid}, g.Present())
	assert.Zero(t, g.Count(Category("alien")))
}
