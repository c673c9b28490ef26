package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()

	assert.Len(t, c.Meats, 9)
	assert.Len(t, c.Drinks, 3)
	assert.Len(t, c.Consumables, 1)
	assert.Len(t, c.SideDishes, 3)
	assert.False(t, c.Empty())
	assert.True(t, Catalog{}.Empty())

	beer, ok := c.FindDrink("Cerveja")
	require.True(t, ok)
	assert.True(t, beer.Alcoholic)
	assert.Equal(t, 350.0, beer.VolumeML)
	assert.Equal(t, 4, beer.Servings)

	coal, ok := c.FindConsumable("Carvão")
	require.True(t, ok)
	assert.Equal(t, 9.0, coal.Price)
}

func TestResolveKeepsOrderAndSkipsUnknown(t *testing.T) {
	c := Default()

	meats := c.ResolveMeats([]string{"Peito", "Tofu", "Picanha", "Peito"})
	require.Len(t, meats, 2)
	assert.Equal(t, "Peito", meats[0].Name)
	assert.Equal(t, "Picanha", meats[1].Name)

	assert.Empty(t, c.ResolveDrinks(nil))
	assert.Len(t, c.ResolveSideDishes([]string{"Arroz", "Farofa"}), 2)
	assert.Len(t, c.ResolveConsumables([]string{"Carvão"}), 1)
}

func TestFindMissing(t *testing.T) {
	c := Default()

	_, ok := c.FindMeat("Tofu")
	assert.False(t, ok)
	_, ok = c.FindSideDish("")
	assert.False(t, ok)
}

func TestNames(t *testing.T) {
	c := Default()

	assert.Equal(t, []string{"Água", "Refrigerante", "Cerveja"}, c.Names(KindDrink))
	assert.Equal(t, []string{"Carvão"}, c.Names(KindConsumable))
	assert.Equal(t, "Picanha", c.Names(KindMeat)[0])
	assert.Nil(t, c.Names(Kind("unknown")))
}
