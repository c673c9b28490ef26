package catalog

func find[T any](items []T, name string, nameOf func(T) string) (T, bool) {
	for _, it := range items {
		if nameOf(it) == name {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// resolve сохраняет порядок выбора пользователя, неизвестные и повторные имена пропускает.
func resolve[T any](items []T, names []string, nameOf func(T) string) []T {
	out := make([]T, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, n := range names {
		if seen[n] {
			continue
		}
		if it, ok := find(items, n, nameOf); ok {
			out = append(out, it)
			seen[n] = true
		}
	}
	return out
}

func meatName(m Meat) string             { return m.Name }
func drinkName(d Drink) string           { return d.Name }
func consumableName(c Consumable) string { return c.Name }
func sideDishName(s SideDish) string     { return s.Name }

func (c Catalog) FindMeat(name string) (Meat, bool) { return find(c.Meats, name, meatName) }

func (c Catalog) FindDrink(name string) (Drink, bool) { return find(c.Drinks, name, drinkName) }

func (c Catalog) FindConsumable(name string) (Consumable, bool) {
	return find(c.Consumables, name, consumableName)
}

func (c Catalog) FindSideDish(name string) (SideDish, bool) {
	return find(c.SideDishes, name, sideDishName)
}

func (c Catalog) ResolveMeats(names []string) []Meat { return resolve(c.Meats, names, meatName) }

func (c Catalog) ResolveDrinks(names []string) []Drink { return resolve(c.Drinks, names, drinkName) }

func (c Catalog) ResolveConsumables(names []string) []Consumable {
	return resolve(c.Consumables, names, consumableName)
}

func (c Catalog) ResolveSideDishes(names []string) []SideDish {
	return resolve(c.SideDishes, names, sideDishName)
}

// Names возвращает имена позиций указанного вида в порядке каталога.
func (c Catalog) Names(k Kind) []string {
	var out []string
	switch k {
	case KindMeat:
		for _, m := range c.Meats {
			out = append(out, m.Name)
		}
	case KindDrink:
		for _, d := range c.Drinks {
			out = append(out, d.Name)
		}
	case KindConsumable:
		for _, x := range c.Consumables {
			out = append(out, x.Name)
		}
	case KindSideDish:
		for _, s := range c.SideDishes {
			out = append(out, s.Name)
		}
	}
	return out
}
