package catalog

// Default встроенный каталог; используется, если таблица catalog_items пуста.
func Default() Catalog {
	return Catalog{
		Meats: []Meat{
			{Name: "Picanha", Price: 58.00, Type: MeatBeef, Image: "picanha.png"},
			{Name: "Costela", Price: 27.00, Type: MeatBeef, Image: "rib.png"},
			{Name: "Alcatra", Price: 43.00, Type: MeatBeef, Image: "rump.png"},
			{Name: "Lombinho", Price: 36.00, Type: MeatPork, Image: "porkLoin.png"},
			{Name: "Pernil", Price: 28.00, Type: MeatPork, Image: "porkLeg.png"},
			{Name: "Linguiça toscana", Price: 28.00, Type: MeatPork, Image: "tuscanSausage.png"},
			{Name: "Coxa", Price: 14.00, Type: MeatChicken, Image: "chickenThigh.png"},
			{Name: "Asa", Price: 14.00, Type: MeatChicken, Image: "chickenWing.png"},
			{Name: "Peito", Price: 23.00, Type: MeatChicken, Image: "chickenBreast.png"},
		},
		Drinks: []Drink{
			{Name: "Água", Price: 6.00, VolumeML: 1500, Servings: 1, Image: "water.png"},
			{Name: "Refrigerante", Price: 4.00, VolumeML: 350, Servings: 4, Image: "soda.png"},
			{Name: "Cerveja", Price: 4.50, VolumeML: 350, Servings: 4, Alcoholic: true, Image: "beer.png"},
		},
		Consumables: []Consumable{
			{Name: "Carvão", Price: 9.00, Proportional: false, Image: "coal.png"},
		},
		SideDishes: []SideDish{
			{Name: "Pão de Alho", Price: 12.00, PortionG: 50, PackageG: 400, Image: "garlicBread.png"},
			{Name: "Farofa", Price: 7.50, PortionG: 50, PackageG: 500, Image: "farofa.png"},
			{Name: "Arroz", Price: 9.00, PortionG: 100, PackageG: 1000, Image: "rice.png"},
		},
	}
}
