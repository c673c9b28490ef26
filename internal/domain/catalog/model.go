package catalog

type Kind string

const (
	KindMeat       Kind = "meat"
	KindDrink      Kind = "drink"
	KindConsumable Kind = "consumable"
	KindSideDish   Kind = "side_dish"
)

type MeatType string

const (
	MeatBeef    MeatType = "beef"
	MeatPork    MeatType = "pork"
	MeatChicken MeatType = "chicken"
)

type Meat struct {
	Name  string   `json:"name"`
	Price float64  `json:"price"` // R$ за кг
	Type  MeatType `json:"type"`
	Image string   `json:"image,omitempty"`
}

type Drink struct {
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	VolumeML  float64 `json:"volume_ml"` // объём одной порции
	Servings  int     `json:"servings"`  // порций на гостя
	Alcoholic bool    `json:"alcoholic"`
	Image     string  `json:"image,omitempty"`
}

// Consumable расходник для мероприятия (уголь). Количество считается от массы мяса.
type Consumable struct {
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	Proportional bool    `json:"proportional"`
	Image        string  `json:"image,omitempty"`
}

// SideDish гарнир: PortionG граммов на гостя, упаковка PackageG граммов.
type SideDish struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	PortionG float64 `json:"portion_g"`
	PackageG float64 `json:"package_g"`
	Image    string  `json:"image,omitempty"`
}

type Catalog struct {
	Meats       []Meat       `json:"meats"`
	Drinks      []Drink      `json:"drinks"`
	Consumables []Consumable `json:"consumables"`
	SideDishes  []SideDish   `json:"side_dishes"`
}

func (c Catalog) Empty() bool {
	return len(c.Meats) == 0 && len(c.Drinks) == 0 && len(c.Consumables) == 0 && len(c.SideDishes) == 0
}
