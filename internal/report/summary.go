package report

import (
	"fmt"
	"strings"

	"github.com/Spok95/churrasco-bot/internal/domain/address"
	"github.com/Spok95/churrasco-bot/internal/domain/calculator"
)

// Plan всё, что нужно для итогового экрана.
type Plan struct {
	Guests    calculator.GuestCounts
	Selection calculator.Selection
	Results   calculator.Results
	Address   address.Address
}

type Line struct {
	Label string
	Value string
	// Числовое значение для таблицы и его единица
	Amount float64
	Unit   string
}

type Section struct {
	Title string
	Lines []Line
}

// Sections порядок и состав блоков итоговой сводки.
func Sections(p Plan) []Section {
	res := p.Results
	var out []Section

	meat := Section{Title: "Consumo de Carnes"}
	for _, m := range p.Selection.Meats {
		meat.Lines = append(meat.Lines, Line{m.Name, Kg(res.KgPerMeat), res.KgPerMeat, "kg"})
	}
	meat.Lines = append(meat.Lines, Line{"Total", Kg(res.TotalMeatKg), res.TotalMeatKg, "kg"})
	out = append(out, meat)

	drink := Section{Title: "Consumo de Bebidas"}
	for _, d := range p.Selection.Drinks {
		v := res.VolumePerDrink[d.Name]
		drink.Lines = append(drink.Lines, Line{d.Name, Liters(v), v, "ml"})
	}
	drink.Lines = append(drink.Lines, Line{"Total", Liters(res.TotalDrinkVolume), res.TotalDrinkVolume, "ml"})
	out = append(out, drink)

	if len(res.Consumables) > 0 || len(res.SideDishes) > 0 {
		items := Section{Title: "Consumíveis e Acompanhamentos"}
		for _, c := range res.Consumables {
			items.Lines = append(items.Lines, Line{c.Name, Kg(c.Quantity), c.Quantity, "kg"})
		}
		for _, s := range res.SideDishes {
			items.Lines = append(items.Lines, Line{s.Name, fmt.Sprintf("%d un", s.Quantity), float64(s.Quantity), "un"})
		}
		out = append(out, items)
	}

	guests := Section{Title: "Convidados"}
	for _, c := range p.Guests.Present() {
		n := p.Guests.Count(c)
		guests.Lines = append(guests.Lines, Line{CategoryLabel(c), fmt.Sprint(n), float64(n), ""})
	}
	guests.Lines = append(guests.Lines, Line{"Total", fmt.Sprint(p.Guests.Total()), float64(p.Guests.Total()), ""})
	out = append(out, guests)

	share := Section{Title: "Valor de Rateio"}
	for _, c := range p.Guests.Present() {
		v := res.IndividualPrice[c]
		share.Lines = append(share.Lines, Line{CategoryLabel(c), Price(v), Money(v), "BRL"})
	}
	out = append(out, share)

	spent := Section{Title: "Valor Gasto"}
	spent.Lines = append(spent.Lines,
		Line{"Carnes", Price(res.TotalMeatPrice), Money(res.TotalMeatPrice), "BRL"},
		Line{"Bebidas", Price(res.TotalDrinkPrice), Money(res.TotalDrinkPrice), "BRL"},
	)
	if len(p.Selection.Consumables) > 0 {
		spent.Lines = append(spent.Lines, Line{"Consumíveis", Price(res.TotalConsumablesPrice), Money(res.TotalConsumablesPrice), "BRL"})
	}
	if len(p.Selection.SideDishes) > 0 {
		spent.Lines = append(spent.Lines, Line{"Acompanhamentos", Price(res.TotalSideDishesPrice), Money(res.TotalSideDishesPrice), "BRL"})
	}
	spent.Lines = append(spent.Lines, Line{"Total", Price(res.TotalPrice), Money(res.TotalPrice), "BRL"})
	out = append(out, spent)

	if fields := p.Address.Fields(); len(fields) > 0 {
		addr := Section{Title: "Endereço"}
		for _, f := range fields {
			addr.Lines = append(addr.Lines, Line{Label: f.Label, Value: f.Value})
		}
		out = append(out, addr)
	}
	return out
}

// Summary текст итогового сообщения для Telegram.
func Summary(p Plan) string {
	var sb strings.Builder
	for i, s := range Sections(p) {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(s.Title)
		sb.WriteString("\n")
		for _, l := range s.Lines {
			sb.WriteString(fmt.Sprintf("— %s: %s\n", l.Label, l.Value))
		}
	}
	return sb.String()
}
