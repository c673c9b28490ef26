package calculator

import (
	"slices"

	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
)

// Planner хранит состояние одного планирования и пересчитывает результат после каждого изменения.
// Не потокобезопасен: изменения последовательны в рамках одного чата.
type Planner struct {
	guests GuestCounts
	sel    Selection
	res    Results
}

func NewPlanner() *Planner {
	p := &Planner{}
	p.recalculate()
	return p
}

func (p *Planner) SetGuests(g GuestCounts) {
	p.guests = g.normalized()
	p.recalculate()
}

func (p *Planner) SetMeats(m []catalog.Meat) {
	p.sel.Meats = slices.Clone(m)
	p.recalculate()
}

func (p *Planner) SetDrinks(d []catalog.Drink) {
	p.sel.Drinks = slices.Clone(d)
	p.recalculate()
}

func (p *Planner) SetConsumables(c []catalog.Consumable) {
	p.sel.Consumables = slices.Clone(c)
	p.recalculate()
}

func (p *Planner) SetSideDishes(s []catalog.SideDish) {
	p.sel.SideDishes = slices.Clone(s)
	p.recalculate()
}

func (p *Planner) Guests() GuestCounts { return p.guests }

func (p *Planner) Selection() Selection { return p.sel }

func (p *Planner) Results() Results { return p.res }

func (p *Planner) recalculate() {
	p.res = Calculate(p.guests, p.sel)
}
