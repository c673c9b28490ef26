package report

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/Spok95/churrasco-bot/internal/domain/calculator"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var categoryLabels = map[calculator.Category]string{
	calculator.Man:   "Homem",
	calculator.Woman: "Mulher",
	calculator.Kid:   "Criança",
}

func CategoryLabel(c calculator.Category) string {
	if l, ok := categoryLabels[c]; ok {
		return l
	}
	return string(c)
}

// Money округление до копеек (половина от нуля).
func Money(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func Kg(v float64) string {
	return printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2))) + " kg"
}

// Liters от 1000 мл показывает литры с одним знаком, иначе миллилитры.
func Liters(ml float64) string {
	if ml >= 1000 {
		return printer.Sprint(number.Decimal(ml/1000, number.MaxFractionDigits(1))) + " l"
	}
	return printer.Sprint(number.Decimal(ml, number.MaxFractionDigits(3))) + " ml"
}

func Price(v float64) string {
	return "R$ " + printer.Sprint(number.Decimal(Money(v), number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
