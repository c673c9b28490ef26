package bot

import (
	"fmt"
	"slices"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/churrasco-bot/internal/domain/calculator"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
	"github.com/Spok95/churrasco-bot/internal/report"
)

const (
	btnNewPlan = "Novo churrasco"
	btnSummary = "Resultado"
)

func navKeyboard(back bool, cancel bool) tgbotapi.InlineKeyboardMarkup {
	row := []tgbotapi.InlineKeyboardButton{}
	if back {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("⬅️ Voltar", "nav:back"))
	}
	if cancel {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData("✖️ Cancelar", "nav:cancel"))
	}
	return tgbotapi.NewInlineKeyboardMarkup(row)
}

// pickKeyboard по кнопке на позицию каталога, выбранные отмечены ✅.
// У гарниров показано число упаковок на текущих гостей, в том числе у невыбранных.
func pickKeyboard(cat catalog.Catalog, kind catalog.Kind, selected []string, g calculator.GuestCounts) tgbotapi.InlineKeyboardMarkup {
	var packs map[string]int
	if kind == catalog.KindSideDish && g.Total() > 0 {
		packs = calculator.SideDishQuantities(g, cat.SideDishes)
	}
	var rows [][]tgbotapi.InlineKeyboardButton
	for i, name := range cat.Names(kind) {
		label := itemLabel(cat, kind, name)
		if n, ok := packs[name]; ok {
			label = fmt.Sprintf("%s · %d un", label, n)
		}
		if slices.Contains(selected, name) {
			label = "✅ " + label
		}
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("plan:toggle:%s:%d", kind, i)),
		))
	}
	rows = append(rows,
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Próximo ➡️", fmt.Sprintf("plan:next:%s", kind)),
		),
		navKeyboard(true, true).InlineKeyboard[0],
	)
	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func itemLabel(cat catalog.Catalog, kind catalog.Kind, name string) string {
	switch kind {
	case catalog.KindMeat:
		if m, ok := cat.FindMeat(name); ok {
			return fmt.Sprintf("%s · %s/kg", m.Name, report.Price(m.Price))
		}
	case catalog.KindDrink:
		if d, ok := cat.FindDrink(name); ok {
			return fmt.Sprintf("%s · %s", d.Name, report.Price(d.Price))
		}
	case catalog.KindConsumable:
		if c, ok := cat.FindConsumable(name); ok {
			return fmt.Sprintf("%s · %s", c.Name, report.Price(c.Price))
		}
	case catalog.KindSideDish:
		if s, ok := cat.FindSideDish(name); ok {
			return fmt.Sprintf("%s · %s", s.Name, report.Price(s.Price))
		}
	}
	return name
}

func contactKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Pular", "addr:skip"),
		),
		navKeyboard(true, true).InlineKeyboard[0],
	)
}

func summaryKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("📥 Baixar planilha", "sum:xlsx"),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 Novo churrasco", "plan:new"),
		),
		navKeyboard(true, false).InlineKeyboard[0],
	)
}

// mainReplyKeyboard нижняя панель
func mainReplyKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]tgbotapi.KeyboardButton{
			{tgbotapi.NewKeyboardButton(btnNewPlan), tgbotapi.NewKeyboardButton(btnSummary)},
		},
	}
}
