package bot

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/churrasco-bot/internal/dialog"
	"github.com/Spok95/churrasco-bot/internal/domain/address"
	"github.com/Spok95/churrasco-bot/internal/domain/calculator"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
	"github.com/Spok95/churrasco-bot/internal/infra/metrics"
	"github.com/Spok95/churrasco-bot/internal/report"
)

// flow порядок шагов мастера.
var flow = []dialog.State{
	dialog.StatePlanMen,
	dialog.StatePlanWomen,
	dialog.StatePlanKids,
	dialog.StatePlanMeats,
	dialog.StatePlanDrinks,
	dialog.StatePlanConsumables,
	dialog.StatePlanSideDishes,
	dialog.StateAddrCEP,
	dialog.StateAddrNumber,
	dialog.StateHostName,
	dialog.StateHostContact,
	dialog.StateSummary,
}

func nextState(s dialog.State) dialog.State {
	i := slices.Index(flow, s)
	if i < 0 || i == len(flow)-1 {
		return ""
	}
	return flow[i+1]
}

func prevState(s dialog.State) dialog.State {
	i := slices.Index(flow, s)
	if i <= 0 {
		return ""
	}
	return flow[i-1]
}

var guestKeys = map[dialog.State]string{
	dialog.StatePlanMen:   dialog.KeyMen,
	dialog.StatePlanWomen: dialog.KeyWomen,
	dialog.StatePlanKids:  dialog.KeyKids,
}

type pickStep struct {
	kind catalog.Kind
	key  string
}

var pickSteps = map[dialog.State]pickStep{
	dialog.StatePlanMeats:       {catalog.KindMeat, dialog.KeyMeats},
	dialog.StatePlanDrinks:      {catalog.KindDrink, dialog.KeyDrinks},
	dialog.StatePlanConsumables: {catalog.KindConsumable, dialog.KeyConsumables},
	dialog.StatePlanSideDishes:  {catalog.KindSideDish, dialog.KeySideDishes},
}

// pickState шаг выбора для вида позиций каталога.
func pickState(kind catalog.Kind) (dialog.State, bool) {
	for st, ps := range pickSteps {
		if ps.kind == kind {
			return st, true
		}
	}
	return "", false
}

var prompts = map[dialog.State]string{
	dialog.StatePlanMen:         "Quantos homens vão ao churrasco?",
	dialog.StatePlanWomen:       "Quantas mulheres?",
	dialog.StatePlanKids:        "Quantas crianças?",
	dialog.StatePlanMeats:       "Escolha as carnes:",
	dialog.StatePlanDrinks:      "Escolha as bebidas:",
	dialog.StatePlanConsumables: "Escolha os consumíveis:",
	dialog.StatePlanSideDishes:  "Escolha os acompanhamentos:",
	dialog.StateAddrCEP:         "Informe o CEP do local (8 dígitos):",
	dialog.StateAddrNumber:      "Informe o número:",
	dialog.StateHostName:        "Nome do responsável:",
	dialog.StateHostContact:     "Telefone de contato com DDD:",
}

// planFromPayload собирает план из payload: гости и выбор идут через Planner,
// так что результаты всегда пересчитаны. Ошибка разбора адреса не мешает расчёту:
// план возвращается с пустым адресом.
func planFromPayload(cat catalog.Catalog, p dialog.Payload) (report.Plan, error) {
	pl := calculator.NewPlanner()
	pl.SetGuests(calculator.GuestCounts{
		Man:   dialog.GetInt(p, dialog.KeyMen),
		Woman: dialog.GetInt(p, dialog.KeyWomen),
		Kid:   dialog.GetInt(p, dialog.KeyKids),
	})
	pl.SetMeats(cat.ResolveMeats(dialog.GetStrings(p, dialog.KeyMeats)))
	pl.SetDrinks(cat.ResolveDrinks(dialog.GetStrings(p, dialog.KeyDrinks)))
	pl.SetConsumables(cat.ResolveConsumables(dialog.GetStrings(p, dialog.KeyConsumables)))
	pl.SetSideDishes(cat.ResolveSideDishes(dialog.GetStrings(p, dialog.KeySideDishes)))

	a, err := addressFromPayload(p)
	return report.Plan{
		Guests:    pl.Guests(),
		Selection: pl.Selection(),
		Results:   pl.Results(),
		Address:   a,
	}, err
}

func (b *Bot) plan(p dialog.Payload) report.Plan {
	metrics.Calculations.WithLabelValues("bot").Inc()
	plan, err := planFromPayload(b.catalog, p)
	if err != nil {
		b.log.Warn("decode address failed", "err", err)
	}
	return plan
}

func addressFromPayload(p dialog.Payload) (address.Address, error) {
	var a address.Address
	if err := dialog.Decode(p, dialog.KeyAddress, &a); err != nil {
		return address.Address{}, fmt.Errorf("decode address: %w", err)
	}
	return a, nil
}

type cepOutcome int

const (
	cepFound cepOutcome = iota
	cepNotFound
	cepFailed
)

// applyCEPLookup пишет результат address.Fill в payload. Если CEP не найден, сохраняется новый CEP
// с пустыми улицей, районом и городом. При ошибке сервиса payload не меняется.
func applyCEPLookup(p dialog.Payload, found address.Address, lookupErr error) (cepOutcome, error) {
	outcome := cepFound
	switch {
	case errors.Is(lookupErr, address.ErrNotFound):
		outcome = cepNotFound
	case lookupErr != nil:
		return cepFailed, nil
	}
	if err := dialog.Put(p, dialog.KeyAddress, found); err != nil {
		return outcome, fmt.Errorf("encode address: %w", err)
	}
	return outcome, nil
}

// stepText текст шага с промежуточным итогом.
func stepText(st dialog.State, plan report.Plan) string {
	var sb strings.Builder
	sb.WriteString(prompts[st])
	switch {
	case st == dialog.StatePlanWomen || st == dialog.StatePlanKids:
		sb.WriteString(fmt.Sprintf("\n\nConvidados até agora: %d", plan.Guests.Total()))
	case pickSteps[st].kind != "":
		sb.WriteString(fmt.Sprintf("\n\nConvidados: %d\nTotal parcial: %s",
			plan.Guests.Total(), report.Price(plan.Results.TotalPrice)))
	case st == dialog.StateAddrNumber:
		a := plan.Address
		sb.WriteString(fmt.Sprintf("\n\n%s, %s - %s", a.Street, a.Neighborhood, a.City))
	}
	return sb.String()
}

// startPlan новый план с пустым payload.
func (b *Bot) startPlan(ctx context.Context, chatID int64, editMsgID *int) {
	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Warn("load state failed", "chat_id", chatID, "err", err)
	}
	payload := dialog.Payload{}
	if st != nil && editMsgID == nil {
		// кнопки прошлого шага убираем, прочие данные не переносим
		b.clearPrevStep(chatID, st.Payload)
	}
	b.showStep(ctx, chatID, dialog.StatePlanMen, payload, editMsgID)
}

func (b *Bot) showStep(ctx context.Context, chatID int64, st dialog.State, payload dialog.Payload, editMsgID *int) {
	if st == dialog.StateSummary {
		b.showSummary(ctx, chatID, payload, editMsgID)
		return
	}
	plan := b.plan(payload)
	text := stepText(st, plan)

	var kb tgbotapi.InlineKeyboardMarkup
	switch {
	case pickSteps[st].kind != "":
		ps := pickSteps[st]
		kb = pickKeyboard(b.catalog, ps.kind, dialog.GetStrings(payload, ps.key), plan.Guests)
	case st == dialog.StateHostContact:
		kb = contactKeyboard()
	default:
		kb = navKeyboard(st != dialog.StatePlanMen, true)
	}
	b.render(ctx, chatID, editMsgID, st, payload, text, kb)
}

func (b *Bot) showSummary(ctx context.Context, chatID int64, payload dialog.Payload, editMsgID *int) {
	b.render(ctx, chatID, editMsgID, dialog.StateSummary, payload, summaryText(b.plan(payload)), summaryKeyboard())
}

const incompleteAddressNote = "⚠️ Endereço incompleto. Use «⬅️ Voltar» para completar os dados do local."

func summaryText(plan report.Plan) string {
	text := "Resumo do churrasco\n\n" + report.Summary(plan)
	if !plan.Address.Complete() {
		text += "\n" + incompleteAddressNote
	}
	return text
}

// exportXLSX выгружает итоговую сводку в Excel и отправляет документом.
func (b *Bot) exportXLSX(ctx context.Context, chatID int64) {
	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("load state failed", "chat_id", chatID, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Erro ao carregar o plano."))
		return
	}
	plan := b.plan(st.Payload)
	if plan.Guests.Total() == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Nenhum churrasco em andamento. Use /novo."))
		return
	}

	data, err := report.Workbook(plan)
	if err != nil {
		b.log.Error("build workbook failed", "chat_id", chatID, "err", err)
		b.send(tgbotapi.NewMessage(chatID, "Erro ao gerar a planilha."))
		return
	}

	fileName := fmt.Sprintf("churrasco_%s.xlsx", time.Now().In(b.loc).Format("20060102_150405"))
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  fileName,
		Bytes: data,
	})
	doc.Caption = fmt.Sprintf("Planilha do churrasco: %d convidados, total %s.",
		plan.Guests.Total(), report.Price(plan.Results.TotalPrice))
	b.send(doc)
	metrics.Exports.Inc()
}

// lookupCEP ищет адрес и переводит на ввод номера. Если не найден, остаёмся на шаге CEP.
func (b *Bot) lookupCEP(ctx context.Context, chatID int64, payload dialog.Payload, code string) {
	a, err := addressFromPayload(payload)
	if err != nil {
		b.log.Warn("stored address dropped", "chat_id", chatID, "err", err)
	}
	found, lookupErr := address.Fill(ctx, b.cep, a.WithCEP(code))
	notFound := errors.Is(lookupErr, address.ErrNotFound)
	metrics.CEPLookups.WithLabelValues(metrics.CEPResult(lookupErr, notFound)).Inc()

	outcome, err := applyCEPLookup(payload, found, lookupErr)
	if err != nil {
		b.log.Error("save address failed", "chat_id", chatID, "err", err)
		return
	}

	switch outcome {
	case cepNotFound:
		b.send(tgbotapi.NewMessage(chatID, "CEP não encontrado. Verifique e envie novamente."))
		b.showStep(ctx, chatID, dialog.StateAddrCEP, payload, nil)
	case cepFailed:
		b.log.Warn("cep lookup failed", "cep", code, "err", lookupErr)
		b.send(tgbotapi.NewMessage(chatID, "Serviço de CEP indisponível. Tente novamente em instantes."))
		b.showStep(ctx, chatID, dialog.StateAddrCEP, payload, nil)
	default:
		b.showStep(ctx, chatID, dialog.StateAddrNumber, payload, nil)
	}
}
