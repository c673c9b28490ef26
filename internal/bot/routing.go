package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/Spok95/churrasco-bot/internal/dialog"
	"github.com/Spok95/churrasco-bot/internal/domain/address"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
)

const (
	maxGuestDigits = 3
	maxHostName    = 60
)

const helpText = "Comandos:\n" +
	"/novo — planejar um novo churrasco\n" +
	"/resultado — ver o resumo do churrasco atual\n" +
	"/planilha — baixar o resumo em Excel\n" +
	"/help — ajuda"

func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	switch msg.Command() {
	case "start":
		m := tgbotapi.NewMessage(chatID,
			"Olá! Eu calculo carne, bebida e rateio do seu churrasco.\nToque em «"+btnNewPlan+"» para começar.")
		m.ReplyMarkup = mainReplyKeyboard()
		b.send(m)
		return

	case "help":
		b.send(tgbotapi.NewMessage(chatID, helpText))
		return

	case "novo":
		b.startPlan(ctx, chatID, nil)
		return

	case "resultado":
		b.showCurrentSummary(ctx, chatID)
		return

	case "planilha":
		b.exportXLSX(ctx, chatID)
		return

	default:
		b.send(tgbotapi.NewMessage(chatID, "Comando desconhecido. Digite /help"))
		return
	}
}

func (b *Bot) showCurrentSummary(ctx context.Context, chatID int64) {
	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("load state failed", "chat_id", chatID, "err", err)
		return
	}
	if dialog.GetInt(st.Payload, dialog.KeyMen)+dialog.GetInt(st.Payload, dialog.KeyWomen)+
		dialog.GetInt(st.Payload, dialog.KeyKids) == 0 {
		b.send(tgbotapi.NewMessage(chatID, "Nenhum churrasco em andamento. Use /novo."))
		return
	}
	b.showSummary(ctx, chatID, st.Payload, nil)
}

func (b *Bot) handleStateMessage(ctx context.Context, msg *tgbotapi.Message) {
	chatID := msg.Chat.ID
	text := strings.TrimSpace(msg.Text)

	// Нижняя панель
	switch text {
	case btnNewPlan:
		b.startPlan(ctx, chatID, nil)
		return
	case btnSummary:
		b.showCurrentSummary(ctx, chatID)
		return
	}

	st, err := b.states.Get(ctx, chatID)
	if err != nil {
		b.log.Error("load state failed", "chat_id", chatID, "err", err)
		return
	}
	payload := st.Payload

	switch st.State {
	case dialog.StatePlanMen, dialog.StatePlanWomen, dialog.StatePlanKids:
		n, ok := parseGuestCount(text)
		if !ok {
			b.send(tgbotapi.NewMessage(chatID, "Envie apenas números, por exemplo: 4"))
			return
		}
		payload[guestKeys[st.State]] = n
		b.showStep(ctx, chatID, nextState(st.State), payload, nil)

	case dialog.StateAddrCEP:
		code := address.DigitsOnly(text, 0)
		if len(code) != address.MaxCEP {
			b.send(tgbotapi.NewMessage(chatID, "O CEP deve ter 8 dígitos, por exemplo: 01001-000"))
			return
		}
		b.lookupCEP(ctx, chatID, payload, code)

	case dialog.StateAddrNumber:
		num := address.DigitsOnly(text, address.MaxNumber)
		if num == "" {
			b.send(tgbotapi.NewMessage(chatID, "Informe o número do endereço (apenas dígitos)."))
			return
		}
		if !b.updateAddress(payload, func(a *address.Address) { a.Number = num }) {
			return
		}
		b.showStep(ctx, chatID, dialog.StateHostName, payload, nil)

	case dialog.StateHostName:
		name := normalizeName(text)
		if name == "" {
			b.send(tgbotapi.NewMessage(chatID, "Informe o nome do responsável."))
			return
		}
		if !b.updateAddress(payload, func(a *address.Address) { a.HostName = name }) {
			return
		}
		b.showStep(ctx, chatID, dialog.StateHostContact, payload, nil)

	case dialog.StateHostContact:
		phone := address.DigitsOnly(text, address.MaxContact)
		if len(phone) < 10 {
			b.send(tgbotapi.NewMessage(chatID, "Telefone inválido. Envie DDD + número, por exemplo: 11987654321"))
			return
		}
		if !b.updateAddress(payload, func(a *address.Address) { a.HostContact = phone }) {
			return
		}
		b.showStep(ctx, chatID, dialog.StateSummary, payload, nil)

	case dialog.StatePlanMeats, dialog.StatePlanDrinks, dialog.StatePlanConsumables, dialog.StatePlanSideDishes:
		b.send(tgbotapi.NewMessage(chatID, "Use os botões acima para escolher os itens."))

	default:
		b.send(tgbotapi.NewMessage(chatID, "Para começar, toque em «"+btnNewPlan+"» ou digite /novo."))
	}
}

// updateAddress правит адрес в payload.
func (b *Bot) updateAddress(payload dialog.Payload, fn func(a *address.Address)) bool {
	a, err := addressFromPayload(payload)
	if err != nil {
		b.log.Warn("stored address dropped", "err", err)
	}
	fn(&a)
	if err := dialog.Put(payload, dialog.KeyAddress, a); err != nil {
		b.log.Error("encode address failed", "err", err)
		return false
	}
	return true
}

// parseGuestCount из ввода оставляем только цифры.
func parseGuestCount(text string) (int, bool) {
	digits := address.DigitsOnly(text, 0)
	if digits == "" || len(digits) > maxGuestDigits {
		return 0, false
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}

func normalizeName(text string) string {
	name := strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(name) > maxHostName {
		name = string([]rune(name)[:maxHostName])
	}
	return name
}

// parseToggle разбирает plan:toggle:<kind>:<idx>.
func parseToggle(data string) (catalog.Kind, int, bool) {
	parts := strings.Split(data, ":")
	if len(parts) != 4 || parts[0] != "plan" || parts[1] != "toggle" {
		return "", 0, false
	}
	idx, err := strconv.Atoi(parts[3])
	if err != nil || idx < 0 {
		return "", 0, false
	}
	return catalog.Kind(parts[2]), idx, true
}

// isStaleCallback кнопки живы только у последнего сообщения шага.
func isStaleCallback(p dialog.Payload, msgID int) bool {
	return dialog.GetInt(p, dialog.KeyLastMID) != msgID
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := cb.Data
	fromChat := cb.Message.Chat.ID
	msgID := cb.Message.MessageID

	st, err := b.states.Get(ctx, fromChat)
	if err != nil {
		b.log.Error("load state failed", "chat_id", fromChat, "err", err)
		_ = b.answerCallback(cb, "Erro", true)
		return
	}
	// кнопка с чужого (старого) шага, в том числе отмена и выгрузка
	if isStaleCallback(st.Payload, msgID) {
		b.editTextAndClear(fromChat, msgID, cb.Message.Text)
		_ = b.answerCallback(cb, "Este passo já foi concluído.", false)
		return
	}

	switch {
	case data == "nav:cancel":
		if err := b.states.Reset(ctx, fromChat); err != nil {
			b.log.Error("reset state failed", "chat_id", fromChat, "err", err)
			_ = b.answerCallback(cb, "Erro", true)
			return
		}
		b.editTextAndClear(fromChat, msgID, "Operação cancelada.")
		_ = b.answerCallback(cb, "Cancelado", false)

	case data == "plan:new":
		b.startPlan(ctx, fromChat, &msgID)
		_ = b.answerCallback(cb, "", false)

	case data == "sum:xlsx":
		b.exportXLSX(ctx, fromChat)
		_ = b.answerCallback(cb, "Gerando planilha…", false)

	case data == "nav:back":
		prev := prevState(st.State)
		if prev == "" {
			_ = b.answerCallback(cb, "", false)
			return
		}
		b.showStep(ctx, fromChat, prev, st.Payload, &msgID)
		_ = b.answerCallback(cb, "", false)

	case strings.HasPrefix(data, "plan:toggle:"):
		kind, idx, ok := parseToggle(data)
		want, known := pickState(kind)
		names := b.catalog.Names(kind)
		if !ok || !known || want != st.State || idx >= len(names) {
			_ = b.answerCallback(cb, "Opção inválida", false)
			return
		}
		dialog.Toggle(st.Payload, pickSteps[want].key, names[idx])
		b.showStep(ctx, fromChat, st.State, st.Payload, &msgID)
		_ = b.answerCallback(cb, "", false)

	case strings.HasPrefix(data, "plan:next:"):
		want, known := pickState(catalog.Kind(strings.TrimPrefix(data, "plan:next:")))
		if !known || want != st.State {
			_ = b.answerCallback(cb, "Opção inválida", false)
			return
		}
		b.showStep(ctx, fromChat, nextState(st.State), st.Payload, &msgID)
		_ = b.answerCallback(cb, "", false)

	case data == "addr:skip":
		if st.State != dialog.StateHostContact {
			_ = b.answerCallback(cb, "Opção inválida", false)
			return
		}
		b.showStep(ctx, fromChat, dialog.StateSummary, st.Payload, &msgID)
		_ = b.answerCallback(cb, "", false)

	default:
		b.log.Debug("unknown callback", "data", data)
		_ = b.answerCallback(cb, fmt.Sprintf("Ação desconhecida: %s", data), false)
	}
}
