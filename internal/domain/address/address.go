package address

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Spok95/churrasco-bot/internal/infra/cep"
)

// Максимальная длина цифровых полей формы.
const (
	MaxCEP     = 8
	MaxNumber  = 5
	MaxContact = 11
)

var ErrNotFound = errors.New("address not found for cep")

type Address struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Number       string `json:"number"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
	HostName     string `json:"host_name"`
	HostContact  string `json:"host_contact"`
}

type Lookuper interface {
	Lookup(ctx context.Context, code string) (cep.Result, error)
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// DigitsOnly убирает всё, кроме цифр, и обрезает до max (max <= 0 без ограничения).
func DigitsOnly(s string, max int) string {
	d := nonDigits.ReplaceAllString(s, "")
	if max > 0 && len(d) > max {
		d = d[:max]
	}
	return d
}

// WithCEP новый CEP сбрасывает найденные по старому поля.
func (a Address) WithCEP(code string) Address {
	a.CEP = DigitsOnly(code, MaxCEP)
	a.Street = ""
	a.Neighborhood = ""
	a.City = ""
	return a
}

// Fill ищет адрес по CEP. Если ничего не найдено, поля улицы/района/города остаются пустыми
// и возвращается ErrNotFound. Ошибки сети возвращаются обёрнутыми, адрес не меняется.
func Fill(ctx context.Context, l Lookuper, a Address) (Address, error) {
	res, err := l.Lookup(ctx, a.CEP)
	switch {
	case errors.Is(err, cep.ErrNotFound), errors.Is(err, cep.ErrInvalid):
		return a.WithCEP(a.CEP), ErrNotFound
	case err != nil:
		return a, fmt.Errorf("lookup cep %s: %w", a.CEP, err)
	}
	if res.Street == "" && res.Neighborhood == "" && res.City == "" {
		return a.WithCEP(a.CEP), ErrNotFound
	}
	a.Street = res.Street
	a.Neighborhood = res.Neighborhood
	a.City = res.City
	return a, nil
}

// Complete все обязательные поля формы заполнены.
func (a Address) Complete() bool {
	for _, v := range []string{a.CEP, a.Street, a.Number, a.Neighborhood, a.City, a.HostName} {
		if strings.TrimSpace(v) == "" {
			return false
		}
	}
	return true
}

var (
	cepMask      = regexp.MustCompile(`^(\d{5})(\d{3})$`)
	mobileMask   = regexp.MustCompile(`^(\d{2})(\d{5})(\d{4})$`)
	landlineMask = regexp.MustCompile(`^(\d{2})(\d{4})(\d{4})$`)
	phoneFormat  = "($1) $2-$3"
)

func FormatCEP(code string) string {
	return cepMask.ReplaceAllString(code, "$1-$2")
}

func FormatPhone(phone string) string {
	switch len(phone) {
	case 11:
		return mobileMask.ReplaceAllString(phone, phoneFormat)
	case 10:
		return landlineMask.ReplaceAllString(phone, phoneFormat)
	}
	return phone
}

type Field struct {
	Label string
	Value string
}

// Fields непустые поля в порядке вывода итоговой сводки.
func (a Address) Fields() []Field {
	all := []Field{
		{"CEP", FormatCEP(a.CEP)},
		{"Rua", a.Street},
		{"Número", a.Number},
		{"Bairro", a.Neighborhood},
		{"Cidade", a.City},
		{"Nome do Responsável", a.HostName},
		{"Contato", FormatPhone(a.HostContact)},
	}
	out := make([]Field, 0, len(all))
	for _, f := range all {
		if f.Value != "" {
			out = append(out, f)
		}
	}
	return out
}
