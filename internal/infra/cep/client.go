package cep

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"strings"
	"time"
)

var (
	ErrNotFound = errors.New("cep not found")
	ErrInvalid  = errors.New("cep must have 8 digits")
)

var cepRe = regexp.MustCompile(`^\d{8}$`)

// Result поля ответа ViaCEP, которые нужны форме адреса.
type Result struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
}

type viaCEPResponse struct {
	Result
	Erro any `json:"erro"`
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// Lookup один запрос без повторов. Пустой ответ или {"erro": true} -> ErrNotFound.
func (c *Client) Lookup(ctx context.Context, code string) (Result, error) {
	if !cepRe.MatchString(code) {
		return Result{}, ErrInvalid
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/%s/json/", c.baseURL, code), nil)
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("cep request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	// ViaCEP отвечает 400 на некорректный формат
	if resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusNotFound {
		return Result{}, ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("cep service returned status %s", resp.Status)
	}

	var body viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Result{}, fmt.Errorf("decode cep response: %w", err)
	}
	if isErro(body.Erro) || (body.Street == "" && body.City == "") {
		return Result{}, ErrNotFound
	}
	return body.Result, nil
}

// isErro ViaCEP присылает "erro": true, в новых версиях встречается "erro": "true".
func isErro(v any) bool {
	switch x := v.(type) {
	case bool:
		return x
	case string:
		return x == "true"
	}
	return false
}
