package cep

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/01001000/json/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"cep":"01001-000","logradouro":"Praça da Sé","bairro":"Sé","localidade":"São Paulo","uf":"SP"}`))
	})
	mux.HandleFunc("/99999999/json/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"erro": true}`))
	})
	mux.HandleFunc("/88888888/json/", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"erro": "true"}`))
	})
	mux.HandleFunc("/77777777/json/", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLookup(t *testing.T) {
	srv := newTestServer(t)
	c := NewClient(srv.URL+"/", time.Second)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		res, err := c.Lookup(ctx, "01001000")
		require.NoError(t, err)
		assert.Equal(t, "Praça da Sé", res.Street)
		assert.Equal(t, "Sé", res.Neighborhood)
		assert.Equal(t, "São Paulo", res.City)
		assert.Equal(t, "SP", res.State)
	})

	t.Run("erro flag", func(t *testing.T) {
		_, err := c.Lookup(ctx, "99999999")
		assert.ErrorIs(t, err, ErrNotFound)

		_, err = c.Lookup(ctx, "88888888")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("unknown path", func(t *testing.T) {
		_, err := c.Lookup(ctx, "12345678")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("server error", func(t *testing.T) {
		_, err := c.Lookup(ctx, "77777777")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrNotFound)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, code := range []string{"", "0100100", "01001-000", "abcdefgh"} {
			_, err := c.Lookup(ctx, code)
			assert.ErrorIs(t, err, ErrInvalid, code)
		}
	})
}
