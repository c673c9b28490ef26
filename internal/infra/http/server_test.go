package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Spok95/churrasco-bot/internal/domain/calculator"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
	"github.com/Spok95/churrasco-bot/internal/infra/cep"
)

type fakeCEP struct {
	res cep.Result
	err error
}

func (f fakeCEP) Lookup(_ context.Context, _ string) (cep.Result, error) { return f.res, f.err }

func performRequest(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	reqBody := &bytes.Buffer{}
	if body != nil {
		if s, ok := body.(string); ok {
			reqBody.WriteString(s)
		} else {
			raw, err := json.Marshal(body)
			if err != nil {
				panic("failed to marshal request body: " + err.Error())
			}
			reqBody.Write(raw)
		}
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	res := httptest.NewRecorder()
	router.ServeHTTP(res, req)
	return res
}

func newRouter(t *testing.T, metrics bool, lookup fakeCEP) *gin.Engine {
	t.Helper()
	return NewRouter(metrics, Deps{Catalog: catalog.Default(), CEP: lookup})
}

func TestHealthAndMetrics(t *testing.T) {
	r := newRouter(t, true, fakeCEP{})

	w := performRequest(r, http.MethodGet, "/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "OK", w.Body.String())
	assert.NotEmpty(t, w.Header().Get(requestIDHeader))

	w = performRequest(r, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	noMetrics := newRouter(t, false, fakeCEP{})
	w = performRequest(noMetrics, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newRouter(t, false, fakeCEP{})
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(requestIDHeader, "abc-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "abc-123", w.Header().Get(requestIDHeader))
}

func TestGetCatalog(t *testing.T) {
	r := newRouter(t, false, fakeCEP{})

	w := performRequest(r, http.MethodGet, "/api/catalog", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var c catalog.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &c))
	assert.Len(t, c.Meats, 9)
	assert.Equal(t, "Cerveja", c.Drinks[2].Name)
}

func TestCalculate(t *testing.T) {
	r := newRouter(t, false, fakeCEP{})

	t.Run("happy path", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/calculate", CalculateRequest{
			Guests: calculator.GuestCounts{Man: 2, Woman: 2, Kid: 1},
			Meats:  []string{"Picanha", "Unknown"},
			Drinks: []string{"Cerveja"},
		})
		require.Equal(t, http.StatusOK, w.Code)

		var resp CalculateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, 5600, resp.Results.TotalDrinkVolume, 1e-9)
		assert.InDelta(t, 2.25, resp.Results.TotalMeatKg, 1e-9)
		assert.Len(t, resp.Selection.Meats, 1)
		assert.Contains(t, resp.Results.IndividualPrice, calculator.Kid)
		assert.Equal(t, 1, resp.SideDishQuantities["Pão de Alho"])
	})

	t.Run("negative guests", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/calculate", CalculateRequest{
			Guests: calculator.GuestCounts{Man: -1},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("malformed body", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/calculate", "{not json")
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty plan is zero", func(t *testing.T) {
		w := performRequest(r, http.MethodPost, "/api/calculate", CalculateRequest{})
		require.Equal(t, http.StatusOK, w.Code)

		var resp CalculateResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Results.TotalPrice)
		assert.Empty(t, resp.Results.IndividualPrice)
	})
}

func TestLookupCEP(t *testing.T) {
	found := fakeCEP{res: cep.Result{Street: "Praça da Sé", Neighborhood: "Sé", City: "São Paulo"}}

	t.Run("found", func(t *testing.T) {
		w := performRequest(newRouter(t, false, found), http.MethodGet, "/api/cep/01001-000", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp CEPResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, CEPResponse{CEP: "01001000", Street: "Praça da Sé", Neighborhood: "Sé", City: "São Paulo"}, resp)
	})

	t.Run("not found", func(t *testing.T) {
		w := performRequest(newRouter(t, false, fakeCEP{err: cep.ErrNotFound}), http.MethodGet, "/api/cep/99999999", nil)
		require.Equal(t, http.StatusNotFound, w.Code)

		var resp CEPResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, "", resp.Street)
		assert.Equal(t, "", resp.City)
	})

	t.Run("service failure", func(t *testing.T) {
		w := performRequest(newRouter(t, false, fakeCEP{err: errors.New("timeout")}), http.MethodGet, "/api/cep/01001000", nil)
		assert.Equal(t, http.StatusBadGateway, w.Code)
	})

	t.Run("malformed", func(t *testing.T) {
		w := performRequest(newRouter(t, false, found), http.MethodGet, "/api/cep/123", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
