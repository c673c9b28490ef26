package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Spok95/churrasco-bot/internal/domain/address"
	"github.com/Spok95/churrasco-bot/internal/domain/calculator"
	"github.com/Spok95/churrasco-bot/internal/domain/catalog"
	"github.com/Spok95/churrasco-bot/internal/infra/metrics"
)

type apiHandler struct {
	log     *slog.Logger
	catalog catalog.Catalog
	cep     address.Lookuper
}

type CalculateRequest struct {
	Guests      calculator.GuestCounts `json:"guests"`
	Meats       []string               `json:"meats"`
	Drinks      []string               `json:"drinks"`
	Consumables []string               `json:"consumables"`
	SideDishes  []string               `json:"side_dishes"`
}

type CalculateResponse struct {
	Guests             calculator.GuestCounts `json:"guests"`
	Selection          calculator.Selection   `json:"selection"`
	Results            calculator.Results     `json:"results"`
	SideDishQuantities map[string]int         `json:"side_dish_quantities"`
}

type CEPResponse struct {
	CEP          string `json:"cep"`
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	City         string `json:"city"`
}

func (h *apiHandler) getCatalog(c *gin.Context) {
	c.JSON(http.StatusOK, h.catalog)
}

func (h *apiHandler) calculate(c *gin.Context) {
	var req CalculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	g := req.Guests
	if g.Man < 0 || g.Woman < 0 || g.Kid < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "guest counts must be non-negative"})
		return
	}

	p := calculator.NewPlanner()
	p.SetGuests(g)
	p.SetMeats(h.catalog.ResolveMeats(req.Meats))
	p.SetDrinks(h.catalog.ResolveDrinks(req.Drinks))
	p.SetConsumables(h.catalog.ResolveConsumables(req.Consumables))
	p.SetSideDishes(h.catalog.ResolveSideDishes(req.SideDishes))
	metrics.Calculations.WithLabelValues("api").Inc()

	c.JSON(http.StatusOK, CalculateResponse{
		Guests:             p.Guests(),
		Selection:          p.Selection(),
		Results:            p.Results(),
		SideDishQuantities: calculator.SideDishQuantities(p.Guests(), h.catalog.SideDishes),
	})
}

func (h *apiHandler) lookupCEP(c *gin.Context) {
	code := address.DigitsOnly(c.Param("cep"), 0)
	if len(code) != address.MaxCEP {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cep must have 8 digits"})
		return
	}

	a, err := address.Fill(c.Request.Context(), h.cep, address.Address{}.WithCEP(code))
	notFound := errors.Is(err, address.ErrNotFound)
	metrics.CEPLookups.WithLabelValues(metrics.CEPResult(err, notFound)).Inc()

	switch {
	case notFound:
		c.JSON(http.StatusNotFound, CEPResponse{CEP: a.CEP})
		return
	case err != nil:
		if h.log != nil {
			h.log.Error("cep lookup failed", "cep", code, "err", err)
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": "cep service unavailable"})
		return
	}
	c.JSON(http.StatusOK, CEPResponse{CEP: a.CEP, Street: a.Street, Neighborhood: a.Neighborhood, City: a.City})
}
