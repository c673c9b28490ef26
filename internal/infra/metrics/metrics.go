package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	Calculations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "churrasco_calculations_total",
		Help: "Recalculations of a barbecue plan by source (bot, api).",
	}, []string{"source"})

	CEPLookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "churrasco_cep_lookups_total",
		Help: "Postal code lookups by result (found, not_found, error).",
	}, []string{"result"})

	BotUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "churrasco_bot_updates_total",
		Help: "Telegram updates handled by kind (message, callback).",
	}, []string{"kind"})

	Exports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "churrasco_xlsx_exports_total",
		Help: "Plan summaries exported to xlsx.",
	})
)

// CEPResult метка для CEPLookups по ошибке поиска.
func CEPResult(err error, notFound bool) string {
	switch {
	case err == nil:
		return "found"
	case notFound:
		return "not_found"
	}
	return "error"
}
