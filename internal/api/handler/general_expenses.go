package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/cake-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/cake-manager-api/pkg/apiErrors"
	"github.com/vfg2006/cake-manager-api/pkg/log"
)

func GetGeneralExpenses(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, param, err := parseRangeFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"param": param,
				"value": r.URL.Query().Get(param),
				"error": err.Error(),
			}).Warn("general expenses: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Parâmetro de data inválido: "+param, nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Info("general expenses: fetching interval overlay")

		result, err := service.GeneralExpenses(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("general expenses: failed to fetch interval overlay")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar as despesas gerais do intervalo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(result); err != nil {
			logger.WithField("error", err.Error()).Error("general expenses: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
