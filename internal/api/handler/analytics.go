package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/cake-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/cake-manager-api/pkg/apiErrors"
	"github.com/vfg2006/cake-manager-api/pkg/log"
	"github.com/vfg2006/cake-manager-api/pkg/utils"
)

// InvalidateMonth incrementa a versão de um mês e descarta sua entrada do
// cache. É chamado pelo fluxo de escrita depois de registrar vendas ou
// despesas em um mês já fechado.
func InvalidateMonth(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		ym := httprouter.ParamsFromContext(r.Context()).ByName("ym")
		if ym == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Mês não informado", nil)
			return
		}

		if _, _, err := utils.MonthBounds(ym); err != nil {
			logger.WithField("ym", ym).Warn("analytics: invalid month key")
			apiErrors.WriteError(w, apiErrors.ErrInvalidMonthKey, "Mês inválido, formato esperado: YYYY-MM", nil)
			return
		}

		logger.WithField("ym", ym).Info("analytics: invalidating month")

		meta, err := service.InvalidateMonth(r.Context(), ym)
		if err != nil {
			logger.WithFields(log.Fields{
				"ym":    ym,
				"error": err.Error(),
			}).Error("analytics: failed to invalidate month")

			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Não foi possível invalidar o mês informado", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(meta); err != nil {
			logger.WithField("error", err.Error()).Error("analytics: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
