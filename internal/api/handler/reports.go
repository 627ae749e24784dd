package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/cake-manager-api/internal/domain"
	"github.com/vfg2006/cake-manager-api/internal/usecases/reporting"
	"github.com/vfg2006/cake-manager-api/pkg/apiErrors"
	"github.com/vfg2006/cake-manager-api/pkg/log"
	"github.com/vfg2006/cake-manager-api/pkg/utils"
)

// parseRangeFilters extrai e valida os parâmetros start_date/end_date da query
func parseRangeFilters(r *http.Request) (*domain.ReportFilters, string, error) {
	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return nil, "start_date", err
	}

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return nil, "end_date", err
	}

	return &domain.ReportFilters{
		StartDate: startDate,
		EndDate:   endDate,
	}, "", nil
}

func GetRangeReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, param, err := parseRangeFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"param": param,
				"value": r.URL.Query().Get(param),
				"error": err.Error(),
			}).Warn("reports: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Parâmetro de data inválido: "+param, nil)
			return
		}

		if filters.StartDate.After(*filters.EndDate) {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
			}).Warn("reports: start_date after end_date")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "A data de início não pode ser posterior à data de fim", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Info("reports: generating range report")

		report, err := service.RangeReport(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to generate range report")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar o relatório do intervalo", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetDailyTotals(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filters, param, err := parseRangeFilters(r)
		if err != nil {
			logger.WithFields(log.Fields{
				"param": param,
				"value": r.URL.Query().Get(param),
				"error": err.Error(),
			}).Warn("reports: invalid date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidDateRange, "Parâmetro de data inválido: "+param, nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": filters.StartDate.Format(time.DateOnly),
			"end_date":   filters.EndDate.Format(time.DateOnly),
		}).Info("reports: generating daily totals")

		totals, err := service.DailyTotals(r.Context(), filters)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": filters.StartDate.Format(time.DateOnly),
				"end_date":   filters.EndDate.Format(time.DateOnly),
				"error":      err.Error(),
			}).Error("reports: failed to generate daily totals")

			apiErrors.WriteError(w, apiErrors.ErrReportGeneration, "Erro ao gerar os totais diários", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(totals); err != nil {
			logger.WithField("error", err.Error()).Error("reports: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
