package handler

import (
	"net/http"

	"github.com/vfg2006/cake-manager-api/internal/api/handler/router"
	"github.com/vfg2006/cake-manager-api/internal/usecases/reporting"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/range",
			Method:  http.MethodGet,
			Handler: GetRangeReport(service),
		},
		{
			Path:    "/v1/reports/daily",
			Method:  http.MethodGet,
			Handler: GetDailyTotals(service),
		},
	}
}

func GeneralExpenses(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/expenses/general",
			Method:  http.MethodGet,
			Handler: GetGeneralExpenses(service),
		},
	}
}

func Analytics(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/analytics/months/:ym/invalidate",
			Method:  http.MethodPost,
			Handler: InvalidateMonth(service),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
