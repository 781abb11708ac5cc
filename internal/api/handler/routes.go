package handler

import (
	"net/http"

	"github.com/bronzebyte/customer-stats-api/internal/api/handler/router"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/authenticating"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/configuring"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/exporting"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/reporting"
	"github.com/bronzebyte/customer-stats-api/pkg/middleware"
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

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: Register(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

// CustomerStats são as rotas do dashboard de estatísticas. Elas não levam o
// middleware de role: acesso sem autenticação produz resposta vazia, não 401.
func CustomerStats(
	reportService reporting.Reporter,
	exportService exporting.Exporter,
	settingsService configuring.SettingsService,
) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/me/stats",
			Method:  http.MethodGet,
			Handler: GetCustomerStats(reportService, settingsService),
		},
		{
			Path:    "/v1/me/orders/export",
			Method:  http.MethodPost,
			Handler: ExportRecentOrders(exportService),
		},
	}
}

func Settings(service configuring.SettingsService) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/settings",
			Method:      http.MethodGet,
			Handler:     GetStoreSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/settings",
			Method:      http.MethodPut,
			Handler:     UpdateStoreSettings(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/admin/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/admin/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
