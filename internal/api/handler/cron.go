package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/bronzebyte/customer-stats-api/internal/scheduler"
	"github.com/bronzebyte/customer-stats-api/pkg/apiErrors"
)

// Tipos de cron job disponíveis para execução manual
const (
	CronJobTypeWishlistProbe = "wishlist-probe"
)

// CronJobServices contém os agendadores expostos para execução manual
type CronJobServices struct {
	WishlistProbeService *scheduler.WishlistProbeService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeWishlistProbe:
			if services.WishlistProbeService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de verificação de wishlist não disponível", nil)
				return
			}
			services.WishlistProbeService.TriggerManualProbe()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: wishlist-probe", nil)
			return
		}

		logrus.WithField("type", cronType).Info("Cron job disparada manualmente")

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := map[string]any{}

		if services.WishlistProbeService != nil {
			status["wishlist_probe"] = services.WishlistProbeService.Status()
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	}
}
