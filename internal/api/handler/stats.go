package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"

	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/configuring"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/reporting"
	"github.com/bronzebyte/customer-stats-api/pkg/apiErrors"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
	"github.com/bronzebyte/customer-stats-api/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// GetCustomerStats retorna o dashboard de estatísticas do cliente logado.
// Sem autenticação ou com o dashboard desabilitado a resposta sai vazia em
// silêncio, como o conteúdo do painel original.
func GetCustomerStats(service reporting.Reporter, settings configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyCustomer).(*domain.Claims)
		if !ok {
			logger.Debug("stats: requisição sem autenticação, resposta vazia")
			return
		}

		if !settings.CustomerStatsEnabled() {
			logger.Info("stats: dashboard desabilitado nas configurações da loja")
			return
		}

		logger.WithField("customer_id", claims.CustomerID).Info("stats: montando dashboard do cliente")

		stats, err := service.GetCustomerStats(claims.CustomerID)
		if err != nil {
			logger.WithError(err).WithField("customer_id", claims.CustomerID).
				Error("stats: erro ao agregar estatísticas do cliente")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar estatísticas", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(stats); err != nil {
			logger.WithError(err).Error("stats: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
