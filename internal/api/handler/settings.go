package handler

import (
	"net/http"

	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/configuring"
	"github.com/bronzebyte/customer-stats-api/pkg/apiErrors"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
)

// GetStoreSettings retorna as configurações da loja para o administrador
func GetStoreSettings(service configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		settings, err := service.GetSettings()
		if err != nil {
			logger.WithError(err).Error("settings: erro ao buscar configurações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao buscar configurações", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logger.WithError(err).Error("settings: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}

// UpdateStoreSettings altera as configurações da loja. Hoje o único campo é
// o toggle do dashboard de estatísticas.
func UpdateStoreSettings(service configuring.SettingsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req domain.UpdateStoreSettingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		settings, err := service.UpdateSettings(&req)
		if err != nil {
			logger.WithError(err).Error("settings: erro ao salvar configurações")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao salvar configurações", nil)
			return
		}

		logger.WithField("customer_stats_enabled", settings.CustomerStatsEnabled).
			Info("settings: configurações atualizadas")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(settings); err != nil {
			logger.WithError(err).Error("settings: erro ao codificar resposta")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao enviar resposta", nil)
		}
	})
}
