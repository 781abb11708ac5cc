package domain

import "time"

// StoreSettings guarda as configurações da loja persistidas no banco.
// Hoje existe apenas o toggle do dashboard de estatísticas, habilitado por
// padrão, espelhando a opção da página de configurações original.
type StoreSettings struct {
	CustomerStatsEnabled bool      `json:"customer_stats_enabled"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// UpdateStoreSettingsRequest é o corpo aceito pelo endpoint administrativo
// de configurações. Campos nulos permanecem inalterados.
type UpdateStoreSettingsRequest struct {
	CustomerStatsEnabled *bool `json:"customer_stats_enabled"`
}
