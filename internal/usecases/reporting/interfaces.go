package reporting

import (
	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

// Reporter monta o dashboard de estatísticas de um cliente.
type Reporter interface {
	// GetCustomerStats agrega o histórico completo de pedidos do cliente e
	// devolve os cartões de resumo e as séries dos três gráficos.
	GetCustomerStats(customerID int64) (*domain.CustomerStatsResponse, error)
}
