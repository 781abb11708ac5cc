package handler

import (
	"fmt"
	"net/http"

	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/internal/usecases/exporting"
	"github.com/bronzebyte/customer-stats-api/pkg/apiErrors"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
	"github.com/bronzebyte/customer-stats-api/pkg/middleware"
)

// ExportRecentOrders emite o CSV com os dez pedidos mais recentes do cliente
// logado. Sem autenticação, ou sem pedidos no histórico, a resposta sai
// vazia: nenhum cabeçalho de CSV é escrito.
func ExportRecentOrders(service exporting.Exporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		claims, ok := r.Context().Value(middleware.ContextKeyCustomer).(*domain.Claims)
		if !ok {
			logger.Debug("export: requisição sem autenticação, resposta vazia")
			return
		}

		logger.WithField("customer_id", claims.CustomerID).Info("export: gerando CSV de pedidos recentes")

		data, err := service.RecentOrdersCSV(claims.CustomerID)
		if err != nil {
			logger.WithError(err).WithField("customer_id", claims.CustomerID).
				Error("export: erro ao gerar CSV")
			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar exportação", nil)
			return
		}

		if data == nil {
			logger.WithField("customer_id", claims.CustomerID).Info("export: cliente sem pedidos, nada a exportar")
			return
		}

		w.Header().Set("Content-Type", "text/csv")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exporting.ExportFilename))

		if _, err := w.Write(data); err != nil {
			logger.WithError(err).Error("export: erro ao escrever resposta")
		}
	})
}
