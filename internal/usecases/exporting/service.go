package exporting

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"

	"github.com/bronzebyte/customer-stats-api/infrastructure/repository"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

// recentOrdersLimit é a quantidade de pedidos incluída na exportação.
const recentOrdersLimit = 10

// ExportFilename é o nome do arquivo sugerido no download.
const ExportFilename = "recent_orders.csv"

// Exporter gera o CSV dos pedidos recentes de um cliente.
type Exporter interface {
	// RecentOrdersCSV devolve o conteúdo do CSV, ou nil quando o cliente
	// não tem pedidos (nesse caso nada é emitido, igual à exportação
	// original da loja).
	RecentOrdersCSV(customerID int64) ([]byte, error)
}

type Service struct {
	orderRepo repository.OrderRepository
}

func NewService(orderRepo repository.OrderRepository) Exporter {
	return &Service{
		orderRepo: orderRepo,
	}
}

func (s *Service) RecentOrdersCSV(customerID int64) ([]byte, error) {
	orders, err := s.orderRepo.ListByCustomer(customerID, recentOrdersLimit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos recentes do cliente %d: %w", customerID, err)
	}

	if len(orders) == 0 {
		return nil, nil
	}

	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write([]string{"Order ID", "Date", "Status", "Total", "Items"}); err != nil {
		return nil, fmt.Errorf("erro ao escrever cabeçalho do CSV: %w", err)
	}

	for _, order := range orders {
		record := []string{
			strconv.FormatInt(order.ID, 10),
			order.CreatedAt.Format("2006-01-02 15:04:05"),
			order.Status,
			strconv.FormatFloat(order.Total, 'f', 2, 64),
			formatItems(order.Items),
		}
		if err := writer.Write(record); err != nil {
			return nil, fmt.Errorf("erro ao escrever pedido %d no CSV: %w", order.ID, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("erro ao finalizar o CSV: %w", err)
	}

	return buf.Bytes(), nil
}

// formatItems monta a coluna de itens no formato "nome (xQtd)", separados
// por vírgula e sem separador no final.
func formatItems(items []domain.OrderLineItem) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s (x%d)", item.ProductName, item.Quantity))
	}

	return strings.Join(parts, ", ")
}
