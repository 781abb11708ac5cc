package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

func orderAt(month time.Month, status string, total, refunded float64, items ...domain.OrderLineItem) domain.Order {
	return domain.Order{
		CustomerID:    42,
		Status:        status,
		Total:         total,
		TotalRefunded: refunded,
		CreatedAt:     time.Date(2026, month, 15, 12, 0, 0, 0, time.UTC),
		Items:         items,
	}
}

func TestAggregate_SemPedidos(t *testing.T) {
	snapshot := Aggregate(nil, 7)

	assert.Equal(t, 0, snapshot.TotalOrders)
	assert.Equal(t, 0.0, snapshot.TotalSales)
	assert.Equal(t, 0.0, snapshot.TotalPayment)
	assert.Empty(t, snapshot.TopProducts)
	assert.Equal(t, 7, snapshot.WishlistCount)

	for _, status := range domain.KnownOrderStatuses {
		assert.Equal(t, 0, snapshot.StatusCounts[status])
	}
	for _, monthTotal := range snapshot.SalesByMonth {
		assert.Equal(t, 0.0, monthTotal)
	}
}

func TestAggregate_TotaisEStatus(t *testing.T) {
	orders := []domain.Order{
		orderAt(time.January, domain.OrderStatusCompleted, 100.00, 0),
		orderAt(time.January, domain.OrderStatusCompleted, 50.00, 10.00),
		orderAt(time.February, domain.OrderStatusPending, 30.00, 0),
		orderAt(time.March, domain.OrderStatusCancelled, 20.00, 20.00),
		orderAt(time.March, domain.OrderStatusProcessing, 40.00, 0),
	}

	snapshot := Aggregate(orders, 3)

	assert.Equal(t, 5, snapshot.TotalOrders)
	assert.Equal(t, 240.00, snapshot.TotalSales)
	// 240 de vendas menos 30 estornados
	assert.Equal(t, 210.00, snapshot.TotalPayment)
	assert.Equal(t, 3, snapshot.WishlistCount)

	assert.Equal(t, 2, snapshot.StatusCounts[domain.OrderStatusCompleted])
	assert.Equal(t, 1, snapshot.StatusCounts[domain.OrderStatusPending])
	assert.Equal(t, 1, snapshot.StatusCounts[domain.OrderStatusCancelled])
	assert.Equal(t, 1, snapshot.StatusCounts[domain.OrderStatusProcessing])

	assert.Equal(t, 150.00, snapshot.SalesByMonth[0])
	assert.Equal(t, 30.00, snapshot.SalesByMonth[1])
	assert.Equal(t, 60.00, snapshot.SalesByMonth[2])
}

func TestAggregate_StatusDesconhecido(t *testing.T) {
	orders := []domain.Order{
		orderAt(time.May, "on-hold", 80.00, 0),
		orderAt(time.May, domain.OrderStatusCompleted, 20.00, 0),
	}

	snapshot := Aggregate(orders, 0)

	// O pedido com status desconhecido não entra na contagem por status,
	// mas continua valendo nos totais e no gráfico mensal.
	assert.Equal(t, 2, snapshot.TotalOrders)
	assert.Equal(t, 100.00, snapshot.TotalSales)
	assert.Equal(t, 100.00, snapshot.SalesByMonth[4])
	assert.Equal(t, 1, snapshot.StatusCounts[domain.OrderStatusCompleted])
	assert.NotContains(t, snapshot.StatusCounts, "on-hold")
}

func TestAggregate_EstornoMaiorQueTotal(t *testing.T) {
	orders := []domain.Order{
		orderAt(time.June, domain.OrderStatusCompleted, 50.00, 120.00),
	}

	snapshot := Aggregate(orders, 0)

	// Estorno acima do total deixa o pagamento líquido negativo.
	assert.Equal(t, -70.00, snapshot.TotalPayment)
	assert.Equal(t, 50.00, snapshot.TotalSales)
}

func TestAggregate_MesesAgrupamIgnorandoAno(t *testing.T) {
	orders := []domain.Order{
		{Status: domain.OrderStatusCompleted, Total: 100.00, CreatedAt: time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{Status: domain.OrderStatusCompleted, Total: 40.00, CreatedAt: time.Date(2026, time.March, 20, 0, 0, 0, 0, time.UTC)},
		{Status: domain.OrderStatusCompleted, Total: 25.00, CreatedAt: time.Date(2026, time.December, 31, 23, 59, 0, 0, time.UTC)},
	}

	snapshot := Aggregate(orders, 0)

	assert.Equal(t, 140.00, snapshot.SalesByMonth[2])
	assert.Equal(t, 25.00, snapshot.SalesByMonth[11])
}

func TestAggregate_RankingDeProdutos(t *testing.T) {
	tests := []struct {
		name     string
		orders   []domain.Order
		expected []domain.ProductSales
	}{
		{
			name: "quantidades acumulam entre pedidos e o ranking corta em três",
			orders: []domain.Order{
				orderAt(time.January, domain.OrderStatusCompleted, 10, 0,
					domain.OrderLineItem{ProductID: 1, ProductName: "A", Quantity: 2},
					domain.OrderLineItem{ProductID: 2, ProductName: "B", Quantity: 1},
				),
				orderAt(time.February, domain.OrderStatusCompleted, 10, 0,
					domain.OrderLineItem{ProductID: 1, ProductName: "A", Quantity: 3},
					domain.OrderLineItem{ProductID: 3, ProductName: "C", Quantity: 4},
					domain.OrderLineItem{ProductID: 4, ProductName: "D", Quantity: 2},
				),
			},
			expected: []domain.ProductSales{
				{ProductID: 1, Quantity: 5},
				{ProductID: 3, Quantity: 4},
				{ProductID: 4, Quantity: 2},
			},
		},
		{
			name: "empate preserva a ordem de primeira aparição",
			orders: []domain.Order{
				orderAt(time.January, domain.OrderStatusCompleted, 10, 0,
					domain.OrderLineItem{ProductID: 9, ProductName: "Tarde", Quantity: 2},
				),
				orderAt(time.February, domain.OrderStatusCompleted, 10, 0,
					domain.OrderLineItem{ProductID: 5, ProductName: "Cedo", Quantity: 2},
				),
			},
			expected: []domain.ProductSales{
				{ProductID: 9, Quantity: 2},
				{ProductID: 5, Quantity: 2},
			},
		},
		{
			name: "menos de três produtos mantém todos",
			orders: []domain.Order{
				orderAt(time.January, domain.OrderStatusCompleted, 10, 0,
					domain.OrderLineItem{ProductID: 1, ProductName: "A", Quantity: 1},
				),
			},
			expected: []domain.ProductSales{
				{ProductID: 1, Quantity: 1},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			snapshot := Aggregate(tt.orders, 0)
			assert.Equal(t, tt.expected, snapshot.TopProducts)
		})
	}
}

func TestAggregate_ArredondamentoDeValores(t *testing.T) {
	orders := []domain.Order{
		orderAt(time.July, domain.OrderStatusCompleted, 10.105, 0),
		orderAt(time.July, domain.OrderStatusCompleted, 20.204, 0.101),
	}

	snapshot := Aggregate(orders, 0)

	assert.Equal(t, 30.31, snapshot.TotalSales)
	assert.Equal(t, 30.21, snapshot.TotalPayment)
	assert.Equal(t, 30.31, snapshot.SalesByMonth[6])
}

func TestAggregate_IndependeDaOrdemDosPedidos(t *testing.T) {
	orders := []domain.Order{
		orderAt(time.January, domain.OrderStatusCompleted, 100.00, 5.00,
			domain.OrderLineItem{ProductID: 1, ProductName: "A", Quantity: 2},
		),
		orderAt(time.April, domain.OrderStatusPending, 55.50, 0,
			domain.OrderLineItem{ProductID: 2, ProductName: "B", Quantity: 1},
		),
		orderAt(time.April, domain.OrderStatusCancelled, 12.00, 12.00),
	}

	reversed := []domain.Order{orders[2], orders[1], orders[0]}

	first := Aggregate(orders, 1)
	second := Aggregate(reversed, 1)

	assert.Equal(t, first.TotalOrders, second.TotalOrders)
	assert.Equal(t, first.TotalSales, second.TotalSales)
	assert.Equal(t, first.TotalPayment, second.TotalPayment)
	assert.Equal(t, first.StatusCounts, second.StatusCounts)
	assert.Equal(t, first.SalesByMonth, second.SalesByMonth)
}
