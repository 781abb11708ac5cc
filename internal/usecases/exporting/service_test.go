package exporting

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/bronzebyte/customer-stats-api/infrastructure/repository/mocks"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

func TestService_RecentOrdersCSV(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	orders := []domain.Order{
		{
			ID:        31,
			Status:    domain.OrderStatusCompleted,
			Total:     438.90,
			CreatedAt: time.Date(2026, time.March, 21, 9, 45, 30, 0, time.UTC),
			Items: []domain.OrderLineItem{
				{ProductID: 1, ProductName: "Óculos de Sol Aviador", Quantity: 1},
				{ProductID: 2, ProductName: "Armação Retangular Preta", Quantity: 2},
			},
		},
		{
			ID:        30,
			Status:    domain.OrderStatusPending,
			Total:     19.90,
			CreatedAt: time.Date(2026, time.February, 3, 15, 10, 0, 0, time.UTC),
			Items: []domain.OrderLineItem{
				{ProductID: 5, ProductName: "Spray de Limpeza", Quantity: 1},
			},
		},
	}

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(42), 10).
		Return(orders, nil)

	data, err := service.RecentOrdersCSV(42)

	assert.NoError(t, err)

	expected := "Order ID,Date,Status,Total,Items\n" +
		"31,2026-03-21 09:45:30,completed,438.90,\"Óculos de Sol Aviador (x1), Armação Retangular Preta (x2)\"\n" +
		"30,2026-02-03 15:10:00,pending,19.90,Spray de Limpeza (x1)\n"
	assert.Equal(t, expected, string(data))
}

func TestService_RecentOrdersCSV_SemPedidos(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(7), 10).
		Return(nil, nil)

	// Sem histórico nenhum arquivo é gerado
	data, err := service.RecentOrdersCSV(7)

	assert.NoError(t, err)
	assert.Nil(t, data)
}

func TestService_RecentOrdersCSV_PedidoSemItens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	orders := []domain.Order{
		{
			ID:        12,
			Status:    domain.OrderStatusCancelled,
			Total:     0,
			CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		},
	}

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(7), 10).
		Return(orders, nil)

	data, err := service.RecentOrdersCSV(7)

	assert.NoError(t, err)

	expected := "Order ID,Date,Status,Total,Items\n" +
		"12,2026-01-01 00:00:00,cancelled,0.00,\n"
	assert.Equal(t, expected, string(data))
}

func TestService_RecentOrdersCSV_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	service := NewService(mockOrderRepo)

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(7), 10).
		Return(nil, errors.New("conexão recusada"))

	data, err := service.RecentOrdersCSV(7)

	assert.Error(t, err)
	assert.Nil(t, data)
}

func TestFormatItems(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.OrderLineItem
		expected string
	}{
		{
			name:     "sem itens",
			items:    nil,
			expected: "",
		},
		{
			name: "um item",
			items: []domain.OrderLineItem{
				{ProductName: "Estojo Rígido", Quantity: 3},
			},
			expected: "Estojo Rígido (x3)",
		},
		{
			name: "vários itens separados por vírgula sem separador final",
			items: []domain.OrderLineItem{
				{ProductName: "A", Quantity: 1},
				{ProductName: "B", Quantity: 2},
				{ProductName: "C", Quantity: 3},
			},
			expected: "A (x1), B (x2), C (x3)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatItems(tt.items))
		})
	}
}
