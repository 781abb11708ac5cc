package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	wishlistmocks "github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist/mocks"
	"github.com/bronzebyte/customer-stats-api/infrastructure/repository"
	"github.com/bronzebyte/customer-stats-api/infrastructure/repository/mocks"
	"github.com/bronzebyte/customer-stats-api/internal/config"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
	"github.com/pkg/errors"
)

func init() {
	log.SetupTestLogger()
}

func TestService_GetCustomerStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCatalog := mocks.NewMockProductCatalog(ctrl)
	mockWishlist := wishlistmocks.NewMockWishlistIntegrator(ctrl)

	service := NewService(&config.Config{}, mockOrderRepo, mockCatalog, mockWishlist)

	orders := []domain.Order{
		{
			ID:        10,
			Status:    domain.OrderStatusCompleted,
			Total:     120.00,
			CreatedAt: time.Date(2026, time.March, 2, 10, 0, 0, 0, time.UTC),
			Items: []domain.OrderLineItem{
				{ProductID: 1, ProductName: "Óculos de Sol Aviador", Quantity: 2},
			},
		},
		{
			ID:            11,
			Status:        domain.OrderStatusCancelled,
			Total:         50.00,
			TotalRefunded: 50.00,
			CreatedAt:     time.Date(2026, time.April, 9, 16, 30, 0, 0, time.UTC),
			Items: []domain.OrderLineItem{
				{ProductID: 2, ProductName: "Estojo Rígido", Quantity: 1},
			},
		},
	}

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(42), repository.AllOrders).
		Return(orders, nil)

	mockWishlist.EXPECT().
		CountItems(int64(42)).
		Return(5, nil)

	mockCatalog.EXPECT().
		GetTitles([]int64{1, 2}).
		Return(map[int64]string{1: "Óculos de Sol Aviador", 2: "Estojo Rígido"}, nil)

	response, err := service.GetCustomerStats(42)

	assert.NoError(t, err)
	assert.Equal(t, 2, response.TotalOrders)
	assert.Equal(t, 170.00, response.TotalSales)
	assert.Equal(t, 120.00, response.TotalPayment)
	assert.Equal(t, 5, response.WishlistItems)
	assert.Equal(t, 1, response.CancelledOrders)
	assert.Equal(t, 0, response.ProcessingOrders)

	// Série mensal: 12 posições, março e abril preenchidos
	assert.Equal(t, domain.MonthLabels, response.SalesHistory.Labels)
	assert.Len(t, response.SalesHistory.Data, 12)
	assert.Equal(t, 120.00, response.SalesHistory.Data[2])
	assert.Equal(t, 50.00, response.SalesHistory.Data[3])

	// Pizza de produtos com títulos resolvidos no catálogo
	assert.Equal(t, []string{"Óculos de Sol Aviador", "Estojo Rígido"}, response.TopProducts.Labels)
	assert.Equal(t, []float64{2, 1}, response.TopProducts.Data)

	// Barras de status na ordem fixa dos rótulos
	assert.Equal(t, domain.StatusLabels, response.OrderReport.Labels)
	assert.Equal(t, []float64{1, 0, 1, 0}, response.OrderReport.Data)
}

func TestService_GetCustomerStats_WishlistIndisponivel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCatalog := mocks.NewMockProductCatalog(ctrl)
	mockWishlist := wishlistmocks.NewMockWishlistIntegrator(ctrl)

	service := NewService(&config.Config{}, mockOrderRepo, mockCatalog, mockWishlist)

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(7), repository.AllOrders).
		Return(nil, nil)

	// Falha na wishlist não derruba o dashboard: contagem vira zero
	mockWishlist.EXPECT().
		CountItems(int64(7)).
		Return(0, errors.New("timeout na wishlist"))

	mockCatalog.EXPECT().
		GetTitles([]int64{}).
		Return(map[int64]string{}, nil)

	response, err := service.GetCustomerStats(7)

	assert.NoError(t, err)
	assert.Equal(t, 0, response.TotalOrders)
	assert.Equal(t, 0, response.WishlistItems)
}

func TestService_GetCustomerStats_ProdutoForaDoCatalogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCatalog := mocks.NewMockProductCatalog(ctrl)
	mockWishlist := wishlistmocks.NewMockWishlistIntegrator(ctrl)

	service := NewService(&config.Config{}, mockOrderRepo, mockCatalog, mockWishlist)

	orders := []domain.Order{
		{
			ID:        1,
			Status:    domain.OrderStatusCompleted,
			Total:     10.00,
			CreatedAt: time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			Items: []domain.OrderLineItem{
				{ProductID: 99, ProductName: "Produto Removido", Quantity: 1},
			},
		},
	}

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(7), repository.AllOrders).
		Return(orders, nil)

	mockWishlist.EXPECT().
		CountItems(int64(7)).
		Return(0, nil)

	// Catálogo não conhece mais o produto 99
	mockCatalog.EXPECT().
		GetTitles([]int64{99}).
		Return(map[int64]string{}, nil)

	response, err := service.GetCustomerStats(7)

	assert.NoError(t, err)
	assert.Equal(t, []string{"Produto #99"}, response.TopProducts.Labels)
}

func TestService_GetCustomerStats_ErroNoRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockOrderRepo := mocks.NewMockOrderRepository(ctrl)
	mockCatalog := mocks.NewMockProductCatalog(ctrl)
	mockWishlist := wishlistmocks.NewMockWishlistIntegrator(ctrl)

	service := NewService(&config.Config{}, mockOrderRepo, mockCatalog, mockWishlist)

	mockOrderRepo.EXPECT().
		ListByCustomer(int64(7), repository.AllOrders).
		Return(nil, errors.New("conexão recusada"))

	response, err := service.GetCustomerStats(7)

	assert.Error(t, err)
	assert.Nil(t, response)
}
