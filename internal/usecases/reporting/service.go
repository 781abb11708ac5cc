package reporting

import (
	"fmt"

	"github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist"
	"github.com/bronzebyte/customer-stats-api/infrastructure/repository"
	"github.com/bronzebyte/customer-stats-api/internal/config"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
)

type Service struct {
	cfg            *config.Config
	orderRepo      repository.OrderRepository
	catalog        repository.ProductCatalog
	wishlistClient wishlist.WishlistIntegrator
}

// NewService cria o serviço de estatísticas do cliente.
func NewService(
	cfg *config.Config,
	orderRepo repository.OrderRepository,
	catalog repository.ProductCatalog,
	wishlistClient wishlist.WishlistIntegrator,
) Reporter {
	return &Service{
		cfg:            cfg,
		orderRepo:      orderRepo,
		catalog:        catalog,
		wishlistClient: wishlistClient,
	}
}

func (s *Service) GetCustomerStats(customerID int64) (*domain.CustomerStatsResponse, error) {
	orders, err := s.orderRepo.ListByCustomer(customerID, repository.AllOrders)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar pedidos do cliente %d: %w", customerID, err)
	}

	// A contagem de wishlist é um colaborador opcional: falha vira zero.
	wishlistCount, err := s.wishlistClient.CountItems(customerID)
	if err != nil {
		log.L.WithError(err).WithField("customer_id", customerID).
			Warn("stats: serviço de wishlist indisponível, usando contagem zero")
		wishlistCount = 0
	}

	snapshot := Aggregate(orders, wishlistCount)

	titles, err := s.topProductTitles(snapshot.TopProducts)
	if err != nil {
		return nil, err
	}

	return buildResponse(snapshot, titles), nil
}

// topProductTitles resolve os títulos dos produtos do ranking no catálogo.
// Produto removido do catálogo recebe um rótulo com o próprio ID.
func (s *Service) topProductTitles(topProducts []domain.ProductSales) (map[int64]string, error) {
	ids := make([]int64, 0, len(topProducts))
	for _, product := range topProducts {
		ids = append(ids, product.ProductID)
	}

	titles, err := s.catalog.GetTitles(ids)
	if err != nil {
		return nil, fmt.Errorf("erro ao resolver títulos dos produtos: %w", err)
	}

	for _, id := range ids {
		if _, ok := titles[id]; !ok {
			titles[id] = fmt.Sprintf("Produto #%d", id)
		}
	}

	return titles, nil
}

func buildResponse(snapshot *domain.StatsSnapshot, titles map[int64]string) *domain.CustomerStatsResponse {
	salesHistory := domain.ChartSeries{
		Labels: domain.MonthLabels,
		Data:   snapshot.SalesByMonth[:],
	}

	topProducts := domain.ChartSeries{
		Labels: make([]string, 0, len(snapshot.TopProducts)),
		Data:   make([]float64, 0, len(snapshot.TopProducts)),
	}
	for _, product := range snapshot.TopProducts {
		topProducts.Labels = append(topProducts.Labels, titles[product.ProductID])
		topProducts.Data = append(topProducts.Data, float64(product.Quantity))
	}

	orderReport := domain.ChartSeries{
		Labels: domain.StatusLabels,
		Data:   make([]float64, 0, len(domain.KnownOrderStatuses)),
	}
	for _, status := range domain.KnownOrderStatuses {
		orderReport.Data = append(orderReport.Data, float64(snapshot.StatusCounts[status]))
	}

	return &domain.CustomerStatsResponse{
		TotalOrders:      snapshot.TotalOrders,
		TotalSales:       snapshot.TotalSales,
		WishlistItems:    snapshot.WishlistCount,
		CancelledOrders:  snapshot.StatusCounts[domain.OrderStatusCancelled],
		TotalPayment:     snapshot.TotalPayment,
		ProcessingOrders: snapshot.StatusCounts[domain.OrderStatusProcessing],
		SalesHistory:     salesHistory,
		TopProducts:      topProducts,
		OrderReport:      orderReport,
	}
}
