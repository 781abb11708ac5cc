package reporting

import (
	"sort"

	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/pkg/utils"
)

// topProductsLimit é a quantidade de produtos exibida no gráfico de pizza.
const topProductsLimit = 3

// Aggregate percorre a lista de pedidos de um cliente uma única vez e monta
// o snapshot de estatísticas do dashboard. A função é pura: não faz I/O,
// não falha com entrada bem formada e não depende da ordenação dos pedidos.
//
// Regras de agregação:
//   - TotalPayment soma (total - total estornado) sem clamp; estorno maior
//     que o total deixa o valor negativo, como na loja.
//   - Status fora do conjunto conhecido não entram em StatusCounts, mas o
//     pedido continua nos demais acumuladores.
//   - SalesByMonth agrupa por mês calendário ignorando o ano.
//   - O ranking de produtos é estável: empates preservam a ordem em que o
//     produto apareceu pela primeira vez nos pedidos.
func Aggregate(orders []domain.Order, wishlistCount int) *domain.StatsSnapshot {
	var totalSales, totalPayment float64
	var salesByMonth [12]float64

	statusCounts := map[string]int{
		domain.OrderStatusCompleted:  0,
		domain.OrderStatusPending:    0,
		domain.OrderStatusCancelled:  0,
		domain.OrderStatusProcessing: 0,
	}

	products := make([]domain.ProductSales, 0)
	productIndex := make(map[int64]int)

	for _, order := range orders {
		totalSales += order.Total
		totalPayment += order.Total - order.TotalRefunded

		if _, known := statusCounts[order.Status]; known {
			statusCounts[order.Status]++
		}

		month := int(order.CreatedAt.Month()) - 1
		salesByMonth[month] += order.Total

		for _, item := range order.Items {
			idx, seen := productIndex[item.ProductID]
			if !seen {
				idx = len(products)
				productIndex[item.ProductID] = idx
				products = append(products, domain.ProductSales{ProductID: item.ProductID})
			}
			products[idx].Quantity += item.Quantity
		}
	}

	sort.SliceStable(products, func(i, j int) bool {
		return products[i].Quantity > products[j].Quantity
	})
	if len(products) > topProductsLimit {
		products = products[:topProductsLimit]
	}

	for i := range salesByMonth {
		salesByMonth[i] = utils.RoundWithTwoDecimalPlace(salesByMonth[i])
	}

	return &domain.StatsSnapshot{
		TotalOrders:   len(orders),
		TotalSales:    utils.RoundWithTwoDecimalPlace(totalSales),
		TotalPayment:  utils.RoundWithTwoDecimalPlace(totalPayment),
		StatusCounts:  statusCounts,
		SalesByMonth:  salesByMonth,
		TopProducts:   products,
		WishlistCount: wishlistCount,
	}
}
