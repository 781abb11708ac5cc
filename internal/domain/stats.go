package domain

// ProductSales é um par (produto, quantidade acumulada) usado no ranking de
// produtos mais vendidos do cliente.
type ProductSales struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

// StatsSnapshot é o resultado imutável da agregação dos pedidos de um
// cliente. É recalculado a cada requisição do dashboard e nunca persistido.
type StatsSnapshot struct {
	TotalOrders  int            `json:"total_orders"`
	TotalSales   float64        `json:"total_sales"`
	TotalPayment float64        `json:"total_payment"`
	StatusCounts map[string]int `json:"status_counts"`
	// SalesByMonth tem sempre 12 posições, índice 0 = janeiro. Os meses
	// acumulam pedidos de todos os anos presentes no histórico.
	SalesByMonth  [12]float64    `json:"sales_by_month"`
	TopProducts   []ProductSales `json:"top_products"`
	WishlistCount int            `json:"wishlist_count"`
}

// ChartSeries é uma série pronta para o gráfico do lado do cliente:
// labels e valores na mesma ordem.
type ChartSeries struct {
	Labels []string  `json:"labels"`
	Data   []float64 `json:"data"`
}

// CustomerStatsResponse é a resposta do dashboard: seis cartões de resumo e
// três séries de gráficos (linha mensal, pizza de produtos, barras de status).
type CustomerStatsResponse struct {
	TotalOrders      int     `json:"total_orders"`
	TotalSales       float64 `json:"total_sales"`
	WishlistItems    int     `json:"wishlist_items"`
	CancelledOrders  int     `json:"cancelled_orders"`
	TotalPayment     float64 `json:"total_payment"`
	ProcessingOrders int     `json:"processing_orders"`

	SalesHistory ChartSeries `json:"sales_history"`
	TopProducts  ChartSeries `json:"top_products"`
	OrderReport  ChartSeries `json:"order_report"`
}

// MonthLabels são os rótulos do gráfico de vendas mensais, na mesma ordem de
// StatsSnapshot.SalesByMonth.
var MonthLabels = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// StatusLabels são os rótulos do gráfico de barras de status, na mesma ordem
// de KnownOrderStatuses.
var StatusLabels = []string{"Completed", "Pending", "Cancelled", "Processing"}
