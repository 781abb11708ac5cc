package domain

import "time"

// Status conhecidos de um pedido. Pedidos com outros status continuam
// entrando nos totais, mas não são contabilizados por status.
const (
	OrderStatusCompleted  = "completed"
	OrderStatusPending    = "pending"
	OrderStatusCancelled  = "cancelled"
	OrderStatusProcessing = "processing"
)

// KnownOrderStatuses define a ordem fixa usada nos gráficos de status.
var KnownOrderStatuses = []string{
	OrderStatusCompleted,
	OrderStatusPending,
	OrderStatusCancelled,
	OrderStatusProcessing,
}

// Order representa um pedido do cliente carregado da loja. O serviço apenas
// lê esses registros; a escrita é responsabilidade do e-commerce.
type Order struct {
	ID            int64           `json:"id"`
	CustomerID    int64           `json:"customer_id"`
	Status        string          `json:"status"`
	Total         float64         `json:"total"`
	TotalRefunded float64         `json:"total_refunded"`
	CreatedAt     time.Time       `json:"created_at"`
	Items         []OrderLineItem `json:"items,omitempty"`
}

// OrderLineItem é um item de produto dentro de um pedido.
type OrderLineItem struct {
	ProductID   int64  `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}
