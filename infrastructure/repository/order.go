package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bronzebyte/customer-stats-api/infrastructure/database/postgres"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

const (
	ordersTable     = "orders o"
	orderItemsTable = "order_items oi"
)

// AllOrders é o valor de limite que significa "todos os pedidos do cliente".
const AllOrders = -1

type OrderRepository interface {
	// ListByCustomer retorna os pedidos de um cliente ordenados do mais
	// recente para o mais antigo, com os itens carregados. limit igual a
	// AllOrders retorna o histórico completo.
	ListByCustomer(customerID int64, limit int) ([]domain.Order, error)
}

type orderRepository struct {
	conn *postgres.Connection
}

func NewOrderRepository(conn *postgres.Connection) OrderRepository {
	return &orderRepository{
		conn: conn,
	}
}

func (r *orderRepository) ListByCustomer(customerID int64, limit int) ([]domain.Order, error) {
	builder := squirrel.
		Select("o.id, o.customer_id, o.status, o.total, o.total_refunded, o.created_at").
		From(ordersTable).
		Where(squirrel.Eq{"o.customer_id": customerID}).
		OrderBy("o.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return []domain.Order{}, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	orderIDs := make([]int64, 0)

	for rows.Next() {
		var order domain.Order
		if err := rows.Scan(
			&order.ID,
			&order.CustomerID,
			&order.Status,
			&order.Total,
			&order.TotalRefunded,
			&order.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("erro ao escanear pedido: %w", err)
		}
		orders = append(orders, order)
		orderIDs = append(orderIDs, order.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(orders) == 0 {
		return orders, nil
	}

	itemsByOrder, err := r.listItems(orderIDs)
	if err != nil {
		return nil, err
	}

	for i := range orders {
		orders[i].Items = itemsByOrder[orders[i].ID]
	}

	return orders, nil
}

// listItems carrega os itens de todos os pedidos informados em uma única
// consulta, preservando a ordem de inserção de cada pedido.
func (r *orderRepository) listItems(orderIDs []int64) (map[int64][]domain.OrderLineItem, error) {
	query, args, err := squirrel.
		Select("oi.order_id, oi.product_id, oi.product_name, oi.quantity").
		From(orderItemsTable).
		Where(squirrel.Eq{"oi.order_id": orderIDs}).
		OrderBy("oi.order_id, oi.id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	itemsByOrder := make(map[int64][]domain.OrderLineItem)
	for rows.Next() {
		var orderID int64
		var item domain.OrderLineItem

		if err := rows.Scan(&orderID, &item.ProductID, &item.ProductName, &item.Quantity); err != nil {
			return nil, fmt.Errorf("erro ao escanear item do pedido: %w", err)
		}
		itemsByOrder[orderID] = append(itemsByOrder[orderID], item)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return itemsByOrder, nil
}
