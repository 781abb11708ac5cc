package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/bronzebyte/customer-stats-api/infrastructure/database/postgres"
)

const productsTable = "products p"

// ProductCatalog resolve títulos de produtos na hora de renderizar o
// gráfico de mais vendidos. A agregação carrega só os IDs.
type ProductCatalog interface {
	GetTitles(productIDs []int64) (map[int64]string, error)
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductCatalog {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) GetTitles(productIDs []int64) (map[int64]string, error) {
	titles := make(map[int64]string, len(productIDs))
	if len(productIDs) == 0 {
		return titles, nil
	}

	query, args, err := squirrel.
		Select("p.id, p.title").
		From(productsTable).
		Where(squirrel.Eq{"p.id": productIDs}).
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

	for rows.Next() {
		var id int64
		var title string

		if err := rows.Scan(&id, &title); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		titles[id] = title
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return titles, nil
}
