package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/bronzebyte/customer-stats-api/infrastructure/database/postgres"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
)

const customersTable = "customers c"

type CustomerRepository interface {
	GetCustomerByID(customerID int64) (*domain.Customer, error)
	GetCustomerByEmail(email string) (*domain.Customer, error)
	CreateCustomer(customer *domain.Customer) (*domain.Customer, error)
}

type customerRepository struct {
	conn *postgres.Connection
}

func NewCustomerRepository(conn *postgres.Connection) CustomerRepository {
	return &customerRepository{
		conn: conn,
	}
}

func (r *customerRepository) GetCustomerByID(customerID int64) (*domain.Customer, error) {
	return r.getCustomer(squirrel.Eq{"c.id": customerID})
}

func (r *customerRepository) GetCustomerByEmail(email string) (*domain.Customer, error) {
	return r.getCustomer(squirrel.Eq{"c.email": email})
}

func (r *customerRepository) getCustomer(whereClause map[string]interface{}) (*domain.Customer, error) {
	query, args, err := squirrel.
		Select("c.id, c.name, c.lastname, c.email, c.password_hash, c.active, c.role_id, c.deleted, c.deleted_at, c.created_at, c.updated_at").
		From(customersTable).
		Where(whereClause).
		Where(squirrel.Eq{"c.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	customer := &domain.Customer{}
	err = row.Scan(
		&customer.ID,
		&customer.Name,
		&customer.Lastname,
		&customer.Email,
		&customer.PasswordHash,
		&customer.Active,
		&customer.RoleID,
		&customer.Deleted,
		&customer.DeletedAt,
		&customer.CreatedAt,
		&customer.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear cliente: %w", err)
	}

	return customer, nil
}

func (r *customerRepository) CreateCustomer(customer *domain.Customer) (*domain.Customer, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("customers").
		Columns("name", "lastname", "email", "password_hash", "active", "role_id").
		Values(
			customer.Name,
			customer.Lastname,
			customer.Email,
			customer.PasswordHash,
			customer.Active,
			customer.RoleID,
		).
		Suffix("RETURNING id, created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&customer.ID, &customer.CreatedAt, &customer.UpdatedAt); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao inserir cliente: %w", err)
	}

	return customer, nil
}
