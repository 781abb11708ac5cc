package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles de acesso. Clientes só enxergam o próprio dashboard; administradores
// controlam as configurações da loja.
const (
	RoleAdmin    = 1
	RoleCustomer = 2
)

// Customer é a conta de um cliente da loja.
type Customer struct {
	ID           int64      `json:"id"`
	Name         string     `json:"name"`
	Lastname     string     `json:"lastname"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Active       bool       `json:"active"`
	RoleID       int        `json:"role_id"`
	Deleted      bool       `json:"deleted"`
	DeletedAt    *time.Time `json:"deleted_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// Claims são as informações do cliente embutidas no token JWT.
type Claims struct {
	CustomerID     int64
	CustomerName   string
	CustomerEmail  string
	CustomerActive bool
	RoleID         int
	jwt.RegisteredClaims
}
