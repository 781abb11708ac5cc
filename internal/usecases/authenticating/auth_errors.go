package authenticating

import (
	"errors"
	"fmt"
)

// Erros de autenticação da área do cliente
var (
	ErrInvalidCredentials    = errors.New("credenciais inválidas")
	ErrCustomerDisabled      = errors.New("cliente desativado")
	ErrCustomerNotFound      = errors.New("cliente não encontrado")
	ErrInvalidToken          = errors.New("token inválido")
	ErrExpiredToken          = errors.New("token expirado")
	ErrCustomerAlreadyExists = errors.New("cliente já existe")
	ErrMissingRequiredData   = errors.New("dados obrigatórios ausentes")
	ErrDatabaseOperation     = errors.New("erro ao realizar operação no banco de dados")
)

// AuthError é um erro com contexto adicional para autenticação
type AuthError struct {
	Err        error  // Erro base
	Code       string // Código de erro para API
	CustomerID int64  // ID do cliente envolvido (quando aplicável)
	Details    string // Detalhes adicionais
}

// Error implementa a interface error
func (e *AuthError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError cria um novo erro de autenticação
func NewAuthError(baseErr error, code string, details string) *AuthError {
	return &AuthError{
		Err:     baseErr,
		Code:    code,
		Details: details,
	}
}

// NewCustomerAuthError cria um novo erro de autenticação com contexto de cliente
func NewCustomerAuthError(baseErr error, code string, customerID int64, details string) *AuthError {
	return &AuthError{
		Err:        baseErr,
		Code:       code,
		CustomerID: customerID,
		Details:    details,
	}
}
