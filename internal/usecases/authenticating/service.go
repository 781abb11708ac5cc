package authenticating

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"github.com/bronzebyte/customer-stats-api/infrastructure/repository"
	"github.com/bronzebyte/customer-stats-api/internal/config"
	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/pkg/apiErrors"
)

type Authenticator interface {
	RegisterCustomer(customer *domain.Customer, password string) (*domain.Customer, error)
	LoginCustomer(email, password string) (string, error)
	GetCustomerProfile(customerID int64) (*domain.Customer, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	customerRepo repository.CustomerRepository
	cfg          *config.Config
}

func NewService(customerRepo repository.CustomerRepository, cfg *config.Config) Authenticator {
	return &Service{
		customerRepo: customerRepo,
		cfg:          cfg,
	}
}

func (s *Service) RegisterCustomer(customer *domain.Customer, password string) (*domain.Customer, error) {
	if customer.Email == "" || customer.Name == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email, nome e senha são obrigatórios")
	}

	customer.Email = handleEmail(customer.Email)

	existing, err := s.customerRepo.GetCustomerByEmail(customer.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados")
	}
	if existing != nil {
		return nil, NewAuthError(ErrCustomerAlreadyExists, apiErrors.ErrCustomerAlreadyExists, "Email já cadastrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	if customer.RoleID == 0 {
		customer.RoleID = domain.RoleCustomer
	}

	customer.PasswordHash = string(hashedPassword)
	customer.Active = true

	customer, err = s.customerRepo.CreateCustomer(customer)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao criar cliente")
	}

	return customer, nil
}

func (s *Service) LoginCustomer(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Email e senha são obrigatórios")
	}

	email = handleEmail(email)

	customer, err := s.customerRepo.GetCustomerByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Erro ao consultar cliente no banco de dados")
	}

	if customer == nil {
		return "", NewAuthError(ErrCustomerNotFound, apiErrors.ErrCustomerNotFound, "Cliente não encontrado")
	}

	if !customer.Active {
		return "", NewCustomerAuthError(ErrCustomerDisabled, apiErrors.ErrCustomerDisabled, customer.ID, "Conta desativada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(customer.PasswordHash), []byte(password)); err != nil {
		return "", NewCustomerAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, customer.ID, "Senha incorreta")
	}

	token, err := generateJWT(customer, s.cfg.Auth.Secret)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return token, nil
}

func (s *Service) GetCustomerProfile(customerID int64) (*domain.Customer, error) {
	customer, err := s.customerRepo.GetCustomerByID(customerID)
	if err != nil {
		logrus.Error(err)
		return nil, err
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	customer.PasswordHash = ""
	return customer, nil
}

func generateJWT(customer *domain.Customer, secret string) (string, error) {
	claims := domain.Claims{
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		CustomerEmail:  customer.Email,
		CustomerActive: customer.Active,
		RoleID:         customer.RoleID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.cfg.Auth.Secret), nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*domain.Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
