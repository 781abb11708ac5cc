package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/bronzebyte/customer-stats-api/internal/domain"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
	"github.com/bronzebyte/customer-stats-api/pkg/middleware"
)

func init() {
	log.SetupTestLogger()
}

type stubReporter struct {
	response *domain.CustomerStatsResponse
	err      error
}

func (s *stubReporter) GetCustomerStats(customerID int64) (*domain.CustomerStatsResponse, error) {
	return s.response, s.err
}

type stubSettings struct {
	enabled bool
}

func (s *stubSettings) GetSettings() (*domain.StoreSettings, error) {
	return &domain.StoreSettings{CustomerStatsEnabled: s.enabled}, nil
}

func (s *stubSettings) UpdateSettings(req *domain.UpdateStoreSettingsRequest) (*domain.StoreSettings, error) {
	return nil, errors.New("não usado no teste")
}

func (s *stubSettings) CustomerStatsEnabled() bool {
	return s.enabled
}

func requestWithClaims(method, path string, claims *domain.Claims) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	if claims != nil {
		ctx := context.WithValue(req.Context(), middleware.ContextKeyCustomer, claims)
		req = req.WithContext(ctx)
	}
	return req
}

func TestGetCustomerStats_SemAutenticacao(t *testing.T) {
	handler := GetCustomerStats(&stubReporter{}, &stubSettings{enabled: true})

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestWithClaims(http.MethodGet, "/v1/me/stats", nil))

	// Sem token a resposta sai vazia em silêncio, não 401
	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestGetCustomerStats_DashboardDesabilitado(t *testing.T) {
	handler := GetCustomerStats(&stubReporter{}, &stubSettings{enabled: false})

	claims := &domain.Claims{CustomerID: 42}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestWithClaims(http.MethodGet, "/v1/me/stats", claims))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Empty(t, recorder.Body.String())
}

func TestGetCustomerStats_ComSucesso(t *testing.T) {
	reporter := &stubReporter{
		response: &domain.CustomerStatsResponse{
			TotalOrders:   3,
			TotalSales:    150.50,
			WishlistItems: 2,
		},
	}
	handler := GetCustomerStats(reporter, &stubSettings{enabled: true})

	claims := &domain.Claims{CustomerID: 42}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestWithClaims(http.MethodGet, "/v1/me/stats", claims))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))

	var response domain.CustomerStatsResponse
	assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	assert.Equal(t, 3, response.TotalOrders)
	assert.Equal(t, 150.50, response.TotalSales)
	assert.Equal(t, 2, response.WishlistItems)
}

func TestGetCustomerStats_ErroNaAgregacao(t *testing.T) {
	reporter := &stubReporter{err: errors.New("conexão recusada")}
	handler := GetCustomerStats(reporter, &stubSettings{enabled: true})

	claims := &domain.Claims{CustomerID: 42}
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, requestWithClaims(http.MethodGet, "/v1/me/stats", claims))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
}
