package wishlistclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"strconv"
	"time"

	wishlistdomain "github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist/domain"
	"github.com/bronzebyte/customer-stats-api/internal/config"
	"github.com/bronzebyte/customer-stats-api/pkg/log"
	"github.com/bronzebyte/customer-stats-api/pkg/utils"
)

type ItemsParams struct {
	CustomerID int64
}

type ItemsResponse []wishlistdomain.WishlistItem

func (c *WishlistClient) GetItems(params ItemsParams, wishlistConfig *config.Wishlist) (ItemsResponse, error) {
	var response ItemsResponse

	ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
	defer cancel()

	// Construir a URL da requisição.
	endpoint, err := url.Parse(wishlistConfig.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/wishlists", strconv.FormatInt(params.CustomerID, 10), "items")

	// Criar a requisição HTTP.
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	// Adicionar cabeçalhos necessários.
	requestID, err := utils.GenerateID()
	if err == nil {
		req.Header.Set("X-Request-ID", requestID)
	}
	req.Header.Set("Authorization", "Bearer "+wishlistConfig.AccessToken)
	req.Header.Set("Accept", "application/json")

	// Executar a requisição.
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	// Verificar o código de status da resposta.
	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	// Decodificar a resposta JSON.
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	log.L.WithField("customer_id", params.CustomerID).
		Debug("wishlist: resposta recebida ", utils.PrettyJson(response))

	return response, nil
}
