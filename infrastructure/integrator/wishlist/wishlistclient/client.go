package wishlistclient

import (
	"net/http"
	"time"

	"github.com/bronzebyte/customer-stats-api/internal/config"
)

type Client interface {
	GetItems(params ItemsParams, wishlistConfig *config.Wishlist) (ItemsResponse, error)
}

type WishlistClient struct {
	httpClient *http.Client
	config     *config.Config
}

// NewClient cria uma nova instância do cliente HTTP do serviço de wishlist.
func NewClient(cfg *config.Config) Client {
	return &WishlistClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}
