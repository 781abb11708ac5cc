package wishlist

import (
	"github.com/bronzebyte/customer-stats-api/infrastructure/integrator/wishlist/wishlistclient"
	"github.com/bronzebyte/customer-stats-api/internal/config"
)

// WishlistIntegrator é a capacidade opcional de contar itens da lista de
// desejos de um cliente. Quando o serviço externo não está configurado, a
// implementação ausente responde sempre zero.
type WishlistIntegrator interface {
	CountItems(customerID int64) (int, error)
	CheckConnection() (bool, error)
}

type WishlistService struct {
	cfg    *config.Config
	Client wishlistclient.Client
}

func New(cfg *config.Config, client wishlistclient.Client) WishlistIntegrator {
	return &WishlistService{
		cfg:    cfg,
		Client: client,
	}
}

func (s *WishlistService) CountItems(customerID int64) (int, error) {
	items, err := s.Client.GetItems(wishlistclient.ItemsParams{CustomerID: customerID}, &s.cfg.Wishlist)
	if err != nil {
		return 0, err
	}

	return len(items), nil
}

// CheckConnection valida que o serviço de wishlist está respondendo. Usa o
// cliente com um ID de cliente reservado; qualquer resposta bem sucedida
// conta como conexão ativa.
func (s *WishlistService) CheckConnection() (bool, error) {
	_, err := s.Client.GetItems(wishlistclient.ItemsParams{CustomerID: 0}, &s.cfg.Wishlist)
	if err != nil {
		return false, err
	}

	return true, nil
}

// AbsentIntegrator é a implementação usada quando o plugin de wishlist não
// está instalado: degrada para contagem zero sem erro.
type AbsentIntegrator struct{}

func NewAbsent() WishlistIntegrator {
	return &AbsentIntegrator{}
}

func (a *AbsentIntegrator) CountItems(customerID int64) (int, error) {
	return 0, nil
}

func (a *AbsentIntegrator) CheckConnection() (bool, error) {
	return false, nil
}
