package wishlistdomain

// WishlistItem é um produto salvo na lista de desejos do cliente, como
// retornado pelo serviço externo de wishlist.
type WishlistItem struct {
	ID        int64  `json:"id,omitempty"`
	ProductID int64  `json:"product_id,omitempty"`
	AddedAt   string `json:"added_at,omitempty"`
}
