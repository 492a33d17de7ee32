// Package checkout construit une commande immuable à partir du panier courant.
// La construction est pure : l'insertion en base et le vidage du panier restent
// à la charge de l'appelant, qui ne doit vider le panier qu'après une écriture
// réussie (tout ou rien du point de vue du client).
package checkout

import (
	"errors"
	"strings"
	"time"

	"bazar_back_end/internal/cart"
	"bazar_back_end/internal/models"

	"github.com/gocql/gocql"
)

var (
	ErrEmptyCart     = errors.New("panier vide")
	ErrMissingFields = errors.New("nom, téléphone et adresse sont obligatoires")
)

// Customer porte les champs du formulaire de commande. Seule la présence est
// validée (après trim) — pas de contrôle de format du téléphone.
type Customer struct {
	Name    string `json:"customerName" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Address string `json:"address" binding:"required"`
}

// BuildOrder fige l'instantané de commande : copie profonde des items, total
// calculé à cet instant, statut Pending, identifiant frais. Une modification
// ultérieure d'un produit ne doit jamais altérer une commande passée.
func BuildOrder(c models.Cart, customer Customer, now time.Time) (models.Order, error) {
	if len(c) == 0 {
		return models.Order{}, ErrEmptyCart
	}

	name := strings.TrimSpace(customer.Name)
	phone := strings.TrimSpace(customer.Phone)
	address := strings.TrimSpace(customer.Address)
	if name == "" || phone == "" || address == "" {
		return models.Order{}, ErrMissingFields
	}

	items := make([]models.CartItem, len(c))
	copy(items, c)

	return models.Order{
		ID:           gocql.TimeUUID(),
		CustomerName: name,
		Phone:        phone,
		Address:      address,
		Items:        items,
		Total:        cart.Total(c),
		Status:       models.OrderStatusPending,
		Date:         now,
	}, nil
}
