// Package cart contient la logique pure du panier : chaque opération prend un
// panier et retourne le panier résultant, sans effet de bord. La persistance
// (Redis côté handlers) se contente de sauvegarder la valeur retournée.
package cart

import (
	"bazar_back_end/internal/models"

	"github.com/gocql/gocql"
)

// Add incrémente la quantité de 1 si le produit est déjà dans le panier,
// sinon ajoute un nouvel item en fin de séquence avec quantité 1.
// L'ordre des items existants est préservé.
func Add(c models.Cart, p models.Product) models.Cart {
	for i := range c {
		if c[i].Product.ID == p.ID {
			out := clone(c)
			out[i].Quantity++
			return out
		}
	}
	return append(clone(c), models.CartItem{Product: p, Quantity: 1})
}

// Remove supprime l'item correspondant. No-op silencieux si absent.
func Remove(c models.Cart, productID gocql.UUID) models.Cart {
	out := make(models.Cart, 0, len(c))
	for _, item := range c {
		if item.Product.ID != productID {
			out = append(out, item)
		}
	}
	return out
}

// UpdateQuantity applique un delta à la quantité, plancher à 1 : on ne peut pas
// descendre un item à zéro par ce chemin, la suppression passe par Remove.
// No-op silencieux si le produit n'est pas dans le panier.
func UpdateQuantity(c models.Cart, productID gocql.UUID, delta int) models.Cart {
	out := clone(c)
	for i := range out {
		if out[i].Product.ID == productID {
			q := out[i].Quantity + delta
			if q < 1 {
				q = 1
			}
			out[i].Quantity = q
			break
		}
	}
	return out
}

// Total recalcule le montant à chaque appel, jamais de cache.
func Total(c models.Cart) float64 {
	total := 0.0
	for _, item := range c {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Count retourne le nombre d'items distincts (badge du panier).
func Count(c models.Cart) int {
	return len(c)
}

func clone(c models.Cart) models.Cart {
	out := make(models.Cart, len(c))
	copy(out, c)
	return out
}
