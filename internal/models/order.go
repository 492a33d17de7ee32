package models

import (
	"time"

	"github.com/gocql/gocql"
)

// Statuts de commande. Pending est le seul statut non terminal.
const (
	OrderStatusPending   = "Pending"
	OrderStatusDelivered = "Delivered"
	OrderStatusCancelled = "Cancelled"
)

type Order struct {
	ID           gocql.UUID `json:"id" db:"order_id"`
	CustomerName string     `json:"customerName" db:"customer_name"`
	Phone        string     `json:"phone" db:"phone"`
	Address      string     `json:"address" db:"address"`
	Items        []CartItem `json:"items" db:"items"`
	Total        float64    `json:"total" db:"total"`
	Status       string     `json:"status" db:"status"`
	Date         time.Time  `json:"date" db:"date"`
}

// ValidOrderStatus vérifie qu'un statut fait partie du cycle de vie connu.
func ValidOrderStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

// CanTransitionOrderStatus n'autorise que Pending → Delivered et Pending → Cancelled.
// Les statuts terminaux ne bougent plus, une commande ne se rouvre jamais.
func CanTransitionOrderStatus(from, to string) bool {
	if from != OrderStatusPending {
		return false
	}
	return to == OrderStatusDelivered || to == OrderStatusCancelled
}
