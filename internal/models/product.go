package models

import (
	"time"

	"github.com/gocql/gocql"
)

// CategoryAll est la catégorie sentinelle qui matche tous les produits.
const CategoryAll = "all"

type Product struct {
	ID          gocql.UUID `json:"id" db:"product_id"`
	Name        string     `json:"name" db:"name" binding:"required"`
	Description string     `json:"description" db:"description"`
	Price       float64    `json:"price" db:"price" binding:"min=0"`
	Unit        string     `json:"unit" db:"unit"`
	Category    string     `json:"category" db:"category"`
	ImageURL    string     `json:"image" db:"image_url"`
	Stock       int        `json:"stock" db:"stock" binding:"min=0"`
	CreatedAt   *time.Time `json:"created_at,omitempty" db:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at,omitempty" db:"updated_at"`
}
