package models

import "github.com/gocql/gocql"

// Slide est une diapositive du carrousel d'accueil. La rotation elle-même est
// gérée côté front ; le backend ne fait que servir la liste.
type Slide struct {
	ID         gocql.UUID `json:"id" db:"slide_id"`
	ImageURL   string     `json:"image" db:"image_url"`
	Title      string     `json:"title" db:"title" binding:"required"`
	Subtitle   string     `json:"subtitle" db:"subtitle"`
	ButtonText string     `json:"buttonText" db:"button_text"`
}
