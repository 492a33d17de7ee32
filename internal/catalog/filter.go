// Package catalog fournit le filtrage en mémoire du catalogue, utilisé pour les
// paramètres category/q de la liste produits et comme repli quand Elasticsearch
// est indisponible.
package catalog

import (
	"strings"

	"bazar_back_end/internal/models"
)

// SearchMode contrôle les champs couverts par la recherche plein texte.
type SearchMode int

const (
	// NameOnly ne matche que le nom du produit.
	NameOnly SearchMode = iota
	// NameAndDescription matche aussi la description.
	NameAndDescription
)

// Filter retourne la sous-séquence des produits dont la catégorie correspond
// exactement (la sentinelle "all" ou une catégorie vide matche tout) ET dont le
// nom — ou la description selon le mode — contient search, insensible à la casse.
// L'ordre d'entrée est préservé, aucun re-tri.
func Filter(products []models.Product, category, search string, mode SearchMode) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if !matchCategory(p, category) {
			continue
		}
		if !matchSearch(p, needle, mode) {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchCategory(p models.Product, category string) bool {
	if category == "" || category == models.CategoryAll {
		return true
	}
	return p.Category == category
}

func matchSearch(p models.Product, needle string, mode SearchMode) bool {
	if needle == "" {
		return true
	}
	if strings.Contains(strings.ToLower(p.Name), needle) {
		return true
	}
	if mode == NameAndDescription && strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	return false
}
