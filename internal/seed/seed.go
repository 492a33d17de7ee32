// Package seed fournit le catalogue et les slides de secours servis quand la
// base est vide ou injoignable : la boutique reste présentable à la première
// installation.
package seed

import (
	"bazar_back_end/internal/models"

	"github.com/gocql/gocql"
)

func mustUUID(s string) gocql.UUID {
	u, err := gocql.ParseUUID(s)
	if err != nil {
		panic(err)
	}
	return u
}

// Products retourne le catalogue de démonstration.
func Products() []models.Product {
	return []models.Product{
		{
			ID:          mustUUID("11111111-1111-1111-1111-111111111111"),
			Name:        "Riz basmati (1 kg)",
			Price:       68,
			Unit:        "kg",
			Category:    "riz",
			ImageURL:    "https://picsum.photos/seed/rice/400/300",
			Description: "Riz long grain de première qualité.",
			Stock:       100,
		},
		{
			ID:          mustUUID("22222222-2222-2222-2222-222222222222"),
			Name:        "Huile de soja (2 L)",
			Price:       380,
			Unit:        "bouteille",
			Category:    "huile",
			ImageURL:    "https://picsum.photos/seed/oil/400/300",
			Description: "Huile de soja pure enrichie en vitamine A.",
			Stock:       50,
		},
		{
			ID:          mustUUID("33333333-3333-3333-3333-333333333333"),
			Name:        "Pommes de terre rouges",
			Price:       55,
			Unit:        "kg",
			Category:    "legumes",
			ImageURL:    "https://picsum.photos/seed/potato/400/300",
			Description: "Pommes de terre fraîchement récoltées.",
			Stock:       200,
		},
		{
			ID:          mustUUID("44444444-4444-4444-4444-444444444444"),
			Name:        "Bananes (douzaine)",
			Price:       120,
			Unit:        "douzaine",
			Category:    "fruits",
			ImageURL:    "https://picsum.photos/seed/banana/400/300",
			Description: "Bananes douces et mûres à point.",
			Stock:       30,
		},
		{
			ID:          mustUUID("55555555-5555-5555-5555-555555555555"),
			Name:        "Chanachur épicé (150 g)",
			Price:       45,
			Unit:        "paquet",
			Category:    "snacks",
			ImageURL:    "https://picsum.photos/seed/snacks/400/300",
			Description: "Mélange croustillant et relevé.",
			Stock:       100,
		},
		{
			ID:          mustUUID("66666666-6666-6666-6666-666666666666"),
			Name:        "Cola (500 ml)",
			Price:       40,
			Unit:        "bouteille",
			Category:    "boissons",
			ImageURL:    "https://picsum.photos/seed/cola/400/300",
			Description: "Boisson fraîche et pétillante.",
			Stock:       80,
		},
	}
}

// Slides retourne les diapositives de démonstration du carrousel.
func Slides() []models.Slide {
	return []models.Slide{
		{
			ID:         mustUUID("aaaaaaaa-aaaa-aaaa-aaaa-aaaaaaaaaaaa"),
			ImageURL:   "https://picsum.photos/seed/slide1/1200/500",
			Title:      "Produits frais livrés chez vous",
			Subtitle:   "Livraison gratuite en moins d'une heure dans le centre-ville.",
			ButtonText: "Commander maintenant",
		},
		{
			ID:         mustUUID("bbbbbbbb-bbbb-bbbb-bbbb-bbbbbbbbbbbb"),
			ImageURL:   "https://picsum.photos/seed/slide2/1200/500",
			Title:      "Directement du producteur",
			Subtitle:   "Fruits et légumes récoltés le matin même.",
			ButtonText: "Voir le catalogue",
		},
	}
}
