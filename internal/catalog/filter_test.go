package catalog

import (
	"testing"

	"bazar_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogue() []models.Product {
	return []models.Product{
		{ID: gocql.TimeUUID(), Name: "Riz basmati 1kg", Description: "Riz long grain de qualité", Category: "riz"},
		{ID: gocql.TimeUUID(), Name: "Huile de soja 2L", Description: "Huile végétale riche en vitamine A", Category: "huile"},
		{ID: gocql.TimeUUID(), Name: "Pommes de terre rouges", Description: "Fraîchement récoltées", Category: "legumes"},
		{ID: gocql.TimeUUID(), Name: "Bananes (douzaine)", Description: "Bananes douces et mûres", Category: "fruits"},
	}
}

func TestFilter_ToutEtRechercheVideRetourneToutDansLOrdre(t *testing.T) {
	produits := catalogue()

	res := Filter(produits, models.CategoryAll, "", NameOnly)

	require.Len(t, res, len(produits))
	for i := range produits {
		assert.Equal(t, produits[i].ID, res[i].ID)
	}
}

func TestFilter_CategorieVideMatcheTout(t *testing.T) {
	produits := catalogue()

	res := Filter(produits, "", "", NameOnly)

	assert.Len(t, res, len(produits))
}

func TestFilter_CategorieExacte(t *testing.T) {
	produits := catalogue()

	res := Filter(produits, "huile", "", NameOnly)

	require.Len(t, res, 1)
	assert.Equal(t, "Huile de soja 2L", res[0].Name)
}

func TestFilter_RechercheInsensibleALaCasse(t *testing.T) {
	produits := catalogue()

	res := Filter(produits, models.CategoryAll, "RIZ", NameOnly)

	require.Len(t, res, 1)
	assert.Equal(t, "Riz basmati 1kg", res[0].Name)
}

func TestFilter_SousChaine(t *testing.T) {
	produits := catalogue()

	res := Filter(produits, models.CategoryAll, "omme", NameOnly)

	require.Len(t, res, 1)
	assert.Equal(t, "Pommes de terre rouges", res[0].Name)
}

func TestFilter_ModeNomSeulIgnoreLaDescription(t *testing.T) {
	produits := catalogue()

	// "vitamine" n'apparaît que dans la description de l'huile
	res := Filter(produits, models.CategoryAll, "vitamine", NameOnly)
	assert.Empty(t, res)

	res = Filter(produits, models.CategoryAll, "vitamine", NameAndDescription)
	require.Len(t, res, 1)
	assert.Equal(t, "Huile de soja 2L", res[0].Name)
}

func TestFilter_CategorieEtRechercheCombinees(t *testing.T) {
	produits := catalogue()

	res := Filter(produits, "fruits", "banane", NameOnly)
	require.Len(t, res, 1)

	res = Filter(produits, "riz", "banane", NameOnly)
	assert.Empty(t, res)
}

func TestFilter_AucunResultat(t *testing.T) {
	res := Filter(catalogue(), models.CategoryAll, "introuvable", NameAndDescription)
	assert.Empty(t, res)
}

func TestFilter_PreserveLOrdreDEntree(t *testing.T) {
	produits := catalogue()

	// "e" matche plusieurs produits, l'ordre relatif doit rester celui d'entrée
	res := Filter(produits, models.CategoryAll, "e", NameOnly)

	require.True(t, len(res) >= 2)
	posPrec := -1
	for _, r := range res {
		for i, p := range produits {
			if p.ID == r.ID {
				require.Greater(t, i, posPrec)
				posPrec = i
			}
		}
	}
}
