package cart

import (
	"testing"

	"bazar_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func produit(name string, price float64) models.Product {
	return models.Product{ID: gocql.TimeUUID(), Name: name, Price: price}
}

func TestAdd_NouveauProduit(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)

	c := Add(models.Cart{}, riz)

	require.Len(t, c, 1)
	assert.Equal(t, riz.ID, c[0].Product.ID)
	assert.Equal(t, 1, c[0].Quantity)
}

func TestAdd_ProduitExistantIncremente(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	huile := produit("Huile de soja 2L", 380)

	c := models.Cart{}
	c = Add(c, riz)
	c = Add(c, huile)
	c = Add(c, riz)
	c = Add(c, riz)

	// Un seul item par produit, quantité = nombre d'ajouts
	require.Len(t, c, 2)
	assert.Equal(t, 3, c[0].Quantity)
	assert.Equal(t, 1, c[1].Quantity)
	// L'ordre d'insertion est préservé
	assert.Equal(t, riz.ID, c[0].Product.ID)
	assert.Equal(t, huile.ID, c[1].Product.ID)
}

func TestAdd_UnSeulItemParProduit(t *testing.T) {
	produits := []models.Product{
		produit("Pommes de terre", 55),
		produit("Bananes (douzaine)", 120),
		produit("Chanachur 150g", 45),
	}

	c := models.Cart{}
	compteur := map[gocql.UUID]int{}
	for i := 0; i < 30; i++ {
		p := produits[i%len(produits)]
		c = Add(c, p)
		compteur[p.ID]++
	}

	require.Len(t, c, len(produits))
	for _, item := range c {
		assert.Equal(t, compteur[item.Product.ID], item.Quantity)
	}
}

func TestRemove(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	huile := produit("Huile de soja 2L", 380)

	c := Add(Add(models.Cart{}, riz), huile)
	c = Remove(c, riz.ID)

	require.Len(t, c, 1)
	assert.Equal(t, huile.ID, c[0].Product.ID)
}

func TestRemove_AbsentEstUnNoOp(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	c := Add(models.Cart{}, riz)

	c = Remove(c, gocql.TimeUUID())

	require.Len(t, c, 1)
}

func TestUpdateQuantity_PlancherAUn(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	c := Add(models.Cart{}, riz)

	for _, delta := range []int{-1, -5, -1000000} {
		res := UpdateQuantity(c, riz.ID, delta)
		assert.Equal(t, 1, res[0].Quantity, "delta=%d", delta)
	}
}

func TestUpdateQuantity_DeltaPositifEtNegatif(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	c := Add(models.Cart{}, riz)

	c = UpdateQuantity(c, riz.ID, 4)
	assert.Equal(t, 5, c[0].Quantity)

	c = UpdateQuantity(c, riz.ID, -3)
	assert.Equal(t, 2, c[0].Quantity)
}

func TestUpdateQuantity_AbsentEstUnNoOp(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	c := Add(models.Cart{}, riz)

	res := UpdateQuantity(c, gocql.TimeUUID(), 3)

	require.Len(t, res, 1)
	assert.Equal(t, 1, res[0].Quantity)
}

func TestTotal(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	huile := produit("Huile de soja 2L", 380)

	c := models.Cart{}
	c = Add(c, riz)
	c = Add(c, riz)
	c = Add(c, huile)

	// 68*2 + 380*1 = 516
	assert.Equal(t, 516.0, Total(c))
	// Recalcul idempotent : deux lectures sans mutation donnent la même valeur
	assert.Equal(t, Total(c), Total(c))
}

func TestTotal_PanierVide(t *testing.T) {
	assert.Equal(t, 0.0, Total(models.Cart{}))
}

func TestTotal_RefleteChaqueMutation(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	huile := produit("Huile de soja 2L", 380)

	c := Add(models.Cart{}, riz)
	assert.Equal(t, 68.0, Total(c))

	c = Add(c, huile)
	assert.Equal(t, 448.0, Total(c))

	c = UpdateQuantity(c, riz.ID, 1)
	assert.Equal(t, 516.0, Total(c))

	c = Remove(c, huile.ID)
	assert.Equal(t, 136.0, Total(c))
}

func TestCount(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	huile := produit("Huile de soja 2L", 380)

	c := models.Cart{}
	assert.Equal(t, 0, Count(c))

	c = Add(c, riz)
	c = Add(c, riz)
	c = Add(c, huile)
	assert.Equal(t, 2, Count(c))
}

func TestAdd_NeModifiePasLePanierDOrigine(t *testing.T) {
	riz := produit("Riz basmati 1kg", 68)
	avant := Add(models.Cart{}, riz)

	_ = Add(avant, riz)

	assert.Equal(t, 1, avant[0].Quantity)
}
