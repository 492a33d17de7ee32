package checkout

import (
	"testing"
	"time"

	"bazar_back_end/internal/cart"
	"bazar_back_end/internal/models"

	"github.com/gocql/gocql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func panierExemple() models.Cart {
	riz := models.Product{ID: gocql.TimeUUID(), Name: "Riz basmati 1kg", Price: 68}
	huile := models.Product{ID: gocql.TimeUUID(), Name: "Huile de soja 2L", Price: 380}

	c := models.Cart{}
	c = cart.Add(c, riz)
	c = cart.Add(c, riz)
	c = cart.Add(c, huile)
	return c
}

func TestBuildOrder_ScenarioNominal(t *testing.T) {
	c := panierExemple()
	now := time.Date(2026, 9, 1, 10, 30, 0, 0, time.UTC)

	order, err := BuildOrder(c, Customer{
		Name:    "Karim",
		Phone:   "0171234567",
		Address: "Village X",
	}, now)

	require.NoError(t, err)
	assert.Equal(t, 516.0, order.Total) // 68*2 + 380*1
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, now, order.Date)
	assert.Equal(t, "Karim", order.CustomerName)
	require.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, 1, order.Items[1].Quantity)
	assert.NotEqual(t, gocql.UUID{}, order.ID)
}

func TestBuildOrder_PanierVide(t *testing.T) {
	_, err := BuildOrder(models.Cart{}, Customer{
		Name: "Karim", Phone: "0171234567", Address: "Village X",
	}, time.Now())

	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestBuildOrder_ChampsObligatoires(t *testing.T) {
	c := panierExemple()

	cas := []struct {
		nom      string
		customer Customer
	}{
		{"nom vide", Customer{Name: "", Phone: "0171234567", Address: "Village X"}},
		{"téléphone vide après trim", Customer{Name: "Karim", Phone: "   ", Address: "Village X"}},
		{"adresse vide", Customer{Name: "Karim", Phone: "0171234567", Address: ""}},
		{"tout vide", Customer{}},
	}

	for _, tc := range cas {
		t.Run(tc.nom, func(t *testing.T) {
			_, err := BuildOrder(c, tc.customer, time.Now())
			assert.ErrorIs(t, err, ErrMissingFields)
		})
	}
}

func TestBuildOrder_TrimDesChamps(t *testing.T) {
	order, err := BuildOrder(panierExemple(), Customer{
		Name:    "  Karim  ",
		Phone:   " 0171234567 ",
		Address: "\tVillage X\n",
	}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, "Karim", order.CustomerName)
	assert.Equal(t, "0171234567", order.Phone)
	assert.Equal(t, "Village X", order.Address)
}

func TestBuildOrder_TotalFigeMalgreChangementDePrix(t *testing.T) {
	c := panierExemple()

	order, err := BuildOrder(c, Customer{
		Name: "Karim", Phone: "0171234567", Address: "Village X",
	}, time.Now())
	require.NoError(t, err)
	require.Equal(t, 516.0, order.Total)

	// Édition du prix après coup : la commande passée ne bouge pas
	c[0].Product.Price = 999

	assert.Equal(t, 516.0, order.Total)
	assert.Equal(t, 68.0, order.Items[0].Product.Price)
}

func TestBuildOrder_DeuxCommandesOntDesIDsDistincts(t *testing.T) {
	customer := Customer{Name: "Karim", Phone: "0171234567", Address: "Village X"}

	o1, err := BuildOrder(panierExemple(), customer, time.Now())
	require.NoError(t, err)
	o2, err := BuildOrder(panierExemple(), customer, time.Now())
	require.NoError(t, err)

	assert.NotEqual(t, o1.ID, o2.ID)
}
