package handlers

import (
	"context"
	"net/http"
	"time"

	"bazar_back_end/internal/cache"
	"bazar_back_end/internal/catalog"
	"bazar_back_end/internal/database"
	"bazar_back_end/internal/models"
	"bazar_back_end/internal/seed"
	"bazar_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// loadProducts retourne le catalogue : cache Redis, sinon ScyllaDB, sinon le
// catalogue de démonstration (base vide ou injoignable — la boutique reste
// utilisable).
func loadProducts(ctx context.Context) []models.Product {
	if cached, ok := cache.GetProducts(ctx); ok {
		return cached
	}

	products := scanProducts()
	if len(products) == 0 {
		return seed.Products()
	}

	cache.SetProducts(ctx, products)
	return products
}

func scanProducts() []models.Product {
	session, err := database.GetCatalogSession()
	if err != nil {
		return nil
	}

	iter := session.Query(`SELECT product_id, name, description, price, unit, category, image_url, stock, created_at, updated_at FROM products`).Iter()

	var products []models.Product
	var p models.Product

	for iter.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Unit, &p.Category, &p.ImageURL, &p.Stock, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{} // Reset pour la prochaine itération
	}

	if err := iter.Close(); err != nil {
		return nil
	}
	return products
}

// findProduct cherche un produit par id dans le catalogue courant (y compris
// le catalogue de démonstration).
func findProduct(ctx context.Context, id gocql.UUID) (models.Product, bool) {
	for _, p := range loadProducts(ctx) {
		if p.ID == id {
			return p, true
		}
	}
	return models.Product{}, false
}

//
// 🟢 GET /api/products?category=&q=
//
func GetProducts(c *gin.Context) {
	ctx := context.Background()

	products := loadProducts(ctx)
	filtered := catalog.Filter(products, c.Query("category"), c.Query("q"), catalog.NameOnly)

	c.JSON(http.StatusOK, filtered)
}

//
// 🔍 GET /api/products/search?q=&category=
//
func SearchProducts(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Paramètre 'q' requis"})
		return
	}

	results, err := services.SearchProducts(q)
	if err != nil {
		// Elastic indisponible : on retombe sur le filtre interne
		results = catalog.Filter(loadProducts(context.Background()), models.CategoryAll, q, catalog.NameAndDescription)
	}

	if category := c.Query("category"); category != "" {
		results = catalog.Filter(results, category, "", catalog.NameOnly)
	}

	c.JSON(http.StatusOK, results)
}

//
// 🟢 GET /api/products/:id
//
func GetProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	p, ok := findProduct(context.Background(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	c.JSON(http.StatusOK, p)
}

//
// ✏️ POST /api/admin/products
//
func CreateProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	p.ID = gocql.TimeUUID()
	now := time.Now()
	p.CreatedAt = &now
	p.UpdatedAt = &now

	query := `INSERT INTO products (product_id, name, description, price, unit, category, image_url, stock, created_at, updated_at)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, p.ID, p.Name, p.Description, p.Price, p.Unit, p.Category, p.ImageURL, p.Stock, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création produit: " + err.Error()})
		return
	}

	cache.InvalidateProducts(context.Background())

	// 🔄 Indexation Elasticsearch
	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, p)
}

//
// ✏️ PUT /api/admin/products/:id
//
func UpdateProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	// Vérifie que le produit existe avant de le réécrire
	var existing gocql.UUID
	if err := session.Query(`SELECT product_id FROM products WHERE product_id = ?`, id).Scan(&existing); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	p.ID = id
	now := time.Now()
	p.UpdatedAt = &now

	query := `UPDATE products SET name = ?, description = ?, price = ?, unit = ?, category = ?, image_url = ?, stock = ?, updated_at = ? WHERE product_id = ?`

	if err := session.Query(query, p.Name, p.Description, p.Price, p.Unit, p.Category, p.ImageURL, p.Stock, p.UpdatedAt, p.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour produit: " + err.Error()})
		return
	}

	// Les commandes déjà passées gardent leur instantané : on ne touche
	// qu'au catalogue et à son index.
	cache.InvalidateProducts(context.Background())
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, p)
}

//
// ❌ DELETE /api/admin/products/:id
//
func DeleteProduct(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	session, err := database.GetCatalogSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur suppression produit: " + err.Error()})
		return
	}

	cache.InvalidateProducts(context.Background())
	go services.RemoveProductFromIndex(id.String())

	c.JSON(http.StatusOK, gin.H{"message": "Produit supprimé"})
}
