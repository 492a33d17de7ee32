package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"bazar_back_end/internal/cart"
	"bazar_back_end/internal/database"
	"bazar_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// Un panier abandonné survit 30 jours dans Redis
const cartTTL = 30 * 24 * time.Hour

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// loadCart lit le panier de la session depuis Redis. Un panier absent ou
// illisible est un panier vide.
func loadCart(ctx context.Context, sessionID string) models.Cart {
	data, err := database.RedisClient.Get(ctx, cartKey(sessionID)).Result()
	if err != nil || data == "" {
		return models.Cart{}
	}

	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return models.Cart{}
	}
	return c
}

func saveCart(ctx context.Context, sessionID string, c models.Cart) error {
	jsonData, _ := json.Marshal(c)
	return database.RedisClient.Set(ctx, cartKey(sessionID), jsonData, cartTTL).Err()
}

func cartResponse(c models.Cart) gin.H {
	return gin.H{
		"items": c,
		"total": cart.Total(c),
		"count": cart.Count(c),
	}
}

//
// 🟢 GET /api/cart
//
func GetCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	panier := loadCart(context.Background(), sessionID)
	c.JSON(http.StatusOK, cartResponse(panier))
}

//
// 🟢 POST /api/cart/items
//
func AddToCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var input struct {
		ProductID string `json:"product_id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx := context.Background()

	// Instantané du produit au moment de l'ajout
	product, ok := findProduct(ctx, productID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Produit introuvable"})
		return
	}

	panier := cart.Add(loadCart(ctx, sessionID), product)

	if err := saveCart(ctx, sessionID, panier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(panier))
}

//
// 🔁 PATCH /api/cart/items/:productId
//
func UpdateCartQuantity(c *gin.Context) {
	sessionID := c.GetString("session_id")

	productID, err := gocql.ParseUUID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	var input struct {
		Delta int `json:"delta"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	ctx := context.Background()

	// No-op silencieux si le produit n'est pas dans le panier
	panier := cart.UpdateQuantity(loadCart(ctx, sessionID), productID, input.Delta)

	if err := saveCart(ctx, sessionID, panier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(panier))
}

//
// ❌ DELETE /api/cart/items/:productId
//
func RemoveFromCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	productID, err := gocql.ParseUUID(c.Param("productId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID produit invalide"})
		return
	}

	ctx := context.Background()
	panier := cart.Remove(loadCart(ctx, sessionID), productID)

	if err := saveCart(ctx, sessionID, panier); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(panier))
}

//
// 🧹 DELETE /api/cart
//
func ClearCart(c *gin.Context) {
	sessionID := c.GetString("session_id")

	if err := database.RedisClient.Del(context.Background(), cartKey(sessionID)).Err(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Panier vidé avec succès"})
}
