package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"sort"
	"time"

	"bazar_back_end/internal/checkout"
	"bazar_back_end/internal/config"
	"bazar_back_end/internal/database"
	"bazar_back_end/internal/models"
	"bazar_back_end/internal/services"
	"bazar_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"
)

// Canal Redis sur lequel chaque nouvelle commande est publiée (flux admin)
const ordersChannel = "orders:new"

//
// 🛒 POST /api/orders — soumission du panier
//
// Tout ou rien du point de vue du client : soit la commande est écrite en base
// ET le panier vidé, soit rien ne change et il peut resoumettre.
func PlaceOrder(c *gin.Context) {
	sessionID := c.GetString("session_id")

	var customer checkout.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nom, téléphone et adresse sont obligatoires"})
		return
	}

	ctx := context.Background()
	panier := loadCart(ctx, sessionID)

	order, err := checkout.BuildOrder(panier, customer, time.Now())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	itemsJSON, _ := json.Marshal(order.Items)

	query := `INSERT INTO orders (order_id, customer_name, phone, address, items, total, status, date)
	          VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if err := session.Query(query, order.ID, order.CustomerName, order.Phone, order.Address,
		string(itemsJSON), order.Total, order.Status, order.Date).Exec(); err != nil {
		// Écriture échouée : le panier reste intact, l'utilisateur resoumet
		log.Println("❌ Erreur enregistrement commande:", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Impossible d'enregistrer la commande. Vérifiez votre connexion et réessayez."})
		return
	}

	// Commande persistée : on vide le panier et on notifie
	if err := database.RedisClient.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		log.Println("⚠️ Panier non vidé après commande:", err)
	}

	orderJSON, _ := json.Marshal(order)
	database.Redis.Publish(ctx, ordersChannel, orderJSON)
	go services.NotifyNewOrder(order)

	log.Printf("✅ Commande %s enregistrée (%.2f, %d articles)", order.ID, order.Total, len(order.Items))

	c.JSON(http.StatusCreated, order)
}

//
// 🟢 GET /api/orders/:id — page de confirmation
//
func GetOrder(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	order, err := fetchOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	c.JSON(http.StatusOK, order)
}

//
// 🎫 GET /api/orders/:id/qr — QR de suivi pour le ticket livreur
//
func GetOrderQR(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	if _, err := fetchOrder(id); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	trackingURL := fmt.Sprintf("%s/api/orders/%s", config.PublicBaseURL(), id)
	png, err := utils.GenerateOrderQR(trackingURL)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération QR"})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

//
// 📋 GET /api/admin/orders — les plus récentes d'abord
//
func ListOrders(c *gin.Context) {
	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	iter := session.Query(`SELECT order_id, customer_name, phone, address, items, total, status, date FROM orders`).Iter()

	var orders []models.Order
	var o models.Order
	var itemsJSON string

	for iter.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.Address, &itemsJSON, &o.Total, &o.Status, &o.Date) {
		if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
			log.Printf("⚠️ Items illisibles pour la commande %s: %v", o.ID, err)
		}
		orders = append(orders, o)
		o = models.Order{}
		itemsJSON = ""
	}

	if err := iter.Close(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture commandes: " + err.Error()})
		return
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].Date.After(orders[j].Date)
	})

	if orders == nil {
		orders = []models.Order{}
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

//
// 🔁 PATCH /api/admin/orders/:id/status
//
// Seules les transitions Pending → Delivered et Pending → Cancelled sont
// admises ; les deux statuts sont terminaux.
func UpdateOrderStatus(c *gin.Context) {
	id, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID commande invalide"})
		return
	}

	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut requis"})
		return
	}

	if !models.ValidOrderStatus(input.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu: " + input.Status})
		return
	}

	order, err := fetchOrder(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
		return
	}

	if !models.CanTransitionOrderStatus(order.Status, input.Status) {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("Transition %s → %s interdite", order.Status, input.Status),
		})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur connexion base de données"})
		return
	}

	if err := session.Query(`UPDATE orders SET status = ? WHERE order_id = ?`, input.Status, id).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur mise à jour statut: " + err.Error()})
		return
	}

	order.Status = input.Status
	c.JSON(http.StatusOK, order)
}

// fetchOrder lit une commande complète depuis ScyllaDB.
func fetchOrder(id gocql.UUID) (models.Order, error) {
	session, err := database.GetOrdersSession()
	if err != nil {
		return models.Order{}, err
	}

	var o models.Order
	var itemsJSON string

	err = session.Query(`SELECT order_id, customer_name, phone, address, items, total, status, date
	                     FROM orders WHERE order_id = ?`, id).Scan(
		&o.ID, &o.CustomerName, &o.Phone, &o.Address, &itemsJSON, &o.Total, &o.Status, &o.Date)
	if err != nil {
		return models.Order{}, err
	}

	if err := json.Unmarshal([]byte(itemsJSON), &o.Items); err != nil {
		log.Printf("⚠️ Items illisibles pour la commande %s: %v", o.ID, err)
	}

	return o, nil
}
