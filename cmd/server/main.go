package main

import (
	"log"
	"os"

	"bazar_back_end/internal/config"
	"bazar_back_end/internal/database"
	"bazar_back_end/internal/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	config.Load()
	config.CheckAdminCredentials()

	database.ConnectDatabases()
	defer database.CloseScylla()

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Serveur Bazar lancé sur le port", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("❌ Erreur serveur HTTP:", err)
	}
}
