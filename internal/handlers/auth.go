package handlers

import (
	"net/http"
	"os"
	"strings"

	"bazar_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

//
// 🔐 POST /api/admin/login
//
// Remplace l'ancienne comparaison de mot de passe codée en dur côté client :
// identifiants vérifiés côté serveur (Argon2id), session portée par un JWT.
func AdminLogin(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email et mot de passe requis"})
		return
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminHash := os.Getenv("ADMIN_PASSWORD_HASH")
	if adminEmail == "" || adminHash == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Connexion admin non configurée"})
		return
	}

	if !strings.EqualFold(strings.TrimSpace(input.Email), adminEmail) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, adminHash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Identifiants invalides"})
		return
	}

	token, err := utils.GenerateAdminJWT(adminEmail)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token})
}
