package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// CheckAdminCredentials vérifie au démarrage que le compte admin est configuré.
// Sans ADMIN_EMAIL + ADMIN_PASSWORD_HASH, la connexion au panneau d'administration
// est simplement désactivée (la boutique publique reste servie).
func CheckAdminCredentials() {
	if os.Getenv("ADMIN_EMAIL") == "" || os.Getenv("ADMIN_PASSWORD_HASH") == "" {
		log.Println("⚠️ ADMIN_EMAIL ou ADMIN_PASSWORD_HASH manquant — connexion admin désactivée")
		return
	}
	log.Println("✅ Compte admin configuré")
}

// PublicBaseURL retourne l'URL publique du backend (pour les QR de suivi de commande).
func PublicBaseURL() string {
	u := os.Getenv("BASE_URL")
	if u == "" {
		return "http://localhost:8080"
	}
	return u
}
