package utils

import (
	"github.com/skip2/go-qrcode"
)

// GenerateOrderQR encode l'URL de suivi d'une commande en PNG (pour le ticket
// remis au livreur).
func GenerateOrderQR(trackingURL string) ([]byte, error) {
	return qrcode.Encode(trackingURL, qrcode.Medium, 256)
}
