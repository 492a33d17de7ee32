package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader identifie le panier d'un visiteur anonyme.
const SessionHeader = "X-Session-ID"

// CartSession lit l'identifiant de session panier envoyé par le front, en
// génère un s'il manque ou s'il est invalide, et le renvoie systématiquement
// dans la réponse pour que le front le conserve.
func CartSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if _, err := uuid.Parse(sessionID); err != nil {
			sessionID = uuid.NewString()
		}

		c.Set("session_id", sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}
