package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDKey = "request_id"

// requestIDMaxLen borne la taille d'un Request-ID externe pour éviter
// l'injection dans les logs.
const requestIDMaxLen = 64

// RequestID middleware de traçage des requêtes.
// Reprend l'en-tête X-Request-ID s'il est présent, sinon génère un UUID;
// la valeur est injectée dans le contexte et renvoyée en réponse.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		rid := c.GetHeader("X-Request-ID")
		if rid == "" || len(rid) > requestIDMaxLen {
			rid = uuid.New().String()
		}

		c.Set(requestIDKey, rid)
		c.Header("X-Request-ID", rid)

		c.Next()
	}
}
