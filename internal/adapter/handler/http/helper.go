package http

import (
	"github.com/gin-gonic/gin"

	"github.com/sangam/bloodbank/internal/core/domain"
)

func getSessionPayload(c *gin.Context) (*domain.SessionPayload, bool) {
	value, exists := c.Get(sessionPayloadKey)
	if !exists {
		return nil, false
	}
	payload, ok := value.(*domain.SessionPayload)
	if !ok {
		return nil, false
	}
	return payload, true
}
