package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sangam/bloodbank/internal/core/ports"
)

type PageHandler struct {
	logger  ports.LoggerPort
	metrics ports.MetricsPort
}

func NewPageHandler(logger ports.LoggerPort, metrics ports.MetricsPort) *PageHandler {
	return &PageHandler{
		logger:  logger,
		metrics: metrics,
	}
}

func (h *PageHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{})
}

func (h *PageHandler) Dashboard(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, ok := getSessionPayload(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"name": payload.Name,
		"role": string(payload.Role),
	})
}

func (h *PageHandler) Admin(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	payload, ok := getSessionPayload(c)
	if !ok {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.HTML(http.StatusOK, "admin_dashboard.html", gin.H{
		"name": payload.Name,
	})
}
