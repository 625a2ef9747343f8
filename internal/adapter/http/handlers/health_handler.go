package handlers

import (
	"net/http"

	"insurance_portal/internal/adapter/http/dto/response"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	service string
}

func NewHealthHandler(service string) *HealthHandler {
	return &HealthHandler{service: service}
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, response.Health{Status: "ok", Service: h.service})
}

func (h *HealthHandler) Ping(c *gin.Context) {
	c.JSON(http.StatusOK, response.Pong{Message: "pong"})
}
