package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/service"
)

// EstadisticasHandler serves the consolidated reporting endpoint.
type EstadisticasHandler struct {
	estadisticasService service.EstadisticasServiceInterface
}

func NewEstadisticasHandler(estadisticasService service.EstadisticasServiceInterface) *EstadisticasHandler {
	return &EstadisticasHandler{estadisticasService: estadisticasService}
}

// GetEstadisticas handles GET /api/estadisticas
func (h *EstadisticasHandler) GetEstadisticas(c *gin.Context) {
	stats, err := h.estadisticasService.GetEstadisticas(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error al calcular las estadísticas.")
		return
	}

	c.JSON(http.StatusOK, entity.EstadisticasResponse{
		Success: true,
		Data:    stats,
	})
}
