package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/service"
)

// ExportHandler serves the CSV download endpoint.
type ExportHandler struct {
	exportService service.ExportServiceInterface
}

func NewExportHandler(exportService service.ExportServiceInterface) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportPedidos handles GET /api/exportar/pedidos with optional
// fecha_inicio, fecha_fin and mesa_id query filters.
func (h *ExportHandler) ExportPedidos(c *gin.Context) {
	filtro := entity.ExportFilter{
		FechaInicio: c.Query("fecha_inicio"),
		FechaFin:    c.Query("fecha_fin"),
	}
	if raw := c.Query("mesa_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "ID de mesa no válido.")
			return
		}
		id := uint(parsed)
		filtro.MesaID = &id
	}

	data, filename, err := h.exportService.ExportPedidosCSV(c.Request.Context(), filtro)
	if err != nil {
		if errors.Is(err, service.ErrSinDatos) {
			respondError(c, http.StatusNotFound, "No hay datos para exportar con los filtros seleccionados.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al generar el reporte.")
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "text/csv", data)
}
