package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/service"
)

// PedidoHandler serves the order endpoints.
type PedidoHandler struct {
	pedidoService service.PedidoServiceInterface
	validator     *validator.Validate
}

func NewPedidoHandler(pedidoService service.PedidoServiceInterface) *PedidoHandler {
	return &PedidoHandler{
		pedidoService: pedidoService,
		validator:     validator.New(),
	}
}

// GuardarPedido handles POST /api/pedidos. The same endpoint creates a
// new pedido or fully replaces an existing one when pedido_id is set.
func (h *PedidoHandler) GuardarPedido(c *gin.Context) {
	var req entity.GuardarPedidoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Faltan datos obligatorios para el pedido.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Faltan datos obligatorios para el pedido.")
		return
	}

	pedidoID, actualizado, err := h.pedidoService.GuardarPedido(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrPedidoMesaNotFound) {
			respondError(c, http.StatusBadRequest, "La mesa especificada no existe.")
			return
		}
		if errors.Is(err, service.ErrPedidoNotFound) {
			respondError(c, http.StatusNotFound, "Pedido no encontrado.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error interno del servidor al procesar el pedido.")
		return
	}

	message := "Pedido guardado correctamente."
	if actualizado {
		message = "Pedido actualizado correctamente."
	}

	c.JSON(http.StatusOK, entity.PedidoGuardadoResponse{
		Success:  true,
		Message:  message,
		PedidoID: pedidoID,
	})
}

// GetPedidos handles GET /api/pedidos
func (h *PedidoHandler) GetPedidos(c *gin.Context) {
	pedidos, err := h.pedidoService.GetPedidos(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error al obtener los pedidos.")
		return
	}
	if pedidos == nil {
		pedidos = []entity.PedidoResumen{}
	}
	c.JSON(http.StatusOK, pedidos)
}

// GetPedidoDetalle handles GET /api/pedidos/:id
func (h *PedidoHandler) GetPedidoDetalle(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de pedido no válido.")
		return
	}

	detalle, err := h.pedidoService.GetPedidoDetalle(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			respondError(c, http.StatusNotFound, "Pedido no encontrado.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al obtener el pedido.")
		return
	}

	c.JSON(http.StatusOK, entity.PedidoDetalleResponse{
		Success: true,
		Pedido:  detalle,
	})
}

// UpdateEstado handles PATCH /api/pedidos/:id/estado
func (h *PedidoHandler) UpdateEstado(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de pedido no válido.")
		return
	}

	var req entity.UpdateEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Estado no válido.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Estado no válido.")
		return
	}

	if err := h.pedidoService.UpdateEstado(c.Request.Context(), id, req.Estado); err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			respondError(c, http.StatusNotFound, "Pedido no encontrado.")
			return
		}
		if errors.Is(err, service.ErrEstadoTransicion) {
			respondError(c, http.StatusBadRequest, "Transición de estado no válida.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al actualizar el estado del pedido.")
		return
	}

	respondSuccess(c, "Estado actualizado correctamente.")
}

// DeletePedido handles DELETE /api/pedidos/:id
func (h *PedidoHandler) DeletePedido(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de pedido no válido.")
		return
	}

	if err := h.pedidoService.DeletePedido(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrPedidoNotFound) {
			respondError(c, http.StatusNotFound, "Pedido no encontrado.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al eliminar el pedido.")
		return
	}

	respondSuccess(c, "Pedido eliminado correctamente.")
}
