package entity

type CreateCategoriaRequest struct {
	Nombre string `json:"nombre" validate:"required,min=1,max=100"`
}

type CreateMesaRequest struct {
	Nombre      string `json:"nombre" validate:"required,min=1,max=100"`
	Descripcion string `json:"descripcion" validate:"max=500"`
}

// ArticuloRequest is used for both create and full-replace update:
// every field is required. Pointers distinguish a missing field from a
// legitimate zero (precio 0.00, stock 0).
type ArticuloRequest struct {
	Nombre      string   `json:"nombre" validate:"required,min=1,max=200"`
	Precio      *float64 `json:"precio" validate:"required,gte=0"`
	Stock       *int     `json:"stock" validate:"required,gte=0"`
	CategoriaID *uint    `json:"categoria_id" validate:"required"`
}

type PedidoItemRequest struct {
	ArticuloID *uint    `json:"id"`
	Nombre     string   `json:"nombre" validate:"required"`
	Cantidad   int      `json:"cantidad" validate:"required,gt=0"`
	Precio     *float64 `json:"precio" validate:"required,gte=0"`
}

// GuardarPedidoRequest creates a pedido, or fully replaces an existing
// one when PedidoID is set.
type GuardarPedidoRequest struct {
	MesaID   uint                `json:"mesa_id" validate:"required"`
	Items    []PedidoItemRequest `json:"items" validate:"required,min=1,dive"`
	Total    *float64            `json:"total" validate:"required,gte=0"`
	PedidoID *uint               `json:"pedido_id"`
}

type UpdateEstadoRequest struct {
	Estado EstadoPedido `json:"estado" validate:"required,oneof=PENDIENTE 'EN PREPARACION' COMPLETADO CANCELADO"`
}

// APIResponse is the envelope every mutating endpoint answers with.
type APIResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type PedidoGuardadoResponse struct {
	Success  bool   `json:"success"`
	Message  string `json:"message"`
	PedidoID uint   `json:"pedido_id"`
}

type PedidoDetalleResponse struct {
	Success bool           `json:"success"`
	Pedido  *PedidoDetalle `json:"pedido"`
}

type EstadisticasResponse struct {
	Success bool          `json:"success"`
	Data    *Estadisticas `json:"data"`
}
