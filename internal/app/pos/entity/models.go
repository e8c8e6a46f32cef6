package entity

import "time"

// FechaFormato is the timestamp layout stored in pedidos.fecha.
// It is kept as TEXT so SQLite date functions and the wire format
// stay identical to what existing databases and clients expect.
const FechaFormato = "2006-01-02 15:04:05"

// EstadoPedido is the lifecycle status of a pedido.
type EstadoPedido string

const (
	EstadoPendiente     EstadoPedido = "PENDIENTE"
	EstadoEnPreparacion EstadoPedido = "EN PREPARACION"
	EstadoCompletado    EstadoPedido = "COMPLETADO"
	EstadoCancelado     EstadoPedido = "CANCELADO"
)

// Categoria groups articulos for menu organization and reporting.
type Categoria struct {
	ID     uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre string `json:"nombre" gorm:"uniqueIndex;not null"`
}

func (Categoria) TableName() string { return "categorias" }

// Articulo is a sellable menu product.
type Articulo struct {
	ID          uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre      string  `json:"nombre" gorm:"uniqueIndex;not null"`
	Precio      float64 `json:"precio" gorm:"not null"`
	Stock       int     `json:"stock" gorm:"not null;default:0"`
	CategoriaID uint    `json:"categoria_id" gorm:"column:categoria_id"`
}

func (Articulo) TableName() string { return "articulos" }

// ArticuloConCategoria is one row of the articulo listing joined with
// its categoria name. Kept flat so raw-SQL scanning maps by column.
type ArticuloConCategoria struct {
	ID              uint    `json:"id"`
	Nombre          string  `json:"nombre"`
	Precio          float64 `json:"precio"`
	Stock           int     `json:"stock"`
	CategoriaID     uint    `json:"categoria_id" gorm:"column:categoria_id"`
	CategoriaNombre string  `json:"categoria_nombre" gorm:"column:categoria_nombre"`
}

// Mesa is an ordering target: a physical table or a delivery channel.
// The table keeps its legacy "proveedores" name for compatibility with
// databases created by earlier versions.
type Mesa struct {
	ID          uint   `json:"id" gorm:"primaryKey;autoIncrement"`
	Nombre      string `json:"nombre" gorm:"uniqueIndex;not null"`
	Descripcion string `json:"descripcion"`
}

func (Mesa) TableName() string { return "proveedores" }

// Pedido is a customer transaction. Total is accepted as provided by
// the caller and never recomputed from the items; the statistics
// queries treat it as authoritative.
type Pedido struct {
	ID     uint         `json:"id" gorm:"primaryKey;autoIncrement"`
	Fecha  string       `json:"fecha" gorm:"not null"`
	MesaID uint         `json:"proveedor_id" gorm:"column:proveedor_id"`
	Total  float64      `json:"total" gorm:"not null"`
	Estado EstadoPedido `json:"estado" gorm:"not null;default:PENDIENTE"`
}

func (Pedido) TableName() string { return "pedidos" }

// PedidoItem is one line of a pedido. Nombre and Precio are snapshots
// taken at order time and must never be resynced with later articulo
// edits; ArticuloID is nullable because articulos may be deleted from
// the catalog after being sold.
type PedidoItem struct {
	ID         uint    `json:"id" gorm:"primaryKey;autoIncrement"`
	PedidoID   uint    `json:"id_pedido" gorm:"column:id_pedido;not null;index"`
	ArticuloID *uint   `json:"articulo_id" gorm:"column:articulo_id"`
	Nombre     string  `json:"nombre" gorm:"not null"`
	Cantidad   int     `json:"cantidad" gorm:"not null;check:cantidad > 0"`
	Precio     float64 `json:"precio" gorm:"not null"`
}

func (PedidoItem) TableName() string { return "pedido_items" }

// PedidoResumen is one row of the pedidos listing joined with the mesa name.
type PedidoResumen struct {
	ID         uint         `json:"id"`
	Fecha      string       `json:"fecha"`
	MesaNombre string       `json:"mesa_nombre" gorm:"column:mesa_nombre"`
	Total      float64      `json:"total"`
	Estado     EstadoPedido `json:"estado"`
}

// PedidoDetalle is a pedido with its mesa name and ordered items.
// MesaNombre falls back to "Desconocida" when the mesa was deleted.
type PedidoDetalle struct {
	Pedido
	MesaNombre string       `json:"mesa_nombre"`
	Items      []PedidoItem `json:"items"`
}

// PedidoEvent is the lifecycle event published to the kitchen-display topic.
type PedidoEvent struct {
	EventType  string       `json:"event_type"` // PEDIDO_CREATED, PEDIDO_UPDATED, PEDIDO_STATUS_CHANGED, PEDIDO_DELETED
	PedidoID   uint         `json:"pedido_id"`
	MesaID     uint         `json:"mesa_id"`
	Total      float64      `json:"total"`
	Estado     EstadoPedido `json:"estado"`
	ItemsCount int          `json:"items_count"`
	Timestamp  time.Time    `json:"timestamp"`
}

// VentaDiaria is the total sold on one calendar day.
type VentaDiaria struct {
	Dia         string  `json:"dia" gorm:"column:dia"`
	TotalVentas float64 `json:"total_ventas" gorm:"column:total_ventas"`
}

// VentaMensual is the total sold in one calendar month (YYYY-MM).
type VentaMensual struct {
	Mes         string  `json:"mes" gorm:"column:mes"`
	TotalVentas float64 `json:"total_ventas" gorm:"column:total_ventas"`
}

// ProductoRanking aggregates quantity and revenue per product name ever sold.
type ProductoRanking struct {
	Producto        string  `json:"producto" gorm:"column:producto"`
	CantidadVendida int64   `json:"cantidad_vendida" gorm:"column:cantidad_vendida"`
	IngresosTotales float64 `json:"ingresos_totales" gorm:"column:ingresos_totales"`
}

// VentaCategoria is revenue per categoria, restricted to items whose
// articulo still exists and still references that categoria.
type VentaCategoria struct {
	Categoria    string  `json:"categoria" gorm:"column:categoria"`
	TotalVendido float64 `json:"total_vendido" gorm:"column:total_vendido"`
}

// ComparativaMes compares the current calendar month against the previous one.
type ComparativaMes struct {
	MesActual   float64 `json:"mesActual"`
	MesAnterior float64 `json:"mesAnterior"`
}

// Estadisticas is the consolidated reporting payload.
type Estadisticas struct {
	VentasDiarias      []VentaDiaria     `json:"ventasDiarias"`
	VentasMensuales    []VentaMensual    `json:"ventasMensuales"`
	TopProductos       []ProductoRanking `json:"topProductos"`
	MenosVendidos      []ProductoRanking `json:"menosVendidos"`
	VentasPorCategoria []VentaCategoria  `json:"ventasPorCategoria"`
	ComparativaMes     ComparativaMes    `json:"comparativaMes"`
}

// FilaExportPedido is one flattened (pedido, item) row of the CSV export.
type FilaExportPedido struct {
	IDPedido       uint    `gorm:"column:id_pedido"`
	Fecha          string  `gorm:"column:fecha"`
	MesaAsignada   string  `gorm:"column:mesa_asignada"`
	PlatoProducto  string  `gorm:"column:plato_producto"`
	Cantidad       int     `gorm:"column:cantidad"`
	PrecioUnitario float64 `gorm:"column:precio_unitario"`
	SubtotalItem   float64 `gorm:"column:subtotal_item"`
	TotalPedido    float64 `gorm:"column:total_pedido"`
	Estado         string  `gorm:"column:estado"`
}

// ExportFilter restricts the CSV export; all filters are optional and conjunctive.
type ExportFilter struct {
	FechaInicio string // YYYY-MM-DD, inclusive
	FechaFin    string // YYYY-MM-DD, inclusive
	MesaID      *uint
}
