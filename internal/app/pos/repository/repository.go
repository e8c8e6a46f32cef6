package repository

import (
	"context"
	"errors"
	"fmt"

	"rostipos/internal/app/pos/entity"
)

var (
	// Standard repository errors, handled in the service layer.
	ErrCategoriaNotFound      = errors.New("categoria not found")
	ErrCategoriaAlreadyExists = errors.New("categoria with this name already exists")
	ErrArticuloNotFound       = errors.New("articulo not found")
	ErrArticuloAlreadyExists  = errors.New("articulo with this name already exists")
	ErrMesaNotFound           = errors.New("mesa not found")
	ErrMesaAlreadyExists      = errors.New("mesa with this name already exists")
	ErrPedidoNotFound         = errors.New("pedido not found")
)

// CategoriaConArticulosError blocks deletion of a categoria that still
// has articulos; Articulos carries the dependent count for the user message.
type CategoriaConArticulosError struct {
	Articulos int64
}

func (e *CategoriaConArticulosError) Error() string {
	return fmt.Sprintf("categoria still has %d articulos", e.Articulos)
}

type CategoriaRepository interface {
	Create(ctx context.Context, categoria *entity.Categoria) error
	GetByID(ctx context.Context, id uint) (*entity.Categoria, error)
	GetAll(ctx context.Context) ([]entity.Categoria, error)
	Delete(ctx context.Context, id uint) error
}

type ArticuloRepository interface {
	Create(ctx context.Context, articulo *entity.Articulo) error
	GetAllWithCategoria(ctx context.Context, categoriaID *uint) ([]entity.ArticuloConCategoria, error)
	Update(ctx context.Context, articulo *entity.Articulo) error
	Delete(ctx context.Context, id uint) error
}

type MesaRepository interface {
	Create(ctx context.Context, mesa *entity.Mesa) error
	GetByID(ctx context.Context, id uint) (*entity.Mesa, error)
	GetAll(ctx context.Context) ([]entity.Mesa, error)
	Delete(ctx context.Context, id uint) error
}

type PedidoRepository interface {
	// Save creates the pedido when pedido.ID is zero, or atomically
	// replaces the existing pedido's header and items otherwise. The
	// items are inserted in slice order in both branches.
	Save(ctx context.Context, pedido *entity.Pedido, items []entity.PedidoItem) error
	GetAll(ctx context.Context) ([]entity.PedidoResumen, error)
	GetByID(ctx context.Context, id uint) (*entity.Pedido, error)
	GetDetalle(ctx context.Context, id uint) (*entity.PedidoDetalle, error)
	UpdateEstado(ctx context.Context, id uint, estado entity.EstadoPedido) error
	Delete(ctx context.Context, id uint) error
}

type EstadisticasRepository interface {
	VentasDiarias(ctx context.Context, desde string) ([]entity.VentaDiaria, error)
	VentasMensuales(ctx context.Context, limit int) ([]entity.VentaMensual, error)
	RankingProductos(ctx context.Context) ([]entity.ProductoRanking, error)
	VentasPorCategoria(ctx context.Context) ([]entity.VentaCategoria, error)
	TotalDelMes(ctx context.Context, mes string) (float64, error)
	TotalDelDia(ctx context.Context, dia string) (float64, int64, error)
}

type ReporteRepository interface {
	FilasExportPedidos(ctx context.Context, filtro entity.ExportFilter) ([]entity.FilaExportPedido, error)
}
