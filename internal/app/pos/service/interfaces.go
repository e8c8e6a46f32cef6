package service

import (
	"context"

	"rostipos/internal/app/pos/entity"
)

type CatalogoServiceInterface interface {
	CreateCategoria(ctx context.Context, req *entity.CreateCategoriaRequest) (*entity.Categoria, error)
	GetCategorias(ctx context.Context) ([]entity.Categoria, error)
	DeleteCategoria(ctx context.Context, id uint) error

	CreateArticulo(ctx context.Context, req *entity.ArticuloRequest) (*entity.Articulo, error)
	GetArticulos(ctx context.Context, categoriaID *uint) ([]entity.ArticuloConCategoria, error)
	UpdateArticulo(ctx context.Context, id uint, req *entity.ArticuloRequest) error
	DeleteArticulo(ctx context.Context, id uint) error

	CreateMesa(ctx context.Context, req *entity.CreateMesaRequest) (*entity.Mesa, error)
	GetMesas(ctx context.Context) ([]entity.Mesa, error)
	DeleteMesa(ctx context.Context, id uint) error
}

type PedidoServiceInterface interface {
	GuardarPedido(ctx context.Context, req *entity.GuardarPedidoRequest) (uint, bool, error)
	GetPedidos(ctx context.Context) ([]entity.PedidoResumen, error)
	GetPedidoDetalle(ctx context.Context, id uint) (*entity.PedidoDetalle, error)
	UpdateEstado(ctx context.Context, id uint, estado entity.EstadoPedido) error
	DeletePedido(ctx context.Context, id uint) error
}

type EstadisticasServiceInterface interface {
	GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error)
	ResumenDelDia(ctx context.Context) (float64, int64, error)
}

type ExportServiceInterface interface {
	ExportPedidosCSV(ctx context.Context, filtro entity.ExportFilter) ([]byte, string, error)
}
