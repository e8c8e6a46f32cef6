package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"rostipos/internal/app/pos/entity"
)

// Service mocks used by the handler tests.

type MockCatalogoService struct {
	mock.Mock
}

func (m *MockCatalogoService) CreateCategoria(ctx context.Context, req *entity.CreateCategoriaRequest) (*entity.Categoria, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Categoria), args.Error(1)
}

func (m *MockCatalogoService) GetCategorias(ctx context.Context) ([]entity.Categoria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Categoria), args.Error(1)
}

func (m *MockCatalogoService) DeleteCategoria(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogoService) CreateArticulo(ctx context.Context, req *entity.ArticuloRequest) (*entity.Articulo, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Articulo), args.Error(1)
}

func (m *MockCatalogoService) GetArticulos(ctx context.Context, categoriaID *uint) ([]entity.ArticuloConCategoria, error) {
	args := m.Called(ctx, categoriaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ArticuloConCategoria), args.Error(1)
}

func (m *MockCatalogoService) UpdateArticulo(ctx context.Context, id uint, req *entity.ArticuloRequest) error {
	args := m.Called(ctx, id, req)
	return args.Error(0)
}

func (m *MockCatalogoService) DeleteArticulo(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCatalogoService) CreateMesa(ctx context.Context, req *entity.CreateMesaRequest) (*entity.Mesa, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mesa), args.Error(1)
}

func (m *MockCatalogoService) GetMesas(ctx context.Context) ([]entity.Mesa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Mesa), args.Error(1)
}

func (m *MockCatalogoService) DeleteMesa(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPedidoService struct {
	mock.Mock
}

func (m *MockPedidoService) GuardarPedido(ctx context.Context, req *entity.GuardarPedidoRequest) (uint, bool, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uint), args.Bool(1), args.Error(2)
}

func (m *MockPedidoService) GetPedidos(ctx context.Context) ([]entity.PedidoResumen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PedidoResumen), args.Error(1)
}

func (m *MockPedidoService) GetPedidoDetalle(ctx context.Context, id uint) (*entity.PedidoDetalle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PedidoDetalle), args.Error(1)
}

func (m *MockPedidoService) UpdateEstado(ctx context.Context, id uint, estado entity.EstadoPedido) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

func (m *MockPedidoService) DeletePedido(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEstadisticasService struct {
	mock.Mock
}

func (m *MockEstadisticasService) GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Estadisticas), args.Error(1)
}

func (m *MockEstadisticasService) ResumenDelDia(ctx context.Context) (float64, int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) ExportPedidosCSV(ctx context.Context, filtro entity.ExportFilter) ([]byte, string, error) {
	args := m.Called(ctx, filtro)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).([]byte), args.String(1), args.Error(2)
}
