package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"rostipos/internal/app/pos/entity"
)

type MockCategoriaRepository struct {
	mock.Mock
}

func (m *MockCategoriaRepository) Create(ctx context.Context, categoria *entity.Categoria) error {
	args := m.Called(ctx, categoria)
	return args.Error(0)
}

func (m *MockCategoriaRepository) GetByID(ctx context.Context, id uint) (*entity.Categoria, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) GetAll(ctx context.Context) ([]entity.Categoria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Categoria), args.Error(1)
}

func (m *MockCategoriaRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockArticuloRepository struct {
	mock.Mock
}

func (m *MockArticuloRepository) Create(ctx context.Context, articulo *entity.Articulo) error {
	args := m.Called(ctx, articulo)
	return args.Error(0)
}

func (m *MockArticuloRepository) GetAllWithCategoria(ctx context.Context, categoriaID *uint) ([]entity.ArticuloConCategoria, error) {
	args := m.Called(ctx, categoriaID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ArticuloConCategoria), args.Error(1)
}

func (m *MockArticuloRepository) Update(ctx context.Context, articulo *entity.Articulo) error {
	args := m.Called(ctx, articulo)
	return args.Error(0)
}

func (m *MockArticuloRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockMesaRepository struct {
	mock.Mock
}

func (m *MockMesaRepository) Create(ctx context.Context, mesa *entity.Mesa) error {
	args := m.Called(ctx, mesa)
	return args.Error(0)
}

func (m *MockMesaRepository) GetByID(ctx context.Context, id uint) (*entity.Mesa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Mesa), args.Error(1)
}

func (m *MockMesaRepository) GetAll(ctx context.Context) ([]entity.Mesa, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Mesa), args.Error(1)
}

func (m *MockMesaRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockPedidoRepository struct {
	mock.Mock
}

func (m *MockPedidoRepository) Save(ctx context.Context, pedido *entity.Pedido, items []entity.PedidoItem) error {
	args := m.Called(ctx, pedido, items)
	return args.Error(0)
}

func (m *MockPedidoRepository) GetAll(ctx context.Context) ([]entity.PedidoResumen, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.PedidoResumen), args.Error(1)
}

func (m *MockPedidoRepository) GetByID(ctx context.Context, id uint) (*entity.Pedido, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Pedido), args.Error(1)
}

func (m *MockPedidoRepository) GetDetalle(ctx context.Context, id uint) (*entity.PedidoDetalle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.PedidoDetalle), args.Error(1)
}

func (m *MockPedidoRepository) UpdateEstado(ctx context.Context, id uint, estado entity.EstadoPedido) error {
	args := m.Called(ctx, id, estado)
	return args.Error(0)
}

func (m *MockPedidoRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEstadisticasRepository struct {
	mock.Mock
}

func (m *MockEstadisticasRepository) VentasDiarias(ctx context.Context, desde string) ([]entity.VentaDiaria, error) {
	args := m.Called(ctx, desde)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VentaDiaria), args.Error(1)
}

func (m *MockEstadisticasRepository) VentasMensuales(ctx context.Context, limit int) ([]entity.VentaMensual, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VentaMensual), args.Error(1)
}

func (m *MockEstadisticasRepository) RankingProductos(ctx context.Context) ([]entity.ProductoRanking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.ProductoRanking), args.Error(1)
}

func (m *MockEstadisticasRepository) VentasPorCategoria(ctx context.Context) ([]entity.VentaCategoria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.VentaCategoria), args.Error(1)
}

func (m *MockEstadisticasRepository) TotalDelMes(ctx context.Context, mes string) (float64, error) {
	args := m.Called(ctx, mes)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockEstadisticasRepository) TotalDelDia(ctx context.Context, dia string) (float64, int64, error) {
	args := m.Called(ctx, dia)
	return args.Get(0).(float64), args.Get(1).(int64), args.Error(2)
}

type MockReporteRepository struct {
	mock.Mock
}

func (m *MockReporteRepository) FilasExportPedidos(ctx context.Context, filtro entity.ExportFilter) ([]entity.FilaExportPedido, error) {
	args := m.Called(ctx, filtro)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.FilaExportPedido), args.Error(1)
}

type MockRedisCache struct {
	mock.Mock
}

func (m *MockRedisCache) SetCategorias(ctx context.Context, categorias []entity.Categoria, ttl time.Duration) error {
	args := m.Called(ctx, categorias, ttl)
	return args.Error(0)
}

func (m *MockRedisCache) GetCategorias(ctx context.Context) ([]entity.Categoria, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]entity.Categoria), args.Error(1)
}

func (m *MockRedisCache) DeleteCategorias(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedisCache) SetEstadisticas(ctx context.Context, stats *entity.Estadisticas, ttl time.Duration) error {
	args := m.Called(ctx, stats, ttl)
	return args.Error(0)
}

func (m *MockRedisCache) GetEstadisticas(ctx context.Context) (*entity.Estadisticas, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Estadisticas), args.Error(1)
}

func (m *MockRedisCache) DeleteEstadisticas(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRedisCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

type MockMessagePublisher struct {
	mock.Mock
}

func (m *MockMessagePublisher) PublishMessage(ctx context.Context, key string, value []byte) error {
	args := m.Called(ctx, key, value)
	return args.Error(0)
}

func (m *MockMessagePublisher) Close() error {
	args := m.Called()
	return args.Error(0)
}
