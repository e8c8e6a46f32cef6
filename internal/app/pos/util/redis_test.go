package util

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostipos/internal/app/pos/entity"
)

func setupTestCache(t *testing.T) (RedisCache, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	cache, err := NewRedisCache(mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = cache.Close() })

	return cache, mr
}

func TestRedisCache_CategoriasRoundTrip(t *testing.T) {
	// Arrange
	cache, _ := setupTestCache(t)
	ctx := context.Background()
	categorias := []entity.Categoria{
		{ID: 1, Nombre: "🍗 Pollos"},
		{ID: 2, Nombre: "🍢 Anticuchos"},
	}

	// Act
	err := cache.SetCategorias(ctx, categorias, time.Hour)
	require.NoError(t, err)
	got, err := cache.GetCategorias(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, categorias, got)
}

func TestRedisCache_GetCategorias_Miss(t *testing.T) {
	// Arrange
	cache, _ := setupTestCache(t)

	// Act
	got, err := cache.GetCategorias(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_DeleteCategorias(t *testing.T) {
	// Arrange
	cache, _ := setupTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.SetCategorias(ctx, []entity.Categoria{{ID: 1, Nombre: "Postres"}}, time.Hour))

	// Act
	err := cache.DeleteCategorias(ctx)

	// Assert
	require.NoError(t, err)
	_, err = cache.GetCategorias(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_CategoriasExpire(t *testing.T) {
	// Arrange
	cache, mr := setupTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.SetCategorias(ctx, []entity.Categoria{{ID: 1, Nombre: "Postres"}}, time.Minute))

	// Act
	mr.FastForward(2 * time.Minute)

	// Assert
	_, err := cache.GetCategorias(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisCache_EstadisticasRoundTrip(t *testing.T) {
	// Arrange
	cache, _ := setupTestCache(t)
	ctx := context.Background()
	stats := &entity.Estadisticas{
		VentasDiarias:      []entity.VentaDiaria{{Dia: "2026-08-30", TotalVentas: 350.0}},
		VentasMensuales:    []entity.VentaMensual{{Mes: "2026-08", TotalVentas: 5200.0}},
		TopProductos:       []entity.ProductoRanking{{Producto: "Pollo entero", CantidadVendida: 40, IngresosTotales: 1800.0}},
		MenosVendidos:      []entity.ProductoRanking{{Producto: "Ensalada", CantidadVendida: 2, IngresosTotales: 16.0}},
		VentasPorCategoria: []entity.VentaCategoria{{Categoria: "🍗 Pollos", TotalVendido: 2500.0}},
		ComparativaMes:     entity.ComparativaMes{MesActual: 5200.0, MesAnterior: 4800.0},
	}

	// Act
	require.NoError(t, cache.SetEstadisticas(ctx, stats, 5*time.Minute))
	got, err := cache.GetEstadisticas(ctx)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, stats, got)
}

func TestRedisCache_GetEstadisticas_Miss(t *testing.T) {
	// Arrange
	cache, _ := setupTestCache(t)

	// Act
	got, err := cache.GetEstadisticas(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.Nil(t, got)
}

func TestRedisCache_DeleteEstadisticas(t *testing.T) {
	// Arrange
	cache, _ := setupTestCache(t)
	ctx := context.Background()
	require.NoError(t, cache.SetEstadisticas(ctx, &entity.Estadisticas{}, 5*time.Minute))

	// Act
	require.NoError(t, cache.DeleteEstadisticas(ctx))

	// Assert
	_, err := cache.GetEstadisticas(ctx)
	assert.ErrorIs(t, err, ErrCacheMiss)
}

func TestNewRedisCache_ConnectionRefused(t *testing.T) {
	// Arrange
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	// Act
	cache, err := NewRedisCache(addr, "", 0)

	// Assert
	assert.Error(t, err)
	assert.Nil(t, cache)
}
