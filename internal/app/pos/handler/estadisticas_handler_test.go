package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"rostipos/internal/app/pos/entity"
)

func estadisticasRouter(svc *MockEstadisticasService) *gin.Engine {
	h := NewEstadisticasHandler(svc)
	return testRouter(func(api *gin.RouterGroup) {
		api.GET("/estadisticas", h.GetEstadisticas)
	})
}

func TestEstadisticasHandler_GetEstadisticas(t *testing.T) {
	// Arrange
	svc := new(MockEstadisticasService)
	svc.On("GetEstadisticas", mock.Anything).Return(&entity.Estadisticas{
		VentasDiarias: []entity.VentaDiaria{
			{Dia: "2026-08-30", TotalVentas: 350.0},
		},
		VentasMensuales: []entity.VentaMensual{
			{Mes: "2026-08", TotalVentas: 5200.0},
		},
		TopProductos: []entity.ProductoRanking{
			{Producto: "Pollo entero", CantidadVendida: 40, IngresosTotales: 1800.0},
		},
		MenosVendidos: []entity.ProductoRanking{
			{Producto: "Ensalada", CantidadVendida: 2, IngresosTotales: 16.0},
		},
		VentasPorCategoria: []entity.VentaCategoria{
			{Categoria: "🍗 Pollos", TotalVendido: 2500.0},
		},
		ComparativaMes: entity.ComparativaMes{MesActual: 5200.0, MesAnterior: 4800.0},
	}, nil)
	router := estadisticasRouter(svc)

	// Act
	rec := performRequest(router, http.MethodGet, "/api/estadisticas", "")

	// Assert
	require.Equal(t, http.StatusOK, rec.Code)

	var resp entity.EstadisticasResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Data)
	assert.Equal(t, "Pollo entero", resp.Data.TopProductos[0].Producto)
	assert.InDelta(t, 4800.0, resp.Data.ComparativaMes.MesAnterior, 0.001)
	svc.AssertExpectations(t)
}

func TestEstadisticasHandler_GetEstadisticas_Error(t *testing.T) {
	// Arrange
	svc := new(MockEstadisticasService)
	svc.On("GetEstadisticas", mock.Anything).Return(nil, errors.New("db down"))
	router := estadisticasRouter(svc)

	// Act
	rec := performRequest(router, http.MethodGet, "/api/estadisticas", "")

	// Assert
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	var resp entity.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.Equal(t, "Error al calcular las estadísticas.", resp.Message)
}
