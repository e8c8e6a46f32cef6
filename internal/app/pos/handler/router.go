package handler

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rostipos/pkg/logger"
	"rostipos/pkg/metrics"
)

// SetupRoutes wires every endpoint under /api plus the health and
// metrics endpoints. All routes are public: the terminal runs inside
// the restaurant network.
func SetupRoutes(
	catalogoHandler *CatalogoHandler,
	pedidoHandler *PedidoHandler,
	estadisticasHandler *EstadisticasHandler,
	exportHandler *ExportHandler,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(logger.GinLoggerMiddleware())
	router.Use(metrics.GinPrometheusMiddleware("pos"))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "pos",
		})
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := router.Group("/api")
	{
		api.GET("/categorias", catalogoHandler.GetCategorias)
		api.POST("/categorias", catalogoHandler.CreateCategoria)
		api.DELETE("/categorias/:id", catalogoHandler.DeleteCategoria)

		api.GET("/articulos", catalogoHandler.GetArticulos)
		api.POST("/articulos", catalogoHandler.CreateArticulo)
		api.PUT("/articulos/:id", catalogoHandler.UpdateArticulo)
		api.DELETE("/articulos/:id", catalogoHandler.DeleteArticulo)

		// Mesas keep the legacy /proveedores route name.
		api.GET("/proveedores", catalogoHandler.GetMesas)
		api.POST("/proveedores", catalogoHandler.CreateMesa)
		api.DELETE("/proveedores/:id", catalogoHandler.DeleteMesa)

		api.POST("/pedidos", pedidoHandler.GuardarPedido)
		api.GET("/pedidos", pedidoHandler.GetPedidos)
		api.GET("/pedidos/:id", pedidoHandler.GetPedidoDetalle)
		api.PATCH("/pedidos/:id/estado", pedidoHandler.UpdateEstado)
		api.DELETE("/pedidos/:id", pedidoHandler.DeletePedido)

		api.GET("/estadisticas", estadisticasHandler.GetEstadisticas)

		api.GET("/exportar/pedidos", exportHandler.ExportPedidos)
	}

	return router
}
