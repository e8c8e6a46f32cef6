package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/metrics"
)

type estadisticasRepository struct {
	db *gorm.DB
}

// NewEstadisticasRepository creates the read-only aggregation repository.
func NewEstadisticasRepository(db *gorm.DB) EstadisticasRepository {
	return &estadisticasRepository{db: db}
}

// VentasDiarias sums pedido totals per calendar day from the given
// date (YYYY-MM-DD, inclusive), ascending. Days without pedidos are
// simply absent.
func (r *estadisticasRepository) VentasDiarias(ctx context.Context, desde string) ([]entity.VentaDiaria, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	var ventas []entity.VentaDiaria
	err := r.db.WithContext(ctx).Raw(`
		SELECT strftime('%Y-%m-%d', fecha) AS dia,
		       SUM(total) AS total_ventas
		FROM pedidos
		WHERE fecha >= ?
		GROUP BY dia
		ORDER BY dia
	`, desde).Scan(&ventas).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get ventas diarias: %w", err)
	}
	return ventas, nil
}

// VentasMensuales sums pedido totals per calendar month, most recent
// months first, capped at limit.
func (r *estadisticasRepository) VentasMensuales(ctx context.Context, limit int) ([]entity.VentaMensual, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	var ventas []entity.VentaMensual
	err := r.db.WithContext(ctx).Raw(`
		SELECT strftime('%Y-%m', fecha) AS mes,
		       SUM(total) AS total_ventas
		FROM pedidos
		GROUP BY mes
		ORDER BY mes DESC
		LIMIT ?
	`, limit).Scan(&ventas).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get ventas mensuales: %w", err)
	}
	return ventas, nil
}

// RankingProductos aggregates quantity and revenue per distinct item
// name ever sold, descending by quantity.
func (r *estadisticasRepository) RankingProductos(ctx context.Context) ([]entity.ProductoRanking, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedido_items")
	defer timer.ObserveDuration()

	var ranking []entity.ProductoRanking
	err := r.db.WithContext(ctx).Raw(`
		SELECT pi.nombre AS producto,
		       SUM(pi.cantidad) AS cantidad_vendida,
		       SUM(pi.cantidad * pi.precio) AS ingresos_totales
		FROM pedido_items pi
		GROUP BY pi.nombre
		ORDER BY cantidad_vendida DESC
	`).Scan(&ranking).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get ranking de productos: %w", err)
	}
	return ranking, nil
}

// VentasPorCategoria sums revenue per categoria through the
// pedido_items -> articulos -> categorias join chain. Items whose
// articulo was deleted (or never referenced one) drop out of this
// breakdown by construction.
func (r *estadisticasRepository) VentasPorCategoria(ctx context.Context) ([]entity.VentaCategoria, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedido_items")
	defer timer.ObserveDuration()

	var ventas []entity.VentaCategoria
	err := r.db.WithContext(ctx).Raw(`
		SELECT c.nombre AS categoria,
		       SUM(pi.cantidad * pi.precio) AS total_vendido
		FROM pedido_items pi
		JOIN articulos a ON pi.articulo_id = a.id
		JOIN categorias c ON a.categoria_id = c.id
		GROUP BY c.nombre
		ORDER BY total_vendido DESC
	`).Scan(&ventas).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get ventas por categoria: %w", err)
	}
	return ventas, nil
}

// TotalDelMes sums totals for one YYYY-MM month, 0 when there are none.
func (r *estadisticasRepository) TotalDelMes(ctx context.Context, mes string) (float64, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	var total float64
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0)
		FROM pedidos
		WHERE strftime('%Y-%m', fecha) = ?
	`, mes).Scan(&total).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return 0, fmt.Errorf("failed to get total del mes: %w", err)
	}
	return total, nil
}

// TotalDelDia returns the summed total and the pedido count for one
// YYYY-MM-DD day. Used by the nightly report job.
func (r *estadisticasRepository) TotalDelDia(ctx context.Context, dia string) (float64, int64, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	var fila struct {
		Total float64 `gorm:"column:total"`
		Num   int64   `gorm:"column:num"`
	}
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(SUM(total), 0) AS total,
		       COUNT(*) AS num
		FROM pedidos
		WHERE strftime('%Y-%m-%d', fecha) = ?
	`, dia).Scan(&fila).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return 0, 0, fmt.Errorf("failed to get total del dia: %w", err)
	}
	return fila.Total, fila.Num, nil
}
