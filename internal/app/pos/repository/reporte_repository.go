package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/metrics"
)

type reporteRepository struct {
	db *gorm.DB
}

// NewReporteRepository creates the export repository.
func NewReporteRepository(db *gorm.DB) ReporteRepository {
	return &reporteRepository{db: db}
}

// FilasExportPedidos flattens pedidos with their mesa and items into
// one row per (pedido, item). Filters are optional and conjunctive:
// inclusive date bounds on the pedido's calendar date plus an exact
// mesa match. Rows come out newest pedido first, then by pedido id,
// then in item submission order.
func (r *reporteRepository) FilasExportPedidos(ctx context.Context, filtro entity.ExportFilter) ([]entity.FilaExportPedido, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	where := []string{"1=1"}
	args := []interface{}{}

	if filtro.FechaInicio != "" {
		where = append(where, "date(p.fecha) >= ?")
		args = append(args, filtro.FechaInicio)
	}
	if filtro.FechaFin != "" {
		where = append(where, "date(p.fecha) <= ?")
		args = append(args, filtro.FechaFin)
	}
	if filtro.MesaID != nil {
		where = append(where, "p.proveedor_id = ?")
		args = append(args, *filtro.MesaID)
	}

	query := fmt.Sprintf(`
		SELECT p.id AS id_pedido,
		       p.fecha AS fecha,
		       pr.nombre AS mesa_asignada,
		       pi.nombre AS plato_producto,
		       pi.cantidad AS cantidad,
		       pi.precio AS precio_unitario,
		       (pi.cantidad * pi.precio) AS subtotal_item,
		       p.total AS total_pedido,
		       p.estado AS estado
		FROM pedidos p
		JOIN proveedores pr ON p.proveedor_id = pr.id
		JOIN pedido_items pi ON p.id = pi.id_pedido
		WHERE %s
		ORDER BY p.fecha DESC, p.id, pi.id
	`, strings.Join(where, " AND "))

	var filas []entity.FilaExportPedido
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&filas).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get export rows: %w", err)
	}
	return filas, nil
}
