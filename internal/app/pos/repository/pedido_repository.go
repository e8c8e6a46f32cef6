package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/metrics"
)

type pedidoRepository struct {
	db *gorm.DB
}

// NewPedidoRepository creates the pedido repository.
func NewPedidoRepository(db *gorm.DB) PedidoRepository {
	return &pedidoRepository{db: db}
}

// Save writes the pedido and its items in one transaction. With a zero
// ID it inserts a new pedido; otherwise it deletes the existing items,
// updates the header in place and reinserts the submitted items. Any
// failure rolls back the whole sequence so a partial pedido is never
// observable.
func (r *pedidoRepository) Save(ctx context.Context, pedido *entity.Pedido, items []entity.PedidoItem) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, "pedidos")
	defer timer.ObserveDuration()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if pedido.ID != 0 {
			if err := tx.Where("id_pedido = ?", pedido.ID).Delete(&entity.PedidoItem{}).Error; err != nil {
				return fmt.Errorf("failed to delete previous items: %w", err)
			}

			result := tx.Model(&entity.Pedido{}).Where("id = ?", pedido.ID).Updates(map[string]interface{}{
				"proveedor_id": pedido.MesaID,
				"total":        pedido.Total,
				"fecha":        pedido.Fecha,
			})
			if result.Error != nil {
				return fmt.Errorf("failed to update pedido: %w", result.Error)
			}
			if result.RowsAffected == 0 {
				return ErrPedidoNotFound
			}
		} else {
			if err := tx.Create(pedido).Error; err != nil {
				return fmt.Errorf("failed to create pedido: %w", err)
			}
		}

		// Insert one row per item, preserving submission order through
		// the autoincrement ids.
		for i := range items {
			items[i].ID = 0
			items[i].PedidoID = pedido.ID
			if err := tx.Create(&items[i]).Error; err != nil {
				return fmt.Errorf("failed to create pedido item: %w", err)
			}
		}
		return nil
	})
}

// GetAll lists pedidos joined with their mesa name, newest first.
func (r *pedidoRepository) GetAll(ctx context.Context) ([]entity.PedidoResumen, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	var pedidos []entity.PedidoResumen
	err := r.db.WithContext(ctx).Raw(`
		SELECT p.id, p.fecha, pr.nombre AS mesa_nombre, p.total, p.estado
		FROM pedidos p
		JOIN proveedores pr ON p.proveedor_id = pr.id
		ORDER BY p.fecha DESC
	`).Scan(&pedidos).Error
	if err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get pedidos: %w", err)
	}
	return pedidos, nil
}

func (r *pedidoRepository) GetByID(ctx context.Context, id uint) (*entity.Pedido, error) {
	var pedido entity.Pedido
	err := r.db.WithContext(ctx).First(&pedido, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPedidoNotFound
		}
		return nil, fmt.Errorf("failed to get pedido by id: %w", err)
	}
	return &pedido, nil
}

// GetDetalle returns the pedido with its mesa name and items in
// submission order. A deleted mesa yields the "Desconocida" sentinel.
func (r *pedidoRepository) GetDetalle(ctx context.Context, id uint) (*entity.PedidoDetalle, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "pedidos")
	defer timer.ObserveDuration()

	pedido, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var items []entity.PedidoItem
	if err := r.db.WithContext(ctx).
		Where("id_pedido = ?", id).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to get pedido items: %w", err)
	}

	mesaNombre := "Desconocida"
	var mesa entity.Mesa
	err = r.db.WithContext(ctx).First(&mesa, "id = ?", pedido.MesaID).Error
	if err == nil {
		mesaNombre = mesa.Nombre
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to get mesa for pedido: %w", err)
	}

	if items == nil {
		items = []entity.PedidoItem{}
	}
	return &entity.PedidoDetalle{
		Pedido:     *pedido,
		MesaNombre: mesaNombre,
		Items:      items,
	}, nil
}

func (r *pedidoRepository) UpdateEstado(ctx context.Context, id uint, estado entity.EstadoPedido) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpUpdate, "pedidos")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Model(&entity.Pedido{}).
		Where("id = ?", id).
		Update("estado", estado)
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpUpdate)
		return fmt.Errorf("failed to update pedido estado: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrPedidoNotFound
	}
	return nil
}

// Delete removes the items and then the pedido in one transaction.
// Not-found is detected from the pedido delete's row count.
func (r *pedidoRepository) Delete(ctx context.Context, id uint) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "pedidos")
	defer timer.ObserveDuration()

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id_pedido = ?", id).Delete(&entity.PedidoItem{}).Error; err != nil {
			return fmt.Errorf("failed to delete pedido items: %w", err)
		}

		result := tx.Delete(&entity.Pedido{}, "id = ?", id)
		if result.Error != nil {
			return fmt.Errorf("failed to delete pedido: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrPedidoNotFound
		}
		return nil
	})
}
