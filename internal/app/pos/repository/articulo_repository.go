package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/metrics"
)

type articuloRepository struct {
	db *gorm.DB
}

// NewArticuloRepository creates the articulo repository.
func NewArticuloRepository(db *gorm.DB) ArticuloRepository {
	return &articuloRepository{db: db}
}

func (r *articuloRepository) Create(ctx context.Context, articulo *entity.Articulo) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, "articulos")
	defer timer.ObserveDuration()

	if err := r.db.WithContext(ctx).Create(articulo).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrArticuloAlreadyExists
		}
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to create articulo: %w", err)
	}
	return nil
}

// GetAllWithCategoria lists articulos joined with their categoria name,
// optionally restricted to one categoria.
func (r *articuloRepository) GetAllWithCategoria(ctx context.Context, categoriaID *uint) ([]entity.ArticuloConCategoria, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "articulos")
	defer timer.ObserveDuration()

	query := r.db.WithContext(ctx).
		Table("articulos").
		Select("articulos.id, articulos.nombre, articulos.precio, articulos.stock, articulos.categoria_id, categorias.nombre AS categoria_nombre").
		Joins("JOIN categorias ON articulos.categoria_id = categorias.id").
		Order("articulos.id ASC")

	if categoriaID != nil {
		query = query.Where("articulos.categoria_id = ?", *categoriaID)
	}

	var articulos []entity.ArticuloConCategoria
	if err := query.Scan(&articulos).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get articulos: %w", err)
	}
	return articulos, nil
}

// Update replaces every field of the articulo. Not-found is detected
// through the affected row count, never through a pre-check.
func (r *articuloRepository) Update(ctx context.Context, articulo *entity.Articulo) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpUpdate, "articulos")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Model(&entity.Articulo{}).
		Where("id = ?", articulo.ID).
		Updates(map[string]interface{}{
			"nombre":       articulo.Nombre,
			"precio":       articulo.Precio,
			"stock":        articulo.Stock,
			"categoria_id": articulo.CategoriaID,
		})

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
			return ErrArticuloAlreadyExists
		}
		metrics.RecordDbError(serviceName, metrics.DbOpUpdate)
		return fmt.Errorf("failed to update articulo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrArticuloNotFound
	}
	return nil
}

// Delete removes the articulo unconditionally. Historical pedido_items
// keep their denormalized snapshot, so no dependent-row guard applies.
func (r *articuloRepository) Delete(ctx context.Context, id uint) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "articulos")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Delete(&entity.Articulo{}, "id = ?", id)
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return fmt.Errorf("failed to delete articulo: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrArticuloNotFound
	}
	return nil
}
