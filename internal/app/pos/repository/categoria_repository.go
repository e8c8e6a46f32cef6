package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/metrics"
)

const serviceName = "pos"

type categoriaRepository struct {
	db *gorm.DB
}

// NewCategoriaRepository creates the categoria repository.
func NewCategoriaRepository(db *gorm.DB) CategoriaRepository {
	return &categoriaRepository{db: db}
}

// Create inserts a categoria. Name uniqueness is enforced by the
// UNIQUE index and reported as ErrCategoriaAlreadyExists.
func (r *categoriaRepository) Create(ctx context.Context, categoria *entity.Categoria) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, "categorias")
	defer timer.ObserveDuration()

	if err := r.db.WithContext(ctx).Create(categoria).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrCategoriaAlreadyExists
		}
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to create categoria: %w", err)
	}
	return nil
}

func (r *categoriaRepository) GetByID(ctx context.Context, id uint) (*entity.Categoria, error) {
	var categoria entity.Categoria
	err := r.db.WithContext(ctx).First(&categoria, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoriaNotFound
		}
		return nil, fmt.Errorf("failed to get categoria by id: %w", err)
	}
	return &categoria, nil
}

// GetAll returns every categoria in insertion order.
func (r *categoriaRepository) GetAll(ctx context.Context) ([]entity.Categoria, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "categorias")
	defer timer.ObserveDuration()

	var categorias []entity.Categoria
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&categorias).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get categorias: %w", err)
	}
	return categorias, nil
}

// Delete removes a categoria only when no articulo references it;
// otherwise it fails with the dependent count so the caller can report it.
func (r *categoriaRepository) Delete(ctx context.Context, id uint) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "categorias")
	defer timer.ObserveDuration()

	var dependientes int64
	if err := r.db.WithContext(ctx).Model(&entity.Articulo{}).
		Where("categoria_id = ?", id).
		Count(&dependientes).Error; err != nil {
		return fmt.Errorf("failed to count articulos in categoria: %w", err)
	}
	if dependientes > 0 {
		return &CategoriaConArticulosError{Articulos: dependientes}
	}

	result := r.db.WithContext(ctx).Delete(&entity.Categoria{}, "id = ?", id)
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return fmt.Errorf("failed to delete categoria: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrCategoriaNotFound
	}
	return nil
}
