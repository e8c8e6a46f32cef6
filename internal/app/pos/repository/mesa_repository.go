package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
	"rostipos/pkg/metrics"
)

type mesaRepository struct {
	db *gorm.DB
}

// NewMesaRepository creates the mesa repository.
func NewMesaRepository(db *gorm.DB) MesaRepository {
	return &mesaRepository{db: db}
}

func (r *mesaRepository) Create(ctx context.Context, mesa *entity.Mesa) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpInsert, "proveedores")
	defer timer.ObserveDuration()

	if err := r.db.WithContext(ctx).Create(mesa).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrMesaAlreadyExists
		}
		metrics.RecordDbError(serviceName, metrics.DbOpInsert)
		return fmt.Errorf("failed to create mesa: %w", err)
	}
	return nil
}

func (r *mesaRepository) GetByID(ctx context.Context, id uint) (*entity.Mesa, error) {
	var mesa entity.Mesa
	err := r.db.WithContext(ctx).First(&mesa, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMesaNotFound
		}
		return nil, fmt.Errorf("failed to get mesa by id: %w", err)
	}
	return &mesa, nil
}

func (r *mesaRepository) GetAll(ctx context.Context) ([]entity.Mesa, error) {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpSelect, "proveedores")
	defer timer.ObserveDuration()

	var mesas []entity.Mesa
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&mesas).Error; err != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpSelect)
		return nil, fmt.Errorf("failed to get mesas: %w", err)
	}
	return mesas, nil
}

// Delete removes the mesa without guarding existing pedidos; pedidos
// referencing a deleted mesa fall back to the "Desconocida" sentinel
// in the detail view.
func (r *mesaRepository) Delete(ctx context.Context, id uint) error {
	timer := metrics.NewDbTimer(serviceName, metrics.DbOpDelete, "proveedores")
	defer timer.ObserveDuration()

	result := r.db.WithContext(ctx).Delete(&entity.Mesa{}, "id = ?", id)
	if result.Error != nil {
		metrics.RecordDbError(serviceName, metrics.DbOpDelete)
		return fmt.Errorf("failed to delete mesa: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrMesaNotFound
	}
	return nil
}
