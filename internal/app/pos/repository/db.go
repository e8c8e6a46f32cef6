package repository

import (
	"fmt"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"rostipos/internal/app/pos/entity"
)

// Open opens the SQLite database at the given path. TranslateError
// maps driver constraint violations onto gorm.ErrDuplicatedKey so the
// repositories can detect name collisions uniformly.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database %s: %w", path, err)
	}
	return db, nil
}

// Migrate creates the five tables if they do not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&entity.Categoria{},
		&entity.Articulo{},
		&entity.Mesa{},
		&entity.Pedido{},
		&entity.PedidoItem{},
	); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// InitDatabase runs the schema migration and seeds the reference data.
// It is idempotent: each table is seeded only when empty.
func InitDatabase(db *gorm.DB) error {
	if err := Migrate(db); err != nil {
		return err
	}
	return Seed(db)
}
