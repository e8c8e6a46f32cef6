package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rostipos/internal/app/pos/entity"
)

func TestCategoriaRepository_Create(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	categoria := &entity.Categoria{Nombre: "Bebidas"}
	err := repo.Create(ctx, categoria)

	require.NoError(t, err)
	assert.NotZero(t, categoria.ID)
}

func TestCategoriaRepository_Create_DuplicateNombre(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Categoria{Nombre: "Bebidas"}))

	err := repo.Create(ctx, &entity.Categoria{Nombre: "Bebidas"})

	assert.ErrorIs(t, err, ErrCategoriaAlreadyExists)
}

func TestCategoriaRepository_GetAll_OrderedByID(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	for _, nombre := range []string{"Pollos", "Guarniciones", "Bebidas"} {
		require.NoError(t, repo.Create(ctx, &entity.Categoria{Nombre: nombre}))
	}

	categorias, err := repo.GetAll(ctx)

	require.NoError(t, err)
	require.Len(t, categorias, 3)
	assert.Equal(t, "Pollos", categorias[0].Nombre)
	assert.Equal(t, "Guarniciones", categorias[1].Nombre)
	assert.Equal(t, "Bebidas", categorias[2].Nombre)
}

func TestCategoriaRepository_GetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)

	_, err := repo.GetByID(context.Background(), 999)

	assert.ErrorIs(t, err, ErrCategoriaNotFound)
}

func TestCategoriaRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	categoria := &entity.Categoria{Nombre: "Postres"}
	require.NoError(t, repo.Create(ctx, categoria))

	require.NoError(t, repo.Delete(ctx, categoria.ID))

	_, err := repo.GetByID(ctx, categoria.ID)
	assert.ErrorIs(t, err, ErrCategoriaNotFound)
}

func TestCategoriaRepository_Delete_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)

	err := repo.Delete(context.Background(), 999)

	assert.ErrorIs(t, err, ErrCategoriaNotFound)
}

func TestCategoriaRepository_Delete_BlockedByArticulos(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCategoriaRepository(db)
	ctx := context.Background()

	categoria := &entity.Categoria{Nombre: "Pollos"}
	require.NoError(t, repo.Create(ctx, categoria))
	require.NoError(t, db.Create(&entity.Articulo{Nombre: "Pollo entero", Precio: 45, Stock: 10, CategoriaID: categoria.ID}).Error)
	require.NoError(t, db.Create(&entity.Articulo{Nombre: "1/2 Pollo", Precio: 25, Stock: 10, CategoriaID: categoria.ID}).Error)

	err := repo.Delete(ctx, categoria.ID)

	var conArticulos *CategoriaConArticulosError
	require.ErrorAs(t, err, &conArticulos)
	assert.EqualValues(t, 2, conArticulos.Articulos)

	// The categoria must survive the blocked delete.
	_, err = repo.GetByID(ctx, categoria.ID)
	assert.NoError(t, err)
}
