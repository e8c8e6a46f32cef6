package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/repository"
	"rostipos/internal/app/pos/util"
	"rostipos/pkg/logger"
)

var (
	// Business errors mapped to HTTP responses in the handlers.
	ErrCategoriaNotFound  = errors.New("categoria not found")
	ErrCategoriaDuplicada = errors.New("categoria already exists")
	ErrArticuloNotFound   = errors.New("articulo not found")
	ErrArticuloDuplicado  = errors.New("articulo already exists")
	ErrMesaNotFound       = errors.New("mesa not found")
	ErrMesaDuplicada      = errors.New("mesa already exists")
)

const categoriasCacheTTL = time.Hour

// CatalogoService handles the menu catalog: categorias, articulos and mesas.
// The categoria listing is cached in Redis and invalidated on every write.
type CatalogoService struct {
	categoriaRepo repository.CategoriaRepository
	articuloRepo  repository.ArticuloRepository
	mesaRepo      repository.MesaRepository
	cache         util.RedisCache
}

func NewCatalogoService(
	categoriaRepo repository.CategoriaRepository,
	articuloRepo repository.ArticuloRepository,
	mesaRepo repository.MesaRepository,
	cache util.RedisCache,
) *CatalogoService {
	return &CatalogoService{
		categoriaRepo: categoriaRepo,
		articuloRepo:  articuloRepo,
		mesaRepo:      mesaRepo,
		cache:         cache,
	}
}

// === CATEGORIAS ===

func (s *CatalogoService) CreateCategoria(ctx context.Context, req *entity.CreateCategoriaRequest) (*entity.Categoria, error) {
	categoria := &entity.Categoria{Nombre: req.Nombre}

	if err := s.categoriaRepo.Create(ctx, categoria); err != nil {
		if errors.Is(err, repository.ErrCategoriaAlreadyExists) {
			return nil, ErrCategoriaDuplicada
		}
		return nil, fmt.Errorf("failed to create categoria: %w", err)
	}

	s.invalidateCategorias(ctx)
	return categoria, nil
}

// GetCategorias returns all categorias, serving from Redis when possible.
func (s *CatalogoService) GetCategorias(ctx context.Context) ([]entity.Categoria, error) {
	if s.cache != nil {
		if categorias, err := s.cache.GetCategorias(ctx); err == nil {
			return categorias, nil
		}
	}

	categorias, err := s.categoriaRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get categorias: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetCategorias(ctx, categorias, categoriasCacheTTL); err != nil {
			// The data came from the database, a cache failure is not fatal.
			logger.Warn().Err(err).Msg("Failed to cache categorias")
		}
	}

	return categorias, nil
}

// DeleteCategoria removes a categoria. A *repository.CategoriaConArticulosError
// passes through untouched so the handler can report the dependent count.
func (s *CatalogoService) DeleteCategoria(ctx context.Context, id uint) error {
	if err := s.categoriaRepo.Delete(ctx, id); err != nil {
		var conArticulos *repository.CategoriaConArticulosError
		if errors.As(err, &conArticulos) {
			return err
		}
		if errors.Is(err, repository.ErrCategoriaNotFound) {
			return ErrCategoriaNotFound
		}
		return fmt.Errorf("failed to delete categoria: %w", err)
	}

	s.invalidateCategorias(ctx)
	return nil
}

func (s *CatalogoService) invalidateCategorias(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeleteCategorias(ctx); err != nil {
		logger.Warn().Err(err).Msg("Failed to invalidate categorias cache")
	}
}

// === ARTICULOS ===

// CreateArticulo verifies the categoria exists before inserting.
func (s *CatalogoService) CreateArticulo(ctx context.Context, req *entity.ArticuloRequest) (*entity.Articulo, error) {
	if _, err := s.categoriaRepo.GetByID(ctx, *req.CategoriaID); err != nil {
		if errors.Is(err, repository.ErrCategoriaNotFound) {
			return nil, ErrCategoriaNotFound
		}
		return nil, fmt.Errorf("failed to verify categoria: %w", err)
	}

	articulo := &entity.Articulo{
		Nombre:      req.Nombre,
		Precio:      *req.Precio,
		Stock:       *req.Stock,
		CategoriaID: *req.CategoriaID,
	}

	if err := s.articuloRepo.Create(ctx, articulo); err != nil {
		if errors.Is(err, repository.ErrArticuloAlreadyExists) {
			return nil, ErrArticuloDuplicado
		}
		return nil, fmt.Errorf("failed to create articulo: %w", err)
	}

	return articulo, nil
}

func (s *CatalogoService) GetArticulos(ctx context.Context, categoriaID *uint) ([]entity.ArticuloConCategoria, error) {
	articulos, err := s.articuloRepo.GetAllWithCategoria(ctx, categoriaID)
	if err != nil {
		return nil, fmt.Errorf("failed to get articulos: %w", err)
	}
	return articulos, nil
}

// UpdateArticulo is a full replace: every field comes from the request.
// Pedido items keep their name and price snapshots regardless of this edit.
func (s *CatalogoService) UpdateArticulo(ctx context.Context, id uint, req *entity.ArticuloRequest) error {
	if _, err := s.categoriaRepo.GetByID(ctx, *req.CategoriaID); err != nil {
		if errors.Is(err, repository.ErrCategoriaNotFound) {
			return ErrCategoriaNotFound
		}
		return fmt.Errorf("failed to verify categoria: %w", err)
	}

	articulo := &entity.Articulo{
		ID:          id,
		Nombre:      req.Nombre,
		Precio:      *req.Precio,
		Stock:       *req.Stock,
		CategoriaID: *req.CategoriaID,
	}

	if err := s.articuloRepo.Update(ctx, articulo); err != nil {
		if errors.Is(err, repository.ErrArticuloNotFound) {
			return ErrArticuloNotFound
		}
		if errors.Is(err, repository.ErrArticuloAlreadyExists) {
			return ErrArticuloDuplicado
		}
		return fmt.Errorf("failed to update articulo: %w", err)
	}

	return nil
}

func (s *CatalogoService) DeleteArticulo(ctx context.Context, id uint) error {
	if err := s.articuloRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrArticuloNotFound) {
			return ErrArticuloNotFound
		}
		return fmt.Errorf("failed to delete articulo: %w", err)
	}
	return nil
}

// === MESAS ===

func (s *CatalogoService) CreateMesa(ctx context.Context, req *entity.CreateMesaRequest) (*entity.Mesa, error) {
	mesa := &entity.Mesa{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
	}

	if err := s.mesaRepo.Create(ctx, mesa); err != nil {
		if errors.Is(err, repository.ErrMesaAlreadyExists) {
			return nil, ErrMesaDuplicada
		}
		return nil, fmt.Errorf("failed to create mesa: %w", err)
	}

	return mesa, nil
}

func (s *CatalogoService) GetMesas(ctx context.Context) ([]entity.Mesa, error) {
	mesas, err := s.mesaRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get mesas: %w", err)
	}
	return mesas, nil
}

// DeleteMesa removes a mesa without touching its pedidos; their detail
// view falls back to "Desconocida" for the mesa name.
func (s *CatalogoService) DeleteMesa(ctx context.Context, id uint) error {
	if err := s.mesaRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrMesaNotFound) {
			return ErrMesaNotFound
		}
		return fmt.Errorf("failed to delete mesa: %w", err)
	}
	return nil
}
