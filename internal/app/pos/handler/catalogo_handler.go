package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"rostipos/internal/app/pos/entity"
	"rostipos/internal/app/pos/repository"
	"rostipos/internal/app/pos/service"
)

// CatalogoHandler serves the categoria, articulo and mesa endpoints.
// Responses keep the wire format the front end and existing clients
// expect: bare arrays for listings, {success, message} for mutations.
type CatalogoHandler struct {
	catalogoService service.CatalogoServiceInterface
	validator       *validator.Validate
}

func NewCatalogoHandler(catalogoService service.CatalogoServiceInterface) *CatalogoHandler {
	return &CatalogoHandler{
		catalogoService: catalogoService,
		validator:       validator.New(),
	}
}

// === CATEGORIAS ===

// GetCategorias handles GET /api/categorias
func (h *CatalogoHandler) GetCategorias(c *gin.Context) {
	categorias, err := h.catalogoService.GetCategorias(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error al obtener las categorías.")
		return
	}
	if categorias == nil {
		categorias = []entity.Categoria{}
	}
	c.JSON(http.StatusOK, categorias)
}

// CreateCategoria handles POST /api/categorias
func (h *CatalogoHandler) CreateCategoria(c *gin.Context) {
	var req entity.CreateCategoriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "El nombre de la categoría es obligatorio.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "El nombre de la categoría es obligatorio.")
		return
	}

	if _, err := h.catalogoService.CreateCategoria(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrCategoriaDuplicada) {
			respondError(c, http.StatusBadRequest, "Ya existe una categoría con ese nombre.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al crear la categoría.")
		return
	}

	respondSuccess(c, "Categoría agregada correctamente.")
}

// DeleteCategoria handles DELETE /api/categorias/:id
func (h *CatalogoHandler) DeleteCategoria(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de categoría no válido.")
		return
	}

	if err := h.catalogoService.DeleteCategoria(c.Request.Context(), id); err != nil {
		var conArticulos *repository.CategoriaConArticulosError
		if errors.As(err, &conArticulos) {
			respondError(c, http.StatusBadRequest,
				fmt.Sprintf("No se puede eliminar la categoría. Aún tiene %d artículos asociados.", conArticulos.Articulos))
			return
		}
		if errors.Is(err, service.ErrCategoriaNotFound) {
			respondError(c, http.StatusNotFound, "Categoría no encontrada.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al eliminar la categoría.")
		return
	}

	respondSuccess(c, "Categoría eliminada correctamente.")
}

// === ARTICULOS ===

// GetArticulos handles GET /api/articulos with an optional categoria_id filter.
func (h *CatalogoHandler) GetArticulos(c *gin.Context) {
	var categoriaID *uint
	if raw := c.Query("categoria_id"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			respondError(c, http.StatusBadRequest, "ID de categoría no válido.")
			return
		}
		id := uint(parsed)
		categoriaID = &id
	}

	articulos, err := h.catalogoService.GetArticulos(c.Request.Context(), categoriaID)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error al obtener los artículos.")
		return
	}
	if articulos == nil {
		articulos = []entity.ArticuloConCategoria{}
	}
	c.JSON(http.StatusOK, articulos)
}

// CreateArticulo handles POST /api/articulos
func (h *CatalogoHandler) CreateArticulo(c *gin.Context) {
	var req entity.ArticuloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Faltan datos obligatorios.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Faltan datos obligatorios.")
		return
	}

	if _, err := h.catalogoService.CreateArticulo(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrArticuloDuplicado) {
			respondError(c, http.StatusBadRequest, "Ya existe un artículo con ese nombre.")
			return
		}
		if errors.Is(err, service.ErrCategoriaNotFound) {
			respondError(c, http.StatusBadRequest, "La categoría especificada no existe.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al crear el artículo.")
		return
	}

	respondSuccess(c, "Artículo agregado correctamente.")
}

// UpdateArticulo handles PUT /api/articulos/:id as a full replace.
func (h *CatalogoHandler) UpdateArticulo(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de artículo no válido.")
		return
	}

	var req entity.ArticuloRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Faltan datos obligatorios para la actualización.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "Faltan datos obligatorios para la actualización.")
		return
	}

	if err := h.catalogoService.UpdateArticulo(c.Request.Context(), id, &req); err != nil {
		if errors.Is(err, service.ErrArticuloNotFound) {
			respondError(c, http.StatusNotFound, "Artículo no encontrado.")
			return
		}
		if errors.Is(err, service.ErrArticuloDuplicado) {
			respondError(c, http.StatusBadRequest, "Ya existe otro artículo con ese nombre.")
			return
		}
		if errors.Is(err, service.ErrCategoriaNotFound) {
			respondError(c, http.StatusBadRequest, "La categoría especificada no existe.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al actualizar el artículo.")
		return
	}

	respondSuccess(c, "Artículo actualizado correctamente.")
}

// DeleteArticulo handles DELETE /api/articulos/:id
func (h *CatalogoHandler) DeleteArticulo(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de artículo no válido.")
		return
	}

	if err := h.catalogoService.DeleteArticulo(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrArticuloNotFound) {
			respondError(c, http.StatusNotFound, "Artículo no encontrado.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al eliminar el artículo.")
		return
	}

	respondSuccess(c, "Artículo eliminado correctamente.")
}

// === MESAS ===

// GetMesas handles GET /api/proveedores
func (h *CatalogoHandler) GetMesas(c *gin.Context) {
	mesas, err := h.catalogoService.GetMesas(c.Request.Context())
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Error al obtener las mesas.")
		return
	}
	if mesas == nil {
		mesas = []entity.Mesa{}
	}
	c.JSON(http.StatusOK, mesas)
}

// CreateMesa handles POST /api/proveedores
func (h *CatalogoHandler) CreateMesa(c *gin.Context) {
	var req entity.CreateMesaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "El nombre es obligatorio.")
		return
	}
	if err := h.validator.Struct(req); err != nil {
		respondError(c, http.StatusBadRequest, "El nombre es obligatorio.")
		return
	}

	if _, err := h.catalogoService.CreateMesa(c.Request.Context(), &req); err != nil {
		if errors.Is(err, service.ErrMesaDuplicada) {
			respondError(c, http.StatusBadRequest, "Ya existe una mesa con ese nombre.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al crear la mesa.")
		return
	}

	respondSuccess(c, "Mesa agregada correctamente.")
}

// DeleteMesa handles DELETE /api/proveedores/:id
func (h *CatalogoHandler) DeleteMesa(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		respondError(c, http.StatusBadRequest, "ID de mesa no válido.")
		return
	}

	if err := h.catalogoService.DeleteMesa(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrMesaNotFound) {
			respondError(c, http.StatusNotFound, "Mesa no encontrada.")
			return
		}
		respondError(c, http.StatusInternalServerError, "Error al eliminar la mesa.")
		return
	}

	respondSuccess(c, "Mesa eliminada correctamente.")
}

// === HELPERS ===

func parseID(c *gin.Context) (uint, error) {
	parsed, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}

func respondSuccess(c *gin.Context, message string) {
	c.JSON(http.StatusOK, entity.APIResponse{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, entity.APIResponse{Success: false, Message: message})
}
