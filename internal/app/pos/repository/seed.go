package repository

import (
	"fmt"

	"gorm.io/gorm"

	"rostipos/internal/app/pos/entity"
)

// Seed loads the initial menu and mesas. Each table is populated only
// when it is empty, so existing data is never touched.
func Seed(db *gorm.DB) error {
	if err := seedCategorias(db); err != nil {
		return err
	}
	if err := seedMesas(db); err != nil {
		return err
	}
	return seedArticulos(db)
}

func seedCategorias(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Categoria{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count categorias: %w", err)
	}
	if count > 0 {
		return nil
	}

	// Fixed IDs: the articulo seed references them.
	categorias := []entity.Categoria{
		{ID: 1, Nombre: "Pollos 🍗"},
		{ID: 2, Nombre: "Combos Personales 🍽️"},
		{ID: 3, Nombre: "Guarniciones 🍟"},
		{ID: 4, Nombre: "Bebidas 🥤"},
		{ID: 5, Nombre: "Salsas y Extras 🌶️"},
		{ID: 6, Nombre: "Extras de Pollo 🍖"},
		{ID: 7, Nombre: "Postres 🍰"},
	}
	if err := db.Create(&categorias).Error; err != nil {
		return fmt.Errorf("failed to seed categorias: %w", err)
	}
	return nil
}

func seedMesas(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Mesa{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count mesas: %w", err)
	}
	if count > 0 {
		return nil
	}

	mesas := []entity.Mesa{
		{Nombre: "Mesa 1"},
		{Nombre: "Mesa 2"},
		{Nombre: "Mesa 3"},
		{Nombre: "Mesa Delivery"},
	}
	if err := db.Create(&mesas).Error; err != nil {
		return fmt.Errorf("failed to seed mesas: %w", err)
	}
	return nil
}

func seedArticulos(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entity.Articulo{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count articulos: %w", err)
	}
	if count > 0 {
		return nil
	}

	articulos := []entity.Articulo{
		// Pollos
		{Nombre: "Pollo entero", Precio: 45.00, Stock: 100, CategoriaID: 1},
		{Nombre: "1/2 Pollo", Precio: 25.00, Stock: 100, CategoriaID: 1},
		{Nombre: "1/4 Pollo", Precio: 15.00, Stock: 100, CategoriaID: 1},
		{Nombre: "1/8 Pollo (presa)", Precio: 8.00, Stock: 100, CategoriaID: 1},

		// Combos Personales
		{Nombre: "Combo Personal 1/4 (Papas/Ensalada)", Precio: 18.00, Stock: 50, CategoriaID: 2},
		{Nombre: "Combo Personal 1/2 (Papas/Ensalada/Gaseosa)", Precio: 28.00, Stock: 50, CategoriaID: 2},
		{Nombre: "Combo Familiar", Precio: 55.00, Stock: 30, CategoriaID: 2},
		{Nombre: "Combo Pareja", Precio: 35.00, Stock: 40, CategoriaID: 2},

		// Guarniciones
		{Nombre: "Papas fritas personales", Precio: 8.00, Stock: 200, CategoriaID: 3},
		{Nombre: "Papas fritas medianas", Precio: 12.00, Stock: 150, CategoriaID: 3},
		{Nombre: "Papas fritas grandes", Precio: 18.00, Stock: 100, CategoriaID: 3},
		{Nombre: "Ensalada personal", Precio: 5.00, Stock: 100, CategoriaID: 3},
		{Nombre: "Ensalada mediana", Precio: 8.00, Stock: 100, CategoriaID: 3},
		{Nombre: "Ensalada grande", Precio: 12.00, Stock: 100, CategoriaID: 3},
		{Nombre: "Arroz chaufa personal", Precio: 12.00, Stock: 80, CategoriaID: 3},
		{Nombre: "Arroz chaufa mediano", Precio: 18.00, Stock: 60, CategoriaID: 3},
		{Nombre: "Yucas fritas", Precio: 10.00, Stock: 100, CategoriaID: 3},
		{Nombre: "Camote frito", Precio: 8.00, Stock: 100, CategoriaID: 3},

		// Bebidas
		{Nombre: "Gaseosa personal 500ml", Precio: 5.00, Stock: 150, CategoriaID: 4},
		{Nombre: "Gaseosa 1L", Precio: 8.00, Stock: 100, CategoriaID: 4},
		{Nombre: "Gaseosa 1.5L", Precio: 10.00, Stock: 80, CategoriaID: 4},
		{Nombre: "Gaseosa 2L", Precio: 12.00, Stock: 50, CategoriaID: 4},
		{Nombre: "Chicha morada personal", Precio: 5.00, Stock: 100, CategoriaID: 4},
		{Nombre: "Chicha morada jarra", Precio: 12.00, Stock: 50, CategoriaID: 4},
		{Nombre: "Inka Kola 500ml", Precio: 5.50, Stock: 100, CategoriaID: 4},
		{Nombre: "Agua mineral", Precio: 3.00, Stock: 200, CategoriaID: 4},

		// Salsas y Extras
		{Nombre: "Salsa criolla", Precio: 2.00, Stock: 300, CategoriaID: 5},
		{Nombre: "Ají especial de la casa", Precio: 3.00, Stock: 300, CategoriaID: 5},
		{Nombre: "Mayonesa", Precio: 2.00, Stock: 300, CategoriaID: 5},
		{Nombre: "Ketchup", Precio: 2.00, Stock: 300, CategoriaID: 5},
		{Nombre: "Mostaza", Precio: 2.00, Stock: 300, CategoriaID: 5},
		{Nombre: "Cremas especiales", Precio: 4.00, Stock: 200, CategoriaID: 5},

		// Extras de Pollo
		{Nombre: "Alitas (6 unidades)", Precio: 18.00, Stock: 80, CategoriaID: 6},
		{Nombre: "Alitas (12 unidades)", Precio: 32.00, Stock: 50, CategoriaID: 6},
		{Nombre: "Chicharrón de pollo", Precio: 22.00, Stock: 70, CategoriaID: 6},
		{Nombre: "Nuggets (8 unidades)", Precio: 15.00, Stock: 60, CategoriaID: 6},

		// Postres
		{Nombre: "Pie de manzana", Precio: 8.00, Stock: 50, CategoriaID: 7},
		{Nombre: "Helado (1 bola)", Precio: 5.00, Stock: 100, CategoriaID: 7},
		{Nombre: "Suspiro limeño", Precio: 7.00, Stock: 40, CategoriaID: 7},
		{Nombre: "Mazamorra morada", Precio: 6.00, Stock: 40, CategoriaID: 7},
	}
	if err := db.Create(&articulos).Error; err != nil {
		return fmt.Errorf("failed to seed articulos: %w", err)
	}
	return nil
}
