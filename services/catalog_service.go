package services

import (
	"fmt"

	"gorm.io/gorm"
)

// CatalogService expone el menú vigente.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

// MenuItem es un producto disponible con su categoría.
type MenuItem struct {
	ID          uint    `gorm:"column:id" json:"id"`
	Name        string  `gorm:"column:nombre" json:"nombre"`
	Description string  `gorm:"column:descripcion" json:"descripcion"`
	Price       float64 `gorm:"column:precio" json:"precio"`
	Category    string  `gorm:"column:categoria" json:"categoria"`
}

// ListMenu -> productos disponibles ordenados por categoría y nombre.
func (s *CatalogService) ListMenu() ([]MenuItem, error) {
	items := make([]MenuItem, 0)
	err := s.DB.Table("productos p").
		Select("p.id, p.nombre, p.descripcion, p.precio, c.nombre AS categoria").
		Joins("JOIN categorias c ON p.categoria_id = c.id").
		Where("p.disponible = ?", true).
		Order("c.nombre, p.nombre").
		Scan(&items).Error
	if err != nil {
		return nil, fmt.Errorf("obtener menú: %w", err)
	}
	return items, nil
}
