package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
)

// TabService abre cuentas y valida su vigencia para los demás servicios.
type TabService struct {
	DB  *gorm.DB
	Pub events.Publisher
}

func NewTabService(db *gorm.DB, pub events.Publisher) *TabService {
	return &TabService{DB: db, Pub: pub}
}

// OpenTab -> abre una cuenta para la mesa y la marca ocupada. Si la mesa
// ya tiene cuenta abierta devuelve ConflictError con el id existente; la
// verificación y el insert van en la misma transacción para que dos
// aperturas simultáneas no puedan colarse ambas.
func (s *TabService) OpenTab(tableID uint) (*models.Tab, error) {
	if tableID == 0 {
		return nil, validationf("ID de mesa inválido")
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("iniciar transacción: %w", tx.Error)
	}

	var table models.Table
	if err := tx.First(&table, tableID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: fmt.Sprintf("Mesa %d no existe", tableID)}
		}
		return nil, fmt.Errorf("buscar mesa: %w", err)
	}

	var existing models.Tab
	err := tx.Where("mesa_id = ? AND estado = ?", tableID, models.TabOpen).First(&existing).Error
	if err == nil {
		tx.Rollback()
		return nil, &ConflictError{
			Message: "Esta mesa ya tiene una cuenta abierta",
			TabID:   existing.ID,
		}
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		tx.Rollback()
		return nil, fmt.Errorf("buscar cuenta abierta: %w", err)
	}

	tab := models.Tab{
		TableID: tableID,
		Status:  models.TabOpen,
	}
	if err := tx.Create(&tab).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("crear cuenta: %w", err)
	}

	if err := tx.Model(&models.Table{}).
		Where("id = ?", tableID).
		Update("estado", models.TableOccupied).Error; err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("ocupar mesa: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("confirmar apertura: %w", err)
	}

	s.Pub.Publish(events.EventTablesChanged, map[string]interface{}{
		"mensaje": fmt.Sprintf("La Mesa %d ha sido ocupada", tableID),
		"accion":  events.ActionOccupySingle,
	})
	return &tab, nil
}

// getOpenTab busca la cuenta dentro de la transacción dada y exige que
// siga abierta.
func getOpenTab(tx *gorm.DB, tabID uint) (*models.Tab, error) {
	var tab models.Tab
	if err := tx.First(&tab, tabID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Cuenta no existe"}
		}
		return nil, fmt.Errorf("buscar cuenta: %w", err)
	}
	if tab.Status != models.TabOpen {
		return nil, &ConflictError{Message: "Cuenta no válida o cerrada"}
	}
	return &tab, nil
}
