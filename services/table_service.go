package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
)

// TableService administra las mesas y su fusión.
type TableService struct {
	DB  *gorm.DB
	Pub events.Publisher
}

func NewTableService(db *gorm.DB, pub events.Publisher) *TableService {
	return &TableService{DB: db, Pub: pub}
}

// TableRow es una mesa con el id de su cuenta abierta, si la tiene.
type TableRow struct {
	ID            uint   `gorm:"column:id" json:"id"`
	Number        int    `gorm:"column:numero" json:"numero"`
	Capacity      int    `gorm:"column:capacidad" json:"capacidad"`
	Status        string `gorm:"column:estado" json:"estado"`
	ParentTableID *uint  `gorm:"column:mesa_padre_id" json:"mesa_padre_id"`
	OpenTabID     *uint  `gorm:"column:cuenta_activa_id" json:"cuenta_activa_id"`
}

// ListTables -> todas las mesas ordenadas por número, cada una con su
// cuenta abierta si existe.
func (s *TableService) ListTables() ([]TableRow, error) {
	rows := make([]TableRow, 0)
	err := s.DB.Table("mesas m").
		Select("m.id, m.numero, m.capacidad, m.estado, m.mesa_padre_id, c.id AS cuenta_activa_id").
		Joins("LEFT JOIN cuentas c ON m.id = c.mesa_id AND c.estado = ?", models.TabOpen).
		Order("m.numero ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listar mesas: %w", err)
	}
	return rows, nil
}

// MergeTables -> fusiona las mesas secundarias con la principal: todas
// quedan ocupadas y las secundarias apuntan a la principal. La fusión se
// deshace sola al pagar la cuenta de la principal.
//
// Solo se admite un nivel de fusión: se rechaza fusionar una mesa consigo
// misma, usar como secundaria una mesa que ya es principal, o encadenar
// una principal que ya está fusionada a otra.
func (s *TableService) MergeTables(principalID uint, memberIDs []uint) error {
	if principalID == 0 {
		return validationf("ID de mesa principal inválido")
	}
	if len(memberIDs) == 0 {
		return validationf("Debes incluir al menos una mesa para fusionar")
	}
	for _, id := range memberIDs {
		if id == 0 {
			return validationf("ID de mesa a fusionar inválido")
		}
		if id == principalID {
			return validationf("La mesa principal no puede fusionarse consigo misma")
		}
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("iniciar transacción: %w", tx.Error)
	}

	var principal models.Table
	if err := tx.First(&principal, principalID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: fmt.Sprintf("Mesa %d no existe", principalID)}
		}
		return fmt.Errorf("buscar mesa principal: %w", err)
	}
	if principal.ParentTableID != nil {
		tx.Rollback()
		return validationf("La mesa %d ya está fusionada a otra mesa", principalID)
	}

	for _, memberID := range memberIDs {
		var member models.Table
		if err := tx.First(&member, memberID).Error; err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return &NotFoundError{Message: fmt.Sprintf("Mesa %d no existe", memberID)}
			}
			return fmt.Errorf("buscar mesa %d: %w", memberID, err)
		}
		if member.ParentTableID != nil {
			tx.Rollback()
			return validationf("La mesa %d ya está fusionada a otra mesa", memberID)
		}

		var children int64
		if err := tx.Model(&models.Table{}).
			Where("mesa_padre_id = ?", memberID).
			Count(&children).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("verificar fusiones de la mesa %d: %w", memberID, err)
		}
		if children > 0 {
			tx.Rollback()
			return validationf("La mesa %d es principal de otra fusión", memberID)
		}
	}

	if err := tx.Model(&models.Table{}).
		Where("id = ?", principalID).
		Update("estado", models.TableOccupied).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("ocupar mesa principal: %w", err)
	}

	if err := tx.Model(&models.Table{}).
		Where("id IN ?", memberIDs).
		Updates(map[string]interface{}{
			"estado":        models.TableOccupied,
			"mesa_padre_id": principalID,
		}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("fusionar mesas: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("confirmar fusión: %w", err)
	}

	s.Pub.Publish(events.EventTablesChanged, map[string]interface{}{
		"mensaje": "El estado de las mesas ha cambiado",
		"accion":  events.ActionMerge,
	})
	return nil
}
