package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
)

// PaymentService arma la cuenta separada por comensal y procesa el pago
// que libera la mesa.
type PaymentService struct {
	DB  *gorm.DB
	Pub events.Publisher
}

func NewPaymentService(db *gorm.DB, pub events.Publisher) *PaymentService {
	return &PaymentService{DB: db, Pub: pub}
}

// SummaryLine es un platillo dentro del desglose de un comensal.
type SummaryLine struct {
	Product   string  `json:"platillo"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
}

// GuestBill agrupa lo consumido por un comensal.
type GuestBill struct {
	GuestName string        `json:"cliente_nombre"`
	Total     float64       `json:"total_a_pagar"`
	Detail    []SummaryLine `json:"detalle"`
}

// TabSummary es la cuenta completa: total general y cuentas separadas.
type TabSummary struct {
	TabID      uint        `json:"cuenta_id"`
	Status     string      `json:"estado"`
	GrandTotal float64     `json:"gran_total"`
	Guests     []GuestBill `json:"cuentas_separadas"`
}

// summaryRow es una línea plana del join pedidos-productos.
type summaryRow struct {
	GuestName string  `gorm:"column:cliente_nombre"`
	Product   string  `gorm:"column:platillo"`
	Quantity  int     `gorm:"column:cantidad"`
	UnitPrice float64 `gorm:"column:precio_unitario"`
}

// GetTabSummary -> desglose por comensal y gran total de la cuenta.
// Una cuenta sin pedidos devuelve desglose vacío y total cero.
func (s *PaymentService) GetTabSummary(tabID uint) (*TabSummary, error) {
	var tab models.Tab
	if err := s.DB.First(&tab, tabID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Cuenta no existe"}
		}
		return nil, fmt.Errorf("buscar cuenta: %w", err)
	}

	var rows []summaryRow
	err := s.DB.Table("pedidos p").
		Select("p.cliente_nombre, prod.nombre AS platillo, p.cantidad, prod.precio AS precio_unitario").
		Joins("JOIN productos prod ON p.producto_id = prod.id").
		Where("p.cuenta_id = ?", tabID).
		Order("p.cliente_nombre, p.creado_en ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("desglosar cuenta: %w", err)
	}

	summary := &TabSummary{
		TabID:  tab.ID,
		Status: tab.Status,
		Guests: make([]GuestBill, 0),
	}

	index := make(map[string]int)
	for _, row := range rows {
		subtotal := row.UnitPrice * float64(row.Quantity)
		line := SummaryLine{
			Product:   row.Product,
			Quantity:  row.Quantity,
			UnitPrice: row.UnitPrice,
		}

		i, seen := index[row.GuestName]
		if !seen {
			index[row.GuestName] = len(summary.Guests)
			summary.Guests = append(summary.Guests, GuestBill{
				GuestName: row.GuestName,
				Total:     subtotal,
				Detail:    []SummaryLine{line},
			})
		} else {
			summary.Guests[i].Total += subtotal
			summary.Guests[i].Detail = append(summary.Guests[i].Detail, line)
		}
		summary.GrandTotal += subtotal
	}
	return summary, nil
}

// PaymentInput es un pago individual dentro del cierre de cuenta.
type PaymentInput struct {
	GuestName string  `json:"cliente_nombre" binding:"required,min=1"`
	Amount    float64 `json:"monto" binding:"required,gt=0"`
	Method    string  `json:"metodo_pago" binding:"required,oneof=efectivo terminal"`
}

// SettleTab -> registra los pagos, marca la cuenta como pagada y libera
// la mesa junto con todas las fusionadas a ella, en una sola transacción.
// No se verifica que la suma de pagos iguale el gran total: el cobro
// queda a criterio de caja.
func (s *PaymentService) SettleTab(tabID uint, payments []PaymentInput) error {
	if tabID == 0 {
		return validationf("ID de cuenta inválido")
	}
	if len(payments) == 0 {
		return validationf("Debe registrar al menos un pago")
	}
	for _, payment := range payments {
		if payment.GuestName == "" {
			return validationf("Cada pago debe indicar el nombre del cliente")
		}
		if payment.Amount <= 0 {
			return validationf("El monto del pago debe ser mayor a cero")
		}
		if payment.Method != models.PaymentCash && payment.Method != models.PaymentTerminal {
			return validationf("El método de pago debe ser 'efectivo' o 'terminal'")
		}
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return fmt.Errorf("iniciar transacción: %w", tx.Error)
	}

	var tab models.Tab
	if err := tx.First(&tab, tabID).Error; err != nil {
		tx.Rollback()
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Message: "Cuenta no existe"}
		}
		return fmt.Errorf("buscar cuenta: %w", err)
	}
	if tab.Status == models.TabPaid {
		tx.Rollback()
		return &ConflictError{Message: "La cuenta ya está pagada"}
	}

	for _, payment := range payments {
		row := models.Payment{
			TabID:     tab.ID,
			Amount:    payment.Amount,
			Method:    payment.Method,
			GuestName: payment.GuestName,
			Reference: uuid.NewString(),
		}
		if err := tx.Create(&row).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("registrar pago: %w", err)
		}
	}

	if err := tx.Model(&models.Tab{}).
		Where("id = ?", tab.ID).
		Update("estado", models.TabPaid).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("marcar cuenta pagada: %w", err)
	}

	if err := tx.Model(&models.Table{}).
		Where("id = ? OR mesa_padre_id = ?", tab.TableID, tab.TableID).
		Updates(map[string]interface{}{
			"estado":        models.TableAvailable,
			"mesa_padre_id": nil,
		}).Error; err != nil {
		tx.Rollback()
		return fmt.Errorf("liberar mesas: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("confirmar pago: %w", err)
	}

	s.Pub.Publish(events.EventTablesChanged, map[string]interface{}{
		"mensaje": fmt.Sprintf("Mesa %d liberada", tab.TableID),
		"accion":  events.ActionRelease,
	})
	return nil
}
