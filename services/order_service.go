package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
)

// OrderService registra pedidos contra una cuenta y lleva su avance en
// cocina.
type OrderService struct {
	DB  *gorm.DB
	Pub events.Publisher
}

func NewOrderService(db *gorm.DB, pub events.Publisher) *OrderService {
	return &OrderService{DB: db, Pub: pub}
}

// OrderItemInput es un platillo dentro de una orden.
type OrderItemInput struct {
	ProductID uint   `json:"producto_id" binding:"required,gt=0"`
	Quantity  int    `json:"cantidad" binding:"required,gt=0"`
	GuestName string `json:"cliente_nombre" binding:"required,min=1"`
}

// kitchenDetail es la vista de un pedido recién insertado para cocina.
type kitchenDetail struct {
	OrderID     uint   `gorm:"column:pedido_id" json:"pedido_id"`
	Product     string `gorm:"column:platillo" json:"platillo"`
	Quantity    int    `gorm:"column:cantidad" json:"cantidad"`
	Status      string `gorm:"column:estado" json:"estado"`
	TableNumber int    `gorm:"column:mesa_numero" json:"mesa_numero"`
}

// PlaceOrder -> inserta los platillos como pedidos pendientes de la
// cuenta. O se insertan todos o ninguno: el primer platillo inválido
// revierte la orden completa. Al confirmar se emite un solo evento de
// cocina con el lote entero.
func (s *OrderService) PlaceOrder(tabID uint, items []OrderItemInput) ([]models.Order, error) {
	if tabID == 0 {
		return nil, validationf("ID de cuenta inválido")
	}
	if len(items) == 0 {
		return nil, validationf("La orden no puede estar vacía")
	}
	for _, item := range items {
		if item.ProductID == 0 {
			return nil, validationf("ID de producto inválido")
		}
		if item.Quantity <= 0 {
			return nil, validationf("La cantidad debe ser mayor a cero")
		}
		if item.GuestName == "" {
			return nil, validationf("Debes identificar quién pidió cada platillo")
		}
	}

	tx := s.DB.Begin()
	if tx.Error != nil {
		return nil, fmt.Errorf("iniciar transacción: %w", tx.Error)
	}

	if _, err := getOpenTab(tx, tabID); err != nil {
		tx.Rollback()
		return nil, err
	}

	created := make([]models.Order, 0, len(items))
	for _, item := range items {
		var product models.Product
		err := tx.Where("id = ? AND disponible = ?", item.ProductID, true).First(&product).Error
		if err != nil {
			tx.Rollback()
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, validationf("Producto con ID %d no válido o no disponible", item.ProductID)
			}
			return nil, fmt.Errorf("buscar producto %d: %w", item.ProductID, err)
		}

		order := models.Order{
			TabID:     tabID,
			ProductID: product.ID,
			Quantity:  item.Quantity,
			GuestName: item.GuestName,
			Status:    models.OrderPending,
			CreatedAt: time.Now(),
		}
		if err := tx.Create(&order).Error; err != nil {
			tx.Rollback()
			return nil, fmt.Errorf("insertar pedido: %w", err)
		}
		created = append(created, order)
	}

	ids := make([]uint, len(created))
	for i, order := range created {
		ids[i] = order.ID
	}

	var details []kitchenDetail
	err := tx.Table("pedidos p").
		Select("p.id AS pedido_id, prod.nombre AS platillo, p.cantidad, p.estado, m.numero AS mesa_numero").
		Joins("JOIN productos prod ON p.producto_id = prod.id").
		Joins("JOIN cuentas c ON p.cuenta_id = c.id").
		Joins("JOIN mesas m ON c.mesa_id = m.id").
		Where("p.id IN ?", ids).
		Scan(&details).Error
	if err != nil {
		tx.Rollback()
		return nil, fmt.Errorf("armar detalle de cocina: %w", err)
	}

	if err := tx.Commit().Error; err != nil {
		return nil, fmt.Errorf("confirmar orden: %w", err)
	}

	if len(details) > 0 {
		// Todos los pedidos del lote comparten mesa, así que el número
		// de la primera línea vale para el lote entero.
		s.Pub.Publish(events.EventNewKitchenOrder, map[string]interface{}{
			"mensaje":  "¡Nueva orden recibida!",
			"mesa":     details[0].TableNumber,
			"detalles": details,
		})
	}
	return created, nil
}

// PendingOrder es una línea de la fila de cocina.
type PendingOrder struct {
	OrderID     uint      `gorm:"column:pedido_id" json:"pedido_id"`
	Quantity    int       `gorm:"column:cantidad" json:"cantidad"`
	GuestName   string    `gorm:"column:cliente_nombre" json:"cliente_nombre"`
	Status      string    `gorm:"column:estado" json:"estado"`
	CreatedAt   time.Time `gorm:"column:creado_en" json:"creado_en"`
	Product     string    `gorm:"column:platillo" json:"platillo"`
	TableNumber int       `gorm:"column:mesa_numero" json:"mesa_numero"`
}

// ListPending -> pedidos pendientes o en preparación, del más viejo al
// más nuevo. Es la fila FIFO de la cocina.
func (s *OrderService) ListPending() ([]PendingOrder, error) {
	rows := make([]PendingOrder, 0)
	err := s.DB.Table("pedidos p").
		Select("p.id AS pedido_id, p.cantidad, p.cliente_nombre, p.estado, p.creado_en, prod.nombre AS platillo, m.numero AS mesa_numero").
		Joins("JOIN productos prod ON p.producto_id = prod.id").
		Joins("JOIN cuentas c ON p.cuenta_id = c.id").
		Joins("JOIN mesas m ON c.mesa_id = m.id").
		Where("p.estado IN ?", []string{models.OrderPending, models.OrderPreparing}).
		Order("p.creado_en ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("listar pendientes: %w", err)
	}
	return rows, nil
}

// AdvanceState -> mueve un pedido a preparando, listo o entregado.
// Los retrocesos se rechazan; la progresión es solo hacia adelante.
// Cuando el pedido queda listo se avisa al mesero con el número de mesa.
func (s *OrderService) AdvanceState(orderID uint, newState string) (*models.Order, error) {
	if newState != models.OrderPreparing && newState != models.OrderReady && newState != models.OrderDelivered {
		return nil, validationf("El estado debe ser 'preparando', 'listo' o 'entregado'")
	}

	var order models.Order
	if err := s.DB.First(&order, orderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Pedido no encontrado"}
		}
		return nil, fmt.Errorf("buscar pedido: %w", err)
	}

	if !models.CanAdvanceOrder(order.Status, newState) {
		return nil, validationf("No se puede cambiar el pedido de '%s' a '%s'", order.Status, newState)
	}

	order.Status = newState
	if err := s.DB.Model(&models.Order{}).
		Where("id = ?", order.ID).
		Update("estado", newState).Error; err != nil {
		return nil, fmt.Errorf("actualizar estado: %w", err)
	}

	if newState == models.OrderReady {
		var tableNumber int
		err := s.DB.Table("cuentas c").
			Select("m.numero").
			Joins("JOIN mesas m ON c.mesa_id = m.id").
			Where("c.id = ?", order.TabID).
			Scan(&tableNumber).Error
		if err != nil {
			return nil, fmt.Errorf("resolver mesa del pedido: %w", err)
		}

		s.Pub.Publish(events.EventOrderReady, map[string]interface{}{
			"mensaje":   fmt.Sprintf("¡Platillo listo para la Mesa %d!", tableNumber),
			"mesa":      tableNumber,
			"cliente":   order.GuestName,
			"pedido_id": order.ID,
		})
	}
	return &order, nil
}
