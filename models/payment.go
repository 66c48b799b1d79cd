package models

import "time"

// Métodos de pago aceptados
const (
	PaymentCash     = "efectivo"
	PaymentTerminal = "terminal"
)

// Payment es un pago registrado contra una cuenta. Solo se inserta,
// nunca se modifica ni se borra.
type Payment struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TabID     uint      `gorm:"column:cuenta_id;not null" json:"cuenta_id"`
	Tab       Tab       `gorm:"foreignKey:TabID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Amount    float64   `gorm:"column:monto;type:decimal(10,2);not null" json:"monto"`
	Method    string    `gorm:"column:metodo_pago;type:varchar(50);not null" json:"metodo_pago"`
	GuestName string    `gorm:"column:cliente_nombre;type:varchar(50);not null;default:'General'" json:"cliente_nombre"`
	Reference string    `gorm:"column:referencia;type:varchar(64)" json:"referencia"`
	CreatedAt time.Time `gorm:"column:creado_en;not null" json:"creado_en"`
}

func (Payment) TableName() string {
	return "pagos"
}
