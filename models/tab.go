package models

import "time"

// Estados de cuenta
const (
	TabOpen = "abierta"
	TabPaid = "pagada"
)

// Tab es la cuenta de una mesa, de apertura a pago. Nunca se borra;
// una mesa acumula cuentas pagadas pero solo puede tener una abierta.
type Tab struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TableID   uint      `gorm:"column:mesa_id;not null" json:"mesa_id"`
	Table     Table     `gorm:"foreignKey:TableID;references:ID" json:"-"`
	Status    string    `gorm:"column:estado;type:varchar(20);not null;default:'abierta'" json:"estado"`
	CreatedAt time.Time `gorm:"column:creada_en;not null" json:"creada_en"`
}

func (Tab) TableName() string {
	return "cuentas"
}
