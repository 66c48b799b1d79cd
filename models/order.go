package models

import "time"

// Estados de pedido para cocina
const (
	OrderPending   = "pendiente"
	OrderPreparing = "preparando"
	OrderReady     = "listo"
	OrderDelivered = "entregado"
)

// orderRank define la progresión pendiente -> preparando -> listo -> entregado.
var orderRank = map[string]int{
	OrderPending:   0,
	OrderPreparing: 1,
	OrderReady:     2,
	OrderDelivered: 3,
}

// CanAdvanceOrder indica si un pedido puede pasar de "from" a "to".
// Solo se admiten avances; nunca retrocesos ni estados desconocidos.
func CanAdvanceOrder(from, to string) bool {
	fromRank, ok := orderRank[from]
	if !ok {
		return false
	}
	toRank, ok := orderRank[to]
	if !ok {
		return false
	}
	return toRank > fromRank
}

// Order es una línea de pedido dentro de una cuenta. ClienteNombre
// identifica al comensal para poder separar la cuenta.
type Order struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	TabID     uint      `gorm:"column:cuenta_id;not null" json:"cuenta_id"`
	Tab       Tab       `gorm:"foreignKey:TabID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	ProductID uint      `gorm:"column:producto_id;not null" json:"producto_id"`
	Product   Product   `gorm:"foreignKey:ProductID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Quantity  int       `gorm:"column:cantidad;not null;default:1" json:"cantidad"`
	GuestName string    `gorm:"column:cliente_nombre;type:varchar(50);not null;default:'General'" json:"cliente_nombre"`
	Status    string    `gorm:"column:estado;type:varchar(30);not null;default:'pendiente'" json:"estado"`
	CreatedAt time.Time `gorm:"column:creado_en;not null" json:"creado_en"`
}

func (Order) TableName() string {
	return "pedidos"
}
