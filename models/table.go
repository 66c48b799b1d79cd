package models

// Estados de mesa
const (
	TableAvailable = "disponible"
	TableOccupied  = "ocupada"
)

// Table representa una mesa física. MesaPadreID enlaza mesas fusionadas
// con su mesa principal; una mesa fusionada nunca es principal a su vez.
type Table struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Number        int    `gorm:"column:numero;unique;not null" json:"numero"`
	Capacity      int    `gorm:"column:capacidad;not null" json:"capacidad"`
	Status        string `gorm:"column:estado;type:varchar(30);not null;default:'disponible'" json:"estado"`
	ParentTableID *uint  `gorm:"column:mesa_padre_id" json:"mesa_padre_id"`
}

func (Table) TableName() string {
	return "mesas"
}
