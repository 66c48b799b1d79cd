package models

// Product es un platillo o bebida del menú. Solo cambia la disponibilidad
// después del bootstrap.
type Product struct {
	ID          uint     `gorm:"primaryKey" json:"id"`
	CategoryID  uint     `gorm:"column:categoria_id;not null" json:"categoria_id"`
	Category    Category `gorm:"foreignKey:CategoryID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Name        string   `gorm:"column:nombre;type:varchar(100);unique;not null" json:"nombre"`
	Description string   `gorm:"column:descripcion;type:text" json:"descripcion"`
	Price       float64  `gorm:"column:precio;type:decimal(10,2);not null" json:"precio"`
	Available   bool     `gorm:"column:disponible;not null;default:true" json:"disponible"`
}

func (Product) TableName() string {
	return "productos"
}
