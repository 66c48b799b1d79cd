package models

type Category struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"column:nombre;type:varchar(50);unique;not null" json:"nombre"`
}

func (Category) TableName() string {
	return "categorias"
}
