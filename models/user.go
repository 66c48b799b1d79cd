package models

import "time"

// Roles del personal
const (
	RoleManager      = "gerente"
	RoleReceptionist = "recepcionista"
	RoleWaiter       = "mesero"
	RoleCook         = "cocinero"
)

type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	Name         string    `gorm:"column:nombre;type:varchar(100);not null" json:"nombre"`
	Username     string    `gorm:"column:username;type:varchar(50);unique;not null" json:"username"`
	PasswordHash string    `gorm:"column:password_hash;type:varchar(255);not null" json:"-"`
	Role         string    `gorm:"column:rol;type:varchar(30);not null" json:"rol"`
	Active       bool      `gorm:"column:activo;not null;default:true" json:"activo"`
	CreatedAt    time.Time `gorm:"column:creado_en;not null" json:"creado_en"`
}

func (User) TableName() string {
	return "usuarios"
}
