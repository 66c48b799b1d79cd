package database

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/models"
)

// Seed deja los datos base del restaurante: mesas fijas, menú de
// arranque y personal por defecto. Es idempotente; correrlo dos veces
// no duplica nada.
func Seed(db *gorm.DB) error {
	if err := seedTables(db); err != nil {
		return err
	}
	if err := seedMenu(db); err != nil {
		return err
	}
	return seedUsers(db)
}

func seedTables(db *gorm.DB) error {
	tables := []models.Table{
		{Number: 1, Capacity: 2},
		{Number: 2, Capacity: 2},
		{Number: 3, Capacity: 4},
		{Number: 4, Capacity: 4},
		{Number: 5, Capacity: 6},
	}
	for _, table := range tables {
		table.Status = models.TableAvailable
		err := db.Where(models.Table{Number: table.Number}).
			FirstOrCreate(&table).Error
		if err != nil {
			return fmt.Errorf("sembrar mesa %d: %w", table.Number, err)
		}
	}
	return nil
}

func seedMenu(db *gorm.DB) error {
	type productSeed struct {
		category    string
		name        string
		description string
		price       float64
	}

	categories := []string{"Bebidas", "Entradas", "Platos Fuertes", "Postres"}
	categoryIDs := make(map[string]uint)
	for _, name := range categories {
		category := models.Category{Name: name}
		err := db.Where(models.Category{Name: name}).FirstOrCreate(&category).Error
		if err != nil {
			return fmt.Errorf("sembrar categoría %s: %w", name, err)
		}
		categoryIDs[name] = category.ID
	}

	products := []productSeed{
		{"Bebidas", "Refresco de Cola", "600ml", 35.00},
		{"Bebidas", "Limonada", "Jarra de 1L", 80.00},
		{"Platos Fuertes", "Hamburguesa Clásica", "Con queso y papas", 150.00},
		{"Platos Fuertes", "Tacos al Pastor", "Orden de 5", 120.00},
		{"Postres", "Flan Napolitano", "Rebanada", 60.00},
	}
	for _, p := range products {
		product := models.Product{
			CategoryID:  categoryIDs[p.category],
			Name:        p.name,
			Description: p.description,
			Price:       p.price,
			Available:   true,
		}
		err := db.Where(models.Product{Name: p.name}).FirstOrCreate(&product).Error
		if err != nil {
			return fmt.Errorf("sembrar producto %s: %w", p.name, err)
		}
	}
	return nil
}

func seedUsers(db *gorm.DB) error {
	type userSeed struct {
		name     string
		username string
		password string
		role     string
	}

	users := []userSeed{
		{"Jagua", "jagua", "admin123", models.RoleManager},
		{"Ana", "ana_recepcion", "ana123", models.RoleReceptionist},
		{"Carlos", "carlos_mesero", "carlos123", models.RoleWaiter},
		{"Roberto", "roberto_chef", "roberto123", models.RoleCook},
	}
	for _, u := range users {
		var exists int64
		if err := db.Model(&models.User{}).Where("username = ?", u.username).Count(&exists).Error; err != nil {
			return fmt.Errorf("verificar usuario %s: %w", u.username, err)
		}
		if exists > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hashear contraseña de %s: %w", u.username, err)
		}
		user := models.User{
			Name:         u.name,
			Username:     u.username,
			PasswordHash: string(hash),
			Role:         u.role,
			Active:       true,
		}
		if err := db.Create(&user).Error; err != nil {
			return fmt.Errorf("sembrar usuario %s: %w", u.username, err)
		}
	}
	return nil
}
