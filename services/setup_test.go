package services_test

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
)

// capturePublisher guarda los eventos publicados para poder revisarlos.
type capturePublisher struct {
	published []events.Message
}

func (p *capturePublisher) Publish(event string, data interface{}) {
	p.published = append(p.published, events.Message{Event: event, Data: data})
}

func (p *capturePublisher) last() *events.Message {
	if len(p.published) == 0 {
		return nil
	}
	return &p.published[len(p.published)-1]
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Category{},
		&models.Product{},
		&models.Tab{},
		&models.Order{},
		&models.Payment{},
	)
	if err != nil {
		t.Fatalf("migrar modelos: %v", err)
	}
	return db
}

func mustCreate(t *testing.T, db *gorm.DB, value interface{}) {
	t.Helper()
	if err := db.Create(value).Error; err != nil {
		t.Fatalf("sembrar %T: %v", value, err)
	}
}

// seedTables crea mesas numeradas 1..n, todas disponibles, capacidad 2.
func seedTables(t *testing.T, db *gorm.DB, n int) []models.Table {
	t.Helper()
	tables := make([]models.Table, n)
	for i := 0; i < n; i++ {
		tables[i] = models.Table{
			Number:   i + 1,
			Capacity: 2,
			Status:   models.TableAvailable,
		}
		mustCreate(t, db, &tables[i])
	}
	return tables
}

// seedProduct crea una categoría y un producto disponible con ese precio.
func seedProduct(t *testing.T, db *gorm.DB, name string, price float64) models.Product {
	t.Helper()
	category := models.Category{Name: "Bebidas"}
	if err := db.Where(models.Category{Name: category.Name}).FirstOrCreate(&category).Error; err != nil {
		t.Fatalf("sembrar categoría: %v", err)
	}
	product := models.Product{
		CategoryID: category.ID,
		Name:       name,
		Price:      price,
		Available:  true,
	}
	mustCreate(t, db, &product)
	return product
}
