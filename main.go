package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/config"
	"github.com/DazJ14/restaurant-api/database"
	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
	"github.com/DazJ14/restaurant-api/router"
	"github.com/DazJ14/restaurant-api/utils"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: no se encontró archivo .env: %v", err)
	}
	utils.InitLogger()
}

func main() {
	db, err := config.InitDB()
	if err != nil {
		utils.ErrorLogger.Fatalf("No se pudo conectar a la base de datos: %v", err)
	}

	if os.Getenv("GIN_MODE") == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	autoMigrate(db)

	if err := database.Seed(db); err != nil {
		utils.ErrorLogger.Fatalf("Error sembrando datos iniciales: %v", err)
	}

	hub := events.NewHub()
	r := router.SetupRouter(db, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	utils.InfoLogger.Printf("Servidor corriendo en el puerto %s", port)
	if err := r.Run(":" + port); err != nil {
		utils.ErrorLogger.Fatal(err)
	}
}

func autoMigrate(db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Table{},
		&models.Category{},
		&models.Product{},
		&models.Tab{},
		&models.Order{},
		&models.Payment{},
	)
	if err != nil {
		utils.ErrorLogger.Fatalf("Error en AutoMigrate: %v", err)
	}
	utils.InfoLogger.Println("AutoMigrate completado.")
}
