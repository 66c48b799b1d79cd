package config

import (
	"fmt"
	"os"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// InitDB abre la conexión MySQL con los datos del entorno. DB_DSN manda;
// si no está, se arma con DB_USER/DB_PASS/DB_HOST/DB_PORT/DB_NAME.
func InitDB() (*gorm.DB, error) {
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		user := envOr("DB_USER", "root")
		pass := os.Getenv("DB_PASS")
		host := envOr("DB_HOST", "127.0.0.1")
		port := envOr("DB_PORT", "3306")
		name := envOr("DB_NAME", "restaurante")
		dsn = fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			user, pass, host, port, name)
	}

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("conectar a la base de datos: %w", err)
	}
	return db, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
