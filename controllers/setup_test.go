package controllers_test

import (
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/controllers"
	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/models"
	"github.com/DazJ14/restaurant-api/services"
	"github.com/DazJ14/restaurant-api/utils"
)

// setupHandlers arma los controladores contra sqlite en memoria, sin
// middleware de auth: aquí solo interesa el contrato HTTP.
func setupHandlers(t *testing.T) (*gorm.DB, *gin.Engine) {
	t.Helper()
	utils.InitLogger()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("abrir sqlite en memoria: %v", err)
	}
	err = db.AutoMigrate(
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

	hub := events.NewHub()
	tableCtrl := controllers.NewTableController(services.NewTableService(db, hub))
	orderCtrl := controllers.NewOrderController(
		services.NewTabService(db, hub),
		services.NewOrderService(db, hub),
		services.NewCatalogService(db),
	)
	kitchenCtrl := controllers.NewKitchenController(services.NewOrderService(db, hub))
	paymentCtrl := controllers.NewPaymentController(services.NewPaymentService(db, hub))

	r := gin.New()
	r.GET("/api/mesas", tableCtrl.GetAllTables)
	r.POST("/api/mesas/fusionar", tableCtrl.MergeTables)
	r.GET("/api/pedidos/menu", orderCtrl.GetMenu)
	r.POST("/api/pedidos/abrir-cuenta", orderCtrl.OpenTab)
	r.POST("/api/pedidos/ordenar", orderCtrl.PlaceOrder)
	r.GET("/api/cocina/pendientes", kitchenCtrl.GetPendingOrders)
	r.PATCH("/api/cocina/pedidos/:id/estado", kitchenCtrl.UpdateOrderState)
	r.GET("/api/pagos/cuenta/:cuenta_id", paymentCtrl.GetTabSummary)
	r.POST("/api/pagos/pagar", paymentCtrl.SettleTab)
	return db, r
}
