package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/controllers"
	"github.com/DazJ14/restaurant-api/events"
	"github.com/DazJ14/restaurant-api/middlewares"
	"github.com/DazJ14/restaurant-api/models"
	"github.com/DazJ14/restaurant-api/services"
)

func SetupRouter(db *gorm.DB, hub *events.Hub) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.LoggerMiddleware())

	tableSvc := services.NewTableService(db, hub)
	tabSvc := services.NewTabService(db, hub)
	orderSvc := services.NewOrderService(db, hub)
	paymentSvc := services.NewPaymentService(db, hub)
	catalogSvc := services.NewCatalogService(db)

	tableCtrl := controllers.NewTableController(tableSvc)
	orderCtrl := controllers.NewOrderController(tabSvc, orderSvc, catalogSvc)
	kitchenCtrl := controllers.NewKitchenController(orderSvc)
	paymentCtrl := controllers.NewPaymentController(paymentSvc)
	userCtrl := controllers.NewUserController(db)

	r.GET("/api/health", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.Ping()
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Error conectando a la base de datos"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "API funcionando"})
	})

	r.POST("/api/auth/login", userCtrl.Login)

	// Observadores (meseros, cocina, recepción); sin auth, igual que el
	// socket del sistema anterior.
	r.GET("/ws", controllers.EventsHandler(hub))

	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/usuarios",
			middlewares.RequireRoles(models.RoleManager),
			userCtrl.CreateUser)

		mesas := api.Group("/mesas")
		{
			mesas.GET("",
				middlewares.RequireRoles(models.RoleManager, models.RoleReceptionist, models.RoleWaiter),
				tableCtrl.GetAllTables)
			mesas.POST("/fusionar",
				middlewares.RequireRoles(models.RoleManager, models.RoleReceptionist),
				tableCtrl.MergeTables)
		}

		pedidos := api.Group("/pedidos")
		{
			pedidos.GET("/menu",
				middlewares.RequireRoles(models.RoleManager, models.RoleReceptionist, models.RoleWaiter),
				orderCtrl.GetMenu)
			pedidos.POST("/abrir-cuenta",
				middlewares.RequireRoles(models.RoleManager, models.RoleWaiter),
				orderCtrl.OpenTab)
			pedidos.POST("/ordenar",
				middlewares.RequireRoles(models.RoleManager, models.RoleWaiter),
				orderCtrl.PlaceOrder)
		}

		cocina := api.Group("/cocina")
		cocina.Use(middlewares.RequireRoles(models.RoleManager, models.RoleCook))
		{
			cocina.GET("/pendientes", kitchenCtrl.GetPendingOrders)
			cocina.PATCH("/pedidos/:id/estado", kitchenCtrl.UpdateOrderState)
		}

		pagos := api.Group("/pagos")
		pagos.Use(middlewares.RequireRoles(models.RoleManager, models.RoleReceptionist, models.RoleWaiter))
		{
			pagos.GET("/cuenta/:cuenta_id", paymentCtrl.GetTabSummary)
			pagos.POST("/pagar", paymentCtrl.SettleTab)
		}
	}

	return r
}
