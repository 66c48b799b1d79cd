package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DazJ14/restaurant-api/services"
	"github.com/DazJ14/restaurant-api/utils"
)

type OrderController struct {
	Tabs    *services.TabService
	Orders  *services.OrderService
	Catalog *services.CatalogService
}

func NewOrderController(tabs *services.TabService, orders *services.OrderService, catalog *services.CatalogService) *OrderController {
	return &OrderController{Tabs: tabs, Orders: orders, Catalog: catalog}
}

// GetMenu -> productos disponibles para tomar la orden
func (oc *OrderController) GetMenu(c *gin.Context) {
	menu, err := oc.Catalog.ListMenu()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, menu)
}

// OpenTab -> abre una cuenta para la mesa indicada
func (oc *OrderController) OpenTab(c *gin.Context) {
	var req struct {
		TableID uint `json:"mesa_id" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	tab, err := oc.Tabs.OpenTab(req.TableID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Cuenta %d abierta para la mesa %d", tab.ID, req.TableID)
	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Cuenta abierta exitosamente",
		"cuenta": gin.H{
			"id":        tab.ID,
			"creada_en": tab.CreatedAt,
		},
	})
}

// PlaceOrder -> envía un lote de platillos a cocina
func (oc *OrderController) PlaceOrder(c *gin.Context) {
	var req struct {
		TabID uint                      `json:"cuenta_id" binding:"required,gt=0"`
		Items []services.OrderItemInput `json:"platillos" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	orders, err := oc.Orders.PlaceOrder(req.TabID, req.Items)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Orden de %d platillos registrada en la cuenta %d", len(orders), req.TabID)
	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Orden enviada a cocina exitosamente",
		"pedidos": orders,
	})
}
