package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DazJ14/restaurant-api/services"
	"github.com/DazJ14/restaurant-api/utils"
)

type KitchenController struct {
	Orders *services.OrderService
}

func NewKitchenController(orders *services.OrderService) *KitchenController {
	return &KitchenController{Orders: orders}
}

// GetPendingOrders -> fila FIFO de cocina (pendiente y preparando)
func (kc *KitchenController) GetPendingOrders(c *gin.Context) {
	rows, err := kc.Orders.ListPending()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// UpdateOrderState -> el cocinero avanza un pedido de estado
func (kc *KitchenController) UpdateOrderState(c *gin.Context) {
	orderID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || orderID == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("ID de pedido inválido"))
		return
	}

	var req struct {
		NewState string `json:"nuevo_estado" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	order, err := kc.Orders.AdvanceState(uint(orderID), req.NewState)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Pedido %d ahora en estado %s", order.ID, order.Status)
	c.JSON(http.StatusOK, gin.H{
		"mensaje": fmt.Sprintf("Estado actualizado a '%s'", order.Status),
		"pedido":  order,
	})
}
