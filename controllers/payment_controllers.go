package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/DazJ14/restaurant-api/services"
	"github.com/DazJ14/restaurant-api/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
}

func NewPaymentController(payments *services.PaymentService) *PaymentController {
	return &PaymentController{Payments: payments}
}

// GetTabSummary -> cuenta separada por comensal y gran total
func (pc *PaymentController) GetTabSummary(c *gin.Context) {
	tabID, err := strconv.ParseUint(c.Param("cuenta_id"), 10, 32)
	if err != nil || tabID == 0 {
		utils.RespondError(c, http.StatusBadRequest, fmt.Errorf("ID de cuenta inválido"))
		return
	}

	summary, err := pc.Payments.GetTabSummary(uint(tabID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SettleTab -> registra los pagos y libera la mesa (y sus fusionadas)
func (pc *PaymentController) SettleTab(c *gin.Context) {
	var req struct {
		TabID    uint                    `json:"cuenta_id" binding:"required,gt=0"`
		Payments []services.PaymentInput `json:"pagos" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := pc.Payments.SettleTab(req.TabID, req.Payments); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Cuenta %d pagada con %d pagos", req.TabID, len(req.Payments))
	c.JSON(http.StatusOK, gin.H{"mensaje": "Pago procesado y mesa liberada exitosamente"})
}
