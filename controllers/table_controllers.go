package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/DazJ14/restaurant-api/services"
	"github.com/DazJ14/restaurant-api/utils"
)

type TableController struct {
	Service *services.TableService
}

func NewTableController(service *services.TableService) *TableController {
	return &TableController{Service: service}
}

// GetAllTables -> todas las mesas con su cuenta abierta si la tienen
func (tc *TableController) GetAllTables(c *gin.Context) {
	tables, err := tc.Service.ListTables()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, tables)
}

// MergeTables -> fusiona mesas secundarias con una principal
func (tc *TableController) MergeTables(c *gin.Context) {
	var req struct {
		PrincipalID uint   `json:"mesa_principal_id" binding:"required,gt=0"`
		MemberIDs   []uint `json:"mesas_a_fusionar" binding:"required,min=1"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	if err := tc.Service.MergeTables(req.PrincipalID, req.MemberIDs); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.InfoLogger.Printf("Mesas %v fusionadas con la mesa %d", req.MemberIDs, req.PrincipalID)
	c.JSON(http.StatusOK, gin.H{"mensaje": "Mesas fusionadas y ocupadas exitosamente"})
}
