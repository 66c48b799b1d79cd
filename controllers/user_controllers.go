package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/DazJ14/restaurant-api/models"
	"github.com/DazJ14/restaurant-api/utils"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// CreateUser -> alta de personal (solo gerente)
func (uc *UserController) CreateUser(c *gin.Context) {
	var req struct {
		Name     string `json:"nombre" binding:"required,min=2"`
		Username string `json:"username" binding:"required,min=3"`
		Password string `json:"password" binding:"required,min=6"`
		Role     string `json:"rol" binding:"required,oneof=gerente recepcionista mesero cocinero"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var existing models.User
	if err := uc.DB.Where("username = ?", req.Username).First(&existing).Error; err == nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("El nombre de usuario ya está en uso"))
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	user := models.User{
		Name:         req.Name,
		Username:     req.Username,
		PasswordHash: string(hashed),
		Role:         req.Role,
		Active:       true,
	}
	if err := uc.DB.Create(&user).Error; err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Usuario creado: %s (rol=%s)", user.Username, user.Role)
	c.JSON(http.StatusCreated, gin.H{
		"mensaje": "Usuario creado exitosamente",
		"usuario": user,
	})
}

// Login -> valida credenciales y devuelve un JWT
func (uc *UserController) Login(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err)
		return
	}

	var user models.User
	if err := uc.DB.Where("username = ?", req.Username).First(&user).Error; err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Usuario o contraseña incorrectos"))
		return
	}

	if !user.Active {
		utils.RespondError(c, http.StatusForbidden, errors.New("Esta cuenta ha sido desactivada"))
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("Usuario o contraseña incorrectos"))
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Role)
	if err != nil {
		utils.RespondError(c, http.StatusInternalServerError, err)
		return
	}

	utils.InfoLogger.Printf("Inicio de sesión: %s (rol=%s)", user.Username, user.Role)
	c.JSON(http.StatusOK, gin.H{
		"mensaje": "Inicio de sesión exitoso",
		"token":   token,
		"usuario": gin.H{
			"id":     user.ID,
			"nombre": user.Name,
			"rol":    user.Role,
		},
	})
}
