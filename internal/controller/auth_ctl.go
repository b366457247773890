package controller

import (
	"errors"
	"net/http"

	"supplier_erp_v1/internal/api/dto"
	"supplier_erp_v1/internal/middleware"
	"supplier_erp_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	authService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Login 账号登录
// @Summary 登录
// @Description 邮箱+密码登录，成功返回 24 小时有效的 JWT
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.LoginReq true "登录参数"
// @Success 200 {object} map[string]interface{} "{"token": "...", "user": {...}}"
// @Failure 401 {object} map[string]string "凭证错误"
// @Router /api/auth/login [post]
func (h *AuthController) Login(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error logging in", "error": err.Error()})
		return
	}

	token, err := middleware.GenerateToken(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error generating token", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"user": dto.UserResp{
			ID:    user.ID,
			Email: user.Email,
			Name:  user.Name,
		},
	})
}
