package middleware

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// ==================== JWT 配置 ====================

// JWTConfig JWT 配置
type JWTConfig struct {
	SecretKey string        // 签名密钥
	TokenTTL  time.Duration // Token 有效期
	Issuer    string        // 签发者
}

// DefaultJWTConfig 默认配置
func DefaultJWTConfig() *JWTConfig {
	return &JWTConfig{
		SecretKey: "supplier-erp-secret-key-change-in-production",
		TokenTTL:  24 * time.Hour,
		Issuer:    "supplier-erp",
	}
}

// 全局配置
var jwtConfig = DefaultJWTConfig()

// SetJWTConfig 设置 JWT 配置
func SetJWTConfig(cfg *JWTConfig) {
	jwtConfig = cfg
}

// GetJWTConfig 获取 JWT 配置
func GetJWTConfig() *JWTConfig {
	return jwtConfig
}

// ==================== Claims 定义 ====================

// UserClaims 用户声明
// 字段名沿用登录接口既有的 payload 约定
type UserClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

// ==================== Token 生成与解析 ====================

// GenerateToken 为用户签发 Token，有效期 24 小时
func GenerateToken(user *model.SysUser) (string, error) {
	now := time.Now()
	claims := &UserClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    jwtConfig.Issuer,
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(jwtConfig.TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(jwtConfig.SecretKey))
}

// ParseToken 解析 Token
// 签名不对、格式损坏、已过期都会返回 error（过期由 jwt/v5 的校验器兜底）
func ParseToken(tokenString string) (*UserClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &UserClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return []byte(jwtConfig.SecretKey), nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*UserClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, errors.New("invalid token")
}

// ==================== Gin 中间件 ====================

// Context Keys
const (
	ContextKeyUserID = "user_id"
	ContextKeyUser   = "current_user"
	ContextKeyClaims = "claims"
)

// JWTAuth JWT 认证中间件
// 除登录和静态文件外的所有路由都挂这个
// 响应里的 message 文案是前端在用的，保持原样
func JWTAuth(users repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 获取 Authorization Header，必须是 Bearer 格式
		authHeader := c.GetHeader("Authorization")
		var tokenString string
		if strings.HasPrefix(authHeader, "Bearer ") {
			tokenString = strings.TrimPrefix(authHeader, "Bearer ")
		}

		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Token is missing",
			})
			c.Abort()
			return
		}

		// 解析 Token
		claims, err := ParseToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Token is invalid",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		// 到凭证存储里确认用户还存在
		user, ok := users.FindByID(claims.UserID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "User not found",
			})
			c.Abort()
			return
		}

		// 注入用户信息到 Context
		c.Set(ContextKeyUserID, user.ID)
		c.Set(ContextKeyUser, user)
		c.Set(ContextKeyClaims, claims)

		c.Next()
	}
}

// ==================== 辅助函数 ====================

// GetCurrentUser 从 Context 获取当前用户
func GetCurrentUser(c *gin.Context) *model.SysUser {
	if v, exists := c.Get(ContextKeyUser); exists {
		if user, ok := v.(*model.SysUser); ok {
			return user
		}
	}
	return nil
}

// GetUserID 从 Context 获取用户 ID
func GetUserID(c *gin.Context) string {
	if id, exists := c.Get(ContextKeyUserID); exists {
		return id.(string)
	}
	return ""
}

// GetUserClaims 从 Context 获取完整 Claims
func GetUserClaims(c *gin.Context) *UserClaims {
	if claims, exists := c.Get(ContextKeyClaims); exists {
		return claims.(*UserClaims)
	}
	return nil
}
