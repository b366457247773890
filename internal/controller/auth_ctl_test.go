package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"testing"

	"supplier_erp_v1/internal/middleware"
	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"
	"supplier_erp_v1/internal/service"

	"github.com/gin-gonic/gin"
)

func setupAuthCtlRouter(t *testing.T) *gin.Engine {
	gin.SetMode(gin.TestMode)

	hash, err := service.HashPassword("123456")
	if err != nil {
		t.Fatalf("生成密码哈希失败: %v", err)
	}
	users := repository.NewInMemoryUserStore([]model.SysUser{
		{ID: "1", Email: "sham@gmail.com", Name: "Sham", PasswordHash: hash},
	})

	ctl := NewAuthController(service.NewAuthService(users))

	r := gin.New()
	r.POST("/api/auth/login", ctl.Login)
	return r
}

func TestAuthCtl_Login_Success(t *testing.T) {
	r := setupAuthCtlRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "sham@gmail.com",
		"password": "123456",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("code = %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Name  string `json:"name"`
		} `json:"user"`
	}
	json.Unmarshal(w.Body.Bytes(), &resp)

	if resp.Token == "" {
		t.Fatal("应返回 token")
	}
	if resp.User.ID != "1" || resp.User.Email != "sham@gmail.com" || resp.User.Name != "Sham" {
		t.Errorf("user = %+v", resp.User)
	}

	// token 里的 claims 要能解回同一个用户
	claims, err := middleware.ParseToken(resp.Token)
	if err != nil {
		t.Fatalf("解析 token 失败: %v", err)
	}
	if claims.UserID != "1" || claims.Email != "sham@gmail.com" || claims.Name != "Sham" {
		t.Errorf("claims = %+v", claims)
	}
}

func TestAuthCtl_Login_WrongPassword(t *testing.T) {
	r := setupAuthCtlRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "sham@gmail.com",
		"password": "wrong",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("Invalid credentials")) {
		t.Errorf("body = %s", w.Body.String())
	}
}

func TestAuthCtl_Login_UnknownEmail(t *testing.T) {
	r := setupAuthCtlRouter(t)

	w := doJSON(r, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "nobody@example.com",
		"password": "123456",
	})
	if w.Code != http.StatusUnauthorized {
		t.Errorf("code = %d, want 401", w.Code)
	}
}
