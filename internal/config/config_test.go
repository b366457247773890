package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want 8080", cfg.Server.Port)
	}
	if cfg.JWT.TokenTTL != 24*time.Hour {
		t.Errorf("jwt ttl = %v, want 24h", cfg.JWT.TokenTTL)
	}
	if cfg.Upload.Provider != "local" || cfg.Upload.Dir != "uploads" {
		t.Errorf("upload = %+v", cfg.Upload)
	}

	// 默认的种子账号
	if len(cfg.Users) != 1 {
		t.Fatalf("默认用户数 = %d, want 1", len(cfg.Users))
	}
	if cfg.Users[0].Email != "sham@gmail.com" {
		t.Errorf("email = %s", cfg.Users[0].Email)
	}
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SUPPLIER_SERVER_PORT", "9090")
	t.Setenv("JWT_SECRET", "env-secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %s, want 9090 (环境变量覆盖)", cfg.Server.Port)
	}
	if cfg.JWT.Secret != "env-secret" {
		t.Errorf("secret = %s, want env-secret (旧部署脚本的变量名)", cfg.JWT.Secret)
	}
}
