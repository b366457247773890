package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config 进程级配置，启动后只读
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	JWT      JWTConfig      `mapstructure:"jwt"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Users    []SeedUser     `mapstructure:"users"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type DatabaseConfig struct {
	DSN string `mapstructure:"dsn"`
}

type JWTConfig struct {
	Secret   string        `mapstructure:"secret"`
	TokenTTL time.Duration `mapstructure:"ttl"`
}

type UploadConfig struct {
	Provider string `mapstructure:"provider"` // local | s3
	Dir      string `mapstructure:"dir"`

	// s3 (provider=s3 时生效)
	Bucket    string `mapstructure:"bucket"`
	Region    string `mapstructure:"region"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	CDNDomain string `mapstructure:"cdn_domain"`
	BasePath  string `mapstructure:"base_path"`
}

// SeedUser 启动时注入的静态账号
// password 在配置里是明文，进程内立刻换成 bcrypt 哈希，接入身份系统前的过渡方案
type SeedUser struct {
	ID       string `mapstructure:"id"`
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// Load 读取配置
// 优先级：环境变量 (SUPPLIER_ 前缀) > config.yaml > 默认值
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", "8080")
	v.SetDefault("database.dsn", "host=localhost user=supplier_admin password=supplier_admin dbname=supplier_erp port=5432 sslmode=disable")
	v.SetDefault("jwt.secret", "your-secret-key")
	v.SetDefault("jwt.ttl", 24*time.Hour)
	v.SetDefault("upload.provider", "local")
	v.SetDefault("upload.dir", "uploads")
	v.SetDefault("users", []map[string]interface{}{
		{"id": "1", "email": "sham@gmail.com", "password": "123456", "name": "Sham"},
	})

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.SetEnvPrefix("SUPPLIER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 旧版部署脚本只暴露 JWT_SECRET，继续认这个名字
	_ = v.BindEnv("jwt.secret", "SUPPLIER_JWT_SECRET", "JWT_SECRET")

	if err := v.ReadInConfig(); err != nil {
		// 没有配置文件就全走默认值+环境变量
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	return &cfg, nil
}
