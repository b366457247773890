package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"supplier_erp_v1/internal/config"
	"supplier_erp_v1/internal/controller"
	"supplier_erp_v1/internal/middleware"
	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"
	"supplier_erp_v1/internal/router"
	"supplier_erp_v1/internal/service"
	"supplier_erp_v1/pkg/database"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	// 1. 加载配置
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 2. 日志
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("初始化日志失败: %v", err)
	}
	defer logger.Sync()

	// 3. 数据库
	db, err := database.InitDB(cfg.Database.DSN, &model.Supplier{})
	if err != nil {
		logger.Fatal("初始化数据库失败", zap.Error(err))
	}

	// 4. 初始化依赖
	deps, err := initDependencies(cfg, db, logger)
	if err != nil {
		logger.Fatal("初始化依赖失败", zap.Error(err))
	}

	// 5. 路由
	r := router.SetupRouter(deps.Controllers, deps.Users, logger, cfg.Upload.Dir)

	// 6. 启动服务
	startServer(r, cfg.Server.Port, logger)
}

// ==================== 依赖容器 ====================

// Dependencies 依赖容器
type Dependencies struct {
	DB          *gorm.DB
	Users       repository.UserStore
	Controllers *router.Controllers
	Services    *Services
}

// Services 服务集合
type Services struct {
	Auth     *service.AuthService
	Supplier *service.SupplierService
	Export   *service.ExportService
	Storage  service.StorageProvider
}

// ==================== 初始化函数 ====================

// initDependencies 初始化所有依赖
func initDependencies(cfg *config.Config, db *gorm.DB, logger *zap.Logger) (*Dependencies, error) {
	// JWT 全局配置
	middleware.SetJWTConfig(&middleware.JWTConfig{
		SecretKey: cfg.JWT.Secret,
		TokenTTL:  cfg.JWT.TokenTTL,
		Issuer:    "supplier-erp",
	})

	// -------- 凭证存储 --------
	users, err := seedUserStore(cfg.Users)
	if err != nil {
		return nil, err
	}

	// -------- Repo 层 --------
	supplierRepo := repository.NewSupplierRepo(db)

	// -------- 存储服务 --------
	storage, err := service.NewStorageProvider(&service.StorageConfig{
		Provider:  cfg.Upload.Provider,
		UploadDir: cfg.Upload.Dir,
		Bucket:    cfg.Upload.Bucket,
		Region:    cfg.Upload.Region,
		AccessKey: cfg.Upload.AccessKey,
		SecretKey: cfg.Upload.SecretKey,
		CDNDomain: cfg.Upload.CDNDomain,
		BasePath:  cfg.Upload.BasePath,
	})
	if err != nil {
		return nil, err
	}

	// -------- 业务服务 --------
	services := &Services{
		Auth:     service.NewAuthService(users),
		Supplier: service.NewSupplierService(supplierRepo, logger),
		Export:   service.NewExportService(supplierRepo),
		Storage:  storage,
	}

	// -------- Controller 层 --------
	controllers := &router.Controllers{
		Auth:     controller.NewAuthController(services.Auth),
		Supplier: controller.NewSupplierController(services.Supplier, services.Export),
		Upload:   controller.NewUploadController(services.Storage),
	}

	return &Dependencies{
		DB:          db,
		Users:       users,
		Controllers: controllers,
		Services:    services,
	}, nil
}

// seedUserStore 把配置里的账号种子转成只读凭证存储
// 明文密码在这里换成 bcrypt 哈希，之后进程里不再保留明文
func seedUserStore(seeds []config.SeedUser) (repository.UserStore, error) {
	users := make([]model.SysUser, 0, len(seeds))
	for _, seed := range seeds {
		hash, err := service.HashPassword(seed.Password)
		if err != nil {
			return nil, err
		}
		users = append(users, model.SysUser{
			ID:           seed.ID,
			Email:        seed.Email,
			Name:         seed.Name,
			PasswordHash: hash,
		})
	}
	return repository.NewInMemoryUserStore(users), nil
}

// ==================== 服务启动 ====================

// startServer 启动服务
func startServer(r *gin.Engine, port string, logger *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + port,
		Handler: r,
	}

	// 异步启动服务
	go func() {
		logger.Info("服务启动", zap.String("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("服务启动失败", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("正在关闭服务...")

	// 优雅关闭，最多等待 10 秒
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("服务强制关闭", zap.Error(err))
	}

	logger.Info("服务已退出")
}
