package router

import (
	"supplier_erp_v1/internal/controller"
	"supplier_erp_v1/internal/middleware"
	"supplier_erp_v1/internal/repository"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Controllers 控制器集合
type Controllers struct {
	Auth     *controller.AuthController
	Supplier *controller.SupplierController
	Upload   *controller.UploadController
}

// SetupRouter 注册所有路由
// 除登录和 /uploads 静态文件外，全部挂 JWT 认证
func SetupRouter(ctls *Controllers, users repository.UserStore, logger *zap.Logger, uploadDir string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLog(logger))
	r.Use(middleware.CORS())

	// 已上传文件直接静态提供，gin 的 Static 自带目录逃逸防护
	r.Static("/uploads", uploadDir)

	api := r.Group("/api")
	{
		// auth 鉴权组，登录本身不需要 token
		auth := api.Group("/auth")
		{
			// POST /api/auth/login
			auth.POST("/login", ctls.Auth.Login)
		}

		// 其余全部过认证门
		protected := api.Group("")
		protected.Use(middleware.JWTAuth(users))
		{
			suppliers := protected.Group("/suppliers")
			{
				// GET /api/suppliers
				suppliers.GET("", ctls.Supplier.GetList)
				// export 是静态段，gin 的路由优先级保证它不会被 :id 吃掉
				suppliers.GET("/export", ctls.Supplier.Export)
				suppliers.GET("/:id", ctls.Supplier.GetDetail)
				suppliers.POST("", ctls.Supplier.Create)
				suppliers.PUT("/:id", ctls.Supplier.Update)
				suppliers.DELETE("/:id", ctls.Supplier.Delete)
			}

			// POST /api/upload
			protected.POST("/upload", ctls.Upload.Upload)
		}
	}

	return r
}
