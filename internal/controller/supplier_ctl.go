package controller

import (
	"errors"
	"net/http"

	"supplier_erp_v1/internal/api/dto"
	"supplier_erp_v1/internal/repository"
	"supplier_erp_v1/internal/service"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type SupplierController struct {
	supplierService *service.SupplierService
	exportService   *service.ExportService
}

func NewSupplierController(supplierService *service.SupplierService, exportService *service.ExportService) *SupplierController {
	return &SupplierController{
		supplierService: supplierService,
		exportService:   exportService,
	}
}

// ==========================================
// 1. 读操作 (List / Detail / Export)
// ==========================================

// GetList 获取供应商列表
// @Summary 获取供应商分页列表
// @Description 支持 companyName 模糊搜索（不区分大小写），默认 page=1, limit=10
// @Tags Supplier
// @Accept json
// @Produce json
// @Param page query int false "页码 (默认1)"
// @Param limit query int false "每页数量 (默认10)"
// @Param search query string false "companyName 模糊搜索"
// @Success 200 {object} service.SupplierPage
// @Failure 500 {object} map[string]string "服务器错误"
// @Router /api/suppliers [get]
func (h *SupplierController) GetList(c *gin.Context) {
	var q dto.ListSuppliersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	page, err := h.supplierService.GetSuppliers(c.Request.Context(), q)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching suppliers", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GetDetail 获取供应商详情
// @Summary 获取单个供应商
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "供应商 ID (uuid)"
// @Success 200 {object} map[string]model.Supplier "{"supplier": {...}}"
// @Failure 400 {object} map[string]string "ID 格式错误"
// @Failure 404 {object} map[string]string "不存在"
// @Router /api/suppliers/{id} [get]
func (h *SupplierController) GetDetail(c *gin.Context) {
	id := c.Param("id")

	supplier, err := h.supplierService.GetSupplier(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidSupplierID):
			// 旧版对坏 ID 返回 500，这里是有意改成 400
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid supplier id"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error fetching supplier", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"supplier": supplier})
}

// Export 导出供应商 CSV
// @Summary 全量导出供应商
// @Tags Supplier
// @Produce plain
// @Success 200 {string} string "CSV 内容"
// @Failure 500 {object} map[string]string "服务器错误"
// @Router /api/suppliers/export [get]
func (h *SupplierController) Export(c *gin.Context) {
	content, err := h.exportService.ExportCSV(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error exporting suppliers", "error": err.Error()})
		return
	}

	c.Header("Content-Disposition", "attachment; filename="+service.ExportFilename)
	c.Data(http.StatusOK, "text/csv", []byte(content))
}

// ==========================================
// 2. 写操作 (Create / Update / Delete)
// ==========================================

// Create 创建供应商
// @Summary 创建供应商
// @Description companyName / vendorName / primaryEmail 必填
// @Tags Supplier
// @Accept json
// @Produce json
// @Param request body dto.CreateSupplierReq true "创建参数"
// @Success 200 {object} map[string]string "{"message": "...", "supplierId": "..."}"
// @Failure 400 {object} map[string]string "缺少必填字段"
// @Router /api/suppliers [post]
func (h *SupplierController) Create(c *gin.Context) {
	var req dto.CreateSupplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	id, err := h.supplierService.CreateSupplier(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrMissingFields) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error adding supplier", "error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Supplier added successfully",
		"supplierId": id,
	})
}

// Update 更新供应商
// @Summary 部分更新供应商
// @Description 请求里出现的字段才会覆盖，没出现的保留原值
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "供应商 ID (uuid)"
// @Param request body dto.UpdateSupplierReq true "更新参数"
// @Success 200 {object} map[string]string "{"message": "...", "supplierId": "..."}"
// @Failure 404 {object} map[string]string "不存在"
// @Router /api/suppliers/{id} [put]
func (h *SupplierController) Update(c *gin.Context) {
	id := c.Param("id")

	var req dto.UpdateSupplierReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
		return
	}

	if err := h.supplierService.UpdateSupplier(c.Request.Context(), id, req); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidSupplierID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid supplier id"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error updating supplier", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Supplier updated successfully",
		"supplierId": id,
	})
}

// Delete 删除供应商
// @Summary 删除供应商
// @Description 物理删除，不清理已上传的附件文件
// @Tags Supplier
// @Accept json
// @Produce json
// @Param id path string true "供应商 ID (uuid)"
// @Success 200 {object} map[string]string "{"message": "...", "supplierId": "..."}"
// @Failure 404 {object} map[string]string "不存在"
// @Router /api/suppliers/{id} [delete]
func (h *SupplierController) Delete(c *gin.Context) {
	id := c.Param("id")

	if err := h.supplierService.DeleteSupplier(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, repository.ErrInvalidSupplierID):
			c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid supplier id"})
		case errors.Is(err, gorm.ErrRecordNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Supplier not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error deleting supplier", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Supplier deleted successfully",
		"supplierId": id,
	})
}
