package controller

import (
	"errors"
	"io"
	"net/http"

	"supplier_erp_v1/internal/service"

	"github.com/gin-gonic/gin"
)

type UploadController struct {
	storage service.StorageProvider
}

func NewUploadController(storage service.StorageProvider) *UploadController {
	return &UploadController{storage: storage}
}

// Upload 上传附件
// @Summary 上传供应商附件
// @Description multipart 上传，白名单 pdf/png/jpg/jpeg/doc/docx/xls/xlsx，上限 16MB
// @Tags Upload
// @Accept mpfd
// @Produce json
// @Param file formData file true "文件"
// @Success 200 {object} map[string]string "{"message": "...", "url": "...", "name": "..."}"
// @Failure 400 {object} map[string]string "没有文件或类型不允许"
// @Failure 413 {object} map[string]string "文件超限"
// @Router /api/upload [post]
func (h *UploadController) Upload(c *gin.Context) {
	// 超限的请求不进存储逻辑：申报长度先拦一道，流式 body 再由 MaxBytesReader 兜底
	if c.Request.ContentLength > service.MaxUploadSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File too large"})
		return
	}
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, service.MaxUploadSize)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"message": "File too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file part"})
		return
	}
	defer file.Close()

	if header.Filename == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No selected file"})
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading file", "error": err.Error()})
		return
	}

	stored, err := h.storage.Store(c.Request.Context(), data, header.Filename)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTypeNotAllowed):
			c.JSON(http.StatusBadRequest, gin.H{"message": "File type not allowed"})
		case errors.Is(err, service.ErrNoFile):
			c.JSON(http.StatusBadRequest, gin.H{"message": "No selected file"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Error uploading file", "error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "File uploaded successfully",
		"url":     stored.URL,
		"name":    stored.Name,
	})
}
