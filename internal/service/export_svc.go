package service

import (
	"context"
	"strings"

	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"
)

// ExportFilename 下载时的文件名
const ExportFilename = "suppliers.csv"

// 导出列，顺序固定
var exportHeaders = []string{
	"Vendor Name",
	"Company Name",
	"Mobile Number",
	"Email",
	"GSTIN Number",
	"PAN Number",
	"Status",
}

type ExportService struct {
	repo *repository.SupplierRepo
}

func NewExportService(repo *repository.SupplierRepo) *ExportService {
	return &ExportService{repo: repo}
}

// ExportCSV 全量导出供应商为 CSV
// 表头行不加引号，数据行每个字段都加引号、内部引号翻倍
// 这是前端解析在依赖的格式，不要换成 encoding/csv 的按需引号
func (s *ExportService) ExportCSV(ctx context.Context) (string, error) {
	suppliers, err := s.repo.FindAll(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	b.WriteString("\n")

	for _, sp := range suppliers {
		status := sp.Status
		if status == "" {
			status = model.SupplierStatusActive
		}
		row := []string{
			sp.VendorName,
			sp.CompanyName,
			sp.MobileNumber,
			sp.Email,
			sp.GstinNumber,
			sp.PanNumber,
			status,
		}
		for i, field := range row {
			row[i] = `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
		}
		b.WriteString(strings.Join(row, ","))
		b.WriteString("\n")
	}

	return b.String(), nil
}
