package service

import (
	"context"
	"errors"
	"math"
	"time"

	"supplier_erp_v1/internal/api/dto"
	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"

	"go.uber.org/zap"
)

// ErrMissingFields 创建时缺少必填字段 (companyName / vendorName / primaryEmail)
var ErrMissingFields = errors.New("missing required fields")

type SupplierService struct {
	repo   *repository.SupplierRepo
	logger *zap.Logger
}

func NewSupplierService(repo *repository.SupplierRepo, logger *zap.Logger) *SupplierService {
	return &SupplierService{repo: repo, logger: logger}
}

// ==========================================
// 1. 查询
// ==========================================

// SupplierPage 列表响应
type SupplierPage struct {
	Suppliers  []model.Supplier `json:"suppliers"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	Limit      int              `json:"limit"`
	TotalPages int              `json:"totalPages"`
}

// GetSuppliers 分页列表 + companyName 模糊搜索
// page/limit 非法时回落到 1/10
func (s *SupplierService) GetSuppliers(ctx context.Context, q dto.ListSuppliersQuery) (*SupplierPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	list, total, err := s.repo.List(ctx, repository.SupplierFilter{
		Search: q.Search,
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return nil, err
	}

	if list == nil {
		list = []model.Supplier{}
	}

	return &SupplierPage{
		Suppliers:  list,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: int(math.Ceil(float64(total) / float64(limit))),
	}, nil
}

// GetSupplier 单条详情
func (s *SupplierService) GetSupplier(ctx context.Context, id string) (*model.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

// ==========================================
// 2. 写操作
// ==========================================

// CreateSupplier 创建供应商
// 必填：companyName / vendorName / primaryEmail
// 可选字段缺省为空串，status 缺省 Active，附件缺省空列表
func (s *SupplierService) CreateSupplier(ctx context.Context, req dto.CreateSupplierReq) (string, error) {
	if req.CompanyName == "" || req.VendorName == "" || req.PrimaryEmail == "" {
		return "", ErrMissingFields
	}

	status := req.Status
	if status == "" {
		status = model.SupplierStatusActive
	}
	attachments := req.Attachments
	if attachments == nil {
		attachments = []string{}
	}

	now := time.Now().UTC()
	supplier := &model.Supplier{
		CompanyName:    req.CompanyName,
		VendorName:     req.VendorName,
		MobileNumber:   req.PrimaryPhone,
		Email:          req.PrimaryEmail,
		SecondaryEmail: req.SecondaryEmail,
		SecondaryPhone: req.SecondaryPhone,
		PanNumber:      req.Pan,
		GstinNumber:    req.GstNumber,
		SupplierType:   req.SupplierType,
		Category:       req.Category,
		Website:        req.Website,
		AddressLine1:   req.AddressLine1,
		AddressLine2:   req.AddressLine2,
		District:       req.District,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		Country:        req.Country,
		AccountName:    req.AccountName,
		AccountNumber:  req.AccountNumber,
		BankBranchName: req.BankBranchName,
		IfscCode:       req.IfscCode,
		Status:         status,
		Notes:          req.Notes,
		Attachments:    attachments,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, supplier); err != nil {
		return "", err
	}

	return supplier.ID, nil
}

// UpdateSupplier 部分更新
// 请求里没带的字段保留原值，updatedAt 总是刷新，createdAt 不动
func (s *SupplierService) UpdateSupplier(ctx context.Context, id string, req dto.UpdateSupplierReq) error {
	// 先确认存在，不存在要 404 而不是静默成功
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	setString(fields, "company_name", req.CompanyName)
	setString(fields, "vendor_name", req.VendorName)
	setString(fields, "mobile_number", req.MobileNumber)
	setString(fields, "email", req.Email)
	setString(fields, "secondary_email", req.SecondaryEmail)
	setString(fields, "secondary_phone", req.SecondaryPhone)
	setString(fields, "pan_number", req.PanNumber)
	setString(fields, "gstin_number", req.GstinNumber)
	setString(fields, "supplier_type", req.SupplierType)
	setString(fields, "category", req.Category)
	setString(fields, "website", req.Website)
	setString(fields, "address_line1", req.AddressLine1)
	setString(fields, "address_line2", req.AddressLine2)
	setString(fields, "district", req.District)
	setString(fields, "city", req.City)
	setString(fields, "state", req.State)
	setString(fields, "pincode", req.Pincode)
	setString(fields, "country", req.Country)
	setString(fields, "account_name", req.AccountName)
	setString(fields, "account_number", req.AccountNumber)
	setString(fields, "bank_branch_name", req.BankBranchName)
	setString(fields, "ifsc_code", req.IfscCode)
	setString(fields, "status", req.Status)
	setString(fields, "notes", req.Notes)
	if req.Attachments != nil {
		fields["attachments"] = model.StringList(*req.Attachments)
	}

	s.logger.Debug("updating supplier",
		zap.String("supplier_id", id),
		zap.Int("field_count", len(fields)))

	return s.repo.Updates(ctx, id, fields)
}

// DeleteSupplier 删除供应商（物理删除）
func (s *SupplierService) DeleteSupplier(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// setString 指针非 nil 才写入更新集
func setString(fields map[string]interface{}, column string, value *string) {
	if value != nil {
		fields[column] = *value
	}
}
