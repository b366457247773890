package service

import (
	"context"
	"errors"
	"testing"

	"supplier_erp_v1/internal/api/dto"
	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ==================== 测试辅助 ====================

func setupSupplierService(t *testing.T) (*SupplierService, *repository.SupplierRepo) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("连接测试数据库失败: %v", err)
	}
	db.AutoMigrate(&model.Supplier{})

	repo := repository.NewSupplierRepo(db)
	return NewSupplierService(repo, zap.NewNop()), repo
}

func validCreateReq() dto.CreateSupplierReq {
	return dto.CreateSupplierReq{
		CompanyName:  "Acme Corp",
		VendorName:   "Acme Vendor",
		PrimaryEmail: "acme@example.com",
	}
}

// ==================== 单元测试 ====================

func TestSupplierService_Create_MissingFields(t *testing.T) {
	svc, _ := setupSupplierService(t)
	ctx := context.Background()

	cases := []dto.CreateSupplierReq{
		{VendorName: "v", PrimaryEmail: "e@x.com"}, // 缺 companyName
		{CompanyName: "c", PrimaryEmail: "e@x.com"}, // 缺 vendorName
		{CompanyName: "c", VendorName: "v"},         // 缺 primaryEmail
	}
	for _, req := range cases {
		if _, err := svc.CreateSupplier(ctx, req); !errors.Is(err, ErrMissingFields) {
			t.Errorf("req %+v: err = %v, want ErrMissingFields", req, err)
		}
	}
}

func TestSupplierService_Create_Defaults(t *testing.T) {
	svc, repo := setupSupplierService(t)
	ctx := context.Background()

	id, err := svc.CreateSupplier(ctx, validCreateReq())
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	created, err := repo.GetByID(ctx, id)
	if err != nil {
		t.Fatalf("查询失败: %v", err)
	}

	// 可选字段缺省为空串，status 缺省 Active，附件缺省空列表
	if created.Status != model.SupplierStatusActive {
		t.Errorf("status = %s, want Active", created.Status)
	}
	if created.MobileNumber != "" || created.Notes != "" || created.City != "" {
		t.Error("未提供的可选字段应为空串")
	}
	if created.Attachments == nil || len(created.Attachments) != 0 {
		t.Errorf("attachments = %v, want 空列表", created.Attachments)
	}
	if created.CreatedAt.IsZero() || !created.CreatedAt.Equal(created.UpdatedAt) {
		t.Error("创建时 createdAt 应等于 updatedAt")
	}
}

func TestSupplierService_Create_FieldMapping(t *testing.T) {
	svc, repo := setupSupplierService(t)
	ctx := context.Background()

	req := validCreateReq()
	req.PrimaryPhone = "9876543210"
	req.Pan = "ABCDE1234F"
	req.GstNumber = "22ABCDE1234F1Z5"

	id, err := svc.CreateSupplier(ctx, req)
	if err != nil {
		t.Fatalf("创建失败: %v", err)
	}

	created, _ := repo.GetByID(ctx, id)
	// 创建表单字段名 -> 落库字段名
	if created.MobileNumber != "9876543210" {
		t.Errorf("primaryPhone 应落到 mobileNumber, got %s", created.MobileNumber)
	}
	if created.Email != "acme@example.com" {
		t.Errorf("primaryEmail 应落到 email, got %s", created.Email)
	}
	if created.PanNumber != "ABCDE1234F" {
		t.Errorf("pan 应落到 panNumber, got %s", created.PanNumber)
	}
	if created.GstinNumber != "22ABCDE1234F1Z5" {
		t.Errorf("gstNumber 应落到 gstinNumber, got %s", created.GstinNumber)
	}
}

func TestSupplierService_Update_Partial(t *testing.T) {
	svc, repo := setupSupplierService(t)
	ctx := context.Background()

	req := validCreateReq()
	req.Notes = "keep me"
	id, _ := svc.CreateSupplier(ctx, req)
	before, _ := repo.GetByID(ctx, id)

	// 只带 status，其余字段不能动
	status := model.SupplierStatusInactive
	if err := svc.UpdateSupplier(ctx, id, dto.UpdateSupplierReq{Status: &status}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	after, _ := repo.GetByID(ctx, id)
	if after.Status != model.SupplierStatusInactive {
		t.Errorf("status = %s, want Inactive", after.Status)
	}
	if after.Notes != "keep me" || after.CompanyName != before.CompanyName || after.Email != before.Email {
		t.Error("未提供的字段应保留原值")
	}
	if !after.CreatedAt.Equal(before.CreatedAt) {
		t.Error("createdAt 不应被改动")
	}
}

func TestSupplierService_Update_EmptyStringOverwrites(t *testing.T) {
	svc, repo := setupSupplierService(t)
	ctx := context.Background()

	req := validCreateReq()
	req.Notes = "to be cleared"
	id, _ := svc.CreateSupplier(ctx, req)

	// 显式传空串是清空，和"没带字段"不同
	empty := ""
	if err := svc.UpdateSupplier(ctx, id, dto.UpdateSupplierReq{Notes: &empty}); err != nil {
		t.Fatalf("更新失败: %v", err)
	}

	after, _ := repo.GetByID(ctx, id)
	if after.Notes != "" {
		t.Errorf("notes = %q, want 空串", after.Notes)
	}
}

func TestSupplierService_Update_NotFound(t *testing.T) {
	svc, _ := setupSupplierService(t)

	status := model.SupplierStatusInactive
	err := svc.UpdateSupplier(context.Background(), "6f1b0a52-6a40-4b6c-9c35-4cf1f2b0a001",
		dto.UpdateSupplierReq{Status: &status})
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("err = %v, want ErrRecordNotFound", err)
	}
}

func TestSupplierService_GetSuppliers_TotalPages(t *testing.T) {
	svc, _ := setupSupplierService(t)
	ctx := context.Background()

	for i := 0; i < 25; i++ {
		svc.CreateSupplier(ctx, validCreateReq())
	}

	page, err := svc.GetSuppliers(ctx, dto.ListSuppliersQuery{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if page.Total != 25 {
		t.Errorf("total = %d, want 25", page.Total)
	}
	if page.TotalPages != 3 {
		t.Errorf("totalPages = %d, want ceil(25/10)=3", page.TotalPages)
	}
	if len(page.Suppliers) != 10 {
		t.Errorf("第一页条数 = %d, want 10", len(page.Suppliers))
	}
}

func TestSupplierService_GetSuppliers_DefaultPaging(t *testing.T) {
	svc, _ := setupSupplierService(t)

	// page/limit 没给或非法时回落到 1/10
	page, err := svc.GetSuppliers(context.Background(), dto.ListSuppliersQuery{Page: 0, Limit: -1})
	if err != nil {
		t.Fatalf("列表查询失败: %v", err)
	}
	if page.Page != 1 || page.Limit != 10 {
		t.Errorf("page/limit = %d/%d, want 1/10", page.Page, page.Limit)
	}
	if page.Suppliers == nil {
		t.Error("空结果应返回空数组而不是 null")
	}
}
