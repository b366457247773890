package repository

import (
	"context"
	"errors"
	"strings"
	"supplier_erp_v1/internal/model"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ErrInvalidSupplierID 路径里的 ID 不是合法 uuid
// 上游(Mongo 版本)对这种情况直接抛 500，这里收敛为业务错误，由 controller 转成 400
var ErrInvalidSupplierID = errors.New("invalid supplier id")

type SupplierRepo struct {
	db *gorm.DB
}

func NewSupplierRepo(db *gorm.DB) *SupplierRepo {
	return &SupplierRepo{db: db}
}

// SupplierFilter 列表查询的过滤条件
type SupplierFilter struct {
	Search string // companyName 模糊搜索（不区分大小写）
	Page   int
	Limit  int
}

// 1. 增删改

// Create 创建供应商，入库前分配 uuid
func (r *SupplierRepo) Create(ctx context.Context, supplier *model.Supplier) error {
	if supplier.ID == "" {
		supplier.ID = uuid.New().String()
	}
	return r.db.WithContext(ctx).Create(supplier).Error
}

// Updates 部分更新
// 只更新 fields 里出现的列，没出现的保持原值（等价于 Mongo 的 $set）
func (r *SupplierRepo) Updates(ctx context.Context, id string, fields map[string]interface{}) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidSupplierID
	}
	fields["updated_at"] = time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&model.Supplier{}).
		Where("id = ?", id).
		Updates(fields).Error
}

// Delete 物理删除，不做软删，也不级联清理附件文件
func (r *SupplierRepo) Delete(ctx context.Context, id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidSupplierID
	}
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Supplier{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// 2. 查询

// GetByID 获取单条详情
func (r *SupplierRepo) GetByID(ctx context.Context, id string) (*model.Supplier, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, ErrInvalidSupplierID
	}
	var supplier model.Supplier
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&supplier).Error
	if err != nil {
		return nil, err
	}
	return &supplier, nil
}

// List 获取分页列表
// total 是过滤后的总数，与分页无关
// 排序固定为 created_at DESC, id DESC：上游没约定顺序，这里选一个稳定的
func (r *SupplierRepo) List(ctx context.Context, filter SupplierFilter) ([]model.Supplier, int64, error) {
	var list []model.Supplier
	var total int64

	db := r.db.WithContext(ctx).Model(&model.Supplier{})

	if filter.Search != "" {
		// 不用 ILIKE，LOWER 两边都能在 sqlite 测试库里跑
		// 搜索词是子串字面量，% 和 _ 要转义掉，不能当 LIKE 通配符
		db = db.Where("LOWER(company_name) LIKE LOWER(?) ESCAPE '\\'", "%"+escapeLike(filter.Search)+"%")
	}

	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	offset := (filter.Page - 1) * filter.Limit
	err := db.
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(offset).
		Find(&list).Error

	return list, total, err
}

// escapeLike 把 LIKE 元字符转成字面量，配合 ESCAPE '\' 使用
func escapeLike(term string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(term)
}

// FindAll 导出用：取全量记录
func (r *SupplierRepo) FindAll(ctx context.Context) ([]model.Supplier, error) {
	var list []model.Supplier
	err := r.db.WithContext(ctx).
		Order("created_at DESC, id DESC").
		Find(&list).Error
	return list, err
}
