package model

import "time"

// 供应商状态
const (
	SupplierStatusActive   = "Active"
	SupplierStatusInactive = "Inactive"
)

// Supplier 供应商档案
// 主键是 uuid 字符串，对外就是不透明 ID
// json 字段名沿用前端已有的约定，不要改
type Supplier struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"_id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	// 基础信息
	CompanyName string `gorm:"size:200;not null;index" json:"companyName"`
	VendorName  string `gorm:"size:200;not null" json:"vendorName"`

	// 联系方式
	MobileNumber   string `gorm:"size:20" json:"mobileNumber"`
	Email          string `gorm:"size:100;not null" json:"email"`
	SecondaryEmail string `gorm:"size:100" json:"secondaryEmail"`
	SecondaryPhone string `gorm:"size:20" json:"secondaryPhone"`

	// 税务标识
	PanNumber   string `gorm:"size:20" json:"panNumber"`
	GstinNumber string `gorm:"size:20" json:"gstinNumber"`

	// 分类
	SupplierType string `gorm:"size:50" json:"supplierType"`
	Category     string `gorm:"size:50" json:"category"`
	Website      string `gorm:"size:200" json:"website"`

	// 地址
	AddressLine1 string `gorm:"size:200" json:"addressLine1"`
	AddressLine2 string `gorm:"size:200" json:"addressLine2"`
	District     string `gorm:"size:100" json:"district"`
	City         string `gorm:"size:100" json:"city"`
	State        string `gorm:"size:100" json:"state"`
	Pincode      string `gorm:"size:20" json:"pincode"`
	Country      string `gorm:"size:100" json:"country"`

	// 银行信息
	AccountName    string `gorm:"size:200" json:"accountName"`
	AccountNumber  string `gorm:"size:50" json:"accountNumber"`
	BankBranchName string `gorm:"size:200" json:"bankBranchName"`
	IfscCode       string `gorm:"size:20" json:"ifscCode"`

	// 状态与备注
	Status string `gorm:"size:20;default:'Active'" json:"status"`
	Notes  string `gorm:"type:text" json:"notes"`

	// 附件访问路径列表 (/uploads/xxx)
	Attachments StringList `gorm:"type:text" json:"attachments"`
}

func (Supplier) TableName() string {
	return "suppliers"
}
