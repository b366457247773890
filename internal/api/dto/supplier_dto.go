package dto

// ==========================================
// 请求 DTO
// ==========================================

// CreateSupplierReq 创建供应商请求
// 前端创建表单的字段名和落库字段名不完全一致
// (primaryPhone -> mobileNumber 等)，映射在 service 里做
type CreateSupplierReq struct {
	CompanyName string `json:"companyName"`
	VendorName  string `json:"vendorName"`

	PrimaryEmail   string `json:"primaryEmail"`
	PrimaryPhone   string `json:"primaryPhone"`
	SecondaryEmail string `json:"secondaryEmail"`
	SecondaryPhone string `json:"secondaryPhone"`

	Pan       string `json:"pan"`
	GstNumber string `json:"gstNumber"`

	SupplierType string `json:"supplierType"`
	Category     string `json:"category"`
	Website      string `json:"website"`

	AddressLine1 string `json:"addressLine1"`
	AddressLine2 string `json:"addressLine2"`
	District     string `json:"district"`
	City         string `json:"city"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	Country      string `json:"country"`

	AccountName    string `json:"accountName"`
	AccountNumber  string `json:"accountNumber"`
	BankBranchName string `json:"bankBranchName"`
	IfscCode       string `json:"ifscCode"`

	Status      string   `json:"status"`
	Notes       string   `json:"notes"`
	Attachments []string `json:"attachments"`
}

// UpdateSupplierReq 更新供应商请求
// 全部用指针：nil 表示请求里没带这个字段，保留原值
// 注意和创建不同，更新请求用的是落库字段名
type UpdateSupplierReq struct {
	CompanyName *string `json:"companyName"`
	VendorName  *string `json:"vendorName"`

	MobileNumber   *string `json:"mobileNumber"`
	Email          *string `json:"email"`
	SecondaryEmail *string `json:"secondaryEmail"`
	SecondaryPhone *string `json:"secondaryPhone"`

	PanNumber   *string `json:"panNumber"`
	GstinNumber *string `json:"gstinNumber"`

	SupplierType *string `json:"supplierType"`
	Category     *string `json:"category"`
	Website      *string `json:"website"`

	AddressLine1 *string `json:"addressLine1"`
	AddressLine2 *string `json:"addressLine2"`
	District     *string `json:"district"`
	City         *string `json:"city"`
	State        *string `json:"state"`
	Pincode      *string `json:"pincode"`
	Country      *string `json:"country"`

	AccountName    *string `json:"accountName"`
	AccountNumber  *string `json:"accountNumber"`
	BankBranchName *string `json:"bankBranchName"`
	IfscCode       *string `json:"ifscCode"`

	Status      *string   `json:"status"`
	Notes       *string   `json:"notes"`
	Attachments *[]string `json:"attachments"`
}

// ==========================================
// 查询参数
// ==========================================

// ListSuppliersQuery 列表查询参数
type ListSuppliersQuery struct {
	Page   int    `form:"page,default=1"`
	Limit  int    `form:"limit,default=10"`
	Search string `form:"search"`
}
