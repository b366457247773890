package dto

// LoginReq 登录请求
type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// UserResp 登录响应里的用户信息，不包含凭证
type UserResp struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}
