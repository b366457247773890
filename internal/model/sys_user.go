package model

// SysUser 系统用户
// 目前是启动时从配置注入的静态账号，不落库
// 后续接入真正的身份系统时替换 UserStore 的实现即可
type SysUser struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`

	// bcrypt 哈希，绝不存明文
	PasswordHash string `json:"-"`
}
