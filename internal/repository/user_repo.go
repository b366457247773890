package repository

import (
	"supplier_erp_v1/internal/model"
)

// UserStore 凭证存储（只读）
// 生产环境应换成真正的身份提供方，这里先抽象出接口
type UserStore interface {
	FindByEmail(email string) (*model.SysUser, bool)
	FindByID(id string) (*model.SysUser, bool)
}

// InMemoryUserStore 静态内存实现
// 启动时由配置注入，之后只读，不需要加锁
type InMemoryUserStore struct {
	users []model.SysUser
}

func NewInMemoryUserStore(users []model.SysUser) *InMemoryUserStore {
	return &InMemoryUserStore{users: users}
}

// FindByEmail 按邮箱查找用户
func (s *InMemoryUserStore) FindByEmail(email string) (*model.SysUser, bool) {
	for i := range s.users {
		if s.users[i].Email == email {
			return &s.users[i], true
		}
	}
	return nil, false
}

// FindByID 按 ID 查找用户
func (s *InMemoryUserStore) FindByID(id string) (*model.SysUser, bool) {
	for i := range s.users {
		if s.users[i].ID == id {
			return &s.users[i], true
		}
	}
	return nil, false
}
