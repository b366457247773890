package service

import (
	"errors"

	"supplier_erp_v1/internal/model"
	"supplier_erp_v1/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials 邮箱或密码不对
// 对外只说 Invalid credentials，不暴露具体是哪个错了
var ErrInvalidCredentials = errors.New("invalid credentials")

type AuthService struct {
	users repository.UserStore
}

func NewAuthService(users repository.UserStore) *AuthService {
	return &AuthService{users: users}
}

// Login 校验邮箱+密码，成功返回用户
// 密码比对走 bcrypt，旧版的明文等值比较在迁移时废弃了
func (s *AuthService) Login(email, password string) (*model.SysUser, error) {
	user, ok := s.users.FindByEmail(email)
	if !ok {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// HashPassword 生成 bcrypt 哈希，给启动时的账号种子用
func HashPassword(plain string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
