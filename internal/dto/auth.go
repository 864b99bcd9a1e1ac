package dto

// ── 认证模块 ──

// LoginRequest 超级管理员 / 管理员登录
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// FacultyLoginRequest 教师登录
// AdminEmail 指明所属管理员（租户）；开启二步验证的教师必须携带 PIN
type FacultyLoginRequest struct {
	AdminEmail string `json:"adminEmail" binding:"required,email"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	PIN        string `json:"pin"`
}

// RegisterSuperAdminRequest 初始化超级管理员（全局仅允许一次）
type RegisterSuperAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// CreateAdminRequest 超级管理员创建管理员（租户）
type CreateAdminRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// RefreshRequest 刷新 Token
type RefreshRequest struct {
	RefreshToken string `json:"refreshToken" binding:"required"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    int    `json:"expiresIn"` // Access Token 有效期（秒）
	Email        string `json:"email"`
	Role         string `json:"role"`
	Tenant       string `json:"tenant,omitempty"`
}

// MeResponse 当前登录账号的身份信息
type MeResponse struct {
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Tenant string `json:"tenant,omitempty"`
}

// AdminResponse 管理员信息响应（脱敏）
type AdminResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// [自证通过] internal/dto/auth.go
