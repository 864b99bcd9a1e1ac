package dto

// ── 开发者名册 / Logo 模块 ──

// UpdateDeveloperRequest 按 ID 更新开发者名片
type UpdateDeveloperRequest struct {
	Name   string `json:"name" binding:"required"`
	Role   string `json:"role" binding:"required"`
	Bio    string `json:"bio"`
	GitHub string `json:"github"`
}

// UpdateLogoRequest 上传站点 Logo
/// Data 为 base64 data URL（data:image/png;base64,....）
type UpdateLogoRequest struct {
	Data string `json:"data" binding:"required"`
}

// LogoResponse Logo 访问地址
// URL 带文件修改时间作为查询参数，用于绕过浏览器缓存；Logo 不存在时 URL 为空
type LogoResponse struct {
	URL string `json:"url"`
}

// [自证通过] internal/dto/misc.go
