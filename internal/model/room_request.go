package model

// ── 教室借用申请状态 ──

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

// RoomRequest 教室借用申请 — 对应租户目录下 room-requests.json 数组元素
//
// 字段名与前端持久化格式保持 camelCase。
// "教室释放"（release）是直接以 approved 状态创建的占用记录，跳过审批流程
type RoomRequest struct {
	ID             string `json:"id"`
	FacultyEmail   string `json:"facultyEmail"`
	FacultyName    string `json:"facultyName"`
	RoomName       string `json:"roomName"`
	Date           string `json:"date"`      // 日历日期，如 2025-03-14
	StartTime      string `json:"startTime"` // 如 09:00
	EndTime        string `json:"endTime"`
	Reason         string `json:"reason"`
	Status         string `json:"status"`    // pending | approved | rejected
	CreatedAt      string `json:"createdAt"` // ISO-8601
	AdminRationale string `json:"adminRationale,omitempty"`
}

// [自证通过] internal/model/room_request.go
