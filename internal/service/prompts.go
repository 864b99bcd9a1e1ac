package service

import "text/template"

// ── AI 提示词模板 ──

// 冲突检测系统提示词：要求模型只输出 JSON 结论
const conflictSystemPrompt = `你是一个排课冲突检测助手。根据给出的已发布课表和候选排课，判断是否存在冲突。

冲突只有三类：
1. 教师冲突：同一教师在同一天同一时段已有其他课程。教师为 "NF" 表示未指派教师，未指派教师永远不构成教师冲突。
2. 教室冲突：同一教室在同一天同一时段已被其他课程占用。
3. 班级冲突：同一班级在同一天同一时段已有其他课程。

只输出一个 JSON 对象，不要输出其他内容：
{"isConflict": <bool>, "reason": "<冲突原因，无冲突时为空字符串>"}`

const conflictUserPromptText = `已发布课表（Markdown）：
{{.ScheduleText}}

候选排课：
- 课程：{{.Candidate.Subject}}
- 教师：{{.Candidate.Faculty}}{{if .NFFaculty}}（未指派，跳过教师冲突检查）{{end}}
- 教室：{{.Candidate.Room}}
- 星期：{{.Candidate.Day}}
- 时段：{{.Candidate.TimeSlot}}
- 班级：{{.Candidate.Section}}`

// 排课建议系统提示词
const suggestSystemPrompt = `你是一个排课优化顾问。阅读给出的课表详情和约束条件，提出可落地的改进建议。

只输出一个 JSON 对象，不要输出其他内容：
{"suggestedImprovements": "<改进建议，Markdown 列表>", "rationale": "<建议依据>"}`

const suggestUserPromptText = `课表详情：
{{.ScheduleDetails}}
{{if .Constraints}}
约束条件：
{{.Constraints}}
{{end}}`

var (
	conflictUserPrompt = template.Must(template.New("conflict").Parse(conflictUserPromptText))
	suggestUserPrompt  = template.Must(template.New("suggest").Parse(suggestUserPromptText))
)

// [自证通过] internal/service/prompts.go
