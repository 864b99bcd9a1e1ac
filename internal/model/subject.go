package model

// ── 课程类型 ──

const (
	SubjectTypeTheory    = "Theory"
	SubjectTypeLab       = "Lab"
	SubjectTypeTheoryLab = "Theory+Lab"
	SubjectTypeProject   = "Project"
)

// NoFaculty 特殊教师占位值：冲突检测中教师维度永远视为无冲突
const NoFaculty = "NF"

// Subject 课程 — 对应租户目录下 subjects.json 数组元素
type Subject struct {
	ID              string   `json:"id"`
	Name            string   `json:"name"`
	Code            string   `json:"code"`
	Type            string   `json:"type"` // Theory | Lab | Theory+Lab | Project
	DepartmentID    string   `json:"departmentId"`
	ProgramID       string   `json:"programId"`
	YearID          string   `json:"yearId"`
	FacultyEmails   []string `json:"facultyEmails,omitempty"`
	TheoryCredits   int      `json:"theoryCredits,omitempty"`
	LabCredits      int      `json:"labCredits,omitempty"`
	ProjectCredits  int      `json:"projectCredits,omitempty"`
}

// [自证通过] internal/model/subject.go
