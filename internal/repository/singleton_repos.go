package repository

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/storage"
)

// ── 单例与小名册存储：super-admin.json / admins.json / developers.json / logo.png ──

const (
	superAdminFile = "super-admin.json"
	adminsFile     = "admins.json"
	developersFile = "developers.json"
	logoFileName   = "logo.png"
)

// ═══════════════════════════════════════════════════════════
// SuperAdmin — 零或一条记录
// ═══════════════════════════════════════════════════════════

// SuperAdminRepository 超级管理员单例存储接口
type SuperAdminRepository interface {
	// Get 返回记录，不存在时返回 ErrNotFound
	Get(ctx context.Context) (*model.SuperAdmin, error)
	// Create 写入唯一记录；已存在时无论负载如何一律返回 ErrAlreadyExists
	Create(ctx context.Context, admin *model.SuperAdmin) error
}

type superAdminRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewSuperAdminRepo 创建 SuperAdminRepository 实例
func NewSuperAdminRepo(store *storage.Store, logger *zap.Logger) SuperAdminRepository {
	return &superAdminRepo{store: store, logger: logger}
}

func (r *superAdminRepo) Get(_ context.Context) (*model.SuperAdmin, error) {
	var admin model.SuperAdmin
	if !r.store.ReadJSON(r.store.GlobalPath(superAdminFile), &admin) || admin.Email == "" {
		return nil, pkgerrors.ErrNotFound
	}
	return &admin, nil
}

func (r *superAdminRepo) Create(ctx context.Context, admin *model.SuperAdmin) error {
	if existing, _ := r.Get(ctx); existing != nil {
		// 全局单例：拒绝覆盖，返回描述性失败
		return pkgerrors.ErrAlreadyExists
	}

	admin.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	return r.store.WriteJSON(r.store.GlobalPath(superAdminFile), admin)
}

// ═══════════════════════════════════════════════════════════
// Admin — 管理员（租户）名册
// ═══════════════════════════════════════════════════════════

// AdminRepository 管理员名册存储接口（全局 admins.json）
type AdminRepository interface {
	List(ctx context.Context) ([]model.Admin, error)
	GetByEmail(ctx context.Context, email string) (*model.Admin, error)
	// Create 追加管理员；邮箱重复返回 ErrAlreadyExists
	Create(ctx context.Context, admin *model.Admin) error
	Delete(ctx context.Context, email string) error
}

type adminRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewAdminRepo 创建 AdminRepository 实例
func NewAdminRepo(store *storage.Store, logger *zap.Logger) AdminRepository {
	return &adminRepo{store: store, logger: logger}
}

func (r *adminRepo) load() []model.Admin {
	var admins []model.Admin
	r.store.ReadJSON(r.store.GlobalPath(adminsFile), &admins)
	return admins
}

func (r *adminRepo) List(_ context.Context) ([]model.Admin, error) {
	admins := r.load()
	if admins == nil {
		admins = []model.Admin{}
	}
	return admins, nil
}

func (r *adminRepo) GetByEmail(_ context.Context, email string) (*model.Admin, error) {
	admins := r.load()
	for i := range admins {
		if admins[i].Email == email {
			return &admins[i], nil
		}
	}
	return nil, pkgerrors.ErrNotFound
}

func (r *adminRepo) Create(_ context.Context, admin *model.Admin) error {
	admins := r.load()

	for i := range admins {
		if admins[i].Email == admin.Email {
			return pkgerrors.ErrAlreadyExists
		}
	}

	admin.ID = uuid.New().String()
	admin.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	admins = append(admins, *admin)

	return r.store.WriteJSON(r.store.GlobalPath(adminsFile), admins)
}

func (r *adminRepo) Delete(_ context.Context, email string) error {
	admins := r.load()

	kept := make([]model.Admin, 0, len(admins))
	for _, a := range admins {
		if a.Email != email {
			kept = append(kept, a)
		}
	}
	if len(kept) == len(admins) {
		return pkgerrors.ErrNotFound
	}

	return r.store.WriteJSON(r.store.GlobalPath(adminsFile), kept)
}

// ═══════════════════════════════════════════════════════════
// Developer — 只支持按 ID 更新的名册
// ═══════════════════════════════════════════════════════════

// DeveloperRepository 开发者名册存储接口（全局 developers.json）
type DeveloperRepository interface {
	List(ctx context.Context) ([]model.Developer, error)
	// Update 按 ID 替换；ID 不存在返回 ErrNotFound。本模块不提供创建与删除
	Update(ctx context.Context, dev *model.Developer) error
}

type developerRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewDeveloperRepo 创建 DeveloperRepository 实例
func NewDeveloperRepo(store *storage.Store, logger *zap.Logger) DeveloperRepository {
	return &developerRepo{store: store, logger: logger}
}

func (r *developerRepo) List(_ context.Context) ([]model.Developer, error) {
	var devs []model.Developer
	r.store.ReadJSON(r.store.GlobalPath(developersFile), &devs)
	if devs == nil {
		devs = []model.Developer{}
	}
	return devs, nil
}

func (r *developerRepo) Update(_ context.Context, dev *model.Developer) error {
	var devs []model.Developer
	r.store.ReadJSON(r.store.GlobalPath(developersFile), &devs)

	for i := range devs {
		if devs[i].ID == dev.ID {
			devs[i] = *dev
			return r.store.WriteJSON(r.store.GlobalPath(developersFile), devs)
		}
	}
	return pkgerrors.ErrNotFound
}

// ═══════════════════════════════════════════════════════════
// Logo — 固定路径 PNG
// ═══════════════════════════════════════════════════════════

// LogoRepository 站点 Logo 存储接口（public 目录下固定 logo.png）
type LogoRepository interface {
	// Write 将解码后的 PNG 字节写到固定路径
	Write(ctx context.Context, data []byte) error
	// ModTime 返回文件最后修改时间；文件不存在时 ok=false
	ModTime(ctx context.Context) (time.Time, bool)
}

type logoRepo struct {
	store  *storage.Store
	logger *zap.Logger
}

// NewLogoRepo 创建 LogoRepository 实例
func NewLogoRepo(store *storage.Store, logger *zap.Logger) LogoRepository {
	return &logoRepo{store: store, logger: logger}
}

func (r *logoRepo) path() string {
	return filepath.Join(r.store.PublicDir(), logoFileName)
}

func (r *logoRepo) Write(_ context.Context, data []byte) error {
	if err := os.WriteFile(r.path(), data, 0o644); err != nil {
		r.logger.Error("写入 Logo 失败", zap.Error(err))
		return err
	}
	return nil
}

func (r *logoRepo) ModTime(_ context.Context) (time.Time, bool) {
	info, err := os.Stat(r.path())
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}

// [自证通过] internal/repository/singleton_repos.go
