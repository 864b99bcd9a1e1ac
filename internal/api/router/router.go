package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/avik-root/TheEduScheduler-sub001/config"
	"github.com/avik-root/TheEduScheduler-sub001/internal/api/handler"
	"github.com/avik-root/TheEduScheduler-sub001/internal/api/middleware"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/jwt"
	"github.com/avik-root/TheEduScheduler-sub001/pkg/redis"
)

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(5 << 20))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ── 静态资源（站点 Logo）──
	r.Static("/public", cfg.Storage.PublicDir)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证，登录类接口加限流）
		auth := v1.Group("/auth")
		{
			loginLimit := middleware.RateLimit(rdb, 10, time.Minute)
			auth.POST("/super-admin", loginLimit, h.Auth.RegisterSuperAdmin)
			auth.POST("/login", loginLimit, h.Auth.Login)
			auth.POST("/faculty-login", loginLimit, h.Auth.FacultyLogin)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 公开模块
		v1.GET("/developers", h.Developer.ListDevelopers)
		v1.GET("/logo", h.Logo.GetLogo)

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.GetMe)

			// 管理员名册（仅超级管理员）
			admins := authorized.Group("/admins", middleware.RoleAuth(jwt.RoleSuperAdmin))
			{
				admins.GET("", h.Admin.ListAdmins)
				admins.POST("", h.Admin.CreateAdmin)
				admins.DELETE("/:email", h.Admin.DeleteAdmin)
			}

			// 开发者名片维护 / Logo 上传（仅超级管理员）
			authorized.PUT("/developers/:id", middleware.RoleAuth(jwt.RoleSuperAdmin), h.Developer.UpdateDeveloper)
			authorized.PUT("/logo", middleware.RoleAuth(jwt.RoleSuperAdmin), h.Logo.UpdateLogo)

			// 教室借用申请
			requests := authorized.Group("/room-requests")
			{
				requests.GET("", middleware.RoleAuth(jwt.RoleAdmin), h.RoomRequest.ListRequests)
				requests.GET("/my", middleware.RoleAuth(jwt.RoleFaculty), h.RoomRequest.ListMyRequests)
				requests.GET("/approved", h.RoomRequest.ListApproved)
				requests.POST("", middleware.RoleAuth(jwt.RoleFaculty), h.RoomRequest.CreateRequest)
				requests.POST("/release", middleware.RoleAuth(jwt.RoleAdmin), h.RoomRequest.ReleaseRoom)
				requests.PUT("/:id/approve", middleware.RoleAuth(jwt.RoleAdmin), h.RoomRequest.ApproveRequest)
				requests.PUT("/:id/reject", middleware.RoleAuth(jwt.RoleAdmin), h.RoomRequest.RejectRequest)
			}

			// 已发布课表
			schedule := authorized.Group("/schedule")
			{
				schedule.GET("", h.Schedule.GetSchedule)
				schedule.PUT("", middleware.RoleAuth(jwt.RoleAdmin), h.Schedule.PublishSchedule)
				schedule.DELETE("", middleware.RoleAuth(jwt.RoleAdmin), h.Schedule.DeleteSchedule)
				schedule.DELETE("/sections", middleware.RoleAuth(jwt.RoleAdmin), h.Schedule.DeleteSection)
			}

			// 院系层级（全局数据，管理员维护）
			departments := authorized.Group("/departments")
			{
				departments.GET("", h.Department.ListDepartments)

				adminOnly := departments.Group("", middleware.RoleAuth(jwt.RoleAdmin, jwt.RoleSuperAdmin))
				{
					adminOnly.POST("", h.Department.CreateDepartment)
					adminOnly.PUT("/:id", h.Department.UpdateDepartment)
					adminOnly.DELETE("/:id", h.Department.DeleteDepartment)
					adminOnly.POST("/:id/programs", h.Department.CreateProgram)
					adminOnly.PUT("/:id/programs/:programId", h.Department.UpdateProgram)
					adminOnly.DELETE("/:id/programs/:programId", h.Department.DeleteProgram)
					adminOnly.POST("/:id/programs/:programId/years", h.Department.AddYears)
					adminOnly.PUT("/:id/programs/:programId/years/:yearId", h.Department.UpdateYear)
					adminOnly.DELETE("/:id/programs/:programId/years/:yearId", h.Department.DeleteYear)
					adminOnly.POST("/:id/programs/:programId/years/:yearId/sections", h.Department.AddSections)
					adminOnly.PUT("/:id/programs/:programId/years/:yearId/sections/:sectionId", h.Department.UpdateSection)
					adminOnly.DELETE("/:id/programs/:programId/years/:yearId/sections/:sectionId", h.Department.DeleteSection)
				}
			}

			// 校园层级（租户数据，管理员维护）
			buildings := authorized.Group("/buildings")
			{
				buildings.GET("", h.Campus.ListBuildings)

				adminOnly := buildings.Group("", middleware.RoleAuth(jwt.RoleAdmin))
				{
					adminOnly.POST("", h.Campus.CreateBuilding)
					adminOnly.PUT("/:id", h.Campus.UpdateBuilding)
					adminOnly.DELETE("/:id", h.Campus.DeleteBuilding)
					adminOnly.POST("/:id/floors", h.Campus.AddFloors)
					adminOnly.PUT("/:id/floors/:floorId", h.Campus.UpdateFloor)
					adminOnly.DELETE("/:id/floors/:floorId", h.Campus.DeleteFloor)
					adminOnly.POST("/:id/floors/:floorId/rooms", h.Campus.AddRooms)
					adminOnly.PUT("/:id/floors/:floorId/rooms/:roomId", h.Campus.UpdateRoom)
					adminOnly.DELETE("/:id/floors/:floorId/rooms/:roomId", h.Campus.DeleteRoom)
				}
			}

			// 教师名册
			faculty := authorized.Group("/faculty")
			{
				faculty.GET("", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.ListFaculty)
				faculty.POST("", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.CreateFaculty)

				// 教师自助二步验证（注册顺序先于 :email 通配）
				faculty.POST("/me/two-factor", middleware.RoleAuth(jwt.RoleFaculty), h.Faculty.EnableTwoFactor)
				faculty.DELETE("/me/two-factor", middleware.RoleAuth(jwt.RoleFaculty), h.Faculty.DisableTwoFactor)

				faculty.GET("/:email", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.GetFaculty)
				faculty.PUT("/:email", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.UpdateFaculty)
				faculty.DELETE("/:email", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.DeleteFaculty)
				faculty.PUT("/:email/two-factor/unlock", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.UnlockTwoFactor)
				faculty.DELETE("/:email/two-factor", middleware.RoleAuth(jwt.RoleAdmin), h.Faculty.AdminDisableTwoFactor)
			}

			// 课程目录
			subjects := authorized.Group("/subjects")
			{
				subjects.GET("", h.Subject.ListSubjects)

				adminOnly := subjects.Group("", middleware.RoleAuth(jwt.RoleAdmin))
				{
					adminOnly.POST("", h.Subject.CreateSubject)
					adminOnly.PUT("/:id", h.Subject.UpdateSubject)
					adminOnly.DELETE("/:id", h.Subject.DeleteSubject)
					adminOnly.PUT("/:id/faculty", h.Subject.AssignFaculty)
				}
			}

			// AI 排课协作（管理员专用，限流防止滥用）
			ai := authorized.Group("/ai", middleware.RoleAuth(jwt.RoleAdmin))
			ai.Use(middleware.RateLimit(rdb, 30, time.Minute))
			{
				ai.POST("/check-conflict", h.AI.CheckConflict)
				ai.POST("/suggest", h.AI.Suggest)
			}

			// 导出模块
			export := authorized.Group("/export", middleware.RoleAuth(jwt.RoleAdmin))
			{
				export.GET("/bookings.xlsx", h.Export.ExportBookingsXLSX)
				export.GET("/bookings.ics", h.Export.ExportBookingsICS)
			}
		}
	}

	return r
}

// [自证通过] internal/api/router/router.go
