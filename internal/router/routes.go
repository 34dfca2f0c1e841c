package router

import (
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/auth"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/config"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/member"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/meta"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/database"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/middleware"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/shared/token"
	"github.com/changhyeonkim/querydsl-study/go-api-server/internal/team"
	"github.com/gin-gonic/gin"
)

// Setup configures all application-specific routes using dependency injection
func Setup(router *gin.Engine, cfg *config.Config, db *database.DB) {
	metaHandler := meta.NewHandler(cfg, db)
	router.GET("/health", metaHandler.Health)

	// repository
	teamRepository := team.NewTeamRepository()
	memberRepository := member.NewMemberRepository()

	// shared services
	tokenManager := token.NewJWTManager(cfg)

	// service
	authService := auth.NewAuthService(cfg.Admin, tokenManager)
	teamService := team.NewTeamService(db.DB, teamRepository)
	memberService := member.NewMemberService(db.DB, memberRepository, teamRepository)

	// handler
	authHandler := auth.NewAuthHandler(authService)
	teamHandler := team.NewTeamHandler(teamService)
	memberHandler := member.NewMemberHandler(memberService, cfg.Paging)

	requireAdmin := middleware.JWTWithManager(tokenManager)

	// API v1 routes
	authV1 := router.Group("/api/v1/auth")
	{
		authV1.POST("/login", authHandler.Login)
	}

	teamV1 := router.Group("/api/v1/teams")
	{
		teamV1.GET("", teamHandler.List)
		teamV1.POST("", requireAdmin, teamHandler.Create)
	}

	memberV1 := router.Group("/api/v1/members")
	{
		memberV1.GET("/search", memberHandler.Search)
		memberV1.GET("/:id", memberHandler.Get)
		memberV1.POST("", requireAdmin, memberHandler.Create)
	}

	bulkV1 := memberV1.Group("/bulk", requireAdmin)
	{
		bulkV1.POST("/rename", memberHandler.BulkRename)
		bulkV1.POST("/age", memberHandler.BulkAddAge)
		bulkV1.POST("/delete", memberHandler.BulkDelete)
	}
}
