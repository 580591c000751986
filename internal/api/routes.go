package api

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"careerdesk/internal/api/middleware"
	"careerdesk/internal/auth"
	"careerdesk/internal/storage"
)

// RegisterRoutes 注册全部业务路由。
func RegisterRoutes(
	router *gin.Engine,
	db *gorm.DB,
	asynqClient *asynq.Client,
	authService *auth.AuthService,
	redisClient *redis.Client,
	logger *slog.Logger,
	storageClient *storage.Client,
) {
	authHandler := NewAuthHandler(db, authService, logger)
	resumeHandler := NewResumeHandler(db, asynqClient, storageClient)
	jobHandler := NewJobHandler(db)
	wsHandler := NewWsHandler(redisClient, authService, logger)
	authMiddleware := middleware.AuthMiddleware(authService)

	router.GET("/ws", wsHandler.HandleConnection)

	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", authHandler.Register)
		authGroup.POST("/login", authHandler.Login)
	}

	resumeGroup := router.Group("/resumes")
	resumeGroup.Use(authMiddleware)
	{
		resumeGroup.GET("", resumeHandler.ListResumes)
		resumeGroup.POST("", resumeHandler.CreateResume)
		resumeGroup.PUT("/:id", resumeHandler.UpdateResume)
		resumeGroup.DELETE("/:id", resumeHandler.DeleteResume)
		resumeGroup.POST("/:id/export", resumeHandler.ExportResume)
		resumeGroup.GET("/:id/export/link", resumeHandler.GetExportLink)
	}

	jobGroup := router.Group("/jobs")
	jobGroup.Use(authMiddleware)
	{
		jobGroup.GET("", jobHandler.ListJobs)
		jobGroup.POST("", jobHandler.CreateJob)
		jobGroup.PUT("/:id", jobHandler.UpdateJob)
		jobGroup.DELETE("/:id", jobHandler.DeleteJob)
	}
}
