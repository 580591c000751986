package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"careerdesk/internal/api/middleware"
	"careerdesk/internal/database"
	"careerdesk/internal/render"
	"careerdesk/internal/storage"
	"careerdesk/internal/tasks"
)

// ResumeHandler 负责处理与简历相关的 API 请求。
type ResumeHandler struct {
	db          *gorm.DB
	asynqClient *asynq.Client
	storage     *storage.Client
}

// NewResumeHandler 构造 ResumeHandler。
func NewResumeHandler(db *gorm.DB, asynqClient *asynq.Client, storageClient *storage.Client) *ResumeHandler {
	return &ResumeHandler{
		db:          db,
		asynqClient: asynqClient,
		storage:     storageClient,
	}
}

var (
	errInvalidID = errors.New("invalid record id")
	errNotOwner  = errors.New("record owned by another user")
)

type resumeRequest struct {
	Title    string         `json:"title" binding:"required"`
	Content  datatypes.JSON `json:"content" binding:"required"`
	Template string         `json:"template"`
}

type resumeResponse struct {
	ID        uint           `json:"id"`
	Title     string         `json:"title"`
	Content   datatypes.JSON `json:"content"`
	Template  string         `json:"template"`
	PdfStatus string         `json:"pdf_status,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// ListResumes 列出用户全部简历，最近更新的在前。
// Content 以入库时的原始 JSON 文档返回，不做二次加工。
func (h *ResumeHandler) ListResumes(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	var resumes []database.Resume
	if err := h.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&resumes).Error; err != nil {
		Internal(c, "failed to list resumes")
		return
	}

	items := make([]resumeResponse, 0, len(resumes))
	for _, r := range resumes {
		items = append(items, newResumeResponse(r))
	}

	c.JSON(http.StatusOK, items)
}

// CreateResume 保存一份新的简历。所有者取自认证上下文，从不信任客户端。
func (h *ResumeHandler) CreateResume(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "title and content are required")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	resume := database.Resume{
		Title:    req.Title,
		Content:  req.Content,
		Template: render.ParseTemplate(req.Template).String(),
		UserID:   userID,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&resume).Error; err != nil {
		Internal(c, "failed to create resume")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "resume created successfully",
		"resumeId": resume.ID,
	})
}

// UpdateResume 全量覆盖指定简历的标题、内容与模板。
func (h *ResumeHandler) UpdateResume(c *gin.Context) {
	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "title and content are required")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	resume, err := h.getOwnedResume(ctx, c.Param("id"), userID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	updates := map[string]any{
		"title":    req.Title,
		"content":  req.Content,
		"template": render.ParseTemplate(req.Template).String(),
	}
	if err := h.db.WithContext(ctx).Model(resume).Updates(updates).Error; err != nil {
		Internal(c, "failed to update resume")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "resume updated successfully"})
}

// DeleteResume 删除指定简历，并清理已生成的 PDF 对象。
func (h *ResumeHandler) DeleteResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	resume, err := h.getOwnedResume(ctx, c.Param("id"), userID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.Resume{}, resume.ID).Error; err != nil {
		Internal(c, "failed to delete resume")
		return
	}

	// 行已删除；PDF 对象清理尽力而为，失败不影响响应。
	if h.storage != nil && resume.PdfURL != "" {
		if err := h.storage.DeleteObject(ctx, resume.PdfURL); err != nil && !storage.IsNoSuchKey(err) {
			middleware.LoggerFromContext(c).Warn("delete pdf object failed", slog.Any("error", err))
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "resume deleted successfully"})
}

// ExportResume 将 PDF 导出任务入队并立即返回 202。
func (h *ResumeHandler) ExportResume(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	resume, err := h.getOwnedResume(ctx, c.Param("id"), userID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	requestID := middleware.GetRequestID(c)
	task, err := tasks.NewPDFExportTask(resume.ID, requestID)
	if err != nil {
		Internal(c, "failed to create task")
		return
	}

	info, err := h.asynqClient.Enqueue(task, asynq.MaxRetry(5))
	if err != nil {
		Internal(c, "failed to enqueue pdf export")
		return
	}

	c.JSON(http.StatusAccepted, gin.H{
		"message": "PDF export request accepted",
		"task_id": info.ID,
	})
}

// GetExportLink 生成简历 PDF 的预签名下载链接。
func (h *ResumeHandler) GetExportLink(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	resume, err := h.getOwnedResume(ctx, c.Param("id"), userID)
	if err != nil {
		respondResumeError(c, err)
		return
	}

	if resume.PdfURL == "" {
		Conflict(c, "pdf not ready")
		return
	}

	signedURL, err := h.storage.GeneratePresignedURL(ctx, resume.PdfURL, 5*time.Minute)
	if err != nil {
		Internal(c, "failed to generate download link")
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": signedURL})
}

// getOwnedResume 按主键取出简历并核对归属。
// 记录不存在与归属他人是两类错误：前者 404，后者 403。
// 永远不信任客户端提交的所有者字段。
func (h *ResumeHandler) getOwnedResume(ctx context.Context, idParam string, userID uint) (*database.Resume, error) {
	resumeID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, errInvalidID
	}

	var resume database.Resume
	if err := h.db.WithContext(ctx).First(&resume, uint(resumeID)).Error; err != nil {
		return nil, err
	}

	if resume.UserID != userID {
		return nil, errNotOwner
	}

	return &resume, nil
}

func respondResumeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidID):
		BadRequest(c, "invalid resume id")
	case errors.Is(err, errNotOwner):
		Forbidden(c, "not the owner of this resume")
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "resume not found")
	default:
		Internal(c, "failed to query resume")
	}
}

func userIDFromContext(c *gin.Context) (uint, bool) {
	value, exists := c.Get("userID")
	if !exists {
		return 0, false
	}

	id, ok := value.(uint)
	return id, ok
}

func newResumeResponse(resume database.Resume) resumeResponse {
	return resumeResponse{
		ID:        resume.ID,
		Title:     resume.Title,
		Content:   resume.Content,
		Template:  resume.Template,
		PdfStatus: resume.PdfStatus,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	}
}
