package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"careerdesk/internal/database"
)

// JobHandler 负责求职申请记录的增删改查。
type JobHandler struct {
	db *gorm.DB
}

// NewJobHandler 构造 JobHandler。
func NewJobHandler(db *gorm.DB) *JobHandler {
	return &JobHandler{db: db}
}

type jobRequest struct {
	Company     string `json:"company" binding:"required"`
	Role        string `json:"role" binding:"required"`
	Status      string `json:"status" binding:"omitempty,oneof=Applied Interview Offer Rejected"`
	Notes       string `json:"notes"`
	AppliedDate string `json:"appliedDate"`
}

type jobResponse struct {
	ID          uint      `json:"id"`
	Company     string    `json:"company"`
	Role        string    `json:"role"`
	Status      string    `json:"status"`
	Notes       string    `json:"notes"`
	AppliedDate string    `json:"appliedDate"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ListJobs 列出用户全部求职记录，最近创建的在前。
func (h *JobHandler) ListJobs(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	var jobs []database.Job
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&jobs).Error; err != nil {
		Internal(c, "failed to list jobs")
		return
	}

	items := make([]jobResponse, 0, len(jobs))
	for _, j := range jobs {
		items = append(items, newJobResponse(j))
	}

	c.JSON(http.StatusOK, items)
}

// CreateJob 新增一条求职记录。状态缺省为 Applied，申请日期缺省为当天。
func (h *JobHandler) CreateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "company and role are required")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	status := req.Status
	if status == "" {
		status = "Applied"
	}
	appliedDate := req.AppliedDate
	if appliedDate == "" {
		appliedDate = time.Now().Format("2006-01-02")
	}

	job := database.Job{
		Company:     req.Company,
		Role:        req.Role,
		Status:      status,
		Notes:       req.Notes,
		AppliedDate: appliedDate,
		UserID:      userID,
	}

	if err := h.db.WithContext(c.Request.Context()).Create(&job).Error; err != nil {
		Internal(c, "failed to create job")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "job added successfully",
		"jobId":   job.ID,
	})
}

// UpdateJob 全量覆盖指定求职记录。
func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req jobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "company and role are required")
		return
	}

	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	job, err := h.getOwnedJob(ctx, c.Param("id"), userID)
	if err != nil {
		respondJobError(c, err)
		return
	}

	status := req.Status
	if status == "" {
		status = job.Status
	}

	updates := map[string]any{
		"company":      req.Company,
		"role":         req.Role,
		"status":       status,
		"notes":        req.Notes,
		"applied_date": req.AppliedDate,
	}
	if err := h.db.WithContext(ctx).Model(job).Updates(updates).Error; err != nil {
		Internal(c, "failed to update job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job updated successfully"})
}

// DeleteJob 删除指定求职记录。
func (h *JobHandler) DeleteJob(c *gin.Context) {
	userID, ok := userIDFromContext(c)
	if !ok {
		AbortUnauthorized(c)
		return
	}

	ctx := c.Request.Context()
	job, err := h.getOwnedJob(ctx, c.Param("id"), userID)
	if err != nil {
		respondJobError(c, err)
		return
	}

	if err := h.db.WithContext(ctx).Delete(&database.Job{}, job.ID).Error; err != nil {
		Internal(c, "failed to delete job")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job deleted successfully"})
}

// getOwnedJob 按主键取出记录并核对归属，与简历侧保持同一套检查顺序。
func (h *JobHandler) getOwnedJob(ctx context.Context, idParam string, userID uint) (*database.Job, error) {
	jobID, err := strconv.ParseUint(idParam, 10, 64)
	if err != nil {
		return nil, errInvalidID
	}

	var job database.Job
	if err := h.db.WithContext(ctx).First(&job, uint(jobID)).Error; err != nil {
		return nil, err
	}

	if job.UserID != userID {
		return nil, errNotOwner
	}

	return &job, nil
}

func respondJobError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errInvalidID):
		BadRequest(c, "invalid job id")
	case errors.Is(err, errNotOwner):
		Forbidden(c, "not the owner of this job")
	case errors.Is(err, gorm.ErrRecordNotFound):
		NotFound(c, "job not found")
	default:
		Internal(c, "failed to query job")
	}
}

func newJobResponse(job database.Job) jobResponse {
	return jobResponse{
		ID:          job.ID,
		Company:     job.Company,
		Role:        job.Role,
		Status:      job.Status,
		Notes:       job.Notes,
		AppliedDate: job.AppliedDate,
		CreatedAt:   job.CreatedAt,
	}
}
