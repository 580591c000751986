package tasks

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

// 任务类型常量，确保队列生产者与消费者一致。
const (
	TypePDFExport = "pdf:export"
)

// PDFExportPayload 描述导出 PDF 所需的最小信息。
// RequestID 贯穿 API 请求与后台任务，用于日志串联。
type PDFExportPayload struct {
	ResumeID  uint   `json:"resume_id"`
	RequestID string `json:"request_id"`
}

// NewPDFExportTask 构造一个新的简历 PDF 导出任务。
func NewPDFExportTask(resumeID uint, requestID string) (*asynq.Task, error) {
	payload, err := json.Marshal(PDFExportPayload{
		ResumeID:  resumeID,
		RequestID: requestID,
	})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypePDFExport, payload), nil
}
