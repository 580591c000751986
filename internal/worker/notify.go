package worker

// 统一的 WebSocket 消息协议（通过 Redis Pub/Sub 转发给前端）。
// 注意：这里的字段名与前端解析保持一致。
type PDFExportNotifyMessage struct {
	Status       string `json:"status"`
	ResumeID     uint   `json:"resume_id"`
	RequestID    string `json:"request_id"`
	ErrorMessage string `json:"error_message,omitempty"`
}
