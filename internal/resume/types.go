package resume

// Content 表示存储在简历 Content(JSONB) 中的结构化数据。
// 所有字段均为可选；缺失字段在渲染时整段省略，而不是渲染空占位。
// Skills 保持逗号分隔的字符串，与存储及 API 边界格式一致。
type Content struct {
	Name       string `json:"name,omitempty"`
	JobTitle   string `json:"jobTitle,omitempty"`
	Email      string `json:"email,omitempty"`
	Phone      string `json:"phone,omitempty"`
	Location   string `json:"location,omitempty"`
	LinkedIn   string `json:"linkedin,omitempty"`
	GitHub     string `json:"github,omitempty"`
	Summary    string `json:"summary,omitempty"`
	Skills     string `json:"skills,omitempty"`
	Experience string `json:"experience,omitempty"`
	Education  string `json:"education,omitempty"`
}
