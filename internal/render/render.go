package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"careerdesk/internal/resume"
)

// Template identifies one of the fixed resume layouts.
type Template int

const (
	Classic Template = iota
	Modern
	Minimal
	Professional
	Creative
)

// DefaultTemplate is used whenever a stored identifier cannot be resolved.
const DefaultTemplate = Classic

var templateNames = map[Template]string{
	Classic:      "classic",
	Modern:       "modern",
	Minimal:      "minimal",
	Professional: "professional",
	Creative:     "creative",
}

// String returns the wire identifier of the template.
func (t Template) String() string {
	if name, ok := templateNames[t]; ok {
		return name
	}
	return templateNames[DefaultTemplate]
}

// ParseTemplate resolves a stored template identifier.
// Unknown identifiers fall back to the default layout.
func ParseTemplate(name string) Template {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "modern":
		return Modern
	case "minimal":
		return Minimal
	case "professional":
		return Professional
	case "creative":
		return Creative
	default:
		return DefaultTemplate
	}
}

// Names lists the valid template identifiers.
func Names() []string {
	return []string{"classic", "modern", "minimal", "professional", "creative"}
}

// SplitSkills 把逗号分隔的技能串拆成有序列表：逐项去空白、丢弃空项。
// 存储与 API 层始终保留原始字符串，仅渲染时拆分。
func SplitSkills(skills string) []string {
	if strings.TrimSpace(skills) == "" {
		return nil
	}
	parts := strings.Split(skills, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			result = append(result, s)
		}
	}
	return result
}

// page 是传入各布局模板的数据。Skills 为预先拆分后的列表。
type page struct {
	resume.Content
	Skills []string
}

var funcMap = template.FuncMap{
	"join": strings.Join,
}

var layouts = map[Template]*template.Template{
	Classic:      template.Must(template.New("classic").Funcs(funcMap).Parse(classicTemplate)),
	Modern:       template.Must(template.New("modern").Funcs(funcMap).Parse(modernTemplate)),
	Minimal:      template.Must(template.New("minimal").Funcs(funcMap).Parse(minimalTemplate)),
	Professional: template.Must(template.New("professional").Funcs(funcMap).Parse(professionalTemplate)),
	Creative:     template.Must(template.New("creative").Funcs(funcMap).Parse(creativeTemplate)),
}

// Render 将结构化简历内容按指定布局渲染为完整 HTML 文档。
// 纯函数：无状态、无 I/O，相同输入产生字节级一致的输出。
func Render(content resume.Content, tpl Template) (string, error) {
	layout, ok := layouts[tpl]
	if !ok {
		layout = layouts[DefaultTemplate]
	}

	data := page{
		Content: content,
		Skills:  SplitSkills(content.Skills),
	}

	var buf bytes.Buffer
	if err := layout.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render %s layout: %w", tpl, err)
	}
	return buf.String(), nil
}
