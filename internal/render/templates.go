package render

// 各布局的 HTML 模板。页面尺寸按 A4 @ 96 DPI（794x1123px）固定，
// 与 PDF 打印时的 PreferCSSPageSize 配合保证所见即所得。

const classicTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @page { size: A4; margin: 0; }
    body { margin: 0; font-family: Georgia, 'Times New Roman', serif; color: #1f2937; }
    .a4-page { width: 794px; min-height: 1123px; background: white; box-sizing: border-box; padding: 56px 64px; }
    .header { text-align: center; border-bottom: 2px solid #1f2937; padding-bottom: 18px; margin-bottom: 28px; }
    .header h1 { font-size: 34px; margin: 0 0 6px; letter-spacing: 1px; }
    .header h2 { font-size: 18px; font-weight: normal; color: #4b5563; margin: 0 0 12px; }
    .contact { font-size: 12px; color: #6b7280; }
    .contact span + span::before { content: " | "; }
    .section { margin-bottom: 24px; }
    .section h3 { font-size: 15px; text-transform: uppercase; letter-spacing: 2px; border-bottom: 1px solid #9ca3af; padding-bottom: 4px; margin: 0 0 10px; }
    .section p, .section div { font-size: 13px; line-height: 1.6; white-space: pre-line; margin: 0; }
    .skills span { display: inline-block; font-size: 12px; border: 1px solid #9ca3af; border-radius: 3px; padding: 2px 8px; margin: 0 6px 6px 0; }
</style>
</head>
<body>
<div class="a4-page">
    <div class="header">
        {{with .Name}}<h1>{{.}}</h1>{{end}}
        {{with .JobTitle}}<h2>{{.}}</h2>{{end}}
        <div class="contact">
            {{with .Email}}<span>{{.}}</span>{{end}}
            {{with .Phone}}<span>{{.}}</span>{{end}}
            {{with .Location}}<span>{{.}}</span>{{end}}
            {{with .LinkedIn}}<span>{{.}}</span>{{end}}
            {{with .GitHub}}<span>{{.}}</span>{{end}}
        </div>
    </div>
    {{with .Summary}}<div class="section"><h3>Summary</h3><p>{{.}}</p></div>{{end}}
    {{if .Skills}}<div class="section skills"><h3>Skills</h3>{{range .Skills}}<span>{{.}}</span>{{end}}</div>{{end}}
    {{with .Experience}}<div class="section"><h3>Experience</h3><div>{{.}}</div></div>{{end}}
    {{with .Education}}<div class="section"><h3>Education</h3><div>{{.}}</div></div>{{end}}
</div>
</body>
</html>
`

const modernTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @page { size: A4; margin: 0; }
    body { margin: 0; font-family: 'Helvetica Neue', Arial, sans-serif; color: #374151; }
    .a4-page { width: 794px; min-height: 1123px; background: white; box-sizing: border-box; }
    .banner { background: linear-gradient(90deg, #2563eb, #4338ca); color: white; padding: 48px; }
    .banner h1 { font-size: 38px; margin: 0 0 6px; font-weight: bold; }
    .banner h2 { font-size: 20px; font-weight: 300; margin: 0 0 18px; }
    .banner .contact { font-size: 12px; }
    .banner .contact span { margin-right: 16px; }
    .content { padding: 48px; }
    .section { margin-bottom: 28px; }
    .section h3 { font-size: 18px; color: #1d4ed8; border-left: 6px solid #2563eb; padding-left: 10px; margin: 0 0 12px; }
    .section p, .section div { font-size: 13px; line-height: 1.65; white-space: pre-line; margin: 0; }
    .skills span { display: inline-block; background: linear-gradient(90deg, #3b82f6, #6366f1); color: white; font-size: 12px; font-weight: 600; border-radius: 999px; padding: 5px 14px; margin: 0 8px 8px 0; }
</style>
</head>
<body>
<div class="a4-page">
    <div class="banner">
        {{with .Name}}<h1>{{.}}</h1>{{end}}
        {{with .JobTitle}}<h2>{{.}}</h2>{{end}}
        <div class="contact">
            {{with .Email}}<span>&#9993; {{.}}</span>{{end}}
            {{with .Phone}}<span>&#9742; {{.}}</span>{{end}}
            {{with .Location}}<span>{{.}}</span>{{end}}
            {{with .LinkedIn}}<span>LinkedIn</span>{{end}}
            {{with .GitHub}}<span>GitHub</span>{{end}}
        </div>
    </div>
    <div class="content">
        {{with .Summary}}<div class="section"><h3>About Me</h3><p>{{.}}</p></div>{{end}}
        {{if .Skills}}<div class="section skills"><h3>Skills</h3>{{range .Skills}}<span>{{.}}</span>{{end}}</div>{{end}}
        {{with .Experience}}<div class="section"><h3>Experience</h3><div>{{.}}</div></div>{{end}}
        {{with .Education}}<div class="section"><h3>Education</h3><div>{{.}}</div></div>{{end}}
    </div>
</div>
</body>
</html>
`

const minimalTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @page { size: A4; margin: 0; }
    body { margin: 0; font-family: 'Helvetica Neue', Arial, sans-serif; color: #374151; }
    .a4-page { width: 794px; min-height: 1123px; background: white; box-sizing: border-box; padding: 72px; }
    .header { text-align: center; margin-bottom: 48px; }
    .header h1 { font-size: 36px; font-weight: 300; color: #111827; margin: 0 0 8px; letter-spacing: -0.5px; }
    .header h2 { font-size: 17px; font-weight: 300; color: #4b5563; margin: 0 0 18px; }
    .contact { font-size: 12px; color: #6b7280; }
    .contact span { margin: 0 12px; }
    .section { margin-bottom: 40px; }
    .section h3 { font-size: 11px; font-weight: 600; color: #9ca3af; text-transform: uppercase; letter-spacing: 4px; margin: 0 0 14px; }
    .section p, .section div { font-size: 13px; line-height: 1.7; white-space: pre-line; margin: 0; }
</style>
</head>
<body>
<div class="a4-page">
    <div class="header">
        {{with .Name}}<h1>{{.}}</h1>{{end}}
        {{with .JobTitle}}<h2>{{.}}</h2>{{end}}
        <div class="contact">
            {{with .Email}}<span>{{.}}</span>{{end}}
            {{with .Phone}}<span>{{.}}</span>{{end}}
            {{with .Location}}<span>{{.}}</span>{{end}}
        </div>
    </div>
    {{with .Summary}}<div class="section"><h3>Summary</h3><p>{{.}}</p></div>{{end}}
    {{if .Skills}}<div class="section"><h3>Skills</h3><p>{{join .Skills " • "}}</p></div>{{end}}
    {{with .Experience}}<div class="section"><h3>Experience</h3><div>{{.}}</div></div>{{end}}
    {{with .Education}}<div class="section"><h3>Education</h3><div>{{.}}</div></div>{{end}}
</div>
</body>
</html>
`

const professionalTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @page { size: A4; margin: 0; }
    body { margin: 0; font-family: 'Helvetica Neue', Arial, sans-serif; color: #374151; }
    .a4-page { width: 794px; min-height: 1123px; background: white; box-sizing: border-box; display: flex; }
    .sidebar { width: 260px; min-height: 1123px; background: #1f2937; color: #e5e7eb; box-sizing: border-box; padding: 48px 28px; }
    .sidebar h1 { font-size: 26px; color: white; margin: 0 0 6px; }
    .sidebar h2 { font-size: 14px; font-weight: normal; color: #9ca3af; margin: 0 0 28px; }
    .sidebar h3 { font-size: 12px; text-transform: uppercase; letter-spacing: 2px; color: #60a5fa; border-bottom: 1px solid #374151; padding-bottom: 6px; margin: 28px 0 10px; }
    .sidebar .contact div { font-size: 11px; margin-bottom: 8px; word-break: break-all; }
    .sidebar .skills div { font-size: 12px; background: #374151; border-radius: 3px; padding: 4px 8px; margin-bottom: 6px; }
    .main { flex: 1; box-sizing: border-box; padding: 48px 40px; }
    .main .section { margin-bottom: 30px; }
    .main h3 { font-size: 16px; color: #1f2937; text-transform: uppercase; letter-spacing: 1px; border-bottom: 2px solid #1f2937; padding-bottom: 6px; margin: 0 0 12px; }
    .main p, .main div.body { font-size: 13px; line-height: 1.65; white-space: pre-line; margin: 0; }
</style>
</head>
<body>
<div class="a4-page">
    <div class="sidebar">
        {{with .Name}}<h1>{{.}}</h1>{{end}}
        {{with .JobTitle}}<h2>{{.}}</h2>{{end}}
        <h3>Contact</h3>
        <div class="contact">
            {{with .Email}}<div>{{.}}</div>{{end}}
            {{with .Phone}}<div>{{.}}</div>{{end}}
            {{with .Location}}<div>{{.}}</div>{{end}}
            {{with .LinkedIn}}<div>{{.}}</div>{{end}}
            {{with .GitHub}}<div>{{.}}</div>{{end}}
        </div>
        {{if .Skills}}<h3>Skills</h3><div class="skills">{{range .Skills}}<div>{{.}}</div>{{end}}</div>{{end}}
    </div>
    <div class="main">
        {{with .Summary}}<div class="section"><h3>Profile</h3><p>{{.}}</p></div>{{end}}
        {{with .Experience}}<div class="section"><h3>Experience</h3><div class="body">{{.}}</div></div>{{end}}
        {{with .Education}}<div class="section"><h3>Education</h3><div class="body">{{.}}</div></div>{{end}}
    </div>
</div>
</body>
</html>
`

const creativeTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
<style>
    @page { size: A4; margin: 0; }
    body { margin: 0; font-family: 'Helvetica Neue', Arial, sans-serif; color: #374151; }
    .a4-page { width: 794px; min-height: 1123px; background: white; box-sizing: border-box; }
    .banner { background: linear-gradient(135deg, #9333ea, #db2777); color: white; padding: 56px 48px; border-radius: 0 0 48px 0; }
    .banner h1 { font-size: 40px; margin: 0 0 8px; font-weight: 800; }
    .banner h2 { font-size: 19px; font-weight: 300; margin: 0 0 20px; opacity: 0.9; }
    .banner .contact span { display: inline-block; background: rgba(255,255,255,0.18); border-radius: 999px; font-size: 12px; padding: 5px 14px; margin: 0 8px 8px 0; }
    .content { padding: 40px 48px; }
    .card { background: #faf5ff; border-left: 5px solid #9333ea; border-radius: 8px; padding: 18px 22px; margin-bottom: 22px; }
    .card h3 { font-size: 17px; color: #7e22ce; margin: 0 0 10px; }
    .card p, .card div { font-size: 13px; line-height: 1.65; white-space: pre-line; margin: 0; }
    .skills span { display: inline-block; background: #f3e8ff; color: #7e22ce; font-size: 12px; font-weight: 600; border-radius: 999px; padding: 5px 14px; margin: 0 8px 8px 0; }
</style>
</head>
<body>
<div class="a4-page">
    <div class="banner">
        {{with .Name}}<h1>{{.}}</h1>{{end}}
        {{with .JobTitle}}<h2>{{.}}</h2>{{end}}
        <div class="contact">
            {{with .Email}}<span>{{.}}</span>{{end}}
            {{with .Phone}}<span>{{.}}</span>{{end}}
            {{with .Location}}<span>{{.}}</span>{{end}}
            {{with .LinkedIn}}<span>LinkedIn</span>{{end}}
            {{with .GitHub}}<span>GitHub</span>{{end}}
        </div>
    </div>
    <div class="content">
        {{with .Summary}}<div class="card"><h3>About</h3><p>{{.}}</p></div>{{end}}
        {{if .Skills}}<div class="card skills"><h3>Skills</h3>{{range .Skills}}<span>{{.}}</span>{{end}}</div>{{end}}
        {{with .Experience}}<div class="card"><h3>Experience</h3><div>{{.}}</div></div>{{end}}
        {{with .Education}}<div class="card"><h3>Education</h3><div>{{.}}</div></div>{{end}}
    </div>
</div>
</body>
</html>
`
