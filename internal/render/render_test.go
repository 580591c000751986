package render

import (
	"reflect"
	"strings"
	"testing"

	"careerdesk/internal/resume"
)

func sampleContent() resume.Content {
	return resume.Content{
		Name:       "Jane Doe",
		JobTitle:   "Engineer",
		Email:      "jane@example.com",
		Phone:      "123-456-7890",
		Summary:    "Builds reliable backend systems.",
		Skills:     "Go, SQL, Docker",
		Experience: "Acme Corp - Backend Engineer (2021-2024)",
		Education:  "BSc Computer Science",
	}
}

func TestRenderIdempotent(t *testing.T) {
	content := sampleContent()
	for _, tpl := range []Template{Classic, Modern, Minimal, Professional, Creative} {
		first, err := Render(content, tpl)
		if err != nil {
			t.Fatalf("render %s: %v", tpl, err)
		}
		second, err := Render(content, tpl)
		if err != nil {
			t.Fatalf("render %s again: %v", tpl, err)
		}
		if first != second {
			t.Fatalf("%s layout is not idempotent", tpl)
		}
	}
}

func TestRenderContainsContent(t *testing.T) {
	html, err := Render(sampleContent(), Modern)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, want := range []string{"Jane Doe", "Engineer", "jane@example.com", "Docker"} {
		if !strings.Contains(html, want) {
			t.Fatalf("rendered document missing %q", want)
		}
	}
}

func TestRenderOmitsAbsentFields(t *testing.T) {
	content := resume.Content{Name: "Jane Doe"}
	for _, tpl := range []Template{Classic, Modern, Minimal, Professional, Creative} {
		html, err := Render(content, tpl)
		if err != nil {
			t.Fatalf("render %s: %v", tpl, err)
		}
		for _, absent := range []string{"Summary", "Experience", "Education", "About"} {
			if strings.Contains(html, ">"+absent+"<") {
				t.Fatalf("%s layout rendered heading for absent field %q", tpl, absent)
			}
		}
	}
}

func TestParseTemplateFallback(t *testing.T) {
	cases := map[string]Template{
		"classic":        Classic,
		"modern":         Modern,
		"Minimal":        Minimal,
		" professional ": Professional,
		"creative":       Creative,
		"unknown":        Classic,
		"":               Classic,
	}
	for input, want := range cases {
		if got := ParseTemplate(input); got != want {
			t.Fatalf("ParseTemplate(%q) = %s, want %s", input, got, want)
		}
	}
}

func TestSplitSkills(t *testing.T) {
	got := SplitSkills("Go, SQL , ,Docker,")
	want := []string{"Go", "SQL", "Docker"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitSkills = %v, want %v", got, want)
	}

	if SplitSkills("   ") != nil {
		t.Fatal("expected nil for blank skills string")
	}
}

func TestRenderUnknownTemplateUsesDefault(t *testing.T) {
	content := sampleContent()
	fallback, err := Render(content, Template(99))
	if err != nil {
		t.Fatalf("render unknown template: %v", err)
	}
	classic, err := Render(content, Classic)
	if err != nil {
		t.Fatalf("render classic: %v", err)
	}
	if fallback != classic {
		t.Fatal("unknown template must fall back to the default layout")
	}
}
