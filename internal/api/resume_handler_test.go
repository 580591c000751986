package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"careerdesk/internal/database"
)

func createResume(t *testing.T, router *gin.Engine, token string, body gin.H) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/resumes", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create resume: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		ResumeID uint `json:"resumeId"`
	}
	decodeBody(t, w, &resp)
	if resp.ResumeID == 0 {
		t.Fatal("create resume: missing id in response")
	}
	return resp.ResumeID
}

type resumeItem struct {
	ID       uint           `json:"id"`
	Title    string         `json:"title"`
	Content  map[string]any `json:"content"`
	Template string         `json:"template"`
}

func listResumes(t *testing.T, router *gin.Engine, token string) []resumeItem {
	t.Helper()
	w := doJSON(t, router, http.MethodGet, "/resumes", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list resumes: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var items []resumeItem
	decodeBody(t, w, &items)
	return items
}

func TestResumeRoundTrip(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	content := gin.H{
		"name":     "Jane",
		"jobTitle": "Engineer",
		"skills":   "Go, SQL",
	}
	id := createResume(t, router, token, gin.H{
		"title":    "My Resume",
		"content":  content,
		"template": "modern",
	})

	items := listResumes(t, router, token)
	if len(items) != 1 {
		t.Fatalf("expected 1 resume, got %d", len(items))
	}
	got := items[0]
	if got.ID != id || got.Title != "My Resume" || got.Template != "modern" {
		t.Fatalf("unexpected resume: %+v", got)
	}
	if got.Content["name"] != "Jane" || got.Content["jobTitle"] != "Engineer" || got.Content["skills"] != "Go, SQL" {
		t.Fatalf("content did not round-trip: %+v", got.Content)
	}
}

func TestResumeUnknownTemplateFallsBack(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	createResume(t, router, token, gin.H{
		"title":    "My Resume",
		"content":  gin.H{"name": "Jane"},
		"template": "fancy-nonexistent",
	})

	items := listResumes(t, router, token)
	if len(items) != 1 || items[0].Template != "classic" {
		t.Fatalf("expected fallback to classic template, got %+v", items)
	}
}

func TestResumeValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	w := doJSON(t, router, http.MethodPost, "/resumes", token, gin.H{
		"content": gin.H{"name": "Jane"},
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing title: expected 400 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPost, "/resumes", token, gin.H{
		"title": "My Resume",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing content: expected 400 got %d", w.Code)
	}
}

func TestResumeListOrderedByLastUpdate(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	first := createResume(t, router, token, gin.H{"title": "First", "content": gin.H{"name": "Jane"}})
	time.Sleep(10 * time.Millisecond)
	second := createResume(t, router, token, gin.H{"title": "Second", "content": gin.H{"name": "Jane"}})

	items := listResumes(t, router, token)
	if len(items) != 2 || items[0].ID != second {
		t.Fatalf("expected most recently updated first, got %+v", items)
	}

	time.Sleep(10 * time.Millisecond)
	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/resumes/%d", first), token, gin.H{
		"title":    "First (edited)",
		"content":  gin.H{"name": "Jane"},
		"template": "classic",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update resume: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	items = listResumes(t, router, token)
	if len(items) != 2 || items[0].ID != first || items[0].Title != "First (edited)" {
		t.Fatalf("expected edited resume first, got %+v", items)
	}
}

func TestResumeUpdateNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	w := doJSON(t, router, http.MethodPut, "/resumes/9999", token, gin.H{
		"title":    "Ghost",
		"content":  gin.H{"name": "Jane"},
		"template": "classic",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/resumes/9999", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete missing: expected 404 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, "/resumes/not-a-number", token, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400 got %d", w.Code)
	}
}

func TestResumeOwnershipEnforced(t *testing.T) {
	router, db, _ := newTestRouter(t)
	ownerToken, _ := registerUser(t, router, "Alice", "alice@example.com", "s3cret-pass")
	otherToken, _ := registerUser(t, router, "Bob", "bob@example.com", "s3cret-pass")

	id := createResume(t, router, ownerToken, gin.H{
		"title":   "Alice Resume",
		"content": gin.H{"name": "Alice"},
	})

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/resumes/%d", id), otherToken, gin.H{
		"title":    "Hijacked",
		"content":  gin.H{"name": "Bob"},
		"template": "classic",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update: expected 403 got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/resumes/%d", id), otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403 got %d", w.Code)
	}

	// 被拒绝的操作不得改动原记录。
	var stored database.Resume
	if err := db.First(&stored, id).Error; err != nil {
		t.Fatalf("reload resume: %v", err)
	}
	if stored.Title != "Alice Resume" {
		t.Fatalf("record mutated by forbidden request: %+v", stored)
	}
}

func TestResumeDelete(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	id := createResume(t, router, token, gin.H{
		"title":   "My Resume",
		"content": gin.H{"name": "Jane"},
	})

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/resumes/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	if items := listResumes(t, router, token); len(items) != 0 {
		t.Fatalf("expected empty list after delete, got %+v", items)
	}

	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/resumes/%d", id), token, gin.H{
		"title":    "Ghost",
		"content":  gin.H{"name": "Jane"},
		"template": "classic",
	})
	if w.Code != http.StatusNotFound {
		t.Fatalf("update deleted: expected 404 got %d", w.Code)
	}
}
