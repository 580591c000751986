package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
)

func createJob(t *testing.T, router *gin.Engine, token string, body gin.H) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/jobs", token, body)
	if w.Code != http.StatusCreated {
		t.Fatalf("create job: expected 201 got %d body=%s", w.Code, w.Body.String())
	}
	var resp struct {
		JobID uint `json:"jobId"`
	}
	decodeBody(t, w, &resp)
	if resp.JobID == 0 {
		t.Fatal("create job: missing id in response")
	}
	return resp.JobID
}

func listJobs(t *testing.T, router *gin.Engine, token string) []jobResponse {
	t.Helper()
	w := doJSON(t, router, http.MethodGet, "/jobs", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list jobs: expected 200 got %d body=%s", w.Code, w.Body.String())
	}
	var items []jobResponse
	decodeBody(t, w, &items)
	return items
}

func TestJobCreateDefaults(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	createJob(t, router, token, gin.H{
		"company": "Acme",
		"role":    "Engineer",
	})

	items := listJobs(t, router, token)
	if len(items) != 1 {
		t.Fatalf("expected 1 job, got %d", len(items))
	}
	got := items[0]
	if got.Status != "Applied" {
		t.Fatalf("expected default status Applied, got %q", got.Status)
	}
	if got.AppliedDate != time.Now().Format("2006-01-02") {
		t.Fatalf("expected today's applied date, got %q", got.AppliedDate)
	}
}

func TestJobListOrderedByCreation(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	for _, status := range []string{"Applied", "Interview", "Offer"} {
		createJob(t, router, token, gin.H{
			"company":     "Acme",
			"role":        "Engineer",
			"status":      status,
			"appliedDate": "2026-08-01",
		})
		time.Sleep(10 * time.Millisecond)
	}

	items := listJobs(t, router, token)
	if len(items) != 3 {
		t.Fatalf("expected 3 jobs, got %d", len(items))
	}
	// 最近创建的在前。
	want := []string{"Offer", "Interview", "Applied"}
	for i, status := range want {
		if items[i].Status != status {
			t.Fatalf("position %d: expected %s got %s (%+v)", i, status, items[i].Status, items)
		}
	}
}

func TestJobValidation(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	cases := []struct {
		name string
		body gin.H
	}{
		{"missing company", gin.H{"role": "Engineer"}},
		{"missing role", gin.H{"company": "Acme"}},
		{"unknown status", gin.H{"company": "Acme", "role": "Engineer", "status": "Ghosted"}},
	}
	for _, tc := range cases {
		w := doJSON(t, router, http.MethodPost, "/jobs", token, tc.body)
		if w.Code != http.StatusBadRequest {
			t.Errorf("%s: expected 400 got %d body=%s", tc.name, w.Code, w.Body.String())
		}
	}
}

func TestJobUpdate(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	id := createJob(t, router, token, gin.H{
		"company":     "Acme",
		"role":        "Engineer",
		"status":      "Interview",
		"notes":       "phone screen done",
		"appliedDate": "2026-08-01",
	})

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/jobs/%d", id), token, gin.H{
		"company":     "Acme",
		"role":        "Senior Engineer",
		"status":      "Offer",
		"notes":       "offer received",
		"appliedDate": "2026-08-01",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	items := listJobs(t, router, token)
	if len(items) != 1 {
		t.Fatalf("expected 1 job, got %d", len(items))
	}
	got := items[0]
	if got.Role != "Senior Engineer" || got.Status != "Offer" || got.Notes != "offer received" {
		t.Fatalf("update not applied: %+v", got)
	}
}

func TestJobUpdateKeepsStatusWhenOmitted(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	id := createJob(t, router, token, gin.H{
		"company": "Acme",
		"role":    "Engineer",
		"status":  "Interview",
	})

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/jobs/%d", id), token, gin.H{
		"company": "Acme Corp",
		"role":    "Engineer",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("update: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	items := listJobs(t, router, token)
	if len(items) != 1 || items[0].Status != "Interview" {
		t.Fatalf("expected status to survive omission, got %+v", items)
	}
}

func TestJobOwnershipEnforced(t *testing.T) {
	router, _, _ := newTestRouter(t)
	ownerToken, _ := registerUser(t, router, "Alice", "alice@example.com", "s3cret-pass")
	otherToken, _ := registerUser(t, router, "Bob", "bob@example.com", "s3cret-pass")

	id := createJob(t, router, ownerToken, gin.H{
		"company": "Acme",
		"role":    "Engineer",
	})

	w := doJSON(t, router, http.MethodPut, fmt.Sprintf("/jobs/%d", id), otherToken, gin.H{
		"company": "Evil Inc",
		"role":    "Engineer",
	})
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign update: expected 403 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), otherToken, nil)
	if w.Code != http.StatusForbidden {
		t.Fatalf("foreign delete: expected 403 got %d", w.Code)
	}

	// 各自只能看到自己的记录。
	if items := listJobs(t, router, otherToken); len(items) != 0 {
		t.Fatalf("expected empty list for other user, got %+v", items)
	}
	if items := listJobs(t, router, ownerToken); len(items) != 1 || items[0].Company != "Acme" {
		t.Fatalf("owner list changed: %+v", items)
	}
}

func TestJobDeleteAndNotFound(t *testing.T) {
	router, _, _ := newTestRouter(t)
	token, _ := registerUser(t, router, "Jane", "jane@example.com", "s3cret-pass")

	id := createJob(t, router, token, gin.H{
		"company": "Acme",
		"role":    "Engineer",
	})

	w := doJSON(t, router, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("delete: expected 200 got %d body=%s", w.Code, w.Body.String())
	}

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/jobs/%d", id), token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("delete again: expected 404 got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPut, "/jobs/abc", token, gin.H{
		"company": "Acme",
		"role":    "Engineer",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad id: expected 400 got %d", w.Code)
	}
}
