package resumes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"jumysal-backend/internal/profiles"
	"jumysal-backend/internal/shared/server/middleware"
)

const guestUserID = "guest:test-guest"

type fakeExporter struct {
	pdf     []byte
	preview []byte
	err     error
}

func (f *fakeExporter) RenderPDF(ctx context.Context, html string) ([]byte, error) {
	return f.pdf, f.err
}

func (f *fakeExporter) RenderPreview(ctx context.Context, html string) ([]byte, error) {
	return f.preview, f.err
}

func newTestRouter(t *testing.T, gen *Generator, profilesSvc *profiles.Service, exporter Exporter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Auth("dev"))
	api := r.Group("/api/v1")
	NewHandler(gen, profilesSvc, exporter, nil).RegisterRoutes(api)
	return r
}

func seedProfile(t *testing.T, svc *profiles.Service) {
	t.Helper()
	_, err := svc.Update(context.Background(), profiles.Profile{
		UserID:      guestUserID,
		DisplayName: "Aigerim K.",
		Email:       "aigerim@example.kz",
		Skills:      []string{"Python"},
	})
	if err != nil {
		t.Fatalf("seed profile: %v", err)
	}
}

func TestGenerateEndpoint(t *testing.T) {
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	seedProfile(t, profilesSvc)

	client := &fakeLLM{outputs: map[string]string{"model-a": validAIOutput("Aigerim K.")}}
	gen := newTestGenerator(client, NewMemoryRepo())
	router := newTestRouter(t, gen, profilesSvc, nil)

	body := bytes.NewBufferString(`{"style":"standard"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/generate", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		HTML     string `json:"html"`
		Template string `json:"template"`
		Source   string `json:"source"`
		Warning  string `json:"warning"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Source != SourceAI {
		t.Fatalf("source = %q, want ai", out.Source)
	}
	if out.Template != "standard" {
		t.Fatalf("template = %q, want standard", out.Template)
	}
	if out.Warning != "" {
		t.Fatalf("unexpected warning: %q", out.Warning)
	}

	// The result is retrievable afterwards.
	reqGet := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	reqGet.Header.Set("X-Guest-Id", "test-guest")
	respGet := httptest.NewRecorder()
	router.ServeHTTP(respGet, reqGet)
	if respGet.Code != http.StatusOK {
		t.Fatalf("expected status 200 on fetch, got %d", respGet.Code)
	}
}

func TestGetResumeNotFound(t *testing.T) {
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	gen := newTestGenerator(&fakeLLM{}, NewMemoryRepo())
	router := newTestRouter(t, gen, profilesSvc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/resume", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", resp.Code)
	}
}

func TestExportEndpoint(t *testing.T) {
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	seedProfile(t, profilesSvc)

	repo := NewMemoryRepo()
	if err := repo.Save(context.Background(), GeneratedResume{
		UserID:      guestUserID,
		HTML:        "<div>резюме</div>",
		Template:    StyleModern,
		Source:      SourceTemplate,
		GeneratedAt: time.Now().UTC(),
	}); err != nil {
		t.Fatalf("seed resume: %v", err)
	}

	gen := newTestGenerator(&fakeLLM{}, repo)
	exporter := &fakeExporter{pdf: []byte("%PDF-1.7 fake")}
	router := newTestRouter(t, gen, profilesSvc, exporter)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/export", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", resp.Code, resp.Body.String())
	}
	if got := resp.Header().Get("Content-Type"); got != "application/pdf" {
		t.Fatalf("content type = %q, want application/pdf", got)
	}
	disposition := resp.Header().Get("Content-Disposition")
	if !bytes.Contains([]byte(disposition), []byte("Aigerim K._")) {
		t.Fatalf("unexpected content disposition: %q", disposition)
	}
	if !bytes.HasPrefix(resp.Body.Bytes(), []byte("%PDF")) {
		t.Fatal("response body is not the rendered PDF")
	}
}

func TestExportEndpointUnavailableWithoutExporter(t *testing.T) {
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	gen := newTestGenerator(&fakeLLM{}, NewMemoryRepo())
	router := newTestRouter(t, gen, profilesSvc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/export", nil)
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestGenerateAsyncWithoutQueue(t *testing.T) {
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	gen := newTestGenerator(&fakeLLM{}, NewMemoryRepo())
	router := newTestRouter(t, gen, profilesSvc, nil)

	body := bytes.NewBufferString(`{"style":"modern"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/generate-async", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected status 503, got %d", resp.Code)
	}
}

func TestExportFileName(t *testing.T) {
	now := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

	if got := ExportFileName("Aigerim K.", now); got != "Aigerim K._2026-03-14.pdf" {
		t.Fatalf("unexpected file name: %q", got)
	}
	if got := ExportFileName("", now); got != "resume_2026-03-14.pdf" {
		t.Fatalf("unexpected fallback file name: %q", got)
	}
	if got := ExportFileName("../evil", now); got != "resume_2026-03-14.pdf" {
		t.Fatalf("traversal should fall back to default: %q", got)
	}
}

func TestGenerateSuppressedInvalidOutputEndpoint(t *testing.T) {
	profilesSvc := &profiles.Service{Repo: profiles.NewMemoryRepo()}
	seedProfile(t, profilesSvc)

	client := &fakeLLM{outputs: map[string]string{"model-a": "<div>short</div>"}}
	gen := newTestGenerator(client, NewMemoryRepo())
	gen.SuppressFallbackOnInvalidOutput = true
	router := newTestRouter(t, gen, profilesSvc, nil)

	body := bytes.NewBufferString(`{"style":"modern"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/resume/generate", body)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Guest-Id", "test-guest")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadGateway {
		t.Fatalf("expected status 502, got %d: %s", resp.Code, resp.Body.String())
	}
}
