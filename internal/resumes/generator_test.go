package resumes

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"jumysal-backend/internal/llm"
)

type fakeLLM struct {
	// responses maps model name to output or error.
	outputs map[string]string
	errs    map[string]error
	calls   []string
}

func (f *fakeLLM) GenerateResume(ctx context.Context, input llm.GenerateInput) (string, error) {
	f.calls = append(f.calls, input.Model)
	if err, ok := f.errs[input.Model]; ok {
		return "", err
	}
	return f.outputs[input.Model], nil
}

var testModels = []string{"model-a", "model-b", "model-c"}

func validAIOutput(name string) string {
	return `<div style="margin:0"><h1>` + name + `</h1>` + strings.Repeat("достижения и опыт ", 50) + `</div>`
}

func newTestGenerator(client llm.Client, repo Repo) *Generator {
	return &Generator{
		LLM:    client,
		Models: testModels,
		Repo:   repo,
		Sleep:  noSleep,
	}
}

func TestGenerateAISuccess(t *testing.T) {
	snap := sampleSnapshot()
	client := &fakeLLM{outputs: map[string]string{"model-a": validAIOutput(snap.DisplayName)}}
	repo := NewMemoryRepo()
	gen := newTestGenerator(client, repo)

	result, err := gen.Generate(context.Background(), "user-1", snap, StyleStandard)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceAI {
		t.Fatalf("source = %q, want %q", result.Source, SourceAI)
	}
	if result.Warning != "" {
		t.Fatalf("unexpected warning: %q", result.Warning)
	}
	if len(client.calls) != 1 {
		t.Fatalf("expected a single model call, got %v", client.calls)
	}

	stored, err := repo.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("stored resume missing: %v", err)
	}
	if stored.HTML != result.HTML {
		t.Fatal("stored HTML does not match returned HTML")
	}
}

func TestGenerateWalksModelsInOrder(t *testing.T) {
	snap := sampleSnapshot()
	client := &fakeLLM{
		errs:    map[string]error{"model-a": errors.New("boom"), "model-b": errors.New("boom")},
		outputs: map[string]string{"model-c": validAIOutput(snap.DisplayName)},
	}
	gen := newTestGenerator(client, NewMemoryRepo())

	result, err := gen.Generate(context.Background(), "user-1", snap, StyleModern)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceAI {
		t.Fatalf("source = %q, want %q", result.Source, SourceAI)
	}
	want := []string{"model-a", "model-b", "model-c"}
	if len(client.calls) != len(want) {
		t.Fatalf("calls = %v, want %v", client.calls, want)
	}
	for i := range want {
		if client.calls[i] != want[i] {
			t.Fatalf("calls = %v, want %v", client.calls, want)
		}
	}
}

func TestGenerateQuotaFallbackWithWarning(t *testing.T) {
	snap := sampleSnapshot()
	quotaErr := errors.New("gemini model=model-a status 429: quota exceeded")
	client := &fakeLLM{errs: map[string]error{
		"model-a": quotaErr, "model-b": quotaErr, "model-c": quotaErr,
	}}
	repo := NewMemoryRepo()
	gen := newTestGenerator(client, repo)

	result, err := gen.Generate(context.Background(), "user-1", snap, StyleProfessional)
	if err != nil {
		t.Fatalf("fallback path should not error: %v", err)
	}
	if result.Source != SourceTemplate {
		t.Fatalf("source = %q, want %q", result.Source, SourceTemplate)
	}
	if !strings.Contains(result.Warning, "лимит") {
		t.Fatalf("warning should mention the quota limit: %q", result.Warning)
	}
	if !strings.Contains(result.HTML, snap.DisplayName) {
		t.Fatal("fallback resume must include the candidate name")
	}

	stored, err := repo.GetByUserID(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("fallback resume not persisted: %v", err)
	}
	if stored.Source != SourceTemplate {
		t.Fatalf("stored source = %q, want %q", stored.Source, SourceTemplate)
	}
}

func TestGenerateInvalidOutputSilentFallback(t *testing.T) {
	snap := sampleSnapshot()
	client := &fakeLLM{outputs: map[string]string{"model-a": "<div>too short</div>"}}
	gen := newTestGenerator(client, NewMemoryRepo())

	result, err := gen.Generate(context.Background(), "user-1", snap, StyleAcademic)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Source != SourceTemplate {
		t.Fatalf("source = %q, want %q", result.Source, SourceTemplate)
	}
	// The swap to the template is silent for invalid output.
	if result.Warning != "" {
		t.Fatalf("unexpected warning: %q", result.Warning)
	}
}

func TestGenerateInvalidOutputSuppressedFallback(t *testing.T) {
	snap := sampleSnapshot()
	client := &fakeLLM{outputs: map[string]string{"model-a": "<div>too short</div>"}}
	repo := NewMemoryRepo()
	gen := newTestGenerator(client, repo)
	gen.SuppressFallbackOnInvalidOutput = true

	_, err := gen.Generate(context.Background(), "user-1", snap, StyleAcademic)
	if !errors.Is(err, ErrInvalidOutput) {
		t.Fatalf("got %v, want ErrInvalidOutput", err)
	}

	// Nothing should be stored; a previously generated resume stays intact.
	if _, err := repo.GetByUserID(context.Background(), "user-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected no stored resume, got %v", err)
	}
}

type failingRepo struct{ Repo }

func (failingRepo) Save(ctx context.Context, resume GeneratedResume) error {
	return errors.New("db down")
}

func TestGenerateSaveFailureIsNonFatal(t *testing.T) {
	snap := sampleSnapshot()
	client := &fakeLLM{outputs: map[string]string{"model-a": validAIOutput(snap.DisplayName)}}
	gen := newTestGenerator(client, failingRepo{Repo: NewMemoryRepo()})

	result, err := gen.Generate(context.Background(), "user-1", snap, StyleStandard)
	if err != nil {
		t.Fatalf("save failure must not fail the request: %v", err)
	}
	if result.Source != SourceAI {
		t.Fatalf("source = %q, want %q", result.Source, SourceAI)
	}
}

func TestGenerateCancelledContext(t *testing.T) {
	snap := sampleSnapshot()
	ctx, cancel := context.WithCancel(context.Background())
	client := &fakeLLM{errs: map[string]error{
		"model-a": errors.New("boom"), "model-b": errors.New("boom"), "model-c": errors.New("boom"),
	}}
	gen := newTestGenerator(client, NewMemoryRepo())
	gen.Sleep = func(ctx context.Context, d time.Duration) error {
		cancel()
		return ctx.Err()
	}

	if _, err := gen.Generate(ctx, "user-1", snap, StyleStandard); !errors.Is(err, context.Canceled) {
		t.Fatalf("got %v, want context.Canceled", err)
	}
}

func TestGenerateEmptyUserID(t *testing.T) {
	gen := newTestGenerator(&fakeLLM{}, NewMemoryRepo())
	if _, err := gen.Generate(context.Background(), "", sampleSnapshot(), StyleStandard); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("got %v, want ErrInvalidInput", err)
	}
}
