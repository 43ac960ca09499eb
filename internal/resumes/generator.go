package resumes

import (
	"context"
	"errors"
	"time"

	"jumysal-backend/internal/llm"
	"jumysal-backend/internal/profiles"
	"jumysal-backend/internal/shared/metrics"
	"jumysal-backend/internal/shared/telemetry"
)

const backoffBase = 1000 * time.Millisecond

// Generator sequences AI generation attempts across an ordered model list and
// falls back to the deterministic template renderer whenever the AI path
// fails or produces output that does not pass the quality gate.
type Generator struct {
	LLM    llm.Client
	Models []string
	Repo   Repo

	// SuppressFallbackOnInvalidOutput surfaces ErrInvalidOutput instead of
	// rendering the template fallback when the AI output fails validation,
	// keeping whatever resume was stored before.
	SuppressFallbackOnInvalidOutput bool

	// Sleep is overridable for tests; nil means a real timer sleep.
	Sleep SleepFunc
}

// Result is the outcome of a generation run.
type Result struct {
	HTML        string
	Template    Style
	Source      string
	Warning     string
	GeneratedAt time.Time
}

// Generate runs the full pipeline for one user: AI attempts with exponential
// backoff, sanitization, quality gate, template fallback, persistence. The
// returned error is non-nil only when the context is cancelled or when
// invalid AI output is configured to suppress the fallback; every other
// failure path still yields a usable resume.
func (g *Generator) Generate(ctx context.Context, userID string, snap profiles.Snapshot, style Style) (Result, error) {
	if userID == "" {
		return Result{}, ErrInvalidInput
	}

	metrics.IncGenerationStarted()
	started := time.Now()
	defer func() {
		metrics.ObserveGenerationDurationMs(float64(time.Since(started).Milliseconds()))
	}()

	raw, genErr := g.generateWithRetry(ctx, snap, style)

	var result Result
	switch {
	case genErr == nil:
		fixed, valid := SanitizeGeneratedResume(raw, snap)
		if valid {
			metrics.IncGenerationAI()
			result = Result{HTML: fixed, Template: style, Source: SourceAI}
			break
		}
		telemetry.Warn("resume.invalid_output", map[string]any{
			"user_id": userID,
			"style":   string(style),
			"length":  len(fixed),
		})
		if g.SuppressFallbackOnInvalidOutput {
			metrics.IncGenerationFailed()
			return Result{}, ErrInvalidOutput
		}
		// Silent switch: the caller sees a normal success.
		metrics.IncGenerationFallback()
		result = Result{HTML: RenderTemplate(style, snap), Template: style, Source: SourceTemplate}

	case ctx.Err() != nil:
		return Result{}, genErr

	default:
		kind := ClassifyFailure(genErr)
		telemetry.Warn("resume.ai_failed", map[string]any{
			"user_id": userID,
			"style":   string(style),
			"kind":    int(kind),
			"error":   genErr.Error(),
		})
		metrics.IncGenerationFallback()
		result = Result{
			HTML:     RenderTemplate(style, snap),
			Template: style,
			Source:   SourceTemplate,
			Warning:  kind.UserMessage(),
		}
	}

	result.GeneratedAt = time.Now().UTC()

	record := GeneratedResume{
		UserID:      userID,
		HTML:        result.HTML,
		Template:    result.Template,
		Source:      result.Source,
		GeneratedAt: result.GeneratedAt,
	}
	if err := g.Repo.Save(ctx, record); err != nil {
		// Non-fatal: the caller still gets the rendered resume.
		telemetry.Warn("resume.save_failed", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
	}

	return result, nil
}

// generateWithRetry walks the ordered model list, one model per attempt, with
// exponential backoff between attempts.
func (g *Generator) generateWithRetry(ctx context.Context, snap profiles.Snapshot, style Style) (string, error) {
	models := g.Models
	if len(models) == 0 {
		return "", errors.New("no models configured")
	}

	var html string
	err := RetryWithBackoff(ctx, len(models), ExponentialBackoff(backoffBase), g.Sleep,
		func(ctx context.Context, attempt int) error {
			model := models[attempt-1]
			out, err := g.LLM.GenerateResume(ctx, llm.GenerateInput{
				Model:    model,
				Style:    string(style),
				Snapshot: snap,
			})
			if err != nil {
				telemetry.Warn("resume.attempt_failed", map[string]any{
					"attempt": attempt,
					"model":   model,
					"error":   err.Error(),
				})
				return err
			}
			html = out
			return nil
		})
	if err != nil {
		return "", err
	}
	return html, nil
}

// Get returns the stored resume for a user.
func (g *Generator) Get(ctx context.Context, userID string) (GeneratedResume, error) {
	if userID == "" {
		return GeneratedResume{}, ErrInvalidInput
	}
	return g.Repo.GetByUserID(ctx, userID)
}
