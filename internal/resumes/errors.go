package resumes

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound indicates no resume has been generated for the user yet.
	ErrNotFound = errors.New("resume not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInvalidOutput indicates the AI output failed the quality gate and
	// fallback rendering was suppressed by configuration.
	ErrInvalidOutput = errors.New("generated resume failed quality checks")
)

// FailureKind classifies a generation failure for user-facing messaging.
type FailureKind int

const (
	FailureUnknown FailureKind = iota
	FailureQuota
	FailureModelNotFound
	FailureTimeout
	FailureInvalidOutput
)

// ClassifyFailure inspects the error text the provider surfaced and buckets
// it into a failure kind.
func ClassifyFailure(err error) FailureKind {
	if err == nil {
		return FailureUnknown
	}
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "resource_exhausted"):
		return FailureQuota
	case strings.Contains(msg, "404") || strings.Contains(msg, "not found"):
		return FailureModelNotFound
	case strings.Contains(msg, "timed out") || strings.Contains(msg, "timeout") || strings.Contains(msg, "deadline exceeded"):
		return FailureTimeout
	case strings.Contains(msg, "invalid") || strings.Contains(msg, "incomplete"):
		return FailureInvalidOutput
	default:
		return FailureUnknown
	}
}

// UserMessage returns the localized warning shown alongside the fallback
// resume.
func (k FailureKind) UserMessage() string {
	switch k {
	case FailureQuota:
		return "Превышен лимит запросов к AI. Показана резервная версия резюме."
	case FailureModelNotFound:
		return "Модель AI временно недоступна. Показана резервная версия резюме."
	case FailureTimeout:
		return "AI не ответил вовремя. Показана резервная версия резюме."
	case FailureInvalidOutput:
		return "AI вернул некорректное резюме."
	default:
		return "Не удалось сгенерировать резюме через AI. Показана резервная версия."
	}
}
