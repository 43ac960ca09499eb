// Package workerproc contains the queue-message handling logic for the
// background resume generation worker, kept separate from the SQS poll loop
// so it can be tested without AWS.
package workerproc

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"

	"jumysal-backend/internal/bootstrap"
	"jumysal-backend/internal/queue"
	"jumysal-backend/internal/resumes"
)

// MessageMeta captures details useful for logging and diagnostics.
type MessageMeta struct {
	BodyLen int
	BodySHA string
}

// ComputeMeta returns the body length and SHA-256 hash.
func ComputeMeta(body string) MessageMeta {
	if body == "" {
		return MessageMeta{BodyLen: 0, BodySHA: ""}
	}
	sum := sha256.Sum256([]byte(body))
	return MessageMeta{BodyLen: len(body), BodySHA: hex.EncodeToString(sum[:])}
}

// ErrEmptyBody indicates an empty queue payload.
type ErrEmptyBody struct {
	Meta MessageMeta
}

func (e ErrEmptyBody) Error() string { return "empty message body" }

// ErrDecode indicates a JSON decode failure.
type ErrDecode struct {
	Meta MessageMeta
	Err  error
}

func (e ErrDecode) Error() string {
	if e.Err == nil {
		return "decode message"
	}
	return "decode message: " + e.Err.Error()
}

// ErrMissingUserID indicates a message missing the user id.
type ErrMissingUserID struct {
	Meta      MessageMeta
	RequestID string
}

func (e ErrMissingUserID) Error() string { return "missing user id" }

// ErrProcess indicates processing failed after successful parsing.
type ErrProcess struct {
	UserID    string
	RequestID string
	Err       error
}

func (e ErrProcess) Error() string {
	if e.Err == nil {
		return "process generation"
	}
	return "process generation: " + e.Err.Error()
}

// ParseMessage validates and decodes the queue payload.
func ParseMessage(body string) (queue.Message, MessageMeta, error) {
	meta := ComputeMeta(body)
	if strings.TrimSpace(body) == "" {
		return queue.Message{}, meta, ErrEmptyBody{Meta: meta}
	}

	msg, err := queue.DecodeMessage([]byte(body))
	if err != nil {
		return queue.Message{}, meta, ErrDecode{Meta: meta, Err: err}
	}
	if strings.TrimSpace(msg.UserID) == "" {
		return msg, meta, ErrMissingUserID{Meta: meta, RequestID: msg.RequestID}
	}
	return msg, meta, nil
}

// HandleMessage parses, validates, and processes a message payload: it loads
// the user's profile snapshot and runs the full generation pipeline.
func HandleMessage(ctx context.Context, app *bootstrap.App, body string) error {
	if app == nil || app.ResumeGenerator == nil || app.ProfilesService == nil {
		return errors.New("resume generator not configured")
	}

	msg, _, err := ParseMessage(body)
	if err != nil {
		return err
	}

	snap, err := app.ProfilesService.Snapshot(ctx, msg.UserID, "", "")
	if err != nil {
		return ErrProcess{UserID: msg.UserID, RequestID: msg.RequestID, Err: err}
	}

	style := resumes.ParseStyle(msg.Style)
	if _, err := app.ResumeGenerator.Generate(ctx, msg.UserID, snap, style); err != nil {
		return ErrProcess{UserID: msg.UserID, RequestID: msg.RequestID, Err: err}
	}
	return nil
}
