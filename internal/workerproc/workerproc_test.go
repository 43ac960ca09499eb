package workerproc

import (
	"context"
	"errors"
	"testing"

	"jumysal-backend/internal/queue"
)

func TestParseMessageValid(t *testing.T) {
	payload, err := queue.EncodeMessage(queue.Message{
		UserID:    "user-1",
		Style:     "modern",
		RequestID: "req-1",
		Version:   1,
	})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}

	msg, meta, err := ParseMessage(string(payload))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if msg.UserID != "user-1" || msg.Style != "modern" {
		t.Fatalf("unexpected message: %+v", msg)
	}
	if meta.BodyLen != len(payload) {
		t.Fatalf("body len = %d, want %d", meta.BodyLen, len(payload))
	}
	if meta.BodySHA == "" {
		t.Fatal("expected body hash")
	}
}

func TestParseMessageEmptyBody(t *testing.T) {
	_, _, err := ParseMessage("   ")
	var emptyErr ErrEmptyBody
	if !errors.As(err, &emptyErr) {
		t.Fatalf("got %v, want ErrEmptyBody", err)
	}
}

func TestParseMessageDecodeFailure(t *testing.T) {
	_, meta, err := ParseMessage("{broken")
	var decodeErr ErrDecode
	if !errors.As(err, &decodeErr) {
		t.Fatalf("got %v, want ErrDecode", err)
	}
	if meta.BodyLen == 0 {
		t.Fatal("meta should carry the body length for diagnostics")
	}
}

func TestParseMessageMissingUserID(t *testing.T) {
	_, _, err := ParseMessage(`{"style":"modern","requestId":"req-9"}`)
	var missingErr ErrMissingUserID
	if !errors.As(err, &missingErr) {
		t.Fatalf("got %v, want ErrMissingUserID", err)
	}
	if missingErr.RequestID != "req-9" {
		t.Fatalf("request id = %q, want req-9", missingErr.RequestID)
	}
}

func TestHandleMessageUnconfiguredApp(t *testing.T) {
	if err := HandleMessage(context.Background(), nil, "{}"); err == nil {
		t.Fatal("expected error for nil app")
	}
}
