package errors

import (
	stdErrors "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestAsUnwrapsNestedTypedError(t *testing.T) {
	inner := New(CodeNotFound, "missing")
	wrapped := fmt.Errorf("outer: %w", inner)

	typed := As(wrapped)
	if typed == nil || typed.Code() != CodeNotFound {
		t.Fatalf("expected typed error through wrapping, got %v", typed)
	}
	if As(stdErrors.New("plain")) != nil {
		t.Fatalf("plain errors are not typed")
	}
}

func TestMetadataForUnknownCodeFallsBack(t *testing.T) {
	meta := MetadataFor(Code("MADE_UP"))
	if meta.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("unknown codes use the internal metadata, got %+v", meta)
	}
}

func TestUserMessagePrefersTypedMessageForSafeCodes(t *testing.T) {
	err := New(CodeValidation, "project title is required")
	if got := UserMessage(err); got != "project title is required" {
		t.Fatalf("validation messages pass through, got %q", got)
	}
}

func TestUserMessageFallsBackForOpaqueCodes(t *testing.T) {
	err := New(CodeTransport, "dial tcp: connection refused")
	if got := UserMessage(err); got != "network connection failed, check connectivity" {
		t.Fatalf("transport details must not leak, got %q", got)
	}

	if got := UserMessage(stdErrors.New("boom")); got != "unknown error occurred" {
		t.Fatalf("untyped errors use the internal fallback, got %q", got)
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := stdErrors.New("root")
	err := Wrap(CodePersistence, cause, "writing history")
	if !stdErrors.Is(err, cause) {
		t.Fatalf("wrapped cause should be discoverable")
	}
	if err.Code() != CodePersistence {
		t.Fatalf("unexpected code %s", err.Code())
	}
}
