package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestDomainError(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		err := New(CodeNotFound, "resource not found")
		if err.Error() != "[NOT_FOUND] resource not found" {
			t.Errorf("expected [NOT_FOUND] resource not found, got %s", err.Error())
		}
	})

	t.Run("Wrap", func(t *testing.T) {
		original := errors.New("original error")
		err := Wrap(original, CodeInternal, "internal failure")
		expected := "[INTERNAL_ERROR] internal failure: original error"
		if err.Error() != expected {
			t.Errorf("expected %s, got %s", expected, err.Error())
		}
		if !errors.Is(err, original) {
			t.Error("expected wrapped error to unwrap to original")
		}
	})

	t.Run("IsCode", func(t *testing.T) {
		err := New(CodeValidationError, "invalid input")
		if !IsCode(err, CodeValidationError) {
			t.Error("expected IsCode to return true for CodeValidationError")
		}
		if IsCode(err, CodeNotFound) {
			t.Error("expected IsCode to return false for CodeNotFound")
		}
	})

	t.Run("AddContextOnPlainError", func(t *testing.T) {
		err := AddContext(errors.New("boom"), CtxPath, "/tmp/a.bin")
		if !IsCode(err, CodeInternal) {
			t.Fatalf("expected plain errors to be wrapped as internal, got %v", err)
		}
		v, ok := ContextValue(err, CtxPath)
		if !ok || v != "/tmp/a.bin" {
			t.Fatalf("expected path context, got %v %v", v, ok)
		}
	})
}

func TestDecodeTaxonomy(t *testing.T) {
	t.Run("MissingField", func(t *testing.T) {
		err := MissingField("Problem", "position")
		if !IsCode(err, CodeMalformedMessage) {
			t.Fatalf("expected malformed message, got %v", err)
		}
		msg := err.Error()
		if !strings.Contains(msg, "position") || !strings.Contains(msg, "Problem") {
			t.Fatalf("expected field and shape in message, got %s", msg)
		}
	})

	t.Run("UnrecognizedTag", func(t *testing.T) {
		err := UnrecognizedTag("Severity", 99)
		if !IsCode(err, CodeUnrecognizedVariant) {
			t.Fatalf("expected unrecognized variant, got %v", err)
		}
		tag, ok := TagOf(err)
		if !ok || tag != 99 {
			t.Fatalf("expected tag 99, got %d %v", tag, ok)
		}
		if !strings.Contains(err.Error(), "99") {
			t.Fatalf("expected raw tag in message, got %s", err.Error())
		}
	})

	t.Run("TagOfOtherCodes", func(t *testing.T) {
		if _, ok := TagOf(EmptyPayload("Output")); ok {
			t.Fatal("expected no tag for empty payload errors")
		}
	})

	t.Run("EmptyPayload", func(t *testing.T) {
		err := EmptyPayload("Output")
		if !IsCode(err, CodeUnsupportedEmptyPayload) {
			t.Fatalf("expected unsupported empty payload, got %v", err)
		}
		shape, _ := ContextValue(err, CtxShape)
		if shape != "Output" {
			t.Fatalf("expected shape context Output, got %v", shape)
		}
	})
}
