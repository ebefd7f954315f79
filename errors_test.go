package bind

import (
	"errors"
	"testing"
)

func TestWrapRuleErrorCreatesMetadata(t *testing.T) {
	base := errors.New("boom")
	err := wrapRuleError("expr", "value != ''", "email", base)

	var ruleErr *RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("expected RuleError, got %T", err)
	}
	if ruleErr.Engine != "expr" {
		t.Fatalf("expected engine expr, got %q", ruleErr.Engine)
	}
	if ruleErr.Expr != "value != ''" {
		t.Fatalf("expected expression metadata, got %q", ruleErr.Expr)
	}
	if ruleErr.Binding != "email" {
		t.Fatalf("expected binding metadata, got %q", ruleErr.Binding)
	}
	if !errors.Is(ruleErr.Err, base) {
		t.Fatalf("wrapped error should unwrap to base error")
	}
}

func TestWrapRuleErrorAugmentsExisting(t *testing.T) {
	base := errors.New("compile failure")
	existing := &RuleError{
		Engine: "expr",
		Err:    base,
	}

	err := wrapRuleError("cel", "rule", "group:9", existing)
	if !errors.Is(err, base) {
		t.Fatalf("expected base error to unwrap")
	}
	if existing.Engine != "expr" {
		t.Fatalf("existing engine should not be overwritten, got %q", existing.Engine)
	}
	if existing.Expr != "rule" {
		t.Fatalf("expression should be filled, got %q", existing.Expr)
	}
	if existing.Binding != "group:9" {
		t.Fatalf("binding should be filled, got %q", existing.Binding)
	}
}

func TestMissingParameterErrorMessage(t *testing.T) {
	err := newMissingParameter("field", "a source")
	if err.Error() != "bind: field requires a source" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %T", err)
	}
	if missing.Component != "field" || missing.Parameter != "a source" {
		t.Fatalf("unexpected fields: %+v", missing)
	}
}

func TestWrapEngineErrorKeepsPrefixedErrors(t *testing.T) {
	wrapped := wrapEngineError("expr", errors.New("bind: already labelled"))
	if wrapped.Error() != "bind: already labelled" {
		t.Fatalf("expected error kept verbatim, got %q", wrapped.Error())
	}
	if err := wrapEngineError("expr", nil); err != nil {
		t.Fatalf("expected nil passthrough, got %v", err)
	}
}
