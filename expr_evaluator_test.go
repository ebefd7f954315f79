package bind

import (
	"errors"
	"testing"
)

func TestExprEvaluatorSeesRuleContext(t *testing.T) {
	evaluator := NewExprEvaluator()
	result, err := evaluator.Evaluate(RuleContext{
		Value:    "next",
		Previous: "prev",
		Binding:  "email",
		Snapshot: map[string]any{"limits": map[string]any{"max": 3}},
	}, `value != previous && limits.max == 3`)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %v", result)
	}
}

func TestExprEvaluatorEmptyExpression(t *testing.T) {
	evaluator := NewExprEvaluator()
	if _, err := evaluator.Evaluate(RuleContext{}, ""); err == nil {
		t.Fatalf("expected error for empty expression")
	}
}

func TestExprEvaluatorWrapsFailures(t *testing.T) {
	evaluator := NewExprEvaluator()
	_, err := evaluator.Evaluate(RuleContext{Binding: "b"}, `1 +`)
	if err == nil {
		t.Fatalf("expected parse failure")
	}
	var ruleErr *RuleError
	if !errors.As(err, &ruleErr) {
		t.Fatalf("expected RuleError, got %T", err)
	}
	if ruleErr.Engine != "expr" || ruleErr.Binding != "b" {
		t.Fatalf("unexpected metadata: %+v", ruleErr)
	}
}

func TestExprEvaluatorCompileReusable(t *testing.T) {
	evaluator := NewExprEvaluator()
	rule, err := evaluator.Compile(`value > 1`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	accepted, err := rule.Evaluate(RuleContext{Value: 2})
	if err != nil || accepted != true {
		t.Fatalf("expected true, got %v err=%v", accepted, err)
	}
	rejected, err := rule.Evaluate(RuleContext{Value: 0})
	if err != nil || rejected != false {
		t.Fatalf("expected false, got %v err=%v", rejected, err)
	}
}

func TestExprEvaluatorRegistryFunctions(t *testing.T) {
	registry := NewFunctionRegistry()
	if err := registry.Register("double", func(args ...any) (any, error) {
		return args[0].(int) * 2, nil
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	evaluator := NewExprEvaluator(ExprWithFunctionRegistry(registry))
	result, err := evaluator.Evaluate(RuleContext{Value: 4}, `double(value) == 8`)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %v", result)
	}
}

func TestCELEvaluatorSeesRuleContext(t *testing.T) {
	evaluator := NewCELEvaluator()
	result, err := evaluator.Evaluate(RuleContext{
		Value:    "next",
		Previous: "prev",
		Binding:  "email",
	}, `value != previous && binding == "email"`)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %v", result)
	}
}

func TestCELEvaluatorSnapshotVariables(t *testing.T) {
	evaluator := NewCELEvaluator()
	result, err := evaluator.Evaluate(RuleContext{
		Value:    2,
		Snapshot: map[string]any{"limits": map[string]any{"max": 3}},
	}, `value < limits["max"]`)
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if result != true {
		t.Fatalf("expected true, got %v", result)
	}
}

func TestFieldWithCELEvaluator(t *testing.T) {
	field, err := NewField(NewLocalValue(""), "",
		WithEvaluator(NewCELEvaluator()),
		WithRule(`value != ""`),
	)
	if err != nil {
		t.Fatalf("field: %v", err)
	}
	if err := field.Controller().SetValue("ok"); err != nil {
		t.Fatalf("expected accepted, got %v", err)
	}
	if err := field.Controller().SetValue(""); !errors.Is(err, ErrRuleRejected) {
		t.Fatalf("expected rejection, got %v", err)
	}
}
