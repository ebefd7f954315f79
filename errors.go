package bind

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyPath indicates an empty path expression.
	ErrEmptyPath = errors.New("bind: path must not be empty")
	// ErrEmptySegment indicates a path expression with an empty segment.
	ErrEmptySegment = errors.New("bind: path segments must not be empty")
	// ErrNilRoot indicates a path operation against a nil tree.
	ErrNilRoot = errors.New("bind: root must not be nil")
	// ErrDuplicateOption indicates a group was constructed with repeated
	// option values.
	ErrDuplicateOption = errors.New("bind: option values must be unique")
	// ErrUnknownOption indicates a toggle against a value no option declares.
	ErrUnknownOption = errors.New("bind: unknown option value")
	// ErrRuleRejected indicates a validation rule evaluated to anything other
	// than boolean true.
	ErrRuleRejected = errors.New("bind: rule rejected value")
)

// MissingParameterError reports a constructor invoked without a required
// backing reference, path, or option list. It is raised eagerly, before any
// UI interaction.
type MissingParameterError struct {
	Component string
	Parameter string
}

func (e *MissingParameterError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("bind: %s requires %s", e.Component, e.Parameter)
}

func newMissingParameter(component, parameter string) error {
	return &MissingParameterError{Component: component, Parameter: parameter}
}

// PathError decorates a path operation failure with the offending expression.
type PathError struct {
	Op   string
	Path string
	Err  error
}

func (e *PathError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("bind: %s path %q: %v", e.Op, e.Path, e.Err)
}

func (e *PathError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// RuleError captures rule-engine metadata alongside the originating error.
type RuleError struct {
	Engine  string
	Expr    string
	Binding string
	Err     error
}

func (e *RuleError) Error() string {
	if e == nil {
		return "<nil>"
	}
	return fmt.Sprintf("bind: %s rule %s binding=%s: %v", e.Engine, describeExpression(e.Expr), e.Binding, e.Err)
}

func (e *RuleError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func describeExpression(expr string) string {
	if expr == "" {
		return "expr=<empty>"
	}
	return fmt.Sprintf("expr=%q", expr)
}

func wrapEngineError(engine string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		return err
	}

	if strings.HasPrefix(err.Error(), "bind:") {
		return err
	}
	return fmt.Errorf("bind: %s rule engine: %w", engine, err)
}

func wrapRuleError(engine, expr, binding string, err error) error {
	if err == nil {
		return nil
	}

	var ruleErr *RuleError
	if errors.As(err, &ruleErr) {
		if ruleErr.Engine == "" {
			ruleErr.Engine = engine
		}
		if ruleErr.Expr == "" {
			ruleErr.Expr = expr
		}
		if ruleErr.Binding == "" {
			ruleErr.Binding = binding
		}
		return ruleErr
	}

	return &RuleError{
		Engine:  engine,
		Expr:    expr,
		Binding: binding,
		Err:     err,
	}
}
