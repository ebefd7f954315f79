package bind

import (
	"fmt"
	"time"

	"github.com/goliatone/go-binding/internal/clone"
)

// ChangeEvent carries the raw value extracted from a host control's change
// event.
type ChangeEvent struct {
	Value any
}

// FieldOption configures a field binding.
type FieldOption func(*fieldConfig)

type fieldConfig struct {
	name         string
	rules        []string
	evaluator    Evaluator
	programCache ProgramCache
	functions    *FunctionRegistry
	logger       RuleLogger
}

// WithName labels the field for rule errors and log events.
func WithName(name string) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.name = name
	}
}

// WithRule appends a validation rule evaluated before every write. A rule
// must evaluate to boolean true for the write to proceed.
func WithRule(expr string) FieldOption {
	return func(cfg *fieldConfig) {
		if expr == "" {
			return
		}
		cfg.rules = append(cfg.rules, expr)
	}
}

// WithEvaluator configures the rule engine used by the field's rules.
func WithEvaluator(e Evaluator) FieldOption {
	return func(cfg *fieldConfig) {
		cfg.evaluator = e
	}
}

func applyFieldOptions(opts []FieldOption) fieldConfig {
	cfg := fieldConfig{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Field wraps a Source into the two views a rendered control consumes.
type Field struct {
	source  Source
	initial any
	cfg     fieldConfig
}

// NewField constructs a field binding over source. The initial value is
// captured once, here, and is what Reset restores no matter how many writes
// happen in between.
func NewField(source Source, initial any, opts ...FieldOption) (*Field, error) {
	if source == nil {
		return nil, newMissingParameter("field", "a source")
	}
	return &Field{
		source:  source,
		initial: clone.Value(initial),
		cfg:     applyFieldOptions(opts),
	}, nil
}

// Control is the view bound directly to a text/select element: a current
// value plus a change handler.
type Control struct {
	field *Field
}

// Control returns the control-facing view.
func (f *Field) Control() Control {
	return Control{field: f}
}

// Value reads the current value from the backing source.
func (c Control) Value() any {
	return c.field.source.Read()
}

// OnChange applies the value carried by a host change event.
func (c Control) OnChange(event ChangeEvent) error {
	return c.field.apply(event.Value)
}

// Controller is the imperative view: explicit set and reset operations.
type Controller struct {
	field *Field
}

// Controller returns the imperative view.
func (f *Field) Controller() Controller {
	return Controller{field: f}
}

// SetValue writes a raw value through the field's rules.
func (c Controller) SetValue(value any) error {
	return c.field.apply(value)
}

// Reset restores the literal value captured at field construction. Rules do
// not apply: a reset never fails once the field was legitimately constructed.
func (c Controller) Reset() error {
	return c.field.write(clone.Value(c.field.initial))
}

func (f *Field) apply(value any) error {
	if err := f.checkRules(value); err != nil {
		return err
	}
	return f.write(value)
}

func (f *Field) write(value any) error {
	if err := f.source.Write(value); err != nil {
		return err
	}
	f.source.NotifyChanged()
	return nil
}

func (f *Field) checkRules(value any) error {
	if len(f.cfg.rules) == 0 {
		return nil
	}
	evaluator := f.resolveEvaluator()
	ctx := RuleContext{
		Value:    value,
		Previous: f.source.Read(),
		Snapshot: snapshotOf(f.source),
		Binding:  f.cfg.name,
	}.withDefaults()
	engine := evaluatorEngineName(evaluator)

	for _, rule := range f.cfg.rules {
		start := time.Now()
		result, evalErr := evaluator.Evaluate(ctx, rule)
		duration := time.Since(start)
		evalErr = wrapRuleError(engine, rule, ctx.bindingLabel(), evalErr)
		if evalErr == nil {
			if accepted, ok := result.(bool); !ok || !accepted {
				evalErr = wrapRuleError(engine, rule, ctx.bindingLabel(), ErrRuleRejected)
			}
		}
		f.ruleLogger().LogRule(RuleLogEvent{
			Engine:   engine,
			Expr:     rule,
			Binding:  ctx.bindingLabel(),
			Duration: duration,
			Err:      evalErr,
		})
		if evalErr != nil {
			return evalErr
		}
	}
	return nil
}

func (f *Field) resolveEvaluator() Evaluator {
	if f.cfg.evaluator != nil {
		return f.cfg.evaluator
	}
	var exprOpts []ExprEvaluatorOption
	if cache := f.cfg.programCache; cache != nil {
		exprOpts = append(exprOpts, ExprWithProgramCache(cache))
	}
	if registry := f.cfg.functions; registry != nil {
		exprOpts = append(exprOpts, ExprWithFunctionRegistry(registry))
	}
	f.cfg.evaluator = NewExprEvaluator(exprOpts...)
	return f.cfg.evaluator
}

func (f *Field) ruleLogger() RuleLogger {
	if f.cfg.logger != nil {
		return f.cfg.logger
	}
	return noopRuleLogger{}
}

func evaluatorEngineName(e Evaluator) string {
	if e == nil {
		return "unknown"
	}
	switch fmt.Sprintf("%T", e) {
	case "*bind.exprEvaluator":
		return "expr"
	case "*bind.celEvaluator":
		return "cel"
	case "*bind.jsEvaluator":
		return "js"
	default:
		return "custom"
	}
}
