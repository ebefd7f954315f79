package bind

import (
	"reflect"
	"testing"
)

func TestOptionDefsFromPayload(t *testing.T) {
	defs, err := OptionDefsFromPayload("interests", []map[string]any{
		{"value": "a"},
		{"value": "b", "text": "B"},
		{"value": "c", "label": "C"},
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	want := []OptionDef{
		{Value: "a"},
		{Value: "b", Label: "B"},
		{Value: "c", Label: "C"},
	}
	if !reflect.DeepEqual(defs, want) {
		t.Fatalf("expected %v, got %v", want, defs)
	}
}

func TestOptionDefsFromPayloadRejectsMissingValue(t *testing.T) {
	_, err := OptionDefsFromPayload("interests", []map[string]any{
		{"value": "a"},
		{"text": "no value"},
	})
	if err == nil {
		t.Fatalf("expected error for entry without value")
	}
}

func TestOptionDefsFromPayloadRejectsEmptyPayload(t *testing.T) {
	if _, err := OptionDefsFromPayload("interests", nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestBuildOptionsLabelsDefaultToValue(t *testing.T) {
	options, err := buildOptions([]OptionDef{{Value: "x"}, {Value: "y", Label: "Y"}}, func(string) error {
		return nil
	})
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if options[0].Label != "x" || options[1].Label != "Y" {
		t.Fatalf("unexpected labels: %q %q", options[0].Label, options[1].Label)
	}
}
