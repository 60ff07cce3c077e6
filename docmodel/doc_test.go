package docmodel

import "testing"

func TestValidate_MissingCategory(t *testing.T) {
	d := &CommandDoc{Summary: "does a thing"}
	if msg := d.Validate("foo"); msg == "" {
		t.Fatalf("expected a validation error for missing category")
	}
}

func TestValidate_MissingSummary(t *testing.T) {
	d := &CommandDoc{Category: "misc"}
	if msg := d.Validate("foo"); msg == "" {
		t.Fatalf("expected a validation error for missing summary")
	}
}

func TestValidate_ParameterMissingName(t *testing.T) {
	d := &CommandDoc{
		Category:   "misc",
		Summary:    "does a thing",
		Parameters: []ParamDoc{{Type: "string"}},
	}
	msg := d.Validate("foo")
	if msg == "" {
		t.Fatalf("expected a validation error for an unnamed parameter")
	}
	if msg != "foo: parameter 0 missing name" {
		t.Fatalf("got %q, want a decimal parameter index", msg)
	}
}

func TestValidate_ParameterMissingType(t *testing.T) {
	d := &CommandDoc{
		Category:   "misc",
		Summary:    "does a thing",
		Parameters: []ParamDoc{{Name: "value"}},
	}
	msg := d.Validate("foo")
	if msg != "foo: parameter 'value' missing type" {
		t.Fatalf("got %q", msg)
	}
}

func TestValidate_CompleteDocReturnsEmptyString(t *testing.T) {
	d := NewCommandDoc(
		"misc", "does a thing", "a longer description", "nil",
		[]ParamDoc{{Name: "value", Type: "any"}},
		nil, nil,
	)
	if msg := d.Validate("foo"); msg != "" {
		t.Fatalf("expected no validation error, got %q", msg)
	}
}

func TestHasDoc_NilReceiverIsFalse(t *testing.T) {
	var d *CommandDoc
	if d.HasDoc() {
		t.Fatalf("nil CommandDoc should report HasDoc() == false")
	}
}

func TestHasDoc_EmptySummaryIsFalse(t *testing.T) {
	d := &CommandDoc{Category: "misc"}
	if d.HasDoc() {
		t.Fatalf("expected HasDoc() == false without a summary")
	}
}

func TestHasDoc_WithSummaryIsTrue(t *testing.T) {
	d := &CommandDoc{Summary: "does a thing"}
	if !d.HasDoc() {
		t.Fatalf("expected HasDoc() == true with a summary set")
	}
}
