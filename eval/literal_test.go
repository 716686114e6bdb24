package eval

import (
	"testing"

	"github.com/foliolang/folio/value"
)

func TestEvalLiteralNumber(t *testing.T) {
	v := EvalLiteral("3.14")
	if v.Kind != value.KindNumber {
		t.Fatalf("expected Number, got %v", v.Kind)
	}
}

func TestEvalLiteralBool(t *testing.T) {
	if v := EvalLiteral("true"); v.Kind != value.KindBool || !v.Bool {
		t.Fatalf("expected Bool true, got %+v", v)
	}
	if v := EvalLiteral("false"); v.Kind != value.KindBool || v.Bool {
		t.Fatalf("expected Bool false, got %+v", v)
	}
}

func TestEvalLiteralDateTime(t *testing.T) {
	v := EvalLiteral("2025-07-04")
	if v.Kind != value.KindDateTime {
		t.Fatalf("expected DateTime, got %v", v.Kind)
	}
}

func TestEvalLiteralQuotedText(t *testing.T) {
	v := EvalLiteral(`"hello world"`)
	if v.Kind != value.KindText || v.Text != "hello world" {
		t.Fatalf("got %+v", v)
	}
}

func TestEvalLiteralPlainText(t *testing.T) {
	v := EvalLiteral("pending")
	if v.Kind != value.KindText || v.Text != "pending" {
		t.Fatalf("got %+v", v)
	}
}

func TestEvalLiteralNull(t *testing.T) {
	v := EvalLiteral("null")
	if v.Kind != value.KindNull {
		t.Fatalf("got %+v", v)
	}
}
