package eval

import (
	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/datetime"
	"github.com/foliolang/folio/evalctx"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/value"
)

func evalBinary(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	left := Eval(e.Left, ctx)
	if left.IsError() {
		return value.Error(left.AsError().Propagate("from left operand"))
	}
	right := Eval(e.Right, ctx)
	if right.IsError() {
		return value.Error(right.AsError().Propagate("from right operand"))
	}
	return dispatchBinary(e.Op, left, right, ctx)
}

// dispatchBinary implements the type-pair dispatch table of spec §4.5.
func dispatchBinary(op ast.Op, left, right *value.Value, ctx *evalctx.EvalContext) *value.Value {
	switch {
	case left.Kind == value.KindDateTime && right.Kind == value.KindDuration:
		return dateTimeDurationOp(op, left.DateTime, right.Duration)
	case left.Kind == value.KindDuration && right.Kind == value.KindDateTime:
		return dateTimeDurationOp(op, right.DateTime, left.Duration)
	case left.Kind == value.KindDateTime && right.Kind == value.KindDateTime:
		return dateTimeDateTimeOp(op, left.DateTime, right.DateTime)
	case left.Kind == value.KindDuration && right.Kind == value.KindDuration:
		return durationDurationOp(op, left.Duration, right.Duration)
	case left.Kind == value.KindDuration && right.Kind == value.KindNumber:
		return durationNumberOp(op, left.Duration, right.Num)
	case left.Kind == value.KindNumber && right.Kind == value.KindDuration:
		return durationNumberOp(op, right.Duration, left.Num)
	case left.Kind == value.KindNumber && right.Kind == value.KindNumber:
		return numberOp(op, left.Num, right.Num, ctx)
	default:
		return typeErrorFor(op, left, right)
	}
}

func typeErrorFor(op ast.Op, left, right *value.Value) *value.Value {
	return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot apply %q to %s and %s", op.String(), left.TypeName(), right.TypeName()))
}

func dateTimeDurationOp(op ast.Op, dt *datetime.DateTime, dur *datetime.Duration) *value.Value {
	switch op {
	case ast.Add:
		return value.DateTimeVal(dt.Add(dur))
	case ast.Sub:
		return value.DateTimeVal(dt.Add(dur.Neg()))
	default:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot apply %q between DateTime and Duration", op.String()))
	}
}

func dateTimeDateTimeOp(op ast.Op, a, b *datetime.DateTime) *value.Value {
	switch op {
	case ast.Sub:
		return value.DurationVal(a.Sub(b))
	case ast.Add:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot add two DateTime values (use dt - dt)"))
	case ast.Lt:
		return value.Bool(a.Cmp(b) < 0)
	case ast.Gt:
		return value.Bool(a.Cmp(b) > 0)
	case ast.Le:
		return value.Bool(a.Cmp(b) <= 0)
	case ast.Ge:
		return value.Bool(a.Cmp(b) >= 0)
	case ast.Eq:
		return value.Bool(a.Equal(b))
	case ast.Ne:
		return value.Bool(!a.Equal(b))
	default:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot apply %q between DateTime values", op.String()))
	}
}

func durationDurationOp(op ast.Op, a, b *datetime.Duration) *value.Value {
	switch op {
	case ast.Add:
		return value.DurationVal(a.Add(b))
	case ast.Sub:
		return value.DurationVal(a.Sub(b))
	case ast.Div:
		ratio, ok := a.DivInt(b)
		if !ok {
			return value.Error(ferr.Newf(ferr.CodeDivZero, "division by a zero Duration"))
		}
		return value.Number(numeric.New(ratio, 0))
	default:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot apply %q between Duration values", op.String()))
	}
}

func durationNumberOp(op ast.Op, dur *datetime.Duration, n *numeric.Number) *value.Value {
	switch op {
	case ast.Mul:
		if i, ok := n.ToI64(); ok {
			return value.DurationVal(dur.MulInt(i))
		}
		f, ok := n.ToF64()
		if !ok {
			return value.Error(ferr.Newf(ferr.CodeOverflow, "number out of range to scale a Duration"))
		}
		return value.DurationVal(dur.MulFloat(f))
	case ast.Div:
		if n.IsZero() {
			return value.Error(ferr.Newf(ferr.CodeDivZero, "division of Duration by zero"))
		}
		f, ok := n.ToF64()
		if !ok {
			return value.Error(ferr.Newf(ferr.CodeOverflow, "number out of range to divide a Duration"))
		}
		result, ok := dur.DivFloat(f)
		if !ok {
			return value.Error(ferr.Newf(ferr.CodeDivZero, "division of Duration by zero"))
		}
		return value.DurationVal(result)
	default:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot apply %q between Duration and Number", op.String()))
	}
}

func numberOp(op ast.Op, a, b *numeric.Number, ctx *evalctx.EvalContext) *value.Value {
	switch op {
	case ast.Add:
		return value.Number(a.Add(b))
	case ast.Sub:
		return value.Number(a.Sub(b))
	case ast.Mul:
		return value.Number(a.Mul(b))
	case ast.Div:
		result, err := a.CheckedDiv(b, ctx.Precision())
		if err != nil {
			return value.Error(translateNumericError(err))
		}
		return value.Number(result)
	case ast.Pow:
		result, err := a.Pow(b, ctx.Precision())
		if err != nil {
			return value.Error(translateNumericError(err))
		}
		return value.Number(result)
	case ast.Lt:
		return value.Bool(a.Cmp(b) < 0)
	case ast.Gt:
		return value.Bool(a.Cmp(b) > 0)
	case ast.Le:
		return value.Bool(a.Cmp(b) <= 0)
	case ast.Ge:
		return value.Bool(a.Cmp(b) >= 0)
	case ast.Eq:
		return value.Bool(a.Equal(b))
	case ast.Ne:
		return value.Bool(!a.Equal(b))
	default:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "unknown operator %q on Number", op.String()))
	}
}

// translateNumericError maps a numeric.Error to the matching FolioError
// code, preserving the underlying cause.
func translateNumericError(err *numeric.Error) *ferr.FolioError {
	switch err.Kind {
	case numeric.DivisionByZero:
		return ferr.Wrap(ferr.CodeDivZero, err, err.Message)
	case numeric.DomainError:
		return ferr.Wrap(ferr.CodeDomainError, err, err.Message)
	case numeric.Overflow:
		return ferr.Wrap(ferr.CodeOverflow, err, err.Message)
	default:
		return ferr.Wrap(ferr.CodeParseError, err, err.Message)
	}
}
