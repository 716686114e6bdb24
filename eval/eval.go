// Package eval implements Folio's expression evaluator (C8): it walks an
// ast.Expr tree, threads the EvalContext's precision and variable map
// through it, dispatches function calls via the registry, and turns
// every pathology into an Error-valued result instead of aborting.
package eval

import (
	"fmt"
	"strings"

	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/evalctx"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/numeric"
	"github.com/foliolang/folio/parse"
	"github.com/foliolang/folio/value"
)

// Eval evaluates e against ctx, never panicking: every failure mode
// (undefined name, division by zero, bad argument type, ...) is returned
// as an Error-variant Value per spec §8 P2.
func Eval(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	if e == nil {
		return value.Null()
	}
	switch e.Kind {
	case ast.KindNumber:
		n, err := numeric.Parse(e.NumberText)
		if err != nil {
			return value.Error(ferr.Wrap(ferr.CodeParseError, err, "invalid number literal"))
		}
		return value.Number(n)
	case ast.KindStringLiteral:
		return value.Text(e.StringText)
	case ast.KindVariable:
		return evalVariable(e, ctx)
	case ast.KindList:
		return evalList(e, ctx)
	case ast.KindFieldAccess:
		return evalFieldAccess(e, ctx)
	case ast.KindFunctionCall:
		return evalCall(e, ctx)
	case ast.KindUnaryOp:
		return evalUnary(e, ctx)
	case ast.KindBinaryOp:
		return evalBinary(e, ctx)
	default:
		return value.Error(ferr.Newf(ferr.CodeInternal, "unhandled expression kind %d", e.Kind))
	}
}

func evalVariable(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	name := e.Path[0]
	var v *value.Value
	if bound, ok := ctx.Variable(name); ok {
		v = bound
	} else if c, ok := ctx.Registry().Constant(name); ok {
		v = ResolveConstant(c.Formula, ctx)
	} else {
		return value.Error(ferr.UndefinedVar(name))
	}
	for _, field := range e.Path[1:] {
		v = v.Field(field)
		if v.IsError() {
			return v
		}
	}
	return v
}

// ResolveConstant evaluates a constant's formula text at ctx's current
// precision, per spec §4.5. "pi" is special-cased directly against the
// numeric kernel's Pi constant: as a bare identifier it would otherwise
// recurse back into constant resolution for its own name.
func ResolveConstant(formula string, ctx *evalctx.EvalContext) *value.Value {
	if strings.TrimSpace(formula) == "pi" {
		return value.Number(numeric.Pi(ctx.Precision()))
	}
	expr, err := parse.ParseExpression(formula)
	if err != nil {
		return value.Error(ferr.Wrap(ferr.CodeInternal, err, fmt.Sprintf("malformed constant formula %q", formula)))
	}
	return Eval(expr, ctx)
}

func evalList(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	items := make([]*value.Value, len(e.Elements))
	for i, el := range e.Elements {
		v := Eval(el, ctx)
		if v.IsError() {
			return value.Error(v.AsError().Propagate(fmt.Sprintf("in element %d of list literal", i+1)))
		}
		items[i] = v
	}
	return value.List(items)
}

func evalFieldAccess(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	base := Eval(e.Base, ctx)
	if base.IsError() {
		return base
	}
	cur := base
	for _, field := range e.FieldPath {
		cur = cur.Field(field)
		if cur.IsError() {
			return cur
		}
	}
	return cur
}

func evalCall(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	args := make([]*value.Value, len(e.Args))
	for i, a := range e.Args {
		v := Eval(a, ctx)
		if v.IsError() {
			return value.Error(v.AsError().Propagate(fmt.Sprintf("in argument %d of %s()", i+1, e.FuncName)))
		}
		args[i] = v
	}
	if fn, ok := ctx.Registry().Function(e.FuncName); ok {
		return fn.Call(args, ctx)
	}
	if cmd, ok := ctx.Registry().Command(e.FuncName); ok {
		return cmd.Execute(args, ctx)
	}
	return value.Error(ctx.Registry().UndefinedFunctionError(e.FuncName))
}

func evalUnary(e *ast.Expr, ctx *evalctx.EvalContext) *value.Value {
	operand := Eval(e.Right, ctx)
	if operand.IsError() {
		return operand
	}
	switch operand.Kind {
	case value.KindNumber:
		return value.Number(operand.Num.Neg())
	case value.KindDuration:
		return value.DurationVal(operand.Duration.Neg())
	default:
		return value.Error(ferr.Newf(ferr.CodeTypeError, "cannot negate a %s", operand.TypeName()))
	}
}
