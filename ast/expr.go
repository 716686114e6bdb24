// Package ast defines the tagged expression tree formulas parse into, per
// spec §3: a closed set of node kinds walked by the evaluator and emitted
// back to text by the renderer.
package ast

// Op identifies a binary operator.
type Op int

const (
	Add Op = iota
	Sub
	Mul
	Div
	Pow
	Lt
	Gt
	Le
	Ge
	Eq
	Ne
)

// String renders an Op the way it appears in source text.
func (o Op) String() string {
	switch o {
	case Add:
		return "+"
	case Sub:
		return "-"
	case Mul:
		return "*"
	case Div:
		return "/"
	case Pow:
		return "^"
	case Lt:
		return "<"
	case Gt:
		return ">"
	case Le:
		return "<="
	case Ge:
		return ">="
	case Eq:
		return "=="
	case Ne:
		return "!="
	default:
		return "?"
	}
}

// Kind identifies which Expr variant a node is.
type Kind int

const (
	KindNumber Kind = iota
	KindStringLiteral
	KindVariable
	KindList
	KindFieldAccess
	KindFunctionCall
	KindUnaryOp
	KindBinaryOp
)

// Expr is the tagged expression tree node. Only the fields relevant to
// Kind are populated; this mirrors a sum type through an exhaustive
// switch on Kind rather than an interface hierarchy, matching the Value
// model's shape.
type Expr struct {
	Kind Kind

	// KindNumber: the literal text as it appeared in source, so
	// numeric.Parse can preserve scientific/rational forms exactly.
	NumberText string

	// KindStringLiteral: the unescaped string contents.
	StringText string

	// KindVariable / KindFieldAccess base path: dotted identifier
	// components, e.g. ["a", "b", "c"] for "a.b.c".
	Path []string

	// KindList: element expressions, in order.
	Elements []*Expr

	// KindFieldAccess: the base expression being navigated, plus the
	// trailing field path (KindVariable reuses Path directly instead).
	Base      *Expr
	FieldPath []string

	// KindFunctionCall: the called name and evaluated-in-order arguments.
	FuncName string
	Args     []*Expr

	// KindUnaryOp / KindBinaryOp.
	Op    Op
	Left  *Expr
	Right *Expr
}

// NumberLit builds a Number node from its source text.
func NumberLit(text string) *Expr { return &Expr{Kind: KindNumber, NumberText: text} }

// StringLit builds a StringLiteral node.
func StringLit(text string) *Expr { return &Expr{Kind: KindStringLiteral, StringText: text} }

// Variable builds a Variable node from a dotted identifier path.
func Variable(path []string) *Expr { return &Expr{Kind: KindVariable, Path: path} }

// ListLit builds a List node.
func ListLit(elements []*Expr) *Expr { return &Expr{Kind: KindList, Elements: elements} }

// FieldAccess builds a FieldAccess node navigating base through path.
func FieldAccess(base *Expr, path []string) *Expr {
	return &Expr{Kind: KindFieldAccess, Base: base, FieldPath: path}
}

// FunctionCall builds a FunctionCall node.
func FunctionCall(name string, args []*Expr) *Expr {
	return &Expr{Kind: KindFunctionCall, FuncName: name, Args: args}
}

// UnaryNeg builds a unary-minus node.
func UnaryNeg(operand *Expr) *Expr { return &Expr{Kind: KindUnaryOp, Op: Sub, Right: operand} }

// BinaryOp builds a binary-operator node.
func BinaryOp(left *Expr, op Op, right *Expr) *Expr {
	return &Expr{Kind: KindBinaryOp, Op: op, Left: left, Right: right}
}
