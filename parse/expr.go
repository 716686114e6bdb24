package parse

import (
	"github.com/foliolang/folio/ast"
	"github.com/foliolang/folio/ferr"
)

// ParseExpression parses src as a standalone formula expression, per the
// precedence-climbing grammar of spec §4.2: comparison (lowest),
// additive, multiplicative, power (right-assoc), unary minus, primary.
func ParseExpression(src string) (*ast.Expr, *ferr.FolioError) {
	toks, err := lex(src)
	if err != nil {
		return nil, err
	}
	p := &exprParser{toks: toks}
	e, err := p.comparison()
	if err != nil {
		return nil, err
	}
	if p.peek().kind != tEOF {
		return nil, ferr.Fatalf(ferr.CodeParseError, "unexpected trailing input %q at byte %d", p.peek().text, p.peek().pos)
	}
	return e, nil
}

type exprParser struct {
	toks []token
	pos  int
}

func (p *exprParser) peek() token { return p.toks[p.pos] }

func (p *exprParser) next() token {
	t := p.toks[p.pos]
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

func (p *exprParser) expect(k tokenKind, desc string) (token, *ferr.FolioError) {
	t := p.peek()
	if t.kind != k {
		return token{}, ferr.Fatalf(ferr.CodeParseError, "expected %s at byte %d, found %q", desc, t.pos, t.text)
	}
	return p.next(), nil
}

// comparison ::= additive ( ('<'|'>'|'<='|'>='|'=='|'!=') additive )*
// Left-associative by construction; chained comparisons like a<b<c parse
// as (a<b)<c rather than a non-associative error.
func (p *exprParser) comparison() (*ast.Expr, *ferr.FolioError) {
	left, err := p.additive()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch p.peek().kind {
		case tLt:
			op = ast.Lt
		case tGt:
			op = ast.Gt
		case tLe:
			op = ast.Le
		case tGe:
			op = ast.Ge
		case tEq:
			op = ast.Eq
		case tNe:
			op = ast.Ne
		default:
			return left, nil
		}
		p.next()
		right, err := p.additive()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryOp(left, op, right)
	}
}

func (p *exprParser) additive() (*ast.Expr, *ferr.FolioError) {
	left, err := p.multiplicative()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch p.peek().kind {
		case tPlus:
			op = ast.Add
		case tMinus:
			op = ast.Sub
		default:
			return left, nil
		}
		p.next()
		right, err := p.multiplicative()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryOp(left, op, right)
	}
}

func (p *exprParser) multiplicative() (*ast.Expr, *ferr.FolioError) {
	left, err := p.power()
	if err != nil {
		return nil, err
	}
	for {
		var op ast.Op
		switch p.peek().kind {
		case tStar:
			op = ast.Mul
		case tSlash:
			op = ast.Div
		default:
			return left, nil
		}
		p.next()
		right, err := p.power()
		if err != nil {
			return nil, err
		}
		left = ast.BinaryOp(left, op, right)
	}
}

// power ::= unary ('^' power)?  — right-associative.
func (p *exprParser) power() (*ast.Expr, *ferr.FolioError) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	if p.peek().kind == tCaret {
		p.next()
		right, err := p.power()
		if err != nil {
			return nil, err
		}
		return ast.BinaryOp(left, ast.Pow, right), nil
	}
	return left, nil
}

func (p *exprParser) unary() (*ast.Expr, *ferr.FolioError) {
	if p.peek().kind == tMinus {
		p.next()
		operand, err := p.unary()
		if err != nil {
			return nil, err
		}
		return ast.UnaryNeg(operand), nil
	}
	return p.primary()
}

// primary ::= string | list | '(' expr ')' | ident '(' args ')' ('.' field)*
//           | dotted-ident-path | number
func (p *exprParser) primary() (*ast.Expr, *ferr.FolioError) {
	t := p.peek()
	switch t.kind {
	case tString:
		p.next()
		return ast.StringLit(t.text), nil
	case tNumber:
		p.next()
		return ast.NumberLit(t.text), nil
	case tLBracket:
		return p.listLiteral()
	case tLParen:
		p.next()
		e, err := p.comparison()
		if err != nil {
			return nil, err
		}
		if _, err := p.expect(tRParen, "')'"); err != nil {
			return nil, err
		}
		return e, nil
	case tIdent:
		return p.identOrCall()
	default:
		return nil, ferr.Fatalf(ferr.CodeParseError, "unexpected token %q at byte %d", t.text, t.pos)
	}
}

func (p *exprParser) listLiteral() (*ast.Expr, *ferr.FolioError) {
	if _, err := p.expect(tLBracket, "'['"); err != nil {
		return nil, err
	}
	var elements []*ast.Expr
	if p.peek().kind != tRBracket {
		for {
			e, err := p.comparison()
			if err != nil {
				return nil, err
			}
			elements = append(elements, e)
			if p.peek().kind == tComma {
				p.next()
				continue
			}
			break
		}
	}
	if _, err := p.expect(tRBracket, "']'"); err != nil {
		return nil, err
	}
	return ast.ListLit(elements), nil
}

func (p *exprParser) identOrCall() (*ast.Expr, *ferr.FolioError) {
	name := p.next().text
	if p.peek().kind == tLParen {
		args, err := p.argList()
		if err != nil {
			return nil, err
		}
		call := ast.FunctionCall(name, args)
		return p.chainedFieldAccess(call)
	}
	path := []string{name}
	for p.peek().kind == tDot {
		p.next()
		field, err := p.expect(tIdent, "field name")
		if err != nil {
			return nil, err
		}
		path = append(path, field.text)
	}
	return ast.Variable(path), nil
}

func (p *exprParser) argList() ([]*ast.Expr, *ferr.FolioError) {
	if _, err := p.expect(tLParen, "'('"); err != nil {
		return nil, err
	}
	var args []*ast.Expr
	if p.peek().kind != tRParen {
		for {
			a, err := p.comparison()
			if err != nil {
				return nil, err
			}
			args = append(args, a)
			if p.peek().kind == tComma {
				p.next()
				continue
			}
			break
		}
	}
	if _, err := p.expect(tRParen, "')'"); err != nil {
		return nil, err
	}
	return args, nil
}

// chainedFieldAccess consumes any trailing ".field.field…" after a
// function call's closing paren, per spec §4.2.
func (p *exprParser) chainedFieldAccess(base *ast.Expr) (*ast.Expr, *ferr.FolioError) {
	if p.peek().kind != tDot {
		return base, nil
	}
	var path []string
	for p.peek().kind == tDot {
		p.next()
		field, err := p.expect(tIdent, "field name")
		if err != nil {
			return nil, err
		}
		path = append(path, field.text)
	}
	return ast.FieldAccess(base, path), nil
}
