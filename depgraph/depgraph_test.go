package depgraph

import (
	"reflect"
	"testing"

	"github.com/foliolang/folio/ast"
)

func TestResolveSimpleChain(t *testing.T) {
	cells := []CellRef{
		{Name: "a", Expr: nil},
		{Name: "b", Expr: nil},
		{Name: "c", Expr: ast.BinaryOp(ast.Variable([]string{"a"}), ast.Add, ast.Variable([]string{"b"}))},
	}
	res := Resolve(cells)
	if len(res.Cycle) != 0 {
		t.Fatalf("expected no cycle, got %v", res.Cycle)
	}
	posA, posB, posC := indexOf(res.Order, "a"), indexOf(res.Order, "b"), indexOf(res.Order, "c")
	if posA < 0 || posB < 0 || posC < 0 {
		t.Fatalf("expected all cells ordered, got %v", res.Order)
	}
	if posC < posA || posC < posB {
		t.Fatalf("expected c after both a and b, got order %v", res.Order)
	}
}

func TestResolveDetectsCycle(t *testing.T) {
	cells := []CellRef{
		{Name: "x", Expr: ast.BinaryOp(ast.Variable([]string{"y"}), ast.Add, ast.NumberLit("1"))},
		{Name: "y", Expr: ast.BinaryOp(ast.Variable([]string{"x"}), ast.Add, ast.NumberLit("1"))},
	}
	res := Resolve(cells)
	if len(res.Order) != 0 {
		t.Fatalf("expected empty order for a full cycle, got %v", res.Order)
	}
	if !reflect.DeepEqual(res.Cycle, []string{"x", "y"}) {
		t.Fatalf("expected cycle [x y], got %v", res.Cycle)
	}
}

func TestResolveIsolatesNonCycleCells(t *testing.T) {
	cells := []CellRef{
		{Name: "x", Expr: ast.Variable([]string{"y"})},
		{Name: "y", Expr: ast.Variable([]string{"x"})},
		{Name: "z", Expr: ast.NumberLit("5")},
	}
	res := Resolve(cells)
	if indexOf(res.Order, "z") < 0 {
		t.Fatal("expected 'z' to be ordered despite the x/y cycle")
	}
	if len(res.Cycle) != 2 {
		t.Fatalf("expected exactly x and y in the cycle, got %v", res.Cycle)
	}
}

func TestResolveIgnoresNonCellReferences(t *testing.T) {
	cells := []CellRef{
		{Name: "a", Expr: ast.BinaryOp(ast.Variable([]string{"pi"}), ast.Mul, ast.NumberLit("2"))},
	}
	res := Resolve(cells)
	if len(res.Cycle) != 0 || len(res.Order) != 1 {
		t.Fatalf("reference to non-cell name 'pi' should not create an edge: %+v", res)
	}
}

func indexOf(xs []string, target string) int {
	for i, x := range xs {
		if x == target {
			return i
		}
	}
	return -1
}
