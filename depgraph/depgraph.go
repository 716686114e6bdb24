// Package depgraph computes the evaluation order of a set of cells by
// extracting name-to-name dependency edges from each cell's expression
// tree and running Kahn's algorithm over them, per spec §4.4.
package depgraph

import (
	"github.com/foliolang/folio/ast"
)

// CellRef is the minimal view depgraph needs of a cell: its name and
// parsed expression (nil for a literal, which has no dependencies).
type CellRef struct {
	Name string
	Expr *ast.Expr
}

// Result is the outcome of resolving one set of cells' dependency graph.
type Result struct {
	// Order lists cell names in a valid topological order, restricted to
	// cells not part of any cycle.
	Order []string
	// Cycle lists the cell names that could not be ordered because they
	// (transitively) depend on each other. Empty when the cells are
	// acyclic.
	Cycle []string
}

// Resolve builds the dependency graph over cells (in document order) and
// returns a topological order plus any cycle. Root identifiers that are
// not themselves cell names in this set are ignored, per spec §4.4:
// references to registered constants or external variables never create
// edges. Ties in the queue (equal in-degree) are broken by document
// order.
func Resolve(cells []CellRef) Result {
	index := make(map[string]int, len(cells))
	for i, c := range cells {
		index[c.Name] = i
	}

	edges := make([][]int, len(cells)) // edges[i] = cells that depend on i
	inDegree := make([]int, len(cells))
	seen := make([]map[int]bool, len(cells))
	for i := range seen {
		seen[i] = map[int]bool{}
	}

	for i, c := range cells {
		if c.Expr == nil {
			continue
		}
		for _, root := range ast.RootIdentifiers(c.Expr) {
			depIdx, ok := index[root]
			if !ok || depIdx == i || seen[i][depIdx] {
				continue
			}
			seen[i][depIdx] = true
			edges[depIdx] = append(edges[depIdx], i)
			inDegree[i]++
		}
	}

	queue := make([]int, 0, len(cells))
	for i := 0; i < len(cells); i++ {
		if inDegree[i] == 0 {
			queue = append(queue, i)
		}
	}

	var order []string
	processed := make([]bool, len(cells))
	for len(queue) > 0 {
		// Document-order tie-breaking: always take the smallest index
		// currently in the queue.
		minPos := 0
		for i := 1; i < len(queue); i++ {
			if queue[i] < queue[minPos] {
				minPos = i
			}
		}
		idx := queue[minPos]
		queue = append(queue[:minPos], queue[minPos+1:]...)

		processed[idx] = true
		order = append(order, cells[idx].Name)
		for _, dependent := range edges[idx] {
			inDegree[dependent]--
			if inDegree[dependent] == 0 {
				queue = append(queue, dependent)
			}
		}
	}

	var cycle []string
	for i, c := range cells {
		if !processed[i] {
			cycle = append(cycle, c.Name)
		}
	}

	return Result{Order: order, Cycle: cycle}
}
