package registry

import (
	"sort"
	"strings"

	"github.com/foliolang/folio/ferr"
)

// SuggestFunctions ranks every registered function name against a
// misspelled lookup and returns up to 5, for the UNDEFINED_FUNC
// suggestion list of spec §4.3. Scoring combines: exact prefix match
// (+100), substring match (+50 if the candidate contains the lookup,
// +30 if the lookup contains the candidate), shared-character
// cardinality (+2 per common character), and a small bonus that shrinks
// with the length difference between the two names.
func (r *Registry) SuggestFunctions(name string) []string {
	return suggest(name, r.FunctionNames())
}

func suggest(name string, candidates []string) []string {
	lower := strings.ToLower(name)
	type scored struct {
		name  string
		score int
	}
	var ranked []scored
	for _, c := range candidates {
		s := score(lower, c)
		if s > 0 {
			ranked = append(ranked, scored{c, s})
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].score != ranked[j].score {
			return ranked[i].score > ranked[j].score
		}
		return ranked[i].name < ranked[j].name
	})
	n := len(ranked)
	if n > 5 {
		n = 5
	}
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = ranked[i].name
	}
	return out
}

func score(lookup, candidate string) int {
	s := 0
	if strings.HasPrefix(candidate, lookup) {
		s += 100
	}
	if strings.Contains(candidate, lookup) {
		s += 50
	} else if strings.Contains(lookup, candidate) {
		s += 30
	}
	s += 2 * sharedCharCount(lookup, candidate)
	diff := len(lookup) - len(candidate)
	if diff < 0 {
		diff = -diff
	}
	if diff <= 2 {
		s += 5 - diff
	}
	return s
}

func sharedCharCount(a, b string) int {
	counts := map[rune]int{}
	for _, r := range a {
		counts[r]++
	}
	shared := 0
	for _, r := range b {
		if counts[r] > 0 {
			counts[r]--
			shared++
		}
	}
	return shared
}

// UndefinedFunctionError builds the UNDEFINED_FUNC error with a ranked
// suggestion list for name.
func (r *Registry) UndefinedFunctionError(name string) *ferr.FolioError {
	return ferr.UndefinedFunc(name, r.SuggestFunctions(name))
}
