package ferr

import "fmt"

// ArgCount builds the standard ARG_COUNT error for a function called with
// the wrong number of arguments.
func ArgCount(fn string, want string, got int) *FolioError {
	return Newf(CodeArgCount, "%s() expects %s argument(s), got %d", fn, want, got)
}

// ArgType builds the standard ARG_TYPE error: function name, argument
// name, expected type string, and actual type name, per the function
// plugin contract in spec §6.
func ArgType(fn, argName, expected, actual string) *FolioError {
	return Newf(CodeArgType, "%s(): argument %q expects %s, got %s", fn, argName, expected, actual)
}

// Domain builds a DOMAIN_ERROR for a mathematical out-of-domain input.
func Domain(fn, detail string) *FolioError {
	return Newf(CodeDomainError, "%s(): %s", fn, detail)
}

// UndefinedFunc builds an UNDEFINED_FUNC error carrying a ranked
// suggestion list, per spec §4.3.
func UndefinedFunc(name string, suggestions []string) *FolioError {
	e := Newf(CodeUndefinedFunc, "undefined function %q", name)
	if len(suggestions) > 0 {
		e.Suggestion = fmt.Sprintf("did you mean: %s?", joinSuggestions(suggestions))
	}
	return e
}

// UndefinedVar builds an UNDEFINED_VAR error.
func UndefinedVar(name string) *FolioError {
	return Newf(CodeUndefinedVar, "undefined variable %q", name)
}

// FieldNotFound builds a FIELD_NOT_FOUND error with a suggestion listing
// available fields.
func FieldNotFound(field string, available []string) *FolioError {
	e := Newf(CodeFieldNotFound, "no such field %q", field)
	if len(available) > 0 {
		e.Suggestion = fmt.Sprintf("available fields: %s", joinSuggestions(available))
	}
	return e
}

// CircularRef builds a CIRCULAR_REF Fatal error for the given cycle,
// joining the cell names with the arrow the spec's §4.4 asks for.
func CircularRef(cycle []string) *FolioError {
	msg := ""
	for i, c := range cycle {
		if i > 0 {
			msg += "→"
		}
		msg += c
	}
	return Fatalf(CodeCircularRef, "circular reference: %s", msg)
}

func joinSuggestions(ss []string) string {
	out := ""
	for i, s := range ss {
		if i > 0 {
			out += ", "
		}
		out += s
	}
	return out
}
