// Command foliod is a minimal newline-delimited JSON stdio server: one
// request object per line in, one response object per line out. This
// stands in for the RPC/stdio server framing SPEC_FULL.md's core
// explicitly leaves outside folio itself.
package main

import (
	"bufio"
	"encoding/json"
	"io"
	"os"

	"github.com/foliolang/folio"
	"github.com/foliolang/folio/eval"
	"github.com/foliolang/folio/ferr"
	"github.com/foliolang/folio/internal/logging"
	"github.com/foliolang/folio/registry"
	"github.com/foliolang/folio/render"
	"github.com/foliolang/folio/value"
)

// request is one line of stdin: a template plus its external variable
// bindings, each given as text and interpreted the same way a literal
// cell's raw text is (eval.EvalLiteral), and an optional precision
// override.
type request struct {
	Template  string            `json:"template"`
	Variables map[string]string `json:"variables"`
	Precision uint32            `json:"precision"`
}

// wireError is the JSON-safe projection of a ferr.FolioError.
type wireError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
}

// response is one line of stdout: the rendered document plus every
// cell's result, formatted for display, and any diagnostics.
type response struct {
	Markdown string            `json:"markdown"`
	Values   map[string]string `json:"values"`
	Errors   []wireError       `json:"errors,omitempty"`
	Warnings []wireError       `json:"warnings,omitempty"`
	Fault    string            `json:"fault,omitempty"`
}

func main() {
	logger := logging.Default()
	reg := folio.NewRegistry()
	serve(os.Stdin, os.Stdout, reg, logger)
}

// serve reads one JSON request per line from in and writes one JSON
// response per line to out, until in is exhausted. A malformed line
// produces a response carrying only Fault, not a server-ending error:
// one bad request should never bring the loop down.
func serve(in io.Reader, out io.Writer, reg *registry.Registry, logger *logging.Logger) {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	encoder := json.NewEncoder(out)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		resp := handleLine(line, reg)
		if err := encoder.Encode(resp); err != nil {
			logger.Errorf("writing response: %v", err)
			return
		}
	}
	if err := scanner.Err(); err != nil {
		logger.Errorf("reading request: %v", err)
	}
}

func handleLine(line []byte, reg *registry.Registry) response {
	var req request
	if err := json.Unmarshal(line, &req); err != nil {
		return response{Fault: "malformed request: " + err.Error()}
	}

	vars := make(map[string]*value.Value, len(req.Variables))
	for name, raw := range req.Variables {
		vars[name] = eval.EvalLiteral(raw)
	}

	result := folio.EvalWithRegistry(req.Template, vars, req.Precision, reg)
	return toResponse(result)
}

func toResponse(result *folio.EvalResult) response {
	values := make(map[string]string, len(result.Values))
	for name, v := range result.Values {
		values[name] = render.FormatValue(v, render.DefaultNumberFormat(), render.DefaultDateFormat())
	}
	return response{
		Markdown: result.Markdown,
		Values:   values,
		Errors:   toWireErrors(result.Errors),
		Warnings: toWireErrors(result.Warnings),
	}
}

func toWireErrors(errs []*ferr.FolioError) []wireError {
	if len(errs) == 0 {
		return nil
	}
	out := make([]wireError, len(errs))
	for i, e := range errs {
		out[i] = wireError{Code: string(e.Code), Message: e.Message, Suggestion: e.Suggestion}
	}
	return out
}
