// Command foliocli evaluates a Folio template from a file or stdin and
// writes the rendered Markdown to stdout or a file. This is the CLI
// plumbing SPEC_FULL.md's core explicitly leaves outside folio itself,
// built as a thin cobra wrapper around folio.Eval.
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/foliolang/folio"
	"github.com/foliolang/folio/eval"
	"github.com/foliolang/folio/internal/logging"
	"github.com/foliolang/folio/value"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		varFlags  []string
		precision uint32
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "foliocli [template]",
		Short: "Evaluate a Folio computational-markdown template",
		Long: "foliocli reads a Folio template (a file path, or \"-\"/no argument for stdin), " +
			"evaluates every cell, and writes the rendered Markdown.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.Default()

			template, err := readTemplate(args)
			if err != nil {
				logger.Errorf("reading template: %v", err)
				return err
			}

			vars, err := parseVarFlags(varFlags)
			if err != nil {
				logger.Errorf("parsing --var: %v", err)
				return err
			}

			result := folio.Eval(template, vars, precision)
			if len(result.Errors) > 0 {
				logger.Warnf("evaluation produced %d error(s)", len(result.Errors))
			}

			return writeOutput(outPath, result.Markdown)
		},
	}

	cmd.Flags().StringArrayVar(&varFlags, "var", nil, "external variable binding, name=value (repeatable)")
	cmd.Flags().Uint32Var(&precision, "precision", folio.DefaultPrecision, "working precision in digits")
	cmd.Flags().StringVar(&outPath, "out", "", "output file path (default: stdout)")

	return cmd
}

func readTemplate(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return string(b), nil
	}
	b, err := os.ReadFile(args[0])
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// parseVarFlags turns "name=value" flag strings into a variable map,
// interpreting each value the same way a literal cell's raw text is
// interpreted (eval.EvalLiteral), so "--var rate=0.05" and
// "--var start=2025-01-01" behave the way the corresponding template
// literal would.
func parseVarFlags(flags []string) (map[string]*value.Value, error) {
	vars := map[string]*value.Value{}
	for _, f := range flags {
		name, raw, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --var %q, want name=value", f)
		}
		vars[strings.TrimSpace(name)] = eval.EvalLiteral(raw)
	}
	return vars, nil
}

func writeOutput(outPath, markdown string) error {
	if outPath == "" {
		_, err := fmt.Fprint(os.Stdout, markdown)
		return err
	}
	return os.WriteFile(outPath, []byte(markdown), 0o644)
}
