// Package cli wires the query engine into the jg command.
package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/jacoelho/jg/internal/document"
	"github.com/jacoelho/jg/internal/engine"
	"github.com/jacoelho/jg/internal/exit"
	"github.com/jacoelho/jg/internal/query"
	"github.com/jacoelho/jg/internal/render"
)

// version is overridden at build time via the linker.
var version = "dev"

// Run executes the command line and returns the process exit code.
func Run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		var coded *exit.Error
		if errors.As(err, &coded) {
			// Message already written by the failing command.
			return coded.Code
		}
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exit.CodeUsage
	}
	return exit.CodeOK
}

type options struct {
	compact     bool
	count       bool
	depth       bool
	noDisplay   bool
	fixedString bool
	withPath    bool
	noPath      bool
	yamlInput   bool
	noColor     bool
}

func newRootCommand() *cobra.Command {
	o := &options{}

	cmd := &cobra.Command{
		Use:   "jg [QUERY] [FILE]",
		Short: "Query JSON documents with regular expressions over paths",
		Long: `jg matches regular expressions over paths through a JSON document and
prints every value found, with the path that led to it.

A query is a dot-separated sequence of steps: field names (quoted when
they contain special characters), array indices like [0], inclusive
slices like [1:3] or [2:], and the wildcards * (any field) and [*]
(any index). Steps group with parentheses, alternate with |, and take
the postfix operators * (repeat) and ? (optional). The empty query
matches the document root.`,
		Example: `  jg 'users.[*].name' users.json
  cat config.json | jg '**.port'
  jg -F name payload.json`,
		Args:              cobra.MaximumNArgs(2),
		SilenceUsage:      true,
		SilenceErrors:     true,
		Version:           version,
		CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
		RunE:              o.run,
	}

	flags := cmd.Flags()
	flags.BoolVar(&o.compact, "compact", false, "print matched values without indentation")
	flags.BoolVar(&o.count, "count", false, "print the number of matches after evaluation")
	flags.BoolVar(&o.depth, "depth", false, "print the maximum nesting depth of the document")
	flags.BoolVarP(&o.noDisplay, "no-display", "n", false, "do not print matched values")
	flags.BoolVarP(&o.fixedString, "fixed-string", "F", false, "treat QUERY as a literal field name, searched at any depth")
	flags.BoolVar(&o.withPath, "with-path", false, "always print the path header before each match")
	flags.BoolVar(&o.noPath, "no-path", false, "never print the path header")
	flags.BoolVar(&o.yamlInput, "yaml", false, "read the input document as YAML")
	flags.BoolVar(&o.noColor, "no-color", false, "disable colored output")
	cmd.MarkFlagsMutuallyExclusive("with-path", "no-path")

	cmd.AddCommand(newGenerateCommand())
	return cmd
}

func (o *options) run(cmd *cobra.Command, args []string) error {
	stdout := cmd.OutOrStdout()
	stderr := cmd.ErrOrStderr()

	if len(args) == 0 && isTerminal(cmd.InOrStdin()) {
		return cmd.Help()
	}

	queryText := ""
	if len(args) > 0 {
		queryText = args[0]
	}

	in := cmd.InOrStdin()
	if len(args) > 1 && args[1] != "-" {
		f, err := os.Open(args[1])
		if err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exit.IO(err)
		}
		defer f.Close()
		in = f
	}

	doc, err := o.decode(in)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return exit.IO(err)
	}

	if o.depth {
		fmt.Fprintf(stdout, "Document depth: %d\n", doc.Depth())
	}

	var matches []engine.Match
	if o.fixedString {
		matches = engine.FindFixed(queryText, doc)
	} else {
		q, err := query.Parse(queryText)
		if err != nil {
			writeQueryError(stderr, queryText, err)
			return exit.Usage(err)
		}
		matches = engine.Find(q, doc)
	}

	if !o.noDisplay {
		if err := o.display(stdout, matches); err != nil {
			fmt.Fprintf(stderr, "error: %v\n", err)
			return exit.IO(err)
		}
	}

	if o.count {
		fmt.Fprintf(stdout, "Found matches: %d\n", len(matches))
	}
	return nil
}

func (o *options) decode(in io.Reader) (*document.Value, error) {
	if o.yamlInput {
		return document.DecodeYAML(in)
	}
	return document.Decode(in)
}

func (o *options) display(stdout io.Writer, matches []engine.Match) error {
	styles := render.PlainStyles()
	if !o.noColor && os.Getenv("NO_COLOR") == "" && isTerminal(stdout) {
		styles = render.DefaultStyles()
	}

	p := &render.Printer{
		Out:      stdout,
		Styles:   styles,
		Compact:  o.compact,
		ShowPath: o.showPath(stdout),
	}
	for _, m := range matches {
		if err := p.Print(m); err != nil {
			if render.IsBrokenPipe(err) {
				return nil
			}
			return err
		}
	}
	return nil
}

// showPath resolves the header default: explicit flags win, otherwise
// headers appear only when writing to a terminal.
func (o *options) showPath(stdout io.Writer) bool {
	switch {
	case o.withPath:
		return true
	case o.noPath:
		return false
	}
	return isTerminal(stdout)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// writeQueryError reports a query error with a caret pointing at the
// offending column.
func writeQueryError(w io.Writer, queryText string, err error) {
	fmt.Fprintf(w, "error: %v\n", err)
	if pos := query.Position(err); pos >= 0 && pos <= len(queryText) {
		fmt.Fprintf(w, "  %s\n  %s^\n", queryText, strings.Repeat(" ", pos))
	}
}
