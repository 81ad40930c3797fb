// Package cmd implements the navx command line interface: load a
// document from a file or stdin, walk it with a dot-delimited path, run
// array queries against the result, and render the outcome.
package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/oakwood-commons/navx/internal/compare"
	"github.com/oakwood-commons/navx/internal/formatter"
	"github.com/oakwood-commons/navx/pkg/loader"
	"github.com/oakwood-commons/navx/pkg/logger"
	"github.com/oakwood-commons/navx/pkg/navigator"
	"github.com/oakwood-commons/navx/pkg/settings"
)

var (
	pathExpr     string
	findExpr     string
	filterExpr   string
	indexExpr    string
	showLength   bool
	opName       string
	outputFormat string
	sortOrder    string
	arrayStyle   string
	maxWidth     int
	noColor      bool
	quiet        bool
	logLevel     int8
	showVersion  bool
)

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName + " [file]",
	Short: "Navigate nested data with dot-delimited paths",
	Long: settings.CliBinaryName + ` traverses nested data structures (JSON, YAML, NDJSON, TOML)
using dot-delimited paths and comparison-driven array queries.

Paths descend one segment at a time; an all-digit segment indexes an
array. A path that does not resolve prints "(absent)" rather than
failing: absence is an ordinary result, not an error.

Examples:
  navx config.yaml --path server.hosts.0
  cat users.json | navx --path users --find name=alice
  navx scores.json --index 90 --op greater_than
  navx inventory.toml --path items --filter price=10 --op less_than`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func init() {
	registerFlags(rootCmd.Flags())
}

func registerFlags(flags *pflag.FlagSet) {
	flags.StringVarP(&pathExpr, "path", "p", "", "dot-delimited path to navigate before any query")
	flags.StringVar(&findExpr, "find", "", "key=value: wrap the first matching array element")
	flags.StringVar(&filterExpr, "filter", "", "key=value: wrap every matching array element")
	flags.StringVar(&indexExpr, "index", "", "value or key=value: print the position of the first match")
	flags.BoolVar(&showLength, "length", false, "print the element count of the current array")
	flags.StringVar(&opName, "op", string(navigator.OpEquals), "comparison operation for --find/--filter/--index")
	flags.StringVarP(&outputFormat, "output", "o", "table", "output format: table, json, or yaml")
	flags.StringVar(&sortOrder, "sort", string(formatter.SortAscending), "map key order in table output: none, ascending, or descending")
	flags.StringVar(&arrayStyle, "array-style", formatter.ArrayStyleIndex, "array index style in table output: index, numbered, bullet, or none")
	flags.IntVar(&maxWidth, "max-width", 0, "maximum table width (0 = terminal width)")
	flags.BoolVar(&noColor, "no-color", false, "disable colored output")
	flags.BoolVarP(&quiet, "quiet", "q", false, "suppress warnings")
	flags.Int8Var(&logLevel, "log-level", 0, "minimum log level (zap levels; negative is more verbose)")
	flags.BoolVar(&showVersion, "version", false, "print version information and exit")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	if showVersion {
		fmt.Fprintf(out, "%s %s (commit %s, built %s)\n",
			settings.CliBinaryName,
			settings.VersionInformation.BuildVersion,
			settings.VersionInformation.Commit,
			settings.VersionInformation.BuildTime)
		return nil
	}

	lgr := logger.Get(logLevel)

	op := navigator.Operator(opName)
	if !compare.IsSupported(op) && !quiet {
		lgr.Info("unknown comparison operation; every comparison will be false", "op", opName)
	}

	root, err := loadInput(cmd, args)
	if err != nil {
		return err
	}

	n := navigator.New(root)
	if pathExpr != "" {
		n = n.NavigateTo(pathExpr)
	}
	if findExpr != "" {
		key, match, err := parseKeyValue(findExpr)
		if err != nil {
			return fmt.Errorf("--find: %w", err)
		}
		n = n.Find(key, match, op)
	}
	if filterExpr != "" {
		key, match, err := parseKeyValue(filterExpr)
		if err != nil {
			return fmt.Errorf("--filter: %w", err)
		}
		n = n.Filter(key, match, op)
	}

	if indexExpr != "" {
		return printIndex(out, n, op)
	}
	if showLength {
		length, ok := n.GetLength()
		if !ok {
			fmt.Fprintln(out, navigator.Absent)
			return nil
		}
		fmt.Fprintln(out, length)
		return nil
	}

	return renderNode(out, n.Value())
}

// loadInput reads the document from the file argument or stdin.
func loadInput(cmd *cobra.Command, args []string) (interface{}, error) {
	lgr := logger.Get(logLevel)

	if len(args) == 1 {
		return loader.LoadFileWithLogger(args[0], *lgr)
	}

	stdin := cmd.InOrStdin()
	if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return nil, fmt.Errorf("no input provided: pass a file argument or pipe data to stdin")
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return loader.LoadRootWithLogger(string(data), *lgr)
}

// parseKeyValue splits a key=value flag argument. The value is decoded as
// a YAML scalar so numbers and booleans compare with their natural types.
func parseKeyValue(expr string) (string, interface{}, error) {
	key, rawValue, found := strings.Cut(expr, "=")
	if !found || key == "" {
		return "", nil, fmt.Errorf("expected key=value, got %q", expr)
	}
	return key, parseScalar(rawValue), nil
}

func parseScalar(raw string) interface{} {
	var value interface{}
	if err := yaml.Unmarshal([]byte(raw), &value); err != nil {
		return raw
	}
	return value
}

func printIndex(out io.Writer, n *navigator.Navigator, op navigator.Operator) error {
	var (
		idx int
		ok  bool
	)
	if key, rawValue, found := strings.Cut(indexExpr, "="); found && key != "" {
		idx, ok = n.GetIndex(key, parseScalar(rawValue), op)
	} else {
		idx, ok = n.GetIndex(parseScalar(indexExpr), op)
	}
	if !ok {
		fmt.Fprintln(out, navigator.Absent)
		return nil
	}
	fmt.Fprintln(out, idx)
	return nil
}

func renderNode(out io.Writer, node interface{}) error {
	if navigator.IsAbsent(node) {
		fmt.Fprintln(out, navigator.Absent)
		return nil
	}

	switch outputFormat {
	case "json":
		data, err := json.MarshalIndent(node, "", "  ")
		if err != nil {
			return fmt.Errorf("encode JSON: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	case "yaml":
		data, err := yaml.Marshal(node)
		if err != nil {
			return fmt.Errorf("encode YAML: %w", err)
		}
		fmt.Fprint(out, string(data))
		return nil
	case "table":
		opts := formatter.RowOptions{
			SortOrder:  formatter.SortOrder(sortOrder),
			ArrayStyle: arrayStyle,
		}
		rows := formatter.NodeToRowsWithOptions(node, opts)
		fmt.Fprint(out, formatter.RenderTable(rows, noColor, tableWidth()))
		return nil
	default:
		return fmt.Errorf("unknown output format %q (expected table, json, or yaml)", outputFormat)
	}
}

// tableWidth resolves the table width limit: the --max-width flag wins,
// then the detected terminal width, then a fixed default.
func tableWidth() int {
	if maxWidth > 0 {
		return maxWidth
	}
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		return width
	}
	return 120
}
