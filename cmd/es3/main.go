// Command es3 runs ECMAScript 3rd edition programs.
//
//	es3 [flags] file.js ...   run each file in one interpreter
//	es3 -e 'expr'             evaluate and print the result
//	es3 -simplify file.js     print the file with its constants folded
//	es3                       interactive prompt
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/exp/slog"

	"github.com/t14raptor/es3/ast"
	"github.com/t14raptor/es3/config"
	"github.com/t14raptor/es3/evaluator"
	"github.com/t14raptor/es3/generator"
	"github.com/t14raptor/es3/input"
	"github.com/t14raptor/es3/parser"
	"github.com/t14raptor/es3/parser/scanner"
	"github.com/t14raptor/es3/simplifier"
)

const (
	historyFile = ".es3_history"
	promptMain  = "es3> "
	promptCont  = "...> "
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("es3", flag.ContinueOnError)
	var (
		cfgPath = fs.String("config", "", "YAML configuration file")
		js      = fs.String("js", "", "JavaScript compatibility version (1.1 to 1.5)")
		sgml    = fs.Bool("sgml", false, "treat <!-- as a comment")
		trace   = fs.Bool("trace", false, "log trace events")
		verbose = fs.Bool("v", false, "debug logging")
		expr    = fs.String("e", "", "evaluate an expression and print the result")
		simp    = fs.Bool("simplify", false, "print each file with constant expressions folded instead of running it")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.Load(*cfgPath); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return 2
		}
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "js":
			cfg.Compat.JS = *js
		case "sgml":
			cfg.Compat.SGMLComments = *sgml
		case "trace":
			cfg.Trace = *trace
		case "v":
			if *verbose {
				cfg.Log.Level = "debug"
			}
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel()}))
	ip := evaluator.New(
		evaluator.WithConfig(cfg),
		evaluator.WithLogger(log),
		evaluator.WithUncaught(func(ex *evaluator.Exception) {
			fmt.Fprintf(os.Stderr, "uncaught exception: %s\n%s", ex.Error(), ex.TracebackString())
		}),
	)
	installHostFunctions(ip, os.Stdout)

	switch {
	case *expr != "":
		v, err := ip.EvalString(*expr, "<command line>")
		if err != nil {
			return report(err)
		}
		fmt.Println(display(ip, v))
		return 0
	case fs.NArg() > 0:
		for _, path := range fs.Args() {
			var err error
			if *simp {
				err = simplifyFile(ip, cfg.ScannerCompat(), log, path, os.Stdout)
			} else {
				err = runFile(ip, cfg.ScannerCompat(), log, path)
			}
			if err != nil {
				return report(err)
			}
		}
		return 0
	}
	return repl(ip, cfg.ScannerCompat(), log)
}

// installHostFunctions adds the functions a command line host provides.
func installHostFunctions(ip *evaluator.Interpreter, w io.Writer) {
	ip.Global.DefineFunc(ip, "print", 1, func(ip *evaluator.Interpreter, _ *evaluator.Object, args []evaluator.Value) (evaluator.Value, error) {
		parts := make([]string, len(args))
		for i, a := range args {
			s, err := ip.ToString(a)
			if err != nil {
				return evaluator.Undefined(), err
			}
			parts[i] = s
		}
		fmt.Fprintln(w, strings.Join(parts, " "))
		return evaluator.Undefined(), nil
	})
}

func parseFile(compat scanner.Compat, log *slog.Logger, path string) (*ast.Function, error) {
	src, err := input.Open(path)
	if err != nil {
		return nil, err
	}
	defer src.Close()
	return parser.ParseProgram(src, parser.WithCompat(compat), parser.WithLogger(log))
}

func simplifyFile(ip *evaluator.Interpreter, compat scanner.Compat, log *slog.Logger, path string, w io.Writer) error {
	fn, err := parseFile(compat, log, path)
	if err != nil {
		return err
	}
	if simplifier.Simplify(ip, fn) {
		log.Debug("simplified", "file", path)
	}
	_, err = io.WriteString(w, generator.Generate(fn))
	return err
}

func runFile(ip *evaluator.Interpreter, compat scanner.Compat, log *slog.Logger, path string) error {
	fn, err := parseFile(compat, log, path)
	if err != nil {
		return err
	}
	_, err = ip.Run(fn)
	return err
}

// report prints an error and returns the exit status. Uncaught exceptions
// were already printed by the interpreter's callback.
func report(err error) int {
	var ex *evaluator.Exception
	if !errors.As(err, &ex) {
		fmt.Fprintln(os.Stderr, err)
	}
	return 1
}

func display(ip *evaluator.Interpreter, v evaluator.Value) string {
	s, err := ip.ToString(v)
	if err != nil {
		return "[" + v.Kind().String() + "]"
	}
	if v.IsString() {
		return fmt.Sprintf("%q", s)
	}
	return s
}

func repl(ip *evaluator.Interpreter, compat scanner.Compat, log *slog.Logger) int {
	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	line := 1
	for {
		code, ok := readStatement(ln, compat, log)
		if !ok {
			fmt.Println()
			return 0
		}
		switch strings.TrimSpace(code) {
		case "":
			continue
		case ":quit":
			return 0
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))

		src := input.NewString(code, input.WithName("<stdin>"), input.WithFirstLine(line))
		line += strings.Count(code, "\n") + 1
		fn, err := parser.ParseProgram(src, parser.WithCompat(compat), parser.WithLogger(log))
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			continue
		}
		v, err := ip.Run(fn)
		if err != nil {
			report(err)
			continue
		}
		if !v.IsUndefined() {
			fmt.Println(display(ip, v))
		}
	}
}

// readStatement reads lines until they parse or fail for a reason other
// than running out of input.
func readStatement(ln *liner.State, compat scanner.Compat, log *slog.Logger) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			return "", false
		}
		if err != nil {
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		_, perr := parser.ParseProgram(input.NewString(src), parser.WithCompat(compat), parser.WithLogger(log))
		var se *parser.SyntaxError
		if errors.As(perr, &se) && se.AtEOF {
			continue
		}
		return src, true
	}
}
