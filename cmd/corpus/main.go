// Command corpus lists the kernel regression corpus and exports it as a DOT graph.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/notargets/emucheck/registry"
	"github.com/notargets/emucheck/verify"
	"go.uber.org/zap"
)

func main() {
	os.Exit(realMain(os.Args[1:], os.Stdout, os.Stderr))
}

// realMain runs the command and returns its exit code, so deferred calls
// such as the logger flush run before the process exits.
func realMain(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("corpus", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		root      = fs.String("root", registry.DefaultRoot, "Kernel source root")
		list      = fs.Bool("list", false, "List the cases")
		dotFile   = fs.String("dot", "", "Write the corpus graph to this DOT file (- for stdout)")
		mode      = fs.String("mode", "all", "Select cases by verification mode: int, float or all")
		logLevel  = fs.String("log-level", "info", "Log level")
		logFormat = fs.String("log-format", "console", "Log format: console or json")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if !*list && *dotFile == "" {
		fmt.Fprintln(stderr, "Usage: corpus [-root dir] [-mode int|float|all] -list")
		fmt.Fprintln(stderr, "       corpus [-root dir] [-mode int|float|all] -dot file.dot")
		return 1
	}

	logger, err := newLogger(*logLevel, *logFormat)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	// syncing a terminal stderr fails on some platforms
	defer func() { _ = logger.Sync() }()

	if err := run(logger, stdout, *root, *mode, *list, *dotFile); err != nil {
		logger.Error("corpus failed", zap.Error(err))
		return 1
	}
	return 0
}

func newLogger(level, format string) (*zap.Logger, error) {
	lvl, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	var cfg zap.Config
	switch format {
	case "console":
		cfg = zap.NewDevelopmentConfig()
	case "json":
		cfg = zap.NewProductionConfig()
	default:
		return nil, fmt.Errorf("unknown log format %q", format)
	}
	cfg.Level = lvl
	return cfg.Build()
}

func run(logger *zap.Logger, stdout io.Writer, root, mode string, list bool, dotFile string) error {
	keep, err := modeFilter(mode)
	if err != nil {
		return err
	}
	reg := registry.Corpus(root).Filter(keep)
	logger.Info("corpus loaded", zap.String("root", root), zap.String("mode", mode), zap.Int("cases", reg.Len()))

	if list {
		if err := writeList(stdout, reg); err != nil {
			return fmt.Errorf("list: %w", err)
		}
	}
	if dotFile == "" {
		return nil
	}

	w := stdout
	if dotFile != "-" {
		f, err := os.Create(dotFile)
		if err != nil {
			return fmt.Errorf("create dot file: %w", err)
		}
		defer f.Close()
		w = f
	}
	g, err := reg.Graph()
	if err != nil {
		return fmt.Errorf("build graph: %w", err)
	}
	n, err := g.WriteTo(w)
	if err != nil {
		return fmt.Errorf("write dot: %w", err)
	}
	logger.Debug("graph written", zap.String("file", dotFile), zap.Int64("bytes", n))
	return nil
}

func modeFilter(mode string) (func(registry.Case) bool, error) {
	switch mode {
	case "all", "":
		return func(registry.Case) bool { return true }, nil
	case "int", "integer":
		return func(c registry.Case) bool { return c.Mode() == verify.Integer }, nil
	case "float":
		return func(c registry.Case) bool { return c.Mode() == verify.Float }, nil
	default:
		return nil, fmt.Errorf("unknown mode %q", mode)
	}
}
