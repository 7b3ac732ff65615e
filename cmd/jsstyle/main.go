package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"jsstyle/internal/prof"
	"jsstyle/internal/trace"
	"jsstyle/internal/version"
)

// errIssuesFound: тихая ошибка: отчёт уже напечатан, нужен только код выхода 1.
var errIssuesFound = errors.New("style issues found")

var rootCmd = &cobra.Command{
	Use:   "jsstyle",
	Short: "Style linter and fixer for a small JavaScript subset",
	Long: `jsstyle checks naming, operator spacing, blank lines, function complexity
and unused variables, and can insert missing spaces around operators in place`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		cleanup, ring, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup, traceRing = cleanup, ring
		session, err := setupProfiling(cmd)
		if err != nil {
			return err
		}
		profSession = session
		return nil
	},
}

var (
	traceCleanup func()
	traceRing    *trace.RingTracer
	profSession  *prof.Session
)

func init() {
	// Устанавливаем версию для автоматического флага --version
	rootCmd.Version = version.Info(false)
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show per-stage timing information")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics per file (0 = unlimited)")
	rootCmd.PersistentFlags().String("trace", "", "write trace events to file (- for stderr, .ndjson for JSON)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().Int("trace-ring-size", 0, "keep the last N trace events and dump them on failure")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

// main runs the root command. Exit status is 1 when any file has a
// non-empty report or the command failed.
func main() {
	os.Exit(execute())
}

func execute() int {
	err := rootCmd.Execute()
	if profSession != nil {
		if stopErr := profSession.Stop(); stopErr != nil {
			fmt.Fprintf(os.Stderr, "profiling: %v\n", stopErr)
		}
		profSession = nil
	}
	// PersistentPostRun не вызывается при ошибке, поэтому закрываем трассу здесь
	if traceCleanup != nil {
		if err != nil && !errors.Is(err, errIssuesFound) && traceRing != nil {
			fmt.Fprintln(os.Stderr, "last trace events:")
			_ = traceRing.Dump(os.Stderr, trace.FormatText) //nolint:errcheck
		}
		traceCleanup()
		traceCleanup, traceRing = nil, nil
	}
	if err != nil {
		return 1
	}
	return 0
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

func useColor(cmd *cobra.Command) (bool, error) {
	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return false, err
	}
	switch colorFlag {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("invalid --color value %q (expected auto|on|off)", colorFlag)
}
