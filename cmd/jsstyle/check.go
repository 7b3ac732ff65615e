package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"jsstyle/internal/config"
	"jsstyle/internal/diagfmt"
	"jsstyle/internal/driver"
	"jsstyle/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.js|dir>",
	Short: "Lint a file, or every *.js file under a directory",
	Long: `Check tokenizes, parses and lints the given file. For a directory every *.js
file below it is linted independently. With --fix (or "autofix": true in the
config) missing spaces around operators are inserted in place.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().String("config", config.DefaultPath, "path to the style config (.json, .toml, .yaml)")
	checkCmd.Flags().Bool("fix", false, "apply automatic fixes and save the files")
	checkCmd.Flags().String("format", "text", "output format (text|pretty|json|msgpack)")
	checkCmd.Flags().Int("jobs", 0, "max parallel files in directory mode (0 = GOMAXPROCS)")
	checkCmd.Flags().String("ui", "auto", "progress UI in directory mode (auto|on|off)")
	checkCmd.Flags().String("path-mode", "as-given", "how report paths are shown (as-given|relative|absolute|basename|auto)")
}

type checkFlags struct {
	configPath     string
	explicitConfig bool
	fix            bool
	format         string
	jobs           int
	ui             uiMode
	pathMode       string
	quiet          bool
	timings        bool
	maxDiagnostics int
	color          bool
}

func readCheckFlags(cmd *cobra.Command) (checkFlags, error) {
	var (
		f   checkFlags
		err error
	)
	if f.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return f, fmt.Errorf("failed to get config flag: %w", err)
	}
	f.explicitConfig = cmd.Flags().Changed("config")
	if f.fix, err = cmd.Flags().GetBool("fix"); err != nil {
		return f, fmt.Errorf("failed to get fix flag: %w", err)
	}
	if f.format, err = cmd.Flags().GetString("format"); err != nil {
		return f, fmt.Errorf("failed to get format flag: %w", err)
	}
	f.format = strings.ToLower(f.format)
	switch f.format {
	case "text", "pretty", "json", "msgpack":
	default:
		return f, fmt.Errorf("unknown format: %s", f.format)
	}
	if f.jobs, err = cmd.Flags().GetInt("jobs"); err != nil {
		return f, fmt.Errorf("failed to get jobs flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return f, fmt.Errorf("failed to get ui flag: %w", err)
	}
	if f.ui, err = readUIMode(uiFlag); err != nil {
		return f, err
	}
	if f.pathMode, err = cmd.Flags().GetString("path-mode"); err != nil {
		return f, fmt.Errorf("failed to get path-mode flag: %w", err)
	}
	switch f.pathMode {
	case "as-given", "relative", "absolute", "basename", "auto":
	default:
		return f, fmt.Errorf("invalid --path-mode value %q", f.pathMode)
	}
	root := cmd.Root().PersistentFlags()
	if f.quiet, err = root.GetBool("quiet"); err != nil {
		return f, err
	}
	if f.timings, err = root.GetBool("timings"); err != nil {
		return f, err
	}
	if f.maxDiagnostics, err = root.GetInt("max-diagnostics"); err != nil {
		return f, err
	}
	if f.color, err = useColor(cmd); err != nil {
		return f, err
	}
	return f, nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]
	flags, err := readCheckFlags(cmd)
	if err != nil {
		return err
	}

	cfg, warnings := config.Load(flags.configPath, flags.explicitConfig)
	if !flags.quiet {
		for _, w := range warnings {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", w.Message)
		}
	}
	if flags.fix {
		cfg.Autofix = true
	}
	opts := driver.OptionsFromConfig(cfg)
	opts.MaxDiagnostics = flags.maxDiagnostics
	opts.EnableTimings = flags.timings
	opts.Jobs = flags.jobs

	st, err := os.Stat(target)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var results []*driver.Result
	if st.IsDir() {
		files, listErr := driver.ListFiles(target)
		if listErr != nil {
			return fmt.Errorf("failed to list %s: %w", target, listErr)
		}
		interactive := flags.format == "text" || flags.format == "pretty"
		if interactive && len(files) > 0 && shouldUseTUI(flags.ui) {
			results, err = runLintWithUI(cmd.Context(), "jsstyle "+target, files, opts)
		} else {
			results, err = driver.LintFiles(cmd.Context(), files, opts)
		}
	} else {
		var res *driver.Result
		res, err = driver.LintFile(cmd.Context(), target, opts)
		results = []*driver.Result{res}
	}
	if err != nil {
		return fmt.Errorf("lint failed: %w", err)
	}

	if err := renderResults(cmd.OutOrStdout(), results, flags); err != nil {
		return err
	}
	if flags.timings {
		for _, r := range results {
			if r.Timing != nil {
				fmt.Fprint(cmd.ErrOrStderr(), r.Timing.Summary(r.Path))
			}
		}
	}

	for _, r := range results {
		if r.Reported() {
			cmd.SilenceErrors = true
			return errIssuesFound
		}
	}
	return nil
}

func toFileReport(r *driver.Result, pathMode string) diagfmt.FileReport {
	return diagfmt.FileReport{Path: displayPath(r, pathMode), File: r.File, Bag: r.Bag, Applied: r.Applied}
}

// displayPath: "as-given" печатает путь так, как его передали в CLI.
func displayPath(r *driver.Result, mode string) string {
	if mode == "as-given" {
		return r.Path
	}
	if r.File != nil {
		return r.File.FormatPath(mode, "")
	}
	// файл не загрузился, форматируем сам путь
	switch mode {
	case "absolute":
		if abs, err := source.AbsolutePath(r.Path); err == nil {
			return abs
		}
	case "basename":
		return source.BaseName(r.Path)
	}
	return r.Path
}

func renderResults(out io.Writer, results []*driver.Result, flags checkFlags) error {
	reports := make([]diagfmt.FileReport, 0, len(results))
	for _, r := range results {
		if flags.quiet && !r.Reported() && r.Applied == 0 {
			continue
		}
		reports = append(reports, toFileReport(r, flags.pathMode))
	}

	switch flags.format {
	case "json", "msgpack":
		opts := diagfmt.JSONOpts{IncludePositions: true, IncludeNotes: true, IncludeFixes: true}
		if flags.format == "json" {
			return diagfmt.JSON(out, reports, opts)
		}
		return diagfmt.MsgPack(out, reports, opts)
	}

	for i, r := range reports {
		if i > 0 {
			if _, err := fmt.Fprintln(out); err != nil {
				return err
			}
		}
		var err error
		if flags.format == "pretty" {
			err = diagfmt.Pretty(out, r, diagfmt.PrettyOpts{Color: flags.color, ShowNotes: true, ShowFixes: true})
		} else {
			err = diagfmt.Plain(out, r)
		}
		if err != nil {
			return err
		}
	}
	return nil
}
