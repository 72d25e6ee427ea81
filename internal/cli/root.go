package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"jaldh/config"
	"jaldh/internal/adapter/annotator"
	"jaldh/internal/adapter/diff"
	"jaldh/internal/adapter/fs"
	"jaldh/internal/adapter/logsink"
	"jaldh/internal/domain"
	"jaldh/internal/logger"
	"jaldh/internal/usecase"
)

// Version is the released version of jaldh.
const Version = "0.1.0 Beta"

var (
	cfgFile   string
	source    string
	lang      string
	all       bool
	recursive bool
	outPrefix string
	docFile   string
	dryRun    bool
	showDiff  bool
	verbose   bool
)

// fallbackLogPath receives log entries written before a configuration is
// available.
var fallbackLogPath = logsink.DefaultPath

var rootCmd = &cobra.Command{
	Use:   "jaldh",
	Short: "jaldh - Just Another Little Doc Helper",
	Long: `jaldh inserts missing documentation headers into Python, C and C++
source files: a module header at the top of each file and a documentation
block for every function (and, in C++ headers, every class) that has none.

Example usage:
  jaldh -s main.py                 # Annotate one file in place
  jaldh -a                         # Annotate all files in the current directory
  jaldh -r -s src -o doc_          # Recurse into src, write doc_<name> copies
  jaldh -r --dry-run --diff        # Preview what would be inserted
  jaldh -r --doc HEADERS.txt       # Collect module headers into one file`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.SetVerbose(verbose)
	},
	RunE: runAnnotate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", config.DefaultPath, "path to config file (created with defaults if missing)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "print diagnostic output")

	rootCmd.Flags().StringVarP(&source, "source", "s", "", "path to source file or directory")
	rootCmd.Flags().StringVarP(&lang, "lang", "l", string(domain.LangAuto), "source language: python, c, cpp or auto")
	rootCmd.Flags().BoolVarP(&all, "all", "a", false, "apply to all files in the source directory (default current directory)")
	rootCmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "apply recursively to subdirectories")
	rootCmd.Flags().StringVarP(&outPrefix, "output-prefix", "o", "", "write output to new files named PREFIX<name>")
	rootCmd.Flags().StringVar(&docFile, "doc", "", "write the collected module headers to FILENAME")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "annotate in memory without writing files")
	rootCmd.Flags().BoolVar(&showDiff, "diff", false, "print the lines that are inserted into each file")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "jaldh (Just-Another-Little-Doc-Helper) - Version %s\n", Version)

	if !all && !recursive && source == "" {
		return errors.New("--source (-s) is required unless -a or -r is specified")
	}

	cfg, err := config.EnsureDefault(cfgFile)
	if err != nil {
		fmt.Fprintf(out, "Configuration file not found: %s and can not be created. ... System error! exiting.\n", cfgFile)
		sink := logsink.New(fallbackLogPath, 1)
		sink.Log(fmt.Sprintf("Configuration unavailable, this is a fatal error: %v", err))
		return err
	}
	// Without an explicit --lang the configured language applies.
	langTag := lang
	if !cmd.Flags().Changed("lang") && cfg.Language != "" {
		langTag = cfg.Language
	}
	runLang, err := domain.ParseLanguage(langTag)
	if err != nil {
		return fmt.Errorf("invalid language %q: %w", langTag, err)
	}

	sink := logsink.New(cfg.Log.File, cfg.Log.FlushThreshold)
	defer func() {
		if err := sink.Flush(); err != nil {
			logger.Warn("failed to flush log %s: %v", sink.Path(), err)
		}
	}()
	sink.Log(fmt.Sprintf("Starting jaldh %s with arguments: %v...", Version, os.Args[1:]))

	targets, ok, err := collectTargets(cfg, out, sink)
	if err != nil || !ok {
		return err
	}
	logger.Info("collected %d files", len(targets))

	files := fs.NewFiles()

	if docFile != "" {
		return writeDocumentation(out, files, sink, targets)
	}

	history := openHistory(cfg)
	defer history.Close()

	annotateUC := usecase.NewAnnotateUseCase(annotator.New(), files, files, sink, history, cfg.HeaderConfig())
	opts := usecase.AnnotateOptions{
		Source:       source,
		Lang:         runLang,
		OutputPrefix: outPrefix,
		DryRun:       dryRun,
		Diff:         showDiff,
		DiffContext:  diff.DefaultContext,
	}

	result, err := annotateUC.Run(targets, opts, newProgress(len(targets)))
	if err != nil {
		return fmt.Errorf("annotation failed: %w", err)
	}

	printResult(out, result)
	return nil
}

// collectTargets resolves the files to process. ok is false when there is
// nothing to do and the run should end without error.
func collectTargets(cfg *config.Config, out io.Writer, sink *logsink.Sink) ([]string, bool, error) {
	if all || recursive {
		base := source
		if base == "" {
			base = "."
		}
		walker := fs.NewWalker(cfg.Collect.Includes, cfg.Collect.Excludes)
		targets, err := walker.Collect(base, recursive)
		if err != nil {
			fmt.Fprintf(out, "Error while collecting files: %v\n", err)
			sink.Log(fmt.Sprintf("Error while collecting files: %v", err))
			return nil, false, fmt.Errorf("failed to collect files: %w", err)
		}
		return targets, true, nil
	}

	info, err := os.Stat(source)
	if err != nil || info.IsDir() {
		fmt.Fprintln(out, "Invalid source path or missing flags (-a / -r) for directory processing.")
		return nil, false, nil
	}
	return []string{source}, true, nil
}

func writeDocumentation(out io.Writer, files *fs.Files, sink *logsink.Sink, targets []string) error {
	docUC := usecase.NewDocumentUseCase(files, files, sink)
	result, err := docUC.Write(targets, docFile)
	if err != nil {
		fmt.Fprintf(out, "Error while writing documentation: %v\n", err)
		return nil
	}

	fmt.Fprintf(out, "\nDocumentation written to %s:\n", docFile)
	fmt.Fprintf(out, "  Files with header:    %d\n", result.FilesWithHeader)
	fmt.Fprintf(out, "  Files without header: %d\n", result.FilesWithoutHeader)
	printErrors(out, result.Errors)
	return nil
}

func printResult(out io.Writer, result *usecase.AnnotateResult) {
	for _, d := range result.Diffs {
		fmt.Fprintf(out, "\n%s", d.Text)
	}

	if dryRun {
		fmt.Fprintf(out, "\nDry run complete (nothing written):\n")
	} else {
		fmt.Fprintf(out, "\nAnnotation complete:\n")
	}
	fmt.Fprintf(out, "  Files annotated: %d\n", result.FilesAnnotated)
	fmt.Fprintf(out, "  Files unchanged: %d\n", result.FilesUnchanged)
	fmt.Fprintf(out, "  Files skipped:   %d (unsupported)\n", result.FilesSkipped)
	fmt.Fprintf(out, "  Files failed:    %d\n", result.FilesFailed)
	fmt.Fprintf(out, "  Blocks added:    %d\n", result.BlocksAdded)
	printErrors(out, result.Errors)
}

func printErrors(out io.Writer, errs []string) {
	if len(errs) == 0 {
		return
	}
	fmt.Fprintf(out, "\nErrors:\n")
	for _, e := range errs {
		fmt.Fprintf(out, "  - %s\n", e)
	}
}
