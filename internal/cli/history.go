package cli

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"jaldh/config"
	"jaldh/internal/adapter/memstore"
	"jaldh/internal/adapter/store"
	"jaldh/internal/domain"
	"jaldh/internal/logger"
	"jaldh/internal/port"
)

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "Show recorded annotation runs",
	Long: `List the annotation runs recorded in the history database, or the
per-file outcomes of one run. A run can be selected by any unique prefix of
its ID.

Examples:
  jaldh history            # List all runs
  jaldh history 3f2a       # Show the files of run 3f2a...`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

// openHistory returns the configured history store. A disabled or unusable
// history falls back to an in-memory store so annotation still runs.
func openHistory(cfg *config.Config) port.HistoryStore {
	if !cfg.History.Enabled {
		return memstore.NewMemoryStore()
	}
	if err := config.EnsureParentDir(cfg.History.Path); err != nil {
		logger.Warn("history disabled: %v", err)
		return memstore.NewMemoryStore()
	}
	st, err := store.NewBoltStore(cfg.History.Path)
	if err != nil {
		logger.Warn("history disabled: %v", err)
		return memstore.NewMemoryStore()
	}
	return st
}

func runHistory(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if _, err := os.Stat(cfg.History.Path); err != nil {
		fmt.Fprintln(out, "No history recorded.")
		return nil
	}

	st, err := store.NewBoltStore(cfg.History.Path)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer st.Close()

	runs, err := st.ListRuns()
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}
	if len(runs) == 0 {
		fmt.Fprintln(out, "No history recorded.")
		return nil
	}

	if len(args) == 0 {
		return printRuns(cmd, st, runs)
	}

	run, err := findRun(runs, args[0])
	if err != nil {
		return err
	}
	recs, err := st.GetFiles(run.ID)
	if err != nil {
		return fmt.Errorf("failed to read run %s: %w", run.ID, err)
	}

	fmt.Fprintf(out, "Run %s (%s)\n\n", run.ID, run.StartedAt.Format("2006-01-02 15:04:05"))
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "STATUS\tLANG\tBLOCKS\tLINES\tPATH")
	for _, rec := range recs {
		path := rec.Path
		if rec.OutputPath != "" {
			path += " -> " + rec.OutputPath
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t+%d\t%s\n", rec.Status, rec.Lang, rec.Blocks, rec.LinesAdded, path)
		if rec.Error != "" {
			fmt.Fprintf(w, "\t\t\t\t  %s\n", rec.Error)
		}
	}
	return w.Flush()
}

func printRuns(cmd *cobra.Command, st port.HistoryStore, runs []domain.Run) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTARTED\tSOURCE\tLANG\tFILES\tANNOTATED\tFAILED")
	for _, run := range runs {
		recs, err := st.GetFiles(run.ID)
		if err != nil {
			return fmt.Errorf("failed to read run %s: %w", run.ID, err)
		}
		annotated, failed := 0, 0
		for _, rec := range recs {
			switch rec.Status {
			case domain.StatusAnnotated:
				annotated++
			case domain.StatusFailed, domain.StatusUnsupported:
				failed++
			}
		}
		src := run.Source
		if src == "" {
			src = "."
		}
		if run.DryRun {
			src += " (dry run)"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%d\t%d\n",
			shortID(run.ID), run.StartedAt.Format("2006-01-02 15:04:05"), src, run.Lang, len(recs), annotated, failed)
	}
	return w.Flush()
}

func findRun(runs []domain.Run, prefix string) (domain.Run, error) {
	var matches []domain.Run
	for _, run := range runs {
		if strings.HasPrefix(run.ID, prefix) {
			matches = append(matches, run)
		}
	}
	switch len(matches) {
	case 0:
		return domain.Run{}, fmt.Errorf("no run matches %q", prefix)
	case 1:
		return matches[0], nil
	default:
		return domain.Run{}, fmt.Errorf("run id %q is ambiguous (%d matches)", prefix, len(matches))
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
