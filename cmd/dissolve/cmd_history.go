package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"dissolve/internal/config"
	"dissolve/internal/format"
	"dissolve/internal/store"
)

type historyFlags struct {
	db         string
	tool       string
	failedOnly bool
	limit      int
	prune      int
}

// historyReport is the JSON shape of the history command.
type historyReport struct {
	Runs   []*store.Run      `json:"runs"`
	Totals []store.ToolCount `json:"totals"`
	Pruned int64             `json:"pruned,omitempty"`
}

func (a *app) historyCmd() *cobra.Command {
	var hf historyFlags
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show tool calls recorded by 'dissolve serve'",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path := hf.db
			if path == "" {
				path = a.cfg.History.Path
			}
			out := cmd.OutOrStdout()
			if path == "" {
				fmt.Fprintln(out, "history recording is disabled: set history.path or "+config.EnvHistoryPath+", or pass --db")
				return nil
			}
			if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
				fmt.Fprintf(out, "no history recorded yet at %s\n", path)
				return nil
			}
			h, err := store.Open(path)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer h.Close()
			return a.history(cmd, h, hf)
		},
	}
	f := cmd.Flags()
	f.StringVar(&hf.db, "db", "", "History database (default history.path, e.g. "+store.DefaultDBPath+")")
	f.StringVar(&hf.tool, "tool", "", "Only show calls of this tool")
	f.BoolVar(&hf.failedOnly, "failed", false, "Only show calls that returned an error")
	f.IntVar(&hf.limit, "limit", 20, "Maximum runs to show (0 for all)")
	f.IntVar(&hf.prune, "prune", -1, "Keep only the newest N runs before listing")
	return cmd
}

func (a *app) history(cmd *cobra.Command, h store.Store, hf historyFlags) error {
	var report historyReport
	if hf.prune >= 0 {
		n, err := h.Prune(hf.prune)
		if err != nil {
			return err
		}
		report.Pruned = n
	}
	runs, err := h.ListRuns(store.Filter{Tool: hf.tool, FailedOnly: hf.failedOnly, Limit: hf.limit})
	if err != nil {
		return err
	}
	totals, err := h.ToolCounts()
	if err != nil {
		return err
	}
	report.Runs = runs
	report.Totals = totals
	if report.Runs == nil {
		report.Runs = []*store.Run{}
	}
	if report.Totals == nil {
		report.Totals = []store.ToolCount{}
	}

	return a.render(cmd, report, func(m format.Mode) format.TableBuilder {
		tbl := format.NewTable(m)
		if report.Pruned > 0 {
			tbl.Title(fmt.Sprintf("pruned %s runs", format.Count(int(report.Pruned))))
		}
		tbl.Header("ID", "Tool", "When", "OK", "Error")
		for _, r := range report.Runs {
			tbl.Row(r.ID, r.Tool, format.Ago(r.Time()), format.BoolMark(!r.Failed()), format.Ellipsis(r.Error, 60))
		}
		total := 0
		for _, c := range report.Totals {
			total += c.Runs
		}
		tbl.Footer("", format.Count(total)+" recorded", "", "", "")
		tbl.Columns(format.ColumnConfig{Number: 1, Align: format.AlignRight})
		return tbl
	})
}
