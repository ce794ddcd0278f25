package main

import (
	"strings"

	"github.com/spf13/cobra"

	"dissolve/internal/classify"
	"dissolve/internal/display"
	"dissolve/internal/format"
)

func (a *app) classifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "classify <text>...",
		Short: "Classify free text to the closest visual type",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			intent := classify.ClassifyIntent(a.tax, strings.Join(args, " "))
			return a.render(cmd, intent, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title("Primary: " + intent.PrimaryStyle + " (" + display.Percent(intent.Confidence) + ")")
				tbl.Header("Type", "Score", "Matched")
				for _, ts := range intent.TypeScores {
					tbl.Row(ts.ID, ts.Score, strings.Join(intent.MatchedKeywords[ts.ID], ", "))
				}
				tbl.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
				return tbl
			})
		},
	}
}

func (a *app) decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <text>...",
		Short: "Infer continuous coordinates from free text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d := classify.Decompose(a.tax, strings.Join(args, " "))
			return a.render(cmd, d, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title("Nearest: " + d.NearestType + " at " + format.Coord(d.NearestTypeDistance))
				tbl.PointHeader(nil)
				tbl.PointRow(nil, d.Coordinates)
				return tbl
			})
		},
	}
}

func (a *app) roundtripCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "roundtrip",
		Short: "Check that every visual type decomposes back to itself",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			report, err := classify.RoundTrip(cmd.Context(), a.tax)
			if err != nil {
				return err
			}
			return a.render(cmd, report, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Header("Type", "Recovered", "Error", "Correct")
				for _, r := range report.PerType {
					tbl.Row(r.ID, r.RecoveredNearest, format.Coord(r.ReconstructionError), format.BoolMark(r.NearestTypeCorrect))
				}
				tbl.Footer("Mean", display.Percent(report.NearestTypeAccuracy),
					format.Coord(report.MeanReconstructionError), "")
				tbl.Columns(format.ColumnConfig{Number: 3, Align: format.AlignRight})
				return tbl
			})
		},
	}
}
