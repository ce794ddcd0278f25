package main

import (
	"github.com/spf13/cobra"

	"dissolve/internal/display"
	"dissolve/internal/format"
)

func (a *app) stylesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "styles [style-id]",
		Short: "List the visual types, or show one in full",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				vt, err := a.tax.Style(args[0])
				if err != nil {
					return err
				}
				return a.render(cmd, vt, nil)
			}
			types := a.tax.VisualTypes()
			return a.render(cmd, types, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.PointHeader([]string{"ID", "Name"})
				for _, vt := range types {
					tbl.PointRow([]any{vt.ID, vt.Name}, vt.Center)
				}
				tbl.Footer("", format.Count(len(types))+" types")
				return tbl
			})
		},
	}
}

func (a *app) statesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "states",
		Short: "List the canonical states",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			states := a.tax.CanonicalStates()
			return a.render(cmd, states, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.PointHeader([]string{"ID", "Source"})
				for _, cs := range states {
					tbl.PointRow([]any{cs.ID, display.Words(cs.Source)}, cs.Coordinates)
				}
				return tbl
			})
		},
	}
}
