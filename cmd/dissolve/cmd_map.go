package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"dissolve/internal/format"
	"dissolve/internal/mapper"
	"dissolve/internal/space"
	"dissolve/internal/vocab"
)

func (a *app) mapCmd() *cobra.Command {
	var req mapper.Request
	cmd := &cobra.Command{
		Use:   "map <style-id>",
		Short: "Map a visual type to its full parameter bundle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.StyleID = args[0]
			m, err := mapper.Map(a.tax, req)
			if err != nil {
				return err
			}
			return a.render(cmd, m, func(mode format.Mode) format.TableBuilder {
				tbl := format.NewTable(mode)
				tbl.Title(m.StyleName + " (" + m.Intensity + ", " + m.Emphasis + ")")
				tbl.PointHeader([]string{""})
				tbl.PointRow([]any{"state"}, m.State)
				tbl.Footer("hydrology "+m.HydrologyState, "contrast "+m.ContrastCurve,
					strings.Join(m.ActiveEdgeModes, ", "), "", "", "")
				return tbl
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Intensity, "intensity", "moderate", "subtle, moderate or dramatic")
	f.StringVar(&req.Emphasis, "emphasis", "balanced", "balanced, dissolution, edge, substrate or hydrology")
	f.StringVar(&req.Substrate, "substrate", "", "Substrate id to attach")
	return cmd
}

func (a *app) vocabCmd() *cobra.Command {
	var (
		state    string
		strength float64
	)
	cmd := &cobra.Command{
		Use:   "vocab [state-id]",
		Short: "Blend the vocabulary of the visual types around a state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var id string
			if len(args) == 1 {
				id = args[0]
			}
			var p *space.Point
			if state != "" {
				parsed, err := parseState(state)
				if err != nil {
					return err
				}
				p = &parsed
			}
			v, err := vocab.Extract(a.tax, id, p, strength)
			if err != nil {
				return err
			}
			return a.render(cmd, v, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title("Nearest: " + v.NearestVisualType + ", " + v.NearestCanonicalState)
				tbl.Header("Type", "Weight")
				for _, w := range v.Contributing {
					tbl.Row(w.ID, format.Coord(w.Weight))
				}
				tbl.Columns(format.ColumnConfig{Number: 2, Align: format.AlignRight})
				return tbl
			})
		},
	}
	cmd.Flags().StringVar(&state, "state", "", "Five comma-separated coordinates, used when no id is given")
	cmd.Flags().Float64Var(&strength, "strength", 1.0, "Strength carried into the result")
	return cmd
}

// parseState reads five comma-separated coordinates in axis order.
func parseState(s string) (space.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != space.NumAxes {
		return space.Point{}, fmt.Errorf("state needs %d coordinates (%s), got %d",
			space.NumAxes, strings.Join(space.AxisNames(), ","), len(parts))
	}
	var v [space.NumAxes]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return space.Point{}, fmt.Errorf("state coordinate %s: %w", space.Axes[i], err)
		}
		v[i] = f
	}
	return space.FromVector(v), nil
}
