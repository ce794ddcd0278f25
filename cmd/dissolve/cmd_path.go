package main

import (
	"github.com/spf13/cobra"

	"dissolve/internal/display"
	"dissolve/internal/format"
	"dissolve/internal/trajectory"
)

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance <id-1> <id-2>",
		Short: "Measure the distance between two states or visual types",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := trajectory.Compare(a.tax, args[0], args[1])
			if err != nil {
				return err
			}
			return a.render(cmd, c, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title(c.ID1 + " → " + c.ID2 + ": " + format.Coord(c.Distance) +
					" (dominant " + display.Axis(c.DominantAxis) + ")")
				tbl.PointHeader([]string{""})
				tbl.PointRow([]any{"delta"}, c.PerAxisDifference)
				return tbl
			})
		},
	}
}

func samplesTable(m format.Mode, title string, samples []trajectory.Sample) format.TableBuilder {
	tbl := format.NewTable(m)
	tbl.Title(title)
	tbl.PointHeader([]string{"Step", "t"}, "Nearest")
	for _, s := range samples {
		tbl.PointRow([]any{s.Step, format.Coord(s.T)}, s.State, s.NearestType)
	}
	tbl.Columns(format.ColumnConfig{Number: 1, Align: format.AlignRight})
	return tbl
}

func (a *app) trajectoryCmd() *cobra.Command {
	var steps int
	cmd := &cobra.Command{
		Use:   "trajectory <start-id> <end-id>",
		Short: "Sample a straight line between two states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("steps") {
				steps = a.cfg.Defaults.TrajectorySteps
			}
			tr, err := trajectory.Linear(a.tax, args[0], args[1], steps)
			if err != nil {
				return err
			}
			return a.render(cmd, tr, func(m format.Mode) format.TableBuilder {
				return samplesTable(m, display.Path([]string{tr.StartID, tr.EndID})+" ("+format.Coord(tr.TotalDistance)+")", tr.Samples)
			})
		},
	}
	cmd.Flags().IntVar(&steps, "steps", trajectory.DefaultSteps, "Number of steps (samples = steps+1)")
	return cmd
}

func (a *app) rhythmCmd() *cobra.Command {
	var req trajectory.RhythmRequest
	cmd := &cobra.Command{
		Use:   "rhythm <state-a> <state-b>",
		Short: "Oscillate between two states",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.StateA, req.StateB = args[0], args[1]
			f := cmd.Flags()
			if !f.Changed("steps-per-cycle") {
				req.StepsPerCycle = a.cfg.Defaults.StepsPerCycle
			}
			if !f.Changed("cycles") {
				req.Cycles = a.cfg.Defaults.NumCycles
			}
			if !f.Changed("seed") {
				req.Seed = a.cfg.Defaults.DriftSeed
			}
			r, err := trajectory.Rhythmic(a.tax, req)
			if err != nil {
				return err
			}
			return a.render(cmd, r, func(m format.Mode) format.TableBuilder {
				return samplesTable(m, string(r.OscillationPattern)+" "+display.Path([]string{r.StateA, r.StateB}), r.Sequence)
			})
		},
	}
	f := cmd.Flags()
	f.IntVar(&req.StepsPerCycle, "steps-per-cycle", trajectory.DefaultStepsPerCycle, "Steps in one cycle")
	f.IntVar(&req.Cycles, "cycles", trajectory.DefaultCycles, "Number of cycles")
	f.StringVar(&req.Shape, "pattern", string(trajectory.Sinusoidal), "sinusoidal, triangle, sawtooth or drift")
	f.Float64Var(&req.PhaseOffset, "phase", 0, "Phase offset in cycles (sinusoidal and drift)")
	f.Int64Var(&req.Seed, "seed", 0, "Noise seed for the drift pattern")
	return cmd
}

func (a *app) presetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "preset [name]",
		Short: "Run one period of a rhythmic preset, or list the presets",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				presets := a.tax.RhythmicPresets()
				return a.render(cmd, presets, func(m format.Mode) format.TableBuilder {
					tbl := format.NewTable(m)
					tbl.Header("Name", "Path", "Period", "Character")
					for _, p := range presets {
						tbl.Row(p.ID, display.Path([]string{p.StateA, p.StateB}), p.Period, p.Character)
					}
					return tbl
				})
			}
			run, err := trajectory.ApplyPreset(a.tax, args[0])
			if err != nil {
				return err
			}
			return a.render(cmd, run, func(m format.Mode) format.TableBuilder {
				return samplesTable(m, run.PresetName, run.Sequence)
			})
		},
	}
}
