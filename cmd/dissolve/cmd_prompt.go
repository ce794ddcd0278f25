package main

import (
	"strings"

	"github.com/spf13/cobra"

	"dissolve/internal/format"
	"dissolve/internal/prompt"
)

const promptWidth = 100

func (a *app) promptCmd() *cobra.Command {
	var (
		req   prompt.Request
		state string
	)
	cmd := &cobra.Command{
		Use:   "prompt [attractor-id]",
		Short: "Render an image prompt for an attractor preset or a custom state",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				req.AttractorID = args[0]
			}
			if state != "" {
				p, err := parseState(state)
				if err != nil {
					return err
				}
				req.CustomState = &p
			}
			if !cmd.Flags().Changed("keyframes") {
				req.KeyframeCount = a.cfg.Defaults.KeyframeCount
			}
			res, err := prompt.Attractor(a.tax, req)
			if err != nil {
				return err
			}
			return a.render(cmd, res, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title(res.Mode)
				if len(res.Keyframes) > 0 {
					tbl.Header("Keyframe", "t", "Nearest", "Fragment")
					for _, k := range res.Keyframes {
						tbl.Row(k.Keyframe, format.Coord(k.T), k.NearestType, k.PromptFragment)
					}
				} else {
					tbl.Header("Category", "Fragment")
					for _, cv := range res.CategoryViews {
						tbl.Row(cv.Category, cv.PromptFragment)
					}
					if res.Prompt != "" {
						tbl.Footer("prompt", format.Ellipsis(res.Prompt, promptWidth))
					}
				}
				return tbl
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.Mode, "mode", "composite", "composite, split_view or sequence")
	f.StringVar(&req.StyleModifier, "modifier", "", "Text prepended to the prompt")
	f.IntVar(&req.KeyframeCount, "keyframes", 4, "Keyframes in sequence mode")
	f.StringVar(&state, "state", "", "Five comma-separated coordinates, used instead of an attractor")
	return cmd
}

func (a *app) sequenceCmd() *cobra.Command {
	var (
		keyframes int
		modifier  string
	)
	cmd := &cobra.Command{
		Use:   "sequence <preset-name>",
		Short: "Write one prompt per keyframe of a rhythmic preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("keyframes") {
				keyframes = a.cfg.Defaults.KeyframeCount
			}
			seq, err := prompt.Sequence(a.tax, args[0], keyframes, modifier)
			if err != nil {
				return err
			}
			return a.render(cmd, seq, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title(seq.PresetName + " (" + seq.Character + ")")
				tbl.Header("Keyframe", "Prompt")
				for _, k := range seq.Keyframes {
					tbl.Row(k.Index, format.Ellipsis(k.Prompt, promptWidth))
				}
				return tbl
			})
		},
	}
	cmd.Flags().IntVar(&keyframes, "keyframes", 4, "Keyframes across one cycle")
	cmd.Flags().StringVar(&modifier, "modifier", "", "Text prepended to every prompt")
	return cmd
}

func (a *app) enhanceCmd() *cobra.Command {
	var req prompt.EnhanceRequest
	cmd := &cobra.Command{
		Use:   "enhance <intent>...",
		Short: "Classify an intent and assemble everything needed for a final prompt",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req.UserIntent = strings.Join(args, " ")
			e, err := prompt.Enhance(a.tax, req)
			if err != nil {
				return err
			}
			return a.render(cmd, e, func(m format.Mode) format.TableBuilder {
				tbl := format.NewTable(m)
				tbl.Title(e.Parameters.StyleName + " (" + e.Parameters.Intensity + ")")
				tbl.PointHeader([]string{""})
				tbl.PointRow([]any{"state"}, e.Parameters.State)
				tbl.Footer("hydrology "+e.Hydrology.State, "contrast "+e.Contrast.Curve,
					strings.Join(e.ActiveEdgeModes, ", "), "", "", "")
				return tbl
			})
		},
	}
	f := cmd.Flags()
	f.StringVar(&req.StyleOverride, "style", "", "Apply this visual type instead of the detected one")
	f.StringVar(&req.Substrate, "substrate", "", "Substrate id to attach")
	f.StringVar(&req.Intensity, "intensity", "moderate", "subtle, moderate or dramatic")
	return cmd
}
