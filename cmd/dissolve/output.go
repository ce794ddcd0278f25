package main

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"dissolve/internal/format"
)

// render writes v as indented JSON unless --table or --markdown was given
// and the command supplied a table view.
func (a *app) render(cmd *cobra.Command, v any, view func(format.Mode) format.TableBuilder) error {
	out := cmd.OutOrStdout()
	if view != nil && (a.table || a.markdown) {
		_, err := view(format.ModeFor(a.markdown)).WriteTo(out)
		return err
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
