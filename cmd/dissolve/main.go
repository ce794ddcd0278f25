// dissolve serves the watercolor dissolution parameter space as MCP tools and
// exposes the same operations on the command line.
//
// Usage:
//
//	dissolve serve [--history=<db>]
//	dissolve classify "<text>"
//	dissolve map <style-id> [--intensity=dramatic] [--emphasis=hydrology]
//	dissolve trajectory <start-id> <end-id> [--steps=20] [--table]
//	dissolve history [--tool=<name>] [--limit=20]
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dissolve/internal/config"
	"dissolve/internal/logging"
	"dissolve/internal/taxonomy"
)

// version is set at build time via -ldflags.
var version = "dev"

// app is the state shared by every subcommand once the root pre-run has
// loaded configuration.
type app struct {
	cfg *config.Config
	tax *taxonomy.Store

	configPath string
	logLevel   string
	logFormat  string
	table      bool
	markdown   bool
}

func newRootCmd() *cobra.Command {
	a := &app{tax: taxonomy.Default()}
	root := &cobra.Command{
		Use:   "dissolve",
		Short: "Watercolor dissolution parameter space: classify, map, interpolate, prompt",
		Long: "dissolve maps free text and named styles onto a five-axis watercolor dissolution\n" +
			"space, walks trajectories and rhythms through it, and renders prompts.\n" +
			"Run 'dissolve serve' to expose every operation as an MCP tool over stdio.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},
		PersistentPreRunE: a.load,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "Config file (YAML or JSON)")
	pf.StringVar(&a.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	pf.StringVar(&a.logFormat, "log-format", "", "Log format: text or json (overrides config)")
	pf.BoolVar(&a.table, "table", false, "Render a terminal table instead of JSON")
	pf.BoolVar(&a.markdown, "markdown", false, "Render a Markdown table instead of JSON")

	root.AddCommand(
		a.serveCmd(),
		a.stylesCmd(),
		a.statesCmd(),
		a.classifyCmd(),
		a.decomposeCmd(),
		a.mapCmd(),
		a.vocabCmd(),
		a.distanceCmd(),
		a.trajectoryCmd(),
		a.rhythmCmd(),
		a.presetCmd(),
		a.promptCmd(),
		a.sequenceCmd(),
		a.enhanceCmd(),
		a.roundtripCmd(),
		a.historyCmd(),
	)
	return root
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadFromPath(a.configPath)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if cfg.Server.Version == "dev" {
		cfg.Server.Version = version
	}
	logging.Init(logging.ParseLevel(cfg.Log.Level), cfg.Log.Format, cmd.ErrOrStderr())
	a.cfg = cfg
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
