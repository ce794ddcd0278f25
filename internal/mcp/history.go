package mcp

import (
	"context"

	"dissolve/internal/store"
)

const toolHistory = "get_dissolution_history"

type historyInput struct {
	Tool       string `json:"tool,omitempty" jsonschema:"only runs of this tool"`
	FailedOnly bool   `json:"failed_only,omitempty" jsonschema:"only runs that returned an error"`
	Limit      int    `json:"limit,omitempty" jsonschema:"maximum runs returned, newest first (default 20)"`
}

type historyOutput struct {
	Runs   []*store.Run      `json:"runs"`
	Totals []store.ToolCount `json:"totals"`
}

const defaultHistoryLimit = 20

func (s *Server) registerHistoryTools() {
	addTool(s, toolHistory,
		"Recent tool calls recorded by this server with per-tool totals.",
		func(_ context.Context, in historyInput) (historyOutput, error) {
			limit := in.Limit
			if limit < 1 {
				limit = defaultHistoryLimit
			}
			runs, err := s.history.ListRuns(store.Filter{Tool: in.Tool, FailedOnly: in.FailedOnly, Limit: limit})
			if err != nil {
				return historyOutput{}, err
			}
			totals, err := s.history.ToolCounts()
			if err != nil {
				return historyOutput{}, err
			}
			if runs == nil {
				runs = []*store.Run{}
			}
			if totals == nil {
				totals = []store.ToolCount{}
			}
			return historyOutput{Runs: runs, Totals: totals}, nil
		})
}
