// Package store keeps a history of tool invocations: the arguments a caller
// sent, the result or error that came back, and when it happened.
package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultDBPath is the default relative path for the history DB.
// Open() creates the parent dir (e.g. .dissolve).
const DefaultDBPath = ".dissolve/history.db"

// Run is one recorded tool invocation. Args and Result hold JSON documents.
type Run struct {
	ID        int64  `db:"id"         json:"id"`
	CallID    string `db:"call_id"    json:"call_id"`
	Tool      string `db:"tool"       json:"tool"`
	Args      string `db:"args"       json:"args"`
	Result    string `db:"result"     json:"result,omitempty"`
	Error     string `db:"error"      json:"error,omitempty"`
	CreatedAt string `db:"created_at" json:"created_at"`
}

// Failed reports whether the invocation returned an error.
func (r *Run) Failed() bool { return r.Error != "" }

// Time parses CreatedAt. The zero time is returned for malformed values.
func (r *Run) Time() time.Time {
	t, err := time.Parse(time.RFC3339, r.CreatedAt)
	if err != nil {
		return time.Time{}
	}
	return t
}

// NewRun builds a Run for tool with a fresh call id. args and result are
// marshaled to JSON; result is ignored when callErr is non-nil.
func NewRun(tool string, args, result any, callErr error) (*Run, error) {
	r := &Run{CallID: uuid.NewString(), Tool: tool}
	a, err := json.Marshal(args)
	if err != nil {
		return nil, fmt.Errorf("marshal %s args: %w", tool, err)
	}
	r.Args = string(a)
	if callErr != nil {
		r.Error = callErr.Error()
		return r, nil
	}
	res, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("marshal %s result: %w", tool, err)
	}
	r.Result = string(res)
	return r, nil
}

// Filter narrows ListRuns. Zero values match everything; Limit <= 0 means
// no limit.
type Filter struct {
	Tool       string
	FailedOnly bool
	Limit      int
}

func (f Filter) match(r *Run) bool {
	if f.Tool != "" && r.Tool != f.Tool {
		return false
	}
	if f.FailedOnly && !r.Failed() {
		return false
	}
	return true
}

// ToolCount is the number of recorded runs of one tool.
type ToolCount struct {
	Tool   string `db:"tool"   json:"tool"`
	Runs   int    `db:"runs"   json:"runs"`
	Errors int    `db:"errors" json:"errors"`
}

// Store is the persistence facade for run history.
// Server and CLI use only this interface; implementation is SQLite or in-memory.
type Store interface {
	// SaveRun assigns r.ID and r.CreatedAt (when empty) and persists r.
	SaveRun(r *Run) (int64, error)
	// GetRun and GetRunByCallID return nil, nil when no run matches.
	GetRun(id int64) (*Run, error)
	GetRunByCallID(callID string) (*Run, error)
	// ListRuns returns matching runs, newest first.
	ListRuns(f Filter) ([]*Run, error)
	// ToolCounts returns per-tool totals ordered by tool name.
	ToolCounts() ([]ToolCount, error)
	// Prune deletes all but the newest keep runs and returns how many were removed.
	Prune(keep int) (int64, error)
	Close() error
}

// nowUTC returns the current UTC time as an ISO 8601 string.
func nowUTC() string { return time.Now().UTC().Format(time.RFC3339) }
