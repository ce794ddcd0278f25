package mcp

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"dissolve/internal/taxonomy"
)

func TestNewToolError(t *testing.T) {
	unknown := &taxonomy.UnknownIDError{Kind: taxonomy.KindState, ID: "x", Valid: []string{"a", "b"}}
	tests := []struct {
		name string
		err  error
		want errorRecord
	}{
		{"unknown id", fmt.Errorf("resolve: %w", unknown), errorRecord{
			Kind: errKindUnknownID, Catalog: "state", ID: "x", Valid: []string{"a", "b"},
		}},
		{"missing input", &taxonomy.MissingInputError{Op: "extract_vocabulary", Alternatives: []string{"state", "dissolution_id"}}, errorRecord{
			Kind: errKindMissingInput, Op: "extract_vocabulary", Alternatives: []string{"state", "dissolution_id"},
		}},
		{"other", errors.New("disk on fire"), errorRecord{Kind: errKindInternal}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			te := newToolError(tt.err)
			if !errors.Is(te, tt.err) {
				t.Error("tool error should unwrap to the original")
			}
			var got errorRecord
			if err := json.Unmarshal([]byte(te.Error()), &got); err != nil {
				t.Fatalf("Error() is not JSON: %v", err)
			}
			tt.want.Error = tt.err.Error()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("record (-want +got):\n%s", diff)
			}
		})
	}
}
