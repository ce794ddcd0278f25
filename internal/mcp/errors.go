package mcp

import (
	"encoding/json"
	"errors"

	"dissolve/internal/taxonomy"
)

// Error kinds carried in a tool error record.
const (
	errKindUnknownID    = "unknown_identifier"
	errKindMissingInput = "missing_input"
	errKindInternal     = "internal"
)

// errorRecord is the JSON body of a failed tool call. Unknown identifiers
// carry the catalog they were looked up in and the ids it accepts.
type errorRecord struct {
	Error        string   `json:"error"`
	Kind         string   `json:"kind"`
	Catalog      string   `json:"catalog,omitempty"`
	ID           string   `json:"id,omitempty"`
	Valid        []string `json:"valid,omitempty"`
	Op           string   `json:"op,omitempty"`
	Alternatives []string `json:"alternatives,omitempty"`
}

// toolError renders as its JSON record, which the SDK places in the text
// content of an IsError result.
type toolError struct {
	rec errorRecord
	err error
}

func (e *toolError) Error() string {
	b, err := json.Marshal(e.rec)
	if err != nil {
		return e.err.Error()
	}
	return string(b)
}

func (e *toolError) Unwrap() error { return e.err }

// newToolError classifies err into a structured record.
func newToolError(err error) *toolError {
	rec := errorRecord{Error: err.Error(), Kind: errKindInternal}
	var unknown *taxonomy.UnknownIDError
	var missing *taxonomy.MissingInputError
	switch {
	case errors.As(err, &unknown):
		rec.Kind = errKindUnknownID
		rec.Catalog = unknown.Kind
		rec.ID = unknown.ID
		rec.Valid = unknown.Valid
	case errors.As(err, &missing):
		rec.Kind = errKindMissingInput
		rec.Op = missing.Op
		rec.Alternatives = missing.Alternatives
	}
	return &toolError{rec: rec, err: err}
}
