package taxonomy

import (
	"fmt"
	"strings"
)

// Identifier kinds reported by UnknownIDError.
const (
	KindStyle     = "style"
	KindState     = "state"
	KindPreset    = "preset"
	KindAttractor = "attractor"
	KindSubstrate = "substrate"
)

// UnknownIDError reports an identifier missing from its catalog. Valid lists
// the accepted identifiers in declaration order so callers can correct input.
type UnknownIDError struct {
	Kind  string
	ID    string
	Valid []string
}

func (e *UnknownIDError) Error() string {
	return fmt.Sprintf("unknown %s %q (valid: %s)", e.Kind, e.ID, strings.Join(e.Valid, ", "))
}

// MissingInputError reports that none of an operation's alternative inputs
// was supplied.
type MissingInputError struct {
	Op           string
	Alternatives []string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s: provide one of %s", e.Op, strings.Join(e.Alternatives, " or "))
}
