// Package schema validates scorecard payloads from the remote scoring
// service against a CUE schema before they are adopted verbatim. A payload
// that fails validation is treated by callers as a malformed response.
package schema

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cuejson "cuelang.org/go/encoding/json"
)

//go:embed scorecard.cue
var scorecardSchema string

// Validator checks scorecard payloads against the embedded CUE schema.
type Validator struct {
	schema cue.Value
}

// NewValidator compiles the embedded scorecard schema.
func NewValidator() (*Validator, error) {
	ctx := cuecontext.New()

	compiled := ctx.CompileString(scorecardSchema, cue.Filename("scorecard.cue"))
	if err := compiled.Err(); err != nil {
		return nil, fmt.Errorf("compile scorecard schema: %w", err)
	}

	def := compiled.LookupPath(cue.ParsePath("#Scorecard"))
	if !def.Exists() {
		return nil, fmt.Errorf("scorecard schema: #Scorecard definition not found")
	}

	return &Validator{schema: def}, nil
}

// ValidateJSON checks that data conforms to the scorecard shape.
func (v *Validator) ValidateJSON(data []byte) error {
	if err := cuejson.Validate(data, v.schema); err != nil {
		return fmt.Errorf("scorecard payload: %w", err)
	}
	return nil
}
