// SPDX-License-Identifier: Apache-2.0

package predict

import (
	"encoding/json"
	"fmt"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
)

// requestSchema is the wire shape accepted by the prediction endpoint.
const requestSchema = `
#PredictionRequest: {
	datasetId:  int
	version:    int
	model_Name: string & != ""
	features: [string]: number | bool | string | null
}
`

// Contract checks encoded requests against the CUE definition of the
// prediction endpoint payload. It is safe for concurrent use.
type Contract struct {
	mu  sync.Mutex
	ctx *cue.Context
	def cue.Value
}

// NewContract compiles the request schema.
func NewContract() (*Contract, error) {
	ctx := cuecontext.New()
	schema := ctx.CompileString(requestSchema, cue.Filename("prediction_request.cue"))
	if err := schema.Err(); err != nil {
		return nil, fmt.Errorf("compile request schema: %w", err)
	}
	def := schema.LookupPath(cue.ParsePath("#PredictionRequest"))
	if err := def.Err(); err != nil {
		return nil, fmt.Errorf("lookup request definition: %w", err)
	}
	return &Contract{ctx: ctx, def: def}, nil
}

// Check encodes r exactly as it is sent and validates the result.
func (c *Contract) Check(r Request) error {
	b, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}
	return c.CheckJSON(b)
}

// CheckJSON validates an already encoded request.
func (c *Contract) CheckJSON(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v := c.ctx.CompileBytes(b, cue.Filename("request.json"))
	if err := v.Err(); err != nil {
		return fmt.Errorf("decode request: %w", err)
	}
	if err := c.def.Unify(v).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("request violates contract: %s", errors.Details(err, nil))
	}
	return nil
}
