// Package api defines the interface between a host and the contract.
// The host hands raw JSON messages to the entry points and receives
// attribute-bearing responses; it is not used by contract-internal code.
package api

import (
	"fmt"

	"github.com/govm-net/nftmint/core"
)

// Attribute is one key-value pair attached to an execute response
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the result of a successful instantiate or execute call
type Response struct {
	Attributes []Attribute `json:"attributes"`
}

// NewResponse creates an empty response
func NewResponse() *Response {
	return &Response{}
}

// Add appends an attribute, rendering the value with fmt.Sprint
func (r *Response) Add(key string, value any) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: fmt.Sprint(value)})
	return r
}

// Contract is the surface a host invokes. Messages are the JSON wire
// forms; query results are returned as JSON.
type Contract interface {
	// Instantiate performs the one-time contract setup
	Instantiate(ctx core.Context, msg []byte) (*Response, error)

	// Execute runs a state-mutating call
	Execute(ctx core.Context, msg []byte) (*Response, error)

	// Query runs a read-only call
	Query(ctx core.Context, msg []byte) ([]byte, error)
}
