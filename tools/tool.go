// Package tools defines the local capabilities the model may request and
// the registry they are resolved through.
//
// A Tool never returns an error from Invoke: any underlying failure
// (nonzero exit, timeout, spawn failure) is encoded in the returned text
// with an "Error:" prefix so the model can read the failure and react to
// it in the next turn.
package tools

import (
	"context"
	"errors"
	"fmt"

	mcptypes "github.com/mark3labs/mcp-go/mcp"
)

// ErrToolNotFound is returned by Registry.Resolve when the model requests
// an action name that was never registered.
var ErrToolNotFound = errors.New("tool not found")

// Tool is a named local capability with a declared input schema.
type Tool interface {
	// Name is the identifier the model uses to request this tool.
	Name() string

	// Descriptor returns the schema advertised to the provider.
	Descriptor() mcptypes.Tool

	// Invoke executes the tool with the model-supplied arguments and
	// returns a bounded text result. Failures are reported in the text,
	// never as a panic or error.
	Invoke(ctx context.Context, args map[string]any) string
}

// Registry is an immutable name-to-tool lookup table, built once at
// startup and injected into the agent loop.
type Registry struct {
	tools map[string]Tool
	order []string
}

// NewRegistry builds a registry from the given tools. Later tools with a
// duplicate name replace earlier ones.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		if _, exists := r.tools[t.Name()]; !exists {
			r.order = append(r.order, t.Name())
		}
		r.tools[t.Name()] = t
	}
	return r
}

// Resolve looks up a tool by name. Unknown names fail with ErrToolNotFound.
func (r *Registry) Resolve(name string) (Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return t, nil
}

// Descriptors returns the schemas of all registered tools in registration
// order, for advertising to the provider.
func (r *Registry) Descriptors() []mcptypes.Tool {
	result := make([]mcptypes.Tool, 0, len(r.order))
	for _, name := range r.order {
		result = append(result, r.tools[name].Descriptor())
	}
	return result
}
