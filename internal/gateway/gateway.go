// Package gateway implements the tool dispatch pipeline: authenticate the
// caller, resolve the named tool, validate arguments against its declared
// schema, execute the handler, and classify every failure.
//
// The pipeline is a single linear pass with no retries, no caching, and no
// mutable state beyond the descriptor table built at startup. Concurrent
// dispatches are independent; the table is read-only after New returns.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"careermcp/internal/auth"
	"careermcp/internal/logging"
)

// Gateway routes invocations to tool handlers. The descriptor table and
// secret are fixed at construction.
type Gateway struct {
	secret      string
	descriptors map[string]Descriptor
	names       []string
	logger      *logging.AppLogger
}

// New builds a gateway over the given descriptors. Descriptor names must
// be unique and non-empty; every descriptor must carry a handler.
func New(secret string, logger *logging.AppLogger, descriptors []Descriptor) (*Gateway, error) {
	g := &Gateway{
		secret:      secret,
		descriptors: make(map[string]Descriptor, len(descriptors)),
		logger:      logger,
	}
	for _, d := range descriptors {
		if d.Name == "" {
			return nil, fmt.Errorf("tool descriptor has empty name")
		}
		if d.Handler == nil {
			return nil, fmt.Errorf("tool %s has no handler", d.Name)
		}
		if _, dup := g.descriptors[d.Name]; dup {
			return nil, fmt.Errorf("duplicate tool name %s", d.Name)
		}
		g.descriptors[d.Name] = d
		g.names = append(g.names, d.Name)
	}
	return g, nil
}

// Descriptors returns the registered descriptors in registration order.
func (g *Gateway) Descriptors() []Descriptor {
	out := make([]Descriptor, 0, len(g.names))
	for _, name := range g.names {
		out = append(out, g.descriptors[name])
	}
	return out
}

// Dispatch runs one invocation through the pipeline. The caller's bearer
// token is read from ctx (see auth.FromRequest). Every error return is a
// *Error carrying one of the taxonomy kinds.
func (g *Gateway) Dispatch(ctx context.Context, name string, args map[string]interface{}) (string, error) {
	start := time.Now()

	if !auth.Equal(auth.TokenFromContext(ctx), g.secret) {
		g.logger.Warn("Rejected invocation: bad bearer token", "tool", name)
		return "", E(KindUnauthorized, "bearer token does not match the configured secret")
	}

	desc, ok := g.descriptors[name]
	if !ok {
		g.logger.Warn("Rejected invocation: unknown tool", "tool", name)
		return "", E(KindUnknownTool, "no tool named %q is registered", name)
	}

	if args == nil {
		args = map[string]interface{}{}
	}
	if err := desc.validate(args); err != nil {
		g.logger.Debug("Rejected invocation: invalid arguments", "tool", name, "error", err)
		return "", err
	}

	text, err := desc.Handler(ctx, Args(args))
	if err != nil {
		var ge *Error
		if !errors.As(err, &ge) {
			err = Wrap(KindInternal, err, "tool %s failed: %v", name, err)
		}
		g.logger.Error("Tool execution failed", "tool", name, "error", err)
		return "", err
	}

	g.logger.Debug("Tool executed", "tool", name, "duration", time.Since(start))
	return text, nil
}
