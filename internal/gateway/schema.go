package gateway

import (
	"context"
	"encoding/json"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
)

// FieldType is the declared type of a tool argument. The tool surface is
// free-text, so string dominates; integer exists for numeric arguments
// arriving as JSON numbers.
type FieldType string

const (
	FieldString  FieldType = "string"
	FieldInteger FieldType = "integer"
)

// Field declares one argument of a tool's input schema.
type Field struct {
	Name        string
	Type        FieldType
	Required    bool
	Description string
}

// Args is the validated argument mapping passed to a handler.
type Args map[string]interface{}

// String returns the named argument as a string, or "" when absent.
// Validation has already established the type of declared fields.
func (a Args) String(name string) string {
	s, _ := a[name].(string)
	return s
}

// StringOr returns the named argument or def when absent or empty.
func (a Args) StringOr(name, def string) string {
	if s := a.String(name); s != "" {
		return s
	}
	return def
}

// Handler executes a tool against validated arguments and returns the
// result text. Handlers that call an upstream collaborator must classify
// its failures as KindUpstream.
type Handler func(ctx context.Context, args Args) (string, error)

// Descriptor declares one tool: its name, its rich description, its input
// schema, and the handler that serves it. Descriptors are built once at
// startup and never mutated.
type Descriptor struct {
	Name        string
	Description string
	// UseWhen tells the orchestrating agent when to pick this tool. It is
	// serialized into the wire description alongside Description.
	UseWhen string
	Fields  []Field
	Handler Handler
}

// richDescription is the JSON document the connecting agent expects as a
// tool description.
type richDescription struct {
	Description string `json:"description"`
	UseWhen     string `json:"use_when,omitempty"`
}

// WireDescription returns the description string registered with the MCP
// framework: plain text when UseWhen is empty, a JSON document otherwise.
func (d Descriptor) WireDescription() string {
	if d.UseWhen == "" {
		return d.Description
	}
	b, err := json.Marshal(richDescription{Description: d.Description, UseWhen: d.UseWhen})
	if err != nil {
		return d.Description
	}
	return string(b)
}

// MCPTool converts the descriptor into the framework's tool declaration.
func (d Descriptor) MCPTool() mcp.Tool {
	opts := []mcp.ToolOption{mcp.WithDescription(d.WireDescription())}
	for _, f := range d.Fields {
		props := []mcp.PropertyOption{}
		if f.Required {
			props = append(props, mcp.Required())
		}
		if f.Description != "" {
			props = append(props, mcp.Description(f.Description))
		}
		switch f.Type {
		case FieldInteger:
			opts = append(opts, mcp.WithNumber(f.Name, props...))
		default:
			opts = append(opts, mcp.WithString(f.Name, props...))
		}
	}
	return mcp.NewTool(d.Name, opts...)
}

// validate checks the supplied arguments against the declared schema.
// Required-and-absent fields fail first, then type checks; fields not
// declared in the schema are ignored (permissive-input policy).
func (d Descriptor) validate(args map[string]interface{}) error {
	for _, f := range d.Fields {
		v, ok := args[f.Name]
		if !ok || v == nil {
			if f.Required {
				return E(KindMissingArgument, "tool %s requires argument %q", d.Name, f.Name)
			}
			continue
		}
		if err := checkType(d.Name, f, v); err != nil {
			return err
		}
	}
	return nil
}

func checkType(tool string, f Field, v interface{}) error {
	switch f.Type {
	case FieldString:
		if _, ok := v.(string); !ok {
			return E(KindTypeMismatch, "tool %s argument %q must be a string, got %T", tool, f.Name, v)
		}
	case FieldInteger:
		switch n := v.(type) {
		case int, int32, int64:
			// already integral
		case float64:
			// JSON numbers decode as float64
			if n != math.Trunc(n) {
				return E(KindTypeMismatch, "tool %s argument %q must be an integer, got %v", tool, f.Name, n)
			}
		case json.Number:
			if _, err := n.Int64(); err != nil {
				return E(KindTypeMismatch, "tool %s argument %q must be an integer, got %q", tool, f.Name, n.String())
			}
		default:
			return E(KindTypeMismatch, "tool %s argument %q must be an integer, got %T", tool, f.Name, v)
		}
	default:
		return E(KindInternal, "tool %s argument %q has unknown declared type %q", tool, f.Name, f.Type)
	}
	return nil
}
