package gateway

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPToolConversion(t *testing.T) {
	d := Descriptor{
		Name:        "sample",
		Description: "A sample tool",
		UseWhen:     "When sampling",
		Fields: []Field{
			{Name: "title", Type: FieldString, Required: true, Description: "the title"},
			{Name: "note", Type: FieldString, Required: false},
			{Name: "count", Type: FieldInteger, Required: true},
		},
		Handler: func(ctx context.Context, args Args) (string, error) { return "", nil },
	}

	tool := d.MCPTool()
	assert.Equal(t, "sample", tool.Name)

	// Required fields are marked required; optional ones are not
	assert.ElementsMatch(t, []string{"title", "count"}, tool.InputSchema.Required)

	for _, name := range []string{"title", "note", "count"} {
		_, ok := tool.InputSchema.Properties[name]
		assert.True(t, ok, "schema must declare property %s", name)
	}
}

func TestWireDescription(t *testing.T) {
	plain := Descriptor{Name: "v", Description: "just text"}
	assert.Equal(t, "just text", plain.WireDescription())

	rich := Descriptor{Name: "r", Description: "does things", UseWhen: "when needed"}
	var decoded struct {
		Description string `json:"description"`
		UseWhen     string `json:"use_when"`
	}
	require.NoError(t, json.Unmarshal([]byte(rich.WireDescription()), &decoded))
	assert.Equal(t, "does things", decoded.Description)
	assert.Equal(t, "when needed", decoded.UseWhen)
}

func TestArgsHelpers(t *testing.T) {
	args := Args{"present": "value", "number": 3.0}

	assert.Equal(t, "value", args.String("present"))
	assert.Equal(t, "", args.String("absent"))
	assert.Equal(t, "", args.String("number"), "non-string reads as empty")
	assert.Equal(t, "fallback", args.StringOr("absent", "fallback"))
	assert.Equal(t, "value", args.StringOr("present", "fallback"))
}

func TestValidateJSONNumberArgument(t *testing.T) {
	d := Descriptor{
		Name:   "n",
		Fields: []Field{{Name: "count", Type: FieldInteger, Required: true}},
	}

	require.NoError(t, d.validate(map[string]interface{}{"count": json.Number("7")}))
	err := d.validate(map[string]interface{}{"count": json.Number("7.5")})
	require.Error(t, err)
	assert.Equal(t, KindTypeMismatch, KindOf(err))
}
