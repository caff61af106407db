package mcpserver

import (
	"context"
	"encoding/json"
	"slices"
	"testing"

	"github.com/erraggy/taxokit/internal/testutil"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// startTestSession creates an in-process MCP server/client pair and returns
// the connected client session. The server is shut down when the test ends.
func startTestSession(t *testing.T) *mcp.ClientSession {
	t.Helper()

	server := newServer("test")
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	done := make(chan error, 1)
	go func() {
		done <- server.Run(ctx, serverTransport)
	}()

	client := mcp.NewClient(
		&mcp.Implementation{Name: "test-client", Version: "test"},
		nil,
	)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = session.Close()
		cancel()
		<-done
	})

	return session
}

func TestServerInstructionsListEnvVars(t *testing.T) {
	for _, key := range []string{
		"TAXOKIT_RESULT_LIMIT", "TAXOKIT_MAX_DEPTH", "TAXOKIT_VALIDATE_NO_WARNINGS",
		"TAXOKIT_RULES_FILE", "TAXOKIT_CACHE_ENABLED", "TAXOKIT_CACHE_TTL", "TAXOKIT_CACHE_MAX_SIZE",
		"TAXOKIT_MAX_EXPAND",
	} {
		assert.Contains(t, serverInstructions, key)
	}
}

func TestIntegration_ListTools(t *testing.T) {
	session := startTestSession(t)

	result, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	require.NoError(t, err)
	require.NotNil(t, result)

	names := make([]string, 0, len(result.Tools))
	for _, tool := range result.Tools {
		names = append(names, tool.Name)
		assert.NotEmpty(t, tool.Description, "tool %q has empty description", tool.Name)
		assert.NotNil(t, tool.InputSchema, "tool %q has no input schema", tool.Name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{
		"array_slice",
		"array_splice",
		"convert_case",
		"convert_keys",
		"split_words",
		"validate_taxonomies",
	}, names)
}

func TestIntegration_CallTool_ConvertCase(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "convert_case",
		Arguments: map[string]any{"text": "foo-BAR-baz", "style": "camel", "preserve_uppercase": true},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, "fooBARBaz", structured["result"])
}

func TestIntegration_CallTool_ArraySplice(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "array_splice",
		Arguments: map[string]any{
			"items":  []string{"January", "April", "June"},
			"start":  1,
			"insert": []string{"Feb", "March"},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, []any{"January", "Feb", "March", "April", "June"}, structured["items"])
	assert.Equal(t, true, structured["fixed"])
}

func TestIntegration_CallTool_ValidateTaxonomies(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name: "validate_taxonomies",
		Arguments: map[string]any{
			"sources": []map[string]any{
				{"name": "foo-taxonomy.d.ts", "content": testutil.InvalidTaxonomy},
			},
		},
	})
	require.NoError(t, err)
	require.False(t, result.IsError)

	structured := unmarshalStructured(t, result)
	assert.Equal(t, false, structured["valid"])
	assert.Equal(t, float64(1), structured["error_count"])
}

func TestIntegration_CallTool_ErrorResult(t *testing.T) {
	session := startTestSession(t)

	result, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      "convert_keys",
		Arguments: map[string]any{"json": `{"a":`, "style": "camel"},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
	require.NotEmpty(t, result.Content)
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok)
	assert.Contains(t, text.Text, "parse")
}

// unmarshalStructured decodes the structured output of a tool call.
func unmarshalStructured(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()

	if result.StructuredContent != nil {
		data, err := json.Marshal(result.StructuredContent)
		require.NoError(t, err)
		var m map[string]any
		require.NoError(t, json.Unmarshal(data, &m))
		return m
	}

	require.NotEmpty(t, result.Content, "expected at least one content item")
	text, ok := result.Content[0].(*mcp.TextContent)
	require.True(t, ok, "expected TextContent, got %T", result.Content[0])
	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(text.Text), &m))
	return m
}
