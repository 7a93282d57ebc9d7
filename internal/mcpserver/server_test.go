package mcpserver

import (
	"context"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestServerServesOverInMemoryTransport(t *testing.T) {
	srv := New(testService(t), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- srv.Serve(ctx, serverTransport)
	}()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	tools, err := session.ListTools(ctx, nil)
	require.NoError(t, err)

	names := make(map[string]bool, len(tools.Tools))
	for _, tool := range tools.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"createCharacter",
		"getCharacter",
		"getCharactersByPlayerId",
		"updateCharacter",
		"addExperience",
		"getProgressionInfo",
		"deleteCharacter",
		"getAllCharacters",
	} {
		assert.True(t, names[want], "tool %q not registered", want)
	}

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "createCharacter",
		Arguments: map[string]any{
			"character": map[string]any{
				"player_id": "p1",
				"name":      "Aria",
				"class":     "Wizard",
			},
		},
	})
	require.NoError(t, err)
	assert.False(t, result.IsError)

	cancel()
	select {
	case err := <-serveErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}

func TestServerValidationErrorSurfacesAsToolError(t *testing.T) {
	srv := New(testService(t), zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	go func() { _ = srv.Serve(ctx, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	require.NoError(t, err)
	defer session.Close()

	result, err := session.CallTool(ctx, &mcp.CallToolParams{
		Name: "createCharacter",
		Arguments: map[string]any{
			"character": map[string]any{"name": "NoPlayer"},
		},
	})
	require.NoError(t, err)
	assert.True(t, result.IsError)
}

func TestServeUnconfigured(t *testing.T) {
	var srv *Server
	err := srv.Serve(context.Background(), &mcp.StdioTransport{})
	assert.Error(t, err)
}
