package mcp_test

import (
	"context"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/northstarwang/burnlens/internal/contract"
	mcp_internal "github.com/northstarwang/burnlens/internal/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	baseCfg := &contract.Config{
		OnTrackSlack:   0.1,
		TrendTolerance: 0.1,
		ChartHeight:    300,
	}

	// Create a dummy store, though we shouldn't hit it because we test validation errors
	var store contract.HistoryStore
	s := mcp_internal.NewMCPServer(baseCfg, store)

	ctx := context.Background()

	t.Run("get_burndown_summary missing input_file", func(t *testing.T) {
		tool := s.GetTool("get_burndown_summary")
		require.NotNil(t, tool, "Tool get_burndown_summary should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_burndown_summary",
				Arguments: map[string]any{
					"input_file": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "load failed")
	})

	t.Run("get_velocity_trend missing source", func(t *testing.T) {
		tool := s.GetTool("get_velocity_trend")
		require.NotNil(t, tool, "Tool get_velocity_trend should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_velocity_trend",
				Arguments: map[string]any{
					"input_file": "",
					"team":       "", // Neither source provided
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "input_file or team is required")
	})

	t.Run("render_burndown_svg missing input_file", func(t *testing.T) {
		tool := s.GetTool("render_burndown_svg")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "render_burndown_svg",
				Arguments: map[string]any{
					"input_file": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "load failed")
	})

	t.Run("get_task_progress missing input_file", func(t *testing.T) {
		tool := s.GetTool("get_task_progress")
		require.NotNil(t, tool)

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "get_task_progress",
				Arguments: map[string]any{
					"input_file": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError)
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "load failed")
	})
}
