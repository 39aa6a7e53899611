// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/northstarwang/burnlens/internal/contract"
)

// NewMCPServer initializes and configures the Burnlens MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, store contract.HistoryStore) *server.MCPServer {
	s := server.NewMCPServer(
		"Burnlens Analytics Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		store:   store,
	}

	// --- 1. Tool: get_burndown_summary ---
	s.AddTool(mcp.NewTool("get_burndown_summary",
		mcp.WithDescription("Summarize a sprint burndown: progress percentage, remaining and completed points, and on-track status."),
		mcp.WithString("input_file", mcp.Description("Path to the burndown JSON file."), mcp.Required()),
		mcp.WithNumber("slack", mcp.Description("On-track slack fraction applied over the ideal remaining (defaults to 0.1).")),
	), h.handleGetBurndownSummary)

	// --- 2. Tool: get_velocity_trend ---
	s.AddTool(mcp.NewTool("get_velocity_trend",
		mcp.WithDescription("Classify a team's velocity trend (improving, declining, stable) from a JSON file or recorded history."),
		mcp.WithString("input_file", mcp.Description("Path to the velocity history JSON file.")),
		mcp.WithString("team", mcp.Description("Team identifier to read from the history backend when no file is given.")),
		mcp.WithNumber("tolerance", mcp.Description("Relative tolerance band for the stable classification (defaults to 0.1).")),
		mcp.WithNumber("recent_window", mcp.Description("Number of most recent periods in the comparison window (0 = auto).")),
	), h.handleGetVelocityTrend)

	// --- 3. Tool: render_burndown_svg ---
	s.AddTool(mcp.NewTool("render_burndown_svg",
		mcp.WithDescription("Render a sprint burndown chart as a standalone SVG document."),
		mcp.WithString("input_file", mcp.Description("Path to the burndown JSON file."), mcp.Required()),
		mcp.WithNumber("width", mcp.Description("Chart width in pixels.")),
		mcp.WithNumber("height", mcp.Description("Chart height in pixels.")),
		mcp.WithBoolean("no_ideal_line", mcp.Description("Omit the dashed ideal line.")),
	), h.handleRenderBurndownSVG)

	// --- 4. Tool: get_task_progress ---
	s.AddTool(mcp.NewTool("get_task_progress",
		mcp.WithDescription("Report per-task completion percentages for a batch of task progress records."),
		mcp.WithString("input_file", mcp.Description("Path to the task progress JSON file."), mcp.Required()),
	), h.handleGetTaskProgress)

	return s
}

// StartMCPServer starts the Burnlens MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, store contract.HistoryStore) error {
	s := NewMCPServer(baseCfg, store)
	return server.ServeStdio(s)
}
