package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/northstarwang/burnlens/core"
	"github.com/northstarwang/burnlens/internal/contract"
	"github.com/northstarwang/burnlens/schema"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	store   contract.HistoryStore
}

func (h *toolHandler) handleGetBurndownSummary(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputFile = request.GetString("input_file", "")
	if s := request.GetFloat("slack", -1); s >= 0 {
		cfg.OnTrackSlack = s
	}

	b, err := core.LoadSprintBurndown(cfg.InputFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	core.PrepareBurndown(b)

	summary := core.Summarize(b, cfg.OnTrackSlack)

	result := struct {
		BurndownID string                 `json:"burndown_id"`
		SprintID   string                 `json:"sprint_id"`
		Summary    schema.BurndownSummary `json:"summary"`
	}{b.ID, b.SprintID, summary}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetVelocityTrend(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputFile = request.GetString("input_file", "")
	cfg.Team = request.GetString("team", "")
	if t := request.GetFloat("tolerance", -1); t >= 0 {
		cfg.TrendTolerance = t
	}
	if w := request.GetInt("recent_window", 0); w > 0 {
		cfg.RecentWindow = w
	}

	var records []schema.TeamVelocity
	var err error
	switch {
	case cfg.InputFile != "":
		records, err = core.LoadVelocityHistory(cfg.InputFile)
	case h.store != nil && cfg.Team != "":
		records, err = h.store.ListVelocity(cfg.Team)
	default:
		err = errors.New("input_file or team is required")
	}
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("velocity history unavailable: %v", err)), nil
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].PeriodStart.Before(records[j].PeriodStart.Time)
	})

	trend := core.AnalyzeVelocity(records, core.VelocityOptions{
		RecentWindow: cfg.RecentWindow,
		Tolerance:    cfg.TrendTolerance,
	})

	result := struct {
		Trend   schema.VelocityTrend  `json:"trend"`
		Records []schema.TeamVelocity `json:"records"`
	}{trend, records}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRenderBurndownSVG(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	cfg.InputFile = request.GetString("input_file", "")

	b, err := core.LoadSprintBurndown(cfg.InputFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}
	core.PrepareBurndown(b)

	width := request.GetInt("width", 0)
	if width <= 0 {
		width = cfg.ChartWidth
	}
	if width <= 0 {
		width = 2 * cfg.ChartHeight
	}
	opts := core.DefaultRenderOptions(float64(width))
	opts.Height = float64(cfg.ChartHeight)
	if ht := request.GetInt("height", 0); ht > 0 {
		opts.Height = float64(ht)
	}
	opts.ShowIdealLine = !request.GetBool("no_ideal_line", false)

	doc := core.RenderBurndownSVG(b, opts)
	return mcp.NewToolResultText(string(doc)), nil
}

func (h *toolHandler) handleGetTaskProgress(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	inputFile := request.GetString("input_file", "")

	records, err := core.LoadTaskProgress(inputFile)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("load failed: %v", err)), nil
	}

	type progressRow struct {
		TaskID          string            `json:"task_id"`
		MetricType      schema.MetricType `json:"metric_type"`
		CurrentValue    float64           `json:"current_value"`
		TargetValue     float64           `json:"target_value"`
		PercentComplete float64           `json:"percentage_complete"`
	}
	rows := make([]progressRow, 0, len(records))
	for _, r := range records {
		rows = append(rows, progressRow{
			TaskID:          r.TaskID,
			MetricType:      r.MetricType,
			CurrentValue:    r.CurrentValue,
			TargetValue:     r.TargetValue,
			PercentComplete: r.PercentComplete(),
		})
	}

	jsonData, _ := json.MarshalIndent(rows, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
