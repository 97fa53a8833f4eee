package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"dailyeat/internal/core"
	"dailyeat/internal/log"
)

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_foods",
		mcp.WithDescription("Lists catalog foods, optionally filtered by type (Main, Snack) and meal category."),
		mcp.WithString("type", mcp.Description("Optional food type: Main or Snack.")),
		mcp.WithString("category", mcp.Description("Optional meal category: Breakfast, Lunch, Dinner or Snack.")),
	), s.handleListFoods)

	s.mcpServer.AddTool(mcp.NewTool("add_food",
		mcp.WithDescription("Adds a catalog food to today's meal slot and returns today's status."),
		mcp.WithString("slot", mcp.Required(), mcp.Description("Meal slot: Breakfast, Lunch, Dinner or Snack.")),
		mcp.WithString("food", mcp.Required(), mcp.Description("Exact catalog food name.")),
	), s.handleAddFood)

	s.mcpServer.AddTool(mcp.NewTool("suggest_food",
		mcp.WithDescription("Picks a random catalog food for a meal slot and type."),
		mcp.WithString("slot", mcp.Required(), mcp.Description("Meal slot: Breakfast, Lunch, Dinner or Snack.")),
		mcp.WithString("type", mcp.Required(), mcp.Description("Food type: Main or Snack.")),
	), s.handleSuggest)

	s.mcpServer.AddTool(mcp.NewTool("today_status",
		mcp.WithDescription("Returns today's per-slot calories, foods, total, target and remaining calories."),
	), s.handleTodayStatus)

	s.mcpServer.AddTool(mcp.NewTool("set_target",
		mcp.WithDescription("Sets the daily calorie target."),
		mcp.WithNumber("target", mcp.Required(), mcp.Description("Positive calorie target.")),
	), s.handleSetTarget)

	s.mcpServer.AddTool(mcp.NewTool("save_today",
		mcp.WithDescription("Persists today's foods and total as the record for today, replacing any earlier record for the same date."),
	), s.handleSaveToday)

	s.mcpServer.AddTool(mcp.NewTool("reset_today",
		mcp.WithDescription("Clears today's unsaved foods."),
	), s.handleResetToday)

	s.mcpServer.AddTool(mcp.NewTool("month_summary",
		mcp.WithDescription("Returns the calendar grid and statistics for a month."),
		mcp.WithString("month", mcp.Description("Month as YYYY-MM. Defaults to the current month.")),
		mcp.WithNumber("target", mcp.Description("Calorie target used for hit/miss. Defaults to the current target.")),
	), s.handleMonthSummary)

	s.mcpServer.AddTool(mcp.NewTool("day_log",
		mcp.WithDescription("Returns the stored record for a single day."),
		mcp.WithString("date", mcp.Description("Date as dd/MM/yyyy. Defaults to today.")),
		mcp.WithNumber("target", mcp.Description("Calorie target used for hit/miss. Defaults to the current target.")),
	), s.handleDayLog)
}

func (s *Server) handleListFoods(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var (
		typ      core.FoodType
		category core.MealSlot
		err      error
	)
	if v := stringArg(request, "type"); v != "" {
		if typ, err = core.ParseFoodType(v); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	if v := stringArg(request, "category"); v != "" {
		if category, err = core.ParseMealSlot(v); err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
	}
	foods := s.today.Catalog().Filter(typ, category)
	if foods == nil {
		foods = []core.Food{}
	}
	return jsonResult(foods)
}

func (s *Server) handleAddFood(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, err := core.ParseMealSlot(stringArg(request, "slot"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	name := stringArg(request, "food")
	if name == "" {
		return mcp.NewToolResultError("'food' parameter is required and must be a non-empty string."), nil
	}
	if _, err := s.today.AddFood(ctx, slot, name); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to add food: %v", err)), nil
	}
	return jsonResult(s.today.Status())
}

func (s *Server) handleSuggest(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	slot, err := core.ParseMealSlot(stringArg(request, "slot"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	typ, err := core.ParseFoodType(stringArg(request, "type"))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	food, err := s.today.Suggest(slot, typ)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(food)
}

func (s *Server) handleTodayStatus(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResult(s.today.Status())
}

func (s *Server) handleSetTarget(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	target, ok, err := intArg(request, "target")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("'target' parameter is required."), nil
	}
	if err := s.today.SetTarget(target); err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(s.today.Status())
}

func (s *Server) handleSaveToday(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	rec, err := s.today.SaveToday(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Save failed", log.FieldTool, "save_today", log.FieldError, err)
		return mcp.NewToolResultError(fmt.Sprintf("Failed to save today: %v", err)), nil
	}
	s.logger.InfoContext(ctx, "Day saved over MCP",
		log.FieldTool, "save_today",
		log.FieldDate, rec.Date,
		log.FieldCalories, rec.TotalCalories)
	return jsonResult(rec)
}

func (s *Server) handleResetToday(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	s.today.Reset(ctx)
	return jsonResult(s.today.Status())
}

func (s *Server) handleMonthSummary(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m := core.MonthOf(s.today.Now())
	if v := stringArg(request, "month"); v != "" {
		parsed, err := core.ParseMonth(v)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("%v: %q, expected YYYY-MM", err, v)), nil
		}
		m = parsed
	}
	target, err := s.targetArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	view, err := s.history.Month(ctx, m, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load month: %v", err)), nil
	}
	return jsonResult(view)
}

func (s *Server) handleDayLog(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	date := stringArg(request, "date")
	if date == "" {
		date = core.FormatDateKey(s.today.Now())
	}
	target, err := s.targetArg(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	view, err := s.history.Day(ctx, date, target)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to load day: %v", err)), nil
	}
	return jsonResult(view)
}

func (s *Server) targetArg(request mcp.CallToolRequest) (int, error) {
	target, ok, err := intArg(request, "target")
	if err != nil {
		return 0, err
	}
	if !ok {
		return s.today.Target(), nil
	}
	return target, core.ValidateTarget(target)
}

func stringArg(request mcp.CallToolRequest, name string) string {
	v, _ := request.Params.Arguments[name].(string)
	return strings.TrimSpace(v)
}

// intArg reads a whole-number argument. JSON numbers arrive as float64.
func intArg(request mcp.CallToolRequest, name string) (int, bool, error) {
	raw, present := request.Params.Arguments[name]
	if !present || raw == nil {
		return 0, false, nil
	}
	switch v := raw.(type) {
	case float64:
		if v != float64(int(v)) {
			return 0, true, fmt.Errorf("'%s' must be a whole number", name)
		}
		return int(v), true, nil
	case int:
		return v, true, nil
	default:
		return 0, true, fmt.Errorf("'%s' must be a number", name)
	}
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to serialize result to JSON: %v", err)), nil
	}
	return mcp.NewToolResultText(string(body)), nil
}
