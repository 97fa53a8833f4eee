// Package mcp exposes the tracker and calendar as Model Context Protocol tools
// over stdio.
package mcp

import (
	"context"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"dailyeat/internal/core"
	"dailyeat/internal/history"
	"dailyeat/internal/log"
	"dailyeat/internal/tracker"
)

// Today is the editing session the tools drive.
type Today interface {
	Status() tracker.Status
	Target() int
	SetTarget(target int) error
	AddFood(ctx context.Context, slot core.MealSlot, name string) (core.Food, error)
	Suggest(slot core.MealSlot, typ core.FoodType) (core.Food, error)
	Reset(ctx context.Context)
	SaveToday(ctx context.Context) (core.LogRecord, error)
	Catalog() *core.Catalog
	Now() time.Time
}

// History serves stored days.
type History interface {
	Month(ctx context.Context, m core.Month, target int) (history.MonthView, error)
	Day(ctx context.Context, dateKey string, target int) (history.DayView, error)
}

type Server struct {
	mcpServer *server.MCPServer
	today     Today
	history   History
	logger    *log.Logger
}

// NewServer builds the MCP server and registers every tool.
func NewServer(version string, today Today, hist History, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Nop()
	}
	s := &Server{
		mcpServer: server.NewMCPServer(
			"DailyEat MCP Server",
			version,
			server.WithLogging(),
			server.WithRecovery(),
		),
		today:   today,
		history: hist,
		logger:  logger.WithComponent(log.ComponentMCP),
	}
	s.registerTools()
	return s
}

// Start runs the stdio event loop until stdin closes or the process is
// signalled.
func (s *Server) Start() error {
	s.logger.Info("MCP server listening on stdio", log.FieldOperation, log.OpStartup)
	return server.ServeStdio(s.mcpServer)
}

// MCPRawServer exposes the underlying mcp-go server.
func (s *Server) MCPRawServer() *server.MCPServer {
	return s.mcpServer
}
