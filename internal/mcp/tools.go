// ABOUTME: MCP tool definitions and registration for the point-processing bot
// ABOUTME: Exposes the chat conversation flow plus a stateless processing tool
package mcp

import (
	"github.com/harper/pointwise/internal/bot"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers all MCP tools with the server
func RegisterTools(server *mcpserver.MCPServer, b *bot.Bot) *Handlers {
	handlers := &Handlers{bot: b}

	// 1. start_chat - begin or restart a conversation
	server.AddTool(mcp.NewTool("start_chat",
		mcp.WithDescription("Start (or restart) a point-processing conversation. Returns the chat_id to use with send_message and the main menu."),
		mcp.WithString("chat_id",
			mcp.Description("Optional chat identifier; a new one is generated when omitted"),
		),
	), handlers.StartChat)

	// 2. send_message - one line of user input
	server.AddTool(mcp.NewTool("send_message",
		mcp.WithDescription("Send one line of user input to a conversation: a menu choice such as '1', a point such as '3,4', or a command such as /done, /cancel, /clear, /default, /start, /help."),
		mcp.WithString("chat_id",
			mcp.Required(),
			mcp.Description("Chat identifier returned by start_chat"),
		),
		mcp.WithString("text",
			mcp.Required(),
			mcp.Description("The user's message"),
		),
	), handlers.SendMessage)

	// 3. end_chat - drop a conversation
	server.AddTool(mcp.NewTool("end_chat",
		mcp.WithDescription("End a conversation and discard its points and results."),
		mcp.WithString("chat_id",
			mcp.Required(),
			mcp.Description("Chat identifier returned by start_chat"),
		),
	), handlers.EndChat)

	// 4. process_points - stateless one-shot processing
	server.AddTool(mcp.NewTool("process_points",
		mcp.WithDescription("Process a list of points without a conversation. Points are 'x,y' strings; method is original, sequential, min_sum, min_x or all."),
		mcp.WithArray("points",
			mcp.Required(),
			mcp.Description("Points in 'x,y' form, e.g. [\"3,4\", \"-1.5,2\"]"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("method",
			mcp.Description("Processing method (default: all)"),
			mcp.Enum("original", "sequential", "min_sum", "min_x", "all"),
		),
	), handlers.ProcessPoints)

	return handlers
}
