// ABOUTME: MCP tool handler implementations for the point-processing bot
// ABOUTME: Translates tool calls into bot conversation steps and JSON replies
package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/harper/pointwise/internal/bot"
	"github.com/harper/pointwise/internal/geometry"
	"github.com/harper/pointwise/internal/points"
	"github.com/mark3labs/mcp-go/mcp"
)

// Handlers contains the handler functions for all MCP tools
type Handlers struct {
	bot *bot.Bot
}

// ChatReply is the JSON body returned by the conversation tools
type ChatReply struct {
	ChatID string `json:"chat_id"`
	State  string `json:"state"`
	Done   bool   `json:"done"`
	Reply  string `json:"reply"`
}

// MethodResult is one method's entry in a process_points reply
type MethodResult struct {
	Method string           `json:"method"`
	Result []geometry.Point `json:"result,omitempty"`
	Error  string           `json:"error,omitempty"`
}

// StartChat handles the start_chat tool
func (h *Handlers) StartChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return chatResult(h.bot.Start(request.GetString("chat_id", "")))
}

// SendMessage handles the send_message tool
func (h *Handlers) SendMessage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chatID, err := request.RequireString("chat_id")
	if err != nil || chatID == "" {
		return mcp.NewToolResultError("chat_id argument is required and must be a string"), nil
	}
	text, err := request.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text argument is required and must be a string"), nil
	}

	return chatResult(h.bot.Send(chatID, text))
}

// EndChat handles the end_chat tool
func (h *Handlers) EndChat(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	chatID, err := request.RequireString("chat_id")
	if err != nil || chatID == "" {
		return mcp.NewToolResultError("chat_id argument is required and must be a string"), nil
	}

	return chatResult(h.bot.End(chatID))
}

// ProcessPoints handles the process_points tool
func (h *Handlers) ProcessPoints(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw, err := request.RequireStringSlice("points")
	if err != nil {
		return mcp.NewToolResultError("points argument is required and must be an array of 'x,y' strings"), nil
	}

	pts := make([]geometry.Point, 0, len(raw))
	for _, text := range raw {
		p, err := geometry.ParsePoint(text)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		pts = append(pts, p)
	}

	methods := points.Methods
	if name := request.GetString("method", "all"); name != "all" {
		m, err := points.ParseMethod(name)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		methods = []points.Method{m}
	}

	results := make([]MethodResult, 0, len(methods))
	for _, m := range methods {
		entry := MethodResult{Method: m.String()}
		result, err := points.Process(pts, m)
		if err != nil {
			entry.Error = err.Error()
		} else {
			entry.Result = result
		}
		results = append(results, entry)
	}

	return marshalResult(map[string]interface{}{
		"points":  pts,
		"results": results,
	})
}

func chatResult(reply bot.Reply) (*mcp.CallToolResult, error) {
	return marshalResult(ChatReply{
		ChatID: reply.ChatID,
		State:  reply.State.String(),
		Done:   reply.Done,
		Reply:  reply.Text,
	})
}

func marshalResult(v interface{}) (*mcp.CallToolResult, error) {
	responseJSON, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to marshal response: %v", err)), nil
	}
	return mcp.NewToolResultText(string(responseJSON)), nil
}
