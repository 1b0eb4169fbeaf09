// ABOUTME: Bot command serves the chat-bot conversation flow over MCP stdio
// ABOUTME: Lets chat front ends and LLM agents drive per-chat sessions
package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/harper/pointwise/internal/bot"
	"github.com/harper/pointwise/internal/logging"
	"github.com/harper/pointwise/internal/mcp"
	"github.com/harper/pointwise/internal/render"
)

const chatReportInterval = time.Minute

// NewBotCmd creates the bot command
func NewBotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bot",
		Short: "Serve the chat bot over MCP",
		Long: `Serve the chat bot over MCP

Runs Pointwise as an MCP (Model Context Protocol) server on stdio.
Each chat gets its own session, driven with the start_chat,
send_message and end_chat tools; process_points runs a one-off
computation without a session. Idle chats expire after
POINTWISE_SESSION_TTL.`,
		Args: cobra.NoArgs,
		RunE: runBot,
		Example: `  # Start the bot (typically launched by an MCP client)
  pointwise bot

  # Configure in claude_desktop_config.json:
  # {
  #   "mcpServers": {
  #     "pointwise": {
  #       "command": "pointwise",
  #       "args": ["bot"]
  #     }
  #   }
  # }`,
	}

	return cmd
}

func runBot(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}
	logger := logging.New("bot")

	machine := newMachine(cfg, render.Chat(), cfg.BotMaxCount)
	b := bot.New(machine, cfg.SessionTTL, logger)

	server := mcpserver.NewMCPServer(cfg.BotName, versionInfo.Version)
	mcp.RegisterTools(server, b)

	stdio := mcpserver.NewStdioServer(server)
	stdio.SetErrorLogger(logger.StandardLog(log.StandardLogOptions{ForceLevel: log.ErrorLevel}))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("MCP server starting on stdio", "name", cfg.BotName, "ttl", cfg.SessionTTL)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		// end of stdin also stops the reporter
		defer stop()
		err := stdio.Listen(gctx, cmd.InOrStdin(), cmd.OutOrStdout())
		if err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		reportChats(gctx, b, logger)
		return nil
	})

	err = g.Wait()
	logger.Info("shutdown complete", "active_chats", b.ActiveChats())
	return err
}

// reportChats logs the number of live chats until ctx is done
func reportChats(ctx context.Context, b *bot.Bot, logger *log.Logger) {
	ticker := time.NewTicker(chatReportInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logger.Debug("chat report", "active_chats", b.ActiveChats())
		}
	}
}
