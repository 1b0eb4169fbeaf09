// ABOUTME: Root command and global flags for the Pointwise CLI
// ABOUTME: Wires the console, bot, process and version subcommands
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
██████╗  ██████╗ ██╗███╗   ██╗████████╗██╗    ██╗██╗███████╗███████╗
██╔══██╗██╔═══██╗██║████╗  ██║╚══██╔══╝██║    ██║██║██╔════╝██╔════╝
██████╔╝██║   ██║██║██╔██╗ ██║   ██║   ██║ █╗ ██║██║███████╗█████╗
██╔═══╝ ██║   ██║██║██║╚██╗██║   ██║   ██║███╗██║██║╚════██║██╔══╝
██║     ╚██████╔╝██║██║ ╚████║   ██║   ╚███╔███╔╝██║███████║███████╗
╚═╝      ╚═════╝ ╚═╝╚═╝  ╚═══╝   ╚═╝    ╚══╝╚══╝ ╚═╝╚══════╝╚══════╝`

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pointwise",
		Short: "Pair up points on the plane",
		Long: banner + `

Pointwise reads a list of 2D points and transforms it by adding each
point to a partner chosen by one of four methods:

  original    nearest other point
  sequential  next point in the list (the last pairs with the first)
  min_sum     point with the smallest x + y
  min_x       point with the smallest x (ties broken by y)

Run it as an interactive console menu, as a chat bot served over MCP,
or one-shot from the command line.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Only log errors")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json or yaml")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(
		NewConsoleCmd(),
		NewBotCmd(),
		NewProcessCmd(),
		NewVersionCmd(),
	)

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
