// ABOUTME: Console command runs the interactive point-processing menu
// ABOUTME: Reads stdin line by line until exit, end of input or Ctrl+C
package commands

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/harper/pointwise/internal/automaton"
	"github.com/harper/pointwise/internal/logging"
	"github.com/harper/pointwise/internal/render"
)

// NewConsoleCmd creates the console command
func NewConsoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console",
		Short: "Run the interactive console menu",
		Long: `Run the interactive console menu.

Enter points by hand or generate them at random, pick a processing
method, view the result and compare all methods side by side.
Ctrl+C or end of input exits with a farewell.`,
		Args: cobra.NoArgs,
		RunE: runConsole,
		Example: `  # Start the menu
  pointwise console

  # Script a session
  printf '1\n2\n4\n1\n3\n' | pointwise console`,
	}

	return cmd
}

func runConsole(cmd *cobra.Command, args []string) error {
	cfg, err := setup()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	machine := newMachine(cfg, render.Console(), 0)
	session := automaton.NewSession()
	logging.New("console").Debug("session started", "session", session.ID)

	return machine.Run(ctx, session, automaton.NewScannerInput(cmd.InOrStdin()), cmd.OutOrStdout())
}
