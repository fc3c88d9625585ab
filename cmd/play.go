package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/abhisek/iroquiz/internal/app"
	"github.com/abhisek/iroquiz/internal/console"
	"github.com/abhisek/iroquiz/internal/screens/home"
	"github.com/abhisek/iroquiz/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

func init() {
	addPlayFlags(playCmd.Flags())
}

// isInteractive reports whether both ends of the session are terminals.
func isInteractive() bool {
	return isTerminal(os.Stdin.Fd()) && isTerminal(os.Stdout.Fd())
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// runPlay launches the full-screen UI, or the console adapter when asked
// for or when not attached to a terminal.
func runPlay(cmd *cobra.Command) error {
	e, err := setup(cmd)
	if err != nil {
		return err
	}
	defer e.close()

	plain, _ := cmd.Flags().GetBool("plain")
	if plain || !isInteractive() {
		return playConsole(cmd, e, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	noSplash, _ := cmd.Flags().GetBool("no-splash")
	return app.Run(cmd.Context(), app.Options{
		Home: home.Deps{
			Load:           e.load,
			SessionOptions: e.sessionOptions,
			Logger:         e.logger,
		},
		SkipSplash: noSplash,
	})
}

func playConsole(cmd *cobra.Command, e *env, in io.Reader, out io.Writer) error {
	ctx := cmd.Context()

	cat, _, err := e.load(ctx)
	if err != nil {
		return fmt.Errorf("data load error: %w", err)
	}

	sess, err := session.New(cat, e.sessionOptions())
	if err != nil {
		return err
	}

	_, err = console.New(sess, in, out, e.logger).Run(ctx)
	return err
}
