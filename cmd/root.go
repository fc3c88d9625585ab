package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var rootCmd = &cobra.Command{
	Use:   "iroquiz",
	Short: "Japanese traditional color name quiz",
	Long:  "iroquiz — a terminal quiz that shows a color's description and asks for its name.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

// Execute runs the root command with ctx.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to config file (default ./iroquiz.yaml)")
	pf.StringSlice("source", nil, "Catalog source: CSV path, http(s) URL or sqlite:<path>[#table]; repeatable")
	pf.Uint64("seed", 0, "Random seed for question order (0 picks one)")
	pf.String("log-file", "", "Write logs to this file")
	pf.String("encoding", "", "CSV encoding: auto, utf-8 or shift_jis")
	pf.Int("choices", 0, "Number of choices per question")

	addPlayFlags(rootCmd.Flags())

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}

func addPlayFlags(fs *pflag.FlagSet) {
	fs.Bool("plain", false, "Use line-oriented input instead of the full-screen UI")
	fs.Bool("no-splash", false, "Skip the welcome animation")
}
