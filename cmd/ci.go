package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manbearwiz/betterer/internal/domain"
	m "github.com/manbearwiz/betterer/internal/model"
)

// ciCmd represents the ci command.
var ciCmd = newCICmd()

func newCICmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ci <current>",
		Short: "Check a run against the recorded results without writing",
		Long: `Same as "diff --strict": the results file is never written, new issues
fail the command and any other change reports the results file as outdated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				Results: m.Path(viper.GetString(resultsConfigKey)),
				Current: m.Path(args[0]),
				Strict:  true,
				Threads: viper.GetInt(parallelConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(ciCmd)
}
