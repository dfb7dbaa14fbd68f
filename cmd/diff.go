package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manbearwiz/betterer/internal/domain"
	m "github.com/manbearwiz/betterer/internal/model"
)

const diffLongDescription = `Compare the results of a fresh run against the recorded results file.

Fixed issues are recorded, moved issues are tracked and any new issue fails
the command without touching the results file. Use --update to accept new
issues and --strict to fail on any change without writing.`

var diffStrictFlag bool
var diffUpdateFlag bool
var diffParallelFlag int

// diffCmd represents the diff command.
var diffCmd = newDiffCmd()

func newDiffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "diff <current>",
		Short: "Compare a run against the recorded results",
		Long:  diffLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Diff(cmd.Context(), domain.DiffArgs{
				Results: m.Path(viper.GetString(resultsConfigKey)),
				Current: m.Path(args[0]),
				Strict:  viper.GetBool(strictConfigKey),
				Update:  viper.GetBool(updateConfigKey),
				Threads: viper.GetInt(parallelConfigKey),
			})
		},
	}

	configureDiffFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func configureDiffFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&diffStrictFlag, strictFlagName, viper.GetBool(strictConfigKey), "never write the results file and fail on any change")
	bindFlagToConfig(cmd.Flags().Lookup(strictFlagName), strictConfigKey)

	cmd.Flags().BoolVarP(&diffUpdateFlag, updateFlagName, "u", viper.GetBool(updateConfigKey), "accept new issues and update the results file")
	bindFlagToConfig(cmd.Flags().Lookup(updateFlagName), updateConfigKey)

	cmd.Flags().IntVarP(&diffParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of tests diffed in parallel (0 = unbounded)")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
