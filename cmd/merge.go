package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/manbearwiz/betterer/internal/domain"
	m "github.com/manbearwiz/betterer/internal/model"
)

var mergeCwdFlag string

// mergeCmd represents the merge command.
var mergeCmd = newMergeCmd()

func newMergeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "merge [contents...]",
		Short: "Resolve merge conflicts in the results file",
		Long: `Resolve git conflict markers in the results file and write the merged
document back. Both sides are kept test by test; where both changed a test
the incoming side wins. Raw contents may be passed as arguments, otherwise
the results file itself is read.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Merge(cmd.Context(), domain.MergeArgs{
				Contents:    args,
				Cwd:         m.Path(mergeCwdFlag),
				ResultsPath: m.Path(viper.GetString(resultsConfigKey)),
			})
		},
	}

	cmd.Flags().StringVar(&mergeCwdFlag, cwdFlagName, ".", "directory the results path is relative to")

	return cmd
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
