package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// initCmd represents the init command.
var initCmd = newInitCmd()

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write betterer.yaml with the default settings",
		Long: `Create betterer.yaml in the current directory with the results file
location, the diff policy (strict, update, parallel) and the log settings
currently in effect, so they can be edited and committed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			targetPath := filepath.Join(configFolderPath, configFileName)

			if err := viper.SafeWriteConfigAs(targetPath); err != nil {
				return fmt.Errorf("write %s: %w", targetPath, err)
			}

			cmd.Printf("Wrote %s (results: %s)\n", targetPath, viper.GetString(resultsConfigKey))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
}
