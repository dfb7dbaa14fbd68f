// Package cmd provides the root command and CLI setup for betterer.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/manbearwiz/betterer/internal/adapter"
	"github.com/manbearwiz/betterer/internal/controller"
	"github.com/manbearwiz/betterer/internal/domain"
)

var fsAdapter adapter.SourceFSAdapter
var resultsStore adapter.ResultsStore
var workflow domain.Workflow
var ui controller.UI

// resultsPathFlag is a root-level flag shared by commands that read/write the results file.
var resultsPathFlag string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	resultsStore = adapter.NewResultsStore(fsAdapter)
	ui = controller.NewUI(rootCmd, fsAdapter, controller.IsTTY(os.Stdout))
	workflow = domain.NewWorkflow(fsAdapter, resultsStore, ui)
}

const rootLongDescription = `Betterer records the issues your linters and checkers report and makes
sure the codebase only ever gets better: fixed issues stay fixed and new
issues fail the build, without requiring a perfectly clean codebase.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = baseRootCmd()

func baseRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "betterer",
		Short:        "Incrementally improve a codebase",
		Long:         rootLongDescription,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func newRootCmd() *cobra.Command {
	cmd := baseRootCmd()
	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&resultsPathFlag, resultsFlagName, "r",
			viper.GetString(resultsConfigKey),
			"path to the results file (.results/.yaml, .toml or .msgpack)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(resultsFlagName), resultsConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
