package cmd

import (
	"runtime/debug"

	"github.com/spf13/cobra"

	m "github.com/manbearwiz/betterer/internal/model"
)

const unknownVersion = "unknown"

// buildVersion returns the module version and the Go toolchain that built it.
func buildVersion() (string, string) {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return unknownVersion, unknownVersion
	}

	version := info.Main.Version
	if version == "" || version == "(devel)" {
		version = unknownVersion
	}

	return version, info.GoVersion
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show the version information",
		Long: `Displays the build version, the Go version used to build betterer and the
results file format version it reads and writes.`,
		Run: func(cmd *cobra.Command, _ []string) {
			version, goVersion := buildVersion()

			cmd.Printf("betterer\t%s\n", version)
			cmd.Printf("go\t\t%s\n", goVersion)
			cmd.Printf("results format\tv%d\n", m.ResultsVersion)
		},
	}
}

// versionCmd represents the version command.
var versionCmd = newVersionCmd()

func init() {
	rootCmd.AddCommand(versionCmd)
}
