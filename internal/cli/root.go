package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unishort-labs/unishort/internal/branding"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` generates OS application shortcut descriptors from package
metadata at build time. It reads a package manifest (entry points, description,
classifiers, keywords, optional shortcut overrides) and emits one descriptor
per console entry point — a Free Desktop .desktop file on Linux.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}
