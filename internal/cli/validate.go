package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/unishort-labs/unishort/internal/config"
	"github.com/unishort-labs/unishort/internal/manifest"
)

func init() {
	rootCmd.AddCommand(validateCmd)
}

var validateCmd = &cobra.Command{
	Use:   "validate [manifest]",
	Short: "Validate a package manifest against the schema",
	Long: `Validate checks a package manifest against the embedded JSON Schema and
reports every issue found. Without an argument the default manifest path
is used.

Examples:
  unishort validate
  unishort validate ./package.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		config.Load()

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		path = resolveManifestPath(path)

		result, err := manifest.ValidateFile(path)
		if err != nil {
			return err
		}

		if result.Valid {
			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid\n", path)
			return nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s is invalid:\n", path)
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", msg)
		}
		return fmt.Errorf("manifest failed schema validation (%d issues)", len(result.Issues))
	},
}
