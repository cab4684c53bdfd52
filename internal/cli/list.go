package cli

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/unishort-labs/unishort/internal/config"
	"github.com/unishort-labs/unishort/internal/shortcut"
)

var (
	listManifestPath string
	listPlatformTag  string
	listJSON         bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List entry points and their resolved shortcut metadata",
	Long:  `List shows, for every console entry point, the shortcut record the build command would generate: declared overrides merged with fields inferred from package metadata.`,
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVar(&listManifestPath, "manifest", "", "Path to the package manifest (default: package.yaml)")
	listCmd.Flags().StringVar(&listPlatformTag, "platform", "", "Target platform: linux, win or darwin (default: detected)")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

// listEntry represents one resolved entry point for display.
type listEntry struct {
	Script   string `json:"script"`
	Name     string `json:"name"`
	Category string `json:"category,omitempty"`
	Icon     string `json:"icon,omitempty"`
	Declared bool   `json:"declared"`
}

func runList(cmd *cobra.Command, args []string) error {
	config.Load()

	manifestPath := resolveManifestPath(listManifestPath)
	m, baseDir, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	platform, err := resolvePlatform(listPlatformTag)
	if err != nil {
		return err
	}

	reg, err := m.Registry(baseDir)
	if err != nil {
		return err
	}

	commands, err := m.Commands()
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No entry points declared.")
		return nil
	}

	resolver := &shortcut.Resolver{
		Registry: reg,
		Meta:     m.Meta(),
		DataDir:  filepath.Join(baseDir, "data"),
		IconExts: platform.IconExtensions(),
	}

	var entries []listEntry
	for _, script := range commands {
		rec := resolver.Resolve(script)
		_, declared := reg.Lookup(script)
		entries = append(entries, listEntry{
			Script:   script,
			Name:     rec.Name,
			Category: rec.Category,
			Icon:     strings.Join(rec.Icon, ", "),
			Declared: declared,
		})
	}

	if listJSON {
		return printListJSON(cmd, entries)
	}
	return printListTable(cmd, entries)
}

func printListTable(cmd *cobra.Command, entries []listEntry) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "SCRIPT\tNAME\tCATEGORY\tICON\tSOURCE")
	for _, e := range entries {
		category := e.Category
		if category == "" {
			category = "-"
		}
		icon := e.Icon
		if icon == "" {
			icon = "-"
		}
		source := "inferred"
		if e.Declared {
			source = "declared"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", e.Script, e.Name, category, icon, source)
	}
	return w.Flush()
}

func printListJSON(cmd *cobra.Command, entries []listEntry) error {
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}
