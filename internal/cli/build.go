package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/unishort-labs/unishort/internal/config"
	"github.com/unishort-labs/unishort/internal/desktop"
	"github.com/unishort-labs/unishort/internal/manifest"
	"github.com/unishort-labs/unishort/internal/shortcut"
)

var (
	buildManifestPath string
	buildOutputDir    string
	buildPlatformTag  string
	buildDesktopDir   string
)

func init() {
	buildCmd.Flags().StringVar(&buildManifestPath, "manifest", "", "Path to the package manifest (default: package.yaml)")
	buildCmd.Flags().StringVar(&buildOutputDir, "output-dir", "", "Build output base directory (default: build)")
	buildCmd.Flags().StringVar(&buildPlatformTag, "platform", "", "Target platform: linux, win or darwin (default: detected)")
	buildCmd.Flags().StringVar(&buildDesktopDir, "desktop", "", "Write descriptors to this directory instead of <output-dir>/shortcuts")
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate shortcut descriptors for the package's entry points",
	Long: `Build resolves one shortcut metadata record per console entry point declared
in the package manifest — using the author-declared override when present,
inferring missing fields from package metadata otherwise — and renders one
shortcut descriptor per record into the build output directory.

Examples:
  unishort build
  unishort build --manifest ./package.yaml --output-dir dist
  unishort build --platform linux --desktop ~/.local/share/applications`,
	Args: cobra.NoArgs,
	RunE: runBuild,
}

func runBuild(cmd *cobra.Command, args []string) error {
	config.Load()

	manifestPath := resolveManifestPath(buildManifestPath)
	m, baseDir, err := loadManifest(manifestPath)
	if err != nil {
		return err
	}

	platform, err := resolvePlatform(buildPlatformTag)
	if err != nil {
		return err
	}

	reg, err := m.Registry(baseDir)
	if err != nil {
		return err
	}
	for _, name := range reg.NameCollisions() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: display name %q is shared by more than one shortcut; their descriptors will shadow each other\n", name)
	}

	commands, err := m.Commands()
	if err != nil {
		return err
	}
	if len(commands) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: no entry points found; nothing to build")
		return nil
	}

	resolver := &shortcut.Resolver{
		Registry: reg,
		Meta:     m.Meta(),
		DataDir:  filepath.Join(baseDir, "data"),
		IconExts: platform.IconExtensions(),
	}

	renderer := desktop.ForPlatform(platform)
	writer := &desktop.Writer{Dir: descriptorDir()}

	written := 0
	for _, script := range commands {
		rec := resolver.Resolve(script)

		out, err := renderer.Render(rec)
		if errors.Is(err, desktop.ErrUnsupported) {
			fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %v\n", err)
			continue
		}
		if err != nil {
			return err
		}

		path, err := writer.Write(renderer.FileName(rec), out)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		written++
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Generated %d of %d shortcut descriptors for %s\n", written, len(commands), platform)
	return nil
}

// loadManifest validates the manifest against the schema, then parses it.
// Returns the manifest and the package base directory (the manifest's
// directory, resolved absolute).
func loadManifest(path string) (*manifest.Manifest, string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", fmt.Errorf("reading manifest %s: %w", path, err)
	}

	result, err := manifest.Validate(data)
	if err != nil {
		return nil, "", fmt.Errorf("validating manifest %s: %w", path, err)
	}
	if !result.Valid {
		for _, issue := range result.Issues {
			msg := issue.Message
			if issue.Path != "" {
				msg = issue.Path + ": " + msg
			}
			fmt.Fprintf(os.Stderr, "  %s\n", msg)
		}
		return nil, "", fmt.Errorf("manifest %s failed schema validation (%d issues)", path, len(result.Issues))
	}

	m, err := manifest.Parse(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, "", fmt.Errorf("resolving manifest path %s: %w", path, err)
	}
	return m, filepath.Dir(abs), nil
}

// resolveManifestPath applies flag > config > default precedence.
func resolveManifestPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := config.Get(config.KeyManifestPath); v != "" {
		return v
	}
	return manifest.DefaultFileName
}

// resolvePlatform validates the --platform flag or detects the host platform.
func resolvePlatform(flagValue string) (desktop.Platform, error) {
	if flagValue == "" {
		return desktop.Detect(), nil
	}
	p, ok := desktop.ParsePlatform(flagValue)
	if !ok {
		return "", fmt.Errorf("unknown platform %q: want linux, win or darwin", flagValue)
	}
	return p, nil
}

// descriptorDir picks the directory descriptors are written to: the
// --desktop override when given, otherwise <output-dir>/shortcuts.
func descriptorDir() string {
	if buildDesktopDir != "" {
		return buildDesktopDir
	}
	if v := config.Get(config.KeyDesktopDir); v != "" {
		return v
	}
	outputDir := buildOutputDir
	if outputDir == "" {
		outputDir = config.Get(config.KeyBuildDir)
	}
	if outputDir == "" {
		outputDir = config.DefaultBuildDir
	}
	return filepath.Join(outputDir, "shortcuts")
}
