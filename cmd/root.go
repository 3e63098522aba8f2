package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/kirill-markin/repo-to-text/pkg/logging"
	"github.com/kirill-markin/repo-to-text/pkg/snapshot"
	"github.com/kirill-markin/repo-to-text/pkg/version"
)

const appName = "repo-to-text"

// rootCmd is the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "repo-to-text [input_dir]",
	Short: "Convert repository structure and contents to text",
	Long: `repo-to-text converts a directory's structure and file contents into a
single text document, suitable for pasting into a language model. Ignore
rules are layered from the .gitignore file, the .repo-to-text-settings.yaml
file, and --ignore-patterns flags.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRoot,
}

func runRoot(cmd *cobra.Command, args []string) error {
	debug, err := cmd.Flags().GetBool("debug")
	if err != nil {
		return fmt.Errorf("error reading flags: %w", err)
	}

	logger, err := logging.Setup(debug, appName, version.Get().Version)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer syncLogger(logger)

	createSettings, _ := cmd.Flags().GetBool("create-settings")
	initAlias, _ := cmd.Flags().GetBool("init")
	if createSettings || initAlias {
		path, createErr := snapshot.CreateSettingsFile(".")
		if createErr != nil {
			return createErr
		}
		fmt.Printf("Default %s created.\n", snapshot.SettingsFileName)
		logger.Debug("Created default settings file", zap.String("path", path))
		return nil
	}

	inputDir := "."
	if len(args) > 0 {
		inputDir = args[0]
	}
	outputDir, _ := cmd.Flags().GetString("output-dir")
	toStdout, _ := cmd.Flags().GetBool("stdout")
	ignorePatterns, _ := cmd.Flags().GetStringArray("ignore-patterns")

	runner := snapshot.NewRunner(logger)
	_, err = runner.Run(snapshot.Arguments{
		InputDir:       inputDir,
		OutputDir:      outputDir,
		ToStdout:       toStdout,
		IgnorePatterns: ignorePatterns,
	})
	return err
}

// Execute runs the root command and returns any execution error.
func Execute() error {
	return rootCmd.Execute()
}

// syncLogger flushes the logger, ignoring the spurious sync error zap
// reports when stderr is neither a terminal nor a regular file.
func syncLogger(logger *zap.Logger) {
	if !term.IsTerminal(int(os.Stderr.Fd())) && !isRegularFile(os.Stderr) {
		return
	}
	if err := logger.Sync(); err != nil {
		if !strings.Contains(strings.ToLower(err.Error()), "invalid argument") {
			fmt.Fprintf(os.Stderr, "Logger sync failed: %v\n", err)
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}

func init() {
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")
	rootCmd.Flags().String("output-dir", "", "Directory to save the output file")
	rootCmd.Flags().Bool("create-settings", false, "Create default "+snapshot.SettingsFileName+" file")
	rootCmd.Flags().Bool("init", false, "Alias for --create-settings")
	rootCmd.Flags().Bool("stdout", false, "Output to stdout instead of a file")
	rootCmd.Flags().StringArray("ignore-patterns", nil,
		"Files or directories to ignore in both tree and content sections. Supports wildcards (e.g., '*').")
}
