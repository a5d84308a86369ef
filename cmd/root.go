package cmd

import (
	"fmt"
	"io"
	"os"

	"consolidate/pkg/consolidate"
	"consolidate/pkg/logging"
	"consolidate/pkg/version"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the consolidate command with its flags bound to a fresh
// set of arguments.
func NewRootCmd() *cobra.Command {
	args := &consolidate.Arguments{}

	rootCmd := &cobra.Command{
		Use:   "consolidate <directory>",
		Short: "Consolidate source code files into a single annotated file",
		Long: `Consolidate walks a directory tree, keeps the files whose extension is in the
filter list, and writes them in path order into one text file. Each file is
introduced by a "# === <relative/path> ===" header and closed by a "#" line.`,
		Example: `  consolidate ./src
  consolidate ./src -n
  consolidate ./src -o all.txt -e .go,.md -x vendor/`,
		Args:    cobra.ExactArgs(1),
		Version: version.Get().Version,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return logging.Setup(args.Verbose, "consolidate", version.Get().Version)
		},
		RunE: func(cmd *cobra.Command, positional []string) error {
			// Usage is only useful for argument errors, which happen before RunE.
			cmd.SilenceUsage = true
			args.Directory = positional[0]

			summary, err := consolidate.Run(consolidate.Resolve(*args), logging.Logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), summary.String())
			return nil
		},
		SilenceErrors: true,
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&args.Output, "output", "o", consolidate.DefaultOutput,
		"Output file name (default becomes consolidated_source_n.txt with -n)")
	flags.BoolVarP(&args.LineNumbers, "line-numbers", "n", false,
		"Add line numbers to each line of source code")
	flags.StringVarP(&args.Extensions, "extensions", "e", consolidate.DefaultExtensions,
		"Comma-separated list of file extensions to include")
	flags.StringArrayVarP(&args.Exclude, "exclude", "x", nil,
		"gitignore-style pattern of paths to leave out (repeatable)")
	flags.StringVar(&args.IgnoreFile, "ignore-file", "",
		"File of gitignore-style patterns of paths to leave out")
	flags.StringVar(&args.Tree, "tree", "",
		"Also write a tree of the consolidated files to this path")
	flags.BoolVarP(&args.Verbose, "verbose", "v", false,
		"Enable debug logging")

	setVersionTemplate(rootCmd)
	return rootCmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func printError(w io.Writer, err error) {
	red := color.New(color.FgRed)
	if w != os.Stderr {
		red.DisableColor()
	}
	red.Fprintf(w, "Error: %v\n", err)
}
