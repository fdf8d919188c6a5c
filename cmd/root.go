package cmd

import (
	"strings"

	"splitcat/pkg/concat"
	"splitcat/pkg/logging"
	"splitcat/pkg/version"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootFlags struct {
	rootDirectory   string
	outputDirectory string
	numberOfFiles   int
	ignore          string
	extensions      string
	verbose         bool
}

// Execute builds the root command and runs it.
func Execute(logger *zap.Logger) error {
	return NewRootCmd(logger).Execute()
}

// NewRootCmd constructs the splitcat root command with all flags bound.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:           "splitcat",
		Short:         "splitcat concatenates source files into numbered output files",
		Long: `splitcat walks a directory tree, collects files with recognized
extensions while skipping ignored paths, and concatenates their contents
into a configurable number of output files.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger
			if flags.verbose {
				if dev, err := logging.Setup(true, "splitcat", version.Get().Version); err == nil {
					log = dev
				}
			}

			return concat.Execute(&concat.Arguments{
				RootDirectory:   flags.rootDirectory,
				OutputDirectory: flags.outputDirectory,
				NumberOfFiles:   flags.numberOfFiles,
				IgnoreEntries:   splitList(flags.ignore),
				Extensions:      splitList(flags.extensions),
			}, log)
		},
	}

	root.Flags().StringVarP(&flags.rootDirectory, "root_directory", "r", "", "Path to the root directory to scan")
	root.Flags().StringVarP(&flags.outputDirectory, "output_directory", "o", "", "Path to the directory for the output files")
	root.Flags().IntVarP(&flags.numberOfFiles, "number_of_files", "n", 0, "Number of output files to produce")
	root.Flags().StringVarP(&flags.ignore, "ignore", "i", "", "Comma-separated list of names or glob patterns to ignore")
	root.Flags().StringVarP(&flags.extensions, "extensions", "e", strings.Join(concat.DefaultExtensions, ","), "Comma-separated list of file extensions to include")
	root.Flags().BoolVar(&flags.verbose, "verbose", false, "Enable debug logging")

	_ = root.MarkFlagRequired("root_directory")
	_ = root.MarkFlagRequired("output_directory")
	_ = root.MarkFlagRequired("number_of_files")

	root.AddCommand(newVersionCmd())
	return root
}

// splitList splits a comma-separated flag value, dropping empty entries.
func splitList(value string) []string {
	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
