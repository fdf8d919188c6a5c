package cmd

import (
	"fmt"

	"splitcat/pkg/version"

	"github.com/spf13/cobra"
)

// newVersionCmd builds the version subcommand. The --short flag prints
// only the bare version number.
func newVersionCmd() *cobra.Command {
	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Display the version of splitcat",
		Long:  `Display the current version information of the splitcat CLI tool.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			short, err := cmd.Flags().GetBool("short")
			if err != nil {
				return fmt.Errorf("error reading flags: %w", err)
			}

			v := version.Get()
			if short {
				cmd.Println(v.Version)
			} else {
				cmd.Println(v.String())
			}
			return nil
		},
	}

	versionCmd.Flags().BoolP("short", "s", false, "Print the version number only")
	return versionCmd
}
