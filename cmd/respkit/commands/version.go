package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Version is the toolkit version, overridable at build time.
var Version = "dev"

// NewVersionCommand creates the version command
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("respkit", Version)
		},
	}
}
