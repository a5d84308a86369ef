// File: cmd/version.go
package cmd

import (
	"consolidate/pkg/version"

	"github.com/spf13/cobra"
)

// setVersionTemplate makes --version print the full build information.
// A version subcommand would shadow a source directory named "version".
func setVersionTemplate(cmd *cobra.Command) {
	cmd.SetVersionTemplate(version.Get().String() + "\n")
}
