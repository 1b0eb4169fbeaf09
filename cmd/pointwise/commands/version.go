// ABOUTME: Version command reporting how this pointwise binary was built
// ABOUTME: Build metadata is injected by main from release ldflags
package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// versionInfo falls back to development markers for `go run` builds
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
}

// VersionInfo is the release metadata stamped into the binary
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
}

// SetVersion records release metadata before the root command runs
func SetVersion(version, commit, date string) {
	versionInfo = VersionInfo{Version: version, Commit: commit, Date: date}
}

// NewVersionCmd creates the version command
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the pointwise release and build details",
		Long: `Print the pointwise release, the commit it was built from and the
build timestamp. Development builds report "dev".`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Pointwise %s\n", versionInfo.Version)
			fmt.Fprintf(w, "Commit: %s\n", versionInfo.Commit)
			fmt.Fprintf(w, "Built:  %s\n", versionInfo.Date)
		},
	}
}
