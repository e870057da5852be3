package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"text/tabwriter"

	"github.com/praetorian-inc/keycheck/pkg/sarif"
	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=... -X main.commit=...".
var (
	version = "dev"
	commit  = ""
)

var versionShort bool

func init() {
	sarif.ToolVersion = version
	versionCmd.Flags().BoolVar(&versionShort, "short", false, "Print only the version number")
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build details",
	Long:  "Print the keycheck release, source revision and toolchain it was built with",
	Args:  cobra.NoArgs,
	RunE:  runVersion,
}

func runVersion(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if versionShort {
		_, err := fmt.Fprintln(out, version)
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 1, ' ', 0)
	fmt.Fprintf(w, "keycheck\t%s\n", version)
	fmt.Fprintf(w, "revision\t%s\n", revision())
	fmt.Fprintf(w, "toolchain\t%s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
	return w.Flush()
}

// revision prefers the linker-injected commit, then the VCS stamp the Go
// toolchain embeds in module builds.
func revision() string {
	if commit != "" {
		return commit
	}
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			if s.Key == "vcs.revision" && s.Value != "" {
				return s.Value
			}
		}
	}
	return "unknown"
}
