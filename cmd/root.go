package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/fang"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// Metadata is stamped into the binary at build time.
type Metadata struct {
	Version string
	Commit  string
	Date    string
}

var metadata = Metadata{Version: "dev", Commit: "none", Date: "unknown"}

var rootCmd = &cobra.Command{
	Use:   "webshell",
	Short: "Host small web apps in a native window",
	Long: `webshell shows a web page in a native window and lets its script call
Go functions.

By default the app's bundled payload is inlined into a single document. With
--dev, a live-reload dev server is started in the project directory and the
window shows that instead.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug, _ := cmd.Flags().GetBool("debug"); debug {
			pterm.EnableDebugMessages()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output and the web inspector")
}

// Execute runs the command tree until the window closes or the process is
// interrupted.
func Execute(m Metadata) {
	metadata = m

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	version := fmt.Sprintf("%s (%s, %s)", m.Version, m.Commit, m.Date)
	if err := fang.Execute(ctx, rootCmd, fang.WithVersion(version)); err != nil {
		stop()
		os.Exit(1)
	}
}
