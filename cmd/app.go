package cmd

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/webshell-dev/webshell/internal/apps"
	"github.com/webshell-dev/webshell/internal/config"
	"github.com/webshell-dev/webshell/internal/devserver"
	"github.com/webshell-dev/webshell/internal/harness"
	"github.com/webshell-dev/webshell/internal/window"
	"github.com/webshell-dev/webshell/internal/window/external"
)

func init() {
	for _, app := range apps.All() {
		rootCmd.AddCommand(newAppCmd(app))
	}
}

func newAppCmd(app apps.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   app.Name,
		Short: app.Short,
		Long: fmt.Sprintf(`%s

Without flags the bundled payload is shown. With --dev, the dev server command
is started in --project-dir and the window loads it from http://localhost:<port>/.`, app.Short),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cmd, app)
		},
	}
	cmd.Flags().Bool("dev", false, "Load the page from a live-reload dev server")
	cmd.Flags().String("project-dir", ".", "Directory the dev server runs in and webshell.yaml is read from")
	cmd.Flags().Bool("external", false, "With --dev, open the page in the system browser instead of a window")
	config.AddFlags(cmd.Flags())
	return cmd
}

// appRun collects what runApp needs once flags and configuration are resolved.
type appRun struct {
	mode       harness.Mode
	projectDir string
	external   bool
	cfg        *config.Config
}

func resolveAppRun(cmd *cobra.Command) (*appRun, error) {
	dev, _ := cmd.Flags().GetBool("dev")
	external, _ := cmd.Flags().GetBool("external")
	dir, _ := cmd.Flags().GetString("project-dir")

	if external && !dev {
		return nil, fmt.Errorf("--external requires --dev")
	}
	projectDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("invalid project directory: %w", err)
	}

	cfg, err := config.Load(projectDir)
	if err != nil {
		return nil, err
	}
	if err := cfg.ApplyFlags(cmd.Flags()); err != nil {
		return nil, err
	}

	return &appRun{
		mode:       harness.ModeFromFlag(dev),
		projectDir: projectDir,
		external:   external,
		cfg:        cfg,
	}, nil
}

func (r *appRun) options(app apps.App, session apps.Session) harness.Options {
	var payload fs.FS
	if dir := r.cfg.AssetsDir; dir != "" {
		if !filepath.IsAbs(dir) {
			dir = filepath.Join(r.projectDir, dir)
		}
		payload = os.DirFS(dir)
	} else {
		payload = app.Assets()
	}

	newWindow := window.New
	if r.external {
		newWindow = external.New
	}

	return harness.Options{
		Assets:     payload,
		ProjectDir: r.projectDir,
		Launcher: &devserver.Launcher{
			Command: r.cfg.Dev.Command,
			Port:    r.cfg.Dev.Port,
			Log:     logDevServer,
		},
		WaitReady: r.cfg.Dev.Wait,
		Width:     r.cfg.Window.Width,
		Height:    r.cfg.Window.Height,
		Debug:     r.cfg.Debug,
		NewWindow: newWindow,
		Setup:     session.Setup,
	}
}

func runApp(cmd *cobra.Command, app apps.App) error {
	run, err := resolveAppRun(cmd)
	if err != nil {
		return err
	}
	if run.cfg.Debug {
		pterm.EnableDebugMessages()
	}

	session := app.NewSession()
	runner := harness.NewRunner(run.options(app, session))

	pterm.Info.Printf("Starting %s in %s mode\n", app.Title, run.mode)
	if err := runner.Run(cmd.Context(), run.mode, app.Title, session.Bindings()); err != nil {
		pterm.Error.Printf("Could not start %s: %v\n", app.Title, err)
		return err
	}
	pterm.Success.Printf("%s closed\n", app.Title)
	return nil
}

func logDevServer(line string, stderr bool) {
	stream := "out"
	if stderr {
		stream = "err"
	}
	pterm.Debug.Printf("[dev server %s] %s\n", stream, line)
}
