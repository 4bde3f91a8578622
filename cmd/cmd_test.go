package cmd

import (
	"bytes"
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/webshell-dev/webshell/internal/apps"
	"github.com/webshell-dev/webshell/internal/config"
	"github.com/webshell-dev/webshell/internal/harness"
)

func neutralizeEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"WIDTH", "HEIGHT", "DEV_PORT", "DEV_COMMAND", "DEV_WAIT", "ASSETS_DIR", "DEBUG"} {
		t.Setenv("WEBSHELL_"+key, "")
	}
}

func greeterApp(t *testing.T) apps.App {
	t.Helper()
	app, ok := apps.Lookup("greeter")
	require.True(t, ok)
	return app
}

func TestAppCommandsRegistered(t *testing.T) {
	for _, app := range apps.All() {
		cmd, _, err := rootCmd.Find([]string{app.Name})
		require.NoError(t, err)
		assert.Equal(t, app.Name, cmd.Name())
		assert.NotNil(t, cmd.Flags().Lookup("dev"))
	}
}

func TestResolveAppRunModes(t *testing.T) {
	neutralizeEnv(t)
	tests := []struct {
		name string
		args []string
		mode harness.Mode
	}{
		{"production by default", nil, harness.Production},
		{"dev flag", []string{"--dev"}, harness.Development},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newAppCmd(greeterApp(t))
			require.NoError(t, cmd.ParseFlags(append(tt.args, "--project-dir", t.TempDir())))

			run, err := resolveAppRun(cmd)
			require.NoError(t, err)
			assert.Equal(t, tt.mode, run.mode)
		})
	}
}

func TestResolveAppRunLayersConfig(t *testing.T) {
	neutralizeEnv(t)
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "webshell.yaml"), []byte("dev:\n  port: 3000\nwindow:\n  width: 900\n"), 0o644))

	cmd := newAppCmd(greeterApp(t))
	require.NoError(t, cmd.ParseFlags([]string{"--dev", "--project-dir", dir, "--width", "500"}))

	run, err := resolveAppRun(cmd)
	require.NoError(t, err)
	assert.Equal(t, dir, run.projectDir)
	assert.Equal(t, 3000, run.cfg.Dev.Port)
	assert.Equal(t, 500, run.cfg.Window.Width)

	opts := run.options(greeterApp(t), greeterApp(t).NewSession())
	assert.Equal(t, "http://localhost:3000/", opts.Launcher.Address())
	assert.Equal(t, dir, opts.ProjectDir)
	assert.NotNil(t, opts.Assets)
}

func TestResolveAppRunRejectsExternalWithoutDev(t *testing.T) {
	neutralizeEnv(t)
	cmd := newAppCmd(greeterApp(t))
	require.NoError(t, cmd.ParseFlags([]string{"--external"}))

	_, err := resolveAppRun(cmd)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--external requires --dev")
}

func TestOptionsUsesAssetsDir(t *testing.T) {
	neutralizeEnv(t)
	assetsDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(assetsDir, "index.js"), []byte("disk"), 0o644))

	cmd := newAppCmd(greeterApp(t))
	require.NoError(t, cmd.ParseFlags([]string{"--project-dir", t.TempDir(), "--assets-dir", assetsDir}))
	run, err := resolveAppRun(cmd)
	require.NoError(t, err)

	app := greeterApp(t)
	opts := run.options(app, app.NewSession())
	data, err := fsReadFile(opts, "index.js")
	require.NoError(t, err)
	assert.Equal(t, "disk", string(data))
}

func TestOptionsResolvesRelativeAssetsDir(t *testing.T) {
	neutralizeEnv(t)
	projectDir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(projectDir, "web"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, "web", "index.js"), []byte("from project"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(projectDir, config.ManifestFile), []byte("assets_dir: web\n"), 0o644))
	t.Chdir(t.TempDir())

	cmd := newAppCmd(greeterApp(t))
	require.NoError(t, cmd.ParseFlags([]string{"--project-dir", projectDir}))
	run, err := resolveAppRun(cmd)
	require.NoError(t, err)

	app := greeterApp(t)
	opts := run.options(app, app.NewSession())
	data, err := fsReadFile(opts, "index.js")
	require.NoError(t, err)
	assert.Equal(t, "from project", string(data))
}

func TestListJSON(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"list", "-o", "json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
		_ = listCmd.Flags().Set("output", "")
	})
	require.NoError(t, rootCmd.Execute())

	var infos []appInfo
	require.NoError(t, json.Unmarshal(buf.Bytes(), &infos))
	require.Len(t, infos, 3)
	assert.Equal(t, "greeter", infos[0].Name)
	assert.Equal(t, []string{"getGreeting"}, infos[0].Bindings)
}

func TestListRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	rootCmd.SetOut(&buf)
	rootCmd.SetErr(&buf)
	rootCmd.SetArgs([]string{"list", "-o", "yaml"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
		_ = listCmd.Flags().Set("output", "")
	})
	assert.Error(t, rootCmd.Execute())
}

func fsReadFile(opts harness.Options, name string) ([]byte, error) {
	return fs.ReadFile(opts.Assets, name)
}
