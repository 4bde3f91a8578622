package config

import (
	"github.com/spf13/pflag"
)

const (
	FlagAssetsDir = "assets-dir"
	FlagWait      = "wait"
	FlagPort      = "port"
	FlagWidth     = "width"
	FlagHeight    = "height"
	FlagDebug     = "debug"
)

// AddFlags registers the flags that override configuration. Their defaults
// are informational: only flags set on the command line are applied.
func AddFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(FlagAssetsDir, "", "Serve the payload from this directory instead of the embedded one (relative to the project directory)")
	fs.Bool(FlagWait, d.Dev.Wait, "Wait for the dev server to answer before opening the window")
	fs.Int(FlagPort, d.Dev.Port, "Port the dev server listens on")
	fs.Int(FlagWidth, d.Window.Width, "Window width in pixels")
	fs.Int(FlagHeight, d.Window.Height, "Window height in pixels")
}

// ApplyFlags copies every flag the user set in fs onto c and re-validates.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	if changed(fs, FlagAssetsDir) {
		v, err := fs.GetString(FlagAssetsDir)
		if err != nil {
			return err
		}
		c.AssetsDir = v
	}
	if changed(fs, FlagWait) {
		v, err := fs.GetBool(FlagWait)
		if err != nil {
			return err
		}
		c.Dev.Wait = v
	}
	if changed(fs, FlagDebug) {
		v, err := fs.GetBool(FlagDebug)
		if err != nil {
			return err
		}
		c.Debug = v
	}
	for name, dst := range map[string]*int{
		FlagPort:   &c.Dev.Port,
		FlagWidth:  &c.Window.Width,
		FlagHeight: &c.Window.Height,
	} {
		if !changed(fs, name) {
			continue
		}
		v, err := fs.GetInt(name)
		if err != nil {
			return err
		}
		*dst = v
	}
	return c.Validate()
}

func changed(fs *pflag.FlagSet, name string) bool {
	f := fs.Lookup(name)
	return f != nil && f.Changed
}
