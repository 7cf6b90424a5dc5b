// Package cli implements the garageplan command-line interface.
//
// # Commands
//
//   - optimize: compute a layout for a project file and write exports
//   - validate: check a project's garage geometry and features
//   - compare: run what-if scenarios side by side
//   - template: save, list, apply and delete usage-profile templates
//   - import: read features from CSV/Excel and the outline from DXF
//   - backup: export or restore the app config and templates
//
// All commands accept --verbose (-v) for debug-level logging on stderr.
// Command results go to the CLI's output writer (stdout by default).
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/engine"
	"github.com/piwi3910/garageplan/internal/model"
	"github.com/piwi3910/garageplan/internal/project"
)

const appName = "garageplan"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
// main calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	Out    io.Writer

	configPath   string
	templatePath string
}

// New creates a CLI that logs to w at the given level and prints results
// to stdout.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:       newLogger(w, level),
		Out:          os.Stdout,
		configPath:   project.DefaultConfigPath(),
		templatePath: project.DefaultTemplatePath(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "GaragePlan recommends garage layouts",
		Long:         `GaragePlan places vehicles, a workbench and storage in a garage around its doors, windows and utilities, and explains every decision it makes.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				c.SetLogLevel(LogDebug)
			}
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("%s %s\ncommit: %s\nbuilt: %s\n", appName, version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.optimizeCommand())
	root.AddCommand(c.validateCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.templateCommand())
	root.AddCommand(c.importCommand())
	root.AddCommand(c.backupCommand())

	return root
}

// =============================================================================
// Shared helpers
// =============================================================================

// loadAppConfig returns the saved app config, or defaults when it cannot
// be read.
func (c *CLI) loadAppConfig() model.AppConfig {
	cfg, err := project.LoadAppConfig(c.configPath)
	if err != nil {
		c.Logger.Warn("ignoring unreadable app config", "path", c.configPath, "err", err)
		return model.DefaultAppConfig()
	}
	return cfg
}

// resolveSettings layers, in order: defaults, the settings file (flag, or
// the app config's default), and the project's own overrides.
func (c *CLI) resolveSettings(p project.Project, settingsPath string, cfg model.AppConfig) (model.LayoutSettings, error) {
	if settingsPath == "" {
		settingsPath = cfg.SettingsPath
	}
	base := model.DefaultSettings()
	if settingsPath != "" {
		s, err := project.LoadSettings(settingsPath)
		if err != nil {
			return model.LayoutSettings{}, fmt.Errorf("load settings %s: %w", settingsPath, err)
		}
		c.Logger.Debug("loaded settings", "path", settingsPath)
		base = s
	}
	return p.EffectiveSettings(base), nil
}

func (c *CLI) newOptimizer(settings model.LayoutSettings) *engine.Optimizer {
	return engine.New(settings, engine.WithLogger(c.Logger))
}

// loadProject reads a project file, naming the path in any error.
func (c *CLI) loadProject(path string) (project.Project, error) {
	p, err := project.LoadProject(path)
	if err != nil {
		return project.Project{}, fmt.Errorf("load project %s: %w", path, err)
	}
	c.Logger.Debug("loaded project", "name", p.Name, "vehicles", len(p.Profile.Vehicles))
	return p, nil
}
