package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/engine"
	"github.com/piwi3910/garageplan/internal/export"
	"github.com/piwi3910/garageplan/internal/model"
	"github.com/piwi3910/garageplan/internal/project"
)

// Export format names, as used in the app config's default_formats.
const (
	FormatReport = "report"
	FormatPDF    = "pdf"
	FormatLabels = "labels"
	FormatXLSX   = "xlsx"
	FormatDXF    = "dxf"
)

// stdoutPath selects standard output for the text report.
const stdoutPath = "-"

// exporter writes one export format for a computed layout.
type exporter struct {
	format string
	suffix string
	write  func(path string, space model.GarageSpace, rec model.LayoutRecommendation) error
}

func (c *CLI) exporters() []exporter {
	return []exporter{
		{FormatReport, ".txt", c.writeReport},
		{FormatPDF, ".pdf", export.ExportPDF},
		{FormatLabels, "-labels.pdf", func(path string, _ model.GarageSpace, rec model.LayoutRecommendation) error {
			return export.ExportLabels(path, rec)
		}},
		{FormatXLSX, ".xlsx", export.ExportXLSX},
		{FormatDXF, ".dxf", export.ExportDXF},
	}
}

type optimizeOptions struct {
	settings string
	out      string
	outputs  map[string]*string
}

// optimizeCommand creates the optimize command.
func (c *CLI) optimizeCommand() *cobra.Command {
	opts := optimizeOptions{outputs: make(map[string]*string)}
	for _, e := range c.exporters() {
		opts.outputs[e.format] = new(string)
	}

	cmd := &cobra.Command{
		Use:   "optimize [project]",
		Short: "Compute a layout recommendation for a garage project",
		Long: `Compute a layout recommendation for a garage project.

The project file (.json, .yaml or .yml) describes the garage, its fixed
features and how it will be used. The recommendation is printed as a short
summary; use the format flags to write exports. With no format flags, the
formats listed in the app config (default: the text report on stdout) are
written next to the project.

Settings are layered: built-in defaults, then the --settings TOML file (or
the app config's settings_path), then the project's own settings block.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runOptimize(cmd.Context(), args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.settings, "settings", "s", "", "TOML settings override file")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "save the project with its result to this file")
	cmd.Flags().StringVar(opts.outputs[FormatReport], "report", "", "write the text report (\"-\" for stdout)")
	cmd.Flags().StringVar(opts.outputs[FormatPDF], "pdf", "", "write the floor plan PDF")
	cmd.Flags().StringVar(opts.outputs[FormatLabels], "labels", "", "write QR zone labels (PDF)")
	cmd.Flags().StringVar(opts.outputs[FormatXLSX], "xlsx", "", "write the zone workbook")
	cmd.Flags().StringVar(opts.outputs[FormatDXF], "dxf", "", "write the CAD drawing")

	return cmd
}

// runOptimize loads the project, computes the layout, and writes outputs.
func (c *CLI) runOptimize(ctx context.Context, input string, opts optimizeOptions) error {
	cfg := c.loadAppConfig()

	p, err := c.loadProject(input)
	if err != nil {
		return err
	}
	settings, err := c.resolveSettings(p, opts.settings, cfg)
	if err != nil {
		return err
	}
	for _, issue := range engine.SpaceIssues(p.Garage) {
		c.Logger.Warn(issue)
	}

	prog := newProgress(c.Logger)
	rec, err := c.newOptimizer(settings).Optimize(p.Garage, p.Profile)
	if err != nil {
		return fmt.Errorf("optimize %s: %w", p.Name, err)
	}
	prog.done("Optimized " + p.Name)

	if ctx.Err() != nil {
		return ctx.Err()
	}

	c.printSuccess("Layout for %s", p.Name)
	c.printSummary(p.Garage, rec)

	outputs := c.selectOutputs(input, opts, cfg)
	for _, e := range c.exporters() {
		path, ok := outputs[e.format]
		if !ok {
			continue
		}
		if err := e.write(path, p.Garage, rec); err != nil {
			return fmt.Errorf("write %s %s: %w", e.format, path, err)
		}
		if path != stdoutPath {
			c.printFile(path)
		}
	}

	if opts.out != "" {
		p.Result = &rec
		if err := project.SaveProject(opts.out, p); err != nil {
			return fmt.Errorf("save project %s: %w", opts.out, err)
		}
		c.printFile(opts.out)
	}

	c.rememberProject(cfg, input)
	return nil
}

// selectOutputs maps format to output path. Explicit flags win; otherwise
// the app config's default formats are written beside the project (or in
// its export directory), with the report going to stdout.
func (c *CLI) selectOutputs(input string, opts optimizeOptions, cfg model.AppConfig) map[string]string {
	outputs := make(map[string]string)
	for format, path := range opts.outputs {
		if *path != "" {
			outputs[format] = *path
		}
	}
	if len(outputs) > 0 {
		return outputs
	}

	dir := cfg.ExportDir
	if dir == "" {
		dir = filepath.Dir(input)
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))

	suffixes := make(map[string]string)
	for _, e := range c.exporters() {
		suffixes[e.format] = e.suffix
	}
	for _, format := range cfg.DefaultFormats {
		suffix, ok := suffixes[format]
		if !ok {
			c.Logger.Warn("unknown default export format", "format", format)
			continue
		}
		if format == FormatReport {
			outputs[format] = stdoutPath
			continue
		}
		outputs[format] = filepath.Join(dir, base+suffix)
	}
	return outputs
}

func (c *CLI) writeReport(path string, space model.GarageSpace, rec model.LayoutRecommendation) error {
	if path == stdoutPath {
		c.printNewline()
		return export.WriteReport(c.Out, space, rec)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.WriteReport(f, space, rec); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// printSummary prints the score, zone counts and warnings.
func (c *CLI) printSummary(space model.GarageSpace, rec model.LayoutRecommendation) {
	c.printKeyValue("Garage", fmt.Sprintf("%s x %s, %s ceiling",
		model.FeetInches(space.Width), model.FeetInches(space.Depth), model.FeetInches(space.CeilingHeight)))
	c.printKeyValue("Score", StyleNumber.Render(fmt.Sprintf("%.0f/100", rec.Score)))

	counts := rec.CountByType()
	var placed []string
	for _, t := range model.ZoneTypes {
		if n := counts[t]; n > 0 {
			placed = append(placed, fmt.Sprintf("%d %s", n, strings.ToLower(t.Label())))
		}
	}
	if len(placed) == 0 {
		placed = []string{"none"}
	}
	c.printKeyValue("Zones", strings.Join(placed, ", "))
	c.printKeyValue("Constraints", fmt.Sprintf("%d", len(rec.Constraints)))

	for _, w := range rec.Warnings {
		c.printWarning("%s", w)
	}
}

// rememberProject records input in the recent projects list. Failures are
// logged, never returned.
func (c *CLI) rememberProject(cfg model.AppConfig, input string) {
	abs, err := filepath.Abs(input)
	if err != nil {
		abs = input
	}
	cfg.AddRecentProject(abs)
	if err := project.SaveAppConfig(c.configPath, cfg); err != nil {
		c.Logger.Warn("could not update recent projects", "err", err)
	}
}
