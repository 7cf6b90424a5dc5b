package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/importer"
	"github.com/piwi3910/garageplan/internal/model"
	"github.com/piwi3910/garageplan/internal/project"
)

// importCommand creates the import command group.
func (c *CLI) importCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import measured garage data into a project",
	}

	cmd.AddCommand(c.importFeaturesCommand())
	cmd.AddCommand(c.importOutlineCommand())

	return cmd
}

// importFeaturesCommand creates the "import features" subcommand.
func (c *CLI) importFeaturesCommand() *cobra.Command {
	var (
		out     string
		replace bool
	)

	cmd := &cobra.Command{
		Use:   "features [table] [project]",
		Short: "Add doors, windows and utilities from a CSV or Excel table",
		Long: `Add doors, windows and utilities from a CSV or Excel table.

The table needs Wall, Name and Position columns; Width and Type are
optional. Walls are N, E, S, W or Floor. Lengths are inches unless
written in feet (16' or 10'6").

Rows that cannot be read are reported and skipped.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProject(args[1])
			if err != nil {
				return err
			}

			result := importer.ImportFile(args[0])
			for _, w := range result.Warnings {
				c.Logger.Debug(w)
			}
			for _, e := range result.Errors {
				c.printWarning("%s", e)
			}
			if len(result.Features) == 0 {
				return fmt.Errorf("import %s: no features read", args[0])
			}

			if replace {
				g := p.Garage
				p.Garage = model.NewGarageSpace(g.Width, g.Depth, g.CeilingHeight)
			}
			p.Garage = result.Apply(p.Garage)
			p.Result = nil

			target := targetPath(args[1], out)
			if err := project.SaveProject(target, p); err != nil {
				return fmt.Errorf("save project %s: %w", target, err)
			}

			c.printSuccess("Imported %d feature(s) into %s", len(result.Features), p.Name)
			for _, w := range model.Walls {
				if n := len(p.Garage.Features(w)); n > 0 {
					c.printDetail("%s wall: %d", w, n)
				}
			}
			c.printFile(target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the updated project here instead of in place")
	cmd.Flags().BoolVar(&replace, "replace", false, "drop the project's existing features first")

	return cmd
}

// importOutlineCommand creates the "import outline" subcommand.
func (c *CLI) importOutlineCommand() *cobra.Command {
	var (
		out   string
		units string
	)

	cmd := &cobra.Command{
		Use:   "outline [drawing.dxf] [project]",
		Short: "Set the garage width and depth from a DXF floor outline",
		Long: `Set the garage width and depth from a DXF floor outline.

The largest closed shape in the drawing is taken as the room. Drawing X
becomes the garage width and drawing Y its depth.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			scale, ok := importer.UnitScale(units)
			if !ok {
				return fmt.Errorf("unknown units %q (want in, ft, mm, cm or m)", units)
			}
			p, err := c.loadProject(args[1])
			if err != nil {
				return err
			}

			result := importer.ImportOutlineDXF(args[0], scale)
			if len(result.Errors) > 0 {
				return fmt.Errorf("import %s: %s", args[0], strings.Join(result.Errors, "; "))
			}
			for _, w := range result.Warnings {
				c.printWarning("%s", w)
			}

			p.Garage.Width = result.Width
			p.Garage.Depth = result.Depth
			p.Result = nil

			target := targetPath(args[1], out)
			if err := project.SaveProject(target, p); err != nil {
				return fmt.Errorf("save project %s: %w", target, err)
			}

			c.printSuccess("Garage is now %s x %s", model.FeetInches(result.Width), model.FeetInches(result.Depth))
			c.printFile(target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the updated project here instead of in place")
	cmd.Flags().StringVarP(&units, "units", "u", "in", "drawing units: in, ft, mm, cm or m")

	return cmd
}

// targetPath returns out when set, otherwise the input path.
func targetPath(in, out string) string {
	if out != "" {
		return out
	}
	return in
}
