package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/engine"
	"github.com/piwi3910/garageplan/internal/model"
)

// validateCommand creates the validate command.
func (c *CLI) validateCommand() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "validate [project]",
		Short: "Check a project's garage geometry and features",
		Long: `Check a project's garage geometry and features.

Invalid dimensions are an error. Features that reach past a wall, carry an
unrecognized type or sit on the floor are reported as warnings: the
optimizer still runs, but they may not be handled the way you expect.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runValidate(args[0], settingsPath)
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "TOML settings override file to check as well")

	return cmd
}

func (c *CLI) runValidate(input, settingsPath string) error {
	p, err := c.loadProject(input)
	if err != nil {
		return err
	}

	if err := engine.ValidateSpace(p.Garage); err != nil {
		c.printError("%s", err)
		return fmt.Errorf("validate %s: %w", p.Name, err)
	}

	settings, err := c.resolveSettings(p, settingsPath, c.loadAppConfig())
	if err != nil {
		return err
	}

	issues := engine.SpaceIssues(p.Garage)
	for _, issue := range issues {
		c.printWarning("%s", issue)
	}

	constraints := engine.NewConstraintGenerator(settings).Generate(p.Garage)
	demands := engine.NewDemandPlanner(settings).Plan(p.Profile)

	if len(issues) == 0 {
		c.printSuccess("%s is valid", p.Name)
	} else {
		c.printInfo("%s is usable with %d warning(s)", p.Name, len(issues))
	}
	c.printKeyValue("Garage", fmt.Sprintf("%s x %s, %s ceiling",
		model.FeetInches(p.Garage.Width), model.FeetInches(p.Garage.Depth), model.FeetInches(p.Garage.CeilingHeight)))
	c.printKeyValue("Features", fmt.Sprintf("%d", countFeatures(p.Garage)))
	c.printKeyValue("Constraints", fmt.Sprintf("%d", len(constraints)))
	c.printKeyValue("Demands", fmt.Sprintf("%d", len(demands)))
	for _, d := range demands {
		c.printDetail("%s (%s x %s, priority %d)", d.Name, model.FeetInches(d.Width), model.FeetInches(d.Depth), d.Priority)
	}
	return nil
}

func countFeatures(g model.GarageSpace) int {
	n := len(g.Floor)
	for _, w := range model.Walls {
		n += len(g.Features(w))
	}
	return n
}
