package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/engine"
)

// compareCommand creates the compare command.
func (c *CLI) compareCommand() *cobra.Command {
	var settingsPath string

	cmd := &cobra.Command{
		Use:   "compare [project]",
		Short: "Compare what-if variants of a project's layout",
		Long: `Compare what-if variants of a project's layout.

The current profile is run alongside variants with overhead and wall storage
toggled, the workspace at top priority and a narrower walkway. The best
scoring variant is highlighted.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCompare(args[0], settingsPath)
		},
	}

	cmd.Flags().StringVarP(&settingsPath, "settings", "s", "", "TOML settings override file")

	return cmd
}

func (c *CLI) runCompare(input, settingsPath string) error {
	p, err := c.loadProject(input)
	if err != nil {
		return err
	}
	settings, err := c.resolveSettings(p, settingsPath, c.loadAppConfig())
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	scenarios := engine.BuildDefaultScenarios(settings, p.Profile)
	results, err := engine.CompareScenarios(scenarios, p.Garage, engine.WithLogger(c.Logger))
	if err != nil {
		return fmt.Errorf("compare %s: %w", p.Name, err)
	}
	prog.done(fmt.Sprintf("Compared %d scenarios", len(results)))
	if len(results) == 0 {
		return fmt.Errorf("compare %s: no scenarios", p.Name)
	}

	best := 0
	rows := make([][]string, 0, len(results))
	for i, r := range results {
		if r.Score > results[best].Score || (r.Score == results[best].Score && r.ZonesPlaced > results[best].ZonesPlaced) {
			best = i
		}
		rows = append(rows, []string{
			r.Scenario.Name,
			fmt.Sprintf("%d", r.ZonesPlaced),
			fmt.Sprintf("%d", r.WarningCount),
			fmt.Sprintf("%.0f", r.Score),
			fmt.Sprintf("%.0f%%", r.FloorUsePercent),
		})
	}

	c.printTitle("Scenarios for " + p.Name)
	c.printTable([]string{"Scenario", "Zones", "Warnings", "Score", "Floor use"}, rows, best)
	c.printNewline()
	c.printSuccess("Best: %s", results[best].Scenario.Name)
	return nil
}
