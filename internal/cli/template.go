package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/model"
	"github.com/piwi3910/garageplan/internal/project"
)

// templateCommand creates the template command group.
func (c *CLI) templateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "template",
		Short: "Manage reusable usage-profile templates",
	}

	cmd.AddCommand(c.templateSaveCommand())
	cmd.AddCommand(c.templateListCommand())
	cmd.AddCommand(c.templateApplyCommand())
	cmd.AddCommand(c.templateDeleteCommand())

	return cmd
}

// templateSaveCommand creates the "template save" subcommand.
func (c *CLI) templateSaveCommand() *cobra.Command {
	var name, description string

	cmd := &cobra.Command{
		Use:   "save [project]",
		Short: "Save a project's usage profile as a template",
		Long: `Save a project's usage profile as a template.

A template with the same name is replaced and keeps its ID.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadProject(args[0])
			if err != nil {
				return err
			}
			tmplName := name
			if tmplName == "" {
				tmplName = p.Name
			}

			store, err := project.LoadTemplates(c.templatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			store.Add(model.NewProfileTemplate(tmplName, description, p.Profile))
			if err := project.SaveTemplates(c.templatePath, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}

			c.printSuccess("Saved template %q", tmplName)
			c.printDetail("File: %s", c.templatePath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "template name (default: project name)")
	cmd.Flags().StringVarP(&description, "description", "d", "", "template description")

	return cmd
}

// templateListCommand creates the "template list" subcommand.
func (c *CLI) templateListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(c.templatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			if len(store.Templates) == 0 {
				c.printInfo("No templates saved")
				return nil
			}

			rows := make([][]string, 0, len(store.Templates))
			for _, t := range store.Templates {
				rows = append(rows, []string{
					t.Name,
					fmt.Sprintf("%d", len(t.Profile.Vehicles)),
					createdDate(t.CreatedAt),
					t.Description,
				})
			}
			c.printTable([]string{"Name", "Vehicles", "Created", "Description"}, rows, -1)
			return nil
		},
	}
}

// templateApplyCommand creates the "template apply" subcommand.
func (c *CLI) templateApplyCommand() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "apply [template] [project]",
		Short: "Replace a project's usage profile with a template",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(c.templatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			tmpl := store.FindByName(args[0])
			if tmpl == nil {
				return fmt.Errorf("template %q not found", args[0])
			}

			p, err := c.loadProject(args[1])
			if err != nil {
				return err
			}
			p.Profile = tmpl.ToProfile()
			// The stored result no longer matches the profile.
			p.Result = nil

			target := targetPath(args[1], out)
			if err := project.SaveProject(target, p); err != nil {
				return fmt.Errorf("save project %s: %w", target, err)
			}

			c.printSuccess("Applied template %q to %s", tmpl.Name, p.Name)
			c.printFile(target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the updated project here instead of in place")

	return cmd
}

// templateDeleteCommand creates the "template delete" subcommand.
func (c *CLI) templateDeleteCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [template]",
		Short: "Delete a saved template",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := project.LoadTemplates(c.templatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			tmpl := store.FindByName(args[0])
			if tmpl == nil {
				return fmt.Errorf("template %q not found", args[0])
			}
			store.Remove(tmpl.ID)
			if err := project.SaveTemplates(c.templatePath, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}
			c.printSuccess("Deleted template %q", args[0])
			return nil
		},
	}
}

// createdDate trims an RFC 3339 timestamp to its date.
func createdDate(ts string) string {
	if len(ts) >= len("2006-01-02") {
		return ts[:len("2006-01-02")]
	}
	return ts
}
