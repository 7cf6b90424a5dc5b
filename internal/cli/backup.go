package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/piwi3910/garageplan/internal/project"
)

// backupCommand creates the backup command group.
func (c *CLI) backupCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "backup",
		Short: "Export or restore the app config and templates",
	}

	cmd.AddCommand(c.backupExportCommand())
	cmd.AddCommand(c.backupImportCommand())

	return cmd
}

func (c *CLI) backupExportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "export [file]",
		Short: "Write the app config and all templates to one file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := c.loadAppConfig()
			store, err := project.LoadTemplates(c.templatePath)
			if err != nil {
				return fmt.Errorf("load templates: %w", err)
			}
			if err := project.ExportAllData(args[0], cfg, store); err != nil {
				return err
			}
			c.printSuccess("Backed up config and %d template(s)", len(store.Templates))
			c.printFile(args[0])
			return nil
		},
	}
}

func (c *CLI) backupImportCommand() *cobra.Command {
	var replace bool

	cmd := &cobra.Command{
		Use:   "import [file]",
		Short: "Restore the app config and templates from a backup",
		Long: `Restore the app config and templates from a backup.

The config is replaced. Templates are merged into the saved ones, with
same-named templates taking the backup's version; --replace drops the
saved templates first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backup, err := project.ImportAllData(args[0])
			if err != nil {
				return err
			}
			c.Logger.Debug("read backup", "version", backup.Version, "created", backup.CreatedAt)

			store := backup.Templates
			if !replace {
				store, err = project.LoadTemplates(c.templatePath)
				if err != nil {
					return fmt.Errorf("load templates: %w", err)
				}
				project.MergeTemplates(&store, backup.Templates)
			}

			if err := project.SaveAppConfig(c.configPath, backup.Config); err != nil {
				return fmt.Errorf("save config: %w", err)
			}
			if err := project.SaveTemplates(c.templatePath, store); err != nil {
				return fmt.Errorf("save templates: %w", err)
			}

			c.printSuccess("Restored config and %d template(s)", len(backup.Templates.Templates))
			return nil
		},
	}

	cmd.Flags().BoolVar(&replace, "replace", false, "replace saved templates instead of merging")

	return cmd
}
