package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/brandtinct/internal/export"
)

func newTemplatesCmd(root *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "Manage export template overrides",
		Long: `The css and tailwind exports render from embedded templates. Dump them to a
directory, edit them, and pass the directory to generate --template-dir (or
set BRANDTINCT_TEMPLATE_DIR) to use your versions.`,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the embedded templates",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			names, err := export.TemplateNames()
			if err != nil {
				return err
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})

	var (
		dir   string
		force bool
	)
	dump := &cobra.Command{
		Use:   "dump",
		Short: "Write the embedded templates to a directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			written, err := export.DumpTemplates(dir, force)
			for _, path := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "  Wrote %s\n", path)
			}
			if err != nil {
				return fmt.Errorf("failed to dump templates: %w", err)
			}
			root.logger.Debug("templates dumped", "dir", dir, "count", len(written))
			return nil
		},
	}
	dump.Flags().StringVarP(&dir, "dir", "d", "brandtinct-templates", "directory to write templates to")
	dump.Flags().BoolVar(&force, "force", false, "overwrite existing templates")
	cmd.AddCommand(dump)

	return cmd
}
