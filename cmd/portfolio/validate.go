package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

func newValidateCmd() *cobra.Command {
	var catalogPath, assetsDir string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check the project catalog for defects",
		Long: `validate loads the catalog and reports every defect found:
unknown project types, malformed dates or slugs, duplicate slugs or ids.

Screenshots and documents the catalog links to are checked against the
assets directory; missing files are reported as warnings.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(catalogPath)
			if err != nil {
				return err
			}

			projects, err := cfg.LoadCatalog()
			if err != nil {
				defects := splitErrors(err)
				for _, d := range defects {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %v\n", d)
				}
				return fmt.Errorf("catalog %s has %d defect(s)", catalogSource(cfg), len(defects))
			}

			if assetsDir != "" {
				cfg.AssetsDir = assetsDir
			}
			missing, err := projects.MissingAssets(cfg.AssetsDir)
			if err != nil {
				return err
			}
			for _, p := range missing {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: missing asset %s in %s\n", p, cfg.AssetsDir)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "catalog %s is valid: %d projects\n", catalogSource(cfg), projects.Len())
			return nil
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file, .json or .yaml (overrides CATALOG_PATH)")
	cmd.Flags().StringVar(&assetsDir, "assets", "", "Assets directory to check (overrides ASSETS_DIR)")

	return cmd
}

// splitErrors flattens a joined error into its parts.
func splitErrors(err error) []error {
	var joined interface{ Unwrap() []error }
	if errors.As(err, &joined) {
		return joined.Unwrap()
	}
	return []error{err}
}
