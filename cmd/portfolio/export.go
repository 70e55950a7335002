package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"tj2904.com/internal/models"
	"tj2904.com/internal/services"
)

type outputFormat string

const (
	outputJSON outputFormat = "json"
	outputYAML outputFormat = "yaml"
)

func parseOutputFormat(s string) (outputFormat, error) {
	switch strings.ToLower(s) {
	case "json", "":
		return outputJSON, nil
	case "yaml", "yml":
		return outputYAML, nil
	default:
		return "", fmt.Errorf("unsupported output format %q (supported: json, yaml)", s)
	}
}

func newExportCmd() *cobra.Command {
	var catalogPath, formatFlag string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog records in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := parseOutputFormat(formatFlag)
			if err != nil {
				return err
			}
			cfg, err := loadConfig(catalogPath)
			if err != nil {
				return err
			}
			projects, err := cfg.LoadCatalog()
			if err != nil {
				return err
			}

			sorted := services.NewProjectService(projects, cfg.Site()).ListSorted()
			records := make([]models.Record, len(sorted))
			for i, p := range sorted {
				records[i] = p.Record()
			}
			return printOutput(cmd.OutOrStdout(), format, records)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "", "Catalog file, .json or .yaml (overrides CATALOG_PATH)")
	cmd.Flags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json, yaml")

	return cmd
}

func printOutput(w io.Writer, format outputFormat, data any) error {
	if format == outputYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
