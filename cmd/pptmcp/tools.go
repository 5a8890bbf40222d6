package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"pptmcp/server/internal/dispatch"
)

type toolInfo struct {
	Name        string         `json:"name" yaml:"name"`
	Title       string         `json:"title" yaml:"title"`
	Description string         `json:"description" yaml:"description"`
	ReadOnly    bool           `json:"read_only" yaml:"read_only"`
	InputSchema map[string]any `json:"input_schema" yaml:"input_schema"`
}

func newToolsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "Print the tool catalog",
		Long: `Print every tool with its parameters as JSON Schema.

Example:
  pptmcp tools
  pptmcp tools --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog := dispatch.Catalog()
			tools := make([]toolInfo, 0, len(catalog))
			for _, op := range catalog {
				tools = append(tools, toolInfo{
					Name:        op.Name,
					Title:       op.Title,
					Description: op.Description,
					ReadOnly:    op.ReadOnly,
					InputSchema: op.InputSchema(),
				})
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				enc.SetIndent(2)
				if err := enc.Encode(tools); err != nil {
					return fmt.Errorf("encode yaml: %w", err)
				}
				return enc.Close()
			case "json":
				data, err := json.MarshalIndent(tools, "", "  ")
				if err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			default:
				return fmt.Errorf("unknown format %q (valid: yaml, json)", format)
			}
		},
	}
	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	return cmd
}
