package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newCallCmd() *cobra.Command {
	var rawArgs string
	cmd := &cobra.Command{
		Use:   "call <tool>",
		Short: "Run one tool call locally and print the response",
		Long: `Call dispatches a single tool call without starting a server. Arguments
are a JSON object; pass - to read them from stdin.

Example:
  pptmcp call create_presentation --args '{"filepath":"deck.pptx"}'
  echo '{"filepath":"deck.pptx"}' | pptmcp call create_slide --args -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payload := rawArgs
			if payload == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read arguments: %w", err)
				}
				payload = string(data)
			}
			toolArgs := map[string]any{}
			if strings.TrimSpace(payload) != "" {
				if err := json.Unmarshal([]byte(payload), &toolArgs); err != nil {
					return fmt.Errorf("arguments must be a JSON object: %w", err)
				}
			}

			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			resp, err := a.dispatcher.Call(cmd.Context(), args[0], toolArgs)
			if err != nil {
				return err
			}
			output, err := json.MarshalIndent(resp, "", "  ")
			if err != nil {
				return fmt.Errorf("marshal response: %w", err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(output))
			return err
		},
	}
	cmd.Flags().StringVar(&rawArgs, "args", "{}", "tool arguments as a JSON object, - for stdin")
	return cmd
}
