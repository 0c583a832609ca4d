package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/kbukum/prism/errors"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func addOutputFlag(cmd *cobra.Command, format *string) {
	cmd.Flags().StringVarP(format, "output", "o", outputText, "output format: text, json or yaml")
}

// render writes v as JSON or YAML, or calls text for the text format.
func render(w io.Writer, format string, v any, text func(io.Writer) error) error {
	switch format {
	case outputText:
		return text(w)
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return errors.InvalidInput("output", fmt.Sprintf("unknown format %q", format))
	}
}
