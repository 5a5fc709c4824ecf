package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/lu-zhengda/portkill/internal/process"
	"gopkg.in/yaml.v3"
)

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

// Report summarizes one run for the structured output formats.
type Report struct {
	Ports   []uint16          `json:"ports" yaml:"ports"`
	PIDs    []uint32          `json:"pids" yaml:"pids"`
	DryRun  bool              `json:"dry_run" yaml:"dry_run"`
	Results []process.Outcome `json:"results" yaml:"results"`
}

func validateOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	default:
		return &usageError{err: fmt.Errorf("unsupported output format: %s (use text, json, or yaml)", format)}
	}
}

// writeReport prints rep in the structured format. Text output is streamed
// while the run progresses, so there is nothing left to print for it.
func writeReport(w io.Writer, format string, rep *Report) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rep); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
		if err := enc.Close(); err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}
	return nil
}
