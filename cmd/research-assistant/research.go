package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/research-assistant/internal/research"
	"github.com/pdiddy/research-assistant/pkg/types"
)

// reportEnvelope wraps a report for the json and yaml output formats.
type reportEnvelope struct {
	Query       string           `json:"query" yaml:"query"`
	Sources     types.SourceKind `json:"sources" yaml:"sources"`
	NumResults  int              `json:"num_results" yaml:"num_results"`
	GeneratedAt time.Time        `json:"generated_at" yaml:"generated_at"`
	Report      string           `json:"report" yaml:"report"`
}

var researchCmd = &cobra.Command{
	Use:   "research <query>",
	Short: "Run one research query and print the report",
	Long: `Research searches the selected sources for the query, follows up to
--num-results of the top result links (at most 3), and prints the assembled
report. Search and extraction failures are reported inline; the command only
fails on invalid flags or configuration.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sources, _ := cmd.Flags().GetString("sources")
		numResults, _ := cmd.Flags().GetInt("num-results")
		format, _ := cmd.Flags().GetString("format")

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		query := strings.Join(args, " ")
		r := research.New(cfg, newLogger(cfg))
		report := r.Research(cmd.Context(), query, sources, numResults)

		return writeReport(cmd.OutOrStdout(), format, reportEnvelope{
			Query:       query,
			Sources:     types.ParseSourceKind(sources),
			NumResults:  numResults,
			GeneratedAt: time.Now().UTC(),
			Report:      report,
		})
	},
}

func writeReport(w io.Writer, format string, env reportEnvelope) error {
	switch format {
	case "text", "":
		_, err := fmt.Fprintln(w, env.Report)
		return err
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(env)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(env)
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", format)
	}
}

func init() {
	researchCmd.Flags().String("sources", "both", "sources to search: web, academic or both")
	researchCmd.Flags().Int("num-results", research.DefaultNumResults, "number of sources to follow (max 3)")
	researchCmd.Flags().String("format", "text", "output format: text, json or yaml")

	rootCmd.AddCommand(researchCmd)
}
