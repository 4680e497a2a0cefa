package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"manifest-ops/internal/config"
	"manifest-ops/internal/manifest"
	"manifest-ops/internal/metrics"
	"manifest-ops/internal/stats"
	"manifest-ops/internal/visuals"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type reportOptions struct {
	start       string
	end         string
	period      string
	format      string
	metricsFile string
	outFile     string
	open        bool
}

var reportOpts reportOptions

var reportCmd = &cobra.Command{
	Use:   "report [files...]",
	Short: "Compute the efficiency report for manifest files",
	Long: `Loads manifests from JSON arrays, JSON Lines or YAML files and prints the
statistics for one time window. The window defaults to the current day in
MANIFEST_TIMEZONE; --start and --end accept YYYY-MM-DD, YYYY-MM-DDTHH:MM or RFC3339.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := reportOpts
		if opts.metricsFile == "" {
			opts.metricsFile = cfg.MetricsFile
		}

		out := cmd.OutOrStdout()
		if opts.outFile != "" {
			f, err := os.Create(opts.outFile)
			if err != nil {
				return err
			}
			defer f.Close()
			out = f
		}
		return runReport(cmd.Context(), cfg, args, opts, out, time.Now())
	},
}

func runReport(ctx context.Context, cfg *config.AppConfig, paths []string, opts reportOptions, out io.Writer, now time.Time) error {
	records, err := manifest.LoadFiles(ctx, paths)
	if err != nil {
		return err
	}

	window, err := stats.ResolveWindow(now, opts.start, opts.end, opts.period, cfg.Location)
	if err != nil {
		return err
	}
	if window.IsInverted() {
		log.Warn().Time("start", window.Start).Time("end", window.End).Msg("Window start is after its end; report will be empty")
	}

	report := stats.Analyze(records, window, cfg.EngineOptions())
	log.Debug().Int("records", report.TotalRecords).Int("inWindow", report.InWindow).Msg("Report computed")

	if opts.metricsFile != "" {
		exporter := metrics.NewExporter()
		exporter.Observe(report)
		if err := exporter.WriteTextfile(opts.metricsFile); err != nil {
			return err
		}
		log.Info().Str("path", opts.metricsFile).Msg("Metrics textfile written")
	}

	if opts.open {
		_, err := visuals.OpenHTML(report)
		return err
	}

	switch opts.format {
	case "", "json":
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "text":
		return visuals.RenderText(out, report)
	case "mermaid":
		_, err := fmt.Fprintln(out, visuals.GenerateDashboard(report))
		return err
	case "html":
		return visuals.RenderHTML(out, report)
	default:
		return fmt.Errorf("unknown format %q (expected json, text, mermaid or html)", opts.format)
	}
}

func init() {
	f := reportCmd.Flags()
	f.StringVar(&reportOpts.start, "start", "", "window start (defaults to the start of the period)")
	f.StringVar(&reportOpts.end, "end", "", "window end; a bare date covers the whole day")
	f.StringVar(&reportOpts.period, "period", "day", "base window around now: day, week or month")
	f.StringVarP(&reportOpts.format, "format", "f", "json", "output format: json, text, mermaid or html")
	f.StringVar(&reportOpts.metricsFile, "metrics-file", "", "write a Prometheus textfile (defaults to METRICS_TEXTFILE)")
	f.StringVarP(&reportOpts.outFile, "out", "o", "", "write the report to a file instead of stdout")
	f.BoolVar(&reportOpts.open, "open", false, "open the HTML dashboard in the default browser")
	rootCmd.AddCommand(reportCmd)
}
