package visuals

import (
	_ "embed"
	"fmt"
	"html/template"
	"io"
	"os"

	"manifest-ops/internal/stats"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
)

//go:embed templates/dashboard.html
var dashboardHTML string

var dashboardTmpl = template.Must(template.New("dashboard").Funcs(template.FuncMap{
	"minutes": stats.FormatMinutes,
	"rank":    RankLabel,
	"pct": func(h stats.HourlyHistogram, hour int) string {
		return fmt.Sprintf("%.0f%%", h.Share(hour)*100)
	},
	"window": func(w stats.Window) string {
		return w.Start.Format(windowLayout) + " até " + w.End.Format(windowLayout)
	},
}).Parse(dashboardHTML))

// RenderHTML writes a self-contained HTML dashboard for r.
func RenderHTML(w io.Writer, r stats.Report) error {
	if err := dashboardTmpl.Execute(w, r); err != nil {
		return fmt.Errorf("failed to render dashboard: %w", err)
	}
	return nil
}

// OpenHTML renders r into a temporary file and opens it in the default browser.
// The file is left in place so the browser can still read it after return.
func OpenHTML(r stats.Report) (string, error) {
	f, err := os.CreateTemp("", "manifest-ops-*.html")
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := RenderHTML(f, r); err != nil {
		return "", err
	}
	if err := f.Close(); err != nil {
		return "", err
	}

	log.Info().Str("path", f.Name()).Msg("Opening dashboard in browser")
	if err := browser.OpenFile(f.Name()); err != nil {
		return f.Name(), fmt.Errorf("failed to open browser: %w", err)
	}
	return f.Name(), nil
}
