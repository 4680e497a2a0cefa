package visuals

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"manifest-ops/internal/stats"

	"github.com/guptarohit/asciigraph"
)

const (
	windowLayout = "02/01/2006 15:04"
	noActiveData = "Sem dados ativos"
)

// RenderText writes a terminal dashboard for r.
func RenderText(w io.Writer, r stats.Report) error {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Janela: %s até %s (%s)\n", r.Window.Start.Format(windowLayout), r.Window.End.Format(windowLayout), r.Timezone)
	fmt.Fprintf(&sb, "Registros: %d | Na janela: %d | Sem referência: %d\n\n", r.TotalRecords, r.InWindow, r.Unreferenced)

	tw := tabwriter.NewWriter(&sb, 0, 4, 2, ' ', 0)

	fmt.Fprintln(tw, "RANKING DE OPERADORES")
	if len(r.Ranking) == 0 {
		fmt.Fprintln(tw, noActiveData)
	}
	for i, oc := range r.Ranking {
		fmt.Fprintf(tw, "%s\t%s\t%d\n", RankLabel(i), oc.Operator, oc.Count)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "PRODUTIVIDADE POR TURNO")
	for _, s := range r.Shifts {
		fmt.Fprintf(tw, "%s\t%02dh-%02dh\t%d recebidos\t%d entregues\n", s.Label, s.StartHour, s.EndHour, s.Total, s.Completed)
	}
	fmt.Fprintln(tw)

	fmt.Fprintln(tw, "TEMPOS MÉDIOS")
	for _, lt := range []struct {
		name string
		m    stats.LeadTimeMetric
	}{
		{"Espera", r.LeadTimes.Wait},
		{"Processamento", r.LeadTimes.Processing},
		{"Liberação", r.LeadTimes.Release},
	} {
		fmt.Fprintf(tw, "%s\t%s\t(%d)\n", lt.name, stats.FormatMinutes(lt.m.MeanMinutes), lt.m.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	sb.WriteString("\nCHEGADAS POR HORA\n")
	sb.WriteString(HourlyPlot(r.Hourly))
	sb.WriteString("\n")

	_, err := io.WriteString(w, sb.String())
	return err
}

// HourlyPlot renders the histogram as an ASCII line graph, or a placeholder when empty.
func HourlyPlot(h stats.HourlyHistogram) string {
	if h.Total() == 0 {
		return noActiveData
	}
	data := make([]float64, len(h.Buckets))
	for i, b := range h.Buckets {
		data[i] = float64(b.Count)
	}
	return asciigraph.Plot(data,
		asciigraph.Height(8),
		asciigraph.Width(72),
		asciigraph.Caption("00h ... 23h"),
	)
}

// RankLabel formats a zero-based ranking position.
func RankLabel(i int) string {
	return fmt.Sprintf("#%d", i+1)
}
