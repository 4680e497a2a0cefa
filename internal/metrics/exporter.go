// Package metrics exposes an efficiency report as Prometheus gauges.
//
// Reports are written to a node-exporter textfile rather than served, so the
// engine stays free of network I/O.
package metrics

import (
	"fmt"
	"strconv"

	"manifest-ops/internal/stats"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "manifest_ops"

// Exporter holds one gauge family per report section on a private registry.
type Exporter struct {
	registry *prometheus.Registry

	records       *prometheus.GaugeVec
	operator      *prometheus.GaugeVec
	shiftTotal    *prometheus.GaugeVec
	shiftDone     *prometheus.GaugeVec
	leadTime      *prometheus.GaugeVec
	leadTimePairs *prometheus.GaugeVec
	hourly        *prometheus.GaugeVec
}

// NewExporter creates an exporter with all collectors registered.
func NewExporter() *Exporter {
	e := &Exporter{
		registry: prometheus.NewRegistry(),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Manifest records by scope (total, in_window, unreferenced).",
		}, []string{"scope"}),
		operator: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "operator_manifests",
			Help:      "Manifests handled per ranked operator in the window.",
		}, []string{"operator", "rank"}),
		shiftTotal: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "shift_manifests",
			Help:      "Manifests received per shift in the window.",
		}, []string{"shift"}),
		shiftDone: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "shift_manifests_completed",
			Help:      "Delivered manifests received per shift in the window.",
		}, []string{"shift"}),
		leadTime: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lead_time_minutes",
			Help:      "Mean minutes between successive milestones.",
		}, []string{"interval"}),
		leadTimePairs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "lead_time_samples",
			Help:      "Manifests that had both endpoints of the interval.",
		}, []string{"interval"}),
		hourly: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "hourly_arrivals",
			Help:      "Manifests received per local hour of day.",
		}, []string{"hour"}),
	}

	e.registry.MustRegister(e.records, e.operator, e.shiftTotal, e.shiftDone, e.leadTime, e.leadTimePairs, e.hourly)
	return e
}

// Registry exposes the underlying registry for gathering.
func (e *Exporter) Registry() *prometheus.Registry {
	return e.registry
}

// Observe replaces every gauge with the values of r.
func (e *Exporter) Observe(r stats.Report) {
	// Operators drop out of the ranking between reports; stale series must go.
	e.operator.Reset()

	e.records.WithLabelValues("total").Set(float64(r.TotalRecords))
	e.records.WithLabelValues("in_window").Set(float64(r.InWindow))
	e.records.WithLabelValues("unreferenced").Set(float64(r.Unreferenced))

	for i, oc := range r.Ranking {
		e.operator.WithLabelValues(oc.Operator, strconv.Itoa(i+1)).Set(float64(oc.Count))
	}

	for _, s := range r.Shifts {
		label := strconv.Itoa(s.Shift)
		e.shiftTotal.WithLabelValues(label).Set(float64(s.Total))
		e.shiftDone.WithLabelValues(label).Set(float64(s.Completed))
	}

	for name, m := range map[string]stats.LeadTimeMetric{
		"wait":       r.LeadTimes.Wait,
		"processing": r.LeadTimes.Processing,
		"release":    r.LeadTimes.Release,
	} {
		e.leadTime.WithLabelValues(name).Set(m.MeanMinutes)
		e.leadTimePairs.WithLabelValues(name).Set(float64(m.Count))
	}

	for _, b := range r.Hourly.Buckets {
		e.hourly.WithLabelValues(fmt.Sprintf("%02d", b.Hour)).Set(float64(b.Count))
	}
}

// WriteTextfile atomically writes the current gauges in the text exposition format.
func (e *Exporter) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, e.registry); err != nil {
		return fmt.Errorf("failed to write metrics textfile: %w", err)
	}
	return nil
}
