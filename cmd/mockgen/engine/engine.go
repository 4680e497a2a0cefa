package engine

import (
	"bufio"
	"encoding/json"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"manifest-ops/internal/manifest"

	"gopkg.in/yaml.v3"
)

type GeneratorConfig struct {
	Scenario     string // "steady", "rush" or "backlog"
	Distribution string // "uniform" or "weibull"
	Count        int
	Operators    []string
	Now          time.Time
	Location     *time.Location
	Seed         int64
}

var defaultOperators = []string{"ANA", "BRUNO", "CARLA", "DIEGO", "ELISA", "FABIO", "GABRIELA", "HUGO"}

const positionalLayout = "02/01/2006, 15:04"

// Generate produces manifests received over the 24 hours before cfg.Now.
// Timestamps deliberately mix ISO-8601, positional and sentinel notations.
func Generate(cfg GeneratorConfig) []manifest.Record {
	if cfg.Now.IsZero() {
		cfg.Now = time.Now()
	}
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if len(cfg.Operators) == 0 {
		cfg.Operators = defaultOperators
	}
	rng := rand.New(rand.NewSource(cfg.Seed))
	now := cfg.Now.In(cfg.Location)

	records := make([]manifest.Record, 0, cfg.Count)
	for i := 0; i < cfg.Count; i++ {
		arrival := now.Add(-time.Duration(rng.Float64()*24*60) * time.Minute)
		if cfg.Scenario == "rush" && rng.Float64() < 0.5 {
			// Half of the volume lands in the first two hours of the morning shift
			base := time.Date(now.Year(), now.Month(), now.Day(), 6, 0, 0, 0, cfg.Location)
			if base.After(now) {
				base = base.AddDate(0, 0, -1)
			}
			arrival = base.Add(time.Duration(rng.Intn(120)) * time.Minute)
			if arrival.After(now) {
				arrival = now
			}
		}

		// 1. Sample interval lengths in minutes
		wait := sample(rng, cfg.Distribution, 5, 40)
		processing := sample(rng, cfg.Distribution, 30, 150)
		release := sample(rng, cfg.Distribution, 10, 60)
		if cfg.Scenario == "backlog" {
			wait *= 6
		}

		started := arrival.Add(minutes(wait))
		completed := started.Add(minutes(processing))
		signed := completed.Add(minutes(release))

		// 2. Derive status from the milestones already reached
		r := manifest.Record{Status: manifest.StatusReceived, StartedAt: manifest.NoValue, CompletedAt: manifest.NoValue, CounterpartySignedAt: manifest.NoValue}
		r.ReceivedAt = formatMixed(rng, arrival)
		if started.Before(now) {
			r.Status = manifest.StatusStarted
			r.StartedAt = formatMixed(rng, started)
			r.ResponsibleOperator = cfg.Operators[rng.Intn(len(cfg.Operators))]
		}
		if completed.Before(now) {
			r.Status = manifest.StatusCompleted
			r.CompletedAt = formatMixed(rng, completed)
		}
		if signed.Before(now) {
			r.Status = manifest.StatusDelivered
			r.CounterpartySignedAt = formatMixed(rng, signed)
		}

		// 3. A few manifests are only known by their pull time
		if rng.Float64() < 0.05 {
			r.PulledAt = r.ReceivedAt
			r.ReceivedAt = ""
		}

		records = append(records, r)
	}

	return records
}

func sample(rng *rand.Rand, distribution string, low, high float64) float64 {
	if distribution == "weibull" {
		return low + weibullSample(rng, 1.5, (high-low)/2)
	}
	return low + rng.Float64()*(high-low)
}

func weibullSample(rng *rand.Rand, k, lambda float64) float64 {
	u := rng.Float64()
	if u == 0 {
		u = 0.0001
	}
	// X = lambda * (-ln(1-u))^(1/k)
	return lambda * math.Pow(-math.Log(1.0-u), 1.0/k)
}

func minutes(m float64) time.Duration {
	return time.Duration(m * float64(time.Minute))
}

func formatMixed(rng *rand.Rand, t time.Time) string {
	switch rng.Intn(3) {
	case 0:
		return t.Format(time.RFC3339)
	case 1:
		return t.Format("2006-01-02T15:04:05")
	default:
		return t.Format(positionalLayout)
	}
}

// Save writes the records as JSON Lines or YAML, chosen by format.
func Save(outDir, name, format string, records []manifest.Record) (string, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", err
	}

	ext := "jsonl"
	if format == "yaml" {
		ext = "yaml"
	}
	path := filepath.Join(outDir, fmt.Sprintf("%s.%s", name, ext))

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	if format == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return "", err
		}
		if err := enc.Close(); err != nil {
			return "", err
		}
	} else {
		enc := json.NewEncoder(w)
		for _, r := range records {
			if err := enc.Encode(r); err != nil {
				return "", err
			}
		}
	}
	if err := w.Flush(); err != nil {
		return "", err
	}
	return path, f.Close()
}
