package stats

import "slices"

// DefaultRankingLimit is how many operators the workload ranking keeps.
const DefaultRankingLimit = 7

// RankOperators counts manifests per responsible operator, ordered by count
// descending. Equal counts keep the order in which operators were first seen.
// Manifests without an operator are ignored. A non-positive limit keeps everyone.
func RankOperators(items []StampedManifest, limit int) []OperatorCount {
	index := make(map[string]int)
	ranking := make([]OperatorCount, 0)

	for _, m := range items {
		op := m.Record.ResponsibleOperator
		if op == "" {
			continue
		}
		if i, ok := index[op]; ok {
			ranking[i].Count++
			continue
		}
		index[op] = len(ranking)
		ranking = append(ranking, OperatorCount{Operator: op, Count: 1})
	}

	slices.SortStableFunc(ranking, func(a, b OperatorCount) int {
		return b.Count - a.Count
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking
}
