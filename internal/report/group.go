package report

import (
	"sort"

	"tfa/internal/domain"
)

// GroupByCategory groups failures by category tag, ordered by descending
// member count. The sort is stable and groups are created in discovery order,
// so equal-sized categories keep their first-encountered order and reruns
// produce identical indexes.
func GroupByCategory(failures []domain.ClassifiedFailure) []domain.CategoryGroup {
	index := make(map[domain.CategoryTag]int)
	var groups []domain.CategoryGroup

	for _, f := range failures {
		i, ok := index[f.Category]
		if !ok {
			i = len(groups)
			index[f.Category] = i
			groups = append(groups, domain.CategoryGroup{Category: f.Category})
		}
		groups[i].Failures = append(groups[i].Failures, f)
	}

	sort.SliceStable(groups, func(a, b int) bool {
		return len(groups[a].Failures) > len(groups[b].Failures)
	})
	return groups
}
