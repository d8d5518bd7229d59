package flow

import "sort"

// Deduplicate reduces classified prompts to one record per prompt id. Records are
// stable-sorted by name first, so the survivor for each id is the first one seen in
// name order and ties keep scan order. The input slice is not modified.
func Deduplicate(prompts []ClassifiedPrompt) []ClassifiedPrompt {
	sorted := make([]ClassifiedPrompt, len(prompts))
	copy(sorted, prompts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Name < sorted[j].Name
	})

	seen := make(map[string]struct{}, len(sorted))
	unique := make([]ClassifiedPrompt, 0, len(sorted))
	for _, p := range sorted {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		unique = append(unique, p)
	}
	return unique
}
