// Package campaign contains the pure logic that resolves campaign-to-flow
// associations against the set of flow files actually available.
package campaign

import (
	"fmt"
	"sort"
	"strings"
)

// Row is one raw association row. Either column may hold comma-separated values.
type Row struct {
	Campaign string
	FlowFile string
}

// Association links one campaign to one flow file.
type Association struct {
	Campaign string
	FlowFile string
}

// MissingAssociationError reports a campaign that references a flow file which is
// not available. It is reported in a Resolution, never returned as a failure.
type MissingAssociationError struct {
	Campaign string
	FlowFile string
}

func (e MissingAssociationError) Error() string {
	return fmt.Sprintf("campaign %q references unavailable flow file %q", e.Campaign, e.FlowFile)
}

// Resolution partitions associations by flow file availability.
type Resolution struct {
	Available   []Association
	Unavailable []MissingAssociationError
}

// Campaigns returns the unique, sorted campaign names that have at least one
// available flow file.
func (r Resolution) Campaigns() []string {
	seen := make(map[string]struct{})
	var names []string
	for _, a := range r.Available {
		if _, ok := seen[a.Campaign]; ok {
			continue
		}
		seen[a.Campaign] = struct{}{}
		names = append(names, a.Campaign)
	}
	sort.Strings(names)
	return names
}

// FlowsFor returns the available flow files associated with a campaign, in
// association order without repeats.
func (r Resolution) FlowsFor(campaign string) []string {
	seen := make(map[string]struct{})
	var flows []string
	for _, a := range r.Available {
		if a.Campaign != campaign {
			continue
		}
		if _, ok := seen[a.FlowFile]; ok {
			continue
		}
		seen[a.FlowFile] = struct{}{}
		flows = append(flows, a.FlowFile)
	}
	return flows
}

// MissingFor returns the unavailable associations of a campaign.
func (r Resolution) MissingFor(campaign string) []MissingAssociationError {
	var missing []MissingAssociationError
	for _, m := range r.Unavailable {
		if m.Campaign == campaign {
			missing = append(missing, m)
		}
	}
	return missing
}

// Expand splits multi-value rows into one association per (campaign, flow file)
// pair. Blank values are dropped.
func Expand(rows []Row) []Association {
	var out []Association
	for _, row := range rows {
		for _, c := range SplitValues(row.Campaign) {
			for _, f := range SplitValues(row.FlowFile) {
				out = append(out, Association{Campaign: c, FlowFile: f})
			}
		}
	}
	return out
}

// Resolve expands rows and partitions the associations by whether their flow file
// is in the available set. Each association is resolved independently.
func Resolve(rows []Row, availableFlows map[string]struct{}) Resolution {
	var res Resolution
	for _, a := range Expand(rows) {
		if _, ok := availableFlows[a.FlowFile]; ok {
			res.Available = append(res.Available, a)
			continue
		}
		res.Unavailable = append(res.Unavailable, MissingAssociationError{
			Campaign: a.Campaign,
			FlowFile: a.FlowFile,
		})
	}
	return res
}

// SplitValues splits a comma-separated cell into trimmed, non-empty values.
func SplitValues(cell string) []string {
	var values []string
	for _, part := range strings.Split(cell, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}
