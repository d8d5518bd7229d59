package flow

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

// Announcements maps a prompt id to its explicit enabled flag.
type Announcements map[string]bool

// Lookup returns the enabled flag for a prompt id and whether one was declared.
func (a Announcements) Lookup(promptID string) (enabled bool, ok bool) {
	enabled, ok = a[promptID]
	return enabled, ok
}

// Announcements scans every announcement block in the document. Blocks are
// applied in document order and later blocks overwrite earlier ones for the same
// prompt id. Blocks without an enabled flag or a prompt id are ignored.
func (d *Document) Announcements() Announcements {
	status := make(Announcements)
	for _, block := range xmlquery.QuerySelectorAll(d.root, announcementsExpr) {
		enabledNode := child(block, "enabled")
		promptNode := child(block, "prompt")
		if enabledNode == nil || promptNode == nil {
			continue
		}
		id := childText(promptNode, "id")
		if id == "" {
			continue
		}
		status[id] = strings.EqualFold(trimmedText(enabledNode), "true")
	}
	return status
}

func trimmedText(n *xmlquery.Node) string {
	return strings.TrimSpace(n.InnerText())
}
