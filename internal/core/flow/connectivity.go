package flow

import "github.com/antchfx/xmlquery"

// Connection kinds that carry outbound module references.
var connectionKinds = []string{"ascendants", "exceptionalDescendant", "singleDescendant"}

// Module is one node of the flow graph.
type Module struct {
	ID       string
	Name     string
	Outbound []string

	node *xmlquery.Node
}

// Disconnected reports whether every outbound reference of the module points back
// at the module itself. A module with no outbound references is not disconnected.
func (m Module) Disconnected() bool {
	return IsDisconnected(m.ID, m.Outbound)
}

// IsDisconnected applies the self-loop rule to a module id and its outbound refs.
func IsDisconnected(moduleID string, outbound []string) bool {
	if len(outbound) == 0 {
		return false
	}
	for _, ref := range outbound {
		if ref != moduleID {
			return false
		}
	}
	return true
}

// outboundRefs collects the module's references across all connection kinds,
// kind by kind in declaration order. Empty references are dropped.
func outboundRefs(node *xmlquery.Node) []string {
	var refs []string
	for _, kind := range connectionKinds {
		for _, c := range children(node, kind) {
			if ref := trimmedText(c); ref != "" {
				refs = append(refs, ref)
			}
		}
	}
	return refs
}
