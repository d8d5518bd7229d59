package app

import (
	"fmt"
	"strings"
)

// flowDoc builds a minimal flow document with one play module per prompt name.
// Prompt IDs are the names lower-cased.
func flowDoc(promptNames ...string) string {
	var modules strings.Builder
	for i, name := range promptNames {
		fmt.Fprintf(&modules, `<play><moduleId>M%d</moduleId><moduleName>Module%d</moduleName>`+
			`<singleDescendant>END</singleDescendant>`+
			`<promptData><prompt><id>%s</id><name>%s</name></prompt></promptData></play>`,
			i, i, strings.ToLower(name), name)
	}
	return "<ivrScript><modules>" + modules.String() + "</modules></ivrScript>"
}

const brokenDoc = "<ivrScript><modules><play>"
