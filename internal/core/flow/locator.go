package flow

import (
	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// Shape identifies one of the nesting patterns a prompt reference can appear under.
type Shape int

const (
	ShapeFilePrompt Shape = iota
	ShapeAnnouncement
	ShapeNestedFilePrompt
	ShapeCompoundPrompt
	ShapePromptData
)

// Shapes lists every recognized shape in scan order.
var Shapes = []Shape{
	ShapeFilePrompt,
	ShapeAnnouncement,
	ShapeNestedFilePrompt,
	ShapeCompoundPrompt,
	ShapePromptData,
}

var shapePaths = map[Shape]string{
	ShapeFilePrompt:       ".//filePrompt/promptData/prompt",
	ShapeAnnouncement:     ".//announcements/prompt",
	ShapeNestedFilePrompt: ".//prompt/filePrompt/promptData/prompt",
	ShapeCompoundPrompt:   ".//compoundPrompt/filePrompt/promptData/prompt",
	ShapePromptData:       ".//promptData/prompt",
}

var shapeExprs = compileShapes()

func compileShapes() map[Shape]*xpath.Expr {
	exprs := make(map[Shape]*xpath.Expr, len(shapePaths))
	for shape, path := range shapePaths {
		exprs[shape] = xpath.MustCompile(path)
	}
	return exprs
}

// Path returns the relative path expression matched by the shape.
func (s Shape) Path() string {
	return shapePaths[s]
}

func (s Shape) String() string {
	switch s {
	case ShapeFilePrompt:
		return "filePrompt"
	case ShapeAnnouncement:
		return "announcement"
	case ShapeNestedFilePrompt:
		return "nestedFilePrompt"
	case ShapeCompoundPrompt:
		return "compoundPrompt"
	case ShapePromptData:
		return "promptData"
	default:
		return "unknown"
	}
}

// PromptReference is one prompt citation found under a module.
type PromptReference struct {
	ID     string
	Name   string
	Module string
	Shape  Shape
}

// AudioFile returns the expected audio file name for the prompt.
func (r PromptReference) AudioFile() string {
	return AudioFileName(r.Name)
}

// AudioFileName derives the audio file name for a prompt name.
func AudioFileName(promptName string) string {
	return promptName + ".wav"
}

// LocatePrompts returns every usable prompt reference under the module, trying
// each shape in turn. Shapes overlap, so the same element may be returned more
// than once; callers deduplicate.
func LocatePrompts(m Module) []PromptReference {
	if m.node == nil {
		return nil
	}
	var refs []PromptReference
	for _, shape := range Shapes {
		for _, node := range xmlquery.QuerySelectorAll(m.node, shapeExprs[shape]) {
			ref, ok := promptFromNode(node, m.Name, shape)
			if !ok {
				continue
			}
			refs = append(refs, ref)
		}
	}
	return refs
}

// promptFromNode normalizes a prompt element. Elements missing an id or a name are
// partial fragments and are ignored.
func promptFromNode(node *xmlquery.Node, module string, shape Shape) (PromptReference, bool) {
	id := childText(node, "id")
	name := childText(node, "name")
	if id == "" || name == "" {
		return PromptReference{}, false
	}
	return PromptReference{
		ID:     id,
		Name:   name,
		Module: module,
		Shape:  shape,
	}, true
}
