// Package flow contains the prompt extraction engine for IVR flow documents.
// This is part of the Functional Core - no I/O, only pure functions over a
// parsed document.
package flow

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"
)

// ErrNoRootElement is wrapped by ParseError when the input holds no element at all.
var ErrNoRootElement = errors.New("document has no root element")

// ErrContentOutsideRoot is wrapped by ParseError when a second element or
// non-whitespace text follows the root element.
var ErrContentOutsideRoot = errors.New("junk after document element")

// ParseError reports that a flow document is not well-formed XML.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse flow document: %v", e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	modulesExpr       = xpath.MustCompile("//modules/*")
	announcementsExpr = xpath.MustCompile("//announcements")
)

// Document is a parsed flow document. It is read-only once parsed.
type Document struct {
	root *xmlquery.Node
}

// Parse parses raw flow XML into a Document.
func Parse(data []byte) (*Document, error) {
	root, err := xmlquery.Parse(bytes.NewReader(data))
	if err != nil {
		return nil, &ParseError{Err: err}
	}
	if err := checkTopLevel(root); err != nil {
		return nil, &ParseError{Err: err}
	}
	return &Document{root: root}, nil
}

// Modules returns every node directly under a <modules> element, in document order.
// Modules without a name are skipped.
func (d *Document) Modules() []Module {
	var modules []Module
	for _, node := range xmlquery.QuerySelectorAll(d.root, modulesExpr) {
		if node.Type != xmlquery.ElementNode {
			continue
		}
		name := childText(node, "moduleName")
		if name == "" {
			continue
		}
		modules = append(modules, Module{
			ID:       childText(node, "moduleId"),
			Name:     name,
			Outbound: outboundRefs(node),
			node:     node,
		})
	}
	return modules
}

// checkTopLevel requires exactly one element at the top of the document, with
// nothing but whitespace, comments and declarations around it. Content ahead of
// the first element is attached as a sibling of the document node.
func checkTopLevel(doc *xmlquery.Node) error {
	for n := doc.NextSibling; n != nil; n = n.NextSibling {
		if hasText(n) {
			return ErrContentOutsideRoot
		}
	}

	elements := 0
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		switch {
		case c.Type == xmlquery.ElementNode:
			elements++
			if elements > 1 {
				return ErrContentOutsideRoot
			}
		case hasText(c):
			return ErrContentOutsideRoot
		}
	}
	if elements == 0 {
		return ErrNoRootElement
	}
	return nil
}

func hasText(n *xmlquery.Node) bool {
	return (n.Type == xmlquery.TextNode || n.Type == xmlquery.CharDataNode) &&
		strings.TrimSpace(n.Data) != ""
}

// child returns the first direct element child of n named name.
func child(n *xmlquery.Node, name string) *xmlquery.Node {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			return c
		}
	}
	return nil
}

// children returns every direct element child of n named name.
func children(n *xmlquery.Node, name string) []*xmlquery.Node {
	var out []*xmlquery.Node
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode && c.Data == name {
			out = append(out, c)
		}
	}
	return out
}

// childText returns the trimmed text of the named child, or "" when absent.
func childText(n *xmlquery.Node, name string) string {
	c := child(n, name)
	if c == nil {
		return ""
	}
	return strings.TrimSpace(c.InnerText())
}
