// Package extract turns catalog HTML fragments into plain text.
//
// Extraction is a pipeline of pure functions:
//
//	raw, _ := extract.Field(product, "specification")
//	fragment, err := extract.Sections(raw, extract.RefinedSections)
//	text := extract.Render(fragment, extract.ModeText)
//
// No stage keeps state between calls.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"specsim/internal/models"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Mode selects how a fragment is rendered.
type Mode int

const (
	// ModeRaw returns the input untouched.
	ModeRaw Mode = iota
	// ModePretty re-serializes the fragment with one node per line.
	ModePretty
	// ModeText returns the stripped text nodes joined by newlines.
	ModeText
)

func (m Mode) String() string {
	switch m {
	case ModeRaw:
		return "raw"
	case ModePretty:
		return "pretty"
	case ModeText:
		return "text"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// RefinedSections are the specification lists that carry the useful product facts.
var RefinedSections = []string{"general", "Ports", "Media_Formats"}

// ErrSectionNotFound is matched by every *SectionNotFoundError.
var ErrSectionNotFound = errors.New("section not found")

// SectionNotFoundError reports a section id missing from a fragment.
type SectionNotFoundError struct {
	ID string
}

func (e *SectionNotFoundError) Error() string {
	return fmt.Sprintf("section %q not found", e.ID)
}

func (e *SectionNotFoundError) Is(target error) bool {
	return target == ErrSectionNotFound
}

// Field returns the raw value of a product field.
func Field(p models.Product, key string) (any, error) {
	return p.Field(key)
}

// Render renders raw in the given mode. Values that are not strings cannot
// be parsed as HTML and are returned in their literal form.
func Render(raw any, mode Mode) string {
	s, ok := asString(raw)
	if !ok {
		return literal(raw)
	}

	switch mode {
	case ModePretty:
		root, err := parseFragment(s)
		if err != nil {
			return s
		}
		return prettify(root)
	case ModeText:
		root, err := parseFragment(s)
		if err != nil {
			return s
		}
		return strings.Join(strippedStrings(root), "\n")
	}
	return s
}

// Sections concatenates the pretty-printed elements whose id attribute
// matches each of ids, in the order given. A missing id is an error.
func Sections(raw any, ids []string) (string, error) {
	s, ok := asString(raw)
	if !ok {
		if len(ids) == 0 {
			return "", nil
		}
		return "", &SectionNotFoundError{ID: ids[0]}
	}

	root, err := parseFragment(s)
	if err != nil {
		return "", fmt.Errorf("failed to parse fragment: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)
	withID := doc.Find("[id]")

	var b strings.Builder
	for _, id := range ids {
		section := withID.FilterFunction(func(_ int, sel *goquery.Selection) bool {
			value, _ := sel.Attr("id")
			return value == id
		}).First()
		if section.Length() == 0 {
			return "", &SectionNotFoundError{ID: id}
		}
		writePretty(&b, section.Nodes[0], 0)
	}
	return b.String(), nil
}

func asString(raw any) (string, bool) {
	switch v := raw.(type) {
	case string:
		return v, true
	case []byte:
		return string(v), true
	}
	return "", false
}

func literal(raw any) string {
	if raw == nil {
		return ""
	}
	return fmt.Sprint(raw)
}

// parseFragment parses s in a <body> context and hangs the resulting nodes
// off a synthetic document node, so no <html>/<head> wrapper appears.
func parseFragment(s string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(s), context)
	if err != nil {
		return nil, err
	}
	root := &html.Node{Type: html.DocumentNode}
	for _, n := range nodes {
		root.AppendChild(n)
	}
	return root, nil
}

func strippedStrings(n *html.Node) []string {
	var out []string
	var traverse func(*html.Node)
	traverse = func(n *html.Node) {
		if n.Type == html.TextNode {
			if s := strings.TrimSpace(n.Data); s != "" {
				out = append(out, s)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			traverse(c)
		}
	}
	traverse(n)
	return out
}
