package extract

import (
	"strings"

	"golang.org/x/net/html"
)

var voidElements = map[string]struct{}{
	"area": {}, "base": {}, "br": {}, "col": {}, "embed": {}, "hr": {}, "img": {},
	"input": {}, "keygen": {}, "link": {}, "meta": {}, "param": {}, "source": {},
	"track": {}, "wbr": {},
}

// rawTextElements hold text that must not be entity-escaped. The parser
// runs with scripting enabled, so noscript content is raw text as well.
var rawTextElements = map[string]struct{}{
	"script": {}, "style": {}, "xmp": {}, "iframe": {}, "noembed": {}, "noframes": {},
	"noscript": {},
}

func prettify(root *html.Node) string {
	var b strings.Builder
	writePretty(&b, root, 0)
	return b.String()
}

// writePretty writes n with one tag or text node per line, indented one
// space per nesting level. Whitespace-only text nodes are dropped.
func writePretty(b *strings.Builder, n *html.Node, depth int) {
	indent := strings.Repeat(" ", depth)

	switch n.Type {
	case html.DocumentNode:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writePretty(b, c, depth)
		}
	case html.TextNode:
		s := strings.TrimSpace(n.Data)
		if s == "" {
			return
		}
		if n.Parent != nil && n.Parent.Type == html.ElementNode {
			if _, raw := rawTextElements[n.Parent.Data]; !raw {
				s = html.EscapeString(s)
			}
		} else {
			s = html.EscapeString(s)
		}
		b.WriteString(indent)
		b.WriteString(s)
		b.WriteByte('\n')
	case html.CommentNode:
		b.WriteString(indent)
		b.WriteString("<!--")
		b.WriteString(n.Data)
		b.WriteString("-->\n")
	case html.DoctypeNode:
		b.WriteString(indent)
		b.WriteString("<!DOCTYPE ")
		b.WriteString(n.Data)
		b.WriteString(">\n")
	case html.ElementNode:
		b.WriteString(indent)
		b.WriteByte('<')
		b.WriteString(n.Data)
		for _, a := range n.Attr {
			b.WriteByte(' ')
			if a.Namespace != "" {
				b.WriteString(a.Namespace)
				b.WriteByte(':')
			}
			b.WriteString(a.Key)
			b.WriteString(`="`)
			b.WriteString(html.EscapeString(a.Val))
			b.WriteByte('"')
		}
		b.WriteString(">\n")
		if _, void := voidElements[n.Data]; void {
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			writePretty(b, c, depth+1)
		}
		b.WriteString(indent)
		b.WriteString("</")
		b.WriteString(n.Data)
		b.WriteString(">\n")
	}
}
