// Package sanitize cleans user text before it reaches the name pipeline.
//
// Web chat widgets forward rich text: markup, HTML entities, typographic
// apostrophes and decomposed accents. Text turns all of that into a single
// line of plain, NFC-composed text.
package sanitize

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

var apostrophes = strings.NewReplacer(
	"\u2019", "'", // right single quotation mark
	"\u2018", "'", // left single quotation mark
	"\u02bc", "'", // modifier letter apostrophe
)

// Text returns s with markup removed, entities decoded, apostrophes folded,
// Unicode composed (NFC) and whitespace collapsed to single spaces.
func Text(s string) string {
	if s == "" {
		return ""
	}
	if strings.ContainsAny(s, "<&") {
		s = stripMarkup(s)
	}
	s = apostrophes.Replace(s)
	s = norm.NFC.String(s)
	return strings.Join(strings.Fields(s), " ")
}

// stripMarkup keeps only the text nodes of s parsed as an HTML fragment.
func stripMarkup(s string) string {
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			buf.WriteString(n.Data)
		case html.ElementNode:
			switch n.Data {
			case "script", "style", "head":
				return
			case "br", "p", "div", "li", "td":
				// Block boundaries separate words.
				buf.WriteByte(' ')
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	return buf.String()
}
