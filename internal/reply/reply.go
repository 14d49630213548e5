// Package reply renders the conversational messages returned to the agent
// platform. Templates are authored in Markdown; text channels only display
// plain text, so formatting is stripped once when a Set is compiled.
package reply

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Kind identifies which outcome a reply answers.
type Kind string

const (
	Greeting  Kind = "greeting"
	Refusal   Kind = "refusal"
	ValidName Kind = "valid_name"
	Invalid   Kind = "invalid"
)

// Kinds lists every reply a Set must provide.
var Kinds = []Kind{Greeting, Refusal, ValidName, Invalid}

// Data is the template context.
type Data struct {
	Name    string
	Product string
}

// Set is a compiled group of reply templates.
type Set struct {
	tmpls map[Kind]*template.Template
	plain map[Kind]string
}

// Compile strips Markdown from each source, parses it as a text/template and
// test-renders it so that unknown fields fail here rather than per request.
func Compile(sources map[Kind]string) (*Set, error) {
	s := &Set{
		tmpls: make(map[Kind]*template.Template, len(Kinds)),
		plain: make(map[Kind]string, len(Kinds)),
	}
	for _, k := range Kinds {
		src, ok := sources[k]
		if !ok || strings.TrimSpace(src) == "" {
			return nil, fmt.Errorf("reply %s: missing template", k)
		}
		plain := PlainText(src)
		tmpl, err := template.New(string(k)).Parse(plain)
		if err != nil {
			return nil, fmt.Errorf("reply %s: %w", k, err)
		}
		if err := tmpl.Execute(&bytes.Buffer{}, Data{Name: "Test", Product: "Test"}); err != nil {
			return nil, fmt.Errorf("reply %s: %w", k, err)
		}
		s.tmpls[k] = tmpl
		s.plain[k] = plain
	}
	return s, nil
}

// Render executes the template for k. Templates were test-rendered by
// Compile, so a failure here falls back to the unexpanded text.
func (s *Set) Render(k Kind, d Data) string {
	tmpl, ok := s.tmpls[k]
	if !ok {
		return ""
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return s.plain[k]
	}
	return buf.String()
}

// PlainText renders Markdown to its visible text. Blocks are separated by a
// blank line; soft line breaks become spaces.
func PlainText(src string) string {
	source := []byte(src)
	doc := goldmark.New().Parser().Parse(text.NewReader(source))

	var blocks []string
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		collectBlocks(n, source, &blocks)
	}
	return strings.Join(blocks, "\n\n")
}

func collectBlocks(n ast.Node, source []byte, out *[]string) {
	switch n.Kind() {
	case ast.KindHTMLBlock, ast.KindThematicBreak:
		return
	case ast.KindCodeBlock, ast.KindFencedCodeBlock:
		var buf bytes.Buffer
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(source))
		}
		if t := strings.TrimSpace(buf.String()); t != "" {
			*out = append(*out, t)
		}
		return
	}

	if first := n.FirstChild(); first != nil && first.Type() == ast.TypeInline {
		var sb strings.Builder
		writeInline(n, source, &sb)
		if t := strings.TrimSpace(sb.String()); t != "" {
			*out = append(*out, t)
		}
		return
	}
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		collectBlocks(c, source, out)
	}
}

func writeInline(n ast.Node, source []byte, sb *strings.Builder) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			sb.Write(node.Segment.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				sb.WriteByte(' ')
			}
		case *ast.String:
			sb.Write(node.Value)
		case *ast.AutoLink:
			sb.Write(node.Label(source))
		case *ast.RawHTML:
			// Inline HTML is not shown on text channels.
		default:
			writeInline(c, source, sb)
		}
	}
}
