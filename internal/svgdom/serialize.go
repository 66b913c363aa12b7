package svgdom

import (
	"io"
	"strings"
)

var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

var textEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// OuterMarkup serializes the element and its subtree to SVG text.
func (e *Element) OuterMarkup() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

// Serialize writes the whole document to w as SVG text.
func (d *Document) Serialize(w io.Writer) error {
	_, err := io.WriteString(w, d.root.OuterMarkup())
	return err
}

// Markup returns the whole document as SVG text.
func (d *Document) Markup() string {
	return d.root.OuterMarkup()
}

func (e *Element) writeTo(sb *strings.Builder) {
	sb.WriteByte('<')
	sb.WriteString(e.Tag)
	for _, a := range e.attrs {
		sb.WriteByte(' ')
		sb.WriteString(a.Name)
		sb.WriteString(`="`)
		sb.WriteString(attrEscaper.Replace(a.Value))
		sb.WriteByte('"')
	}

	text := strings.TrimSpace(e.Text)
	if len(e.children) == 0 && text == "" {
		sb.WriteString("/>")
		return
	}

	sb.WriteByte('>')
	if text != "" {
		sb.WriteString(textEscaper.Replace(text))
	}
	for _, c := range e.children {
		c.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteByte('>')
}
