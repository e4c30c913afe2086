package document

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/invoice.html.tmpl"))

// WriteHTML renders doc as a standalone HTML page sized for A4 printing.
func WriteHTML(w io.Writer, doc *Document) error {
	if err := pageTemplate.ExecuteTemplate(w, "invoice.html.tmpl", doc); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}

// RenderHTML is WriteHTML into a byte slice. Identical documents always
// produce identical bytes.
func RenderHTML(doc *Document) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteHTML(&buf, doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
