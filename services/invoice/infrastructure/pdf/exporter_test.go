package pdf

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/onyxtech/onyx-invoice/services/invoice/domain/document"
	"github.com/onyxtech/onyx-invoice/services/invoice/domain/models"
)

func testDocument(t *testing.T, currency models.Currency, descriptions ...string) *document.Document {
	t.Helper()
	s := models.NewInvoiceState(time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC), nil)
	s = s.WithInvoiceNumber("INV-7").WithCurrency(currency)
	s, _ = s.SetUnitPrice("1250.5")
	for i, d := range descriptions {
		if i > 0 {
			s = s.AddItem()
		}
		s = s.UpdateItemDescription(s.Items[i].ID, d)
	}
	if len(descriptions) == 0 {
		s = s.RemoveItem(s.Items[0].ID)
	}
	buyer := []models.CompanyRecord{{ID: "1", Name: "TOYOTA CAUCASUS LLC", TaxID: "404567890", Address: "Tbilisi"}}
	s = s.WithSelectedCompany("1")
	doc, err := document.Compose(s, buyer, models.DefaultSupplier())
	if err != nil {
		t.Fatalf("compose: %v", err)
	}
	return doc
}

func export(t *testing.T, e *Exporter, doc *document.Document) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := e.Write(&buf, doc); err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf.Bytes()
}

var infoDates = regexp.MustCompile(`/(CreationDate|ModDate) \([^)]*\)`)

func TestExporter_Write(t *testing.T) {
	e, err := NewExporter(Options{})
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}

	tests := []struct {
		name     string
		currency models.Currency
		items    []string
	}{
		{"single item", models.USD, []string{"Consulting services"}},
		{"several items", models.USD, []string{"Design", "Development", strings.Repeat("very long description ", 20)}},
		{"lari fallback", models.GEL, []string{"მომსახურება"}},
		{"no items", models.USD, nil},
		{"unbroken word", models.USD, []string{strings.Repeat("x", 200)}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := export(t, e, testDocument(t, tt.currency, tt.items...))
			if !bytes.HasPrefix(out, []byte("%PDF-")) {
				t.Fatalf("output is not a PDF: %q", out[:min(len(out), 16)])
			}
			if !bytes.Contains(out, []byte("%%EOF")) {
				t.Fatal("output has no EOF marker")
			}
		})
	}
}

func TestExporter_StableOutput(t *testing.T) {
	e, err := NewExporter(Options{})
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	doc := testDocument(t, models.USD, "Consulting services", "Support")

	first := infoDates.ReplaceAll(export(t, e, doc), nil)
	second := infoDates.ReplaceAll(export(t, e, doc), nil)
	if !bytes.Equal(first, second) {
		t.Fatal("exporting the same document twice produced different files")
	}
}

func TestExporter_Pagination(t *testing.T) {
	e, err := NewExporter(Options{})
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}

	tests := []struct {
		name      string
		items     int
		wantPages int
	}{
		{"fits one page", 3, 1},
		{"long table", 60, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			descriptions := make([]string, tt.items)
			for i := range descriptions {
				descriptions[i] = fmt.Sprintf("Service line %d", i+1)
			}
			doc := testDocument(t, models.USD, descriptions...)

			p := e.newPage(doc)
			p.pdf.SetCompression(false)
			bottom := p.draw(doc)

			if pages := p.pdf.PageCount(); pages < tt.wantPages || (tt.wantPages == 1 && pages != 1) {
				t.Fatalf("got %d pages, want %d", pages, tt.wantPages)
			}
			if bottom > pageBottom {
				t.Fatalf("footer ends at %.1fmm, below the %.1fmm limit", bottom, pageBottom)
			}

			var buf bytes.Buffer
			if err := p.pdf.Output(&buf); err != nil {
				t.Fatalf("output: %v", err)
			}
			for _, want := range []string{doc.Labels.GrandTotal, "$ " + doc.Total, descriptions[tt.items-1]} {
				if !bytes.Contains(buf.Bytes(), []byte(want)) {
					t.Errorf("pdf is missing %q", want)
				}
			}
		})
	}
}

func TestNewExporter_MissingFont(t *testing.T) {
	if _, err := NewExporter(Options{FontPath: "does-not-exist.ttf"}); err == nil {
		t.Fatal("expected an error for a missing font file")
	}
}

func TestNewExporter_NoFonts(t *testing.T) {
	e, err := NewExporter(Options{BoldFontPath: "ignored.ttf"})
	if err != nil {
		t.Fatalf("new exporter: %v", err)
	}
	if e.UnicodeFonts() {
		t.Fatal("expected core fonts without a regular font path")
	}
}

func TestWrap(t *testing.T) {
	e, _ := NewExporter(Options{})
	p := e.newPage(testDocument(t, models.USD, "x"))
	p.font("", 8)

	tests := []struct {
		name      string
		text      string
		wantLines int
	}{
		{"empty", "", 1},
		{"short", "Consulting", 1},
		{"newline", "first\nsecond", 2},
		{"long", strings.Repeat("word ", 60), 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := p.wrap(tt.text, 74)
			if len(lines) < tt.wantLines {
				t.Fatalf("got %d lines, want at least %d: %q", len(lines), tt.wantLines, lines)
			}
			for _, ln := range lines {
				if w := p.pdf.GetStringWidth(ln); w > 74 {
					t.Errorf("line %q is %.1fmm wide", ln, w)
				}
			}
			if tt.name != "long" && len(lines) != tt.wantLines {
				t.Fatalf("got %d lines, want %d", len(lines), tt.wantLines)
			}
		})
	}
}
