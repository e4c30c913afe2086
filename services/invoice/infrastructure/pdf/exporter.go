// Package pdf draws invoice documents as A4 PDF files.
//
// The layout mirrors the HTML preview: header, the supplier and buyer blocks,
// the item table with merged amount cells, and the totals footer. Long item
// tables continue on further pages with the column headings repeated; the
// amounts stay in the first page's span and the footer follows the last row.
// Without a
// configured UTF-8 TrueType font the core Helvetica font is used, which only
// covers Windows-1252; other characters print as dots and the lari sign is
// spelled GEL.
package pdf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jung-kurt/gofpdf"

	"github.com/onyxtech/onyx-invoice/services/invoice/domain/document"
)

const (
	pageInset    = 15.0
	contentWidth = 210.0 - 2*pageInset
	pageBottom   = 297.0 - pageInset
	columnGap    = 12.0

	utf8Family = "InvoiceSans"
	coreFamily = "Helvetica"

	gelSign     = "₾"
	gelFallback = "GEL"
)

// item table column widths; they add up to contentWidth.
var columns = [4]float64{78, 34, 34, 34}

// Options selects the fonts. Both paths are optional; a bold path without a
// regular one is ignored.
type Options struct {
	FontPath     string
	BoldFontPath string
}

// Exporter implements the invoice export port with gofpdf.
type Exporter struct {
	regular []byte
	bold    []byte
}

// NewExporter loads the configured fonts once so every export is
// self-contained.
func NewExporter(opts Options) (*Exporter, error) {
	e := &Exporter{}
	if opts.FontPath == "" {
		return e, nil
	}
	regular, err := os.ReadFile(opts.FontPath)
	if err != nil {
		return nil, fmt.Errorf("read pdf font: %w", err)
	}
	e.regular, e.bold = regular, regular
	if opts.BoldFontPath != "" {
		bold, err := os.ReadFile(opts.BoldFontPath)
		if err != nil {
			return nil, fmt.Errorf("read pdf bold font: %w", err)
		}
		e.bold = bold
	}
	return e, nil
}

// UnicodeFonts reports whether a UTF-8 font is configured.
func (e *Exporter) UnicodeFonts() bool {
	return e.regular != nil
}

// Write draws doc and writes the PDF to w. The creation date is the invoice
// date and resource catalogs are sorted, so page content is stable across
// exports of the same document.
func (e *Exporter) Write(w io.Writer, doc *document.Document) error {
	p := e.newPage(doc)
	p.draw(doc)
	if err := p.pdf.Output(w); err != nil {
		return fmt.Errorf("write pdf: %w", err)
	}
	return nil
}

type page struct {
	pdf    *gofpdf.Fpdf
	family string
	tr     func(string) string
	symbol string
}

func (e *Exporter) newPage(doc *document.Document) *page {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetCatalogSort(true)
	pdf.SetCreationDate(doc.IssuedAt)
	pdf.SetTitle(doc.Labels.Title+" "+doc.InvoiceNumber, true)
	pdf.SetAuthor(doc.Supplier.Name, true)

	p := &page{pdf: pdf, symbol: doc.CurrencySymbol}
	if e.UnicodeFonts() {
		pdf.AddUTF8FontFromBytes(utf8Family, "", e.regular)
		pdf.AddUTF8FontFromBytes(utf8Family, "B", e.bold)
		p.family = utf8Family
		p.tr = func(s string) string { return s }
	} else {
		p.family = coreFamily
		latin := pdf.UnicodeTranslatorFromDescriptor("")
		p.tr = func(s string) string { return latin(strings.ReplaceAll(s, gelSign, gelFallback)) }
		if p.symbol == gelSign {
			p.symbol = gelFallback
		}
	}
	pdf.AddPage()
	return p
}

// draw lays out the whole document and returns the y position below the
// footer on the last page.
func (p *page) draw(doc *document.Document) float64 {
	p.header(doc)
	y := p.parties(doc, 52)
	y = p.items(doc, y+8)
	return p.totals(doc, y+8)
}

func (p *page) font(style string, size float64) {
	p.pdf.SetFont(p.family, style, size)
}

func (p *page) cell(x, y, w, h float64, text, align string) {
	p.pdf.SetXY(x, y)
	p.pdf.CellFormat(w, h, p.tr(text), "", 0, align, false, 0, "")
}

func (p *page) header(doc *document.Document) {
	pdf := p.pdf
	pdf.SetTextColor(0, 0, 0)
	p.font("B", 22)
	p.cell(pageInset, pageInset, 100, 10, doc.Labels.Title, "L")
	p.font("", 10)
	pdf.SetTextColor(75, 85, 99)
	p.cell(pageInset, pageInset+10, 100, 6, doc.Labels.Subtitle, "L")
	pdf.SetTextColor(0, 0, 0)

	meta := [][2]string{
		{doc.Labels.InvoiceNumber, doc.InvoiceNumber},
		{doc.Labels.Date, doc.Date},
		{doc.Labels.DueDate, doc.DueDate},
		{doc.Labels.Currency, doc.CurrencyCode},
	}
	x := pageInset + contentWidth - 70
	for i, m := range meta {
		y := pageInset + float64(i)*6
		p.font("B", 9)
		p.cell(x, y, 30, 6, m[0], "L")
		p.font("", 9)
		p.cell(x+30, y, 40, 6, m[1], "R")
	}
}

// parties draws the supplier and buyer blocks side by side and returns the
// y position below the taller one.
func (p *page) parties(doc *document.Document, top float64) float64 {
	width := (contentWidth - columnGap) / 2
	l := doc.Labels

	supplier := []partyLine{
		{l.Name, doc.Supplier.Name, 0},
		{l.Code, doc.Supplier.TaxID, 0},
		{l.Address, doc.Supplier.Address, 0},
		{l.Bank, doc.Supplier.Bank, 2},
		{l.BankCode, doc.Supplier.BankCode, 0},
		{l.Account, doc.Supplier.Account, 0},
	}
	buyer := []partyLine{
		{l.Name, doc.Buyer.Name, 0},
		{l.Code, doc.Buyer.TaxID, 0},
		{l.Address, doc.Buyer.Address, 0},
	}

	left := p.party(pageInset, top, width, l.Supplier, supplier, [3]int{17, 24, 39})
	right := p.party(pageInset+width+columnGap, top, width, l.Buyer, buyer, [3]int{37, 99, 235})
	return max(left, right)
}

type partyLine struct {
	label, value string
	gapBefore    float64
}

func (p *page) party(x, top, width float64, heading string, lines []partyLine, accent [3]int) float64 {
	pdf := p.pdf
	const indent = 4.0
	textX, textW := x+indent, width-indent

	p.font("B", 10)
	p.cell(textX, top, textW, 6, strings.ToUpper(heading), "L")
	y := top + 7

	p.font("", 9)
	for _, ln := range lines {
		y += ln.gapBefore
		for _, row := range p.wrap(ln.label+" "+ln.value, textW) {
			p.cell(textX, y, textW, 5, row, "L")
			y += 5
		}
	}

	pdf.SetDrawColor(accent[0], accent[1], accent[2])
	pdf.SetLineWidth(1)
	pdf.Line(x+0.5, top, x+0.5, y)
	pdf.SetLineWidth(0.2)
	return y
}

// items draws the table and returns the y position below it on the page
// where it ends.
func (p *page) items(doc *document.Document, top float64) float64 {
	pdf := p.pdf
	y := p.tableHead(doc, top)

	if !doc.HasItems() {
		const emptyHeight = 16.0
		pdf.Rect(pageInset, y, contentWidth, emptyHeight, "D")
		pdf.SetTextColor(156, 163, 175)
		p.font("", 9)
		p.cell(pageInset, y, contentWidth, emptyHeight, doc.Labels.NoItems, "CM")
		pdf.SetTextColor(0, 0, 0)
		return y + emptyHeight
	}

	const lineHeight, pad = 4.5, 2.0
	p.font("", 8)
	spanTop, first := y, true
	for _, row := range doc.Rows {
		lines := p.wrap(row.Description, columns[0]-2*pad)
		h := float64(max(len(lines), 1))*lineHeight + 2*pad
		if y+h > pageBottom && y > spanTop {
			p.amounts(doc, spanTop, y-spanTop, first)
			first = false
			pdf.AddPage()
			y = p.tableHead(doc, pageInset)
			spanTop = y
			p.font("", 8)
		}
		pdf.Rect(pageInset, y, columns[0], h, "D")
		for i, ln := range lines {
			p.cell(pageInset+pad, y+pad+float64(i)*lineHeight, columns[0]-2*pad, lineHeight, ln, "L")
		}
		y += h
	}
	p.amounts(doc, spanTop, y-spanTop, first)
	return y
}

// tableHead draws the bilingual column headings at top and returns the y
// position of the first body row.
func (p *page) tableHead(doc *document.Document, top float64) float64 {
	pdf := p.pdf
	l := doc.Labels
	pdf.SetDrawColor(209, 213, 219)
	pdf.SetLineWidth(0.2)

	heads := [4][2]string{l.ItemColumn, l.PriceColumn, l.TaxColumn, l.TotalColumn}
	const headHeight = 12.0
	pdf.SetFillColor(243, 244, 246)
	p.font("B", 7)
	x := pageInset
	for i, h := range heads {
		align := "R"
		if i == 0 {
			align = "L"
		}
		pdf.Rect(x, top, columns[i], headHeight, "FD")
		p.cell(x+2, top+1.5, columns[i]-4, 4.5, h[0], align)
		p.cell(x+2, top+6, columns[i]-4, 4.5, h[1], align)
		x += columns[i]
	}
	return top + headHeight
}

// amounts draws the merged amount cells beside rows [top, top+span). Only
// the first span carries the figures.
func (p *page) amounts(doc *document.Document, top, span float64, withFigures bool) {
	pdf := p.pdf
	const pad = 2.0
	figures := [3]string{doc.Subtotal, doc.Tax, doc.Total}
	x := pageInset + columns[0]
	p.font("", 9)
	pdf.SetFillColor(249, 250, 251)
	for i, amount := range figures {
		w := columns[i+1]
		style := "D"
		if i == len(figures)-1 {
			style = "FD"
		}
		pdf.Rect(x, top, w, span, style)
		if withFigures {
			p.cell(x+pad, top, w-2*pad, span, amount, "RM")
		}
		x += w
	}
}

// totals draws the footer, on a fresh page when it would not fit, and
// returns the y position below it.
func (p *page) totals(doc *document.Document, top float64) float64 {
	pdf := p.pdf
	const width, rowHeight = 64.0, 8.0
	x := pageInset + contentWidth - width
	if top+3*rowHeight+1 > pageBottom {
		pdf.AddPage()
		top = pageInset
	}

	rows := [][2]string{
		{doc.Labels.Subtotal, p.symbol + " " + doc.Subtotal},
		{doc.TaxLabel, p.symbol + " " + doc.Tax},
	}
	y := top
	pdf.SetDrawColor(229, 231, 235)
	pdf.SetLineWidth(0.2)
	for _, r := range rows {
		p.font("B", 9)
		p.cell(x, y, width/2, rowHeight, r[0], "LM")
		p.font("", 9)
		p.cell(x+width/2, y, width/2, rowHeight, r[1], "RM")
		y += rowHeight
		pdf.Line(x, y, x+width, y)
	}

	pdf.SetFillColor(249, 250, 251)
	pdf.Rect(x, y, width, rowHeight+1, "F")
	p.font("B", 12)
	p.cell(x, y, width/2, rowHeight+1, doc.Labels.GrandTotal, "LM")
	p.cell(x+width/2, y, width/2, rowHeight+1, p.symbol+" "+doc.Total, "RM")
	y += rowHeight + 1
	pdf.SetDrawColor(0, 0, 0)
	pdf.SetLineWidth(0.6)
	pdf.Line(x, y, x+width, y)
	return y
}

// wrap splits text into lines no wider than width in the current font.
// Explicit newlines are kept and words longer than a line are broken.
func (p *page) wrap(text string, width float64) []string {
	fits := func(s string) bool { return p.pdf.GetStringWidth(p.tr(s)) <= width }

	var out []string
	for _, para := range strings.Split(text, "\n") {
		line := ""
		for _, word := range strings.Fields(para) {
			candidate := word
			if line != "" {
				candidate = line + " " + word
			}
			if fits(candidate) {
				line = candidate
				continue
			}
			if line != "" {
				out = append(out, line)
				line = ""
			}
			for !fits(word) {
				cut := breakPoint(word, fits)
				out = append(out, word[:cut])
				word = word[cut:]
			}
			line = word
		}
		out = append(out, line)
	}
	return out
}

// breakPoint returns the byte length of the longest rune prefix of word
// that fits, and at least one rune.
func breakPoint(word string, fits func(string) bool) int {
	cut := 0
	for i, r := range word {
		end := i + len(string(r))
		if cut > 0 && !fits(word[:end]) {
			break
		}
		cut = end
	}
	return cut
}
