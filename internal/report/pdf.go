package report

import (
	"fmt"
	"io"
	"time"

	"github.com/go-pdf/fpdf"
	"github.com/username/prazo-calc/internal/deadline"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

const (
	pdfTitle   = "Relatório de Contagem de Prazo - CPC/CNJ"
	pdfFont    = "Arial"
	rowHeight  = 7.0
	lineHeight = 7.0
)

var (
	columnWidths       = []float64{30, 40, 80, 40}
	recessColumnWidths = []float64{26, 34, 100, 30}
	columnTitles       = []string{"Data", "Dia da Semana", "Status", "Contagem"}
)

// PDFOptions control the report header and footer
type PDFOptions struct {
	// Office is printed under the title and used in the file name
	Office string
	// Credit is printed on the right side of every footer when set
	Credit string
	// GeneratedAt is the generation timestamp; zero means now
	GeneratedAt time.Time
}

// PDFReport is a rendered, ready to write PDF document
type PDFReport struct {
	doc *fpdf.Fpdf
}

// NewPDF lays out the report for res
func NewPDF(res *deadline.Result, opts PDFOptions) (*PDFReport, error) {
	if opts.GeneratedAt.IsZero() {
		opts.GeneratedAt = time.Now()
	}

	b := &pdfBuilder{
		doc:     fpdf.New("P", "mm", "A4", ""),
		res:     res,
		opts:    opts,
		encoder: encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()),
		widths:  columnWidths,
	}
	if res.RecessEnabled {
		b.widths = recessColumnWidths
	}

	b.build()
	if err := b.doc.Error(); err != nil {
		return nil, fmt.Errorf("failed to build pdf: %w", err)
	}
	return &PDFReport{doc: b.doc}, nil
}

// PageCount returns the number of pages in the document
func (r *PDFReport) PageCount() int {
	return r.doc.PageCount()
}

// Write writes the document to w
func (r *PDFReport) Write(w io.Writer) error {
	if err := r.doc.Output(w); err != nil {
		return fmt.Errorf("failed to write pdf: %w", err)
	}
	return nil
}

// WritePDF renders res and writes it to w
func WritePDF(w io.Writer, res *deadline.Result, opts PDFOptions) error {
	r, err := NewPDF(res, opts)
	if err != nil {
		return err
	}
	return r.Write(w)
}

type pdfBuilder struct {
	doc     *fpdf.Fpdf
	res     *deadline.Result
	opts    PDFOptions
	encoder *encoding.Encoder
	widths  []float64

	// tableOpen makes the page header repeat the ledger column titles
	tableOpen bool
}

// tr converts UTF-8 text to the single-byte encoding of the core fonts
func (b *pdfBuilder) tr(s string) string {
	out, err := b.encoder.String(s)
	if err != nil {
		return s
	}
	return out
}

func (b *pdfBuilder) build() {
	doc := b.doc
	doc.SetTitle(pdfTitle, true)
	if b.opts.Office != "" {
		doc.SetAuthor(b.opts.Office, true)
	}
	doc.SetCreator("prazo-calc", false)
	doc.SetCreationDate(b.opts.GeneratedAt)
	doc.SetAutoPageBreak(true, 20)
	doc.SetHeaderFunc(b.header)
	doc.SetFooterFunc(b.footer)

	doc.AddPage()
	b.officeBlock()
	b.summary()
	b.ledger()
}

func (b *pdfBuilder) header() {
	doc := b.doc
	doc.SetFont(pdfFont, "B", 15)
	doc.SetTextColor(0, 0, 0)
	doc.CellFormat(0, 10, b.tr(pdfTitle), "", 1, "C", false, 0, "")
	doc.Ln(4)

	if b.tableOpen {
		b.tableHeader()
	}
}

func (b *pdfBuilder) footer() {
	doc := b.doc
	left, _, _, _ := doc.GetMargins()

	doc.SetY(-15)
	doc.SetFont(pdfFont, "I", 8)
	doc.SetTextColor(128, 128, 128)
	doc.CellFormat(0, 10, b.tr(fmt.Sprintf("Página %d", doc.PageNo())), "", 0, "L", false, 0, "")
	if b.opts.Credit != "" {
		doc.SetX(left)
		doc.CellFormat(0, 10, b.tr(b.opts.Credit), "", 0, "R", false, 0, "")
	}
	doc.SetTextColor(0, 0, 0)
}

func (b *pdfBuilder) officeBlock() {
	doc := b.doc
	if b.opts.Office != "" {
		doc.SetFont(pdfFont, "B", 12)
		doc.CellFormat(0, lineHeight, b.tr(b.opts.Office), "", 1, "L", false, 0, "")
	}
	doc.SetFont(pdfFont, "", 10)
	generated := "Gerado em: " + b.opts.GeneratedAt.Format("02/01/2006 15:04")
	doc.CellFormat(0, lineHeight, b.tr(generated), "", 1, "L", false, 0, "")
	doc.Ln(4)
}

func (b *pdfBuilder) section(title string) {
	doc := b.doc
	doc.SetFont(pdfFont, "B", 12)
	doc.SetFillColor(200, 220, 255)
	doc.CellFormat(0, 8, b.tr(title), "", 1, "L", true, 0, "")
	doc.Ln(2)
}

func (b *pdfBuilder) field(label, value string) {
	doc := b.doc
	doc.SetFont(pdfFont, "B", 11)
	doc.CellFormat(60, lineHeight, b.tr(label), "", 0, "L", false, 0, "")
	doc.SetFont(pdfFont, "", 11)
	doc.CellFormat(0, lineHeight, b.tr(value), "", 1, "L", false, 0, "")
}

func (b *pdfBuilder) summary() {
	res := b.res
	doc := b.doc

	b.section("Resumo dos Marcos Temporais")

	availability := "N/A"
	if res.Availability != nil {
		availability = res.Availability.Format()
	}
	b.field("Disponibilização (DJEN): ", availability)
	b.field("Data da Publicação: ", res.Publication.Format())
	b.field("Início da Contagem: ", res.CountStart.Format())
	b.field("Prazo Total: ", fmt.Sprintf("%d dias úteis", res.BusinessDays))

	if res.RecessEnabled {
		doc.SetFont(pdfFont, "I", 10)
		doc.CellFormat(0, lineHeight, b.tr("Recesso forense considerado (Art. 220 CPC: 20/12 a 20/01)"),
			"", 1, "L", false, 0, "")
	}

	doc.Ln(2)
	doc.SetFont(pdfFont, "B", 12)
	doc.SetTextColor(220, 50, 50)
	due := fmt.Sprintf("DATA FATAL (VENCIMENTO): %s (%s)",
		res.DueDate.Format(), deadline.WeekdayName(res.DueDate.Weekday()))
	doc.CellFormat(0, 9, b.tr(due), "", 1, "L", false, 0, "")
	doc.SetTextColor(0, 0, 0)
	doc.Ln(4)
}

func (b *pdfBuilder) tableHeader() {
	doc := b.doc
	doc.SetFont(pdfFont, "B", 10)
	doc.SetFillColor(200, 220, 255)
	for i, title := range columnTitles {
		doc.CellFormat(b.widths[i], rowHeight, b.tr(title), "1", 0, "C", true, 0, "")
	}
	doc.Ln(-1)
}

func (b *pdfBuilder) ledger() {
	doc := b.doc
	b.section("Detalhamento Dia a Dia")

	b.tableHeader()
	b.tableOpen = true
	defer func() { b.tableOpen = false }()

	last := len(b.res.Ledger) - 1
	for i, e := range b.res.Ledger {
		style := ""
		if i == last {
			style = "B"
		}
		doc.SetFont(pdfFont, style, 9)

		fill := !e.Counted()
		if fill {
			doc.SetFillColor(240, 240, 240)
		}

		cells := []string{e.Date.Format(), e.Weekday, StatusLabel(e.Classification), CountLabel(e)}
		aligns := []string{"C", "L", "L", "C"}
		for j, text := range cells {
			doc.CellFormat(b.widths[j], rowHeight, b.tr(text), "1", 0, aligns[j], fill, 0, "")
		}
		doc.Ln(-1)
	}
}
