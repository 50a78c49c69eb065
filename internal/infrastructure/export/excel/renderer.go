// Package excel renders the export documents as single-sheet XLSX workbooks.
package excel

import (
	"bytes"
	"fmt"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
	"cablequote/pkg/money"

	"github.com/xuri/excelize/v2"
)

const stampLayout = "2006-01-02 15:04 MST"

type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Format() entities.DocumentFormat {
	return entities.DocumentFormatXLSX
}

func (r *Renderer) RenderQuote(q entities.PricedQuote) ([]byte, error) {
	s, err := newSheet("Quote "+q.QuoteNumber, []float64{12, 40, 14, 8, 16, 16, 16})
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	c := q.Customer
	s.title("Quote #" + q.QuoteNumber)
	s.info("Date: " + q.GeneratedAt.Format(stampLayout))
	s.info(fmt.Sprintf("Customer: %s (%s)", c.Name, c.ID))
	s.info(fmt.Sprintf("Tier: %s (%s discount)", c.Tier, money.Percent(c.DiscountPercent)))
	if q.ProjectName != "" {
		s.info("Project: " + q.ProjectName)
	}
	if q.Notes != "" {
		s.info("Notes: " + q.Notes)
	}
	s.info("Created by: " + q.PreparedBy)
	s.row++

	s.header("Product ID", "Product", "Unit Price", "Qty", "Line Total", "Discount", "Net Price")
	for _, l := range q.Breakdown.Lines {
		s.body(
			l.ProductID,
			l.Name,
			money.Round2(l.BasePrice),
			l.Quantity,
			money.Round2(l.LineTotal),
			money.Round2(l.DiscountAmount),
			money.Round2(l.NetPrice),
		)
	}
	s.row++

	b := q.Breakdown
	s.summary("F", "G", "Subtotal", money.Round2(b.Subtotal))
	s.summary("F", "G", "Freight", money.Round2(b.Freight))
	s.summary("F", "G", "Tax", money.Round2(b.Tax))
	s.summary("F", "G", "Total", money.Round2(b.Total))

	return s.bytes()
}

func (r *Renderer) RenderCustomers(customers []entities.Customer, meta entities.DocumentMeta) ([]byte, error) {
	s, err := newSheet("Customer Directory", []float64{12, 30, 20, 30, 18, 36, 8, 10, 12, 10, 16})
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	s.title("Customer Directory")
	s.meta(meta, fmt.Sprintf("Total Customers: %d", len(customers)))

	s.header("ID", "Name", "Contact", "Email", "Phone", "Address", "Tier", "Discount %", "Terms", "Orders", "Yearly Volume")
	for _, c := range customers {
		s.body(c.ID, c.Name, c.Contact, c.Email, c.Phone, c.Address, string(c.Tier), c.DiscountPercent, c.PaymentTerms, c.TotalOrders, money.Round2(c.YearlyVolume))
	}

	return s.bytes()
}

func (r *Renderer) RenderProducts(products []entities.Product, meta entities.DocumentMeta) ([]byte, error) {
	s, err := newSheet("Product Catalog", []float64{10, 34, 16, 14, 14, 12, 12, 12, 10, 12})
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	s.title("Product Catalog")
	s.meta(meta, fmt.Sprintf("Total Products: %d", len(products)))

	s.header("ID", "Name", "Category", "Voltage", "Material", "Gauge", "Base Price", "Unit", "Stock", "Status")
	for _, p := range products {
		s.body(p.ID, p.Name, p.Category, p.Voltage, p.Material, p.Gauge, money.Round2(p.BasePrice), p.Unit, p.Stock, string(p.StockStatus()))
	}

	return s.bytes()
}

func (r *Renderer) RenderDashboard(rep entities.DashboardReport) ([]byte, error) {
	s, err := newSheet("Dashboard Report", []float64{20, 30, 16, 12, 18})
	if err != nil {
		return nil, err
	}
	defer s.f.Close()

	s.title("Dashboard Report")
	s.info("Generated: " + rep.GeneratedAt.Format(stampLayout))
	s.info("User Role: " + string(rep.Role))
	s.row++

	s.summary("A", "B", "Total Products", rep.Stats.TotalProducts)
	s.summary("A", "B", "Active Customers", rep.Stats.ActiveCustomers)
	s.summary("A", "B", "Quotes This Month", rep.Stats.QuotesThisMonth)
	s.summary("A", "B", "Approved Revenue", money.Round2(rep.Stats.ApprovedRevenue))
	s.row++

	s.header("Quote ID", "Customer", "Amount", "Status", "Date")
	for _, a := range rep.RecentQuotes {
		s.body(a.QuoteNumber, a.CustomerName, money.Round2(a.Amount), string(a.Status), a.CreatedAt.Format("2006-01-02"))
	}

	return s.bytes()
}

// sheet is a cursor over the only worksheet of a new workbook.
type sheet struct {
	f      *excelize.File
	name   string
	cols   int
	row    int
	styles styles
}

type styles struct {
	title, info, header, body, label, value int
}

func newSheet(name string, widths []float64) (*sheet, error) {
	f := excelize.NewFile()

	// Sheet names are limited to 31 characters.
	if len(name) > 31 {
		name = name[:31]
	}
	if err := f.SetSheetName(f.GetSheetName(0), name); err != nil {
		f.Close()
		return nil, fmt.Errorf("set sheet name: %w", err)
	}

	for i, w := range widths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		if err := f.SetColWidth(name, col, col, w); err != nil {
			f.Close()
			return nil, fmt.Errorf("set col width %s: %w", col, err)
		}
	}

	st, err := newStyles(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return &sheet{f: f, name: name, cols: len(widths), row: 1, styles: st}, nil
}

func newStyles(f *excelize.File) (styles, error) {
	var (
		s   styles
		err error
	)
	if s.title, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 16, Color: "#2563EB"}}); err != nil {
		return s, fmt.Errorf("create title style: %w", err)
	}
	if s.info, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 11}}); err != nil {
		return s, fmt.Errorf("create info style: %w", err)
	}
	s.header, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "#FFFFFF", Size: 11},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#2563EB"}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		Border:    thinBorders(),
	})
	if err != nil {
		return s, fmt.Errorf("create header style: %w", err)
	}
	if s.body, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Size: 10}, Border: thinBorders()}); err != nil {
		return s, fmt.Errorf("create body style: %w", err)
	}
	if s.label, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, Alignment: &excelize.Alignment{Horizontal: "right"}}); err != nil {
		return s, fmt.Errorf("create label style: %w", err)
	}
	// 2 decimal places for money cells.
	if s.value, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 11}, NumFmt: 2}); err != nil {
		return s, fmt.Errorf("create value style: %w", err)
	}
	return s, nil
}

func (s *sheet) cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}

func (s *sheet) lastCell(row int) string {
	return s.cell(s.cols, row)
}

func (s *sheet) title(text string) {
	s.line(text, s.styles.title)
}

func (s *sheet) info(text string) {
	s.line(text, s.styles.info)
}

// line writes text merged across the sheet width.
func (s *sheet) line(text string, style int) {
	first := s.cell(1, s.row)
	_ = s.f.MergeCell(s.name, first, s.lastCell(s.row))
	_ = s.f.SetCellValue(s.name, first, sanitizeExcelCell(text))
	_ = s.f.SetCellStyle(s.name, first, s.lastCell(s.row), style)
	s.row++
}

func (s *sheet) meta(m entities.DocumentMeta, total string) {
	s.info("Export Date: " + m.GeneratedAt.Format(stampLayout))
	if m.PreparedBy != "" {
		s.info(fmt.Sprintf("Created by: %s (%s)", m.PreparedBy, m.Role))
	}
	if m.Filter != "" {
		s.info("Filter: " + m.Filter)
	}
	s.info(total)
	s.row++
}

func (s *sheet) header(labels ...string) {
	for i, l := range labels {
		_ = s.f.SetCellValue(s.name, s.cell(i+1, s.row), l)
	}
	_ = s.f.SetCellStyle(s.name, s.cell(1, s.row), s.cell(len(labels), s.row), s.styles.header)
	s.row++
}

func (s *sheet) body(values ...any) {
	for i, v := range values {
		if str, ok := v.(string); ok {
			v = sanitizeExcelCell(str)
		}
		_ = s.f.SetCellValue(s.name, s.cell(i+1, s.row), v)
	}
	_ = s.f.SetCellStyle(s.name, s.cell(1, s.row), s.cell(len(values), s.row), s.styles.body)
	s.row++
}

func (s *sheet) summary(labelCol, valueCol, label string, value any) {
	r := fmt.Sprint(s.row)
	_ = s.f.SetCellValue(s.name, labelCol+r, label+":")
	_ = s.f.SetCellStyle(s.name, labelCol+r, labelCol+r, s.styles.label)
	_ = s.f.SetCellValue(s.name, valueCol+r, value)
	if _, ok := value.(float64); ok {
		_ = s.f.SetCellStyle(s.name, valueCol+r, valueCol+r, s.styles.value)
	}
	s.row++
}

func (s *sheet) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := s.f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write excel: %w", err)
	}
	return buf.Bytes(), nil
}

// sanitizeExcelCell prefixes formula-looking text with a quote so it is
// stored as a literal.
func sanitizeExcelCell(s string) string {
	if len(s) == 0 {
		return s
	}
	switch s[0] {
	case '=', '+', '-', '@', '\t', '\r', '|':
		return "'" + s
	}
	return s
}

func thinBorders() []excelize.Border {
	sides := []string{"left", "top", "bottom", "right"}
	borders := make([]excelize.Border, len(sides))
	for i, side := range sides {
		borders[i] = excelize.Border{Type: side, Color: "#000000", Style: 1}
	}
	return borders
}
