package pdf

import (
	"fmt"
	"strconv"

	"cablequote/internal/domain/entities"
	"cablequote/internal/usecase/interfaces"
	"cablequote/pkg/money"
)

type Renderer struct{}

var _ interfaces.IDocumentRenderer = (*Renderer)(nil)

func New() *Renderer { return &Renderer{} }

func (r *Renderer) Format() entities.DocumentFormat {
	return entities.DocumentFormatPDF
}

var (
	quoteCols    = []float64{0, 80, 120, 140, 170}
	customerCols = []float64{2, 60, 90, 110, 140}
	dashCols     = []float64{5, 40, 100, 140}
)

func (r *Renderer) RenderQuote(q entities.PricedQuote) ([]byte, error) {
	preparedBy := q.PreparedBy
	if preparedBy == "" {
		preparedBy = "System User"
	}
	d := newDocument("Quote "+q.QuoteNumber, func(d *document) {
		d.footerText("Generated by "+brandName+" on "+q.GeneratedAt.Format(stampLayout), "Created by: "+preparedBy)
	})

	d.banner(40)
	d.color(white)
	d.font("B", 24)
	d.text(margin, 25, brandName)
	d.font("", 12)
	d.text(margin, 33, "Professional Cable Quotation System")
	d.color(black)

	d.y = 55
	d.font("B", 18)
	d.text(margin, d.y, "Quote #"+q.QuoteNumber)
	d.font("", 12)
	d.text(d.width-margin-50, d.y, "Date: "+q.GeneratedAt.Format(dateLayout))
	d.y += 15

	c := q.Customer
	d.section("Customer Information")
	d.row("Customer: " + c.Name)
	d.row("Customer ID: " + c.ID)
	d.row(fmt.Sprintf("Tier: %s (%s discount)", c.Tier, money.Percent(c.DiscountPercent)))
	if c.Address != "" {
		d.row("Address: " + c.Address)
	}
	d.y += 9

	d.section("Project Information")
	project := q.ProjectName
	if project == "" {
		project = "-"
	}
	d.row("Project: " + project)
	if q.Notes != "" {
		d.y += d.lines(margin, d.y, lineHeight, d.wrap("Notes: "+q.Notes, d.width-2*margin))
	}
	d.y += 9

	d.section("Quote Items")
	d.y += 2
	d.tableHeader(headerRow, black, quoteCols, []string{"Product", "Unit Price", "Qty", "Line Total", "Net Price"})
	for _, l := range q.Breakdown.Lines {
		d.breakAt(rowBreakY)
		name := d.wrap(l.Name, 75)
		d.lines(margin+quoteCols[0], d.y, 4, name)
		d.text(margin+quoteCols[1], d.y, money.Format(l.BasePrice))
		d.text(margin+quoteCols[2], d.y, strconv.Itoa(l.Quantity))
		d.text(margin+quoteCols[3], d.y, money.Format(l.LineTotal))
		d.text(margin+quoteCols[4], d.y, money.Format(l.NetPrice))
		d.y += max(float64(len(name))*4, lineHeight)
	}
	d.y += 10

	b := q.Breakdown
	d.breakAt(rowBreakY - 4*lineHeight)
	x := d.width - margin - 60
	d.font("", 10)
	if discount := b.TotalDiscount(); discount > 0 {
		d.text(x, d.y, "Discount: -"+money.Format(discount))
		d.y += lineHeight
	}
	d.text(x, d.y, "Subtotal: "+money.Format(b.Subtotal))
	d.y += lineHeight
	d.text(x, d.y, "Freight: "+money.Format(b.Freight))
	d.y += lineHeight
	d.text(x, d.y, "Tax: "+money.Format(b.Tax))
	d.y += lineHeight

	d.fill(brandBlue)
	d.pdf.Rect(x-5, d.y-3, 65, 8, "F")
	d.color(white)
	d.font("B", 10)
	d.text(x, d.y+2, "Total: "+money.Format(b.Total))
	d.color(black)

	return d.bytes()
}

func (r *Renderer) RenderCustomers(customers []entities.Customer, meta entities.DocumentMeta) ([]byte, error) {
	d := newDocument("Customer Directory", listFooter("Customer Directory", meta))
	d.listHeader("Customer Directory", meta, fmt.Sprintf("Total Customers: %d", len(customers)))

	d.tableHeader(headerRow, black, customerCols, []string{"Customer Name", "ID", "Tier", "Discount", "Contact"})
	for _, c := range customers {
		d.breakAt(rowBreakY)
		contact := c.Email
		if contact == "" {
			contact = "N/A"
		}
		d.text(margin+customerCols[0], d.y, clip(c.Name, 25))
		d.text(margin+customerCols[1], d.y, c.ID)
		d.text(margin+customerCols[2], d.y, string(c.Tier))
		d.text(margin+customerCols[3], d.y, money.Percent(c.DiscountPercent))
		d.text(margin+customerCols[4], d.y, clip(contact, 20))
		d.y += lineHeight
	}

	return d.bytes()
}

// RenderProducts lays products out as bordered cards.
func (r *Renderer) RenderProducts(products []entities.Product, meta entities.DocumentMeta) ([]byte, error) {
	d := newDocument("Product Catalog", listFooter("Product Catalog", meta))
	d.listHeader("Product Catalog", meta, fmt.Sprintf("Total Products: %d", len(products)))

	d.pdf.SetDrawColor(cardEdge.r, cardEdge.g, cardEdge.b)
	for _, p := range products {
		d.breakAt(cardBreakY)
		d.pdf.Rect(margin, d.y-5, d.width-2*margin, 25, "D")

		d.font("B", 12)
		d.text(margin+5, d.y, p.Name)
		d.font("", 10)
		d.text(margin+5, d.y+6, "ID: "+p.ID)
		d.text(margin+5, d.y+12, fmt.Sprintf("Price: %s %s", money.Format(p.BasePrice), p.Unit))
		d.text(d.width-margin-60, d.y+6, "Category: "+p.Category)
		d.text(d.width-margin-60, d.y+12, fmt.Sprintf("Stock: %d (%s)", p.Stock, p.StockStatus()))
		desc := d.wrap(p.Description(), d.width-2*margin-10)
		if len(desc) > 2 {
			desc = desc[:2]
		}
		d.lines(margin+5, d.y+18, 4, desc)
		d.y += 30
	}

	return d.bytes()
}

func (r *Renderer) RenderDashboard(rep entities.DashboardReport) ([]byte, error) {
	d := newDocument("Dashboard Report", func(d *document) {
		d.footerText(brandName+" - Dashboard Report", "User Role: "+string(rep.Role))
	})

	d.banner(35)
	d.color(white)
	d.font("B", 24)
	d.text(margin, 22, "Dashboard Report")
	d.font("", 12)
	d.text(margin, 30, "Generated: "+rep.GeneratedAt.Format(dateLayout))
	d.color(black)

	d.y = 50
	d.section("Key Statistics")
	stats := []struct{ label, value string }{
		{"Total Products", strconv.Itoa(rep.Stats.TotalProducts)},
		{"Active Customers", strconv.Itoa(rep.Stats.ActiveCustomers)},
		{"Quotes This Month", strconv.Itoa(rep.Stats.QuotesThisMonth)},
		{"Approved Revenue", money.Format(rep.Stats.ApprovedRevenue)},
	}
	cell := d.width/2 - margin
	for i, s := range stats {
		x := margin + float64(i%2)*cell
		y := d.y + float64(i/2)*20
		d.fill(headerRow)
		d.pdf.Rect(x, y-3, cell-10, 15, "F")
		d.font("B", 12)
		d.text(x+5, y+3, s.label)
		d.font("", 12)
		d.text(x+5, y+9, s.value)
	}
	d.y += 48

	d.section("Recent Quotes")
	d.y += 2
	d.tableHeader(brandBlue, white, dashCols, []string{"Quote ID", "Customer", "Amount", "Status"})
	for _, a := range rep.RecentQuotes {
		d.breakAt(rowBreakY)
		d.text(margin+dashCols[0], d.y, a.QuoteNumber)
		d.text(margin+dashCols[1], d.y, clip(a.CustomerName, 20))
		d.text(margin+dashCols[2], d.y, money.Format(a.Amount))
		d.text(margin+dashCols[3], d.y, string(a.Status))
		d.y += lineHeight
	}

	return d.bytes()
}

func (d *document) section(title string) {
	d.font("B", 14)
	d.text(margin, d.y, title)
	d.font("", 11)
	d.y += 8
}

func (d *document) row(s string) {
	d.text(margin, d.y, s)
	d.y += lineHeight
}

// listHeader draws the 30 mm banner and the export line shared by the
// directory and catalog documents.
func (d *document) listHeader(title string, meta entities.DocumentMeta, total string) {
	d.banner(30)
	d.color(white)
	d.font("B", 20)
	d.text(margin, 20, title)
	d.color(black)

	d.y = 45
	d.font("", 12)
	d.text(margin, d.y, "Export Date: "+meta.GeneratedAt.Format(dateLayout))
	d.text(d.width-margin-45, d.y, total)
	if meta.Filter != "" {
		d.y += lineHeight
		d.font("", 10)
		d.text(margin, d.y, "Filter: "+meta.Filter)
	}
	d.y += 15
}

func listFooter(title string, meta entities.DocumentMeta) func(d *document) {
	by := meta.PreparedBy
	if meta.Role != "" {
		by = fmt.Sprintf("%s (%s)", meta.PreparedBy, meta.Role)
	}
	return func(d *document) {
		d.footerText(fmt.Sprintf("Generated by %s - %s - %s", brandName, title, meta.GeneratedAt.Format(stampLayout)), "Created by: "+by)
	}
}
