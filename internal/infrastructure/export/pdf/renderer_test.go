package pdf

import (
	"bytes"
	"strconv"
	"testing"
	"time"

	"cablequote/internal/domain/entities"
	"cablequote/internal/domain/pricing"
)

var generatedAt = time.Date(2024, 5, 1, 10, 30, 0, 0, time.UTC)

func samplePricedQuote(t *testing.T, lines int) entities.PricedQuote {
	t.Helper()
	in := make([]pricing.Line, 0, lines)
	for i := 0; i < lines; i++ {
		in = append(in, pricing.Line{ProductID: "CAB00" + strconv.Itoa(i%6+1), Name: "THWN-2 Copper Wire 12 AWG with a long trailing description", Unit: "per 1000ft", BasePrice: 125.5, Quantity: i + 1})
	}
	b, err := pricing.Calculate(15, in)
	if err != nil {
		t.Fatalf("calculate: %v", err)
	}
	return entities.PricedQuote{
		QuoteNumber: "Q-0A1B2C3D",
		Customer:    entities.Customer{ID: "CUST001", Name: "ABC Construction Co.", Tier: entities.TierA, DiscountPercent: 15, Address: "123 Main St"},
		ProjectName: "Substation retrofit",
		Notes:       "Deliver to the north gate. Crane available on site between 7am and 3pm, weekdays only.",
		Breakdown:   b,
		PreparedBy:  "agent@cable.com",
		Role:        entities.RoleMiniAgent,
		GeneratedAt: generatedAt,
	}
}

func assertPDF(t *testing.T, data []byte, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("%PDF-")) {
		t.Fatalf("expected PDF header, got %q", data[:min(len(data), 8)])
	}
}

func TestRenderer_RenderQuote(t *testing.T) {
	r := New()
	if r.Format() != entities.DocumentFormatPDF {
		t.Fatalf("unexpected format %s", r.Format())
	}

	t.Run("single page", func(t *testing.T) {
		data, err := r.RenderQuote(samplePricedQuote(t, 3))
		assertPDF(t, data, err)
	})

	t.Run("breaks pages for long quotes", func(t *testing.T) {
		short, _ := r.RenderQuote(samplePricedQuote(t, 1))
		long, err := r.RenderQuote(samplePricedQuote(t, 80))
		assertPDF(t, long, err)
		if len(long) <= len(short) {
			t.Fatalf("expected long quote to produce a larger document")
		}
	})

	t.Run("empty quote", func(t *testing.T) {
		q := samplePricedQuote(t, 0)
		q.PreparedBy = ""
		data, err := r.RenderQuote(q)
		assertPDF(t, data, err)
	})
}

func TestRenderer_Lists(t *testing.T) {
	r := New()
	meta := entities.DocumentMeta{PreparedBy: "sales@cable.com", Role: entities.RoleSalesRep, Filter: "tier A", GeneratedAt: generatedAt}

	customers := make([]entities.Customer, 0, 60)
	products := make([]entities.Product, 0, 20)
	for i := 0; i < 60; i++ {
		customers = append(customers, entities.Customer{ID: "CUST" + strconv.Itoa(i), Name: "Industrial Systems Corporation of the Midwest", Tier: entities.TierB, DiscountPercent: 12.5})
	}
	for i := 0; i < 20; i++ {
		products = append(products, entities.Product{ID: "CAB" + strconv.Itoa(i), Name: "Fiber Optic Cable 24 Strand", Category: "Fiber Optic", Voltage: "Low Voltage", Material: "Glass Fiber", Gauge: "Multi-mode", BasePrice: 485, Unit: "per 1000ft", Stock: 75})
	}

	t.Run("customers", func(t *testing.T) {
		data, err := r.RenderCustomers(customers, meta)
		assertPDF(t, data, err)
	})

	t.Run("products", func(t *testing.T) {
		data, err := r.RenderProducts(products, meta)
		assertPDF(t, data, err)
	})

	t.Run("empty lists", func(t *testing.T) {
		data, err := r.RenderCustomers(nil, entities.DocumentMeta{GeneratedAt: generatedAt})
		assertPDF(t, data, err)
		data, err = r.RenderProducts(nil, entities.DocumentMeta{GeneratedAt: generatedAt})
		assertPDF(t, data, err)
	})
}

func TestRenderer_RenderDashboard(t *testing.T) {
	data, err := New().RenderDashboard(entities.DashboardReport{
		Stats: entities.DashboardStats{TotalProducts: 6, ActiveCustomers: 6, QuotesThisMonth: 4, ApprovedRevenue: 45200},
		RecentQuotes: []entities.ApprovalRequest{
			{QuoteNumber: "Q001", CustomerName: "ABC Construction Co.", Amount: 12450, Status: entities.ApprovalStatusPending},
		},
		Role:        entities.RoleAdmin,
		GeneratedAt: generatedAt,
	})
	assertPDF(t, data, err)
}

func TestClip(t *testing.T) {
	if got := clip("short", 10); got != "short" {
		t.Fatalf("expected unchanged, got %q", got)
	}
	if got := clip("Industrial Systems Corp", 10); got != "Industria…" {
		t.Fatalf("unexpected clip %q", got)
	}
}
