// Package seed holds the reference data the service ships with.
package seed

import (
	"time"

	"cablequote/internal/domain/entities"
)

const unitPer1000ft = "per 1000ft"

func Products() []entities.Product {
	return []entities.Product{
		{ID: "CAB001", Name: "THWN-2 Copper Wire 12 AWG", Category: "Building Wire", Voltage: "600V", Material: "Copper", Gauge: "12 AWG", BasePrice: 125.50, Unit: unitPer1000ft, Stock: 850},
		{ID: "CAB002", Name: "MC Cable 12/2 w/ Ground", Category: "Armored Cable", Voltage: "600V", Material: "Copper", Gauge: "12/2", BasePrice: 245.75, Unit: unitPer1000ft, Stock: 420},
		{ID: "CAB003", Name: "Cat6 Ethernet Cable UTP", Category: "Data Cable", Voltage: "Low Voltage", Material: "Copper", Gauge: "23 AWG", BasePrice: 89.25, Unit: unitPer1000ft, Stock: 1200},
		{ID: "CAB004", Name: "RG6 Coaxial Cable Quad Shield", Category: "Coaxial Cable", Voltage: "Low Voltage", Material: "Copper", Gauge: "18 AWG", BasePrice: 67.50, Unit: unitPer1000ft, Stock: 950},
		{ID: "CAB005", Name: "XHHW-2 Aluminum 4/0 AWG", Category: "Building Wire", Voltage: "600V", Material: "Aluminum", Gauge: "4/0 AWG", BasePrice: 315.80, Unit: unitPer1000ft, Stock: 180},
		{ID: "CAB006", Name: "Fiber Optic Cable 24 Strand", Category: "Fiber Optic", Voltage: "Low Voltage", Material: "Glass Fiber", Gauge: "Multi-mode", BasePrice: 485.00, Unit: unitPer1000ft, Stock: 75},
	}
}

func Customers() []entities.Customer {
	return []entities.Customer{
		{ID: "CUST001", Name: "ABC Construction Co.", Contact: "John Smith", Email: "john@abcconstruction.com", Phone: "(555) 123-4567", Address: "123 Main St, City, ST 12345", Tier: entities.TierA, DiscountPercent: 15, PaymentTerms: "Net 30", TotalOrders: 45, YearlyVolume: 125000},
		{ID: "CUST002", Name: "XYZ Electric Services", Contact: "Sarah Johnson", Email: "sarah@xyzelectric.com", Phone: "(555) 987-6543", Address: "456 Oak Ave, Town, ST 67890", Tier: entities.TierB, DiscountPercent: 10, PaymentTerms: "Net 15", TotalOrders: 32, YearlyVolume: 87500},
		{ID: "CUST003", Name: "Metro Infrastructure", Contact: "Mike Wilson", Email: "mike@metroinfra.com", Phone: "(555) 456-7890", Address: "789 Pine Rd, Metro, ST 11111", Tier: entities.TierA, DiscountPercent: 18, PaymentTerms: "Net 45", TotalOrders: 67, YearlyVolume: 245000},
		{ID: "CUST004", Name: "City Power Solutions", Contact: "Lisa Davis", Email: "lisa@citypowersolutions.com", Phone: "(555) 321-0987", Address: "321 Elm St, Downtown, ST 22222", Tier: entities.TierB, DiscountPercent: 12, PaymentTerms: "Net 30", TotalOrders: 28, YearlyVolume: 65000},
		{ID: "CUST005", Name: "Residential Wiring LLC", Contact: "Tom Brown", Email: "tom@residentialwiring.com", Phone: "(555) 654-3210", Address: "654 Maple Dr, Suburb, ST 33333", Tier: entities.TierC, DiscountPercent: 5, PaymentTerms: "Net 15", TotalOrders: 15, YearlyVolume: 32000},
		{ID: "CUST006", Name: "Industrial Systems Corp", Contact: "Amanda White", Email: "amanda@industrialsystems.com", Phone: "(555) 789-0123", Address: "987 Industrial Blvd, Factory, ST 44444", Tier: entities.TierA, DiscountPercent: 20, PaymentTerms: "Net 60", TotalOrders: 89, YearlyVolume: 456000},
	}
}

// Approvals are the requests present on a fresh install: two waiting for a
// decision and two already decided.
func Approvals() []entities.ApprovalRequest {
	day := func(d int) time.Time { return time.Date(2024, time.January, d, 9, 0, 0, 0, time.UTC) }
	return []entities.ApprovalRequest{
		{ID: "Q001", QuoteNumber: "Q001", CustomerID: "CUST001", CustomerName: "ABC Construction Co.", Agent: "John Doe (Mini Agent)", Amount: 12450, ItemCount: 8, Status: entities.ApprovalStatusPending, CreatedAt: day(15), UpdatedAt: day(15)},
		{ID: "Q002", QuoteNumber: "Q002", CustomerID: "CUST002", CustomerName: "XYZ Electric Services", Agent: "Jane Smith (Mini Agent)", Amount: 8920, ItemCount: 5, Status: entities.ApprovalStatusPending, CreatedAt: day(14), UpdatedAt: day(14)},
		{ID: "Q003", QuoteNumber: "Q003", CustomerID: "CUST003", CustomerName: "Metro Infrastructure", Agent: "John Doe (Mini Agent)", Amount: 45200, ItemCount: 12, Status: entities.ApprovalStatusApproved, DecidedBy: string(entities.RoleAdmin), CreatedAt: day(12), UpdatedAt: day(14)},
		{ID: "Q004", QuoteNumber: "Q004", CustomerID: "CUST004", CustomerName: "City Power Solutions", Agent: "Jane Smith (Mini Agent)", Amount: 15680, ItemCount: 6, Status: entities.ApprovalStatusRejected, DecidedBy: string(entities.RoleSuperAdmin), CreatedAt: day(11), UpdatedAt: day(13)},
	}
}
