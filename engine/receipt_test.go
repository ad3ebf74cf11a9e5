package engine

import (
	"testing"
	"time"

	"smart-order/models"
)

func TestBuildReceipt(t *testing.T) {
	orders := []models.Order{
		order("a", "3", "Ana", models.StatusServed, 20, line("Item", models.CategoryMains, 10, 2)),
		order("b", "3", "Bob", models.StatusServed, 15, line("Item", models.CategoryMains, 15, 1)),
	}
	groups := GroupOpenOrdersByCustomer(orders, "3")
	bill := ComputeBill(TableTotal(orders, "3"), true)
	company := models.CompanySettings{TradeName: "Sabor Bom", TaxID: "00.000.000/0001-00"}
	issued := time.Date(2026, 8, 31, 20, 15, 0, 0, time.UTC)

	r := BuildReceipt(groups, bill, PaymentCash, 40, company, "3", issued)

	if r.TableID != "3" || r.Company.TradeName != "Sabor Bom" {
		t.Errorf("header fields wrong: %+v", r)
	}
	if len(r.Sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(r.Sections))
	}
	ana := r.Sections[0]
	if ana.Customer != "Ana" || ana.Subtotal != 20 {
		t.Errorf("Ana section = %+v", ana)
	}
	if len(ana.Lines) != 1 || ana.Lines[0].Quantity != 2 || ana.Lines[0].LineTotal != 20 {
		t.Errorf("Ana lines = %+v", ana.Lines)
	}
	if r.Subtotal != 35 || r.ServiceFee != 3.50 || r.Total != 38.50 {
		t.Errorf("totals = %v/%v/%v, want 35/3.50/38.50", r.Subtotal, r.ServiceFee, r.Total)
	}
	if r.TaxEstimate != 4.62 {
		t.Errorf("TaxEstimate = %v, want 4.62 (38.50 * 0.12)", r.TaxEstimate)
	}
	if r.AmountPaid != 40 || r.Change != 1.50 {
		t.Errorf("payment = paid %v change %v, want 40 / 1.50", r.AmountPaid, r.Change)
	}
	if len(r.AccessKey) != 44 {
		t.Errorf("access key length = %d, want 44", len(r.AccessKey))
	}
	if r.Protocol == "" {
		t.Error("protocol must not be empty")
	}
}

func TestBuildReceiptNonCash(t *testing.T) {
	orders := []models.Order{
		order("a", "1", "Ana", models.StatusServed, 50, line("Item", models.CategoryMains, 50, 1)),
	}
	groups := GroupOpenOrdersByCustomer(orders, "1")
	bill := ComputeBill(TableTotal(orders, "1"), false)

	// Amount paid is ignored for card/pix; it is defined to equal the total.
	r := BuildReceipt(groups, bill, PaymentPix, 999, models.CompanySettings{}, "1", time.Now())

	if r.AmountPaid != 50 {
		t.Errorf("AmountPaid = %v, want the exact total 50", r.AmountPaid)
	}
	if r.Change != 0 {
		t.Errorf("Change = %v, want 0 for non-cash", r.Change)
	}
}
