package engine

import (
	"fmt"
	"math/rand"
	"time"

	"smart-order/models"
)

// TaxEstimateRate is the illustrative tax disclosure printed on receipts.
// It is not a real tax computation; genuine NFC-e emission needs a certified
// external authorization service.
const TaxEstimateRate = 0.12

type ReceiptLine struct {
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	LineTotal float64 `json:"line_total"`
}

type ReceiptSection struct {
	Customer string        `json:"customer"`
	Lines    []ReceiptLine `json:"lines"`
	Subtotal float64       `json:"subtotal"`
}

// Receipt is the full derived field set handed to the print/PDF layer. It is
// never persisted; it exists only for the close-table moment.
type Receipt struct {
	Company  models.CompanySettings `json:"company"`
	TableID  string                 `json:"table_id"`
	IssuedAt time.Time              `json:"issued_at"`

	Sections []ReceiptSection `json:"sections"`

	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`

	// TaxEstimate is an approximation for display only.
	TaxEstimate float64 `json:"tax_estimate"`

	PaymentMethod PaymentMethod `json:"payment_method"`
	AmountPaid    float64       `json:"amount_paid"`
	Change        float64       `json:"change"`

	// AccessKey and Protocol are randomly generated placeholders in the
	// NFC-e layout. They are NOT authority-issued identifiers and carry no
	// fiscal validity.
	AccessKey string `json:"access_key"`
	Protocol  string `json:"protocol"`
}

// BuildReceipt assembles the receipt fields from the closing computation.
// For non-cash methods the amount paid is defined to equal the total exactly
// and the change is always zero; partial and split payments do not exist.
func BuildReceipt(groups []CustomerGroup, bill Bill, method PaymentMethod, amountPaid float64, company models.CompanySettings, tableID string, issuedAt time.Time) Receipt {
	sections := make([]ReceiptSection, 0, len(groups))
	for _, g := range groups {
		section := ReceiptSection{Customer: g.Customer, Subtotal: g.Total()}
		for _, o := range g.Orders {
			for _, item := range o.Items {
				section.Lines = append(section.Lines, ReceiptLine{
					Quantity:  item.Quantity,
					Name:      item.Name,
					UnitPrice: Round2(item.Price),
					LineTotal: Round2(item.Price * float64(item.Quantity)),
				})
			}
		}
		sections = append(sections, section)
	}

	paid := bill.Total
	change := 0.0
	if method == PaymentCash {
		paid = Round2(amountPaid)
		change = ComputeChange(bill.Total, amountPaid)
	}

	return Receipt{
		Company:       company,
		TableID:       tableID,
		IssuedAt:      issuedAt,
		Sections:      sections,
		Subtotal:      bill.Subtotal,
		ServiceFee:    bill.ServiceFee,
		Total:         bill.Total,
		TaxEstimate:   Round2(bill.Total * TaxEstimateRate),
		PaymentMethod: method,
		AmountPaid:    paid,
		Change:        change,
		AccessKey:     mockAccessKey(),
		Protocol:      mockProtocol(issuedAt),
	}
}

// mockAccessKey fabricates a 44-digit key in the NFC-e access key shape.
// Placeholder data only.
func mockAccessKey() string {
	digits := make([]byte, 44)
	for i := range digits {
		digits[i] = byte('0' + rand.Intn(10))
	}
	return string(digits)
}

// mockProtocol fabricates an authorization protocol number. Placeholder
// data only.
func mockProtocol(at time.Time) string {
	return fmt.Sprintf("%d%09d", at.Year(), rand.Intn(1_000_000_000))
}
