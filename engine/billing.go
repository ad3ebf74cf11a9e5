package engine

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"smart-order/models"
)

// ServiceFeeRate is the optional surcharge applied when closing a table.
// Fixed at 10%; the close dialog only toggles whether it applies.
const ServiceFeeRate = 0.10

var (
	ErrEmptyCart           = errors.New("order has no items")
	ErrMissingCustomerName = errors.New("customer name is required")
	ErrInvalidPayment      = errors.New("invalid payment method")
)

type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "cash"
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
	PaymentPix    PaymentMethod = "pix"
)

func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(s)) {
	case PaymentCash:
		return PaymentCash, nil
	case PaymentCredit:
		return PaymentCredit, nil
	case PaymentDebit:
		return PaymentDebit, nil
	case PaymentPix:
		return PaymentPix, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidPayment, s)
}

// Round2 rounds to two decimal places, the currency precision used
// everywhere in this system.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

type Bill struct {
	Subtotal   float64 `json:"subtotal"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

// ComputeBill derives the amount due from a table subtotal. The subtotal
// must be re-read from the live order snapshot at the moment of closing;
// orders can arrive while the close dialog sits open.
func ComputeBill(subtotal float64, includeServiceFee bool) Bill {
	fee := 0.0
	if includeServiceFee {
		fee = Round2(subtotal * ServiceFeeRate)
	}
	return Bill{
		Subtotal:   Round2(subtotal),
		ServiceFee: fee,
		Total:      Round2(subtotal + fee),
	}
}

// ComputeChange is defined for cash payments only: overpayment comes back,
// underpayment yields zero rather than a negative value. Non-cash methods
// pay the exact total and have no change.
func ComputeChange(total, amountPaid float64) float64 {
	return Round2(math.Max(0, amountPaid-total))
}

// OrderTotal prices a cart: sum of price*quantity across the lines.
func OrderTotal(items []models.CartItem) float64 {
	var sum float64
	for _, item := range items {
		sum += item.Price * float64(item.Quantity)
	}
	return Round2(sum)
}

// ValidateSubmission enforces the local preconditions of submitting an
// order. Both checks run before the store is ever called.
func ValidateSubmission(items []models.CartItem, customerName string) error {
	if len(items) == 0 {
		return ErrEmptyCart
	}
	if strings.TrimSpace(customerName) == "" {
		return ErrMissingCustomerName
	}
	return nil
}
