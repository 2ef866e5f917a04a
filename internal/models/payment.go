package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how an order was paid
type PaymentMethod string

const (
	PaymentCash       PaymentMethod = "CASH"
	PaymentCreditCard PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard  PaymentMethod = "DEBIT_CARD"
	PaymentMobile     PaymentMethod = "MOBILE"
)

// PaymentMethods lists every valid payment method.
var PaymentMethods = []PaymentMethod{
	PaymentCash,
	PaymentCreditCard,
	PaymentDebitCard,
	PaymentMobile,
}

// ParsePaymentMethod matches a method name case-insensitively.
func ParsePaymentMethod(name string) (PaymentMethod, error) {
	for _, method := range PaymentMethods {
		if strings.EqualFold(name, string(method)) {
			return method, nil
		}
	}
	return "", fmt.Errorf("unknown payment method %q", name)
}

// Payment is an immutable record of a settled order. It is owned by exactly
// one order and additionally kept in the payment store for reporting.
type Payment struct {
	Method        PaymentMethod
	Amount        decimal.Decimal
	Timestamp     time.Time
	TransactionID string
}

// NewPayment creates a payment with a generated transaction id.
func NewPayment(method PaymentMethod, amount decimal.Decimal) *Payment {
	return &Payment{
		Method:        method,
		Amount:        amount,
		Timestamp:     time.Now(),
		TransactionID: "TXN-" + uuid.NewString()[:8],
	}
}

func (p *Payment) String() string {
	return fmt.Sprintf("%s: %s [%s]", p.Method, p.Amount.StringFixed(2), p.TransactionID)
}
