package domain

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentPaid PaymentStatus = "Paid"
	// PaymentPending is shown for appointments that have no payment row.
	PaymentPending PaymentStatus = "Pending"
)

// DefaultFlatFeeCents is charged for every appointment regardless of vaccine or hospital.
const DefaultFlatFeeCents int64 = 5000

type Payment struct {
	ID              uint          `json:"id"`
	VaccineRecordID uint          `json:"vaccine_record_id"`
	AmountCents     int64         `json:"-"`
	Status          PaymentStatus `json:"status"`
	DatePaid        time.Time     `json:"date_paid"`
}

func (p Payment) Amount() string {
	return FormatAmount(p.AmountCents)
}

// FormatAmount renders cents with two decimals, e.g. 5000 -> "50.00".
func FormatAmount(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d", sign, cents/100, cents%100)
}
