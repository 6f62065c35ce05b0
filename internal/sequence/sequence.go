package sequence

import (
	"fmt"
	"time"
)

// Kind identifies the document series a number is issued from. Each kind
// counts independently per agency and fiscal year.
type Kind string

const (
	KindBooking        Kind = "booking"
	KindGroupBooking   Kind = "group_booking"
	KindBookingReceipt Kind = "booking_receipt"
	KindInvoice        Kind = "invoice"
	KindVehicleVoucher Kind = "vehicle_voucher"
)

// FiscalYearLabel returns the April-to-March fiscal year label for the given
// date, e.g. 2025-02-15 -> "2024-25", 2025-04-01 -> "2025-26".
func FiscalYearLabel(t time.Time) string {
	startYear := t.Year()
	if t.Month() < time.April {
		startYear--
	}
	return fmt.Sprintf("%d-%02d", startYear, (startYear+1)%100)
}

// FormatNumber renders a document number as "{label}/{seq}". The sequence is
// zero-padded to three digits and widens naturally beyond 999.
func FormatNumber(label string, seq int) string {
	return fmt.Sprintf("%s/%03d", label, seq)
}
