package traite

import (
	"testing"
	"time"
)

func TestTraitePaymentDateRules(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name        string
		paid        bool
		paymentDate string
		wantField   string
	}{
		{"Unpaid Without Date", false, "", ""},
		{"Paid With Date", true, "2024-05-10", ""},
		{"Paid Without Date", true, "", "payment_date"},
		{"Paid With Bad Date", true, "10/05/2024", "payment_date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := Traite{
				Lender:      "Bank",
				Amount:      1200,
				DueDate:     "2024-06-01",
				Paid:        tt.paid,
				PaymentDate: tt.paymentDate,
			}
			errs := tr.Validate(now)

			if tt.wantField == "" {
				if errs != nil {
					t.Fatalf("Validate() = %v, want nil", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, want error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestTraiteUnpaidClearsPaymentDate(t *testing.T) {
	tr := Traite{Lender: "Bank", Amount: 500, DueDate: "2024-06-01", Paid: false, PaymentDate: "2024-05-10"}
	if errs := tr.Validate(time.Now()); errs != nil {
		t.Fatalf("Validate() = %v, want nil", errs)
	}
	if tr.PaymentDate != "" {
		t.Errorf("PaymentDate = %q, want cleared for unpaid traite", tr.PaymentDate)
	}
}
