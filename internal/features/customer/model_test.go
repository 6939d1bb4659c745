package customer

import (
	"testing"
	"time"

	"go-rental/internal/rule"
)

func TestCustomerValidate(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	permitOK := "2020-01-10"

	tests := []struct {
		name      string
		customer  Customer
		wantField string // empty means valid
	}{
		{
			"Adult With Old Permit",
			Customer{BirthDate: "1990-03-20", PermitDate: permitOK},
			"",
		},
		{
			"Eighteen Since Yesterday",
			Customer{BirthDate: "2006-06-14", PermitDate: permitOK},
			"",
		},
		{
			"Seventeen Until Tomorrow",
			Customer{BirthDate: "2006-06-16", PermitDate: permitOK},
			"birth_date",
		},
		{
			"Permit Too Recent",
			Customer{BirthDate: "1990-03-20", PermitDate: "2023-06-15"},
			"permit_date",
		},
		{
			"Garbage Birth Date",
			Customer{BirthDate: "not-a-date", PermitDate: permitOK},
			"birth_date",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.customer.Validate(now)
			if tt.wantField == "" {
				if errs != nil {
					t.Errorf("Validate() = %v, want nil", errs)
				}
				return
			}
			if _, ok := errs[tt.wantField]; !ok {
				t.Errorf("Validate() = %v, want error on %q", errs, tt.wantField)
			}
		})
	}
}

func TestCustomerAgeDerivation(t *testing.T) {
	now := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	c := Customer{BirthDate: "2006-06-14", PermitDate: "2020-01-10"}
	c.Validate(now)
	if c.Age != 18 {
		t.Errorf("Age = %d, want 18", c.Age)
	}

	c = Customer{BirthDate: "2006-06-16", PermitDate: "2020-01-10"}
	c.Validate(now)
	if c.Age != 17 {
		t.Errorf("Age = %d, want 17", c.Age)
	}
}

func TestCustomerTagRules(t *testing.T) {
	c := &Customer{
		Cin:          "   ", // spaces only must be rejected
		FirstName:    "Sami",
		LastName:     "Ben Salah",
		BirthDate:    "1990-03-20",
		PermitNumber: "P-12345",
		PermitDate:   "2015-01-10",
		Phone:        "20123456",
	}

	errs := rule.ValidateStruct(c)
	if errs == nil {
		t.Fatal("expected validation errors")
	}
	if _, ok := errs["cin"]; !ok {
		t.Errorf("expected error on cin, got %v", errs)
	}

	c.Cin = "09876543"
	if errs := rule.ValidateStruct(c); errs != nil {
		t.Errorf("expected valid customer, got %v", errs)
	}
}
