package insurance

import (
	"testing"
	"time"
)

func TestInsuranceEndDateDerivation(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		start    string
		months   int
		wantEnd  string
		wantErrs bool
	}{
		{"Six Months", "2024-03-10", 6, "2024-09-10", false},
		// Month overflow clamps to the last day of February
		{"Jan 31 Plus One Month", "2024-01-31", 1, "2024-02-29", false},
		{"Twelve Months", "2024-07-01", 12, "2025-07-01", false},
		{"Bad Start Date", "31/01/2024", 6, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ins := Insurance{
				VehicleID:      "",
				StartDate:      tt.start,
				DurationMonths: tt.months,
			}
			errs := ins.Validate(now)

			if tt.wantErrs {
				if errs == nil {
					t.Fatal("Validate() = nil, want errors")
				}
				return
			}
			if errs != nil {
				t.Fatalf("Validate() = %v, want nil", errs)
			}
			if ins.EndDate != tt.wantEnd {
				t.Errorf("EndDate = %q, want %q", ins.EndDate, tt.wantEnd)
			}
		})
	}
}

func TestInsuranceVehicleIDCheck(t *testing.T) {
	ins := Insurance{VehicleID: "not-an-object-id", StartDate: "2024-01-01", DurationMonths: 12}
	errs := ins.Validate(time.Now())
	if _, ok := errs["vehicle_id"]; !ok {
		t.Errorf("Validate() = %v, want error on vehicle_id", errs)
	}

	ins.VehicleID = "507f1f77bcf86cd799439011"
	if errs := ins.Validate(time.Now()); errs != nil {
		t.Errorf("Validate() = %v, want nil for hex vehicle id", errs)
	}
}
