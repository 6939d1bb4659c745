package inspection

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type InspectionResult string

const (
	ResultPassed InspectionResult = "passed"
	ResultFailed InspectionResult = "failed"
)

// Inspection is one periodic technical inspection of a vehicle.
type Inspection struct {
	crud.Model `bson:",inline"`

	VehicleID      string           `json:"vehicle_id" bson:"vehicle_id" form:"vehicle_id" rule:"required"`
	Center         string           `json:"center" bson:"center" form:"center" rule:"notblank"`
	InspectionDate string           `json:"inspection_date" bson:"inspection_date" form:"inspection_date" rule:"required"`
	DurationMonths int              `json:"duration_months" bson:"duration_months" form:"duration_months" rule:"min=1"`
	ExpiryDate     string           `json:"expiry_date" bson:"expiry_date" form:"-"` // derived
	Cost           float64          `json:"cost" bson:"cost" form:"cost" rule:"min=0"`
	Result         InspectionResult `json:"result" bson:"result" form:"result" rule:"omitempty,oneof=passed failed"`
}

// Validate recomputes the expiry date from inspection date and validity.
func (i *Inspection) Validate(_ time.Time) rule.ValidationErrors {
	errs := rule.ValidationErrors{}

	if _, err := primitive.ObjectIDFromHex(i.VehicleID); i.VehicleID != "" && err != nil {
		errs["vehicle_id"] = "must be a valid vehicle ID"
	}

	if done, ok := rule.ParseDate(i.InspectionDate); ok {
		if i.DurationMonths >= 1 {
			i.ExpiryDate = rule.AddMonthsClamped(done, i.DurationMonths).Format("2006-01-02")
		}
	} else if i.InspectionDate != "" {
		errs["inspection_date"] = "must be a valid date"
	}

	if i.Result == "" {
		i.Result = ResultPassed
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
