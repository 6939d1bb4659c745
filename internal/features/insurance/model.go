package insurance

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Insurance is one policy covering a vehicle for a number of months.
type Insurance struct {
	crud.Model `bson:",inline"`

	VehicleID      string  `json:"vehicle_id" bson:"vehicle_id" form:"vehicle_id" rule:"required"`
	Company        string  `json:"company" bson:"company" form:"company" rule:"notblank"`
	PolicyNumber   string  `json:"policy_number" bson:"policy_number" form:"policy_number" rule:"notblank"`
	StartDate      string  `json:"start_date" bson:"start_date" form:"start_date" rule:"required"`
	DurationMonths int     `json:"duration_months" bson:"duration_months" form:"duration_months" rule:"min=1"`
	EndDate        string  `json:"end_date" bson:"end_date" form:"-"` // derived
	Premium        float64 `json:"premium" bson:"premium" form:"premium" rule:"min=0"`
}

// Validate recomputes the end date from start date and duration.
func (i *Insurance) Validate(_ time.Time) rule.ValidationErrors {
	errs := rule.ValidationErrors{}

	if _, err := primitive.ObjectIDFromHex(i.VehicleID); i.VehicleID != "" && err != nil {
		errs["vehicle_id"] = "must be a valid vehicle ID"
	}

	if start, ok := rule.ParseDate(i.StartDate); ok {
		if i.DurationMonths >= 1 {
			i.EndDate = rule.AddMonthsClamped(start, i.DurationMonths).Format("2006-01-02")
		}
	} else if i.StartDate != "" {
		errs["start_date"] = "must be a valid date"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
