package intervention

import (
	"time"

	"go-rental/internal/common/crud"
	"go-rental/internal/rule"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Intervention is one maintenance or repair job on a vehicle.
type Intervention struct {
	crud.Model `bson:",inline"`

	VehicleID   string  `json:"vehicle_id" bson:"vehicle_id" form:"vehicle_id" rule:"required"`
	Description string  `json:"description" bson:"description" form:"description" rule:"notblank"`
	Date        string  `json:"date" bson:"date" form:"date" rule:"required"`
	Cost        float64 `json:"cost" bson:"cost" form:"cost" rule:"min=0"`
	Garage      string  `json:"garage" bson:"garage" form:"garage" rule:"optblank"`
	Mileage     int64   `json:"mileage" bson:"mileage" form:"mileage" rule:"min=0"`
}

func (i *Intervention) Validate(_ time.Time) rule.ValidationErrors {
	errs := rule.ValidationErrors{}

	if _, err := primitive.ObjectIDFromHex(i.VehicleID); i.VehicleID != "" && err != nil {
		errs["vehicle_id"] = "must be a valid vehicle ID"
	}
	if _, ok := rule.ParseDate(i.Date); !ok && i.Date != "" {
		errs["date"] = "must be a valid date"
	}

	if len(errs) == 0 {
		return nil
	}
	return errs
}
